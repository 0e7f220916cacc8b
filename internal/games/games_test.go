package games

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"playroom/internal/catalog"
	"playroom/internal/round"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(11, 11))
}

func newGame(t *testing.T, id ID) Game {
	t.Helper()
	game, err := Default().Create(id, testRNG(), DefaultSettings())
	if err != nil {
		t.Fatalf("create %s: %v", id, err)
	}
	return game
}

func TestDefaultRegistryOrder(t *testing.T) {
	want := []ID{AnimalSoundMatch, ShapeSorter, ColorSplash, EmotionMatch, ConnectTheStars}
	got := Default().List()
	if len(got) != len(want) {
		t.Fatalf("expected %d games, got %d", len(want), len(got))
	}
	for i, info := range got {
		if info.ID != want[i] {
			t.Fatalf("game %d: expected %s, got %s", i, want[i], info.ID)
		}
		if info.Title == "" || info.Tagline == "" || info.EndTitle == "" {
			t.Fatalf("game %s missing text: %+v", info.ID, info)
		}
	}
}

func TestRegistryUnknownGame(t *testing.T) {
	_, err := Default().Create("pong", testRNG(), DefaultSettings())
	if !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	r := Default()
	r.Register(colorInfo, NewColorSplash)
}

func TestQuizGamesPlayThrough(t *testing.T) {
	for _, id := range []ID{AnimalSoundMatch, ShapeSorter, ColorSplash, EmotionMatch} {
		t.Run(string(id), func(t *testing.T) {
			game := newGame(t, id)
			if snap := game.Snapshot(); snap.Phase != round.PhaseStart {
				t.Fatalf("expected start phase, got %s", snap.Phase)
			}
			game.Start()
			for i := 1; i <= catalog.TotalRounds; i++ {
				snap := game.Snapshot()
				if snap.Round != i || snap.Target == nil {
					t.Fatalf("round %d: unexpected snapshot %+v", i, snap)
				}
				if len(snap.Options) != catalog.ChoicesPerRound {
					t.Fatalf("expected %d options, got %d", catalog.ChoicesPerRound, len(snap.Options))
				}
				res := game.Select(snap.Target.ID)
				if res.Outcome != round.OutcomeCorrect {
					t.Fatalf("round %d: expected correct, got %s", i, res.Outcome)
				}
				if res.Cues[0].URL != catalog.SoundCorrect {
					t.Fatalf("expected correct cue url, got %+v", res.Cues[0])
				}
				game.Advance(res.Timer.Token)
			}
			snap := game.Snapshot()
			if snap.Phase != round.PhaseEnd || snap.Score != catalog.TotalRounds {
				t.Fatalf("unexpected end snapshot phase=%s score=%d", snap.Phase, snap.Score)
			}
		})
	}
}

func TestQuizFeedbackText(t *testing.T) {
	tests := []struct {
		id        ID
		correct   string
		incorrect string
	}{
		{id: ColorSplash, correct: "That's right! 🎉", incorrect: "Not quite!"},
		{id: EmotionMatch, correct: "You got it! 🎉", incorrect: "Let's try another one!"},
		{id: ShapeSorter, correct: "Awesome! 🎉", incorrect: "Not quite, try again!"},
	}
	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			game := newGame(t, tc.id)
			game.Start()
			snap := game.Snapshot()
			for _, option := range snap.Options {
				if option.ID != snap.Target.ID {
					game.Select(option.ID)
					break
				}
			}
			if got := game.Snapshot().Feedback; got != tc.incorrect {
				t.Fatalf("expected %q, got %q", tc.incorrect, got)
			}
			game.Select(snap.Target.ID)
			if got := game.Snapshot().Feedback; got != tc.correct {
				t.Fatalf("expected %q, got %q", tc.correct, got)
			}
		})
	}
}

func TestAnimalSpeaksAndRequestsSound(t *testing.T) {
	game := newGame(t, AnimalSoundMatch)
	if _, ok := game.SoundRequest(); ok {
		t.Fatal("expected no sound before start")
	}
	res := game.Start()
	if len(res.Cues) != 1 || res.Cues[0].Text != animalQuestion {
		t.Fatalf("expected question cue, got %+v", res.Cues)
	}
	snap := game.Snapshot()
	req, ok := game.SoundRequest()
	if !ok || req.Key != snap.Target.ID {
		t.Fatalf("unexpected sound request %+v", req)
	}
	if !strings.HasPrefix(req.Prompt(), "Make the sound of a "+snap.Target.Label+".") {
		t.Fatalf("unexpected prompt %q", req.Prompt())
	}

	var wrong Option
	for _, option := range snap.Options {
		if option.ID != snap.Target.ID {
			wrong = option
			break
		}
	}
	res = game.Select(wrong.ID)
	want := "That's a " + wrong.Label + ". Let's try again!"
	if len(res.Cues) != 2 || res.Cues[1].Text != want {
		t.Fatalf("expected spoken retry, got %+v", res.Cues)
	}
	res = game.Select("unicorn")
	if len(res.Cues) != 1 || res.Cues[0].Kind != round.CueIncorrect {
		t.Fatalf("expected only the incorrect cue for an unknown pick, got %+v", res.Cues)
	}
	res = game.Select(snap.Target.ID)
	if len(res.Cues) != 2 || res.Cues[1].Text != "Yes, that's a "+snap.Target.Label+"!" {
		t.Fatalf("expected spoken praise, got %+v", res.Cues)
	}
}

func TestAnimalClipsCoverCatalog(t *testing.T) {
	clips := AnimalClips()
	for _, animal := range catalog.Animals {
		if clips[animal.ID] == "" {
			t.Fatalf("missing clip for %s", animal.ID)
		}
	}
}

func TestShapeOptionsHaveDistinctColors(t *testing.T) {
	game := newGame(t, ShapeSorter)
	game.Start()
	snap := game.Snapshot()
	seen := map[string]bool{}
	for _, option := range snap.Options {
		if option.Color == "" || seen[option.Color] {
			t.Fatalf("expected distinct colors, got %+v", snap.Options)
		}
		seen[option.Color] = true
		if option.Kind != option.ID {
			t.Fatalf("shape id should be its kind: %+v", option)
		}
	}
	if snap.Target.Color != "" {
		t.Fatalf("outline should not reveal paint, got %q", snap.Target.Color)
	}
	if snap.Prompt != shapePrompt {
		t.Fatalf("unexpected prompt %q", snap.Prompt)
	}
}

func TestColorPromptNamesTarget(t *testing.T) {
	game := newGame(t, ColorSplash)
	game.Start()
	snap := game.Snapshot()
	if snap.Prompt != "Which color is "+snap.Target.Label+"?" {
		t.Fatalf("unexpected prompt %q", snap.Prompt)
	}
}

func TestConnectTheStarsSnapshot(t *testing.T) {
	game := newGame(t, ConnectTheStars)
	if res := game.Select("anything"); res.Changed() {
		t.Fatal("expected select to be ignored")
	}
	game.Start()
	snap := game.Snapshot()
	if snap.LevelCount != len(catalog.Constellations) || snap.Connected != 0 || len(snap.Stars) == 0 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	var last round.Result
	for _, star := range snap.Stars {
		last = game.Click(star.X, star.Y)
	}
	done := game.Snapshot()
	if done.Phase != round.PhaseRoundOver || done.Connected != len(snap.Stars) {
		t.Fatalf("expected completed level, got %+v", done)
	}
	if !strings.Contains(done.Feedback, snap.Constellation) {
		t.Fatalf("unexpected feedback %q", done.Feedback)
	}
	if done.Score != 1 {
		t.Fatalf("expected score 1, got %d", done.Score)
	}
	if res := game.Advance(last.Timer.Token); res.Outcome != round.OutcomeNextRound {
		t.Fatalf("expected next level, got %s", res.Outcome)
	}
}
