// Package games wires the content catalog into the round engines and gives
// every mini-game the same surface for the server to drive.
package games

import (
	"math/rand/v2"
	"time"

	"playroom/internal/audio"
	"playroom/internal/catalog"
	"playroom/internal/round"
)

type ID string

const (
	AnimalSoundMatch ID = "animal-sound-match"
	ShapeSorter      ID = "shape-sorter"
	ColorSplash      ID = "color-splash"
	EmotionMatch     ID = "emotion-match"
	ConnectTheStars  ID = "connect-the-stars"
)

// Info is the static text around a game: lobby button, start screen and end
// screen.
type Info struct {
	ID         ID     `json:"id"`
	Title      string `json:"title"`
	Tagline    string `json:"tagline"`
	EndTitle   string `json:"end_title"`
	EndMessage string `json:"end_message,omitempty"`
	Theme      string `json:"theme"`
}

type Option struct {
	ID     string           `json:"id"`
	Label  string           `json:"label"`
	Image  string           `json:"image,omitempty"`
	Emoji  string           `json:"emoji,omitempty"`
	Color  string           `json:"color,omitempty"`
	Kind   string           `json:"kind,omitempty"`
	Status round.CardStatus `json:"status"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Snapshot is everything the browser needs to draw the current screen.
type Snapshot struct {
	GameID      ID          `json:"game_id"`
	Title       string      `json:"title"`
	Phase       round.Phase `json:"phase"`
	Round       int         `json:"round"`
	TotalRounds int         `json:"total_rounds"`
	Score       int         `json:"score"`
	Prompt      string      `json:"prompt,omitempty"`
	Options     []Option    `json:"options"`
	Target      *Option     `json:"target,omitempty"`
	Selection   string      `json:"selection"`
	Feedback    string      `json:"feedback"`
	HasSound    bool        `json:"has_sound"`

	Level         int     `json:"level"`
	LevelCount    int     `json:"level_count"`
	Connected     int     `json:"connected"`
	Stars         []Point `json:"stars,omitempty"`
	Constellation string  `json:"constellation,omitempty"`
}

// Game is one running mini-game. Implementations are not safe for concurrent
// use; the server serializes calls per session.
type Game interface {
	Info() Info
	Start() round.Result
	Restart() round.Result
	Exit() round.Result
	Select(choiceID string) round.Result
	Click(x, y float64) round.Result
	Advance(token int) round.Result
	ClearFeedback(token int) round.Result
	Snapshot() Snapshot
	// SoundRequest describes the sound to play for the current round, if the
	// game has one.
	SoundRequest() (audio.Request, bool)
}

// Settings carries the tunables shared by every game.
type Settings struct {
	TotalRounds      int
	ChoicesPerRound  int
	RevealDelay      time.Duration
	ShapeRevealDelay time.Duration
	RetryDelay       time.Duration
	StarsRevealDelay time.Duration
	StarRadius       float64
}

func DefaultSettings() Settings {
	return Settings{
		TotalRounds:      catalog.TotalRounds,
		ChoicesPerRound:  catalog.ChoicesPerRound,
		RevealDelay:      2 * time.Second,
		ShapeRevealDelay: 1500 * time.Millisecond,
		RetryDelay:       time.Second,
		StarsRevealDelay: 2 * time.Second,
		StarRadius:       20,
	}
}

type Factory func(rng *rand.Rand, settings Settings) (Game, error)

// withCueURLs attaches the bundled sound to correct and incorrect cues.
func withCueURLs(res round.Result) round.Result {
	for i, cue := range res.Cues {
		if cue.URL != "" {
			continue
		}
		switch cue.Kind {
		case round.CueCorrect:
			res.Cues[i].URL = catalog.SoundCorrect
		case round.CueIncorrect:
			res.Cues[i].URL = catalog.SoundIncorrect
		}
	}
	return res
}
