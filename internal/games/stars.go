package games

import (
	"fmt"
	"math/rand/v2"

	"playroom/internal/audio"
	"playroom/internal/catalog"
	"playroom/internal/round"
	"playroom/internal/stars"
)

var starsInfo = Info{
	ID:         ConnectTheStars,
	Title:      "Connect the Stars",
	Tagline:    "Click the numbers in order to make a picture!",
	EndTitle:   "You're a star!",
	EndMessage: "You found all the pictures!",
	Theme:      "indigo",
}

type constellations struct {
	session *stars.Session
}

func NewConnectTheStars(rng *rand.Rand, settings Settings) (Game, error) {
	session, err := stars.New(catalog.Constellations, rng, stars.Config{
		Radius:      settings.StarRadius,
		RevealDelay: settings.StarsRevealDelay,
		RetryDelay:  settings.RetryDelay,
	})
	if err != nil {
		return nil, fmt.Errorf("connect the stars: %w", err)
	}
	return &constellations{session: session}, nil
}

func (g *constellations) Info() Info { return starsInfo }

func (g *constellations) Start() round.Result   { return withCueURLs(g.session.Start()) }
func (g *constellations) Restart() round.Result { return withCueURLs(g.session.Restart()) }
func (g *constellations) Exit() round.Result    { return g.session.Exit() }

func (g *constellations) Select(string) round.Result { return round.Ignored() }

func (g *constellations) Click(x, y float64) round.Result {
	return withCueURLs(g.session.Click(x, y))
}

func (g *constellations) Advance(token int) round.Result {
	return g.session.Advance(token)
}

func (g *constellations) ClearFeedback(token int) round.Result {
	return g.session.ClearFeedback(token)
}

func (g *constellations) Snapshot() Snapshot {
	view := g.session.View()
	snap := Snapshot{
		GameID:        starsInfo.ID,
		Title:         starsInfo.Title,
		Phase:         view.Phase,
		Round:         view.Level + 1,
		TotalRounds:   view.LevelCount,
		Score:         view.Level,
		Options:       []Option{},
		Feedback:      view.Feedback,
		Level:         view.Level,
		LevelCount:    view.LevelCount,
		Connected:     view.Connected,
		Constellation: view.Constellation,
	}
	if view.Phase == round.PhaseRoundOver || view.Phase == round.PhaseEnd {
		snap.Score = min(view.Level+1, view.LevelCount)
	}
	if view.Phase == round.PhaseStart {
		snap.Round, snap.Score = 0, 0
	}
	for _, star := range view.Stars {
		snap.Stars = append(snap.Stars, Point{X: star.X, Y: star.Y})
	}
	return snap
}

func (g *constellations) SoundRequest() (audio.Request, bool) {
	return audio.Request{}, false
}
