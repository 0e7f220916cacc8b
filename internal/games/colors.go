package games

import (
	"fmt"
	"math/rand/v2"

	"playroom/internal/catalog"
	"playroom/internal/round"
)

var colorInfo = Info{
	ID:       ColorSplash,
	Title:    "Color Splash",
	Tagline:  "Find the correct color that matches the name!",
	EndTitle: "You did it!",
	Theme:    "rose",
}

func NewColorSplash(rng *rand.Rand, settings Settings) (Game, error) {
	session, err := round.New(round.Rules[catalog.Color]{
		Catalog:         catalog.Colors,
		TotalRounds:     settings.TotalRounds,
		ChoicesPerRound: settings.ChoicesPerRound,
		RevealDelay:     settings.RevealDelay,
		RetryDelay:      settings.RetryDelay,
		ID:              catalog.ColorID,
		Feedback:        round.StaticFeedback[catalog.Color]("That's right! 🎉", "Not quite!"),
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("color splash: %w", err)
	}
	return &quiz[catalog.Color]{
		info:    colorInfo,
		session: session,
		option: func(c catalog.Color) Option {
			return Option{ID: c.Name, Label: c.Name, Color: c.Hex}
		},
		prompt: func(target catalog.Color) string {
			return fmt.Sprintf("Which color is %s?", target.Name)
		},
	}, nil
}
