package games

import (
	"fmt"
	"math/rand/v2"

	"playroom/internal/catalog"
	"playroom/internal/round"
)

var emotionInfo = Info{
	ID:       EmotionMatch,
	Title:    "Emotion Match",
	Tagline:  "Which face looks...",
	EndTitle: "Amazing!",
	Theme:    "violet",
}

func NewEmotionMatch(rng *rand.Rand, settings Settings) (Game, error) {
	session, err := round.New(round.Rules[catalog.Emotion]{
		Catalog:         catalog.Emotions,
		TotalRounds:     settings.TotalRounds,
		ChoicesPerRound: settings.ChoicesPerRound,
		RevealDelay:     settings.RevealDelay,
		RetryDelay:      settings.RetryDelay,
		ID:              catalog.EmotionID,
		Feedback:        round.StaticFeedback[catalog.Emotion]("You got it! 🎉", "Let's try another one!"),
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("emotion match: %w", err)
	}
	return &quiz[catalog.Emotion]{
		info:    emotionInfo,
		session: session,
		option: func(e catalog.Emotion) Option {
			return Option{ID: e.ID, Label: e.Name, Emoji: e.Emoji}
		},
		prompt: func(target catalog.Emotion) string {
			return fmt.Sprintf("Which face is %s?", target.Name)
		},
	}, nil
}
