package games

import (
	"fmt"
	"math/rand/v2"

	"playroom/internal/audio"
	"playroom/internal/catalog"
	"playroom/internal/round"
)

const animalQuestion = "Which animal makes this sound?"

var animalInfo = Info{
	ID:       AnimalSoundMatch,
	Title:    "Animal Sound Match",
	Tagline:  "Listen to the sound and find the right animal!",
	EndTitle: "You did it!",
	Theme:    "amber",
}

func animalCorrect(target catalog.Animal) string {
	return fmt.Sprintf("Yes, that's a %s!", target.Name)
}

func animalIncorrect(_, chosen catalog.Animal, known bool) string {
	if !known {
		return ""
	}
	return fmt.Sprintf("That's a %s. Let's try again!", chosen.Name)
}

func NewAnimalSoundMatch(rng *rand.Rand, settings Settings) (Game, error) {
	session, err := round.New(round.Rules[catalog.Animal]{
		Catalog:         catalog.Animals,
		TotalRounds:     settings.TotalRounds,
		ChoicesPerRound: settings.ChoicesPerRound,
		RevealDelay:     settings.RevealDelay,
		RetryDelay:      settings.RetryDelay,
		ID:              catalog.AnimalID,
		Feedback: round.Feedback[catalog.Animal]{
			Correct:   animalCorrect,
			Incorrect: animalIncorrect,
		},
		Hooks: round.Hooks[catalog.Animal]{
			OnRoundStart: func(round.Spec[catalog.Animal]) []round.Cue {
				return []round.Cue{round.Speak(animalQuestion)}
			},
			OnCorrect: func(target catalog.Animal) []round.Cue {
				return []round.Cue{round.Speak(animalCorrect(target))}
			},
			OnIncorrect: func(target, chosen catalog.Animal, known bool) []round.Cue {
				if !known {
					return nil
				}
				return []round.Cue{round.Speak(animalIncorrect(target, chosen, known))}
			},
		},
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("animal sound match: %w", err)
	}
	return &quiz[catalog.Animal]{
		info:    animalInfo,
		session: session,
		option: func(a catalog.Animal) Option {
			return Option{ID: a.ID, Label: a.Name, Image: a.Image}
		},
		prompt: func(catalog.Animal) string { return animalQuestion },
		sound: func(target catalog.Animal) (audio.Request, bool) {
			return audio.Request{Key: target.ID, Name: target.Name, Description: target.SoundDescription}, true
		},
	}, nil
}

// AnimalClips maps animal ids to their bundled recordings.
func AnimalClips() map[string]string {
	clips := make(map[string]string, len(catalog.Animals))
	for _, animal := range catalog.Animals {
		clips[animal.ID] = animal.SoundURL
	}
	return clips
}
