// Package catalog holds the static content every mini-game draws its rounds from.
package catalog

const (
	TotalRounds     = 5
	ChoicesPerRound = 4
)

const (
	SoundCorrect   = "https://cdn.pixabay.com/audio/2022/03/10/audio_e5e3247078.mp3"
	SoundIncorrect = "https://cdn.pixabay.com/audio/2022/03/10/audio_93a3c20063.mp3"
)

type Animal struct {
	ID               string
	Name             string
	Image            string
	SoundDescription string
	SoundURL         string
}

type Color struct {
	Name string
	Hex  string
}

type Emotion struct {
	ID    string
	Name  string
	Emoji string
}

type ShapeKind string

const (
	ShapeSquare   ShapeKind = "square"
	ShapeCircle   ShapeKind = "circle"
	ShapeTriangle ShapeKind = "triangle"
	ShapeStar     ShapeKind = "star"
)

type Shape struct {
	Kind  ShapeKind
	Color string
}

// Star is a point on the 500x500 constellation board.
type Star struct {
	X float64
	Y float64
}

type Constellation struct {
	ID    string
	Name  string
	Stars []Star
}

func AnimalID(a Animal) string   { return a.ID }
func ColorID(c Color) string     { return c.Name }
func EmotionID(e Emotion) string { return e.ID }
func ShapeID(s Shape) string     { return string(s.Kind) }

// AnimalByID returns the catalog entry for id.
func AnimalByID(id string) (Animal, bool) {
	for _, animal := range Animals {
		if animal.ID == id {
			return animal, true
		}
	}
	return Animal{}, false
}
