package games

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"playroom/internal/catalog"
	"playroom/internal/round"
)

var shapeInfo = Info{
	ID:       ShapeSorter,
	Title:    "Shape Sorter",
	Tagline:  "Drag the correct shape to its matching outline!",
	EndTitle: "Great job!",
	Theme:    "lime",
}

const shapePrompt = "Drag the matching shape here"

// shapes runs the round engine over shape kinds and paints every option with
// its own palette color each round. Dropping a shape on the outline selects
// its kind.
type shapes struct {
	*quiz[catalog.ShapeKind]
	palette []string
	paint   map[catalog.ShapeKind]string
}

func NewShapeSorter(rng *rand.Rand, settings Settings) (Game, error) {
	g := &shapes{
		palette: slices.Clone(catalog.ShapePalette),
		paint:   make(map[catalog.ShapeKind]string, len(catalog.ShapeKinds)),
	}
	choices := min(settings.ChoicesPerRound, len(catalog.ShapeKinds))
	session, err := round.New(round.Rules[catalog.ShapeKind]{
		Catalog:         catalog.ShapeKinds,
		TotalRounds:     settings.TotalRounds,
		ChoicesPerRound: choices,
		RevealDelay:     settings.ShapeRevealDelay,
		RetryDelay:      settings.RetryDelay,
		ID:              func(k catalog.ShapeKind) string { return string(k) },
		Feedback:        round.StaticFeedback[catalog.ShapeKind]("Awesome! 🎉", "Not quite, try again!"),
		Hooks: round.Hooks[catalog.ShapeKind]{
			OnRoundStart: func(spec round.Spec[catalog.ShapeKind]) []round.Cue {
				g.repaint(rng, spec.Options)
				return nil
			},
		},
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("shape sorter: %w", err)
	}
	g.quiz = &quiz[catalog.ShapeKind]{
		info:    shapeInfo,
		session: session,
		option:  g.option,
		prompt:  func(catalog.ShapeKind) string { return shapePrompt },
	}
	return g, nil
}

func (g *shapes) repaint(rng *rand.Rand, kinds []catalog.ShapeKind) {
	rng.Shuffle(len(g.palette), func(i, j int) {
		g.palette[i], g.palette[j] = g.palette[j], g.palette[i]
	})
	clear(g.paint)
	for i, kind := range kinds {
		g.paint[kind] = g.palette[i%len(g.palette)]
	}
}

func (g *shapes) option(kind catalog.ShapeKind) Option {
	shape := catalog.Shape{Kind: kind, Color: g.paint[kind]}
	return Option{
		ID:    catalog.ShapeID(shape),
		Label: string(kind),
		Kind:  string(kind),
		Color: shape.Color,
	}
}

// Snapshot hides the target's paint: the outline only shows its kind.
func (g *shapes) Snapshot() Snapshot {
	snap := g.quiz.Snapshot()
	if snap.Target != nil {
		snap.Target.Color = ""
	}
	return snap
}
