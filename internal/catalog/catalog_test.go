package catalog

import "testing"

func TestCatalogsCoverOneRound(t *testing.T) {
	sizes := map[string]int{
		"animals":  len(Animals),
		"colors":   len(Colors),
		"emotions": len(Emotions),
		"shapes":   len(ShapeKinds),
	}
	for name, size := range sizes {
		if size < ChoicesPerRound {
			t.Fatalf("%s catalog has %d entries, need at least %d", name, size, ChoicesPerRound)
		}
	}
	if len(ShapePalette) < len(ShapeKinds) {
		t.Fatalf("shape palette has %d colors for %d kinds", len(ShapePalette), len(ShapeKinds))
	}
}

func TestConstellationsStayOnBoard(t *testing.T) {
	for _, c := range Constellations {
		if len(c.Stars) == 0 {
			t.Fatalf("constellation %s has no stars", c.ID)
		}
		for i, star := range c.Stars {
			if star.X < 0 || star.X > BoardSize || star.Y < 0 || star.Y > BoardSize {
				t.Fatalf("constellation %s star %d off board: %+v", c.ID, i, star)
			}
		}
	}
}

func TestAnimalByID(t *testing.T) {
	animal, ok := AnimalByID("duck")
	if !ok || animal.Name != "Duck" {
		t.Fatalf("expected duck, got %+v ok=%v", animal, ok)
	}
	if _, ok := AnimalByID("unicorn"); ok {
		t.Fatal("expected unknown animal to be missing")
	}
}
