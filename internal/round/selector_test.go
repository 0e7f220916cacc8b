package round

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func letterID(s string) string { return s }

func TestGenerateFourOfFive(t *testing.T) {
	catalog := []string{"A", "B", "C", "D", "E"}
	for seed := uint64(0); seed < 200; seed++ {
		spec, err := Generate(testRNG(seed), catalog, 4)
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		if len(spec.Options) != 4 {
			t.Fatalf("seed %d: expected 4 options, got %d", seed, len(spec.Options))
		}
		if !slices.Contains(spec.Options, spec.Target) {
			t.Fatalf("seed %d: target %q missing from %v", seed, spec.Target, spec.Options)
		}
		seen := map[string]bool{}
		for _, option := range spec.Options {
			if seen[option] {
				t.Fatalf("seed %d: duplicate option %q in %v", seed, option, spec.Options)
			}
			seen[option] = true
		}
	}
}

func TestGenerateLeavesCatalogUntouched(t *testing.T) {
	catalog := []string{"A", "B", "C", "D", "E", "F"}
	before := slices.Clone(catalog)
	if _, err := Generate(testRNG(7), catalog, 4); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !slices.Equal(before, catalog) {
		t.Fatalf("catalog mutated: %v", catalog)
	}
}

func TestGenerateEveryEntryCanBeTarget(t *testing.T) {
	catalog := []string{"A", "B", "C", "D", "E"}
	rng := testRNG(42)
	targets := map[string]int{}
	for i := 0; i < 500; i++ {
		spec, err := Generate(rng, catalog, 4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		targets[spec.Target]++
	}
	for _, entry := range catalog {
		if targets[entry] == 0 {
			t.Fatalf("entry %q never drawn as target: %v", entry, targets)
		}
	}
}

func TestGenerateCatalogTooSmall(t *testing.T) {
	tests := []struct {
		name    string
		catalog []string
		k       int
	}{
		{name: "fewer entries", catalog: []string{"A", "B", "C"}, k: 4},
		{name: "empty", catalog: nil, k: 4},
		{name: "zero choices", catalog: []string{"A"}, k: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(testRNG(1), tc.catalog, tc.k)
			if !errors.Is(err, ErrCatalogTooSmall) {
				t.Fatalf("expected ErrCatalogTooSmall, got %v", err)
			}
		})
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog([]string{"A", "B", "C", "D"}, 4, letterID); err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}
	if err := ValidateCatalog([]string{"A", "B", "A", "D"}, 4, letterID); !errors.Is(err, ErrDuplicateChoice) {
		t.Fatalf("expected ErrDuplicateChoice, got %v", err)
	}
	if err := ValidateCatalog([]string{"A"}, 4, letterID); !errors.Is(err, ErrCatalogTooSmall) {
		t.Fatalf("expected ErrCatalogTooSmall, got %v", err)
	}
}
