package round

import (
	"errors"
	"math/rand/v2"
	"slices"
)

var (
	ErrCatalogTooSmall = errors.New("catalog has fewer entries than choices per round")
	ErrDuplicateChoice = errors.New("catalog contains duplicate choice ids")
)

// Spec is one round: the target and the options shown for it, target included.
type Spec[T any] struct {
	Target  T
	Options []T
}

// Generate draws a round from catalog: a uniform permutation picks the target
// (first element) and the option set (first k elements), then the options
// are shuffled again for display. The catalog slice is not modified.
func Generate[T any](rng *rand.Rand, catalog []T, k int) (Spec[T], error) {
	if k <= 0 || len(catalog) < k {
		return Spec[T]{}, ErrCatalogTooSmall
	}
	perm := slices.Clone(catalog)
	shuffle(rng, perm)
	options := slices.Clone(perm[:k])
	shuffle(rng, options)
	return Spec[T]{Target: perm[0], Options: options}, nil
}

// ValidateCatalog checks that catalog can feed rounds of k options with
// distinct ids.
func ValidateCatalog[T any](catalog []T, k int, id func(T) string) error {
	if k <= 0 || len(catalog) < k {
		return ErrCatalogTooSmall
	}
	seen := make(map[string]struct{}, len(catalog))
	for _, entry := range catalog {
		key := id(entry)
		if _, dup := seen[key]; dup {
			return ErrDuplicateChoice
		}
		seen[key] = struct{}{}
	}
	return nil
}

func shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Shuffled returns a shuffled copy of items.
func Shuffled[T any](rng *rand.Rand, items []T) []T {
	out := slices.Clone(items)
	shuffle(rng, out)
	return out
}
