package games

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

var ErrUnknownGame = errors.New("unknown game")

type entry struct {
	info    Info
	factory Factory
}

// Registry keeps game factories in lobby order.
type Registry struct {
	mu      sync.RWMutex
	order   []ID
	entries map[ID]entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]entry)}
}

// Default registers the five games in lobby order.
func Default() *Registry {
	r := NewRegistry()
	r.Register(animalInfo, NewAnimalSoundMatch)
	r.Register(shapeInfo, NewShapeSorter)
	r.Register(colorInfo, NewColorSplash)
	r.Register(emotionInfo, NewEmotionMatch)
	r.Register(starsInfo, NewConnectTheStars)
	return r
}

// Register panics on a duplicate id.
func (r *Registry) Register(info Info, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[info.ID]; exists {
		panic(fmt.Sprintf("games: %q already registered", info.ID))
	}
	r.entries[info.ID] = entry{info: info, factory: factory}
	r.order = append(r.order, info.ID)
}

func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].info)
	}
	return out
}

func (r *Registry) Lookup(id ID) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e.info, ok
}

func (r *Registry) Exists(id ID) bool {
	_, ok := r.Lookup(id)
	return ok
}

func (r *Registry) Create(id ID, rng *rand.Rand, settings Settings) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	return e.factory(rng, settings)
}
