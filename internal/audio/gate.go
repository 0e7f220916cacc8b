package audio

import (
	"context"
	"errors"
	"sync"
)

var ErrBusy = errors.New("sound generation already in progress")

// Gate lets one Generate call through at a time. Callers arriving while one is
// in flight get ErrBusy instead of queueing.
type Gate struct {
	source Source
	mu     sync.Mutex
	busy   bool
}

func NewGate(source Source) *Gate {
	return &Gate{source: source}
}

func (g *Gate) Generate(ctx context.Context, req Request) (Clip, error) {
	g.mu.Lock()
	if g.busy {
		g.mu.Unlock()
		return Clip{}, ErrBusy
	}
	g.busy = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.busy = false
		g.mu.Unlock()
	}()
	return g.source.Generate(ctx, req)
}

func (g *Gate) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}
