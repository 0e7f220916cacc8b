package server

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"playroom/internal/games"
)

func newStoreSession(t *testing.T, id string, createdAt time.Time) *Session {
	t.Helper()
	game, err := games.NewColorSplash(rand.New(rand.NewPCG(1, 2)), games.DefaultSettings())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return &Session{ID: id, GameID: games.ColorSplash, Game: game, CreatedAt: createdAt}
}

func TestStoreUpdateMissingSession(t *testing.T) {
	store := NewStore()
	err := store.Update("missing", func(*Session) error { return nil })
	if !errors.Is(err, errSessionNotFound) {
		t.Fatalf("expected errSessionNotFound, got %v", err)
	}
}

func TestStoreAddRemove(t *testing.T) {
	store := NewStore()
	store.Add(newStoreSession(t, "a", time.Now()))
	if !store.Exists("a") || store.Len() != 1 {
		t.Fatalf("expected session a to be stored")
	}
	if _, ok := store.Remove("a"); !ok {
		t.Fatalf("expected remove to find session")
	}
	if _, ok := store.Remove("a"); ok {
		t.Fatalf("expected second remove to miss")
	}
	if store.Exists("a") || store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestStoreListSummariesNewestFirst(t *testing.T) {
	store := NewStore()
	now := time.Now()
	store.Add(newStoreSession(t, "old", now.Add(-time.Minute)))
	store.Add(newStoreSession(t, "new", now))
	_ = store.Update("new", func(session *Session) error {
		session.Game.Start()
		return nil
	})

	list := store.ListSummaries()
	if len(list) != 2 || list[0].ID != "new" || list[1].ID != "old" {
		t.Fatalf("unexpected order %#v", list)
	}
	if list[0].Phase != "playing" || list[0].Round != 1 {
		t.Fatalf("expected live phase in summary, got %#v", list[0])
	}
}
