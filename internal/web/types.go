package web

import "time"

type GameCard struct {
	ID      string
	Title   string
	Tagline string
	Theme   string
	Current bool
}

type LobbyData struct {
	Games            []GameCard
	CurrentSessionID string
	CurrentTitle     string
}

type PlayData struct {
	SessionID string
	GameID    string
	Title     string
	Tagline   string
	Theme     string
}

type ActiveSession struct {
	ID        string
	GameID    string
	Phase     string
	Round     int
	Score     int
	Sockets   int
	CreatedAt time.Time
}

type PlaySummary struct {
	ID          uint
	SessionID   string
	GameID      string
	Score       int
	TotalRounds int
	Starts      int
	FinishedAt  *time.Time
	ExitedAt    *time.Time
	CreatedAt   time.Time
}
