package db

import "time"

// Play is one browser session of one game, from lobby navigation until it is
// left or replaced.
type Play struct {
	ID          uint       `gorm:"primaryKey"`
	SessionID   string     `gorm:"size:64;uniqueIndex;not null"`
	GameID      string     `gorm:"size:64;index;not null"`
	Score       int        `gorm:"not null;default:0"`
	TotalRounds int        `gorm:"not null;default:0"`
	Starts      int        `gorm:"not null;default:0"`
	FinishedAt  *time.Time
	ExitedAt    *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	Events      []Event
}
