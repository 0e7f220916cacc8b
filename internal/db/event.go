package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EventSessionStarted  = "session_started"
	EventRoundWon        = "round_won"
	EventSessionFinished = "session_finished"
	EventSessionExited   = "session_exited"
	EventSoundFallback   = "sound_fallback"
)

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	PlayID    uint           `gorm:"index;not null"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}

func (Event) TableName() string {
	return "play_events"
}
