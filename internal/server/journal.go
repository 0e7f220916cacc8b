package server

import (
	"encoding/json"
	"log"

	"playroom/internal/db"
	"playroom/internal/round"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The journal is write-only: nothing here is ever read back into a running
// session. Failures are logged and otherwise ignored.

func (s *Server) journalCreatePlay(session *Session) {
	if s.db == nil {
		return
	}
	record := db.Play{
		SessionID: session.ID,
		GameID:    string(session.GameID),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("journal create play failed session_id=%s error=%v", session.ID, err)
		return
	}
	session.PlayID = record.ID
}

func (s *Server) journalEvent(playID uint, eventType string, payload EventPayload) {
	if s.db == nil || playID == 0 {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("journal encode failed play_id=%d type=%s error=%v", playID, eventType, err)
		return
	}
	record := db.Event{
		PlayID:    playID,
		Type:      eventType,
		Payload:   datatypes.JSON(data),
		CreatedAt: timeNowUTC(),
	}
	if err := s.db.Create(&record).Error; err != nil {
		log.Printf("journal event failed play_id=%d type=%s error=%v", playID, eventType, err)
	}
}

func (s *Server) journalTransition(playID uint, snap snapshotPayload, res round.Result) {
	if s.db == nil || playID == 0 {
		return
	}
	payload := EventPayload{
		SessionID:   snap.SessionID,
		GameID:      string(snap.GameID),
		Round:       snap.Round,
		Score:       snap.Score,
		TotalRounds: snap.TotalRounds,
	}
	switch res.Outcome {
	case round.OutcomeStarted:
		s.updatePlay(playID, map[string]any{
			"starts":       gorm.Expr("starts + 1"),
			"score":        0,
			"total_rounds": snap.TotalRounds,
			"finished_at":  nil,
		})
		s.journalEvent(playID, db.EventSessionStarted, payload)
	case round.OutcomeCorrect:
		s.updatePlay(playID, map[string]any{"score": snap.Score})
		s.journalEvent(playID, db.EventRoundWon, payload)
	case round.OutcomeFinished:
		s.updatePlay(playID, map[string]any{
			"score":        snap.Score,
			"total_rounds": snap.TotalRounds,
			"finished_at":  timeNowUTC(),
		})
		s.journalEvent(playID, db.EventSessionFinished, payload)
	}
}

func (s *Server) journalExit(session *Session, reason string) {
	if s.db == nil || session.PlayID == 0 {
		return
	}
	s.updatePlay(session.PlayID, map[string]any{"exited_at": timeNowUTC()})
	s.journalEvent(session.PlayID, db.EventSessionExited, EventPayload{
		SessionID: session.ID,
		GameID:    string(session.GameID),
		Reason:    reason,
	})
}

func (s *Server) journalSoundFallback(session *Session, key string) {
	s.journalEvent(session.PlayID, db.EventSoundFallback, EventPayload{
		SessionID: session.ID,
		GameID:    string(session.GameID),
		SoundKey:  key,
	})
}

func (s *Server) updatePlay(playID uint, fields map[string]any) {
	if err := s.db.Model(&db.Play{}).Where("id = ?", playID).Updates(fields).Error; err != nil {
		log.Printf("journal update play failed play_id=%d error=%v", playID, err)
	}
}
