package server

import (
	"playroom/internal/games"
	"playroom/internal/round"
)

type snapshotPayload struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Seq       int    `json:"seq"`
	games.Snapshot
	Info games.Info  `json:"info"`
	Cues []round.Cue `json:"cues"`
}

// snapshot must be called with the session locked.
func snapshot(session *Session, cues []round.Cue) snapshotPayload {
	if cues == nil {
		cues = []round.Cue{}
	}
	return snapshotPayload{
		Type:      "snapshot",
		SessionID: session.ID,
		Seq:       session.Seq,
		Snapshot:  session.Game.Snapshot(),
		Info:      session.Game.Info(),
		Cues:      cues,
	}
}

func (s *Server) currentSnapshot(sessionID string) (snapshotPayload, error) {
	var snap snapshotPayload
	err := s.store.Update(sessionID, func(session *Session) error {
		snap = snapshot(session, nil)
		return nil
	})
	return snap, err
}

// transition applies fn to the session's game, schedules the follow-up timer
// it asks for and pushes the new state to every open socket.
func (s *Server) transition(sessionID string, fn func(games.Game) round.Result) (snapshotPayload, round.Result, error) {
	var (
		snap   snapshotPayload
		res    round.Result
		playID uint
	)
	err := s.store.Update(sessionID, func(session *Session) error {
		res = fn(session.Game)
		if res.Changed() {
			session.Seq++
		}
		if res.Timer != nil {
			s.scheduleTimer(sessionID, *res.Timer)
		}
		snap = snapshot(session, res.Cues)
		playID = session.PlayID
		return nil
	})
	if err != nil {
		return snapshotPayload{}, round.Ignored(), err
	}
	if res.Changed() {
		s.journalTransition(playID, snap, res)
		s.ws.Broadcast(sessionID, snap)
	}
	return snap, res, nil
}
