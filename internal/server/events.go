package server

type EventPayload struct {
	SessionID   string `json:"session_id,omitempty"`
	GameID      string `json:"game_id,omitempty"`
	Round       int    `json:"round,omitempty"`
	Score       int    `json:"score,omitempty"`
	TotalRounds int    `json:"total_rounds,omitempty"`
	Reason      string `json:"reason,omitempty"`
	SoundKey    string `json:"sound_key,omitempty"`
}
