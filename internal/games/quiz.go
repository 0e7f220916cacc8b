package games

import (
	"playroom/internal/audio"
	"playroom/internal/round"
)

// quiz adapts a round.Session over any choice type to the Game interface.
type quiz[T any] struct {
	info    Info
	session *round.Session[T]
	option  func(T) Option
	prompt  func(target T) string
	sound   func(target T) (audio.Request, bool)
}

func (q *quiz[T]) Info() Info { return q.info }

func (q *quiz[T]) Start() round.Result   { return withCueURLs(q.session.Start()) }
func (q *quiz[T]) Restart() round.Result { return withCueURLs(q.session.Restart()) }
func (q *quiz[T]) Exit() round.Result    { return q.session.Exit() }

func (q *quiz[T]) Select(choiceID string) round.Result {
	return withCueURLs(q.session.Select(choiceID))
}

func (q *quiz[T]) Click(float64, float64) round.Result { return round.Ignored() }

func (q *quiz[T]) Advance(token int) round.Result {
	return withCueURLs(q.session.Advance(token))
}

func (q *quiz[T]) ClearFeedback(token int) round.Result {
	return q.session.ClearFeedback(token)
}

func (q *quiz[T]) Snapshot() Snapshot {
	view := q.session.View()
	snap := Snapshot{
		GameID:      q.info.ID,
		Title:       q.info.Title,
		Phase:       view.Phase,
		Round:       view.Round,
		TotalRounds: view.TotalRounds,
		Score:       view.Score,
		Options:     make([]Option, 0, len(view.Options)),
		Selection:   view.Selection,
		Feedback:    view.Feedback,
		HasSound:    q.sound != nil,
	}
	for _, ov := range view.Options {
		opt := q.option(ov.Choice)
		opt.Status = ov.Status
		snap.Options = append(snap.Options, opt)
	}
	if view.HasTarget {
		target := q.option(view.Target)
		snap.Target = &target
		if q.prompt != nil {
			snap.Prompt = q.prompt(view.Target)
		}
	}
	return snap
}

func (q *quiz[T]) SoundRequest() (audio.Request, bool) {
	if q.sound == nil {
		return audio.Request{}, false
	}
	phase := q.session.Phase()
	if phase != round.PhasePlaying && phase != round.PhaseRoundOver {
		return audio.Request{}, false
	}
	return q.sound(q.session.Current().Target)
}
