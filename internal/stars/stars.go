// Package stars runs Connect the Stars: the player clicks the numbered stars of
// each constellation in order until the picture is complete.
package stars

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"playroom/internal/catalog"
	"playroom/internal/round"
)

const MissFeedback = "Try to find the next number!"

var ErrInvalidConfig = errors.New("invalid stars config")

type Config struct {
	// Radius is the hit distance in board units. A click must land strictly
	// inside it.
	Radius      float64
	RevealDelay time.Duration
	RetryDelay  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Radius:      20,
		RevealDelay: 2 * time.Second,
		RetryDelay:  time.Second,
	}
}

type Session struct {
	cfg       Config
	levels    []catalog.Constellation
	phase     round.Phase
	level     int
	connected int
	feedback  string
	epoch     int
	retry     int
}

// New shuffles levels once. Restarts replay the same order.
func New(levels []catalog.Constellation, rng *rand.Rand, cfg Config) (*Session, error) {
	if rng == nil || cfg.Radius <= 0 {
		return nil, ErrInvalidConfig
	}
	order := slices.Clone(levels)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return &Session{cfg: cfg, levels: order, phase: round.PhaseStart}, nil
}

func (s *Session) Phase() round.Phase { return s.phase }
func (s *Session) Level() int         { return s.level }
func (s *Session) LevelCount() int    { return len(s.levels) }
func (s *Session) Connected() int     { return s.connected }
func (s *Session) Feedback() string   { return s.feedback }

// Current returns the constellation being traced.
func (s *Session) Current() (catalog.Constellation, bool) {
	if s.phase != round.PhasePlaying && s.phase != round.PhaseRoundOver {
		return catalog.Constellation{}, false
	}
	return s.levels[s.level], true
}

func (s *Session) Start() round.Result {
	if s.phase != round.PhaseStart && s.phase != round.PhaseEnd {
		return round.Ignored()
	}
	return s.begin()
}

func (s *Session) Restart() round.Result {
	return s.begin()
}

func (s *Session) begin() round.Result {
	s.level = 0
	s.retry++
	s.setupLevel()
	if s.phase == round.PhaseEnd {
		return round.Result{Outcome: round.OutcomeFinished}
	}
	return round.Result{Outcome: round.OutcomeStarted}
}

func (s *Session) Exit() round.Result {
	s.phase = round.PhaseStart
	s.level = 0
	s.connected = 0
	s.feedback = ""
	s.epoch++
	s.retry++
	return round.Result{Outcome: round.OutcomeExited}
}

// Click handles a click at board coordinates. Only the next star in order
// counts.
func (s *Session) Click(x, y float64) round.Result {
	if s.phase != round.PhasePlaying {
		return round.Ignored()
	}
	level := s.levels[s.level]
	if s.connected >= len(level.Stars) {
		return round.Ignored()
	}
	next := level.Stars[s.connected]
	if math.Hypot(x-next.X, y-next.Y) >= s.cfg.Radius {
		s.feedback = MissFeedback
		s.retry++
		return round.Result{
			Outcome: round.OutcomeIncorrect,
			Timer:   &round.Timer{Kind: round.TimerClear, After: s.cfg.RetryDelay, Token: s.retry},
		}
	}

	s.connected++
	s.feedback = ""
	s.retry++
	if s.connected < len(level.Stars) {
		return round.Result{Outcome: round.OutcomeHit}
	}
	s.phase = round.PhaseRoundOver
	s.feedback = CompletionFeedback(level.Name)
	return round.Result{
		Outcome: round.OutcomeCorrect,
		Cues:    []round.Cue{{Kind: round.CueCorrect, URL: catalog.SoundCorrect}},
		Timer:   &round.Timer{Kind: round.TimerAdvance, After: s.cfg.RevealDelay, Token: s.epoch},
	}
}

func (s *Session) ClearFeedback(token int) round.Result {
	if s.phase != round.PhasePlaying || token != s.retry || s.feedback == "" {
		return round.Ignored()
	}
	s.feedback = ""
	return round.Result{Outcome: round.OutcomeCleared}
}

func (s *Session) Advance(token int) round.Result {
	if s.phase != round.PhaseRoundOver || token != s.epoch {
		return round.Ignored()
	}
	if s.level+1 >= len(s.levels) {
		s.phase = round.PhaseEnd
		s.epoch++
		return round.Result{Outcome: round.OutcomeFinished}
	}
	s.level++
	s.setupLevel()
	return round.Result{Outcome: round.OutcomeNextRound}
}

func (s *Session) setupLevel() {
	s.connected = 0
	s.feedback = ""
	s.epoch++
	if len(s.levels) == 0 {
		s.phase = round.PhaseEnd
		return
	}
	s.phase = round.PhasePlaying
}

func CompletionFeedback(name string) string {
	return fmt.Sprintf("You made a %s! ✨", name)
}

type View struct {
	Phase         round.Phase
	Level         int
	LevelCount    int
	Connected     int
	Feedback      string
	Constellation string
	Stars         []catalog.Star
}

func (s *Session) View() View {
	view := View{
		Phase:      s.phase,
		Level:      s.level,
		LevelCount: len(s.levels),
		Connected:  s.connected,
		Feedback:   s.feedback,
	}
	if current, ok := s.Current(); ok {
		view.Constellation = current.Name
		view.Stars = slices.Clone(current.Stars)
	}
	return view
}
