package round

import (
	"errors"
	"math/rand/v2"
	"time"
)

var ErrInvalidRules = errors.New("invalid round rules")

// Feedback produces the text shown after a pick. chosen is the zero value
// and known is false when the picked id is not among the current options.
type Feedback[T any] struct {
	Correct   func(target T) string
	Incorrect func(target, chosen T, known bool) string
}

// StaticFeedback always shows the same two lines.
func StaticFeedback[T any](correct, incorrect string) Feedback[T] {
	return Feedback[T]{
		Correct:   func(T) string { return correct },
		Incorrect: func(T, T, bool) string { return incorrect },
	}
}

// Hooks add game specific cues on top of the correct/incorrect sounds.
type Hooks[T any] struct {
	OnRoundStart func(spec Spec[T]) []Cue
	OnCorrect    func(target T) []Cue
	OnIncorrect  func(target, chosen T, known bool) []Cue
}

type Rules[T any] struct {
	Catalog         []T
	TotalRounds     int
	ChoicesPerRound int
	RevealDelay     time.Duration
	RetryDelay      time.Duration
	ID              func(T) string
	// Match reports whether choiceID answers target. Defaults to id equality.
	Match    func(target T, choiceID string) bool
	Feedback Feedback[T]
	Hooks    Hooks[T]
}

type Session[T any] struct {
	rules     Rules[T]
	rng       *rand.Rand
	phase     Phase
	round     int
	score     int
	current   Spec[T]
	selection string
	feedback  string
	epoch     int
	retry     int
}

func New[T any](rules Rules[T], rng *rand.Rand) (*Session[T], error) {
	if rules.ID == nil || rules.TotalRounds <= 0 || rng == nil {
		return nil, ErrInvalidRules
	}
	if err := ValidateCatalog(rules.Catalog, rules.ChoicesPerRound, rules.ID); err != nil {
		return nil, err
	}
	if rules.Match == nil {
		id := rules.ID
		rules.Match = func(target T, choiceID string) bool {
			return id(target) == choiceID
		}
	}
	return &Session[T]{
		rules: rules,
		rng:   rng,
		phase: PhaseStart,
	}, nil
}

func (s *Session[T]) Phase() Phase      { return s.phase }
func (s *Session[T]) Round() int        { return s.round }
func (s *Session[T]) Score() int        { return s.score }
func (s *Session[T]) Current() Spec[T]  { return s.current }
func (s *Session[T]) Selection() string { return s.selection }
func (s *Session[T]) Feedback() string  { return s.feedback }
func (s *Session[T]) TotalRounds() int  { return s.rules.TotalRounds }

// Start begins a playthrough from the start screen or the end screen.
func (s *Session[T]) Start() Result {
	if s.phase != PhaseStart && s.phase != PhaseEnd {
		return Ignored()
	}
	return s.begin()
}

// Restart begins a fresh playthrough from any phase.
func (s *Session[T]) Restart() Result {
	return s.begin()
}

func (s *Session[T]) begin() Result {
	s.score = 0
	s.round = 1
	s.retry++
	cues, ok := s.setupRound()
	if !ok {
		return Result{Outcome: OutcomeFinished}
	}
	return Result{Outcome: OutcomeStarted, Cues: cues}
}

// Exit abandons the playthrough and returns to the start screen. Pending
// timers become stale.
func (s *Session[T]) Exit() Result {
	s.phase = PhaseStart
	s.round = 0
	s.score = 0
	s.current = Spec[T]{}
	s.selection = ""
	s.feedback = ""
	s.epoch++
	s.retry++
	return Result{Outcome: OutcomeExited}
}

// Select handles a pick. Picks outside the playing phase are ignored.
func (s *Session[T]) Select(choiceID string) Result {
	if s.phase != PhasePlaying {
		return Ignored()
	}
	target := s.current.Target
	s.selection = choiceID
	if s.rules.Match(target, choiceID) {
		s.score++
		s.phase = PhaseRoundOver
		s.feedback = textOrEmpty(s.rules.Feedback.Correct, target)
		cues := []Cue{{Kind: CueCorrect}}
		if s.rules.Hooks.OnCorrect != nil {
			cues = append(cues, s.rules.Hooks.OnCorrect(target)...)
		}
		return Result{
			Outcome: OutcomeCorrect,
			Cues:    cues,
			Timer:   &Timer{Kind: TimerAdvance, After: s.rules.RevealDelay, Token: s.epoch},
		}
	}

	chosen, known := s.lookup(choiceID)
	s.feedback = ""
	if s.rules.Feedback.Incorrect != nil {
		s.feedback = s.rules.Feedback.Incorrect(target, chosen, known)
	}
	cues := []Cue{{Kind: CueIncorrect}}
	if s.rules.Hooks.OnIncorrect != nil {
		cues = append(cues, s.rules.Hooks.OnIncorrect(target, chosen, known)...)
	}
	s.retry++
	return Result{
		Outcome: OutcomeIncorrect,
		Cues:    cues,
		Timer:   &Timer{Kind: TimerClear, After: s.rules.RetryDelay, Token: s.retry},
	}
}

// ClearFeedback drops a wrong pick once its display delay is over so the
// round can be retried.
func (s *Session[T]) ClearFeedback(token int) Result {
	if s.phase != PhasePlaying || token != s.retry {
		return Ignored()
	}
	if s.selection == "" && s.feedback == "" {
		return Ignored()
	}
	s.selection = ""
	s.feedback = ""
	return Result{Outcome: OutcomeCleared}
}

// Advance moves past a won round: to the next round, or to the end screen
// after the last one.
func (s *Session[T]) Advance(token int) Result {
	if s.phase != PhaseRoundOver || token != s.epoch {
		return Ignored()
	}
	if s.round >= s.rules.TotalRounds {
		s.phase = PhaseEnd
		s.epoch++
		return Result{Outcome: OutcomeFinished}
	}
	s.round++
	cues, ok := s.setupRound()
	if !ok {
		return Result{Outcome: OutcomeFinished}
	}
	return Result{Outcome: OutcomeNextRound, Cues: cues}
}

func (s *Session[T]) setupRound() ([]Cue, bool) {
	s.selection = ""
	s.feedback = ""
	s.epoch++
	spec, err := Generate(s.rng, s.rules.Catalog, s.rules.ChoicesPerRound)
	if err != nil {
		s.phase = PhaseEnd
		return nil, false
	}
	s.current = spec
	s.phase = PhasePlaying
	if s.rules.Hooks.OnRoundStart == nil {
		return nil, true
	}
	return s.rules.Hooks.OnRoundStart(spec), true
}

func (s *Session[T]) lookup(choiceID string) (T, bool) {
	for _, option := range s.current.Options {
		if s.rules.ID(option) == choiceID {
			return option, true
		}
	}
	var zero T
	return zero, false
}

func (s *Session[T]) isTarget(choiceID string) bool {
	if s.phase != PhasePlaying && s.phase != PhaseRoundOver {
		return false
	}
	return s.rules.Match(s.current.Target, choiceID)
}

// CardStatus mirrors how a card is drawn: the target lights up once the round
// is won, a wrong pick is flagged until it is cleared.
func (s *Session[T]) CardStatus(choiceID string) CardStatus {
	if s.selection == "" {
		return CardDefault
	}
	if s.isTarget(choiceID) && (s.phase == PhaseRoundOver || s.isTarget(s.selection)) {
		return CardCorrect
	}
	if choiceID == s.selection && !s.isTarget(choiceID) {
		return CardIncorrect
	}
	return CardDefault
}

type OptionView[T any] struct {
	ID     string
	Choice T
	Status CardStatus
}

type View[T any] struct {
	Phase          Phase
	Round          int
	TotalRounds    int
	Score          int
	Target         T
	HasTarget      bool
	TargetRevealed bool
	Options        []OptionView[T]
	Selection      string
	Feedback       string
}

func (s *Session[T]) View() View[T] {
	view := View[T]{
		Phase:          s.phase,
		Round:          s.round,
		TotalRounds:    s.rules.TotalRounds,
		Score:          s.score,
		TargetRevealed: s.phase == PhaseRoundOver,
		Selection:      s.selection,
		Feedback:       s.feedback,
	}
	if s.phase != PhasePlaying && s.phase != PhaseRoundOver {
		return view
	}
	view.Target = s.current.Target
	view.HasTarget = true
	view.Options = make([]OptionView[T], 0, len(s.current.Options))
	for _, option := range s.current.Options {
		id := s.rules.ID(option)
		view.Options = append(view.Options, OptionView[T]{
			ID:     id,
			Choice: option,
			Status: s.CardStatus(id),
		})
	}
	return view
}

func textOrEmpty[T any](fn func(T) string, value T) string {
	if fn == nil {
		return ""
	}
	return fn(value)
}
