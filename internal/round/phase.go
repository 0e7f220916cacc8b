// Package round implements the round lifecycle shared by every quiz-style game:
// a generic state machine that moves a session through start, playing,
// round-over and end, plus the selector that draws each round's choices.
//
// Transitions never sleep. Whenever a delayed follow-up is needed the result
// carries a Timer describing it; the host schedules the callback and passes
// the token back so late callbacks can be recognised and dropped.
package round

import "time"

type Phase string

const (
	PhaseStart     Phase = "start"
	PhasePlaying   Phase = "playing"
	PhaseRoundOver Phase = "round-over"
	PhaseEnd       Phase = "end"
)

type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeStarted
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeHit
	OutcomeCleared
	OutcomeNextRound
	OutcomeFinished
	OutcomeExited
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStarted:
		return "started"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeHit:
		return "hit"
	case OutcomeCleared:
		return "cleared"
	case OutcomeNextRound:
		return "next-round"
	case OutcomeFinished:
		return "finished"
	case OutcomeExited:
		return "exited"
	default:
		return "ignored"
	}
}

type CueKind string

const (
	CueCorrect   CueKind = "correct"
	CueIncorrect CueKind = "incorrect"
	CueSpeak     CueKind = "speak"
)

// Cue is a side effect for the presentation layer: a sound to play or a line
// to speak. Playback failures never reach the state machine.
type Cue struct {
	Kind CueKind `json:"kind"`
	Text string  `json:"text,omitempty"`
	URL  string  `json:"url,omitempty"`
}

func Speak(text string) Cue {
	return Cue{Kind: CueSpeak, Text: text}
}

type TimerKind string

const (
	TimerAdvance TimerKind = "advance"
	TimerClear   TimerKind = "clear"
)

// Timer asks the host to call back after a delay. Token must be handed back
// unchanged to Advance or ClearFeedback.
type Timer struct {
	Kind  TimerKind
	After time.Duration
	Token int
}

type Result struct {
	Outcome Outcome
	Cues    []Cue
	Timer   *Timer
}

// Changed reports whether the transition altered the session.
func (r Result) Changed() bool {
	return r.Outcome != OutcomeIgnored
}

var ignored = Result{Outcome: OutcomeIgnored}

func Ignored() Result {
	return ignored
}

type CardStatus string

const (
	CardDefault   CardStatus = "default"
	CardCorrect   CardStatus = "correct"
	CardIncorrect CardStatus = "incorrect"
)
