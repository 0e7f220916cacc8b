package web

import "time"

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02 15:04:05")
}

func formatOptionalTime(value *time.Time) string {
	if value == nil {
		return "-"
	}
	return formatTime(*value)
}

// playOutcome summarizes how a journaled play ended.
func playOutcome(play PlaySummary) string {
	switch {
	case play.FinishedAt != nil:
		return "finished"
	case play.ExitedAt != nil:
		return "left"
	case play.Starts == 0:
		return "not started"
	default:
		return "in progress"
	}
}
