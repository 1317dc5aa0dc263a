// Package lottery implements the submission-window gate: the date range during
// which level 1/2 requests for a given vacation date may be submitted.
package lottery

import "time"

// Config carries the window tunables from the settings snapshot.
type Config struct {
	// Months is how many whole months before the vacation date's month the
	// window sits.
	Months int
	// StartDay and EndDay bound the window inside that month, both inclusive.
	StartDay int
	EndDay   int
}

// Phase classifies "now" relative to a vacation date's window.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseWithin Phase = "within"
	PhaseAfter  Phase = "after"
)

// Window returns the closed interval [start, end] of the submission window for
// a vacation date. The month is computed with explicit year/month arithmetic
// rather than AddDate, which would drift at month ends (e.g. stepping back one
// month from March 31).
func Window(date time.Time, cfg Config) (time.Time, time.Time) {
	year := date.Year()
	month := int(date.Month()) - cfg.Months
	for month < 1 {
		month += 12
		year--
	}

	start := time.Date(year, time.Month(month), cfg.StartDay, 0, 0, 0, 0, date.Location())
	// End day includes the whole day.
	end := time.Date(year, time.Month(month), cfg.EndDay, 23, 59, 59, 0, date.Location())
	return start, end
}

// IsWithin reports whether now falls inside the submission window for date.
func IsWithin(date time.Time, cfg Config, now time.Time) bool {
	start, end := Window(date, cfg)
	return !now.Before(start) && !now.After(end)
}

// Classify places now before, within or after the window for date.
func Classify(date time.Time, cfg Config, now time.Time) Phase {
	start, end := Window(date, cfg)
	switch {
	case now.Before(start):
		return PhaseBefore
	case now.After(end):
		return PhaseAfter
	default:
		return PhaseWithin
	}
}
