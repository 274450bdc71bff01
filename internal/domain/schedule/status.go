// Package schedule holds the pure time classification rules shared by slot and
// booking read paths. Everything here is deterministic given an injected "now";
// nothing is ever persisted.
package schedule

import "time"

// Status describes where a booking sits relative to now.
type Status string

const (
	StatusToday    Status = "today"
	StatusUpcoming Status = "upcoming"
	StatusPast     Status = "past"
)

func (s Status) String() string {
	return string(s)
}

// IsPast reports whether instant is at or before now.
func IsPast(instant, now time.Time) bool {
	return !instant.After(now)
}

// Classify derives a booking status from its denormalized start/end instants.
// Precedence is strict: an appointment that already ended is past even if it
// started today; "today" means the start falls on the current calendar day.
func Classify(start, end, now time.Time) Status {
	if IsPast(end, now) {
		return StatusPast
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	s := start.In(now.Location())
	if !s.Before(dayStart) && s.Before(dayEnd) {
		return StatusToday
	}

	return StatusUpcoming
}

// Rank gives the display order for statuses: today < upcoming < past.
// Ties within a status are broken by ascending start instant at the call site.
func Rank(s Status) int {
	switch s {
	case StatusToday:
		return 0
	case StatusUpcoming:
		return 1
	default:
		return 2
	}
}
