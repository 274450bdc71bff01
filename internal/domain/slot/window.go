package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow = errors.New("start time must be before end time")
	ErrStartInPast   = errors.New("cannot create time slot in the past")
)

// Window is a validated provider availability window. The store assigns ids;
// the domain only guards the shape of the time range.
type Window struct {
	start time.Time
	end   time.Time
}

// NewWindow validates a slot window against now. The past check is repeated
// here even though forms pre-validate: the form's notion of "now" can be stale
// by the time the request lands.
func NewWindow(start, end, now time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	if !start.After(now) {
		return Window{}, ErrStartInPast
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

func (w Window) Duration() time.Duration {
	return w.end.Sub(w.start)
}
