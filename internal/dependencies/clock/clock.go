package clock

import "time"

// Clock reports the current instant. Callers convert it into the game's
// local day through the calendar service.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// New returns the system clock
func New() Clock {
	return Func(time.Now)
}
