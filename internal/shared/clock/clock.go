// Package clock provides the notion of "now" and "today" used by the domain services.
// Services never read the wall clock directly so tests can pin any date.
package clock

import "time"

type Clock interface {
	Now() time.Time
	// Today is the current UTC calendar date at midnight.
	Today() time.Time
}

type systemClock struct{}

func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (c systemClock) Today() time.Time {
	return truncate(c.Now())
}

type fixedClock struct {
	t time.Time
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func (c fixedClock) Today() time.Time {
	return truncate(c.t)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
