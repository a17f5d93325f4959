package clock

import "time"

// Clock supplies the current instant. Services take one so tests can pin time.
type Clock interface {
	Now() time.Time
}

// NewSystem returns a Clock backed by the wall clock, normalized to UTC.
func NewSystem() Clock {
	return sysClock{}
}

// NewFixed returns a Clock frozen at t, for deterministic tests.
func NewFixed(t time.Time) Clock {
	return frozenClock{at: t.UTC()}
}

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

type frozenClock struct {
	at time.Time
}

func (c frozenClock) Now() time.Time { return c.at }
