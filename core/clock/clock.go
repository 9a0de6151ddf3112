package clock

import "time"

// Clock is the time source injected into every component that stamps or
// compares instants, so expiry logic is testable without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns the wall-clock backed Clock used in production.
func System() Clock {
	return systemClock{}
}
