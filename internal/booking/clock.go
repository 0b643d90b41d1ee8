package booking

import "time"

// Clock supplies the current time. The service takes it as a dependency
// so the past-booking rules can be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
