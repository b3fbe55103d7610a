package punchlog

import "time"

// Clock supplies the current time. Injecting it keeps punch timestamps
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
