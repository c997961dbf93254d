package clock

import "time"

// Clock provides the current time and can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the local system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current local time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// UnixMilli returns c.Now() as Unix milliseconds
func UnixMilli(c Clock) int64 {
	return c.Now().UnixMilli()
}
