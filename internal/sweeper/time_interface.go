package sweeper

import "time"

// TimeProvider provides the current time for dependency injection.
// The staleness cutoff is computed against it, so tests can pin "now".
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider implements TimeProvider using the system clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider implements TimeProvider with a fixed instant, for testing.
type FixedTimeProvider struct {
	Time time.Time
}

// Now returns the fixed instant.
func (f *FixedTimeProvider) Now() time.Time {
	return f.Time
}
