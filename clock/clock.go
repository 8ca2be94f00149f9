package clock

import "time"

// SystemClock is struct clock-component.
type SystemClock struct{}

// NewSystemClock is construct for clock-component.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// NowUnixNano returns now time in nanoseconds since Unix epoch.
func (t *SystemClock) NowUnixNano() uint64 {
	return uint64(time.Now().UnixNano())
}

// NowUTC returns now time.Time with UTC location.
func (t *SystemClock) NowUTC() time.Time {
	return time.Now().UTC()
}
