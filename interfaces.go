package otlpkit

import "time"

// Clock abstracts the wall-clock time source so registry windowing and
// accumulator timestamps can be pinned in tests
type Clock interface {
	// NowUnixNano returns current wall-clock time in nanoseconds since Unix epoch
	NowUnixNano() uint64
	// NowUTC returns now time.Time with UTC location
	NowUTC() time.Time
}

// Logger implements logger abstraction
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
}
