package metrics

import (
	"sync/atomic"

	"github.com/otlpkit/otlpkit"
)

// Counter is a monotonically increasing accumulator. All methods are
// lock-free and safe for concurrent use.
type Counter struct {
	value atomic.Uint64
	time  atomic.Uint64
	clock otlpkit.Clock
}

func newCounter(clock otlpkit.Clock) *Counter {
	return &Counter{clock: clock}
}

// Inc adds delta to the counter.
func (counter *Counter) Inc(delta uint64) {
	counter.value.Add(delta)
	counter.time.Store(counter.clock.NowUnixNano())
}

// Absolute raises the counter to value. The magnitude never regresses,
// values below the current one are ignored.
func (counter *Counter) Absolute(value uint64) {
	for {
		current := counter.value.Load()
		if value <= current {
			break
		}
		if counter.value.CompareAndSwap(current, value) {
			break
		}
	}
	counter.time.Store(counter.clock.NowUnixNano())
}

// Value returns the accumulated magnitude.
func (counter *Counter) Value() uint64 {
	return counter.value.Load()
}

// Updated returns the last update time in nanoseconds since Unix epoch.
func (counter *Counter) Updated() uint64 {
	return counter.time.Load()
}

// Kind returns KindCounter.
func (counter *Counter) Kind() Kind {
	return KindCounter
}

func (*Counter) sealed() {}
