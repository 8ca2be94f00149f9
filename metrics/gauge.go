package metrics

import (
	"math"
	"sync/atomic"

	"github.com/otlpkit/otlpkit"
)

// Gauge is a floating point accumulator without a monotonicity invariant.
// The value is stored as its bit pattern in a fixed-width slot so updates
// stay lock-free. All methods are safe for concurrent use.
type Gauge struct {
	bits  atomic.Uint64
	time  atomic.Uint64
	clock otlpkit.Clock
}

func newGauge(clock otlpkit.Clock) *Gauge {
	return &Gauge{clock: clock}
}

// Inc adds delta to the gauge.
func (gauge *Gauge) Inc(delta float64) {
	gauge.add(delta)
}

// Dec subtracts delta from the gauge.
func (gauge *Gauge) Dec(delta float64) {
	gauge.add(-delta)
}

func (gauge *Gauge) add(delta float64) {
	for {
		current := gauge.bits.Load()
		next := math.Float64bits(math.Float64frombits(current) + delta)
		if gauge.bits.CompareAndSwap(current, next) {
			break
		}
	}
	gauge.time.Store(gauge.clock.NowUnixNano())
}

// Set unconditionally replaces the gauge value.
func (gauge *Gauge) Set(value float64) {
	gauge.bits.Store(math.Float64bits(value))
	gauge.time.Store(gauge.clock.NowUnixNano())
}

// Value returns the current gauge value.
func (gauge *Gauge) Value() float64 {
	return math.Float64frombits(gauge.bits.Load())
}

// Updated returns the last update time in nanoseconds since Unix epoch.
func (gauge *Gauge) Updated() uint64 {
	return gauge.time.Load()
}

// Kind returns KindGauge.
func (gauge *Gauge) Kind() Kind {
	return KindGauge
}

func (*Gauge) sealed() {}
