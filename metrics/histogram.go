package metrics

import (
	"math"
	"sync/atomic"

	"github.com/otlpkit/otlpkit"
)

// Histogram accumulates a running sum, an observation count and, when
// bucket bounds were configured, per-bucket observation counters. Bounds
// are fixed at creation. All methods are lock-free and safe for
// concurrent use.
type Histogram struct {
	sum     atomic.Uint64
	count   atomic.Uint64
	time    atomic.Uint64
	bounds  []float64
	buckets []atomic.Uint64
	clock   otlpkit.Clock
}

func newHistogram(clock otlpkit.Clock, bounds []float64) *Histogram {
	histogram := &Histogram{clock: clock}
	if len(bounds) > 0 {
		histogram.bounds = bounds
		// one extra bucket catches values above the last bound
		histogram.buckets = make([]atomic.Uint64, len(bounds)+1)
	}
	return histogram
}

// Record adds one observation. Exactly one bucket counter increments:
// the first bucket whose bound is >= value, or the overflow bucket when
// value exceeds every bound.
func (histogram *Histogram) Record(value float64) {
	for {
		current := histogram.sum.Load()
		next := math.Float64bits(math.Float64frombits(current) + value)
		if histogram.sum.CompareAndSwap(current, next) {
			break
		}
	}

	if len(histogram.bounds) > 0 {
		bucket := len(histogram.bounds)
		for i, bound := range histogram.bounds {
			if value <= bound {
				bucket = i
				break
			}
		}
		histogram.buckets[bucket].Add(1)
	}

	histogram.count.Add(1)
	histogram.time.Store(histogram.clock.NowUnixNano())
}

// Sum returns the running sum of recorded values.
func (histogram *Histogram) Sum() float64 {
	return math.Float64frombits(histogram.sum.Load())
}

// Count returns the number of recorded observations.
func (histogram *Histogram) Count() uint64 {
	return histogram.count.Load()
}

// Bounds returns the configured bucket upper bounds, nil when the
// histogram tracks sum and count only.
func (histogram *Histogram) Bounds() []float64 {
	return histogram.bounds
}

// BucketCounts returns the per-bucket observation counts, nil when no
// bounds were configured. The last element counts values above the last
// bound.
func (histogram *Histogram) BucketCounts() []uint64 {
	if len(histogram.buckets) == 0 {
		return nil
	}
	counts := make([]uint64, len(histogram.buckets))
	for i := range histogram.buckets {
		counts[i] = histogram.buckets[i].Load()
	}
	return counts
}

// Updated returns the last update time in nanoseconds since Unix epoch.
func (histogram *Histogram) Updated() uint64 {
	return histogram.time.Load()
}

// Kind returns KindHistogram.
func (histogram *Histogram) Kind() Kind {
	return KindHistogram
}

func (*Histogram) sealed() {}
