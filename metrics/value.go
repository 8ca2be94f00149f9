package metrics

// Kind discriminates the accumulator kinds a registry can hold.
type Kind string

const (
	KindCounter   Kind = "counter"
	KindGauge     Kind = "gauge"
	KindHistogram Kind = "histogram"
)

// Value is the closed set of accumulators: *Counter, *Gauge and *Histogram.
// Consumers switch exhaustively on the concrete type.
type Value interface {
	Kind() Kind
	// Updated returns the last update time in nanoseconds since Unix epoch,
	// zero if the accumulator was never updated.
	Updated() uint64

	sealed()
}
