package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/otlpkit/otlpkit"
)

// BucketsLabel is the label key carrying histogram bucket bounds as a
// comma-separated ascending list of numbers.
const BucketsLabel = "buckets"

var (
	// ErrKindMismatch means a metric name is already registered under another kind.
	ErrKindMismatch = errors.New("metric kind mismatch")
	// ErrInvalidBuckets means the buckets label holds a non-numeric bound.
	ErrInvalidBuckets = errors.New("invalid histogram buckets")
)

// Metric is one registered metric: its identity, metadata and accumulator.
type Metric struct {
	Identity    Identity
	StartTime   uint64
	Description string
	Unit        string
	Value       Value
}

type description struct {
	name string
	unit string
	text string
}

// Registry is the single source of truth mapping metric names to
// accumulators. Registration, description declarations and snapshots are
// guarded by one mutex; updates through handles returned by Register*
// never touch it.
type Registry struct {
	clock otlpkit.Clock

	mu sync.Mutex
	// insertion order, the order metrics appear in every export
	metrics      []*Metric
	descriptions []description
}

// NewRegistry creates an empty registry stamping times with the given clock.
func NewRegistry(clock otlpkit.Clock) *Registry {
	return &Registry{clock: clock}
}

// RegisterCounter returns the counter registered under name, creating it
// on first use. Lookup is by bare name: labels matter only for the first
// registration and become the exported attributes.
func (registry *Registry) RegisterCounter(name string, labels Attributes) (*Counter, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if existing := registry.find(name); existing != nil {
		counter, ok := existing.Value.(*Counter)
		if !ok {
			return nil, fmt.Errorf("%w: %s is already registered as %s", ErrKindMismatch, name, existing.Value.Kind())
		}
		return counter, nil
	}

	counter := newCounter(registry.clock)
	registry.add(name, labels, counter)
	return counter, nil
}

// RegisterGauge returns the gauge registered under name, creating it on
// first use.
func (registry *Registry) RegisterGauge(name string, labels Attributes) (*Gauge, error) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if existing := registry.find(name); existing != nil {
		gauge, ok := existing.Value.(*Gauge)
		if !ok {
			return nil, fmt.Errorf("%w: %s is already registered as %s", ErrKindMismatch, name, existing.Value.Kind())
		}
		return gauge, nil
	}

	gauge := newGauge(registry.clock)
	registry.add(name, labels, gauge)
	return gauge, nil
}

// RegisterHistogram returns the histogram registered under name, creating
// it on first use. Bucket bounds come from the BucketsLabel label; without
// it the histogram tracks sum and count only.
func (registry *Registry) RegisterHistogram(name string, labels Attributes) (*Histogram, error) {
	bounds, err := parseBounds(labels)
	if err != nil {
		return nil, err
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if existing := registry.find(name); existing != nil {
		histogram, ok := existing.Value.(*Histogram)
		if !ok {
			return nil, fmt.Errorf("%w: %s is already registered as %s", ErrKindMismatch, name, existing.Value.Kind())
		}
		return histogram, nil
	}

	histogram := newHistogram(registry.clock, bounds)
	registry.add(name, labels, histogram)
	return histogram, nil
}

// Describe declares a unit and a human-readable description for the given
// bare metric name. The declaration binds to metrics of that name created
// afterwards; metrics that already exist keep their metadata.
func (registry *Registry) Describe(name, unit, text string) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.descriptions = append(registry.descriptions, description{name: name, unit: unit, text: text})
}

// Snapshot returns registered metrics in insertion order. A positive
// window keeps only metrics updated within window of now; otherwise every
// metric is included. Accumulators are not reset and keep growing across
// snapshots.
func (registry *Registry) Snapshot(window time.Duration) []Metric {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	snapshot := make([]Metric, 0, len(registry.metrics))
	if window <= 0 {
		for _, metric := range registry.metrics {
			snapshot = append(snapshot, *metric)
		}
		return snapshot
	}

	now := registry.clock.NowUnixNano()
	for _, metric := range registry.metrics {
		updated := metric.Value.Updated()
		if updated > now || now-updated <= uint64(window) {
			snapshot = append(snapshot, *metric)
		}
	}
	return snapshot
}

// find must be called under the registry mutex.
func (registry *Registry) find(name string) *Metric {
	for _, metric := range registry.metrics {
		if metric.Identity.Name == name {
			return metric
		}
	}
	return nil
}

// add must be called under the registry mutex. It binds a previously
// declared description matching the bare name, if any.
func (registry *Registry) add(name string, labels Attributes, value Value) {
	metric := &Metric{
		Identity:  Identity{Name: name, Labels: labels},
		StartTime: registry.clock.NowUnixNano(),
		Value:     value,
	}
	for _, declared := range registry.descriptions {
		if declared.name == name {
			metric.Description = declared.text
			metric.Unit = declared.unit
			break
		}
	}
	registry.metrics = append(registry.metrics, metric)
}

func parseBounds(labels Attributes) ([]float64, error) {
	raw, ok := labels.Get(BucketsLabel)
	if !ok {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	bounds := make([]float64, 0, len(parts))
	for _, part := range parts {
		bound, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidBuckets, part)
		}
		bounds = append(bounds, bound)
	}
	return bounds, nil
}
