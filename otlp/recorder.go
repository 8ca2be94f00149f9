package otlp

import (
	"time"

	"github.com/otlpkit/otlpkit/metrics"
)

// Recorder couples a metric registry with the resource identity it
// exports under. It is the facade the export trigger and pull handlers
// consume.
type Recorder struct {
	registry *metrics.Registry
	resource Resource
}

// NewRecorder creates a Recorder exporting the given registry under the
// given resource.
func NewRecorder(registry *metrics.Registry, resource Resource) *Recorder {
	return &Recorder{registry: registry, resource: resource}
}

// Registry returns the wrapped registry.
func (recorder *Recorder) Registry() *metrics.Registry {
	return recorder.registry
}

// SnapshotJSON renders the current registry state as an OTLP JSON
// document. A positive window keeps only metrics updated within window of
// now.
func (recorder *Recorder) SnapshotJSON(window time.Duration) ([]byte, error) {
	return Marshal(recorder.resource, recorder.registry.Snapshot(window))
}
