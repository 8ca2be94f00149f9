package otlp

import (
	"encoding/json"

	"github.com/otlpkit/otlpkit/metrics"
)

// cumulative temporality per the OTLP metrics data model
const aggregationTemporalityCumulative = 2

// Resource identifies the exporting service in the produced document.
type Resource struct {
	ServiceName    string
	ServiceVersion string
	InstanceID     string
}

// Struct field order below fixes the emitted key order, matching the OTLP
// metrics JSON schema.
type document struct {
	ResourceMetrics []resourceMetrics `json:"resourceMetrics"`
}

type resourceMetrics struct {
	Resource     resourceNode   `json:"resource"`
	ScopeMetrics []scopeMetrics `json:"scopeMetrics"`
}

type resourceNode struct {
	Attributes []attribute `json:"attributes"`
}

type scopeMetrics struct {
	Metrics []metricNode `json:"metrics"`
}

type metricNode struct {
	Name        string         `json:"name"`
	Unit        string         `json:"unit"`
	Description string         `json:"description"`
	Sum         *sumNode       `json:"sum,omitempty"`
	Gauge       *gaugeNode     `json:"gauge,omitempty"`
	Histogram   *histogramNode `json:"histogram,omitempty"`
}

type sumNode struct {
	AggregationTemporality int         `json:"aggregationTemporality"`
	IsMonotonic            bool        `json:"isMonotonic"`
	DataPoints             []dataPoint `json:"dataPoints"`
}

type gaugeNode struct {
	DataPoints []dataPoint `json:"dataPoints"`
}

type histogramNode struct {
	AggregationTemporality int                  `json:"aggregationTemporality"`
	DataPoints             []histogramDataPoint `json:"dataPoints"`
}

type dataPoint struct {
	AsInt             *uint64     `json:"asInt,omitempty"`
	AsDouble          *float64    `json:"asDouble,omitempty"`
	StartTimeUnixNano uint64      `json:"startTimeUnixNano"`
	TimeUnixNano      uint64      `json:"timeUnixNano"`
	Attributes        []attribute `json:"attributes"`
}

type histogramDataPoint struct {
	StartTimeUnixNano uint64      `json:"startTimeUnixNano"`
	TimeUnixNano      uint64      `json:"timeUnixNano"`
	Count             uint64      `json:"count"`
	Sum               float64     `json:"sum"`
	Attributes        []attribute `json:"attributes"`
	BucketCounts      []uint64    `json:"bucketCounts,omitempty"`
	ExplicitBounds    []float64   `json:"explicitBounds,omitempty"`
}

type attribute struct {
	Key   string         `json:"key"`
	Value attributeValue `json:"value"`
}

type attributeValue struct {
	StringValue string `json:"stringValue"`
}

// Marshal renders a registry snapshot as an OTLP metrics JSON document:
// one resource carrying the service attributes, one scope, and the
// snapshot's metrics in their registration order.
func Marshal(resource Resource, snapshot []metrics.Metric) ([]byte, error) {
	nodes := make([]metricNode, 0, len(snapshot))
	for _, metric := range snapshot {
		nodes = append(nodes, makeNode(metric))
	}

	doc := document{
		ResourceMetrics: []resourceMetrics{{
			Resource: resourceNode{
				Attributes: []attribute{
					makeAttribute("service.name", resource.ServiceName),
					makeAttribute("service.version", resource.ServiceVersion),
					makeAttribute("service.instance.id", resource.InstanceID),
				},
			},
			ScopeMetrics: []scopeMetrics{{Metrics: nodes}},
		}},
	}
	return json.Marshal(doc)
}

func makeNode(metric metrics.Metric) metricNode {
	node := metricNode{
		Name:        metric.Identity.Name,
		Unit:        canonicalUnit(metric.Unit),
		Description: metric.Description,
	}

	switch value := metric.Value.(type) {
	case *metrics.Counter:
		magnitude := value.Value()
		node.Sum = &sumNode{
			AggregationTemporality: aggregationTemporalityCumulative,
			IsMonotonic:            true,
			DataPoints: []dataPoint{{
				AsInt:             &magnitude,
				StartTimeUnixNano: metric.StartTime,
				TimeUnixNano:      value.Updated(),
				Attributes:        makeAttributes(metric.Identity.Labels),
			}},
		}
	case *metrics.Gauge:
		current := value.Value()
		node.Gauge = &gaugeNode{
			DataPoints: []dataPoint{{
				AsDouble:          &current,
				StartTimeUnixNano: metric.StartTime,
				TimeUnixNano:      value.Updated(),
				Attributes:        makeAttributes(metric.Identity.Labels),
			}},
		}
	case *metrics.Histogram:
		node.Histogram = &histogramNode{
			AggregationTemporality: aggregationTemporalityCumulative,
			DataPoints: []histogramDataPoint{{
				StartTimeUnixNano: metric.StartTime,
				TimeUnixNano:      value.Updated(),
				Count:             value.Count(),
				Sum:               value.Sum(),
				Attributes:        makeAttributes(metric.Identity.Labels),
				BucketCounts:      value.BucketCounts(),
				ExplicitBounds:    value.Bounds(),
			}},
		}
	}
	return node
}

func makeAttributes(labels metrics.Attributes) []attribute {
	attributes := make([]attribute, 0, len(labels))
	for _, label := range labels {
		attributes = append(attributes, makeAttribute(label.Key, label.Value))
	}
	return attributes
}

func makeAttribute(key, value string) attribute {
	return attribute{Key: key, Value: attributeValue{StringValue: value}}
}

func canonicalUnit(unit string) string {
	if unit == "" {
		return "1"
	}
	return unit
}
