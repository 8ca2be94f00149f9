package otlp

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/otlpkit/otlpkit/metrics"
	mock_clock "github.com/otlpkit/otlpkit/mock/clock"
)

var testResource = Resource{
	ServiceName:    "otlpkit",
	ServiceVersion: "0.1.0",
	InstanceID:     "instance-1",
}

const testResourceJSON = `{"attributes":[{"key":"service.name","value":{"stringValue":"otlpkit"}},` +
	`{"key":"service.version","value":{"stringValue":"0.1.0"}},` +
	`{"key":"service.instance.id","value":{"stringValue":"instance-1"}}]}`

// testRegistry returns a registry whose clock reads the returned counter,
// so registration happens at 1000ns and updates can be pinned later.
func testRegistry(t *testing.T) (*metrics.Registry, *atomic.Uint64) {
	mockCtrl := gomock.NewController(t)

	now := &atomic.Uint64{}
	now.Store(1000)
	systemClock := mock_clock.NewMockClock(mockCtrl)
	systemClock.EXPECT().NowUnixNano().DoAndReturn(now.Load).AnyTimes()

	return metrics.NewRegistry(systemClock), now
}

func TestMarshalEmptyRegistry(t *testing.T) {
	registry, _ := testRegistry(t)

	payload, err := Marshal(testResource, registry.Snapshot(0))
	require.NoError(t, err)
	require.Equal(t,
		`{"resourceMetrics":[{"resource":`+testResourceJSON+`,"scopeMetrics":[{"metrics":[]}]}]}`,
		string(payload))
}

func TestMarshalCounter(t *testing.T) {
	registry, now := testRegistry(t)

	counter, err := registry.RegisterCounter("test_counter", metrics.Attributes{{Key: "label1", Value: "label_value1"}})
	require.NoError(t, err)

	now.Store(2000)
	for i := 0; i < 3; i++ {
		counter.Inc(1)
	}

	payload, err := Marshal(testResource, registry.Snapshot(0))
	require.NoError(t, err)
	require.Equal(t,
		`{"resourceMetrics":[{"resource":`+testResourceJSON+`,"scopeMetrics":[{"metrics":[`+
			`{"name":"test_counter","unit":"1","description":"","sum":{"aggregationTemporality":2,"isMonotonic":true,`+
			`"dataPoints":[{"asInt":3,"startTimeUnixNano":1000,"timeUnixNano":2000,`+
			`"attributes":[{"key":"label1","value":{"stringValue":"label_value1"}}]}]}}]}]}]}`,
		string(payload))
}

func TestMarshalGaugeLastWriteWins(t *testing.T) {
	registry, now := testRegistry(t)

	gauge, err := registry.RegisterGauge("test_gauge", metrics.Attributes{{Key: "label2", Value: "label_value2"}})
	require.NoError(t, err)

	now.Store(2000)
	gauge.Set(10)
	gauge.Set(20)

	payload, err := Marshal(testResource, registry.Snapshot(0))
	require.NoError(t, err)
	require.Equal(t,
		`{"resourceMetrics":[{"resource":`+testResourceJSON+`,"scopeMetrics":[{"metrics":[`+
			`{"name":"test_gauge","unit":"1","description":"","gauge":`+
			`{"dataPoints":[{"asDouble":20,"startTimeUnixNano":1000,"timeUnixNano":2000,`+
			`"attributes":[{"key":"label2","value":{"stringValue":"label_value2"}}]}]}}]}]}]}`,
		string(payload))
}

func TestMarshalHistogram(t *testing.T) {
	registry, now := testRegistry(t)

	histogram, err := registry.RegisterHistogram("test_histogram", metrics.Attributes{{Key: metrics.BucketsLabel, Value: "10,30"}})
	require.NoError(t, err)

	now.Store(2000)
	histogram.Record(10)
	histogram.Record(30)

	payload, err := Marshal(testResource, registry.Snapshot(0))
	require.NoError(t, err)
	require.Equal(t,
		`{"resourceMetrics":[{"resource":`+testResourceJSON+`,"scopeMetrics":[{"metrics":[`+
			`{"name":"test_histogram","unit":"1","description":"","histogram":{"aggregationTemporality":2,`+
			`"dataPoints":[{"startTimeUnixNano":1000,"timeUnixNano":2000,"count":2,"sum":40,`+
			`"attributes":[{"key":"buckets","value":{"stringValue":"10,30"}}],`+
			`"bucketCounts":[1,1,0],"explicitBounds":[10,30]}]}}]}]}]}`,
		string(payload))
}

func TestMarshalHistogramWithoutBounds(t *testing.T) {
	registry, now := testRegistry(t)

	histogram, err := registry.RegisterHistogram("test_histogram", nil)
	require.NoError(t, err)

	now.Store(2000)
	for i := 0; i < 3; i++ {
		histogram.Record(10)
	}

	payload, err := Marshal(testResource, registry.Snapshot(0))
	require.NoError(t, err)
	// bucketCounts and explicitBounds are omitted when no bounds were configured
	require.Equal(t,
		`{"resourceMetrics":[{"resource":`+testResourceJSON+`,"scopeMetrics":[{"metrics":[`+
			`{"name":"test_histogram","unit":"1","description":"","histogram":{"aggregationTemporality":2,`+
			`"dataPoints":[{"startTimeUnixNano":1000,"timeUnixNano":2000,"count":3,"sum":30,`+
			`"attributes":[]}]}}]}]}]}`,
		string(payload))
}

func TestMarshalDescribedMetric(t *testing.T) {
	registry, now := testRegistry(t)

	registry.Describe("bytes_total", "By", "Counter for bytes")
	counter, err := registry.RegisterCounter("bytes_total", nil)
	require.NoError(t, err)

	now.Store(2000)
	counter.Inc(1)

	payload, err := Marshal(testResource, registry.Snapshot(0))
	require.NoError(t, err)
	require.Equal(t,
		`{"resourceMetrics":[{"resource":`+testResourceJSON+`,"scopeMetrics":[{"metrics":[`+
			`{"name":"bytes_total","unit":"By","description":"Counter for bytes",`+
			`"sum":{"aggregationTemporality":2,"isMonotonic":true,`+
			`"dataPoints":[{"asInt":1,"startTimeUnixNano":1000,"timeUnixNano":2000,"attributes":[]}]}}]}]}]}`,
		string(payload))
}
