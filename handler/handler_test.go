package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otlpkit/otlpkit/clock"
	"github.com/otlpkit/otlpkit/logging"
	"github.com/otlpkit/otlpkit/metrics"
	"github.com/otlpkit/otlpkit/otlp"
)

func testHandler(t *testing.T) (http.Handler, *metrics.Registry) {
	logger, err := logging.GetLogger("handler")
	require.NoError(t, err)

	registry := metrics.NewRegistry(clock.NewSystemClock())
	recorder := otlp.NewRecorder(registry, otlp.Resource{ServiceName: "test", ServiceVersion: "0", InstanceID: "0"})
	return NewHandler(recorder, logger), registry
}

func TestGetMetrics(t *testing.T) {
	router, registry := testHandler(t)

	counter, err := registry.RegisterCounter("test_counter", metrics.Attributes{{Key: "label1", Value: "v1"}})
	require.NoError(t, err)
	counter.Inc(3)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/v1/metrics", nil))

	require.Equal(t, http.StatusOK, response.Code)
	require.Equal(t, "application/json", response.Header().Get("Content-Type"))
	require.Contains(t, response.Body.String(), `"name":"test_counter"`)
	require.Contains(t, response.Body.String(), `"asInt":3`)
}

func TestGetMetricsWindow(t *testing.T) {
	router, registry := testHandler(t)

	counter, err := registry.RegisterCounter("test_counter", nil)
	require.NoError(t, err)
	counter.Inc(1)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/v1/metrics?window=1h", nil))
	require.Equal(t, http.StatusOK, response.Code)
	require.Contains(t, response.Body.String(), `"name":"test_counter"`)

	// nothing was updated within a 1ns window by the time of the request
	response = httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/v1/metrics?window=1ns", nil))
	require.Equal(t, http.StatusOK, response.Code)
	require.Contains(t, response.Body.String(), `"metrics":[]`)
}

func TestGetMetricsBadWindow(t *testing.T) {
	router, _ := testHandler(t)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/v1/metrics?window=nonsense", nil))

	require.Equal(t, http.StatusBadRequest, response.Code)
	require.Contains(t, response.Body.String(), "invalid window")
}
