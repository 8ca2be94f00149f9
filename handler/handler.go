package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/otlpkit/otlpkit"
	"github.com/otlpkit/otlpkit/otlp"
)

// NewHandler returns a router serving the current metrics snapshot as an
// OTLP JSON document on GET /v1/metrics. An optional window query
// parameter (duration syntax, e.g. 30s) limits the document to recently
// updated metrics.
func NewHandler(recorder *otlp.Recorder, logger otlpkit.Logger) http.Handler {
	router := chi.NewRouter()
	router.Get("/v1/metrics", getMetrics(recorder, logger))
	return router
}

type errorResponse struct {
	StatusCode int    `json:"-"`
	ErrorText  string `json:"error"`
}

func (response *errorResponse) Render(writer http.ResponseWriter, request *http.Request) error {
	render.Status(request, response.StatusCode)
	return nil
}

func getMetrics(recorder *otlp.Recorder, logger otlpkit.Logger) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var window time.Duration
		if raw := request.URL.Query().Get("window"); raw != "" {
			parsed, err := time.ParseDuration(raw)
			if err != nil {
				render.Render(writer, request, &errorResponse{ //nolint
					StatusCode: http.StatusBadRequest,
					ErrorText:  fmt.Sprintf("invalid window %q", raw),
				})
				return
			}
			window = parsed
		}

		payload, err := recorder.SnapshotJSON(window)
		if err != nil {
			logger.Errorf("Failed to serialize metrics: %s", err.Error())
			render.Render(writer, request, &errorResponse{ //nolint
				StatusCode: http.StatusInternalServerError,
				ErrorText:  "can't serialize metrics",
			})
			return
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.Write(payload) //nolint
	}
}
