package exporter

import (
	"time"

	"gopkg.in/tomb.v2"

	"github.com/otlpkit/otlpkit"
	"github.com/otlpkit/otlpkit/otlp"
)

// Sender delivers one serialized metrics document to a receiver.
type Sender interface {
	Send(payload []byte) error
}

// Config controls the export cadence.
type Config struct {
	// Interval between exports
	Interval time.Duration
	// Window limits each export to metrics updated within it, zero exports
	// everything
	Window time.Duration
}

// Exporter periodically serializes the recorder state and hands the bytes
// to the sender. Delivery is best-effort: errors are logged and the loop
// continues.
type Exporter struct {
	recorder *otlp.Recorder
	sender   Sender
	config   Config
	logger   otlpkit.Logger
	tomb     tomb.Tomb
}

// NewExporter creates an export trigger for the given recorder and sender.
func NewExporter(recorder *otlp.Recorder, sender Sender, config Config, logger otlpkit.Logger) *Exporter {
	return &Exporter{
		recorder: recorder,
		sender:   sender,
		config:   config,
		logger:   logger,
	}
}

// Start begins the periodic export loop.
func (exporter *Exporter) Start() {
	exporter.tomb.Go(func() error {
		exporter.logger.Infof("Start metrics exporter: interval %v", exporter.config.Interval)
		ticker := time.NewTicker(exporter.config.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-exporter.tomb.Dying():
				exporter.logger.Info("Metrics exporter stopped")
				return nil
			case <-ticker.C:
				exporter.export()
			}
		}
	})
}

// Stop terminates the export loop and waits for it to finish.
func (exporter *Exporter) Stop() error {
	exporter.tomb.Kill(nil)
	return exporter.tomb.Wait()
}

func (exporter *Exporter) export() {
	payload, err := exporter.recorder.SnapshotJSON(exporter.config.Window)
	if err != nil {
		exporter.logger.Errorf("Failed to serialize metrics: %s", err.Error())
		return
	}
	if err = exporter.sender.Send(payload); err != nil {
		exporter.logger.Errorf("Failed to send metrics: %s", err.Error())
	}
}
