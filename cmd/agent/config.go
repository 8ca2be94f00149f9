package main

import "github.com/otlpkit/otlpkit/cmd"

type config struct {
	Logger   cmd.LoggerConfig   `yaml:"log"`
	Resource cmd.ResourceConfig `yaml:"resource"`
	Receiver cmd.ReceiverConfig `yaml:"receiver"`
	Exporter cmd.ExporterConfig `yaml:"exporter"`
	Web      cmd.WebConfig      `yaml:"web"`
	// Sampling is the self-metrics collection interval
	Sampling string `yaml:"sampling"`
}

func getDefault() config {
	return config{
		Logger: cmd.LoggerConfig{
			LogFile:  "stdout",
			LogLevel: "info",
		},
		Resource: cmd.ResourceConfig{
			Name:       "otlpkit-agent",
			Version:    "unknown",
			InstanceID: "localhost",
		},
		Receiver: cmd.ReceiverConfig{
			URL:     "http://localhost:9090/api/v1/otlp/v1/metrics",
			Timeout: "5s",
		},
		Exporter: cmd.ExporterConfig{
			Interval: "15s",
			Window:   "0s",
		},
		Web: cmd.WebConfig{
			Enabled: false,
			Listen:  ":8093",
		},
		Sampling: "10s",
	}
}
