package cmd

import (
	"fmt"
	"os"

	"github.com/xiam/to"
	"gopkg.in/yaml.v2"

	"github.com/otlpkit/otlpkit/exporter"
	"github.com/otlpkit/otlpkit/otlp"
	"github.com/otlpkit/otlpkit/transport"
)

// LoggerConfig is logger settings structure that initialises at the start of agent
type LoggerConfig struct {
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	LogPrettyFormat bool   `yaml:"log_pretty_format"`
}

// ResourceConfig identifies the exporting service in every produced document
type ResourceConfig struct {
	// Service name, put into the service.name resource attribute
	Name string `yaml:"name"`
	// Service version, put into the service.version resource attribute
	Version string `yaml:"version"`
	// Instance identifier, put into the service.instance.id resource attribute
	InstanceID string `yaml:"instance_id"`
}

// GetSettings returns resource identity parsed from config files
func (config *ResourceConfig) GetSettings() otlp.Resource {
	return otlp.Resource{
		ServiceName:    config.Name,
		ServiceVersion: config.Version,
		InstanceID:     config.InstanceID,
	}
}

// ReceiverConfig is the OTLP receiver endpoint settings
type ReceiverConfig struct {
	// Full receiver URL, format: http://host:port/api/v1/otlp/v1/metrics
	URL string `yaml:"url"`
	// Extra request headers, e.g. authorization tokens
	Headers map[string]string `yaml:"headers"`
	// Basic auth credentials
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// Per-request timeout. Default is 5s.
	Timeout string `yaml:"timeout"`
}

// GetSettings returns receiver config parsed from config files
func (config *ReceiverConfig) GetSettings() transport.Config {
	return transport.Config{
		URL:      config.URL,
		Headers:  config.Headers,
		User:     config.User,
		Password: config.Password,
		Timeout:  to.Duration(config.Timeout),
	}
}

// ExporterConfig controls how often and how much the exporter sends
type ExporterConfig struct {
	// Metrics sending interval
	Interval string `yaml:"interval"`
	// Only metrics updated within this window are sent. Zero sends everything.
	Window string `yaml:"window"`
}

// GetSettings returns exporter config parsed from config files
func (config *ExporterConfig) GetSettings() exporter.Config {
	return exporter.Config{
		Interval: to.Duration(config.Interval),
		Window:   to.Duration(config.Window),
	}
}

// WebConfig is the snapshot pull endpoint settings
type WebConfig struct {
	// If true, the agent serves the snapshot document over HTTP
	Enabled bool `yaml:"enabled"`
	// Listen address, format: ip:port
	Listen string `yaml:"listen"`
}

// ReadConfig parses config file by the given path
func ReadConfig(configFileName string, config interface{}) error {
	configYaml, err := os.ReadFile(configFileName)
	if err != nil {
		return fmt.Errorf("can't read file [%s] [%s]", configFileName, err.Error())
	}
	err = yaml.Unmarshal(configYaml, config)
	if err != nil {
		return fmt.Errorf("can't parse config file [%s] [%s]", configFileName, err.Error())
	}
	return nil
}

// PrintConfig prints config to stdout
func PrintConfig(config interface{}) {
	d, _ := yaml.Marshal(&config)
	fmt.Println(string(d))
}
