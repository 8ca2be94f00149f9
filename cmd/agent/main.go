package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/xiam/to"

	"github.com/otlpkit/otlpkit/clock"
	"github.com/otlpkit/otlpkit/cmd"
	"github.com/otlpkit/otlpkit/exporter"
	"github.com/otlpkit/otlpkit/handler"
	"github.com/otlpkit/otlpkit/logging"
	"github.com/otlpkit/otlpkit/metrics"
	"github.com/otlpkit/otlpkit/otlp"
	"github.com/otlpkit/otlpkit/transport"
)

const serviceName = "agent"

var (
	configFileName         = flag.String("config", "/etc/otlpkit/agent.yml", "path to config file")
	printVersion           = flag.Bool("version", false, "Print current version and exit")
	printDefaultConfigFlag = flag.Bool("default-config", false, "Print default config and exit")
)

// Agent bin version
var (
	Version   = "unknown"
	GitCommit = "unknown"
	GoVersion = "unknown"
)

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println("otlpkit agent")
		fmt.Println("Version:", Version)
		fmt.Println("Git Commit:", GitCommit)
		fmt.Println("Go Version:", GoVersion)
		os.Exit(0)
	}

	config := getDefault()
	if *printDefaultConfigFlag {
		cmd.PrintConfig(config)
		os.Exit(0)
	}

	if err := cmd.ReadConfig(*configFileName, &config); err != nil {
		fmt.Fprintf(os.Stderr, "Can not read settings: %s\n", err.Error())
		os.Exit(1)
	}

	logger, err := logging.ConfigureLog(config.Logger.LogFile, config.Logger.LogLevel, serviceName, config.Logger.LogPrettyFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not configure log: %s\n", err.Error())
		os.Exit(1)
	}
	defer logger.Infof("Agent stopped. Version: %s", Version)

	registry := metrics.NewRegistry(clock.NewSystemClock())
	metrics.SetDefault(registry)
	recorder := otlp.NewRecorder(registry, config.Resource.GetSettings())

	sender := transport.NewSender(config.Receiver.GetSettings())
	metricsExporter := exporter.NewExporter(recorder, sender, config.Exporter.GetSettings(), logger)
	metricsExporter.Start()
	defer metricsExporter.Stop() //nolint

	if config.Web.Enabled {
		server := &http.Server{Addr: config.Web.Listen, Handler: handler.NewHandler(recorder, logger)}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Errorf("Web server failed: %s", err.Error())
			}
		}()
		defer server.Close() //nolint
	}

	stop := make(chan struct{})
	go selfMetrics(registry, logger, to.Duration(config.Sampling), stop)

	logger.Infof("Agent started. Version: %s", Version)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	close(stop)
}

// selfMetrics samples runtime state into the registry so the export
// pipeline carries real data.
func selfMetrics(registry *metrics.Registry, logger *logging.Logger, interval time.Duration, stop <-chan struct{}) {
	registry.Describe("agent_goroutines", "1", "Number of live goroutines")
	registry.Describe("agent_heap_bytes", "By", "Heap bytes currently allocated")
	registry.Describe("agent_gc_total", "1", "Completed GC cycles since start")
	registry.Describe("agent_gc_pause_seconds", "s", "Pause duration of the most recent GC cycle")

	goroutines, err := registry.RegisterGauge("agent_goroutines", nil)
	if err != nil {
		logger.Fatalf("Can not register self metrics: %s", err.Error())
	}
	heap, err := registry.RegisterGauge("agent_heap_bytes", nil)
	if err != nil {
		logger.Fatalf("Can not register self metrics: %s", err.Error())
	}
	gcTotal, err := registry.RegisterCounter("agent_gc_total", nil)
	if err != nil {
		logger.Fatalf("Can not register self metrics: %s", err.Error())
	}
	gcPause, err := registry.RegisterHistogram("agent_gc_pause_seconds", metrics.Attributes{
		{Key: metrics.BucketsLabel, Value: "0.0001,0.001,0.01,0.1,1"},
	})
	if err != nil {
		logger.Fatalf("Can not register self metrics: %s", err.Error())
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastGC uint32
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			var stats runtime.MemStats
			runtime.ReadMemStats(&stats)
			goroutines.Set(float64(runtime.NumGoroutine()))
			heap.Set(float64(stats.HeapAlloc))
			gcTotal.Absolute(uint64(stats.NumGC))
			if stats.NumGC > lastGC {
				pause := stats.PauseNs[(stats.NumGC+255)%256]
				gcPause.Record(float64(pause) / float64(time.Second))
				lastGC = stats.NumGC
			}
		}
	}
}
