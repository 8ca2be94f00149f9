package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/otlpkit/otlpkit/clock"
)

func TestGaugeSet(t *testing.T) {
	gauge := newGauge(clock.NewSystemClock())

	gauge.Set(-10.0)
	require.Equal(t, -10.0, gauge.Value())

	gauge.Set(10.0)
	require.Equal(t, 10.0, gauge.Value())
	require.NotZero(t, gauge.Updated())
}

func TestGaugeIncDec(t *testing.T) {
	gauge := newGauge(clock.NewSystemClock())

	gauge.Inc(5)
	gauge.Dec(2)
	require.Equal(t, 3.0, gauge.Value())
}

func TestGaugeConcurrentAdd(t *testing.T) {
	gauge := newGauge(clock.NewSystemClock())

	workersCount := 8
	updatesPerWorker := 1000

	wg := &sync.WaitGroup{}
	wg.Add(workersCount)
	for i := 0; i < workersCount; i++ {
		go func() {
			defer wg.Done()
			for i := 0; i < updatesPerWorker; i++ {
				gauge.Inc(2)
				gauge.Dec(1)
			}
		}()
	}
	wg.Wait()

	// whole-number float additions up to 2^53 are exact, so the result is
	// the same as some serial order of the same operations
	require.Equal(t, float64(workersCount*updatesPerWorker), gauge.Value())
}
