package panics

import (
	"context"
	"sync"

	constant "github.com/LerianStudio/lib-invariant/invariant/constants"
	"github.com/LerianStudio/lib-invariant/invariant/log"
	"github.com/LerianStudio/lib-invariant/invariant/opentelemetry/metrics"
)

// PanicMetrics records the panic_recovered_total counter.
type PanicMetrics struct {
	factory *metrics.MetricsFactory
	logger  log.Logger
}

var (
	panicMetricsInstance *PanicMetrics
	panicMetricsMu       sync.RWMutex
)

// InitPanicMetrics enables the recovered-panic counter. The optional logger
// receives diagnostics when recording fails. Later calls are no-ops until
// ResetPanicMetrics.
func InitPanicMetrics(factory *metrics.MetricsFactory, logger ...log.Logger) {
	panicMetricsMu.Lock()
	defer panicMetricsMu.Unlock()

	if factory == nil || panicMetricsInstance != nil {
		return
	}

	var l log.Logger
	if len(logger) > 0 {
		l = logger[0]
	}

	panicMetricsInstance = &PanicMetrics{
		factory: factory,
		logger:  l,
	}
}

// GetPanicMetrics returns the PanicMetrics instance, or nil when
// InitPanicMetrics has not been called.
func GetPanicMetrics() *PanicMetrics {
	panicMetricsMu.RLock()
	defer panicMetricsMu.RUnlock()

	return panicMetricsInstance
}

// ResetPanicMetrics clears the instance. Intended for tests.
func ResetPanicMetrics() {
	panicMetricsMu.Lock()
	defer panicMetricsMu.Unlock()

	panicMetricsInstance = nil
}

// RecordPanicRecovered increments panic_recovered_total with the component
// and goroutine_name labels.
func (pm *PanicMetrics) RecordPanicRecovered(ctx context.Context, component, goroutineName string) {
	if pm == nil || pm.factory == nil {
		return
	}

	counter, err := pm.factory.Counter(metrics.MetricPanicRecovered)
	if err != nil {
		log.SafeError(pm.logger, ctx, "failed to create panic metric counter", err, IsProductionMode())
		return
	}

	err = counter.
		WithLabels(map[string]string{
			"component":      constant.SanitizeMetricLabel(component),
			"goroutine_name": constant.SanitizeMetricLabel(goroutineName),
		}).
		AddOne(ctx)
	if err != nil {
		log.SafeError(pm.logger, ctx, "failed to record panic metric", err, IsProductionMode())
	}
}

func recordPanicMetric(ctx context.Context, component, goroutineName string) {
	if pm := GetPanicMetrics(); pm != nil {
		pm.RecordPanicRecovered(ctx, component, goroutineName)
	}
}
