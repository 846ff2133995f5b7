package polyplay

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gogpu/polyplay"

// instruments are the session's OpenTelemetry metrics. They are no-ops
// unless a meter provider is configured.
type instruments struct {
	placed metric.Int64Counter
	clears metric.Int64Counter
	zoom   metric.Float64Histogram
}

// newInstruments creates the session instruments from mp, falling back to
// the global provider when mp is nil and to no-op instruments on error.
func newInstruments(mp metric.MeterProvider) *instruments {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	ins, err := buildInstruments(mp.Meter(instrumentationName))
	if err != nil {
		Logger().Warn("polyplay: metrics disabled", "err", err)
		ins, _ = buildInstruments(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return ins
}

func buildInstruments(m metric.Meter) (*instruments, error) {
	var (
		ins instruments
		err error
	)
	ins.placed, err = m.Int64Counter(
		"polyplay.points.placed",
		metric.WithDescription("Total points placed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating placed counter: %w", err)
	}
	ins.clears, err = m.Int64Counter(
		"polyplay.session.clears",
		metric.WithDescription("Total sketch clears"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating clears counter: %w", err)
	}
	ins.zoom, err = m.Float64Histogram(
		"polyplay.viewport.zoom",
		metric.WithDescription("Applied zoom factors"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating zoom histogram: %w", err)
	}
	return &ins, nil
}

func (i *instruments) recordPlaced() {
	i.placed.Add(context.Background(), 1)
}

func (i *instruments) recordClear() {
	i.clears.Add(context.Background(), 1)
}

func (i *instruments) recordZoom(z float64) {
	i.zoom.Record(context.Background(), z)
}
