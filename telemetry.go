package diagram

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// buildMetrics holds the OpenTelemetry instruments for diagram builds.
type buildMetrics struct {
	// buildCounter increments for every build attempt
	buildCounter metric.Int64Counter

	// failureCounter increments for every failed build, by error kind
	failureCounter metric.Int64Counter

	// dependencyCounter counts finalized dependencies of successful builds
	dependencyCounter metric.Int64Counter

	// durationHistogram records build duration in milliseconds
	durationHistogram metric.Float64Histogram
}

func newBuildMetrics(mp metric.MeterProvider) (*buildMetrics, error) {
	meter := mp.Meter(instrumentationName)
	m := &buildMetrics{}
	var err error

	m.buildCounter, err = meter.Int64Counter(
		"diagram.build.count",
		metric.WithDescription("Number of diagram builds attempted"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create build counter: %w", err)
	}

	m.failureCounter, err = meter.Int64Counter(
		"diagram.build.failures",
		metric.WithDescription("Number of diagram builds that failed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create failure counter: %w", err)
	}

	m.dependencyCounter, err = meter.Int64Counter(
		"diagram.dependencies.resolved",
		metric.WithDescription("Number of dependencies resolved by successful builds"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create dependency counter: %w", err)
	}

	m.durationHistogram, err = meter.Float64Histogram(
		"diagram.build.duration",
		metric.WithDescription("Diagram build duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	return m, nil
}

// startBuildSpan opens the span covering one build.
func startBuildSpan(ctx context.Context, tracer trace.Tracer, buildID string, components, edges int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "diagram.Build",
		trace.WithAttributes(
			attribute.String("diagram.build_id", buildID),
			attribute.Int("diagram.components", components),
			attribute.Int("diagram.edges", edges),
		),
	)
}

// recordBuild closes out the span and metrics for one build. d is nil when
// err is set.
func (m *buildMetrics) recordBuild(ctx context.Context, span trace.Span, started time.Time, d *Diagram, err error) {
	elapsed := float64(time.Since(started).Microseconds()) / 1000.0

	if m != nil {
		m.buildCounter.Add(ctx, 1)
		m.durationHistogram.Record(ctx, elapsed)
	}

	if err != nil {
		kind := "unknown"
		if derr, ok := asDiagramError(err); ok {
			kind = derr.Kind
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("diagram.error_kind", kind))
		if m != nil {
			m.failureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
		}
		return
	}

	deps := len(d.Dependencies())
	span.SetAttributes(attribute.Int("diagram.dependencies", deps))
	span.SetStatus(codes.Ok, "")
	if m != nil {
		m.dependencyCounter.Add(ctx, int64(deps))
	}
}
