package diagram

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// instrumentationName names the tracer and meter used by the builder.
const instrumentationName = "github.com/zero-day-ai/diagram"

// BuildOption configures a Builder.
type BuildOption func(*buildConfig)

// buildConfig holds configuration for diagram builds.
type buildConfig struct {
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	concurrency   int
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		logger:        slog.Default(),
		tracer:        noop.NewTracerProvider().Tracer(instrumentationName),
		meterProvider: metricnoop.NewMeterProvider(),
		concurrency:   1,
	}
}

func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets a custom logger for the builder.
// If not provided, slog.Default() is used. A nil logger is ignored.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer. Each build is recorded as one
// "diagram.Build" span.
func WithTracer(tracer trace.Tracer) BuildOption {
	return func(c *buildConfig) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used for build metrics.
func WithMeterProvider(mp metric.MeterProvider) BuildOption {
	return func(c *buildConfig) {
		if mp != nil {
			c.meterProvider = mp
		}
	}
}

// WithConcurrency sets how many components may be resolved in parallel.
// Values below 1 are treated as 1, which resolves components sequentially.
//
// Example:
//
//	d, err := diagram.Build(ctx, catalog, edges, diagram.WithConcurrency(runtime.GOMAXPROCS(0)))
func WithConcurrency(n int) BuildOption {
	return func(c *buildConfig) {
		if n < 1 {
			n = 1
		}
		c.concurrency = n
	}
}
