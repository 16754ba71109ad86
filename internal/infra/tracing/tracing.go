// Package tracing configures the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"

	"booksy/config"
	"booksy/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

// TracerName is the instrumentation scope used for application spans.
const TracerName = "booksy"

// Params holds dependencies for the tracer provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New installs a global tracer provider exporting over OTLP/HTTP when tracing.endpoint is set.
// Without an endpoint a no-op provider is returned and no spans leave the process.
func New(params Params) (trace.TracerProvider, error) {
	cfg := params.Config.Tracing
	if cfg == nil || cfg.Endpoint == "" {
		params.Logger.Info("Tracing disabled: tracing.endpoint not set")

		return noop.NewTracerProvider(), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OTLP exporter")
	}

	res, err := resource.New(params.Ctx,
		resource.WithAttributes(
			semconv.ServiceName(params.Config.Env.ServiceName),
			semconv.ServiceVersion(params.Config.Env.Version),
			semconv.DeploymentEnvironment(params.Config.Env.Env),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build trace resource")
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.Wrap(tp.Shutdown(ctx), "failed to flush traces")
		},
	})

	params.Logger.Info("Tracing initialized",
		slog.String("endpoint", cfg.Endpoint),
		slog.Float64("sample_ratio", ratio),
	)

	return tp, nil
}
