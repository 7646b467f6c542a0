package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const DEFAULT_SAMPLING_RATE = 0.3

type TelemetryRessources struct {
	TracerProvider trace.TracerProvider
	Tracer         trace.Tracer
	Shutdown       func(context.Context) error
}

func NoopTelemetry() TelemetryRessources {
	provider := noop.NewTracerProvider()
	return TelemetryRessources{
		TracerProvider: provider,
		Tracer:         provider.Tracer(""),
		Shutdown:       func(context.Context) error { return nil },
	}
}

// InitTelemetry exports spans over OTLP gRPC. The collector address comes from the standard
// OTEL_EXPORTER_OTLP_ENDPOINT variable read by the exporter itself.
func InitTelemetry(ctx context.Context, configuration TelemetryConfiguration, apiVersion string) (TelemetryRessources, error) {
	if !configuration.Enabled {
		return NoopTelemetry(), nil
	}

	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "otlptracegrpc.New error")
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", configuration.ApplicationName),
		attribute.String("service.version", apiVersion),
	)

	samplingRate := configuration.SamplingRate
	if samplingRate <= 0 {
		samplingRate = DEFAULT_SAMPLING_RATE
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(samplingRate))),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return TelemetryRessources{
		TracerProvider: tp,
		Tracer:         tp.Tracer(configuration.ApplicationName),
		Shutdown:       tp.Shutdown,
	}, nil
}
