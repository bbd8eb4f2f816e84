package otel

import (
	"context"
	"hotel/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens tracing scopes. Every handler, service and repository method starts one.
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New builds a tracer provider exporting over OTLP/gRPC. Without an endpoint spans are
// recorded in-process only.
func New(config *config.Config) Otel {
	ctx := context.Background()

	options := []trace.TracerProviderOption{
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.App.Name),
			semconv.DeploymentEnvironmentKey.String(config.Server.Env),
		)),
	}

	endpoint := config.External.Otel.Endpoint
	if endpoint != "" {
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create OTLP exporter")
		}

		options = append(options, trace.WithBatcher(exporter))
	} else {
		log.Warn().Msg("OTLP endpoint not configured, traces will not be exported")
	}

	traceProvider := trace.NewTracerProvider(options...)

	otel.SetTracerProvider(traceProvider)

	otelInstance := &otelImpl{
		TracerProvider: traceProvider,
	}

	return otelInstance
}
