//go:build local
// +build local

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"

	"github.com/japb1998/atelier/internal/api"
	"github.com/japb1998/atelier/internal/config"
	"github.com/japb1998/atelier/internal/controller"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// initProvider exports spans to the OTLP collector at endpoint. Without an
// endpoint spans are sampled but dropped.
func initProvider(ctx context.Context, endpoint string) (shutdown func(context.Context) error, err error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			// the service name used to display traces in backends
			semconv.ServiceName("atelier"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	}

	if endpoint != "" {
		traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(traceExporter)))
	}

	tracerProvider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tracerProvider)

	// set global propagator to tracecontext (the default is no-op).
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tracerProvider.Shutdown, nil
}

func initApp(cfg config.Config) {
	ctx := context.Background()
	shutdownFunc, err := initProvider(ctx, cfg.OtelEndpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer shutdownFunc(ctx)

	if err := controller.Init(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	r := api.InitRoutes()

	addr := net.JoinHostPort("", cfg.Port)
	slog.Info("Serveur démarré", slog.String("addr", addr), slog.String("backend", cfg.StoreBackend))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
