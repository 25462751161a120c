package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"scout-server/cmd/api/wire"
	"scout-server/cmd/config"
	"scout-server/internal/infra/httpserver"
	"scout-server/internal/infra/node"
	"scout-server/internal/infra/sql"
	"scout-server/internal/records/usecases"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	nodeInfo := node.GetNodeInfo()
	handler := baseHandler.WithAttrs([]slog.Attr{
		slog.String("version", nodeInfo.Version),
		slog.String("node_id", nodeInfo.ID),
	})
	slog.SetDefault(slog.New(handler))
	slog.Info("🚀 scout server is initializing")
	slog.Debug("config loaded", slog.String("environment", config.General.Environment), slog.String("timezone", config.General.Timezone))

	shutdownOtel := startOTel()

	orm := handleWireInjector(wire.InitializeDatabase()).(sql.ORM)

	appCtx, cancelFn := context.WithCancel(context.Background())
	seeder := handleWireInjector(wire.InitializeSeeder()).(*usecases.Seeder)
	if err := seeder.Reconcile(appCtx); err != nil {
		slog.Error("failed to seed initial data", slog.String("error", err.Error()))
		panic(err)
	}

	httpServer := httpserver.NewServer(
		httpserver.Options{
			Address:        config.HTTP.Address,
			AllowedOrigins: config.HTTP.AllowedOrigins,
			Readiness:      orm,
		},
		handleWireInjector(wire.InitializeUserController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeTableController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeRecordController()).(httpserver.Controller),
		handleWireInjector(wire.InitializePermissionController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeDashboardController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeTemplateController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeGenericTextController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeExportController()).(httpserver.Controller),
	)

	go httpServer.Run()
	slog.Info("http server started", slog.String("address", config.HTTP.Address))

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	httpServer.Shutdown()
	if err := shutdownOtel(); err != nil {
		slog.Error("failed to stop OTel providers", slog.String("error", err.Error()))
	}

	cancelFn()
	slog.Info("good bye!!!")
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

type ShutdownFunc func() error

const (
	_defaultEndpoint = "localhost:4317"
	_collectPeriod   = 30 * time.Second
	_collectTimeout  = 35 * time.Second
	_minimumInterval = time.Minute
)

var (
	_histogramBuckets = []float64{5, 10, 25, 50, 75, 100, 250, 500, 750, 1000, 2500, 5000, 7500, 10000, 25000, 50000, 100000}
)

func startOTel() ShutdownFunc {
	slog.Info("starting OTel providers", slog.String("endpoint", collectorEndpoint()))
	shutdown, err := otelStart(context.Background())
	if err != nil {
		panic(err)
	}

	return shutdown
}

func collectorEndpoint() string {
	if value, ok := os.LookupEnv("SCOUT_SERVER_OTELCOL_ENDPOINT"); ok {
		return value
	}
	return _defaultEndpoint
}

func serviceResource() *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("scout-server"),
		semconv.ServiceVersionKey.String(node.Version),
	)
}

func otelStart(ctx context.Context) (ShutdownFunc, error) {
	metricsShutdownFunc, err := startMetricsProvider(ctx)
	if err != nil {
		return nil, err
	}

	traceShutdownFunc, err := startTraceProvider(ctx)
	if err != nil {
		return nil, err
	}

	return func() error {
		if err := metricsShutdownFunc(); err != nil {
			return err
		}
		return traceShutdownFunc()
	}, nil
}

func startTraceProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(collectorEndpoint()),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(serviceResource()),
	)
	otel.SetTracerProvider(tp)

	return func() error {
		return tp.Shutdown(ctx)
	}, nil
}

func startMetricsProvider(ctx context.Context) (ShutdownFunc, error) {
	exp, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(collectorEndpoint()),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(serviceResource()),
		metric.WithReader(metric.NewPeriodicReader(exp,
			metric.WithTimeout(_collectTimeout),
			metric.WithInterval(_collectPeriod))),
		// export latency histograms with millisecond buckets
		metric.WithView(metric.NewView(
			metric.Instrument{Name: "*", Kind: metric.InstrumentKindHistogram},
			metric.Stream{Aggregation: metric.AggregationExplicitBucketHistogram{Boundaries: _histogramBuckets}},
		)),
	)
	otel.SetMeterProvider(mp)

	if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(_minimumInterval)); err != nil {
		return nil, err
	}

	return func() error {
		return mp.Shutdown(ctx)
	}, nil
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
