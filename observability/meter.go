package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/validation"
	"github.com/kbukum/querykit/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported as service.name.
	ServiceName string
	// ServiceVersion is the version reported as service.version.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: version.Get().Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// Validate checks the meter configuration.
func (c *MeterConfig) Validate() error {
	if err := validation.New().
		Required("service_name", c.ServiceName).
		Required("endpoint", c.Endpoint).
		Validate(); err != nil {
		return err
	}
	return nil
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for query execution.
type Metrics struct {
	operationTotal    metric.Int64Counter
	operationDuration metric.Float64Histogram
	valuesProduced    metric.Int64Counter
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	operationTotal, err := meter.Int64Counter("query.operations",
		metric.WithDescription("Total number of terminal query operations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.operations counter: %w", err)
	}

	operationDuration, err := meter.Float64Histogram("query.duration",
		metric.WithDescription("Duration of terminal query operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.duration histogram: %w", err)
	}

	valuesProduced, err := meter.Int64Counter("query.values.produced",
		metric.WithDescription("Total values produced by query pipelines"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.values.produced counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("query.errors",
		metric.WithDescription("Total query failures by error code and operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating query.errors counter: %w", err)
	}

	return &Metrics{
		operationTotal:    operationTotal,
		operationDuration: operationDuration,
		valuesProduced:    valuesProduced,
		errorTotal:        errorTotal,
	}, nil
}

// RecordOperation records a completed terminal operation.
func (m *Metrics) RecordOperation(ctx context.Context, operation, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	m.operationTotal.Add(ctx, 1, attrs)
	m.operationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordProduced records values produced by a pipeline run.
func (m *Metrics) RecordProduced(ctx context.Context, operation string, count int64) {
	m.valuesProduced.Add(ctx, count, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordError records a query failure by error code and operation.
func (m *Metrics) RecordError(ctx context.Context, code, operation string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("operation", operation),
	))
}
