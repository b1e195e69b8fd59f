package query

import (
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
)

// options holds the instrumentation configuration a Builder passes on
// to every Executor it creates. The zero value means uninstrumented:
// terminal operations then cost nothing beyond the pipeline itself.
type options struct {
	log         *logger.Logger
	metrics     *observability.Metrics
	serviceName string
	tracing     bool
}

// Option configures instrumentation for a Builder and the Executors it
// creates. Options carry over through Extend.
type Option func(*options)

// WithLogger makes executors log each terminal operation: executor id,
// operation, produced count, duration, and error if any.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMetrics records terminal operations on the given instruments.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}

// WithTracing wraps each terminal operation in an OpenTelemetry span.
// serviceName becomes the span's service.name attribute.
func WithTracing(serviceName string) Option {
	return func(o *options) {
		o.serviceName = serviceName
		o.tracing = true
	}
}
