package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/querykit/errors"
)

// OperationContext holds observability context for a tracked query operation.
type OperationContext struct {
	ServiceName   string
	OperationName string
	QueryID       string
	StartTime     time.Time
	Metrics       *Metrics
}

// NewOperationContext creates a new operation context.
// If metrics is nil, metric recording is silently skipped.
func NewOperationContext(serviceName, operationName, queryID string, metrics *Metrics) *OperationContext {
	return &OperationContext{
		ServiceName:   serviceName,
		OperationName: operationName,
		QueryID:       queryID,
		StartTime:     time.Now(),
		Metrics:       metrics,
	}
}

// operationContextKey is the context key for OperationContext.
type operationContextKey struct{}

// WithOperationContext stores an OperationContext in the context.
func WithOperationContext(ctx context.Context, oc *OperationContext) context.Context {
	return context.WithValue(ctx, operationContextKey{}, oc)
}

// OperationContextFromContext retrieves the OperationContext from context, or nil.
func OperationContextFromContext(ctx context.Context) *OperationContext {
	if oc, ok := ctx.Value(operationContextKey{}).(*OperationContext); ok {
		return oc
	}
	return nil
}

// StartSpanForOperation starts a traced span for a query operation.
func (oc *OperationContext) StartSpanForOperation(ctx context.Context, spanName string) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, spanName)
	span.SetAttributes(
		attribute.String(AttrServiceName, oc.ServiceName),
		attribute.String(AttrOperationName, oc.OperationName),
	)
	if oc.QueryID != "" {
		span.SetAttributes(attribute.String(AttrQueryID, oc.QueryID))
	}
	return ctx, span
}

// EndOperation ends the span (nil allowed, for metrics-only callers)
// and records operation metrics. produced is the number of values the
// pipeline yielded before finishing.
func (oc *OperationContext) EndOperation(ctx context.Context, span trace.Span, status string, produced int, err error) {
	duration := time.Since(oc.StartTime)

	if span != nil {
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
		}
		span.SetAttributes(
			attribute.String(AttrStatus, status),
			attribute.Int(AttrProducedCount, produced),
			attribute.Int64(AttrDurationMs, duration.Milliseconds()),
		)
		span.End()
	}

	if oc.Metrics != nil {
		oc.Metrics.RecordOperation(ctx, oc.OperationName, status, duration)
		if produced > 0 {
			oc.Metrics.RecordProduced(ctx, oc.OperationName, int64(produced))
		}
		if err != nil {
			oc.Metrics.RecordError(ctx, string(errors.CodeOf(err)), oc.OperationName)
		}
	}
}

// Duration returns the elapsed time since operation start.
func (oc *OperationContext) Duration() time.Duration {
	return time.Since(oc.StartTime)
}
