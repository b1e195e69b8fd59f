package bootstrap

import (
	"context"
	"fmt"

	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/observability"
	"github.com/kbukum/querykit/query"
	"github.com/kbukum/querykit/util"
	"github.com/kbukum/querykit/version"
)

// Runtime holds the wired observability stack for query pipelines.
// The type parameter C is the config type; any struct embedding
// config.Settings satisfies the Config constraint.
//
// Example:
//
//	rt, err := bootstrap.New(ctx, &cfg)
//	if err != nil {
//	    return err
//	}
//	defer rt.Shutdown(ctx)
//	q := query.New(rt.QueryOptions()...).Where(active).Select("id", "name")
type Runtime[C Config] struct {
	Name     string
	Version  string
	Cfg      C
	Settings *config.Settings
	Logger   *logger.Logger
	Metrics  *observability.Metrics

	tracing   bool
	shutdowns []func(context.Context) error
}

// New wires a Runtime from an already-populated config. It applies
// defaults, validates, initializes the logger, and, when enabled in
// the settings, the OpenTelemetry meter and tracer providers.
func New[C Config](ctx context.Context, cfg C, opts ...Option) (*Runtime[C], error) {
	return newRuntime(ctx, cfg, resolveOptions(opts))
}

// Load populates cfg via config.Load under the given service name,
// then wires a Runtime from it.
func Load[C Config](ctx context.Context, name string, cfg C, opts ...Option) (*Runtime[C], error) {
	o := resolveOptions(opts)
	if err := config.Load(name, cfg, o.loaderOpts...); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return newRuntime(ctx, cfg, o)
}

func newRuntime[C Config](ctx context.Context, cfg C, o *runtimeOptions) (*Runtime[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	s := cfg.GetSettings()
	ver := util.Coalesce(s.Version, version.Get().Version)

	rt := &Runtime[C]{
		Name:     s.Name,
		Version:  ver,
		Cfg:      cfg,
		Settings: s,
		tracing:  s.Observability.Tracing,
	}

	// Logger: use custom if provided, otherwise init from config.
	if o.logger != nil {
		rt.Logger = o.logger
	} else {
		rt.Logger = logger.New(&s.Logging, s.Name)
	}

	if s.Observability.Tracing {
		tc := observability.DefaultTracerConfig(s.Name)
		tc.ServiceVersion = ver
		tc.Environment = s.Environment
		tc.Endpoint = s.Observability.Endpoint
		tc.Insecure = s.Observability.Insecure
		tc.SampleRate = s.Observability.SampleRate
		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			return nil, fmt.Errorf("init tracer: %w", err)
		}
		rt.shutdowns = append(rt.shutdowns, tp.Shutdown)
	}

	if s.Observability.Metrics {
		mc := observability.DefaultMeterConfig(s.Name)
		mc.ServiceVersion = ver
		mc.Environment = s.Environment
		mc.Endpoint = s.Observability.Endpoint
		mc.Insecure = s.Observability.Insecure
		mp, err := observability.InitMeter(ctx, &mc)
		if err != nil {
			return nil, fmt.Errorf("init meter: %w", err)
		}
		rt.shutdowns = append(rt.shutdowns, mp.Shutdown)

		metrics, err := observability.NewMetrics(observability.Meter(s.Name))
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		rt.Metrics = metrics
	}

	return rt, nil
}

// QueryOptions returns the query options matching the runtime's wiring:
// always the logger, plus metrics and tracing when enabled.
func (rt *Runtime[C]) QueryOptions() []query.Option {
	opts := []query.Option{query.WithLogger(rt.Logger)}
	if rt.Metrics != nil {
		opts = append(opts, query.WithMetrics(rt.Metrics))
	}
	if rt.tracing {
		opts = append(opts, query.WithTracing(rt.Name))
	}
	return opts
}

// OnShutdown registers fn to run during Shutdown. Hooks run in reverse
// registration order, so hooks registered after New run before the
// provider flushes.
func (rt *Runtime[C]) OnShutdown(fn func(context.Context) error) {
	rt.shutdowns = append(rt.shutdowns, fn)
}

// Shutdown flushes and stops everything the runtime started, in
// reverse order. All steps run even if one fails; the first error is
// returned.
func (rt *Runtime[C]) Shutdown(ctx context.Context) error {
	var firstErr error
	for i := len(rt.shutdowns) - 1; i >= 0; i-- {
		if err := rt.shutdowns[i](ctx); err != nil {
			rt.Logger.Error("shutdown step failed", map[string]interface{}{
				"error": err.Error(),
			})
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
