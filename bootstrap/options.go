package bootstrap

import (
	"github.com/kbukum/querykit/config"
	"github.com/kbukum/querykit/logger"
)

// Option configures the Runtime during creation.
// Options are non-generic so they can be used with any config type.
type Option func(*runtimeOptions)

// runtimeOptions collects all option values before applying to Runtime.
type runtimeOptions struct {
	logger     *logger.Logger
	loaderOpts []config.LoaderOption
}

// resolveOptions applies all options and returns the collected values.
func resolveOptions(opts []Option) *runtimeOptions {
	o := &runtimeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets a custom logger for the runtime.
// If not set, the logger is initialized from the config's Logging field.
func WithLogger(l *logger.Logger) Option {
	return func(o *runtimeOptions) {
		o.logger = l
	}
}

// WithLoaderOptions passes loader options through to config.Load.
// Only Load uses them; New ignores them.
func WithLoaderOptions(opts ...config.LoaderOption) Option {
	return func(o *runtimeOptions) {
		o.loaderOpts = append(o.loaderOpts, opts...)
	}
}
