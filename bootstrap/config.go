package bootstrap

import (
	"github.com/kbukum/querykit/config"
)

// Config is the interface constraint for runtime configuration types.
// Any struct that embeds config.Settings (value embedding) automatically
// satisfies this interface via promoted methods.
//
// Example:
//
//	type AppConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    BatchSize int `yaml:"batch_size" mapstructure:"batch_size"`
//	}
//
//	// AppConfig automatically satisfies Config via promoted methods.
//	rt, err := bootstrap.New(ctx, &cfg)
type Config interface {
	GetSettings() *config.Settings
	ApplyDefaults()
	Validate() error
}
