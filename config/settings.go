package config

import (
	"fmt"

	"github.com/kbukum/querykit/logger"
	"github.com/kbukum/querykit/util"
	"github.com/kbukum/querykit/validation"
)

// ObservabilitySettings controls the engine's metric and trace export.
type ObservabilitySettings struct {
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	Metrics    bool    `yaml:"metrics" mapstructure:"metrics"`
	Tracing    bool    `yaml:"tracing" mapstructure:"tracing"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// Settings contains the configuration fields an embedding service needs
// to run the query engine. Projects extend this by embedding it in their
// own config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.Settings `yaml:",inline" mapstructure:",squash"`
//	    BatchSize int `yaml:"batch_size" mapstructure:"batch_size"`
//	}
type Settings struct {
	Name          string                `yaml:"name" mapstructure:"name" validate:"required"`
	Environment   string                `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version       string                `yaml:"version" mapstructure:"version"`
	Debug         bool                  `yaml:"debug" mapstructure:"debug"`
	Logging       logger.Config         `yaml:"logging" mapstructure:"logging"`
	Observability ObservabilitySettings `yaml:"observability" mapstructure:"observability"`
}

// GetSettings returns the base Settings.
// When embedded in a larger config struct, this method is promoted
// so the embedding struct automatically exposes the engine settings.
func (s *Settings) GetSettings() *Settings {
	return s
}

// ApplyDefaults applies default values to the engine settings.
// Override this in embedding structs and call s.Settings.ApplyDefaults() first.
func (s *Settings) ApplyDefaults() {
	s.Environment = util.Coalesce(s.Environment, "development")
	if s.Environment == "development" {
		s.Debug = true
	}
	s.Logging.ApplyDefaults()
	s.Observability.Endpoint = util.Coalesce(s.Observability.Endpoint, "localhost:4318")
	// Unset sample_rate means full sampling when tracing is on.
	if s.Observability.Tracing && s.Observability.SampleRate == 0 {
		s.Observability.SampleRate = 1.0
	}
}

// Validate validates the engine settings.
// Override this in embedding structs and call s.Settings.Validate() first.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
