// Package config provides configuration loading for services embedding
// the query engine. It layers YAML files, .env files, and environment
// variables through Viper, and defines the Settings struct carrying the
// engine's logging and observability configuration.
//
// Usage:
//
//	var cfg config.Settings
//	if err := config.Load("my-service", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
