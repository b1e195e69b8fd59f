// Package validation provides input validation utilities for querykit
// configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for engine settings loaded from files and environment.
//
// # Struct Tag Validation
//
//	type Settings struct {
//	    Name  string `validate:"required"`
//	    Level string `validate:"oneof=debug info warn error"`
//	}
//	err := validation.Validate(settings)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("endpoint", cfg.Endpoint).RangeFloat("sample_rate", cfg.SampleRate, 0, 1)
//	err := v.Validate()
package validation
