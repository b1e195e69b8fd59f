// Package bootstrap wires configuration into a ready-to-use query
// runtime.
//
// It loads and validates settings, initializes the logger, and brings
// up the OpenTelemetry meter and tracer providers when the settings
// enable them, handing back the matching query options and a shutdown
// that flushes the exporters.
//
// # Quick Start
//
//	var cfg config.Settings
//	rt, err := bootstrap.Load(ctx, "my-service", &cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Shutdown(ctx)
//
//	q := query.New(rt.QueryOptions()...).
//	    Where(isActive).
//	    Select("id", "name")
//	results, err := q.On(source).Collect(ctx)
//
// Configs may embed config.Settings to carry application fields
// alongside the runtime's; see the Config constraint.
package bootstrap
