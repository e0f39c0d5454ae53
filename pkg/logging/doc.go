// Package logging configures the slog default logger used across gtcalc.
//
// Records are JSON objects written to stderr. Every record carries the
// module name and build version; debug level adds the source location.
//
// # Levels
//
// Level names are case insensitive. Unknown names fall back to info.
//
//	debug  Catalog fetch attempts, cache hits, resolved selectors
//	info   Server lifecycle, catalogs loaded, resolved chains (default)
//	warn   Retried fetches, slow requests
//	error  Failures that end a request or a command
//
// # Usage
//
// The CLI and the server install the default logger once at startup, using
// the log_level setting from pkg/config:
//
//	logging.SetDefaultStructuredLoggerWithLevel("gtcalcd", version, settings.LogLevel)
//	slog.Info("catalogs loaded", "machines", n)
//
// SetDefaultStructuredLogger reads the level from LOG_LEVEL instead, for
// tools that do not load a config file:
//
//	LOG_LEVEL=debug gtcalc search "Nitric Acid"
//
// NewLogLogger adapts the handler to a *log.Logger for APIs that still take
// one, such as http.Server.ErrorLog.
//
// A typical record:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"catalogs loaded",
//	 "module":"gtcalcd","version":"v0.3.0","catalogs":1,"machines":412,"recipes":58210}
package logging
