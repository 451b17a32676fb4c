// Package config loads runtime configuration for the job-board client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed with JOBBOARD_, optionally seeded from a
//     .env file in the working directory. Real environment wins over .env.
//  3. Optional config file selected via -c or -config. Files ending in .yaml
//     or .yml are parsed as YAML, anything else as JSON.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the job-board API
//	-t duration request timeout
//	-r float    client-side request rate limit (requests/second, 0 disables)
//	-s string   session backend: memory, file, keyring, sqlite, redis
//	-d string   data directory for file and sqlite session backends
//	-l string   log level: debug, info, warn, error
//	-m string   address for the Prometheus metrics listener (empty disables)
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8000",
//	  "request_timeout": "10s",
//	  "session_backend": "file",
//	  "redis": {"addr": "127.0.0.1:6379", "db": 0}
//	}
package config
