package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/jobboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags. Only
// the flags listed here are passed to the flag set; everything else in args
// is left for other consumers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-r", "-s", "-d", "-l", "-m"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the job-board API")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.Float64Var(&cfg.RequestsPerSecond, "r", cfg.RequestsPerSecond, "request rate limit per second (0 disables)")
	fs.StringVar(&cfg.SessionBackend, "s", cfg.SessionBackend, "session backend (memory, file, keyring, sqlite, redis)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
