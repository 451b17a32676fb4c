package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings for the job-board client.
type Config struct {
	ServerURL         string
	RequestTimeout    time.Duration
	RequestsPerSecond float64

	SessionBackend string
	// DataDir holds the session file and the sqlite database.
	DataDir string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	LogLevel  string
	LogFormat string

	// MetricsAddr is the listen address for /metrics; empty disables it.
	MetricsAddr string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.RequestsPerSecond = 0
	c.SessionBackend = session.BackendFile
	c.DataDir = defaultDataDir()
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisKeyPrefix = "jobboard:session:"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.MetricsAddr = ""
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "jobboard")
	}
	return ".jobboard"
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, the config file and command-line flags from args. Later
// sources take precedence over earlier ones. The result is validated.
func LoadConfig(args []string) (*Config, error) {
	return load(args, os.LookupEnv, DotEnvFile)
}

func load(args []string, lookup func(string) (string, bool), dotenv string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, lookup, dotenv); err != nil {
		return nil, err
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.ServerURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("server url %q must be an absolute http(s) URL", c.ServerURL))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout))
	}
	if c.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("requests per second must not be negative, got %v", c.RequestsPerSecond))
	}

	switch strings.ToLower(c.SessionBackend) {
	case session.BackendMemory, session.BackendKeyring:
	case session.BackendFile, session.BackendSQLite:
		if c.DataDir == "" {
			errs = append(errs, fmt.Errorf("session backend %q needs a data directory", c.SessionBackend))
		}
	case session.BackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("session backend \"redis\" needs a redis address"))
		}
		if c.RedisDB < 0 {
			errs = append(errs, fmt.Errorf("redis db must not be negative, got %d", c.RedisDB))
		}
	default:
		errs = append(errs, fmt.Errorf("%w %q", session.ErrUnknownBackend, c.SessionBackend))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log format %q must be text or json", c.LogFormat))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// SessionOptions maps the config onto session.Open options.
func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Backend:        c.SessionBackend,
		DataDir:        c.DataDir,
		KeyringAccount: c.ServerURL,
		RedisAddr:      c.RedisAddr,
		RedisPassword:  c.RedisPassword,
		RedisDB:        c.RedisDB,
		RedisKeyPrefix: c.RedisKeyPrefix,
	}
}
