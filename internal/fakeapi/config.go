package fakeapi

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/flagx"
	"github.com/dmitrijs2005/jobboard/internal/timex"
)

// Config holds runtime settings for the development server.
//
// SecretKey signs tokens (HS256). The default is for local use only.
type Config struct {
	Addr      string
	SecretKey string
	TokenTTL  time.Duration
	LogLevel  string
}

type jsonConfig struct {
	Addr      *string         `json:"addr"`
	SecretKey *string         `json:"secret_key"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
	LogLevel  *string         `json:"log_level"`
}

func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8000"
	c.SecretKey = "dev-secret"
	c.TokenTTL = time.Hour
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then an optional JSON
// file given by -c / -config, then flags:
//
//	-a string   listen address
//	-s string   token signing secret
//	-t duration token lifetime
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFile(args); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var jc jsonConfig
		if err := json.Unmarshal(data, &jc); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if jc.Addr != nil {
			cfg.Addr = *jc.Addr
		}
		if jc.SecretKey != nil {
			cfg.SecretKey = *jc.SecretKey
		}
		if jc.TokenTTL != nil {
			cfg.TokenTTL = jc.TokenTTL.Duration
		}
		if jc.LogLevel != nil {
			cfg.LogLevel = *jc.LogLevel
		}
	}

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "token signing secret")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-l"})); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("secret key must not be empty")
	}
	return cfg, nil
}
