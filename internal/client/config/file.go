package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/flagx"
	"github.com/dmitrijs2005/jobboard/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is a DTO used exclusively for file unmarshalling. Pointer
// fields distinguish "absent" from "zero" so a partial file only overrides
// what it names.
type fileConfig struct {
	ServerURL         *string         `json:"server_url" yaml:"server_url"`
	RequestTimeout    *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RequestsPerSecond *float64        `json:"requests_per_second" yaml:"requests_per_second"`
	SessionBackend    *string         `json:"session_backend" yaml:"session_backend"`
	DataDir           *string         `json:"data_dir" yaml:"data_dir"`
	Redis             *redisConfig    `json:"redis" yaml:"redis"`
	LogLevel          *string         `json:"log_level" yaml:"log_level"`
	LogFormat         *string         `json:"log_format" yaml:"log_format"`
	MetricsAddr       *string         `json:"metrics_addr" yaml:"metrics_addr"`
}

type redisConfig struct {
	Addr      *string `json:"addr" yaml:"addr"`
	Password  *string `json:"password" yaml:"password"`
	DB        *int    `json:"db" yaml:"db"`
	KeyPrefix *string `json:"key_prefix" yaml:"key_prefix"`
}

// parseFile overlays cfg with the file named by -c / -config in args, if any.
// Unknown keys are rejected.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.ServerURL, fc.ServerURL)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *fc.RequestsPerSecond
	}
	setString(&cfg.SessionBackend, fc.SessionBackend)
	setString(&cfg.DataDir, fc.DataDir)
	if r := fc.Redis; r != nil {
		setString(&cfg.RedisAddr, r.Addr)
		setString(&cfg.RedisPassword, r.Password)
		if r.DB != nil {
			cfg.RedisDB = *r.DB
		}
		setString(&cfg.RedisKeyPrefix, r.KeyPrefix)
	}
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.MetricsAddr, fc.MetricsAddr)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
