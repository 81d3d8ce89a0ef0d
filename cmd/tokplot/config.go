package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const envConfigPath = "TOKPLOT_CONFIG"

// Config represents the tokplot configuration file (~/.config/tokplot/config.yaml).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	// Server
	ServerAddress string         `yaml:"server_address"`
	ReadTimeout   *time.Duration `yaml:"read_timeout"`
	HistorySize   *int64         `yaml:"history_size"`
	Tokenizer     string         `yaml:"tokenizer"`
	RateLimit     *float64       `yaml:"rate_limit"`
	RateBurst     *int64         `yaml:"rate_burst"`
	Seed          *int64         `yaml:"seed"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// resolveConfigPath picks the --config flag, then $TOKPLOT_CONFIG, then the
// user config dir.
func resolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return filepath.Clean(p)
	}
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		return filepath.Clean(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tokplot", "config.yaml")
}

// LoadConfig reads the config file. A missing file yields a zero Config;
// a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// applyLoggingConfig applies config file defaults to the logging flags
// that were not set on the command line.
func applyLoggingConfig(isSet func(string) bool, c Config) {
	if c.LogLevel != "" && !isSet("log-level") {
		logLevel = c.LogLevel
	}
	if c.LogFormat != "" && !isSet("log-format") {
		logFormat = c.LogFormat
	}
}

// applyServeConfig applies config file defaults to serve options.
func applyServeConfig(isSet func(string) bool, c Config, opts *serveOptions) {
	if c.ServerAddress != "" && !isSet("addr") {
		opts.addr = c.ServerAddress
	}
	if c.ReadTimeout != nil && !isSet("read-timeout") {
		opts.readTimeout = *c.ReadTimeout
	}
	if c.HistorySize != nil && !isSet("history-size") {
		opts.historySize = *c.HistorySize
	}
	if c.Tokenizer != "" && !isSet("tokenizer") {
		tokenizerName = c.Tokenizer
	}
	if c.RateLimit != nil && !isSet("rate-limit") {
		opts.rateLimit = *c.RateLimit
	}
	if c.RateBurst != nil && !isSet("rate-burst") {
		opts.rateBurst = *c.RateBurst
	}
	if c.Seed != nil && !isSet("seed") {
		opts.seed = *c.Seed
		opts.seeded = true
	}
}
