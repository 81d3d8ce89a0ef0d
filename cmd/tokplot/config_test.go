package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func isSetFrom(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file is empty config", func(t *testing.T) {
		c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if c.HistorySize != nil || c.ServerAddress != "" {
			t.Fatalf("expected zero config, got %+v", c)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := writeConfig(t, strings.Join([]string{
			"server_address: 0.0.0.0:8080",
			"read_timeout: 5s",
			"history_size: 10",
			"tokenizer: tiktoken",
			"rate_limit: 2.5",
			"rate_burst: 3",
			"log_level: warn",
		}, "\n"))
		c, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
		if c.ServerAddress != "0.0.0.0:8080" {
			t.Fatalf("server_address = %q", c.ServerAddress)
		}
		if c.ReadTimeout == nil || *c.ReadTimeout != 5*time.Second {
			t.Fatalf("read_timeout = %v", c.ReadTimeout)
		}
		if c.HistorySize == nil || *c.HistorySize != 10 {
			t.Fatalf("history_size = %v", c.HistorySize)
		}
		if c.RateLimit == nil || *c.RateLimit != 2.5 {
			t.Fatalf("rate_limit = %v", c.RateLimit)
		}
		if c.Tokenizer != "tiktoken" || c.LogLevel != "warn" {
			t.Fatalf("unexpected config: %+v", c)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := writeConfig(t, "history_size: [1, 2\n")
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("expected parse error")
		}
	})
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(envConfigPath, "/from/env.yaml")
		if got := resolveConfigPath(" /from/flag.yaml "); got != "/from/flag.yaml" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("env before user dir", func(t *testing.T) {
		t.Setenv(envConfigPath, "/from/env.yaml")
		if got := resolveConfigPath(""); got != "/from/env.yaml" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("user config dir fallback", func(t *testing.T) {
		t.Setenv(envConfigPath, "")
		got := resolveConfigPath("")
		if got != "" && !strings.HasSuffix(got, filepath.Join("tokplot", "config.yaml")) {
			t.Fatalf("got %q", got)
		}
	})
}

func TestApplyServeConfig(t *testing.T) {
	prev := tokenizerName
	t.Cleanup(func() { tokenizerName = prev })

	timeout := 2 * time.Second
	size := int64(7)
	rate := 4.0
	seed := int64(42)
	c := Config{
		Seed:          &seed,
		ServerAddress: "0.0.0.0:9000",
		ReadTimeout:   &timeout,
		HistorySize:   &size,
		Tokenizer:     "tiktoken",
		RateLimit:     &rate,
	}

	tokenizerName = "word"
	opts := serveOptions{addr: "127.0.0.1:3001", historySize: 5, rateBurst: 5}
	applyServeConfig(isSetFrom("addr"), c, &opts)

	if opts.addr != "127.0.0.1:3001" {
		t.Fatalf("flag set on the command line must win, got %q", opts.addr)
	}
	if opts.readTimeout != timeout {
		t.Fatalf("readTimeout = %v", opts.readTimeout)
	}
	if opts.historySize != 7 {
		t.Fatalf("historySize = %d", opts.historySize)
	}
	if opts.rateLimit != 4 {
		t.Fatalf("rateLimit = %v", opts.rateLimit)
	}
	if opts.rateBurst != 5 {
		t.Fatalf("rateBurst changed without config value: %d", opts.rateBurst)
	}
	if !opts.seeded || opts.seed != 42 {
		t.Fatalf("seed not applied: %+v", opts)
	}
	if tokenizerName != "tiktoken" {
		t.Fatalf("tokenizerName = %q", tokenizerName)
	}
}

func TestApplyLoggingConfig(t *testing.T) {
	prevLevel, prevFormat := logLevel, logFormat
	t.Cleanup(func() { logLevel, logFormat = prevLevel, prevFormat })

	logLevel, logFormat = "info", "auto"
	applyLoggingConfig(isSetFrom("log-format"), Config{LogLevel: "debug", LogFormat: "json"})
	if logLevel != "debug" {
		t.Fatalf("logLevel = %q", logLevel)
	}
	if logFormat != "auto" {
		t.Fatalf("logFormat = %q, command line value must win", logFormat)
	}
}
