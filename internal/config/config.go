// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads the command line tool's settings from the
// environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gogama/xhr/header"
	"github.com/gogama/xhr/transport"
)

// Config holds the settings loaded from XHR_-prefixed environment
// variables and an optional .env file.
type Config struct {
	LogLevel       string        `mapstructure:"log_level"`
	TimeoutMS      int64         `mapstructure:"timeout_ms"`
	AbortGraceMS   int64         `mapstructure:"abort_grace_ms"`
	ResponseType   string        `mapstructure:"response_type"`
	RawHeaders     string        `mapstructure:"headers"`
	Timeout        time.Duration `mapstructure:"-"`
	AbortGrace     time.Duration `mapstructure:"-"`
	RequestHeaders header.Header `mapstructure:"-"`
}

// Load reads the configuration from the environment, after loading
// envFile into the environment if it exists.
func Load(envFile string) (*Config, error) {
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetEnvPrefix("xhr")

	v.SetDefault("log_level", "info")
	v.SetDefault("timeout_ms", 0)
	v.SetDefault("abort_grace_ms", 0)
	v.SetDefault("response_type", "")
	v.SetDefault("headers", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.TimeoutMS < 0 {
		return nil, fmt.Errorf("invalid timeout_ms (must be zero or positive milliseconds)")
	}
	if cfg.AbortGraceMS < 0 {
		return nil, fmt.Errorf("invalid abort_grace_ms (must be zero or positive milliseconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	cfg.AbortGrace = time.Duration(cfg.AbortGraceMS) * time.Millisecond

	switch transport.ResponseType(cfg.ResponseType) {
	case transport.Default, transport.Text, transport.JSON, transport.ArrayBuffer:
	default:
		return nil, fmt.Errorf("invalid response_type %q", cfg.ResponseType)
	}

	h, err := parseHeaders(cfg.RawHeaders)
	if err != nil {
		return nil, err
	}
	cfg.RequestHeaders = h

	return &cfg, nil
}

// parseHeaders reads "Name: value" fields separated by semicolons,
// keeping their order.
func parseHeaders(raw string) (header.Header, error) {
	var h header.Header
	for _, field := range strings.Split(raw, ";") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		i := strings.IndexByte(field, ':')
		if i <= 0 {
			return header.Header{}, fmt.Errorf("invalid header %q (want \"Name: value\")", field)
		}
		h.Add(strings.TrimSpace(field[:i]), strings.TrimSpace(field[i+1:]))
	}
	return h, nil
}
