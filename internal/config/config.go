// Package config loads the YAML runtime configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Levels   LevelsConfig   `yaml:"levels"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	Solver   SolverConfig   `yaml:"solver"`
	Sessions SessionsConfig `yaml:"sessions"`
	Trace    TraceConfig    `yaml:"trace"`
}

// ServerConfig configures the HTTP listener. RateLimit is in requests per
// second across all clients; zero disables limiting.
type ServerConfig struct {
	Addr      string  `yaml:"addr" validate:"required"`
	RateLimit float64 `yaml:"rate_limit" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

// LevelsConfig points at an optional directory of level files. Built-in
// levels are always available.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// StoreConfig selects the badger store for authored and generated levels.
// An empty Path with InMemory false disables it.
type StoreConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

type SolverConfig struct {
	MaxNodes int `yaml:"max_nodes" validate:"gt=0"`
}

type SessionsConfig struct {
	Max int `yaml:"max" validate:"gt=0"`
}

type TraceConfig struct {
	Exporter string `yaml:"exporter" validate:"oneof=none stdout"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080", Burst: 20},
		Log:      LogConfig{Level: "info", Format: "auto"},
		Solver:   SolverConfig{MaxNodes: 200_000},
		Sessions: SessionsConfig{Max: 1024},
		Trace:    TraceConfig{Exporter: "none"},
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if err := playground.New().Struct(c); err != nil {
		var verrs playground.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s fails %q", fe.Namespace(), fe.Tag())
		}
		return err
	}
	return nil
}

// SlogLevel maps Log.Level onto slog.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
