// Package config loads the bridge's configuration from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/q3ui/uibridge/domain/errors"
	"github.com/q3ui/uibridge/infrastructure/parser"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "UIBRIDGE_CONFIG"

// Config is the root configuration document.
type Config struct {
	Log      LogConfig      `yaml:"log" json:"log"`
	Dispatch DispatchConfig `yaml:"dispatch" json:"dispatch"`
	Host     HostConfig     `yaml:"host" json:"host"`
	Tracing  TracingConfig  `yaml:"tracing" json:"tracing"`
}

// LogConfig controls the console logger.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Source bool   `yaml:"source" json:"source" jsonschema:"description=Append file:line to every record"`
}

// DispatchConfig controls the vmMain gateway.
type DispatchConfig struct {
	Trace        bool `yaml:"trace" json:"trace" jsonschema:"description=Log every vmMain call at debug level"`
	ReportPanics bool `yaml:"report_panics" json:"report_panics" jsonschema:"description=Report panicking handlers through the engine error path,default=true"`
}

// HostConfig controls the reference host in cmd/uihost.
type HostConfig struct {
	Module           string `yaml:"module" json:"module,omitempty" validate:"omitempty,endswith=.wasm" jsonschema:"description=Path to a wasm UI module; empty runs the UI in process"`
	MemoryLimitPages uint32 `yaml:"memory_limit_pages" json:"memory_limit_pages" validate:"gte=1,lte=65536" jsonschema:"minimum=1,maximum=65536,default=256"`
	HistoryFile      string `yaml:"history_file" json:"history_file,omitempty"`
	Prompt           string `yaml:"prompt" json:"prompt" validate:"required" jsonschema:"default=ui> "`
	Color            bool   `yaml:"color" json:"color" jsonschema:"description=Render engine colour codes in console output,default=true"`
}

// TracingConfig controls OpenTelemetry spans around host syscalls.
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Exporter string `yaml:"exporter" json:"exporter,omitempty" validate:"omitempty,oneof=noop stdout" jsonschema:"enum=noop,enum=stdout"`
}

// Defaults returns the configuration used when no file is given.
func Defaults() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Dispatch: DispatchConfig{
			ReportPanics: true,
		},
		Host: HostConfig{
			MemoryLimitPages: 256,
			Prompt:           "ui> ",
			Color:            true,
		},
		Tracing: TracingConfig{Exporter: "stdout"},
	}
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := parser.NewYAMLParser(true).Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	ApplyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Parse(nil)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// FromEnv loads the file named by $UIBRIDGE_CONFIG, or the defaults when it
// is unset.
func FromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Parse(nil)
	}
	return Load(path)
}

// ApplyEnvOverrides maps UIBRIDGE_* env vars to config fields.
func ApplyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UIBRIDGE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("UIBRIDGE_TRACE"); v == "true" || v == "1" {
		cfg.Dispatch.Trace = true
	}
	if v := os.Getenv("UIBRIDGE_MODULE"); v != "" {
		cfg.Host.Module = v
	}
	if v := os.Getenv("UIBRIDGE_TRACING"); v == "true" || v == "1" {
		cfg.Tracing.Enabled = true
	}
}

// Cvars the UI library reads its settings from. An empty value keeps the
// default.
const (
	CvarLogLevel     = "ui_bridge_loglevel"
	CvarLogSource    = "ui_bridge_logsource"
	CvarTrace        = "ui_bridge_trace"
	CvarReportPanics = "ui_bridge_reportpanics"
)

// FromCvars builds the library configuration from engine cvars. lookup
// returns a cvar's text, or "" when the engine does not know it. Cvars are
// read in a fixed order.
func FromCvars(lookup func(name string) string) (*Config, error) {
	cfg := Defaults()
	if v := lookup(CvarLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{CvarLogSource, &cfg.Log.Source},
		{CvarTrace, &cfg.Dispatch.Trace},
		{CvarReportPanics, &cfg.Dispatch.ReportPanics},
	} {
		v := lookup(b.name)
		if v == "" {
			continue
		}
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &errors.ConfigError{Field: b.name, Err: err}
		}
		*b.dst = on
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SlogLevel converts the configured level to slog.Level.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
