package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type InputConfig struct {
	Encoding string `toml:"encoding"`
	MaxBytes int64  `toml:"max_bytes"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Pretty bool   `toml:"pretty"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Input:  InputConfig{Encoding: "utf-8"},
		Output: OutputConfig{Format: "json"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
// A missing file is not an error; a file that fails to parse is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = "tabular.toml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	// Env overrides
	if v := os.Getenv("TABULAR_ENCODING"); v != "" {
		cfg.Input.Encoding = v
	}
	if v := os.Getenv("TABULAR_MAX_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: TABULAR_MAX_BYTES=%q", ErrInvalid, v)
		}
		cfg.Input.MaxBytes = n
	}
	if v := os.Getenv("TABULAR_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("TABULAR_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TABULAR_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting outside its allowed values.
func (c Config) Validate() error {
	switch c.Output.Format {
	case "json", "csv":
	default:
		return fmt.Errorf("%w: output.format %q (want json or csv)", ErrInvalid, c.Output.Format)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if c.Input.MaxBytes < 0 {
		return fmt.Errorf("%w: input.max_bytes %d is negative", ErrInvalid, c.Input.MaxBytes)
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, name)
	}
}
