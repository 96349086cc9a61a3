package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for ttp, stored in ~/.ttp/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// BaseURL is the root of the trip-planning backend API.
	BaseURL string `json:"base_url"`
	// Timezone is the IANA timezone trip dates are interpreted in. Empty = UTC.
	Timezone string `json:"timezone"`
	// TimeoutSeconds bounds each backend request.
	TimeoutSeconds int `json:"timeout_seconds"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
}

const (
	// DefaultBaseURL points at a backend running locally.
	DefaultBaseURL = "http://localhost:9000/api"
	// DefaultTimeoutSeconds is the request timeout used when none is set.
	DefaultTimeoutSeconds = 10
	// DefaultLogLevel keeps request logging quiet unless asked for.
	DefaultLogLevel = "warn"
)

// Environment variables that override the file.
const (
	EnvBaseURL  = "TTP_BASE_URL"
	EnvLogLevel = "TTP_LOG_LEVEL"
)

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Timezone:       "",
		TimeoutSeconds: DefaultTimeoutSeconds,
		LogLevel:       DefaultLogLevel,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// ttp configuration – ~/.ttp/config.json
//
// All settings are optional. Edit this file to point ttp at your backend.
{
  // Root URL of the trip-planning backend API.
  // Can be overridden with the TTP_BASE_URL environment variable.
  "base_url": "http://localhost:9000/api",

  // IANA timezone trip dates are read and written in, e.g. "Pacific/Auckland".
  // Leave empty to use UTC.
  "timezone": "",

  // Seconds to wait for a single backend request.
  "timeout_seconds": 10,

  // Log level: debug, info, warn or error.
  // Can be overridden with TTP_LOG_LEVEL or the --verbose flag.
  "log_level": "warn"
}
`

// Dir returns the ttp data directory (~/.ttp).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".ttp"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.ttp/config.json, creating it with annotated defaults on first
// run, and applies environment overrides.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return applyEnv(defaultConfig()), err
	}
	return LoadFile(filepath.Join(dir, "config.json"))
}

// LoadFile reads the config at path. A missing file is created from the
// annotated template. Environment overrides are applied last.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return applyEnv(defaultConfig()), nil
	}
	if err != nil {
		return applyEnv(defaultConfig()), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return applyEnv(defaultConfig()), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
