package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	OutputJSON = "json"
	OutputText = "text"
)

type Config struct {
	OutputFormat string   `toml:"output_format"`
	ExportFormat string   `toml:"export_format"`
	ProbeTimeout Duration `toml:"probe_timeout"`
}

// Duration decodes TOML strings such as "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() *Config {
	return &Config{
		OutputFormat: OutputJSON,
		ExportFormat: "srt",
		ProbeTimeout: Duration{30 * time.Second},
	}
}

// DefaultPath is ~/.config/vse/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vse", "config.toml"), nil
}

// Load reads the config file at path (DefaultPath when empty), then applies
// VSE_* environment overrides, reading a .env file first if one exists.
// A missing default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	home, _ := os.UserHomeDir()
	path = expandHome(path, home)

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	// a missing .env is normal; a malformed one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("VSE_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = v
	}
	if v := os.Getenv("VSE_EXPORT_FORMAT"); v != "" {
		cfg.ExportFormat = v
	}
	if v := os.Getenv("VSE_PROBE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid VSE_PROBE_TIMEOUT %q: %w", v, err)
		}
		cfg.ProbeTimeout = Duration{d}
	}
	return nil
}

func (c *Config) Validate() error {
	c.OutputFormat = strings.ToLower(strings.TrimSpace(c.OutputFormat))
	c.ExportFormat = strings.ToLower(strings.TrimSpace(c.ExportFormat))

	switch c.OutputFormat {
	case OutputJSON, OutputText:
	default:
		return fmt.Errorf("unsupported output_format %q: use json or text", c.OutputFormat)
	}

	switch c.ExportFormat {
	case "srt", "vtt", "ass":
	default:
		return fmt.Errorf("unsupported export_format %q: use srt, vtt or ass", c.ExportFormat)
	}

	if c.ProbeTimeout.Duration <= 0 {
		return fmt.Errorf("probe_timeout must be positive, got %s", c.ProbeTimeout.Duration)
	}
	return nil
}

func expandHome(path, home string) string {
	if home != "" && len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
