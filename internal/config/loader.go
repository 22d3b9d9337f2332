package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"nyxventure/internal/common/fsutil"
)

// EnvPrefix prefixes every environment override, e.g. NYX_ADDR.
const EnvPrefix = "NYX_"

// Defaults applied by WithDefaults.
const (
	DefaultAddr         = ":8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultJournalSize  = 1024
	DefaultStreamBuffer = 64
	DefaultMaxBodyBytes = 1 << 20
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr         string   `json:"addr" yaml:"addr" toml:"addr" env:"ADDR"`
	LogLevel     string   `json:"log_level" yaml:"log_level" toml:"log_level" env:"LOG_LEVEL"`
	LogFormat    string   `json:"log_format" yaml:"log_format" toml:"log_format" env:"LOG_FORMAT"`
	JournalSize  int      `json:"journal_size" yaml:"journal_size" toml:"journal_size" env:"JOURNAL_SIZE"`
	StreamBuffer int      `json:"stream_buffer" yaml:"stream_buffer" toml:"stream_buffer" env:"STREAM_BUFFER"`
	ScriptsDir   string   `json:"scripts_dir" yaml:"scripts_dir" toml:"scripts_dir" env:"SCRIPTS_DIR"`
	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" env:"MAX_BODY_BYTES"`
	CORSEnabled  bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled" env:"CORS_ENABLED"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	Title        string   `json:"title" yaml:"title" toml:"title" env:"TITLE"`
	// ArchivePath is the SQLite file events are archived to. Empty disables
	// the archive.
	ArchivePath string `json:"archive_path" yaml:"archive_path" toml:"archive_path" env:"ARCHIVE_PATH"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// ApplyEnv overrides fields of cfg from NYX_* environment variables. Unset
// variables leave the field as it is.
func ApplyEnv(cfg Config) (Config, error) {
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// WithDefaults fills unspecified fields and expands '~' in ScriptsDir and
// ArchivePath.
func (c Config) WithDefaults() (Config, error) {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.JournalSize <= 0 {
		c.JournalSize = DefaultJournalSize
	}
	if c.StreamBuffer <= 0 {
		c.StreamBuffer = DefaultStreamBuffer
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	dir, err := fsutil.ExpandHome(c.ScriptsDir)
	if err != nil {
		return c, err
	}
	c.ScriptsDir = dir
	if c.ArchivePath, err = fsutil.ExpandHome(c.ArchivePath); err != nil {
		return c, err
	}
	return c, nil
}

// Resolve loads path when given, then applies environment overrides and
// defaults.
func Resolve(path string) (Config, error) {
	var cfg Config
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}
	cfg, err := ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg.WithDefaults()
}
