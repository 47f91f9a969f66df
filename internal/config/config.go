// Package config loads liftlog's configuration: liftlog.json with
// LIFTLOG_* environment overrides on top. A missing file is not an
// error; everything has a default.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/liftlog-dev/liftlog/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "liftlog.json"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultDataPath is the default bolt database path. Empty selects
	// the in-memory store.
	DefaultDataPath = "liftlog.db"
)

// Config is the complete liftlog configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `json:"addr,omitempty"`

	// DataPath is the bolt database file. Empty runs on the in-memory
	// store, losing data on exit.
	DataPath string `json:"dataPath,omitempty"`

	// AssetVersion tags the static asset cache.
	AssetVersion string `json:"assetVersion,omitempty"`

	// Log configures logging output.
	Log LogConfig `json:"log,omitempty"`

	// Backup configures S3 snapshots. Disabled unless Bucket is set.
	Backup BackupConfig `json:"backup,omitempty"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `json:"level,omitempty"`

	// File is an optional path for a JSON log stream, written in
	// addition to the text stream on stderr.
	File string `json:"file,omitempty"`
}

// BackupConfig configures S3 snapshots of the record store.
type BackupConfig struct {
	Bucket    string `json:"bucket,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Region    string `json:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	AccessKey string `json:"accessKey,omitempty"`
	SecretKey string `json:"secretKey,omitempty"`
}

// Enabled reports whether backups are configured.
func (b BackupConfig) Enabled() bool { return b.Bucket != "" }

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Addr:         DefaultAddr,
		DataPath:     DefaultDataPath,
		AssetVersion: "dev",
		Log: LogConfig{
			Level: "info",
		},
		Backup: BackupConfig{
			Prefix: "liftlog",
			Region: "us-east-1",
		},
	}
}

// Load reads liftlog.json from the directory, applies LIFTLOG_*
// overrides, and validates. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, errors.New("L102").WithDetail(path).Wrap(err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("L101").WithDetail(path).Wrap(err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as indented JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// envOverrides maps environment variables to config fields.
func (c *Config) applyEnv() {
	set := func(target *string, name string) {
		if v, ok := os.LookupEnv(name); ok {
			*target = v
		}
	}

	set(&c.Addr, "LIFTLOG_ADDR")
	set(&c.DataPath, "LIFTLOG_DATA_PATH")
	set(&c.AssetVersion, "LIFTLOG_ASSET_VERSION")
	set(&c.Log.Level, "LIFTLOG_LOG_LEVEL")
	set(&c.Log.File, "LIFTLOG_LOG_FILE")
	set(&c.Backup.Bucket, "LIFTLOG_BACKUP_BUCKET")
	set(&c.Backup.Prefix, "LIFTLOG_BACKUP_PREFIX")
	set(&c.Backup.Region, "LIFTLOG_BACKUP_REGION")
	set(&c.Backup.Endpoint, "LIFTLOG_BACKUP_ENDPOINT")
	set(&c.Backup.AccessKey, "LIFTLOG_BACKUP_ACCESS_KEY")
	set(&c.Backup.SecretKey, "LIFTLOG_BACKUP_SECRET_KEY")
}

func (c *Config) validate() error {
	if !strings.Contains(c.Addr, ":") {
		return errors.New("L104").WithDetail("addr: " + c.Addr)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level into an slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.New("L103").WithDetail("log.level: " + c.Log.Level)
	}
}
