package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".urlrisk"

// Environment variables that override the config file.
const (
	EnvModel  = "URLRISK_MODEL"
	EnvScaler = "URLRISK_SCALER"
	EnvListen = "URLRISK_LISTEN"
	EnvBatch  = "URLRISK_BATCH"
)

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	cf.dir = filepath.Dir(path)

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .urlrisk in the current directory
// 3. Look for .urlrisk in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ApplyFile copies the values set in f onto c. Empty values in f leave c
// unchanged.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}

	if f.Model.Path != "" {
		c.ModelPath = f.resolve(f.Model.Path)
	}
	if f.Model.Checksum != "" {
		c.ModelChecksum = f.Model.Checksum
	}
	if f.Scaler.Path != "" {
		c.ScalerPath = f.resolve(f.Scaler.Path)
	}
	if f.Scaler.Checksum != "" {
		c.ScalerChecksum = f.Scaler.Checksum
	}
	if f.Batch != 0 {
		c.BatchSize = f.Batch
	}
	if f.Server.Listen != "" {
		c.ListenAddr = f.Server.Listen
	}
	if f.Server.ShutdownTimeout != "" {
		d, err := time.ParseDuration(f.Server.ShutdownTimeout)
		if err != nil {
			return fmt.Errorf("invalid server.shutdownTimeout %q: %w", f.Server.ShutdownTimeout, err)
		}
		c.ShutdownTimeout = d
	}
	if f.Server.LogJSON {
		c.LogJSON = true
	}

	return nil
}

// resolve makes a relative artifact path relative to the config file.
func (f *File) resolve(path string) string {
	if filepath.IsAbs(path) || f.dir == "" {
		return path
	}
	return filepath.Join(f.dir, path)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment, or from ./.env when no file is given. Variables that are
// already set win. Missing files are ignored.
func LoadDotEnv(filenames ...string) {
	_ = godotenv.Load(filenames...) //nolint:errcheck // .env is optional
}

// ApplyEnv copies URLRISK_* overrides from lookup onto c.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvModel); ok && v != "" {
		c.ModelPath = v
	}
	if v, ok := lookup(EnvScaler); ok && v != "" {
		c.ScalerPath = v
	}
	if v, ok := lookup(EnvListen); ok && v != "" {
		c.ListenAddr = v
	}
	if v, ok := lookup(EnvBatch); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvBatch, v)
		}
		c.BatchSize = n
	}
	return nil
}

// Load builds a Config from defaults, the config file and the environment,
// in increasing order of precedence. CLI flags are applied by the caller.
//
// If configPath is set and the file does not exist, Load fails with
// ErrConfigNotFound. Otherwise a missing file is not an error.
func Load(configPath string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := NewConfig()
	cfg.ConfigFilePath = configPath

	if path := FindConfigFile(configPath); path != "" {
		f, err := LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		if err := cfg.ApplyFile(f); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	} else if configPath != "" {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}
