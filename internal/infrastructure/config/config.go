// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for seedgen configuration.
	DefaultConfigDir = ".seedgen"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultHistoryFile is the default generation ledger file name.
	DefaultHistoryFile = "history.db"

	// DefaultPasswordHash is the bcrypt hash shared by every demo account.
	DefaultPasswordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHiM7R.6z6f/9T7VDaRao7IhiHBpjz2"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Paths    PathsConfig    `yaml:",inline"`
	Seed     SeedConfig     `yaml:"seed,omitempty"`
	History  HistoryConfig  `yaml:"history,omitempty"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// PathsConfig locates the catalog directory and the generated script.
type PathsConfig struct {
	DataDir string `yaml:"data_dir,omitempty" env:"SEEDGEN_DATA_DIR"`
	Output  string `yaml:"output,omitempty" env:"SEEDGEN_OUTPUT"`
}

// SeedConfig holds the demo accounts written into the script.
type SeedConfig struct {
	PasswordHash string `yaml:"password_hash,omitempty"`
	// Users replaces the built-in demo accounts when non-empty.
	Users []entities.SeedUser `yaml:"users,omitempty"`
}

// HistoryConfig holds configuration for the SQLite generation ledger.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" env:"SEEDGEN_HISTORY_ENABLED"`
	Path    string `yaml:"path,omitempty" env:"SEEDGEN_HISTORY_PATH"`
}

// DatabaseConfig holds the PostgreSQL target used by apply.
type DatabaseConfig struct {
	URL string `yaml:"url,omitempty" env:"DATABASE_URL"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty" env:"SEEDGEN_LOG_LEVEL"`
	Format string `yaml:"format,omitempty" env:"SEEDGEN_LOG_FORMAT"`
}

type seedEnv struct {
	PasswordHash string `env:"SEEDGEN_PASSWORD_HASH"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir: "Data",
			Output:  filepath.Join("sql", "full_demo_bootstrap.sql"),
		},
		Seed: SeedConfig{
			PasswordHash: DefaultPasswordHash,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(DefaultConfigDir, DefaultHistoryFile),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from the .seedgen directory in the given path.
// A missing config file yields the defaults; environment variables are applied last.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	for _, section := range []any{&c.Paths, &c.History, &c.Database, &c.Log} {
		if err := env.Parse(section); err != nil {
			return fmt.Errorf("parsing environment: %w", err)
		}
	}

	seed, err := env.ParseAs[seedEnv]()
	if err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	if seed.PasswordHash != "" {
		c.Seed.PasswordHash = seed.PasswordHash
	}
	return nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		return errors.New("output is required")
	}
	if c.Seed.PasswordHash == "" {
		return errors.New("seed.password_hash is required")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path is required when history is enabled")
	}

	emails := make(map[string]bool, len(c.Seed.Users))
	for i, u := range c.Seed.Users {
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("seed.users[%d]: name is required", i)
		}
		email := strings.ToLower(strings.TrimSpace(u.Email))
		if email == "" {
			return fmt.Errorf("seed.users[%d]: email is required", i)
		}
		if emails[email] {
			return fmt.Errorf("seed.users[%d]: duplicate email %s", i, u.Email)
		}
		emails[email] = true
	}
	return nil
}

// SeedUsers returns the configured accounts, or the built-in demo accounts.
func (c *Config) SeedUsers() []entities.SeedUser {
	if len(c.Seed.Users) > 0 {
		return c.Seed.Users
	}
	return entities.DefaultSeedUsers
}

// ResolvePath anchors a relative path at basePath.
func ResolvePath(basePath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .seedgen config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
