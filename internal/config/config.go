package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the tool configuration loaded from the user's config
// file, with defaults for everything that is not set.
type Config struct {
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	List     ListConfig     `yaml:"list" mapstructure:"list"`
	Export   ExportConfig   `yaml:"export" mapstructure:"export"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ListConfig holds defaults for the list command.
type ListConfig struct {
	// Limit is the default maximum number of tasks printed by list.
	// Zero means unbounded.
	Limit int `yaml:"limit" mapstructure:"limit"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(home(), ".focus-timer", "database.db")},
		List:     ListConfig{Limit: 0},
		Export:   ExportConfig{Format: "csv"},
	}
}

// Load reads the config file if present and applies the APP_DB_PATH
// environment override. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg := Default()

	if err := loadFile(Path(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if p := os.Getenv("APP_DB_PATH"); p != "" {
		cfg.Database.Path = p
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Path returns the location of the user's config file.
func Path() string {
	return filepath.Join(home(), ".focus-timer", "config.yaml")
}

func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return h
}
