package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Watch   WatchConfig   `mapstructure:"watch"`
	History HistoryConfig `mapstructure:"history"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WatchConfig holds event source configuration
type WatchConfig struct {
	Source     string   `mapstructure:"source"`      // "dir", "signal" or "interval"
	Dir        string   `mapstructure:"dir"`         // Directory watched for screenshots
	Extensions []string `mapstructure:"extensions"`  // File extensions counted as screenshots
	IntervalMS int      `mapstructure:"interval_ms"` // Period for the interval source
}

// HistoryConfig holds session history configuration
type HistoryConfig struct {
	File string `mapstructure:"file"` // bbolt database path; empty disables persistence
}

// UIConfig holds UI configuration
type UIConfig struct {
	LogLines int `mapstructure:"log_lines"` // Max recent events kept in the log pane
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Watch: WatchConfig{
			Source:     "dir",
			Dir:        defaultScreenshotDir(),
			Extensions: []string{".png", ".jpg", ".jpeg"},
			IntervalMS: 2000,
		},
		History: HistoryConfig{
			File: defaultHistoryPath(),
		},
		UI: UIConfig{
			LogLines: 200,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultScreenshotDir returns where the current OS drops screenshots by default
func defaultScreenshotDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Desktop")
	case "windows":
		return filepath.Join(home, "Pictures", "Screenshots")
	default:
		return filepath.Join(home, "Pictures")
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "snapcount", "snapcount.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "snapcount", "snapcount.log")
	}
}

// defaultHistoryPath returns the default history database path for the current OS
func defaultHistoryPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "snapcount", "history.db")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "snapcount", "history.db")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "snapcount")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "snapcount")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("SNAPCOUNT")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("watch.source", cfg.Watch.Source)
	viper.Set("watch.dir", cfg.Watch.Dir)
	viper.Set("watch.extensions", cfg.Watch.Extensions)
	viper.Set("watch.interval_ms", cfg.Watch.IntervalMS)

	viper.Set("history.file", cfg.History.File)

	viper.Set("ui.log_lines", cfg.UI.LogLines)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
