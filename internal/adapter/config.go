package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmcdole/pomo/internal/domain"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Variant selects which clock faces are mounted
type Variant string

const (
	VariantPlain    Variant = "plain"
	VariantAnimated Variant = "animated"
	VariantBoth     Variant = "both"
)

// Config holds all application configuration
type Config struct {
	Timer   TimerConfig   `mapstructure:"timer"`
	UI      UIConfig      `mapstructure:"ui"`
	Journal JournalConfig `mapstructure:"journal"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TimerConfig holds the countdown start used until the user applies settings
type TimerConfig struct {
	Minutes int `mapstructure:"minutes"`
	Seconds int `mapstructure:"seconds"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Variant  Variant `mapstructure:"variant"`
	ShowHelp bool    `mapstructure:"show_help"`
}

// JournalConfig holds cycle journal configuration
type JournalConfig struct {
	Path string `mapstructure:"path"` // empty keeps the journal in memory
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			Minutes: domain.DefaultSettings.Minutes,
			Seconds: domain.DefaultSettings.Seconds,
		},
		UI: UIConfig{
			Variant:  VariantBoth,
			ShowHelp: true,
		},
		Journal: JournalConfig{
			Path: filepath.Join(defaultDataPath(), "journal.db"),
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "pomo.log"),
			Level: "INFO",
		},
	}
}

// StartSettings returns the configured default countdown start
func (c *Config) StartSettings() domain.Settings {
	return domain.Settings{Minutes: c.Timer.Minutes, Seconds: c.Timer.Seconds}
}

// Validate checks values viper cannot type-check for us
func (c *Config) Validate() error {
	switch c.UI.Variant {
	case VariantPlain, VariantAnimated, VariantBoth:
	default:
		return fmt.Errorf("ui.variant must be plain, animated or both, got %q", c.UI.Variant)
	}
	if c.Timer.Minutes < 0 || c.Timer.Seconds < 0 {
		return fmt.Errorf("timer start must not be negative, got %d:%d", c.Timer.Minutes, c.Timer.Seconds)
	}
	return nil
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pomo")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "pomo")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "pomo")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "pomo")
	}
}

var envKeyReplacer = strings.NewReplacer(".", "_")

// Flags registers the command line flags that override config keys
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("pomo", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file")
	fs.String("variant", string(VariantBoth), "clock face to show: plain, animated or both")
	fs.BoolP("version", "v", false, "print version")
	return fs
}

// LoadConfig loads configuration from file, environment and flags.
// flags may be nil.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	return loadConfig(viper.New(), flags)
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()

	v.SetDefault("timer.minutes", cfg.Timer.Minutes)
	v.SetDefault("timer.seconds", cfg.Timer.Seconds)
	v.SetDefault("ui.variant", string(cfg.UI.Variant))
	v.SetDefault("ui.show_help", cfg.UI.ShowHelp)
	v.SetDefault("journal.path", cfg.Journal.Path)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	configFile := ""
	if flags != nil {
		if f := flags.Lookup("variant"); f != nil && f.Changed {
			if err := v.BindPFlag("ui.variant", f); err != nil {
				return nil, fmt.Errorf("failed to bind variant flag: %w", err)
			}
		}
		configFile, _ = flags.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. POMO_TIMER_MINUTES
	v.SetEnvPrefix("POMO")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
