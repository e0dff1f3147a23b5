package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/pomo/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--config", writeConfig(t, "")}))

	cfg, err := loadConfig(viper.New(), fs)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings, cfg.StartSettings())
	assert.Equal(t, VariantBoth, cfg.UI.Variant)
	assert.True(t, cfg.UI.ShowHelp)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "journal.db", filepath.Base(cfg.Journal.Path))
}

func TestLoadConfig_FileValues(t *testing.T) {
	path := writeConfig(t, `
timer:
  minutes: 50
  seconds: 30
ui:
  variant: animated
  show_help: false
journal:
  path: ""
logging:
  level: debug
`)
	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--config", path}))

	cfg, err := loadConfig(viper.New(), fs)
	require.NoError(t, err)

	assert.Equal(t, domain.Settings{Minutes: 50, Seconds: 30}, cfg.StartSettings())
	assert.Equal(t, VariantAnimated, cfg.UI.Variant)
	assert.False(t, cfg.UI.ShowHelp)
	assert.Empty(t, cfg.Journal.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_FlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "ui:\n  variant: animated\n")
	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--config", path, "--variant", "plain"}))

	cfg, err := loadConfig(viper.New(), fs)
	require.NoError(t, err)

	assert.Equal(t, VariantPlain, cfg.UI.Variant)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("POMO_TIMER_MINUTES", "15")
	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--config", writeConfig(t, "")}))

	cfg, err := loadConfig(viper.New(), fs)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Timer.Minutes)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown variant", "ui:\n  variant: fancy\n"},
		{"negative minutes", "timer:\n  minutes: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Flags()
			require.NoError(t, fs.Parse([]string{"--config", writeConfig(t, tt.body)}))

			_, err := loadConfig(viper.New(), fs)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	fs := Flags()
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := loadConfig(viper.New(), fs)
	assert.ErrorContains(t, err, "error reading config file")
}
