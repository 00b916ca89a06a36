package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `logger:
  log_level: "INFO"
  output_file: "./logs/jobtrack.log"

db:
  connection_string: "base.db"
`

func Test_Config_FileValuesAreLoaded(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(baseConfig), 0644))
	t.Setenv("CONFIG_PATH", file)

	cfg := Get()

	assert.Equal(t, "base.db", cfg.DB.ConnectionString)
	assert.Equal(t, LevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, "./logs/jobtrack.log", cfg.Logger.OutputFile)
}

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(baseConfig), 0644))
	t.Setenv("CONFIG_PATH", file)

	t.Setenv("DB_CONNECTION_STRING", "override.db")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_OUTPUT_FILE", "./logs/override.log")

	cfg := Get()

	assert.Equal(t, "override.db", cfg.DB.ConnectionString)
	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "./logs/override.log", cfg.Logger.OutputFile)
}
