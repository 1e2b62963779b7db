package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "data", cfg.Data.Directory)
	assert.False(t, cfg.Import.Combine)
	assert.True(t, cfg.Import.SkipDuplicates)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("GIGBOOK_LOG_LEVEL", "debug")
	t.Setenv("GIGBOOK_DATA_DIRECTORY", "/tmp/gigdata")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/gigdata", cfg.Data.Directory)
}

func TestInitializeConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid log level", "GIGBOOK_LOG_LEVEL", "verbose"},
		{"invalid log format", "GIGBOOK_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "GIGBOOK_CSV_DELIMITER", ";;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	cfg.Log.Level = "nonsense"
	cfg.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
