package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL",
		"LOG_FORMAT",
		"TICK_FREQUENCY_MS",
		"TICK_AUTO_START",
		"TICK_SINGLE_TIMER",
		"EVENT_STRICT_REGISTER",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, time.Second, cfg.TickFrequency)
	assert.True(t, cfg.TickAutoStart)
	assert.True(t, cfg.TickSingleTimer)
	assert.False(t, cfg.EventStrictRegister)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("TICK_FREQUENCY_MS", "50")
	t.Setenv("TICK_AUTO_START", "false")
	t.Setenv("TICK_SINGLE_TIMER", "0")
	t.Setenv("EVENT_STRICT_REGISTER", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 50*time.Millisecond, cfg.TickFrequency)
	assert.False(t, cfg.TickAutoStart)
	assert.False(t, cfg.TickSingleTimer)
	assert.True(t, cfg.EventStrictRegister)
}

func TestLoadLargestFrequency(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICK_FREQUENCY_MS", "9223372036854")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(9223372036854)*time.Millisecond, cfg.TickFrequency)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"frequency not a number", "TICK_FREQUENCY_MS", "fast"},
		{"frequency zero", "TICK_FREQUENCY_MS", "0"},
		{"frequency negative", "TICK_FREQUENCY_MS", "-5"},
		{"frequency overflows duration", "TICK_FREQUENCY_MS", "9223372036854776"},
		{"frequency overflows int64", "TICK_FREQUENCY_MS", "99999999999999999999"},
		{"auto start not a bool", "TICK_AUTO_START", "maybe"},
		{"strict register not a bool", "EVENT_STRICT_REGISTER", "yes please"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
