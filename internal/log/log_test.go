package log_test

import (
	"bytes"
	"testing"

	"bennypowers.dev/tuc/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)
	defer log.SetLevel(log.LevelInfo)

	t.Run("info hides debug", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelInfo)

		log.Debug("scanning %s", "a.tsx")
		log.Info("wrote %d rules", 3)
		log.Warn("undefined token %s", "--x")

		out := buf.String()
		assert.NotContains(t, out, "scanning a.tsx")
		assert.Contains(t, out, "[TUC] wrote 3 rules")
		assert.Contains(t, out, "[TUC] undefined token --x")
	})

	t.Run("error only", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelError)

		log.Warn("warn message")
		log.Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})

	t.Run("debug shows everything", func(t *testing.T) {
		buf.Reset()
		log.SetLevel(log.LevelDebug)

		log.Debug("debug message")
		assert.Contains(t, buf.String(), "debug message")
		assert.Equal(t, log.LevelDebug, log.GetLevel())
	})
}

func TestNilOutputIsSilent(t *testing.T) {
	log.SetOutput(nil)
	assert.NotPanics(t, func() { log.Error("nowhere") })
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]log.Level{
		"debug":  log.LevelDebug,
		"INFO":   log.LevelInfo,
		" warn ": log.LevelWarn,
		"error":  log.LevelError,
	} {
		got, err := log.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := log.ParseLevel("loud")
	assert.Error(t, err)
}
