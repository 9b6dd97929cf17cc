package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"salesrace/internal/config"
)

func TestDisabledByDefault(t *testing.T) {
	t.Cleanup(Reset)
	dir := t.TempDir()
	file := filepath.Join(dir, "logs", "salesrace.log")

	require.NoError(t, Initialize(config.LoggingConfig{File: file}, true))
	Get(CategoryRace).Info("should not be written")
	Sync()

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err), "no log file without debug_mode")
}

func TestCategoriesWriteToFile(t *testing.T) {
	t.Cleanup(Reset)
	file := filepath.Join(t.TempDir(), "logs", "salesrace.log")

	require.NoError(t, Initialize(config.LoggingConfig{
		File:       file,
		Level:      "debug",
		DebugMode:  true,
		Categories: map[string]bool{"metrics": false},
	}, false))

	Get(CategoryRace).Debug("race line")
	Get(CategoryUI).Info("ui line")
	Get(CategoryMetrics).Info("metrics line")
	Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "race line")
	assert.Contains(t, out, `"logger":"race"`)
	assert.Contains(t, out, "ui line")
	assert.False(t, strings.Contains(out, "metrics line"), "disabled category leaked")
}

func TestLevelFiltering(t *testing.T) {
	t.Cleanup(Reset)
	file := filepath.Join(t.TempDir(), "salesrace.log")

	require.NoError(t, Initialize(config.LoggingConfig{File: file, Level: "warn", DebugMode: true}, false))
	Get(CategoryBoot).Info("quiet")
	Get(CategoryBoot).Warn("loud")
	Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestBuild_RequiresFile(t *testing.T) {
	_, err := Build(config.LoggingConfig{DebugMode: true}, false)
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("whatever"))
}
