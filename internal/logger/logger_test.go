package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"route": "/about", "component": "About"})
	log.Info("page compiled")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "page compiled", entry["message"])
	require.Equal(t, "/about", entry["route"])
	require.Equal(t, "About", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled("debug"))
	require.True(t, log.Enabled("warn"))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("page", "pages/home.yaml")
	log.Error(errors.New("boom"), "build failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "build failed", entry["message"])
	require.Equal(t, "pages/home.yaml", entry["page"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.With("k", "v").Warn("ignored")
		log.Error(errors.New("x"), "ignored")
	})
	require.False(t, log.Enabled("error"))
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, NoColor: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("theme file not found")
	require.Contains(t, buf.String(), "WRN")
	require.Contains(t, buf.String(), "theme file not found")
}
