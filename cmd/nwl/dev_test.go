package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDevCommandBuildsThenStartsVite(t *testing.T) {
	original := devProcessRunner
	t.Cleanup(func() { devProcessRunner = original })

	var gotDir, gotName string
	var gotArgs []string
	devProcessRunner = func(_ context.Context, dir, name string, args []string, _, _ io.Writer) error {
		gotDir, gotName, gotArgs = dir, name, args
		return nil
	}

	dir := writeProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NWL_PORT=3000\nNWL_HOST=0.0.0.0\n"), 0o644))

	out, err := executeCommand("dev", dir, "--host", "127.0.0.1")
	require.NoError(t, err)

	require.Contains(t, out, "Starting dev server at http://127.0.0.1:3000")
	require.FileExists(t, filepath.Join(dir, "src", "main.tsx"))
	require.Equal(t, dir, gotDir)
	require.Equal(t, "npx", gotName)
	require.Equal(t, []string{"vite", "--port", "3000", "--host", "127.0.0.1"}, gotArgs)
}

func TestDevSettingsPreferFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NWL_PORT=3000\n"), 0o644))

	settings, err := devSettings(devOptions{Dir: dir, Port: 9000, portSet: true})
	require.NoError(t, err)
	require.Equal(t, 9000, settings.Port)
	require.Equal(t, "localhost", settings.Host)

	settings, err = devSettings(devOptions{Dir: dir, Port: 5173})
	require.NoError(t, err)
	require.Equal(t, 3000, settings.Port)
}
