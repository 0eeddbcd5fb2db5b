package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateProjectDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "nwl.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: x\n"), 0o644))

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "existing directory", path: dir},
		{name: "missing", path: filepath.Join(dir, "missing"), wantErr: "does not exist"},
		{name: "file", path: file, wantErr: "is not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := validateProjectDir(tt.path)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, filepath.IsAbs(got))
		})
	}
}

func TestDirArgDefaultsToCurrentDirectory(t *testing.T) {
	t.Parallel()

	require.Equal(t, ".", dirArg(nil))
	require.Equal(t, ".", dirArg([]string{"  "}))
	require.Equal(t, "site", dirArg([]string{"site"}))
}

func TestValidatePageFile(t *testing.T) {
	t.Parallel()

	require.ErrorContains(t, validatePageFile(""), "page file is required")
	require.ErrorContains(t, validatePageFile(t.TempDir()), "is a directory")
}
