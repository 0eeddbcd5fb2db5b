package devserver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort = 5173
	DefaultHost = "localhost"

	EnvPort = "NWL_PORT"
	EnvHost = "NWL_HOST"

	EnvFile = ".env"
)

// Settings are the listen address of the dev server.
type Settings struct {
	Port int
	Host string
}

// LookupFunc reads a process environment variable.
type LookupFunc func(key string) (string, bool)

// LoadSettings resolves the defaults for dir: built-in values, then the
// project's .env file, then the process environment.
func LoadSettings(dir string, lookup LookupFunc) (Settings, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	settings := Settings{Port: DefaultPort, Host: DefaultHost}

	file, err := godotenv.Read(filepath.Join(dir, EnvFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return settings, fmt.Errorf("devserver: read %s: %w", EnvFile, err)
	}

	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		v, ok := file[key]
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return settings, fmt.Errorf("devserver: invalid %s %q", EnvPort, v)
		}
		settings.Port = port
	}
	if v, ok := get(EnvHost); ok {
		settings.Host = v
	}
	return settings, nil
}
