package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func dirArg(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return "."
}

// validateProjectDir resolves dir and checks that it is an existing directory.
func validateProjectDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve project directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project path %s is not a directory", abs)
	}
	return abs, nil
}

func validatePageFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("page file is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("page file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("page path %s is a directory", path)
	}
	return nil
}
