// Package devserver supervises the Vite development server of a project.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/nwl/internal/logger"
)

// Runner starts a process in dir and blocks until it exits.
type Runner func(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) error

// ExecRunner runs the process with os/exec. Cancelling ctx interrupts the
// process and kills it if it has not exited within the wait delay.
func ExecRunner(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = 5 * time.Second
	return cmd.Run()
}

// Server describes one dev server process.
type Server struct {
	Dir      string
	Settings Settings
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *logger.Logger
	// Run defaults to ExecRunner.
	Run Runner
}

func (s *Server) address() (int, string) {
	port, host := s.Settings.Port, s.Settings.Host
	if port == 0 {
		port = DefaultPort
	}
	if host == "" {
		host = DefaultHost
	}
	return port, host
}

// Command returns the program and arguments that start Vite.
func (s *Server) Command() (string, []string) {
	port, host := s.address()
	return "npx", []string{"vite", "--port", strconv.Itoa(port), "--host", host}
}

// URL is where the server listens.
func (s *Server) URL() string {
	port, host := s.address()
	return fmt.Sprintf("http://%s:%d", host, port)
}

// Start blocks until the process exits or ctx is done. Exiting because ctx
// was cancelled is not an error.
func (s *Server) Start(ctx context.Context) error {
	run := s.Run
	if run == nil {
		run = ExecRunner
	}
	stdout, stderr := s.Stdout, s.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	name, args := s.Command()
	log := s.Logger.WithFields(map[string]any{"dir": s.Dir, "url": s.URL()})
	log.Info("starting dev server")

	err := run(ctx, s.Dir, name, args, stdout, stderr)
	if ctx.Err() != nil {
		log.Info("dev server stopped")
		return nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("dev server exited with code %d: %w", exitErr.ExitCode(), err)
		}
		return fmt.Errorf("dev server: %w", err)
	}
	return nil
}
