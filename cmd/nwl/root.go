package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/nwl/internal/logger"
)

type rootFlags struct {
	verbose   bool
	dryRun    bool
	logFormat string
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "nwl",
		Short:         "NWL compiles declarative YAML pages into React components",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be written without touching the disk")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "console", "Log format: console or json")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newCompileCmd(flags))
	cmd.AddCommand(newNewCmd(flags))
	cmd.AddCommand(newDevCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes to errOut. Library progress is logged at info, so the
// default level keeps only warnings.
func newLogger(flags *rootFlags, errOut io.Writer) (*logger.Logger, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}

	var human bool
	switch strings.ToLower(strings.TrimSpace(flags.logFormat)) {
	case "", "console":
		human = true
	case "json":
	default:
		return nil, fmt.Errorf("unknown log format %q", flags.logFormat)
	}

	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: human,
		NoColor:       !isTerminal(errOut),
		Writer:        errOut,
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
