package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nwl/internal/check"
	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
)

type checkOptions struct {
	Dir        string
	ConfigName string
}

var checkCmdRunner = runCheck

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify the generated output of a built project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := validateProjectDir(dirArg(args))
			if err != nil {
				return err
			}
			opts.Dir = dir

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return checkCmdRunner(opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigName, "config", document.ProjectFile, "Project file name inside the project directory")

	return cmd
}

func runCheck(opts checkOptions, out io.Writer, log *logger.Logger) error {
	report, err := check.New(log).Dir(opts.Dir, opts.ConfigName)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf(
		"Check passed: %d modules, %d imports, %d stylesheets",
		report.Modules, report.Imports, report.Stylesheets,
	)))
	return nil
}
