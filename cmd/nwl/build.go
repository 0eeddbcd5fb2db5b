package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nwl/internal/check"
	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
	"github.com/alexisbeaulieu97/nwl/internal/project"
	"github.com/alexisbeaulieu97/nwl/internal/tui"
	"github.com/alexisbeaulieu97/nwl/internal/watch"
)

type buildOptions struct {
	Dir         string
	ConfigName  string
	Watch       bool
	NoCheck     bool
	Strict      bool
	DryRun      bool
	Interactive bool
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Compile every route of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := validateProjectDir(dirArg(args))
			if err != nil {
				return err
			}
			opts.Dir = dir
			opts.DryRun = root.dryRun
			opts.Interactive = isTerminal(cmd.OutOrStdout()) && !opts.Watch

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return buildCmdRunner(cmd.Context(), opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rebuild when sources change")
	cmd.Flags().BoolVar(&opts.NoCheck, "no-check", false, "Skip verification of the generated output")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on bindings to undeclared state")
	cmd.Flags().StringVar(&opts.ConfigName, "config", document.ProjectFile, "Project file name inside the project directory")

	return cmd
}

func runBuild(ctx context.Context, opts buildOptions, out io.Writer, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(out, headerStyle.Render("Building NWL project in "+opts.Dir))

	if err := buildOnce(ctx, opts, out, log); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}
	return watchProject(ctx, opts.Dir, opts.ConfigName, out, log, func() error {
		fmt.Fprintln(out, hintStyle.Render("Change detected, rebuilding..."))
		return buildOnce(ctx, opts, out, log)
	})
}

// buildOnce runs one build and verifies its output.
func buildOnce(ctx context.Context, opts buildOptions, out io.Writer, log *logger.Logger) error {
	builderOpts := []project.Option{
		project.WithLogger(log),
		project.WithStrictBindings(opts.Strict),
		project.WithConfigName(opts.ConfigName),
	}

	var dry *project.DryRunWriter
	if opts.DryRun {
		dry = project.NewDryRunWriter()
		builderOpts = append(builderOpts, project.WithWriter(dry))
	}

	var session *tui.Session
	if opts.Interactive {
		cfg, err := document.LoadProject(filepath.Join(opts.Dir, opts.ConfigName))
		if err != nil {
			return err
		}
		session = tui.NewSession(tui.NewModel(cfg, false), true, out)
		builderOpts = append(builderOpts, project.WithProgress(session.Progress))
		session.Start()
	}

	result, err := project.New(builderOpts...).Build(ctx, opts.Dir)
	if session != nil {
		if tuiErr := session.Finish(err); tuiErr != nil && err == nil {
			err = tuiErr
		}
	}
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(out, "warning: page %s: %s %s\n", d.Page, d.Element, d.Message)
	}

	if dry != nil {
		diff, err := dry.Diff()
		if err != nil {
			return err
		}
		fmt.Fprint(out, diff)
	}

	if !opts.NoCheck {
		if _, err := check.New(log).Result(result); err != nil {
			return err
		}
	}

	if session == nil {
		fmt.Fprintln(out, successStyle.Render("Build successful! Routes generated automatically."))
	}
	return nil
}

// watchProject blocks until ctx is done, calling rebuild after each batch of
// source changes. Rebuild failures are reported and watching continues.
func watchProject(ctx context.Context, dir, configName string, out io.Writer, log *logger.Logger, rebuild func() error) error {
	cfg, err := document.LoadProject(filepath.Join(dir, configName))
	if err != nil {
		return err
	}

	opts := watch.ProjectOptions(cfg, configName)
	opts.Logger = log
	w, err := watch.New(dir, opts)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintln(out, hintStyle.Render("Watching for changes. Press Ctrl+C to stop."))
	return w.Run(ctx, func(events []fsnotify.Event) {
		if log.Enabled("debug") {
			names := make([]string, len(events))
			for i, ev := range events {
				names[i] = ev.Name
			}
			log.With("changed", names).Debug("rebuilding")
		}
		if err := rebuild(); err != nil {
			fmt.Fprintln(out, failureStyle.Render("Build failed: ")+err.Error())
		}
	})
}
