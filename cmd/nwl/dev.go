package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/nwl/internal/devserver"
	"github.com/alexisbeaulieu97/nwl/internal/document"
	"github.com/alexisbeaulieu97/nwl/internal/logger"
)

type devOptions struct {
	Dir        string
	ConfigName string
	Port       int
	Host       string
	Watch      bool
	NoCheck    bool
	DryRun     bool
	portSet    bool
	hostSet    bool
}

var devCmdRunner = runDev

var devProcessRunner devserver.Runner = devserver.ExecRunner

func newDevCmd(root *rootFlags) *cobra.Command {
	opts := devOptions{}

	cmd := &cobra.Command{
		Use:   "dev [dir]",
		Short: "Build the project and start the Vite dev server",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := validateProjectDir(dirArg(args))
			if err != nil {
				return err
			}
			opts.Dir = dir
			opts.DryRun = root.dryRun
			opts.portSet = cmd.Flags().Changed("port")
			opts.hostSet = cmd.Flags().Changed("host")

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return devCmdRunner(cmd.Context(), opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", devserver.DefaultPort, "Dev server port (default from NWL_PORT)")
	cmd.Flags().StringVar(&opts.Host, "host", devserver.DefaultHost, "Dev server host (default from NWL_HOST)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Rebuild when sources change")
	cmd.Flags().BoolVar(&opts.NoCheck, "no-check", false, "Skip verification of the generated output")
	cmd.Flags().StringVar(&opts.ConfigName, "config", document.ProjectFile, "Project file name inside the project directory")

	return cmd
}

// devSettings applies flags over the .env and environment defaults.
func devSettings(opts devOptions) (devserver.Settings, error) {
	settings, err := devserver.LoadSettings(opts.Dir, nil)
	if err != nil {
		return settings, err
	}
	if opts.portSet {
		settings.Port = opts.Port
	}
	if opts.hostSet {
		settings.Host = opts.Host
	}
	return settings, nil
}

func runDev(ctx context.Context, opts devOptions, out io.Writer, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := devSettings(opts)
	if err != nil {
		return err
	}

	build := buildOptions{
		Dir:        opts.Dir,
		ConfigName: opts.ConfigName,
		NoCheck:    opts.NoCheck,
		DryRun:     opts.DryRun,
	}
	fmt.Fprintln(out, headerStyle.Render("Building NWL project in "+opts.Dir))
	if err := buildOnce(ctx, build, out, log); err != nil {
		return err
	}

	server := &devserver.Server{
		Dir:      opts.Dir,
		Settings: settings,
		Stdout:   out,
		Stderr:   out,
		Logger:   log,
		Run:      devProcessRunner,
	}
	fmt.Fprintln(out, hintStyle.Render("Starting dev server at "+server.URL()))

	if !opts.Watch {
		return server.Start(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	gctx, stop := context.WithCancel(gctx)
	defer stop()
	g.Go(func() error {
		defer stop()
		return server.Start(gctx)
	})
	g.Go(func() error {
		return watchProject(gctx, opts.Dir, opts.ConfigName, out, log, func() error {
			fmt.Fprintln(out, hintStyle.Render("Change detected, rebuilding..."))
			return buildOnce(gctx, build, out, log)
		})
	})
	return g.Wait()
}
