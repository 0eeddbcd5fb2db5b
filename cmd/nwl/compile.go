package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nwl/internal/logger"
	"github.com/alexisbeaulieu97/nwl/internal/project"
	"github.com/alexisbeaulieu97/nwl/pkg/diff"
)

type compileOptions struct {
	File   string
	Output string
	Diff   bool
	Strict bool
	DryRun bool
}

var compileCmdRunner = runCompile

func newCompileCmd(root *rootFlags) *cobra.Command {
	opts := compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a standalone page document",
		Long: `Compile turns a page: or pages: document into React component modules.
A single page is written to --output, or printed when no output is given.
With several pages, --output names a directory receiving one module per page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.File = args[0]
			opts.DryRun = root.dryRun
			if err := validateCompileOptions(opts); err != nil {
				return err
			}

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return compileCmdRunner(opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file, or directory for multi-page documents")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a unified diff against the existing output")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on bindings to undeclared state")

	return cmd
}

func validateCompileOptions(opts compileOptions) error {
	if err := validatePageFile(opts.File); err != nil {
		return err
	}
	if opts.Diff && strings.TrimSpace(opts.Output) == "" {
		return fmt.Errorf("--diff requires --output")
	}
	return nil
}

func runCompile(opts compileOptions, out io.Writer, log *logger.Logger) error {
	pages, err := project.New(project.WithLogger(log), project.WithStrictBindings(opts.Strict)).Compile(opts.File)
	if err != nil {
		return err
	}

	for _, p := range pages {
		for _, d := range p.Diagnostics {
			fmt.Fprintf(out, "warning: page %s: %s %s\n", d.Page, d.Element, d.Message)
		}
	}

	if opts.Output == "" {
		for i, p := range pages {
			if len(pages) > 1 {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "// %s\n", p.File)
			}
			fmt.Fprint(out, p.Source)
		}
		return nil
	}

	targets := make([]string, len(pages))
	if len(pages) == 1 {
		targets[0] = opts.Output
	} else {
		for i, p := range pages {
			targets[i] = filepath.Join(opts.Output, p.File)
		}
	}

	var writer project.Writer = project.DiskWriter{}
	if opts.DryRun {
		writer = project.NewDryRunWriter()
	}

	for i, p := range pages {
		target := targets[i]
		if opts.Diff {
			before, err := os.ReadFile(target)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			var text string
			if before == nil {
				text = diff.NewFile([]byte(p.Source), target)
			} else {
				text = diff.Unified(before, []byte(p.Source), target, target)
			}
			fmt.Fprint(out, text)
		}
		if err := writer.WriteFile(target, []byte(p.Source)); err != nil {
			return err
		}
		if !opts.DryRun {
			fmt.Fprintln(out, successStyle.Render("Compiled to "+target))
		}
	}
	return nil
}
