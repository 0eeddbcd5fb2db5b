package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/nwl/internal/logger"
	"github.com/alexisbeaulieu97/nwl/internal/scaffold"
)

type newOptions struct {
	Name     string
	Location string
	Template string
	Branch   string
}

var newCmdRunner = runNew

func newNewCmd(root *rootFlags) *cobra.Command {
	opts := newOptions{}

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new NWL project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]

			log, err := newLogger(root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return newCmdRunner(cmd.Context(), opts, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&opts.Location, "location", "l", ".", "Parent directory of the new project")
	cmd.Flags().StringVarP(&opts.Template, "template", "t", scaffold.BlankTemplate, "Template: blank or a git repository URL")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "Branch of the template repository")

	return cmd
}

func runNew(ctx context.Context, opts newOptions, out io.Writer, log *logger.Logger) error {
	fmt.Fprintln(out, headerStyle.Render("Creating NWL project "+opts.Name))
	fmt.Fprintln(out, hintStyle.Render("Template: "+opts.Template))

	created, err := scaffold.New(scaffold.WithLogger(log)).Create(ctx, scaffold.Options{
		Name:     opts.Name,
		Location: opts.Location,
		Template: opts.Template,
		Branch:   opts.Branch,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Project created in %s (%d files)", created.Dir, len(created.Files))))
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  cd %s\n", created.Dir)
	fmt.Fprintln(out, "  npm install")
	fmt.Fprintln(out, "  nwl dev")
	return nil
}
