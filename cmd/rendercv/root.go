package main

import (
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rendercv",
		Short:         "Render a YAML CV into PDF, PNG, Markdown, and HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRenderCommand())
	root.AddCommand(newSchemaCommand())
	root.AddCommand(newThemesCommand())
	return root
}

// Execute runs the CLI and reports errors in user-facing form.
func Execute() error {
	root := newRootCommand()
	err := root.Execute()
	if err != nil {
		printError(err)
	}
	return err
}
