package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/rendercv/internal/types"
)

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes and locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Themes:")
			for _, name := range types.BuiltinThemeNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "Locales:")
			for _, name := range types.BuiltinLocaleNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
