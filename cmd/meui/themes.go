package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OogleOG/MEUI/internal/theme"
)

func newThemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List built-in theme names",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}
