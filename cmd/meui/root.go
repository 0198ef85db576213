package main

import (
	"github.com/spf13/cobra"

	"github.com/OogleOG/MEUI/internal/logger"
)

type rootFlags struct {
	theme      string
	configRoot string
	verbose    bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "meui",
		Short:         "MEUI renders declarative config and session UIs for automation scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "purple", "Built-in theme name")
	cmd.PersistentFlags().StringVar(&flags.configRoot, "config-root", "", "Directory for saved configs")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newDemoCmd(flags, log))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
