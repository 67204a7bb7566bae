package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return newAppCommand(&app{}) //nolint:exhaustruct
}

func newAppCommand(a *app) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:           "knobctl",
		Short:         "Inspect and manage persisted configuration knobs",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the config")

	root.AddCommand(
		newBootCommand(a),
		newApplyCommand(a),
		newDumpCommand(a),
		newRecordCommand(a),
		newProfileCommand(a),
	)

	return root
}
