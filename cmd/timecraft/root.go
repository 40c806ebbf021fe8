package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/framefold/timecraft/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "timecraft",
		Short:         "Inspect and edit video timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	loadConfig := func() (config.Config, error) {
		return config.Load(configFlag)
	}

	rootCmd.AddCommand(newInspectCommand(loadConfig))
	rootCmd.AddCommand(newApplyCommand(loadConfig))
	rootCmd.AddCommand(newDragCommand(loadConfig))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("timecraft %s (%s)\n", version, commit)
		},
	}
}
