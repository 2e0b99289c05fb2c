package main

import (
	"fmt"
	"os"

	"github.com/handiism/ostep-downloader/internal/config"
	"github.com/handiism/ostep-downloader/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "ostep-tui",
		Short:         "Interactive downloader for the OSTEP index",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.DefaultSettings()
			if configPath != "" {
				var err error
				if settings, err = config.Load(configPath); err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
			}
			return tui.Run(settings)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (.json, .yaml)")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
