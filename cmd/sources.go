package cmd

import (
	"fmt"

	"github.com/yuanweize/BTtrackers-updater/core/config"

	"github.com/spf13/cobra"
)

// sourcesCmd lists the configured tracker sources.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the configured tracker sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Printf("Configured tracker sources (%d):\n", len(cfg.Sources.URLs))
		for i, url := range cfg.Sources.URLs {
			fmt.Printf("%2d. %s\n", i+1, url)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sourcesCmd)
}
