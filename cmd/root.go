package cmd

import (
	"fmt"
	"os"

	"github.com/yuanweize/BTtrackers-updater/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cfgFile is the path of the updater's own configuration file.
var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bt-trackers-updater",
	Short: "Aria2 BT tracker list updater",
	Long: `BT trackers updater keeps an aria2 instance's announce list fresh.
It fetches tracker lists from remote sources, merges them with the trackers
aria2 already knows, and commits the result to the config file, a running
instance over JSON-RPC, or both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "Path to the updater configuration file")
}
