package cmd

import (
	"context"
	"fmt"

	"github.com/yuanweize/BTtrackers-updater/core/config"
	"github.com/yuanweize/BTtrackers-updater/core/logger"
	"github.com/yuanweize/BTtrackers-updater/feature/aria2conf"
	"github.com/yuanweize/BTtrackers-updater/feature/aria2rpc"
	"github.com/yuanweize/BTtrackers-updater/feature/sources"
	"github.com/yuanweize/BTtrackers-updater/feature/update"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the update command
	aria2ConfPath string
	dryRun        bool
	noBackup      bool
	updateMode    string
	useRPC        bool
	rpcURL        string
	rpcSecret     string
	logFile       string
	verbose       bool
)

// updateCmd fetches remote tracker lists and commits the merged set.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch tracker lists and update the aria2 bt-tracker option",
	Long: `Fetch tracker lists from the configured remote sources, merge them with
the trackers aria2 already knows, and commit the result.

The update mode decides where the merged list goes:
  config  rewrite the bt-tracker directive of the aria2 config file (default)
  rpc     push to a running instance via JSON-RPC, optionally falling back
          to the config file on failure
  hybrid  update both targets independently; one succeeding is enough

Examples:
  # Update the config file using defaults
  bt-trackers-updater update

  # Preview the changes without touching anything
  bt-trackers-updater update --dry-run

  # Push to a running aria2 with a secret
  bt-trackers-updater update --rpc-url http://localhost:6800/jsonrpc --rpc-secret mysecret

  # Update config file and running instance in one run
  bt-trackers-updater update --update-mode hybrid`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&aria2ConfPath, "aria2-conf", "", "Path to the aria2 config file (overrides configuration)")
	updateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report intended changes without modifying any target")
	updateCmd.Flags().BoolVar(&noBackup, "no-backup", false, "Disable the backup copy before rewriting the config file")
	updateCmd.Flags().StringVar(&updateMode, "update-mode", "", "Update mode: config, rpc or hybrid")
	updateCmd.Flags().BoolVar(&useRPC, "rpc", false, "Enable the rpc target and update via JSON-RPC")
	updateCmd.Flags().StringVar(&rpcURL, "rpc-url", "", "Aria2 JSON-RPC URL (implies rpc enabled)")
	updateCmd.Flags().StringVar(&rpcSecret, "rpc-secret", "", "Aria2 RPC secret (implies rpc enabled)")
	updateCmd.Flags().StringVar(&logFile, "log-file", "", "Also write log output to this file")
	updateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadUpdateConfig()
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l = logger.WithRunID(l)

	// A completion line is always recorded, whatever the outcome.
	defer l.Info("Run finished")

	l.Info("BT trackers updater starting",
		zap.String("aria2_conf", cfg.Aria2.Path),
		zap.String("mode", cfg.Update.Mode),
		zap.Bool("dry_run", dryRun),
	)
	if cfg.RPC.Enabled {
		l.Info("Rpc target enabled",
			zap.String("url", cfg.RPC.URL),
			zap.Bool("secret_set", cfg.RPC.Secret != ""),
		)
	}

	fetcher := sources.NewFetcher(cfg.Sources, l)
	file := aria2conf.NewFile(cfg.Aria2, l)

	var rpcClient update.RPCClient
	if cfg.RPC.Enabled {
		rpcClient = aria2rpc.NewClient(cfg.RPC, l)
	}

	svc := update.NewService(cfg.Update, fetcher, file, rpcClient, l)

	if dryRun {
		if err := svc.DryRun(ctx); err != nil {
			l.Error("Dry-run failed", zap.Error(err))
			return err
		}
		l.Info("Dry-run complete")
		return nil
	}

	if err := svc.Run(ctx); err != nil {
		l.Error("Tracker update failed", zap.Error(err))
		return err
	}

	l.Info("Tracker update successful")
	return nil
}

// loadUpdateConfig loads the layered configuration and applies the update
// command's flag overrides on top, producing the final immutable value.
func loadUpdateConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if aria2ConfPath != "" {
		cfg.Aria2.Path = aria2ConfPath
	}
	if noBackup {
		cfg.Aria2.BackupEnabled = false
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	// any rpc flag implies the rpc target is wanted
	if useRPC || rpcURL != "" || rpcSecret != "" {
		cfg.RPC.Enabled = true
	}
	if rpcURL != "" {
		cfg.RPC.URL = rpcURL
	}
	if rpcSecret != "" {
		cfg.RPC.Secret = rpcSecret
	}

	switch {
	case updateMode != "":
		cfg.Update.Mode = updateMode
	case useRPC:
		cfg.Update.Mode = update.ModeRPC
	}

	if !cfg.Update.IsValidMode() {
		return nil, fmt.Errorf("invalid update mode %q (want config, rpc or hybrid)", cfg.Update.Mode)
	}

	return cfg, nil
}
