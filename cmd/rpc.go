package cmd

import (
	"context"
	"fmt"

	"github.com/yuanweize/BTtrackers-updater/core/config"
	"github.com/yuanweize/BTtrackers-updater/core/logger"
	"github.com/yuanweize/BTtrackers-updater/feature/aria2rpc"
	"github.com/yuanweize/BTtrackers-updater/feature/update"

	"github.com/spf13/cobra"
)

var (
	// Flags for the rpc test command
	testRPCURL    string
	testRPCSecret string
)

// rpcCmd is the parent command for rpc operations.
var rpcCmd = &cobra.Command{
	Use:   "rpc",
	Short: "Aria2 JSON-RPC operations",
}

// rpcTestCmd probes the configured rpc endpoint.
var rpcTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connectivity to the aria2 RPC endpoint",
	Long: `Test the connection to the configured aria2 JSON-RPC endpoint and report
its version, enabled features and current tracker count.

Examples:
  # Test the endpoint from the configuration file
  bt-trackers-updater rpc test

  # Test an explicit endpoint
  bt-trackers-updater rpc test --rpc-url http://localhost:6800/jsonrpc --rpc-secret mysecret`,
	RunE: runRPCTest,
}

func init() {
	rpcTestCmd.Flags().StringVar(&testRPCURL, "rpc-url", "", "Aria2 JSON-RPC URL (implies rpc enabled)")
	rpcTestCmd.Flags().StringVar(&testRPCSecret, "rpc-secret", "", "Aria2 RPC secret (implies rpc enabled)")

	rpcCmd.AddCommand(rpcTestCmd)
	RootCmd.AddCommand(rpcCmd)
}

func runRPCTest(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if testRPCURL != "" {
		cfg.RPC.URL = testRPCURL
		cfg.RPC.Enabled = true
	}
	if testRPCSecret != "" {
		cfg.RPC.Secret = testRPCSecret
		cfg.RPC.Enabled = true
	}

	if !cfg.RPC.Enabled {
		return update.ErrRPCDisabled
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	client := aria2rpc.NewClient(cfg.RPC, l)
	return client.TestConnection(context.Background())
}
