// Package config provides configuration management for the tracker updater.
//
// It utilizes Viper for loading configuration from an optional config file
// (config.yaml), environment variables, and command-line flag overrides.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Aria2: config file path, backup toggle and suffix
//   - Sources: tracker list URLs, timeout and retry policy
//   - RPC: endpoint enablement, URL, secret, timeout, TLS verification
//   - Update: update mode and rpc-to-config fallback
//   - Log: logging level, format and optional log file
//
// # Layering
//
// Values are resolved in a fixed order: struct-tag defaults, then the config
// file, then environment variables. Commands apply their flag overrides on
// the loaded value before any component sees it, so the configuration is
// effectively immutable for the duration of a run.
//
// # Usage
//
//	cfg, err := config.LoadConfig("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Aria2.Path)
package config
