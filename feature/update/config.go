package update

// Config holds configuration for the update orchestrator.
type Config struct {
	// Mode selects the update strategy (config, rpc, hybrid).
	Mode string `mapstructure:"mode" default:"config"`
	// FallbackToConfig re-runs the config file path when an rpc-mode update fails.
	FallbackToConfig bool `mapstructure:"fallback_to_config" default:"true"`
}

const (
	// ModeConfig updates only the aria2 configuration file.
	ModeConfig = "config"
	// ModeRPC updates only the running instance over JSON-RPC.
	ModeRPC = "rpc"
	// ModeHybrid updates both targets independently in one run.
	ModeHybrid = "hybrid"
)

// IsValidMode checks if the configured update mode is valid.
func (c Config) IsValidMode() bool {
	switch c.Mode {
	case ModeConfig, ModeRPC, ModeHybrid:
		return true
	default:
		return false
	}
}
