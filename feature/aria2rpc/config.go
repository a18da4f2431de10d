package aria2rpc

// Config holds configuration for the aria2 JSON-RPC endpoint.
type Config struct {
	// Enabled controls whether the RPC target may be used at all.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// URL is the RPC endpoint; a missing /jsonrpc suffix is added.
	URL string `mapstructure:"url" default:"http://localhost:6800/jsonrpc"`
	// Secret is the shared RPC secret, sent as a token:<secret> parameter.
	Secret string `mapstructure:"secret" default:""`
	// TimeoutSeconds is the per-call timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// VerifySSL controls TLS certificate verification for https endpoints.
	VerifySSL bool `mapstructure:"verify_ssl" default:"true"`
}
