package sources

// DefaultURLs are the public tracker lists queried when no sources are
// configured explicitly.
var DefaultURLs = []string{
	"https://trackerslist.com/all.txt",
	"https://ngosang.github.io/trackerslist/trackers_all.txt",
}

// Config holds configuration for remote tracker list retrieval.
type Config struct {
	// URLs is the list of remote tracker list locations.
	URLs []string `mapstructure:"urls"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// MaxRetries is the number of attempts made per source before it is skipped.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelaySeconds is the fixed delay between failed attempts.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" default:"2"`
}
