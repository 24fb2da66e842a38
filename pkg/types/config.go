package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "labpubs/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the publication fetch service.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PID is the researcher's DBLP person identifier (e.g. "86/4437").
	PID string `json:"pid" yaml:"pid"`

	// MinYear is the oldest publication year kept in the list (default 2014).
	// Entries with a missing or non-numeric year are always dropped.
	MinYear int `json:"min_year" yaml:"min_year"`

	// CacheTTL is the maximum age at which the cached list is served
	// without a new fetch (default 5m).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// MaxRetries is the number of retry attempts on rate-limited fetches.
	// Zero selects the httputil default.
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// Config groups all labpubs configuration.
type Config struct {
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
	Server ServerConfig `json:"server" yaml:"server"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present. The PID has no default; the CLI requires it.
func DefaultConfig() Config {
	return Config{
		Fetch: FetchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: "labpubs/0.1",
			},
			MinYear:  2014,
			CacheTTL: 5 * time.Minute,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
