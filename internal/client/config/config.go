package config

import "time"

// Config holds runtime settings for the Gadai console.
//
// Fields:
//   - BaseURL: root of the remote REST API, e.g. http://host:8000/api.
//   - PollInterval: how often the notification feed is fetched.
//   - StorePath: SQLite file that keeps the signed-in session.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - LogFormat: "text", "json" or "console".
type Config struct {
	BaseURL        string
	PollInterval   time.Duration
	StorePath      string
	RequestTimeout time.Duration
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000/api"
	c.PollInterval = 5 * time.Second
	c.StorePath = "session.db"
	c.RequestTimeout = 10 * time.Second
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
