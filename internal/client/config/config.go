package config

import "time"

// Config holds runtime settings for the fitclient network runtime.
//
// Fields:
//   - BaseURL: primary HTTPS origin all /api/... paths are rooted at.
//   - AIFallbackURL: secondary origin used only for /api/ai/* paths when the
//     primary times out at the gateway.
//   - RequestTimeout: per-request transport timeout.
//   - CacheTTL: freshness window for the read cache.
//   - DemoMode: when true the client serves canned fixtures and never
//     touches the network.
//   - TokenFile: optional path for the file-backed token store; empty means
//     in-memory only.
type Config struct {
	BaseURL        string
	AIFallbackURL  string
	RequestTimeout time.Duration
	CacheTTL       time.Duration
	DemoMode       bool
	TokenFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://api.vitalsync.app"
	c.AIFallbackURL = "https://ai-fallback.vitalsync.app"
	c.RequestTimeout = 30 * time.Second
	c.CacheTTL = 5 * time.Minute
	c.DemoMode = false
	c.TokenFile = ""
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
