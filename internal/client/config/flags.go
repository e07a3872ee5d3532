package config

import (
	"flag"
	"os"
	"time"

	"github.com/vitalsync/fitclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   primary backend origin (default from Config)
//	-ai string  AI fallback origin (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-ttl int    cache TTL in seconds (default from Config)
//	-demo       enable demo mode
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-ai", "-t", "-ttl", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "primary backend origin")
	fs.StringVar(&cfg.AIFallbackURL, "ai", cfg.AIFallbackURL, "AI fallback origin")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	cacheTTL := fs.Int("ttl", int(cfg.CacheTTL.Seconds()), "cache TTL (in seconds)")
	fs.BoolVar(&cfg.DemoMode, "demo", cfg.DemoMode, "serve canned fixtures instead of network calls")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.CacheTTL = time.Duration(*cacheTTL) * time.Second
}
