package config

import (
	"encoding/json"
	"os"

	"github.com/vitalsync/fitclient/internal/flagx"
	"github.com/vitalsync/fitclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations rely
// on timex.Duration so JSON can specify them either as strings like "5m" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	AIFallbackURL  string         `json:"ai_fallback_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CacheTTL       timex.Duration `json:"cache_ttl"`
	DemoMode       bool           `json:"demo_mode"`
	TokenFile      string         `json:"token_file"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags;
// when neither is set, no JSON is loaded. Read or unmarshal errors panic
// (caller may recover if desired). Zero-value fields in the file are not
// overlaid, so partial files only override what they mention.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.AIFallbackURL != "" {
		cfg.AIFallbackURL = jc.AIFallbackURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CacheTTL.Duration != 0 {
		cfg.CacheTTL = jc.CacheTTL.Duration
	}
	if jc.DemoMode {
		cfg.DemoMode = true
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
}
