package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	Feed   FeedConfig   `yaml:"feed"`
	HTTP   HTTPConfig   `yaml:"http"`
	LLM    LLMConfig    `yaml:"llm"`
	Cache  CacheConfig  `yaml:"cache"`
	Output OutputConfig `yaml:"output"`
}

// FeedConfig configures the chronicle feed source
type FeedConfig struct {
	URL           string `yaml:"url"`
	RelayURL      string `yaml:"relay_url"`      // optional URL-rewriting relay for cross-origin access
	MaxEntries    int    `yaml:"max_entries"`    // bound on per-run extraction cost
	RespectRobots bool   `yaml:"respect_robots"` // consult robots.txt before fetching
}

// HTTPConfig configures outbound HTTP behavior
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// LLMConfig configures the extraction backend
type LLMConfig struct {
	Provider          string  `yaml:"provider"` // "gemini", "openai", or "" (disabled)
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"-"` // from environment, never written to disk
	BaseURL           string  `yaml:"base_url"`
	Timeout           int     `yaml:"timeout"` // seconds per request
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CacheConfig configures the extraction cache
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // disk cache directory; empty means memory only
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Feed: FeedConfig{
			URL:           "https://theinnermostloop.substack.com/feed",
			RelayURL:      "",
			MaxEntries:    2,
			RespectRobots: false,
		},
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Arbiter/0.1 (+https://github.com/arbiterhq/arbiter)",
			MaxBodyBytes: 2_000_000,
		},
		LLM: LLMConfig{
			Provider:          "", // disabled by default
			Model:             "",
			Timeout:           30,
			MaxTokens:         4000,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Output: OutputConfig{},
	}
}
