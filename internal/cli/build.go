package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arbiterhq/arbiter/internal/model"
	"github.com/spf13/cobra"
)

var (
	feedURL     string
	relayURL    string
	maxEntries  int
	timeout     time.Duration
	noCache     bool
	cacheDir    string
	llmProvider string
	llmModel    string
)

// addPipelineFlags registers the flags shared by every command that runs
// the ingestion pipeline.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&feedURL, "feed", "", "chronicle feed URL (default: the Innermost Loop)")
	cmd.Flags().StringVar(&relayURL, "relay", "", "URL-rewriting relay prefix for feed access")
	cmd.Flags().IntVar(&maxEntries, "max-entries", 0, "max chronicle entries to process per run (default 2)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall run timeout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh extraction)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "extraction cache directory (default: $HOME/.arbiter/cache)")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "gemini", "extraction backend (gemini, openai)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "", "backend model name (default depends on provider)")
}

// buildConfig assembles the runtime configuration from defaults, then flag
// overrides. API keys come from the environment only.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if feedURL != "" {
		cfg.Feed.URL = feedURL
	}
	if relayURL != "" {
		cfg.Feed.RelayURL = relayURL
	}
	if maxEntries > 0 {
		cfg.Feed.MaxEntries = maxEntries
	}
	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	cfg.Cache.Enabled = !noCache
	if cacheDir != "" {
		cfg.Cache.Dir = cacheDir
	} else if home, err := os.UserHomeDir(); err == nil {
		cfg.Cache.Dir = filepath.Join(home, ".arbiter", "cache")
	}
	cfg.Output.Verbose = verbose

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "gemini", "google":
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("API_KEY")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg
}
