package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/arbiterhq/arbiter/internal/cache"
	"github.com/arbiterhq/arbiter/internal/extract"
	"github.com/arbiterhq/arbiter/internal/feed"
	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/model"
	"github.com/arbiterhq/arbiter/internal/worker"
)

// FeedSource provides ordered feed entries, newest-first
type FeedSource interface {
	Fetch(ctx context.Context) ([]model.Entry, error)
}

// ClaimExtractor extracts claims from normalized entry text
type ClaimExtractor interface {
	Extract(ctx context.Context, text, postURL, postDate string) []model.Claim
}

// Pipeline orchestrates feed reading, per-entry extraction, caching and claim
// accumulation. Entries are processed strictly in sequence: extraction-backend
// cost, not latency, is the binding constraint.
type Pipeline struct {
	source     FeedSource
	extractor  ClaimExtractor
	store      *cache.ClaimStore
	maxEntries int
	logger     *slog.Logger
}

// New creates a pipeline from its collaborators
func New(source FeedSource, extractor ClaimExtractor, store *cache.ClaimStore, maxEntries int, logger *slog.Logger) *Pipeline {
	if maxEntries <= 0 {
		maxEntries = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		source:     source,
		extractor:  extractor,
		store:      store,
		maxEntries: maxEntries,
		logger:     logger,
	}
}

// NewFromConfig wires the real collaborators: feed reader, provider-backed
// extractor, and a layered claim cache
func NewFromConfig(ctx context.Context, cfg *model.Config, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := llm.NewProvider(ctx, llm.Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	if provider == nil {
		logger.Info("extraction backend unconfigured, running in degraded mode")
	}

	limiter := worker.NewLimiter(cfg.LLM.RequestsPerSecond, cfg.LLM.Burst)
	extractor := extract.NewExtractor(provider, limiter, logger)
	reader := feed.NewReader(cfg.Feed, cfg.HTTP)

	var backend cache.Cache
	switch {
	case !cfg.Cache.Enabled:
		backend = cache.NewMemoryCache() // still dedupes within one process run
	case cfg.Cache.Dir != "":
		backend = cache.NewLayeredCache(cfg.Cache.Dir)
	default:
		backend = cache.NewMemoryCache()
	}

	return New(reader, extractor, cache.NewClaimStore(backend), cfg.Feed.MaxEntries, logger), nil
}

// Store exposes the claim store so the caller can write the freshness cell
// after a successful run
func (p *Pipeline) Store() *cache.ClaimStore {
	return p.store
}

// FetchClaims runs the pipeline and returns all claims across the most recent
// entries, in entry order with per-entry extractor order preserved. It never
// fails: a feed-level failure degrades to an empty result and the caller falls
// back to its static sample data.
func (p *Pipeline) FetchClaims(ctx context.Context) []model.Claim {
	run := uuid.NewString()[:8]

	entries, err := p.source.Fetch(ctx)
	if err != nil {
		p.logger.Warn("feed fetch failed", "run", run, "error", err)
		return []model.Claim{}
	}

	if len(entries) > p.maxEntries {
		entries = entries[:p.maxEntries]
	}

	var all []model.Claim
	for _, entry := range entries {
		claims, err := p.processEntry(ctx, entry)
		if err != nil {
			// One bad entry must not abort the batch
			p.logger.Warn("entry processing failed", "run", run, "entry", entry.Link, "error", err)
			continue
		}
		all = append(all, claims...)
	}

	p.logger.Info("pipeline run complete", "run", run, "entries", len(entries), "claims", len(all))
	return all
}

// processEntry resolves one entry to its claims: cache hit, fresh extraction,
// or a single synthesized fallback claim
func (p *Pipeline) processEntry(ctx context.Context, entry model.Entry) ([]model.Claim, error) {
	if entry.Link == "" {
		return nil, fmt.Errorf("entry has no link")
	}

	if cached, found := p.store.Get(entry.Link); found {
		p.logger.Debug("cache hit", "entry", entry.Link, "claims", len(cached))
		return cached, nil
	}

	if entry.RawBody == "" {
		return nil, nil
	}

	text := extract.NormalizeHTML(entry.RawBody)
	claims := p.extractor.Extract(ctx, text, entry.Link, entry.DisplayDate)

	if len(claims) > 0 {
		if err := p.store.Put(entry.Link, claims); err != nil {
			p.logger.Warn("cache write failed", "entry", entry.Link, "error", err)
		}
		return claims, nil
	}

	// Extraction yielded nothing: synthesize one claim from the title and do
	// not cache it, so a transient failure self-heals on the next run.
	return []model.Claim{fallbackClaim(entry)}, nil
}

// fallbackClaim derives a deterministic claim from the entry's title
func fallbackClaim(entry model.Entry) model.Claim {
	title := entry.Title
	if title == "" {
		title = "Untitled Chronicle"
	}
	return model.Claim{
		ID:             entry.Link,
		PostID:         entry.Link,
		Category:       model.CategoryModels,
		ClaimText:      title,
		Entities:       []string{},
		Confidence:     model.ConfidenceHigh,
		Sentiment:      model.SentimentNeutral,
		Date:           entry.DisplayDate,
		SourceURL:      entry.Link,
		ModelRelevance: true,
	}
}
