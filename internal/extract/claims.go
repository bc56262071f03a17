package extract

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/model"
	"github.com/arbiterhq/arbiter/internal/worker"
)

// Extractor turns normalized chronicle text into validated claims through a
// generative backend. It degrades to an empty result on any failure and never
// fabricates claims; fallback synthesis is the orchestrator's job.
type Extractor struct {
	provider llm.Provider // nil when the backend is unconfigured
	limiter  *worker.Limiter
	logger   *slog.Logger
}

// NewExtractor creates a claim extractor. A nil provider is a recognized
// degraded mode: extraction returns empty without a network call.
func NewExtractor(provider llm.Provider, limiter *worker.Limiter, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if limiter == nil {
		limiter = worker.NewLimiter(1, 1)
	}
	return &Extractor{
		provider: provider,
		limiter:  limiter,
		logger:   logger,
	}
}

// Extract sends normalized text to the backend and returns zero-or-more
// validated claims stamped with the source URL and display date.
func (e *Extractor) Extract(ctx context.Context, text, postURL, postDate string) []model.Claim {
	if e.provider == nil {
		return nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		e.logger.Warn("extraction throttle interrupted", "post", postURL, "error", err)
		return nil
	}

	resp, err := e.provider.Extract(ctx, llm.ExtractRequest{Text: text})
	if err != nil {
		e.logger.Warn("claim extraction failed", "post", postURL, "provider", e.provider.Name(), "error", err)
		return nil
	}

	claims := make([]model.Claim, 0, len(resp.Claims))
	for i, raw := range resp.Claims {
		claim, err := e.validate(raw, i, postURL, postDate)
		if err != nil {
			e.logger.Warn("dropping claim outside schema", "post", postURL, "index", i, "error", err)
			continue
		}
		claims = append(claims, claim)
	}

	return claims
}

// validate checks a raw claim against the closed value sets and stamps it
func (e *Extractor) validate(raw llm.RawClaim, index int, postURL, postDate string) (model.Claim, error) {
	category, err := model.ParseCategory(raw.Category)
	if err != nil {
		return model.Claim{}, err
	}

	confidence, err := model.ParseConfidence(raw.Confidence)
	if err != nil {
		return model.Claim{}, err
	}

	entities := raw.Entities
	if entities == nil {
		entities = []string{}
	}

	// The display value carries the unit appended; unit and context are also
	// kept separately for the benchmark merge.
	metricValue := raw.MetricValue
	if metricValue != "" && raw.MetricUnit != "" {
		metricValue += raw.MetricUnit
	}

	return model.Claim{
		ID:               fmt.Sprintf("%s-%d", postURL, index),
		PostID:           postURL,
		Category:         category,
		ClaimText:        raw.ClaimText,
		OriginalSentence: raw.OriginalSentence,
		Entities:         entities,
		MetricValue:      metricValue,
		MetricUnit:       raw.MetricUnit,
		MetricContext:    raw.MetricContext,
		Confidence:       confidence,
		Sentiment:        model.SentimentNeutral, // extraction does not ask for sentiment
		Date:             postDate,
		SourceURL:        postURL,
		ModelRelevance:   raw.ModelRelevance,
	}, nil
}
