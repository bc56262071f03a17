package recommend

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/model"
)

// Analyzer classifies a free-text prompt into a task category. With a nil
// provider, or whenever the backend fails, it falls back to a keyword
// heuristic so a recommendation is always produced.
type Analyzer struct {
	provider llm.Provider // nil when the backend is unconfigured
	logger   *slog.Logger
}

// NewAnalyzer creates a task analyzer. A nil provider is a recognized
// degraded mode: classification runs on keyword heuristics alone.
func NewAnalyzer(provider llm.Provider, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{provider: provider, logger: logger}
}

// Analyze classifies the prompt. The backend's category is validated against
// the closed set; anything outside it is coerced to general.
func (a *Analyzer) Analyze(ctx context.Context, prompt string) model.TaskAnalysis {
	if a.provider == nil {
		a.logger.Info("no analysis backend configured, using keyword heuristics")
		return simulateAnalysis(prompt)
	}

	categories := make([]string, len(model.TaskCategories))
	for i, c := range model.TaskCategories {
		categories[i] = string(c)
	}

	resp, err := a.provider.Classify(ctx, llm.ClassifyRequest{
		Prompt:     prompt,
		Categories: categories,
	})
	if err != nil {
		a.logger.Warn("task classification failed, using keyword heuristics",
			"provider", a.provider.Name(), "error", err)
		return simulateAnalysis(prompt)
	}

	category := model.TaskGeneral
	if model.ValidTaskCategory(resp.Category) {
		category = model.TaskCategory(resp.Category)
	}

	return model.TaskAnalysis{
		Category:   category,
		Reasoning:  resp.Reasoning,
		Complexity: resp.Complexity,
	}
}

// simulateAnalysis is a keyword heuristic for offline operation
func simulateAnalysis(prompt string) model.TaskAnalysis {
	p := strings.ToLower(prompt)

	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(p, w) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("code", "function", "react", "bug"):
		category := model.TaskCodeGeneration
		if contains("review", "check") {
			category = model.TaskCodeReview
		}
		return model.TaskAnalysis{
			Category:   category,
			Reasoning:  "Prompt contains coding keywords or syntax patterns.",
			Complexity: "medium",
		}
	case contains("write", "story", "creative", "poem"):
		return model.TaskAnalysis{
			Category:   model.TaskCreativeWriting,
			Reasoning:  "Request involves generative creative content.",
			Complexity: "high",
		}
	case contains("extract", "json", "data", "list"):
		return model.TaskAnalysis{
			Category:   model.TaskDataExtraction,
			Reasoning:  "User is asking for structured data extraction.",
			Complexity: "low",
		}
	case contains("solve", "math", "calc"):
		return model.TaskAnalysis{
			Category:   model.TaskMathProof,
			Reasoning:  "Quantitative or logic puzzle detected.",
			Complexity: "high",
		}
	default:
		return model.TaskAnalysis{
			Category:   model.TaskGeneral,
			Reasoning:  "No specific specialized domain detected.",
			Complexity: "medium",
		}
	}
}
