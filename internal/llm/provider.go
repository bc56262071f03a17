package llm

import "context"

// Provider defines the interface for generative backends. Both operations are
// schema-constrained: the backend must return JSON matching the declared shape.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Extract pulls structured claims out of normalized chronicle text
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)

	// Classify maps a free-text prompt to a task category
	Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error)
}

// Config holds provider configuration
type Config struct {
	// Provider name: "gemini", "openai", ""
	Provider string

	// Model name (provider-specific; empty selects the provider default)
	Model string

	// APIKey for the backend
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens limits the response length
	MaxTokens int
}

// ExtractRequest carries the normalized entry text to extract claims from
type ExtractRequest struct {
	Text string
}

// ExtractResponse is the parsed extraction output
type ExtractResponse struct {
	Claims     []RawClaim
	Model      string
	TokensUsed int
}

// RawClaim is one claim object as returned by the backend, before boundary
// validation stamps it into a model.Claim.
type RawClaim struct {
	ClaimText        string   `json:"claim_text"`
	OriginalSentence string   `json:"original_sentence,omitempty"`
	Category         string   `json:"category"`
	Entities         []string `json:"entities"`
	MetricValue      string   `json:"metric_value,omitempty"`
	MetricUnit       string   `json:"metric_unit,omitempty"`
	MetricContext    string   `json:"metric_context,omitempty"`
	Confidence       string   `json:"confidence"`
	ModelRelevance   bool     `json:"model_relevance"`
}

// extractEnvelope is the top-level object the extraction schema constrains
// responses to
type extractEnvelope struct {
	Claims []RawClaim `json:"claims"`
}

// ClassifyRequest carries a user prompt and the allowed category labels
type ClassifyRequest struct {
	Prompt     string
	Categories []string
}

// ClassifyResponse is the parsed classification output
type ClassifyResponse struct {
	Category   string `json:"category"`
	Reasoning  string `json:"reasoning"`
	Complexity string `json:"complexity"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // disabled by default
		Timeout:   30,
		MaxTokens: 4000,
	}
}
