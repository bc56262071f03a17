package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// GeminiProvider implements the Provider interface for Google Gemini models
type GeminiProvider struct {
	client *genai.Client
	config Config
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(config.BaseURL))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Close releases the underlying client
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

// geminiClaimSchema constrains extraction responses to the claims envelope
var geminiClaimSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"claims": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"claim_text":        {Type: genai.TypeString},
					"original_sentence": {Type: genai.TypeString, Nullable: true},
					"category":          {Type: genai.TypeString},
					"entities":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
					"metric_value":      {Type: genai.TypeString, Nullable: true},
					"metric_unit":       {Type: genai.TypeString, Nullable: true},
					"metric_context":    {Type: genai.TypeString, Nullable: true},
					"confidence":        {Type: genai.TypeString, Enum: []string{"high", "medium", "low"}},
					"model_relevance":   {Type: genai.TypeBoolean},
				},
				Required: []string{"claim_text", "category", "entities", "confidence", "model_relevance"},
			},
		},
	},
	Required: []string{"claims"},
}

// geminiClassifySchema constrains classification responses
var geminiClassifySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"category":   {Type: genai.TypeString},
		"reasoning":  {Type: genai.TypeString},
		"complexity": {Type: genai.TypeString, Enum: []string{"low", "medium", "high"}},
	},
	Required: []string{"category", "reasoning", "complexity"},
}

// Extract issues one schema-constrained generation request for the entry text
func (p *GeminiProvider) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	modelName := p.modelName()

	m := p.client.GenerativeModel(modelName)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(ExtractionInstruction)}}
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = geminiClaimSchema
	if p.config.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(p.config.MaxTokens))
	}

	text, tokens, err := p.generate(ctx, m, BuildExtractionContents(req.Text))
	if err != nil {
		return nil, err
	}

	var envelope extractEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	return &ExtractResponse{
		Claims:     envelope.Claims,
		Model:      modelName,
		TokensUsed: tokens,
	}, nil
}

// Classify maps a user prompt to a task category
func (p *GeminiProvider) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	modelName := p.modelName()

	m := p.client.GenerativeModel(modelName)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = geminiClassifySchema

	text, _, err := p.generate(ctx, m, BuildClassifyPrompt(req.Prompt, req.Categories))
	if err != nil {
		return nil, err
	}

	var resp ClassifyResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}

	return &resp, nil
}

// generate runs one request with the provider timeout and returns the first
// candidate's text
func (p *GeminiProvider) generate(ctx context.Context, m *genai.GenerativeModel, contents string) (string, int, error) {
	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(contents))
	if err != nil {
		return "", 0, fmt.Errorf("gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", 0, fmt.Errorf("no response candidates from gemini")
	}

	txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", 0, fmt.Errorf("unexpected response part type from gemini")
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return string(txt), tokens, nil
}

func (p *GeminiProvider) modelName() string {
	if p.config.Model != "" {
		return p.config.Model
	}
	return defaultGeminiModel
}
