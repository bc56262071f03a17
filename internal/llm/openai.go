package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// OpenAIProvider implements the Provider interface for OpenAI models
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// openaiClaimSchema constrains extraction responses to the claims envelope
var openaiClaimSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"claims": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"claim_text":        {Type: jsonschema.String},
					"original_sentence": {Type: jsonschema.String},
					"category":          {Type: jsonschema.String},
					"entities":          {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
					"metric_value":      {Type: jsonschema.String},
					"metric_unit":       {Type: jsonschema.String},
					"metric_context":    {Type: jsonschema.String},
					"confidence":        {Type: jsonschema.String, Enum: []string{"high", "medium", "low"}},
					"model_relevance":   {Type: jsonschema.Boolean},
				},
				Required: []string{"claim_text", "category", "entities", "confidence", "model_relevance"},
			},
		},
	},
	Required: []string{"claims"},
}

// openaiClassifySchema constrains classification responses
var openaiClassifySchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"category":   {Type: jsonschema.String},
		"reasoning":  {Type: jsonschema.String},
		"complexity": {Type: jsonschema.String, Enum: []string{"low", "medium", "high"}},
	},
	Required: []string{"category", "reasoning", "complexity"},
}

// Extract issues one schema-constrained chat completion for the entry text
func (p *OpenAIProvider) Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	content, model, tokens, err := p.complete(ctx, ExtractionInstruction, BuildExtractionContents(req.Text),
		"chronicle_claims", openaiClaimSchema)
	if err != nil {
		return nil, err
	}

	var envelope extractEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	return &ExtractResponse{
		Claims:     envelope.Claims,
		Model:      model,
		TokensUsed: tokens,
	}, nil
}

// Classify maps a user prompt to a task category
func (p *OpenAIProvider) Classify(ctx context.Context, req ClassifyRequest) (*ClassifyResponse, error) {
	content, _, _, err := p.complete(ctx, "",
		BuildClassifyPrompt(req.Prompt, req.Categories), "task_analysis", openaiClassifySchema)
	if err != nil {
		return nil, err
	}

	var resp ClassifyResponse
	if err := json.Unmarshal([]byte(content), &resp); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}

	return &resp, nil
}

// complete runs one chat completion with a JSON-schema response format
func (p *OpenAIProvider) complete(ctx context.Context, system, user, schemaName string, schema jsonschema.Definition) (string, string, int, error) {
	model := p.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: 0.3,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: &schema,
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return "", "", 0, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", "", 0, fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), model, resp.Usage.TotalTokens, nil
}
