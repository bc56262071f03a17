package model

import "fmt"

// Category classifies a claim into one of the chronicle domains
type Category string

const (
	CategoryModels         Category = "MODELS"
	CategoryCapital        Category = "CAPITAL"
	CategoryBiology        Category = "BIOLOGY"
	CategoryRobotics       Category = "ROBOTICS"
	CategoryEnergy         Category = "ENERGY"
	CategorySpace          Category = "SPACE"
	CategoryCompute        Category = "COMPUTE"
	CategoryGovernance     Category = "GOVERNANCE"
	CategoryInfrastructure Category = "INFRASTRUCTURE"
	CategoryConsciousness  Category = "CONSCIOUSNESS"
)

// Categories lists every valid claim category
var Categories = []Category{
	CategoryModels, CategoryCapital, CategoryBiology, CategoryRobotics,
	CategoryEnergy, CategorySpace, CategoryCompute, CategoryGovernance,
	CategoryInfrastructure, CategoryConsciousness,
}

// ParseCategory validates a raw category string against the closed set
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown claim category: %q", s)
}

// Confidence grades how well a claim is supported by its source
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence validates a raw confidence string against the closed set
func ParseConfidence(s string) (Confidence, error) {
	switch Confidence(s) {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return Confidence(s), nil
	}
	return "", fmt.Errorf("unknown confidence level: %q", s)
}

// Sentiment captures the tone of a claim. Extraction does not ask the model
// for it, so extracted claims default to neutral.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Claim represents a single factual assertion extracted from a chronicle entry
type Claim struct {
	ID               string     `json:"id"`                          // entry link + position
	PostID           string     `json:"post_id"`                     // owning entry link
	Category         Category   `json:"category"`
	ClaimText        string     `json:"claim_text"`
	OriginalSentence string     `json:"original_sentence,omitempty"` // exact sentence(s) from the source
	Entities         []string   `json:"entities"`
	MetricValue      string     `json:"metric_value,omitempty"` // value with unit appended, e.g. "75%"
	MetricUnit       string     `json:"metric_unit,omitempty"`
	MetricContext    string     `json:"metric_context,omitempty"` // what the metric measures, e.g. "ARC-AGI-2"
	Confidence       Confidence `json:"confidence"`
	Sentiment        Sentiment  `json:"sentiment"`
	Date             string     `json:"date"` // display date copied from the entry
	SourceURL        string     `json:"source_url,omitempty"`
	ModelRelevance   bool       `json:"model_relevance,omitempty"` // drives model catalog hydration
}
