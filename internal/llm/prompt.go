package llm

import (
	"fmt"
	"strings"
)

// ExtractionInstruction is the fixed system instruction for claim extraction.
// The output shape is additionally enforced by a response schema, but the
// instruction carries the semantics the schema cannot: category definitions,
// entity normalization, confidence tiers, and the model-relevance rule.
const ExtractionInstruction = `You are an expert analyst extracting structured claims from AI acceleration chronicles.

INPUT: A chronicle entry from "The Innermost Loop".

OUTPUT: A JSON object with a "claims" array. Each claim has:
- claim_text: Concise statement of the claim (1-2 sentences)
- original_sentence: The exact sentence(s) from the source
- category: MODELS|COMPUTE|BIOLOGY|ROBOTICS|SPACE|ENERGY|CAPITAL|GOVERNANCE|INFRASTRUCTURE|CONSCIOUSNESS
- entities: ["Entity1", "Entity2"]
- metric_value: "75.0" or omitted (as string)
- metric_unit: "%" | "$B" | "tokens" or omitted
- metric_context: What the metric measures, e.g. a benchmark name
- confidence: high|medium|low
- model_relevance: true/false (does this affect AI model capabilities/pricing?)

CATEGORY DEFINITIONS:
- MODELS: AI model releases, capabilities, benchmarks, architecture
- COMPUTE: Data centers, chips, training infrastructure, hardware
- BIOLOGY: Longevity, gene therapy, drug discovery, medical breakthroughs
- ROBOTICS: Humanoids, autonomous vehicles, drones, industrial automation
- SPACE: Orbital compute, launches, lunar/Mars infrastructure, satellites
- ENERGY: Nuclear, solar, fusion, grid infrastructure, power generation
- CAPITAL: Funding rounds, valuations, market movements, revenue
- GOVERNANCE: Regulation, policy, institutional responses, legal
- INFRASTRUCTURE: Physical buildout, supply chains, manufacturing
- CONSCIOUSNESS: AI sentience, interpretability, alignment, welfare

ENTITY EXTRACTION:
- Extract company names, model names, person names, benchmark names
- Normalize variations: "GPT-5.2-xhigh" and "GPT 5.2 xhigh" -> "GPT-5.2-xhigh"
- Include benchmark names as entities: "ARC-AGI-2", "SWE-Bench"

CONFIDENCE LEVELS:
- high: Direct quotes, specific metrics, named sources
- medium: Reasonable extrapolation, industry reports
- low: Predictions, forecasts, "reportedly" language

MODEL_RELEVANCE:
- true: Claim affects understanding of AI model capabilities, pricing, or performance
- false: Claim is about other domains (biology, space, etc.)

Extract ALL substantive claims.`

// BuildExtractionContents wraps the normalized entry text for the request body
func BuildExtractionContents(text string) string {
	return "Extract claims from this chronicle text:\n\n" + text
}

// BuildClassifyPrompt constructs the task-classification prompt
func BuildClassifyPrompt(userPrompt string, categories []string) string {
	return fmt.Sprintf(`Analyze the following user prompt and classify it into one of these categories:
[%s].
Also provide a short reasoning and complexity estimate (low, medium, high).

User Prompt: %q`, strings.Join(categories, ", "), userPrompt)
}
