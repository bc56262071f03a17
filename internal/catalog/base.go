package catalog

import "github.com/arbiterhq/arbiter/internal/model"

// BaseModels returns the static model registry. Each call returns a fresh
// deep copy so hydration can never leak mutations into the base set.
func BaseModels() []model.ModelEntry {
	base := []model.ModelEntry{
		{
			ID:              "gemini-3-flash",
			Name:            "Gemini 3 Flash",
			Provider:        "Google",
			InputCostPer1M:  0.10,
			OutputCostPer1M: 0.40,
			LatencyTier:     model.LatencyFast,
			Strengths:       []string{"coding", "vision", "tool_use", "speed", "cost"},
			Benchmarks: map[string]string{
				"ARC-AGI-1":    "85%",
				"GPQA Diamond": "90.4%",
			},
			RecommendedFor: []model.TaskCategory{
				model.TaskCodeReview, model.TaskDataExtraction, model.TaskQAFactual,
				model.TaskVisionAnalysis, model.TaskCodeGeneration,
			},
			ChronicleSnippet: "500x cheaper than o3 at equivalent performance (Dec 18).",
		},
		{
			ID:              "gemini-3-pro",
			Name:            "Gemini 3 Pro",
			Provider:        "Google",
			InputCostPer1M:  2.00,
			OutputCostPer1M: 12.00,
			LatencyTier:     model.LatencyMedium,
			Strengths:       []string{"reasoning", "coding", "agentic", "multimodal"},
			Benchmarks: map[string]string{
				"ARC-AGI-1": "90%",
				"HLE":       "45.8%",
			},
			RecommendedFor: []model.TaskCategory{
				model.TaskAgenticMultistep, model.TaskMathProof,
				model.TaskQAReasoning, model.TaskCodeGeneration,
			},
			ChronicleSnippet: "SOTA on agentic workflows, strong math reasoning.",
		},
		{
			ID:              "gpt-5-2",
			Name:            "GPT-5.2",
			Provider:        "OpenAI",
			InputCostPer1M:  5.00,
			OutputCostPer1M: 20.00,
			LatencyTier:     model.LatencyMedium,
			Strengths:       []string{"reasoning", "general", "coding"},
			Benchmarks: map[string]string{
				"ARC-AGI-1": "90%",
				"GDPval":    "70%",
			},
			RecommendedFor: []model.TaskCategory{
				model.TaskQAReasoning, model.TaskTechnicalWriting, model.TaskAgenticMultistep,
			},
			ChronicleSnippet: "Beats human experts on 70% of GDPval (Dec 12).",
		},
		{
			ID:              "gpt-5-2-thinking",
			Name:            "GPT-5.2 Thinking",
			Provider:        "OpenAI",
			InputCostPer1M:  10.00,
			OutputCostPer1M: 40.00,
			LatencyTier:     model.LatencySlow,
			Strengths:       []string{"deep_reasoning", "math", "complex_problems"},
			Benchmarks: map[string]string{
				"METR Autonomy": "3.5 hrs",
			},
			RecommendedFor: []model.TaskCategory{
				model.TaskMathProof, model.TaskAgenticMultistep,
			},
			ChronicleSnippet: "Highest autonomy score recorded (Dec 13).",
		},
		{
			ID:              "claude-sonnet-4-5",
			Name:            "Claude Sonnet 4.5",
			Provider:        "Anthropic",
			InputCostPer1M:  3.00,
			OutputCostPer1M: 15.00,
			LatencyTier:     model.LatencyMedium,
			Strengths:       []string{"coding", "instruction_following"},
			Benchmarks: map[string]string{
				"SWE-bench": "Verified",
			},
			RecommendedFor: []model.TaskCategory{
				model.TaskCodeGeneration, model.TaskCodeDebugging, model.TaskGeneral,
			},
			ChronicleSnippet: "Best instruction following for coding (Nov 20).",
		},
		{
			ID:              "claude-opus-4-5",
			Name:            "Claude Opus 4.5",
			Provider:        "Anthropic",
			InputCostPer1M:  15.00,
			OutputCostPer1M: 75.00,
			LatencyTier:     model.LatencySlow,
			Strengths:       []string{"creative_writing", "nuance", "long_form"},
			Benchmarks: map[string]string{
				"ARC-AGI-2": "37.64%",
			},
			RecommendedFor: []model.TaskCategory{
				model.TaskCreativeWriting, model.TaskTechnicalWriting,
			},
			ChronicleSnippet: "80.9% on SWE-Bench Verified (Nov 25).",
		},
	}

	for i := range base {
		base[i] = cloneEntry(base[i])
	}
	return base
}

// cloneEntry deep-copies the maps and slices of a catalog entry
func cloneEntry(m model.ModelEntry) model.ModelEntry {
	benchmarks := make(map[string]string, len(m.Benchmarks))
	for k, v := range m.Benchmarks {
		benchmarks[k] = v
	}
	m.Benchmarks = benchmarks

	m.Strengths = append([]string(nil), m.Strengths...)
	m.RecommendedFor = append([]model.TaskCategory(nil), m.RecommendedFor...)
	return m
}
