package model

// LatencyTier buckets a model's typical response latency
type LatencyTier string

const (
	LatencyFast   LatencyTier = "fast"
	LatencyMedium LatencyTier = "medium"
	LatencySlow   LatencyTier = "slow"
)

// TaskCategory classifies what kind of work a prompt asks for
type TaskCategory string

const (
	TaskCodeGeneration   TaskCategory = "code_generation"
	TaskCodeReview       TaskCategory = "code_review"
	TaskCodeDebugging    TaskCategory = "code_debugging"
	TaskCreativeWriting  TaskCategory = "creative_writing"
	TaskTechnicalWriting TaskCategory = "technical_writing"
	TaskDataExtraction   TaskCategory = "data_extraction"
	TaskSummarization    TaskCategory = "summarization"
	TaskQAReasoning      TaskCategory = "qa_reasoning"
	TaskQAFactual        TaskCategory = "qa_factual"
	TaskMathProof        TaskCategory = "math_proof"
	TaskVisionAnalysis   TaskCategory = "vision_analysis"
	TaskAgenticMultistep TaskCategory = "agentic_multistep"
	TaskGeneral          TaskCategory = "general"
)

// TaskCategories lists every valid task category
var TaskCategories = []TaskCategory{
	TaskCodeGeneration, TaskCodeReview, TaskCodeDebugging,
	TaskCreativeWriting, TaskTechnicalWriting, TaskDataExtraction,
	TaskSummarization, TaskQAReasoning, TaskQAFactual, TaskMathProof,
	TaskVisionAnalysis, TaskAgenticMultistep, TaskGeneral,
}

// ValidTaskCategory reports whether s is a member of the closed set
func ValidTaskCategory(s string) bool {
	for _, c := range TaskCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// ModelEntry is a row in the model catalog. The base set is static
// configuration; hydrated entries are derived fresh on each hydration pass.
type ModelEntry struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Provider        string            `json:"provider"`
	InputCostPer1M  float64           `json:"input_cost_per_1m"`
	OutputCostPer1M float64           `json:"output_cost_per_1m"`
	LatencyTier     LatencyTier       `json:"latency_tier"`
	Strengths       []string          `json:"strengths"`
	Benchmarks      map[string]string `json:"benchmarks"` // benchmark name -> score
	RecommendedFor  []TaskCategory    `json:"recommended_for"`

	// Intelligence overlay, set by hydration from the freshest related claim.
	ChronicleSnippet string `json:"chronicle_snippet,omitempty"`
	LastUpdated      string `json:"last_updated,omitempty"`
}

// RecommendedForTask reports whether the model is recommended for the category
func (m ModelEntry) RecommendedForTask(cat TaskCategory) bool {
	for _, c := range m.RecommendedFor {
		if c == cat {
			return true
		}
	}
	return false
}

// TaskAnalysis is the classification of a free-text prompt
type TaskAnalysis struct {
	Category   TaskCategory `json:"category"`
	Reasoning  string       `json:"reasoning"`
	Complexity string       `json:"complexity"` // low, medium, high
}
