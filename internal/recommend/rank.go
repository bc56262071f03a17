package recommend

import (
	"sort"

	"github.com/arbiterhq/arbiter/internal/model"
)

// maxRecommendations caps the ranked shortlist
const maxRecommendations = 3

// Rank filters the catalog to models recommended for the detected category
// (general-purpose models always qualify) and orders them: entries carrying
// fresh chronicle intelligence first, cheaper input cost breaking ties.
func Rank(catalog []model.ModelEntry, analysis model.TaskAnalysis) []model.ModelEntry {
	compatible := make([]model.ModelEntry, 0, len(catalog))
	for _, m := range catalog {
		if m.RecommendedForTask(analysis.Category) || m.RecommendedForTask(model.TaskGeneral) {
			compatible = append(compatible, m)
		}
	}

	sort.SliceStable(compatible, func(i, j int) bool {
		a, b := compatible[i], compatible[j]
		if (a.ChronicleSnippet != "") != (b.ChronicleSnippet != "") {
			return a.ChronicleSnippet != ""
		}
		return a.InputCostPer1M < b.InputCostPer1M
	})

	if len(compatible) > maxRecommendations {
		compatible = compatible[:maxRecommendations]
	}
	return compatible
}
