package catalog

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/model"
)

func relevantClaim(text, date string, entities []string) model.Claim {
	return model.Claim{
		ID:             text,
		Category:       model.CategoryModels,
		ClaimText:      text,
		Entities:       entities,
		Confidence:     model.ConfidenceHigh,
		Sentiment:      model.SentimentNeutral,
		Date:           date,
		ModelRelevance: true,
	}
}

func findModel(t *testing.T, models []model.ModelEntry, id string) model.ModelEntry {
	t.Helper()
	for _, m := range models {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("Model %s not found", id)
	return model.ModelEntry{}
}

func TestHydrate_NoRelevantClaims(t *testing.T) {
	base := BaseModels()

	irrelevant := []model.Claim{
		{Category: model.CategoryRobotics, ClaimText: "Atlas demo", Entities: []string{"Atlas"}},
	}

	hydrated := Hydrate(base, irrelevant)
	if len(hydrated) != len(base) {
		t.Fatalf("Expected unchanged catalog, got %d entries", len(hydrated))
	}
	for i := range base {
		if hydrated[i].ChronicleSnippet != base[i].ChronicleSnippet {
			t.Errorf("Expected base snippet preserved for %s", base[i].ID)
		}
	}
}

func TestHydrate_AliasMatch(t *testing.T) {
	// "GPT-5" must reach the gpt-5-2 entry through the alias table
	claims := []model.Claim{
		relevantClaim("GPT-5 clears a new reasoning bar.", "Dec 24", []string{"GPT-5"}),
	}

	hydrated := Hydrate(BaseModels(), claims)
	entry := findModel(t, hydrated, "gpt-5-2")

	if entry.ChronicleSnippet != "GPT-5 clears a new reasoning bar." {
		t.Errorf("Expected alias-matched snippet, got %q", entry.ChronicleSnippet)
	}
	if entry.LastUpdated != "Dec 24" {
		t.Errorf("Expected last updated Dec 24, got %q", entry.LastUpdated)
	}
}

func TestHydrate_GeminiFlashAlias(t *testing.T) {
	claims := []model.Claim{
		relevantClaim("Gemini Flash pricing drops again.", "Dec 20", []string{"Gemini Flash"}),
	}

	hydrated := Hydrate(BaseModels(), claims)
	entry := findModel(t, hydrated, "gemini-3-flash")
	if entry.ChronicleSnippet != "Gemini Flash pricing drops again." {
		t.Errorf("Expected alias match for gemini-3-flash, got %q", entry.ChronicleSnippet)
	}
}

func TestHydrate_BenchmarksAccumulateSnippetFromNewest(t *testing.T) {
	newer := relevantClaim("GPT-5.2 scores 91% on GPQA Diamond.", "Dec 24", []string{"GPT-5.2"})
	newer.MetricValue = "91%"
	newer.MetricContext = "GPQA Diamond"

	older := relevantClaim("GPT-5.2 posts 85% on ARC-AGI-1.", "Dec 12", []string{"GPT-5.2"})
	older.MetricValue = "85%"
	older.MetricContext = "ARC-AGI-1"

	// Orchestrator order is newest-first and trusted as-is
	hydrated := Hydrate(BaseModels(), []model.Claim{newer, older})
	entry := findModel(t, hydrated, "gpt-5-2")

	if entry.ChronicleSnippet != newer.ClaimText {
		t.Errorf("Expected snippet from newest claim only, got %q", entry.ChronicleSnippet)
	}
	if entry.Benchmarks["GPQA Diamond"] != "91%" {
		t.Errorf("Expected new benchmark key, got %v", entry.Benchmarks)
	}
	if entry.Benchmarks["ARC-AGI-1"] != "85%" {
		t.Errorf("Expected older claim's benchmark folded in (overwriting the base value), got %v", entry.Benchmarks)
	}
	if entry.Benchmarks["GDPval"] != "70%" {
		t.Errorf("Expected untouched base benchmark preserved, got %v", entry.Benchmarks)
	}
}

func TestHydrate_ClaimWithoutMetricContextLeavesBenchmarks(t *testing.T) {
	claim := relevantClaim("GPT-5.2 is faster now.", "Dec 24", []string{"GPT-5.2"})
	claim.MetricValue = "2x" // no context, must not create a benchmark key

	base := BaseModels()
	baseEntry := findModel(t, base, "gpt-5-2")
	wantLen := len(baseEntry.Benchmarks)

	hydrated := Hydrate(base, []model.Claim{claim})
	entry := findModel(t, hydrated, "gpt-5-2")
	if len(entry.Benchmarks) != wantLen {
		t.Errorf("Expected benchmark map unchanged, got %v", entry.Benchmarks)
	}
	if entry.ChronicleSnippet != claim.ClaimText {
		t.Errorf("Expected snippet still updated, got %q", entry.ChronicleSnippet)
	}
}

func TestHydrate_DoesNotMutateBase(t *testing.T) {
	base := BaseModels()
	claim := relevantClaim("GPT-5.2 scores 91% on GPQA Diamond.", "Dec 24", []string{"GPT-5.2"})
	claim.MetricValue = "91%"
	claim.MetricContext = "GPQA Diamond"

	Hydrate(base, []model.Claim{claim})

	entry := findModel(t, base, "gpt-5-2")
	if _, exists := entry.Benchmarks["GPQA Diamond"]; exists {
		t.Error("Hydration mutated a base entry's benchmark map")
	}
	if entry.ChronicleSnippet != "Beats human experts on 70% of GDPval (Dec 12)." {
		t.Errorf("Hydration mutated a base entry's snippet: %q", entry.ChronicleSnippet)
	}
}

func TestHydrate_UnmatchedEntryPassesThrough(t *testing.T) {
	claims := []model.Claim{
		relevantClaim("GPT-5 clears a new reasoning bar.", "Dec 24", []string{"GPT-5"}),
	}

	hydrated := Hydrate(BaseModels(), claims)
	entry := findModel(t, hydrated, "claude-opus-4-5")
	if entry.LastUpdated != "" {
		t.Errorf("Expected unmatched entry untouched, got last_updated %q", entry.LastUpdated)
	}
}

func TestBaseModels_FreshCopies(t *testing.T) {
	a := BaseModels()
	a[0].Benchmarks["Injected"] = "1"

	b := BaseModels()
	if _, exists := b[0].Benchmarks["Injected"]; exists {
		t.Error("BaseModels returned a shared benchmark map")
	}
}
