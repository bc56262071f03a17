package catalog

import (
	"strings"

	"github.com/arbiterhq/arbiter/internal/model"
)

// entityAliases maps model identifiers to extra substrings their entities may
// carry. The rule set is data so new spellings are one line, not a conditional.
var entityAliases = map[string][]string{
	"gemini-3-flash": {"gemini flash"},
	"gpt-5-2":        {"gpt-5"},
}

// Hydrate overlays the latest model-relevant claims onto the base catalog and
// returns the derived entries. It is a pure function of its inputs: base
// entries are never mutated, and it performs no I/O.
//
// The claim batch is trusted to arrive newest-first (the orchestrator's output
// order); no independent date sort is performed.
func Hydrate(base []model.ModelEntry, claims []model.Claim) []model.ModelEntry {
	var relevant []model.Claim
	for _, c := range claims {
		if c.ModelRelevance {
			relevant = append(relevant, c)
		}
	}
	if len(relevant) == 0 {
		return base
	}

	hydrated := make([]model.ModelEntry, 0, len(base))
	for _, entry := range base {
		related := relatedClaims(entry, relevant)
		if len(related) == 0 {
			hydrated = append(hydrated, entry)
			continue
		}

		updated := cloneEntry(entry)

		// Snippet and freshness marker come from the newest claim only;
		// numeric signals accumulate from every related claim.
		newest := related[0]
		updated.ChronicleSnippet = newest.ClaimText
		updated.LastUpdated = newest.Date

		for _, claim := range related {
			if claim.MetricValue != "" && claim.MetricContext != "" {
				updated.Benchmarks[claim.MetricContext] = claim.MetricValue
			}
		}

		hydrated = append(hydrated, updated)
	}

	return hydrated
}

// relatedClaims filters claims whose entities fuzzily reference the model
func relatedClaims(entry model.ModelEntry, claims []model.Claim) []model.Claim {
	var related []model.Claim
	for _, c := range claims {
		if claimMentionsModel(c, entry) {
			related = append(related, c)
		}
	}
	return related
}

// claimMentionsModel checks each entity for a case-insensitive mention of the
// model's name, identifier, or one of its aliases
func claimMentionsModel(c model.Claim, entry model.ModelEntry) bool {
	name := strings.ToLower(entry.Name)
	id := strings.ToLower(entry.ID)
	aliases := entityAliases[entry.ID]

	for _, e := range c.Entities {
		entity := strings.ToLower(e)
		if strings.Contains(entity, name) || strings.Contains(entity, id) {
			return true
		}
		for _, alias := range aliases {
			if strings.Contains(entity, alias) {
				return true
			}
		}
	}
	return false
}
