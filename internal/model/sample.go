package model

// SampleClaims returns static chronicle claims used when the live pipeline
// yields nothing. The CLI must always have something to render.
func SampleClaims() []Claim {
	return []Claim{
		{
			ID:          "c1",
			PostID:      "p1",
			Category:    CategoryModels,
			ClaimText:   "GPT-5.2-xhigh achieves 75% on ARC-AGI-2 at <$8/task.",
			Entities:    []string{"GPT-5.2", "ARC-AGI-2"},
			MetricValue: "75%",
			Confidence:  ConfidenceHigh,
			Sentiment:   SentimentPositive,
			Date:        "Dec 24, 2025",
		},
		{
			ID:         "c2",
			PostID:     "p1",
			Category:   CategoryModels,
			ClaimText:  "Epoch: AI improvement rates have doubled post-April 2024.",
			Entities:   []string{"Epoch", "AI Progress"},
			Confidence: ConfidenceMedium,
			Sentiment:  SentimentPositive,
			Date:       "Dec 24, 2025",
		},
		{
			ID:         "c3",
			PostID:     "p2",
			Category:   CategoryCapital,
			ClaimText:  "Tesla and Amazon investing in Bolivia Data Centers.",
			Entities:   []string{"Tesla", "Amazon", "Bolivia"},
			Confidence: ConfidenceHigh,
			Sentiment:  SentimentNeutral,
			Date:       "Dec 22, 2025",
		},
		{
			ID:          "c4",
			PostID:      "p3",
			Category:    CategoryModels,
			ClaimText:   "Gemini 3 Flash achieves 81.2% on MMMU Pro.",
			Entities:    []string{"Gemini 3 Flash", "MMMU Pro"},
			MetricValue: "81.2%",
			Confidence:  ConfidenceHigh,
			Sentiment:   SentimentPositive,
			Date:        "Dec 18, 2025",
		},
		{
			ID:          "c5",
			PostID:      "p3",
			Category:    CategoryModels,
			ClaimText:   "Gemini 3 Flash beats GPT-5.2 on cost by 6x for equivalent coding tasks.",
			Entities:    []string{"Gemini 3 Flash", "GPT-5.2"},
			MetricValue: "6x",
			Confidence:  ConfidenceHigh,
			Sentiment:   SentimentPositive,
			Date:        "Dec 18, 2025",
		},
		{
			ID:         "c6",
			PostID:     "p4",
			Category:   CategoryRobotics,
			ClaimText:  "Boston Dynamics Atlas scheduled for CES 2026 consumer demo.",
			Entities:   []string{"Boston Dynamics", "Atlas"},
			Confidence: ConfidenceMedium,
			Sentiment:  SentimentNeutral,
			Date:       "Dec 21, 2025",
		},
	}
}
