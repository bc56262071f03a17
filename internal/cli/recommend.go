package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/arbiterhq/arbiter/internal/catalog"
	"github.com/arbiterhq/arbiter/internal/llm"
	"github.com/arbiterhq/arbiter/internal/recommend"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend <task description>",
	Short: "Recommend models for a task, informed by chronicle intelligence",
	Long: `Recommend classifies a task description into a category, then ranks
the hydrated model catalog for it: models the chronicle has fresh
intelligence on come first, cheaper input cost breaks ties, top three
make the shortlist.

Classification uses the generative backend when an API key is present
and falls back to keyword heuristics otherwise.

Example:
  arbiter recommend "Review this Python code for bugs"
  arbiter recommend "Write a creative story about Mars"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	addPipelineFlags(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger := newLogger()
	cfg := buildConfig()

	provider, err := llm.NewProvider(ctx, llm.Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("backend setup: %w", err)
	}

	analysis := recommend.NewAnalyzer(provider, logger).Analyze(ctx, prompt)
	fmt.Printf("Task detected: %s (%s complexity)\n", analysis.Category, analysis.Complexity)
	fmt.Printf("Reasoning: %s\n\n", analysis.Reasoning)

	claims, _, err := fetchClaims(ctx)
	if err != nil {
		return err
	}
	hydrated := catalog.Hydrate(catalog.BaseModels(), claims)

	ranked := recommend.Rank(hydrated, analysis)
	if len(ranked) == 0 {
		fmt.Println("No catalog model is recommended for this task category.")
		return nil
	}

	rows := make([]table.Row, 0, len(ranked))
	for i, m := range ranked {
		rank := fmt.Sprintf("%d", i+1)
		if i == 0 {
			rank = "1 *"
		}
		rows = append(rows, table.Row{
			rank,
			m.Name,
			m.Provider,
			fmt.Sprintf("$%.2f", m.InputCostPer1M),
			strings.ToUpper(string(m.LatencyTier)),
			clip(m.ChronicleSnippet, cellLimit),
		})
	}
	fmt.Println(renderTable("Recommendations",
		table.Row{"#", "Model", "Provider", "Input /1M", "Latency", "Chronicle Intel"}, rows, 4))
	return nil
}
