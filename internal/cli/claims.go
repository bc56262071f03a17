package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/arbiterhq/arbiter/internal/model"
	"github.com/arbiterhq/arbiter/internal/pipeline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var claimsJSON bool

// claimsCmd represents the claims command
var claimsCmd = &cobra.Command{
	Use:   "claims",
	Short: "Fetch the latest chronicle posts and extract model claims",
	Long: `Claims runs the full ingestion pipeline:
- Fetch the chronicle RSS feed (newest posts first)
- Extract structured claims from each post through the generative backend
- Cache extraction results per post, keyed by post link

Cached posts are never re-sent to the backend. Without an API key the
command serves cached claims where available and falls back to a bundled
sample set when nothing can be extracted.

Example:
  arbiter claims
  arbiter claims --llm-provider openai --json
  arbiter claims --no-cache --max-entries 3`,
	Args: cobra.NoArgs,
	RunE: runClaims,
}

func init() {
	rootCmd.AddCommand(claimsCmd)
	addPipelineFlags(claimsCmd)
	claimsCmd.Flags().BoolVar(&claimsJSON, "json", false, "emit claims as JSON instead of a table")
}

func runClaims(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	claims, _, err := fetchClaims(ctx)
	if err != nil {
		return err
	}

	if claimsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(claims)
	}

	rows := make([]table.Row, 0, len(claims))
	for _, c := range claims {
		metric := c.MetricValue
		if metric != "" && c.MetricContext != "" {
			metric = fmt.Sprintf("%s (%s)", metric, c.MetricContext)
		}
		rows = append(rows, table.Row{
			c.Date,
			string(c.Category),
			clip(c.ClaimText, cellLimit),
			metric,
			string(c.Confidence),
		})
	}
	fmt.Println(renderTable("Chronicle Claims",
		table.Row{"Date", "Category", "Claim", "Metric", "Confidence"}, rows, 4))
	fmt.Printf("\n%d claims\n", len(claims))
	return nil
}

// fetchClaims runs the pipeline and applies the sample fallback. It returns
// the claims plus the pipeline for callers that need the cache store.
func fetchClaims(ctx context.Context) ([]model.Claim, *pipeline.Pipeline, error) {
	logger := newLogger()
	cfg := buildConfig()

	p, err := pipeline.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline setup: %w", err)
	}

	claims := p.FetchClaims(ctx)
	if len(claims) == 0 {
		logger.Info("no claims extracted, serving bundled sample set")
		fmt.Fprintln(os.Stderr, "No live claims available; showing sample data.")
		return model.SampleClaims(), p, nil
	}

	if err := p.Store().SetLastFetch(time.Now()); err != nil {
		logger.Warn("recording fetch time failed", "error", err)
	}
	return claims, p, nil
}
