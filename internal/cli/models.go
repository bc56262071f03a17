package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arbiterhq/arbiter/internal/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var modelsJSON bool

// modelsCmd represents the models command
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show the model catalog hydrated with chronicle intelligence",
	Long: `Models runs the ingestion pipeline, then fuses the extracted claims
onto the static model catalog. Each catalog entry that the chronicle
mentions gains a narrative snippet from the newest related claim and
any benchmark figures the claims carry.

Example:
  arbiter models
  arbiter models --json`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
	addPipelineFlags(modelsCmd)
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "emit the hydrated catalog as JSON")
}

func runModels(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	claims, p, err := fetchClaims(ctx)
	if err != nil {
		return err
	}

	hydrated := catalog.Hydrate(catalog.BaseModels(), claims)

	if modelsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hydrated)
	}

	rows := make([]table.Row, 0, len(hydrated))
	for _, m := range hydrated {
		rows = append(rows, table.Row{
			m.Name,
			m.Provider,
			fmt.Sprintf("$%.2f / $%.2f", m.InputCostPer1M, m.OutputCostPer1M),
			strings.ToUpper(string(m.LatencyTier)),
			formatBenchmarks(m.Benchmarks),
			clip(m.ChronicleSnippet, cellLimit),
		})
	}
	fmt.Println(renderTable("Model Catalog",
		table.Row{"Model", "Provider", "Cost /1M", "Latency", "Benchmarks", "Chronicle Intel"}, rows, 3))

	if last, ok := p.Store().LastFetch(); ok {
		fmt.Printf("\nChronicle last fetched: %s\n", last.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// formatBenchmarks renders a benchmark map as "name: score" lines in a
// stable order
func formatBenchmarks(benchmarks map[string]string) string {
	names := make([]string, 0, len(benchmarks))
	for name := range benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %s", name, benchmarks[name]))
	}
	return strings.Join(lines, "\n")
}
