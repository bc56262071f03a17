package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// cellLimit keeps narrative columns readable in a terminal
const cellLimit = 72

// renderTable draws a rounded-style table. Columns listed in rightAligned
// (1-based) are right-aligned, which the cost and metric columns use.
func renderTable(title string, headers table.Row, rows []table.Row, rightAligned ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle(title)
	}
	tw.AppendHeader(headers)
	tw.AppendRows(rows)

	configs := make([]table.ColumnConfig, len(headers))
	for i := range headers {
		configs[i] = table.ColumnConfig{Number: i + 1, WidthMax: cellLimit}
	}
	for _, n := range rightAligned {
		if n >= 1 && n <= len(configs) {
			configs[n-1].Align = text.AlignRight
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// clip shortens long narrative text for single-line table cells
func clip(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
