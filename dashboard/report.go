package dashboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/lixenwraith/reportdeck/selection"
	"github.com/lixenwraith/reportdeck/store"
)

// Row is one category line of the report
type Row struct {
	Category string
	Entries  int
	Amount   float64
}

// Aggregate sums entries per category, keeping only selected regions and categories
// An empty filter selection admits everything
// Rows are ordered by amount, largest first
func Aggregate(entries []store.Entry, regions, categories []string) []Row {
	idx := make(map[string]int)
	var rows []Row
	for _, e := range entries {
		if len(regions) > 0 && !selection.Contains(regions, e.Region) {
			continue
		}
		if len(categories) > 0 && !selection.Contains(categories, e.Category) {
			continue
		}
		i, ok := idx[e.Category]
		if !ok {
			i = len(rows)
			idx[e.Category] = i
			rows = append(rows, Row{Category: e.Category})
		}
		rows[i].Entries++
		rows[i].Amount += e.Amount
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return rows
}

// Total sums all rows
func Total(rows []Row) (entries int, amount float64) {
	for _, r := range rows {
		entries += r.Entries
		amount += r.Amount
	}
	return entries, amount
}

// tableLines lays the report out as plain text lines
func tableLines(rows []Row) []string {
	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"CATEGORIA", "LANÇAMENTOS", "TOTAL"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	for _, r := range rows {
		table.Append([]string{r.Category, fmt.Sprint(r.Entries), formatAmount(r.Amount)})
	}
	n, total := Total(rows)
	table.Append([]string{"Total", fmt.Sprint(n), formatAmount(total)})
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
