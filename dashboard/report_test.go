package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reportdeck/store"
)

func TestAggregate(t *testing.T) {
	entries := []store.Entry{
		{Region: "Norte", Category: "Vendas", Amount: 10},
		{Region: "Sul", Category: "Serviços", Amount: 40},
		{Region: "Sul", Category: "Vendas", Amount: 5},
		{Region: "Norte", Category: "Assinaturas", Amount: 15},
	}

	tests := []struct {
		name       string
		regions    []string
		categories []string
		want       []Row
	}{
		{
			name: "no filters",
			want: []Row{
				{Category: "Serviços", Entries: 1, Amount: 40},
				{Category: "Assinaturas", Entries: 1, Amount: 15},
				{Category: "Vendas", Entries: 2, Amount: 15},
			},
		},
		{
			name:    "region filter",
			regions: []string{"Norte"},
			want: []Row{
				{Category: "Assinaturas", Entries: 1, Amount: 15},
				{Category: "Vendas", Entries: 1, Amount: 10},
			},
		},
		{
			name:       "both filters",
			regions:    []string{"Sul"},
			categories: []string{"Vendas"},
			want:       []Row{{Category: "Vendas", Entries: 1, Amount: 5}},
		},
		{
			name:       "filter matches nothing",
			categories: []string{"Devoluções"},
			want:       nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(entries, tt.regions, tt.categories))
		})
	}
}

func TestTotal(t *testing.T) {
	n, amount := Total([]Row{{Entries: 2, Amount: 1.5}, {Entries: 3, Amount: 2}})
	assert.Equal(t, 5, n)
	assert.InDelta(t, 3.5, amount, 1e-9)
}

func TestTableLines(t *testing.T) {
	lines := tableLines([]Row{
		{Category: "Vendas", Entries: 2, Amount: 150},
		{Category: "Serviços", Entries: 1, Amount: 30.5},
	})
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "CATEGORIA"))
	assert.Contains(t, lines[0], "LANÇAMENTOS")
	assert.Contains(t, lines[1], "150.00")
	assert.Contains(t, lines[2], "30.50")
	assert.True(t, strings.HasPrefix(lines[3], "Total"))
	assert.Contains(t, lines[3], "180.50")
	for _, l := range lines {
		assert.Equal(t, strings.TrimRight(l, " "), l)
	}
}
