package multiselect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderSummary(t *testing.T) {
	labels := DefaultLabels()
	options := []string{"A", "B", "C", "D", "E"}

	tests := []struct {
		name     string
		selected []string
		want     []Node
	}{
		{
			name:     "empty shows placeholder",
			selected: nil,
			want:     []Node{{Kind: KindPlaceholder, Text: "Selecione..."}},
		},
		{
			name:     "one chip",
			selected: []string{"A"},
			want:     []Node{{Kind: KindChip, Text: "A", Value: "A"}},
		},
		{
			name:     "two chips in selection order",
			selected: []string{"B", "A"},
			want: []Node{
				{Kind: KindChip, Text: "B", Value: "B"},
				{Kind: KindChip, Text: "A", Value: "A"},
			},
		},
		{
			name:     "three collapses to count",
			selected: []string{"A", "B", "C"},
			want:     []Node{{Kind: KindCount, Text: "3 selecionados"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(Props{Options: options, Selected: tt.selected}, Closed, labels)
			if len(v.Nodes) != 1 || v.Nodes[0].Kind != KindTrigger {
				t.Fatalf("closed view nodes = %+v, want single trigger", v.Nodes)
			}
			if diff := cmp.Diff(tt.want, v.Nodes[0].Children); diff != "" {
				t.Errorf("summary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderCustomPlaceholder(t *testing.T) {
	v := Render(Props{Placeholder: "Escolha regiões"}, Closed, DefaultLabels())
	got := v.Nodes[0].Children[0]
	if got.Kind != KindPlaceholder || got.Text != "Escolha regiões" {
		t.Errorf("placeholder = %+v", got)
	}
}

func TestRenderOpenPanel(t *testing.T) {
	p := Props{
		Label:    "Regiões",
		Options:  []string{"Norte", "Sul", "Leste"},
		Selected: []string{"Sul", "Fora"},
	}

	v := Render(p, Open, DefaultLabels())

	want := View{
		State: Open,
		Nodes: []Node{
			{Kind: KindLabel, Text: "Regiões"},
			{Kind: KindTrigger, Checked: true, Children: []Node{
				{Kind: KindChip, Text: "Sul", Value: "Sul"},
				{Kind: KindChip, Text: "Fora", Value: "Fora"},
			}},
			{Kind: KindPanel, Children: []Node{
				{Kind: KindSelectAll, Text: "Selecionar todos"},
				{Kind: KindOption, Text: "Norte", Value: "Norte"},
				{Kind: KindOption, Text: "Sul", Value: "Sul", Checked: true},
				{Kind: KindOption, Text: "Leste", Value: "Leste"},
			}},
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("open view mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSelectAllLabel(t *testing.T) {
	options := []string{"A", "B"}

	tests := []struct {
		name     string
		selected []string
		want     string
		checked  bool
	}{
		{"partial", []string{"A"}, "Selecionar todos", false},
		{"all reordered", []string{"B", "A"}, "Desmarcar todos", true},
		{"all plus foreign", []string{"A", "B", "X"}, "Selecionar todos", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Render(Props{Options: options, Selected: tt.selected}, Open, DefaultLabels())
			panel := v.Nodes[len(v.Nodes)-1]
			head := panel.Children[0]
			if head.Kind != KindSelectAll || head.Text != tt.want || head.Checked != tt.checked {
				t.Errorf("select-all node = %+v, want text %q checked %v", head, tt.want, tt.checked)
			}
		})
	}
}

func TestRenderNoOptions(t *testing.T) {
	v := Render(Props{Options: []string{}}, Open, DefaultLabels())
	panel := v.Nodes[len(v.Nodes)-1]

	want := Node{Kind: KindPanel, Children: []Node{{Kind: KindEmpty, Text: "Nenhuma opção disponível"}}}
	if diff := cmp.Diff(want, panel); diff != "" {
		t.Errorf("empty panel mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIdempotent(t *testing.T) {
	calls := 0
	p := Props{
		Options:  []string{"A", "B", "C"},
		Selected: []string{"A", "C"},
		OnChange: func([]string) { calls++ },
	}

	first := Render(p, Open, DefaultLabels())
	second := Render(p, Open, DefaultLabels())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("render not deterministic (-first +second):\n%s", diff)
	}
	if calls != 0 {
		t.Errorf("render invoked OnChange %d times", calls)
	}
	if len(p.Selected) != 2 || p.Selected[0] != "A" || p.Selected[1] != "C" {
		t.Errorf("render mutated selection: %v", p.Selected)
	}
}

func TestLabelsMerge(t *testing.T) {
	l := Labels{CountFormat: "%d selected"}.Merge(DefaultLabels())
	if l.CountFormat != "%d selected" {
		t.Errorf("override lost: %q", l.CountFormat)
	}
	if l.SelectAll != "Selecionar todos" {
		t.Errorf("default not filled: %q", l.SelectAll)
	}
}
