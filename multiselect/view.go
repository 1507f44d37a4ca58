package multiselect

import (
	"fmt"

	"github.com/lixenwraith/reportdeck/selection"
)

// Kind identifies a node in the view tree
type Kind uint8

const (
	KindLabel Kind = iota
	KindTrigger
	KindPlaceholder
	KindChip
	KindCount
	KindPanel
	KindSelectAll
	KindOption
	KindEmpty
)

var kindNames = [...]string{
	KindLabel:       "label",
	KindTrigger:     "trigger",
	KindPlaceholder: "placeholder",
	KindChip:        "chip",
	KindCount:       "count",
	KindPanel:       "panel",
	KindSelectAll:   "select-all",
	KindOption:      "option",
	KindEmpty:       "empty",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is one element of the rendered tree
type Node struct {
	Kind     Kind
	Text     string
	Value    string // Option value for KindOption and KindChip
	Checked  bool
	Children []Node
}

// View is the full visual tree of a control
type View struct {
	State State
	Nodes []Node
}

// chipLimit is the largest selection summarized as individual chips
const chipLimit = 2

// Render projects props and presentation state into a view tree
// Pure: it neither changes state nor calls OnChange
func Render(p Props, st State, labels Labels) View {
	v := View{State: st}

	if p.Label != "" {
		v.Nodes = append(v.Nodes, Node{Kind: KindLabel, Text: p.Label})
	}
	v.Nodes = append(v.Nodes, Node{
		Kind:     KindTrigger,
		Checked:  st == Open,
		Children: summary(p, labels),
	})

	if st == Open {
		v.Nodes = append(v.Nodes, panel(p, labels))
	}
	return v
}

func summary(p Props, labels Labels) []Node {
	n := selection.Count(p.Selected)
	switch {
	case n == 0:
		text := p.Placeholder
		if text == "" {
			text = labels.Placeholder
		}
		return []Node{{Kind: KindPlaceholder, Text: text}}
	case n <= chipLimit:
		chips := make([]Node, 0, n)
		seen := make(map[string]bool, n)
		for _, s := range p.Selected {
			if seen[s] {
				continue
			}
			seen[s] = true
			chips = append(chips, Node{Kind: KindChip, Text: s, Value: s})
		}
		return chips
	default:
		return []Node{{Kind: KindCount, Text: fmt.Sprintf(labels.CountFormat, n)}}
	}
}

func panel(p Props, labels Labels) Node {
	if len(p.Options) == 0 {
		return Node{Kind: KindPanel, Children: []Node{{Kind: KindEmpty, Text: labels.Empty}}}
	}

	all := selection.AllSelected(p.Selected, p.Options)
	text := labels.SelectAll
	if all {
		text = labels.DeselectAll
	}

	children := make([]Node, 0, len(p.Options)+1)
	children = append(children, Node{Kind: KindSelectAll, Text: text, Checked: all})
	for _, o := range p.Options {
		children = append(children, Node{
			Kind:    KindOption,
			Text:    o,
			Value:   o,
			Checked: selection.Contains(p.Selected, o),
		})
	}
	return Node{Kind: KindPanel, Children: children}
}
