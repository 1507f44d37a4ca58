// Package multiselect implements a dropdown control for choosing any subset of
// a fixed option list.
//
// The selection is owned by the host: every render receives Props carrying
// the options, the current selection and an OnChange callback. The control
// only owns its open/closed presentation state and never mutates its inputs;
// new selections are computed with package selection and handed back through
// OnChange, which the host commits and re-supplies on the next render.
//
// While open, the control observes global pointer presses through a
// pointer.Hub and closes when a press lands outside its drawn boundary.
package multiselect

// State is the presentation mode of a control
type State uint8

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// Props are the host inputs for one render pass
type Props struct {
	Label       string
	Options     []string
	Selected    []string
	OnChange    func(selected []string)
	Placeholder string // Empty falls back to Labels.Placeholder
}

// Labels holds the display strings of the control
type Labels struct {
	Placeholder string `yaml:"placeholder"`
	SelectAll   string `yaml:"select_all"`
	DeselectAll string `yaml:"deselect_all"`
	Empty       string `yaml:"empty"`
	CountFormat string `yaml:"count_format"` // fmt verb receives the selection size
	More        string `yaml:"more"`         // fmt verb receives the hidden row count
}

// DefaultLabels returns the stock Portuguese labels
func DefaultLabels() Labels {
	return Labels{
		Placeholder: "Selecione...",
		SelectAll:   "Selecionar todos",
		DeselectAll: "Desmarcar todos",
		Empty:       "Nenhuma opção disponível",
		CountFormat: "%d selecionados",
		More:        "mais %d",
	}
}

// Merge fills empty fields of l from def
func (l Labels) Merge(def Labels) Labels {
	if l.Placeholder == "" {
		l.Placeholder = def.Placeholder
	}
	if l.SelectAll == "" {
		l.SelectAll = def.SelectAll
	}
	if l.DeselectAll == "" {
		l.DeselectAll = def.DeselectAll
	}
	if l.Empty == "" {
		l.Empty = def.Empty
	}
	if l.CountFormat == "" {
		l.CountFormat = def.CountFormat
	}
	if l.More == "" {
		l.More = def.More
	}
	return l
}
