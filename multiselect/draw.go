package multiselect

import (
	"fmt"

	"github.com/lixenwraith/reportdeck/pointer"
	"github.com/lixenwraith/reportdeck/terminal"
	"github.com/lixenwraith/reportdeck/terminal/tui"
)

const (
	arrowClosed = '▾'
	arrowOpen   = '▴'
)

// rowHit maps a panel row to the gesture it triggers
type rowHit struct {
	rect   pointer.Rect
	kind   Kind
	value  string
	scroll int // Non-zero for more markers
}

// layout is the hit geometry of the last Draw, in absolute cells
type layout struct {
	label   pointer.Rect
	trigger pointer.Rect
	panel   pointer.Rect
	rows    []rowHit
}

// CollapsedHeight returns rows taken by label and trigger
// The open panel overlays rows below this
func CollapsedHeight(p Props) int {
	if p.Label != "" {
		return 2
	}
	return 1
}

// Draw paints the control into r and records hit geometry for HandleMouse
// r should extend down as far as the open panel may overlay, so hosts draw
// controls after the content underneath. Returns the collapsed height.
func (c *Control) Draw(r tui.Region, p Props) int {
	v := c.View(p)
	c.layout = layout{}

	y := 0
	for _, n := range v.Nodes {
		switch n.Kind {
		case KindLabel:
			row := r.Row(y)
			row.Text(0, 0, tui.Truncate(n.Text, row.W), c.theme.HintFg, terminal.RGB{}, terminal.AttrBold)
			c.layout.label = row.Rect()
			y++
		case KindTrigger:
			row := r.Row(y)
			c.drawTrigger(row, n)
			c.layout.trigger = row.Rect()
			y++
		case KindPanel:
			c.drawPanel(r.Sub(0, y, r.W, r.H-y), n)
		}
	}
	return CollapsedHeight(p)
}

func (c *Control) drawTrigger(row tui.Region, n Node) {
	bg := c.theme.CursorBg
	row.Fill(bg)

	arrow := arrowClosed
	if n.Checked {
		arrow = arrowOpen
	}
	// Reserve the arrow column on the right
	body := row.Sub(0, 0, row.W-2, 1)
	row.Cell(row.W-2, 0, arrow, c.theme.Fg, bg, terminal.AttrNone)

	x := 1
	for i, child := range n.Children {
		switch child.Kind {
		case KindPlaceholder:
			body.Text(x, 0, tui.Truncate(child.Text, body.W-x), c.theme.StatusFg, bg, terminal.AttrItalic)
		case KindCount:
			body.Text(x, 0, tui.Truncate(child.Text, body.W-x), c.theme.Fg, bg, terminal.AttrBold)
		case KindChip:
			if i > 0 {
				x++
			}
			label := tui.Truncate(child.Text, max(body.W-x-2, 1))
			x += body.Chip(x, 0, label, tui.Style{Fg: c.theme.ChipFg, Bg: c.theme.ChipBg})
		}
	}
}

func (c *Control) drawPanel(area tui.Region, n Node) {
	items := n.Children
	rows := len(items)
	if c.maxRows > 0 && rows > c.maxRows {
		rows = c.maxRows
	}
	// Border adds two rows
	h := min(rows+2, area.H)
	if h < 3 {
		return
	}
	box := area.Sub(0, 0, area.W, h)
	box.Fill(c.theme.PanelBg)
	inner := box.Box(tui.LineRounded, c.theme.Border, c.theme.PanelBg)
	c.layout.panel = box.Rect()

	// An overflowing list gives up its first and last rows to more markers
	visible := inner.H
	markers := len(items) > inner.H && inner.H >= 3
	if markers {
		visible -= 2
	}
	c.scroll.Resize(len(items), visible)

	y := 0
	if markers {
		c.drawMarker(inner.Row(0), arrowOpen, c.scroll.Above(), -tui.PageDelta(visible))
		y++
	}
	end := min(c.scroll.Offset+visible, len(items))
	for _, child := range items[c.scroll.Offset:end] {
		c.drawItem(inner.Row(y), child)
		y++
	}
	if markers {
		c.drawMarker(inner.Row(inner.H-1), arrowClosed, c.scroll.Below(), tui.PageDelta(visible))
	}
}

func (c *Control) drawItem(row tui.Region, n Node) {
	switch n.Kind {
	case KindEmpty:
		row.Text(1, 0, tui.Truncate(n.Text, row.W-1), c.theme.StatusFg, c.theme.PanelBg, terminal.AttrItalic)
	case KindSelectAll:
		row.Checkbox(1, 0, n.Checked, c.theme.HintFg, c.theme.PanelBg)
		row.Text(5, 0, tui.Truncate(n.Text, row.W-5), c.theme.HintFg, c.theme.PanelBg, terminal.AttrBold)
	case KindOption:
		fg := c.theme.Unselected
		if n.Checked {
			fg = c.theme.Selected
		}
		row.Checkbox(1, 0, n.Checked, fg, c.theme.PanelBg)
		row.Text(5, 0, tui.Truncate(n.Text, row.W-5), c.theme.Fg, c.theme.PanelBg, terminal.AttrNone)
	}
	c.layout.rows = append(c.layout.rows, rowHit{rect: row.Rect(), kind: n.Kind, value: n.Value})
}

// drawMarker shows how many items are hidden past one end of the list
// A blank marker is not clickable
func (c *Control) drawMarker(row tui.Region, arrow rune, hidden, delta int) {
	if hidden == 0 {
		return
	}
	row.Cell(1, 0, arrow, c.theme.HintFg, c.theme.PanelBg, terminal.AttrNone)
	text := fmt.Sprintf(c.labels.More, hidden)
	row.Text(3, 0, tui.Truncate(text, row.W-3), c.theme.StatusFg, c.theme.PanelBg, terminal.AttrDim)
	c.layout.rows = append(c.layout.rows, rowHit{rect: row.Rect(), scroll: delta})
}

// Scroll moves the open panel by delta items, positive is down
func (c *Control) Scroll(delta int) {
	if c.state != Open {
		return
	}
	c.scroll.ScrollBy(delta)
}

// ScrollOffset returns the index of the first visible panel row
func (c *Control) ScrollOffset() int {
	return c.scroll.Offset
}

// HandleMouse maps a press on the drawn control to a gesture
// Returns true if the press landed on the control
func (c *Control) HandleMouse(p Props, ev pointer.Event) bool {
	if !c.mounted {
		return false
	}
	if ev.Button.IsWheel() {
		if c.state != Open || !c.layout.panel.Contains(ev.X, ev.Y) {
			return false
		}
		if ev.Button == pointer.ButtonWheelUp {
			c.Scroll(-1)
		} else {
			c.Scroll(1)
		}
		return true
	}
	if ev.Button != pointer.ButtonLeft {
		return false
	}

	if c.layout.label.Contains(ev.X, ev.Y) || c.layout.trigger.Contains(ev.X, ev.Y) {
		c.ToggleOpen()
		return true
	}
	if c.state != Open || !c.layout.panel.Contains(ev.X, ev.Y) {
		return false
	}

	for _, hit := range c.layout.rows {
		if !hit.rect.Contains(ev.X, ev.Y) {
			continue
		}
		switch {
		case hit.scroll != 0:
			c.Scroll(hit.scroll)
		case hit.kind == KindSelectAll:
			c.ActivateAll(p)
		case hit.kind == KindOption:
			c.ActivateOption(p, hit.value)
		}
		break
	}
	// Presses on the border or empty rows are swallowed by the panel
	return true
}
