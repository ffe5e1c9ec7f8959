package tableau

// Screen is the root of the widget tree: an ordered list of widgets, at most
// one of which is selected. The screen's own bounding box always spans the
// whole drawable area, so child positions resolve against the window.
type Screen struct {
	WidgetBase

	// OnEnter fires when the screen becomes the active one. Optional.
	OnEnter func()

	// OnTick fires at the start of every tick, before hit testing.
	// Screens use it for per-frame logic such as polling workers or
	// advancing animations. Optional.
	OnTick func()

	children []Widget
	selected Widget

	// prevSize is the drawable size the children were last laid out for.
	// A mismatch on refresh forces a full relayout.
	prevSize Size
}

// NewScreen returns an empty screen.
func NewScreen() *Screen {
	s := &Screen{}
	s.Visible = true
	return s
}

// Add appends a widget, claims it as a child, and returns it.
// Panics if w is nil.
func (s *Screen) Add(w Widget) Widget {
	if w == nil {
		panic("tableau: cannot add nil widget")
	}
	w.base().Parent = s
	s.children = append(s.children, w)
	return w
}

// Children returns the child list. The returned slice must not be mutated.
func (s *Screen) Children() []Widget { return s.children }

// Selected returns the currently selected widget, or nil.
func (s *Screen) Selected() Widget { return s.selected }

// Enter makes the screen active: fires the enter hook, forgets any stale
// selection, and forces a full relayout on the next refresh.
func (s *Screen) Enter() {
	s.selected = nil
	s.prevSize = Size{}
	if s.OnEnter != nil {
		s.OnEnter()
	}
}

// Refresh lays out children. When the drawable size is unchanged only
// children with a raised dirty latch are refreshed, regardless of their
// visibility. After a resize every visible or dirty child is refreshed.
// Either way the latch is cleared on every child that was refreshed.
func (s *Screen) Refresh(r Renderer) {
	sz := r.Size()
	s.SetBoundingBox(Point{}, sz)

	if s.prevSize == sz {
		for _, c := range s.children {
			b := c.base()
			if b.NeedsRefresh {
				b.NeedsRefresh = false
				c.Refresh(r)
			}
		}
		return
	}

	s.prevSize = sz
	for _, c := range s.children {
		b := c.base()
		if b.Visible || b.NeedsRefresh {
			b.NeedsRefresh = false
			c.Refresh(r)
		}
	}
}

// Draw renders every visible child in insertion order. The cursor shape is
// reset first so a widget that wants a different one sets it during its own
// draw.
func (s *Screen) Draw(r Renderer) {
	r.SetCursor(CursorDefault)
	for _, c := range s.children {
		if c.base().Visible {
			c.Draw(r)
		}
	}
}

// Tick runs one step of the interaction protocol: a left click anywhere
// first drops the selection, then every visible child is hit-tested for
// hover, a click on a selectable hovered child selects it, and a hovered
// child that was clicked gets EventClick. Afterwards the surviving selected
// widget is re-asserted and receives EventInput, and the scheduler is told
// whether text input should be captured.
func (s *Screen) Tick(in *InputSystem) {
	if s.OnTick != nil {
		s.OnTick()
	}

	if in.Mouse.Left {
		s.selected = nil
	}

	for _, c := range s.children {
		b := c.base()
		if !b.Visible {
			continue
		}
		b.resetProperties()
		b.Hovered = b.box.Contains(in.Mouse.Pos)
		if b.Hovered && in.Mouse.Left {
			if b.Selectable {
				s.selected = c
			}
			c.EventClick(in)
		}
	}

	if s.selected != nil {
		s.selected.base().Selected = true
		s.selected.EventInput(in)
	}
	in.UpdateSelection(s.selected != nil)
}
