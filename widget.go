package tableau

// Element is anything a widget can be positioned relative to. Screens and
// widgets are both elements.
type Element interface {
	BoundingBox() AABB
}

// Widget is a positionable, drawable member of a screen. Concrete widgets
// embed WidgetBase and override the methods they care about.
type Widget interface {
	Element

	// Draw renders the widget at its current bounding box.
	Draw(r Renderer)

	// Refresh recomputes layout. Called when the widget's dirty latch is
	// raised, and for every visible widget after a window resize.
	Refresh(r Renderer)

	// EventClick fires on the tick the widget is clicked.
	EventClick(in *InputSystem)

	// EventInput fires every tick while the widget is selected.
	EventInput(in *InputSystem)

	base() *WidgetBase
}

// WidgetBase is the state shared by all widgets: the non-owning parent
// reference, the declarative position, interaction flags, and the computed
// bounding box. A single flat struct is used rather than per-flag interfaces
// to keep the tick loop's field access direct.
type WidgetBase struct {
	// Parent is the element this widget's position resolves against.
	// The parent owns the widget, never the other way around.
	Parent Element

	Pos Position

	Hovered      bool // mouse is over the bounding box this tick
	Selectable   bool // clicking may select this widget
	Selected     bool // this widget currently has the input focus
	Visible      bool
	NeedsRefresh bool // dirty latch; raised by setters, cleared by Screen

	box AABB
}

// makeBase returns a base with the default flags every widget starts with.
func makeBase(parent Element, pos Position) WidgetBase {
	return WidgetBase{
		Parent:       parent,
		Pos:          pos,
		Visible:      true,
		NeedsRefresh: true,
	}
}

// BoundingBox returns the widget's last computed screen-space box.
func (w *WidgetBase) BoundingBox() AABB { return w.box }

// SetBoundingBox overwrites the computed box. Refresh implementations call
// this after resolving their position and size.
func (w *WidgetBase) SetBoundingBox(origin Point, size Size) {
	w.box = AABB{Origin: origin, Size: size}
}

// resetProperties clears the per-tick transient flags. The screen tick
// re-derives them before any event fires.
func (w *WidgetBase) resetProperties() {
	w.Hovered = false
	w.Selected = false
}

// parentBox returns the parent's bounding box, or a zero box for a
// parentless widget (which then resolves against the origin alone).
func (w *WidgetBase) parentBox() AABB {
	if w.Parent == nil {
		return AABB{}
	}
	return w.Parent.BoundingBox()
}

func (w *WidgetBase) base() *WidgetBase { return w }

// Default event handlers. Widgets that react to clicks or input override
// these.
func (w *WidgetBase) EventClick(in *InputSystem) {}
func (w *WidgetBase) EventInput(in *InputSystem) {}

// setCached assigns v to dst and raises the dirty latch, but only when the
// value actually changes. Property setters funnel through this so an
// unchanged assignment never triggers a relayout.
func setCached[T comparable](w *WidgetBase, dst *T, v T) {
	if *dst == v {
		return
	}
	*dst = v
	w.NeedsRefresh = true
}
