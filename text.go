package tableau

// Cluster records where one shaping cluster starts: the rune index of its
// first character and the horizontal pixel offset of its left edge within
// the run. A run's clusters are sorted ascending by both fields and the
// first cluster, when present, has index 0. Several runes may share one
// cluster (ligatures); a cluster never spans line breaks.
type Cluster struct {
	Index int
	XOffs int
}

// ShapedText is the result of shaping a string: the source text, its
// metrics, and the cluster table used for caret positioning. Instances are
// produced by Renderer.MakeText and treated as immutable.
type ShapedText struct {
	Text  string
	Size  FontSize
	Style TextStyle

	Width  int
	Height int // extent above the baseline
	Depth  int // extent below the baseline

	Clusters []Cluster
}

// Empty reports whether the run has no text.
func (t *ShapedText) Empty() bool { return t == nil || t.Text == "" }

// textRun is the lazily shaped text shared by the text widgets: the source
// properties plus a cached shaped run that is rebuilt on demand.
type textRun struct {
	content   string
	size      FontSize
	style     TextStyle
	align     TextAlign
	wrapWidth int

	shaped *ShapedText
	dirty  bool
}

func makeTextRun(content string, size FontSize, align TextAlign) textRun {
	return textRun{content: content, size: size, align: align, dirty: true}
}

// ensure reshapes if needed and returns the current run.
func (t *textRun) ensure(r Renderer) *ShapedText {
	if t.dirty || t.shaped == nil {
		t.shaped = r.MakeText(t.content, t.size, t.style, t.align, t.wrapWidth)
		t.dirty = false
	}
	return t.shaped
}

// Label is a run of text positioned relative to its parent.
type Label struct {
	WidgetBase
	run    textRun
	Colour Colour
}

// NewLabel returns a label with the given content. The parent is assigned
// when the label is added to a screen or composite widget.
func NewLabel(content string, size FontSize, pos Position) *Label {
	return &Label{
		WidgetBase: makeBase(nil, pos),
		run:        makeTextRun(content, size, AlignSingleLine),
		Colour:     ColourWhite,
	}
}

// SetText replaces the label's content.
func (l *Label) SetText(s string) {
	if l.run.content == s {
		return
	}
	l.run.content = s
	l.run.dirty = true
	l.NeedsRefresh = true
}

// SetFontSize changes the label's font size.
func (l *Label) SetFontSize(size FontSize) {
	if l.run.size == size {
		return
	}
	l.run.size = size
	l.run.dirty = true
	l.NeedsRefresh = true
}

// Reflow makes the label a wrapped multiline block of the given width.
func (l *Label) Reflow(align TextAlign, wrapWidth int) {
	if l.run.align == align && l.run.wrapWidth == wrapWidth {
		return
	}
	l.run.align = align
	l.run.wrapWidth = wrapWidth
	l.run.dirty = true
	l.NeedsRefresh = true
}

// Text returns the label's current content.
func (l *Label) Text() string { return l.run.content }

func (l *Label) Refresh(r Renderer) {
	t := l.run.ensure(r)
	sz := Size{t.Width, t.Height}
	l.SetBoundingBox(l.Pos.Relative(l.parentBox(), sz), sz)
}

// Draw renders the run with its baseline raised by the descender depth so
// the full block sits inside the bounding box.
func (l *Label) Draw(r Renderer) {
	t := l.run.ensure(r)
	at := l.Pos.VOffset(t.Depth).Relative(l.parentBox(), Size{t.Width, t.Height})
	r.DrawText(t, at, l.Colour)
}

// TextBox is a padded box around a run of centered text, with optional
// placeholder text and an optional caret. It is the base of Button and
// TextEdit.
type TextBox struct {
	WidgetBase
	run         textRun
	placeholder textRun

	Padding int
	MinWd   int
	MinHt   int

	BgColour   Colour
	TextColour Colour

	// cursorOffs is the caret's pixel offset within the text run, or -1
	// when no caret is shown.
	cursorOffs int
}

// NewTextBox returns a text box with the given content and minimum size.
func NewTextBox(content string, size FontSize, pos Position, minWd, minHt int) *TextBox {
	tb := &TextBox{
		WidgetBase: makeBase(nil, pos),
		run:        makeTextRun(content, size, AlignSingleLine),
		Padding:    5,
		MinWd:      minWd,
		MinHt:      minHt,
		TextColour: ColourWhite,
		cursorOffs: -1,
	}
	return tb
}

// SetText replaces the box's content.
func (tb *TextBox) SetText(s string) {
	if tb.run.content == s {
		return
	}
	tb.run.content = s
	tb.run.dirty = true
	tb.NeedsRefresh = true
}

// SetPlaceholder sets the grey text shown while the box is empty.
func (tb *TextBox) SetPlaceholder(s string) {
	if tb.placeholder.content == s {
		return
	}
	tb.placeholder = makeTextRun(s, tb.run.size, tb.run.align)
}

// Text returns the box's current content.
func (tb *TextBox) Text() string { return tb.run.content }

// Refresh sizes the box around its text: width from the larger of the
// minimum and the run width, height from the larger of the minimum, the
// run's full extent, and the font strut, each plus padding on both sides.
// The strut keeps empty and short boxes the same height as full ones.
func (tb *TextBox) Refresh(r Renderer) {
	t := tb.run.ensure(r)
	asc, desc := r.Strut(t)

	wd := max(tb.MinWd, t.Width) + 2*tb.Padding
	ht := max(tb.MinHt, max(t.Height+t.Depth, asc+desc)) + 2*tb.Padding
	sz := Size{wd, ht}
	tb.SetBoundingBox(tb.Pos.Relative(tb.parentBox(), sz), sz)
}

func (tb *TextBox) Draw(r Renderer) {
	tb.drawBox(r, tb.BgColour)
}

// drawBox renders the background, the centered text (the placeholder, in
// grey, while the box is empty), and the caret when one is set.
func (tb *TextBox) drawBox(r Renderer, bg Colour) {
	if bg.A != 0 {
		r.DrawRect(tb.box, bg)
	}

	t := tb.run.ensure(r)
	colour := tb.TextColour
	if t.Empty() && tb.placeholder.content != "" {
		t = tb.placeholder.ensure(r)
		colour = ColourGrey
	}
	at := tb.textOrigin(t)
	r.DrawText(t, at, colour)

	if tb.cursorOffs >= 0 {
		asc, desc := r.Strut(t)
		x := at.X + tb.cursorOffs
		r.DrawLine(Point{x, at.Y - desc}, Point{x, at.Y + asc}, 1, tb.TextColour)
	}
}

// textOrigin returns the baseline origin of the centered run.
func (tb *TextBox) textOrigin(t *ShapedText) Point {
	return Center().VOffset(t.Depth).Relative(tb.box, Size{t.Width, t.Height})
}

// Default button colours.
var (
	DefaultButtonColour = Colour{36, 36, 36, 255}
	HoverButtonColour   = Colour{23, 23, 23, 255}
)

// Button is a text box that reacts to clicks.
type Button struct {
	TextBox
	OnClick func()
}

// NewButton returns a button with the given label and minimum size.
func NewButton(content string, size FontSize, pos Position, minWd, minHt int) *Button {
	b := &Button{TextBox: *NewTextBox(content, size, pos, minWd, minHt)}
	b.BgColour = DefaultButtonColour
	return b
}

func (b *Button) Draw(r Renderer) {
	bg := b.BgColour
	if b.Hovered {
		bg = HoverButtonColour
	}
	b.drawBox(r, bg)
}

func (b *Button) EventClick(in *InputSystem) {
	if b.OnClick != nil {
		b.OnClick()
	}
}
