package tableau

import (
	"strings"
	"time"
	"unicode/utf8"
)

// fakeRenderer shapes text with deterministic metrics: every rune is 10px
// wide on its own cluster, ascent 10, descent 2. Draw calls are recorded
// for assertions.
type fakeRenderer struct {
	size  Size
	blink bool

	rects    []recordedRect
	outlines []recordedRect
	lines    []recordedLine
	texts    []recordedText
	cursor   Cursor
}

type recordedRect struct {
	box AABB
	c   Colour
}

type recordedLine struct {
	from, to Point
	c        Colour
}

type recordedText struct {
	s  string
	at Point
	c  Colour
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{size: Size{800, 600}, blink: true}
}

func (r *fakeRenderer) Size() Size { return r.size }

func (r *fakeRenderer) DrawRect(box AABB, c Colour) {
	r.rects = append(r.rects, recordedRect{box, c})
}

func (r *fakeRenderer) DrawOutlineRect(box AABB, thickness int, c Colour) {
	r.outlines = append(r.outlines, recordedRect{box, c})
}

func (r *fakeRenderer) DrawLine(from, to Point, thickness int, c Colour) {
	r.lines = append(r.lines, recordedLine{from, to, c})
}

func (r *fakeRenderer) DrawText(t *ShapedText, at Point, c Colour) {
	r.texts = append(r.texts, recordedText{t.Text, at, c})
}

func (r *fakeRenderer) MakeText(s string, size FontSize, style TextStyle, align TextAlign, wrapWidth int) *ShapedText {
	t := &ShapedText{Text: s, Size: size, Style: style, Height: 10, Depth: 2}
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if n := utf8.RuneCountInString(line); n > widest {
			widest = n
		}
	}
	t.Width = 10 * widest
	for i := 0; i < utf8.RuneCountInString(s); i++ {
		t.Clusters = append(t.Clusters, Cluster{Index: i, XOffs: 10 * i})
	}
	return t
}

func (r *fakeRenderer) Strut(t *ShapedText) (int, int) { return 10, 2 }

func (r *fakeRenderer) SetCursor(c Cursor) { r.cursor = c }

func (r *fakeRenderer) BlinkCursor() bool { return r.blink }

// fakeSource replays pre-queued event batches, one per poll, and records
// everything the input system tells it.
type fakeSource struct {
	batches   [][]Event
	mouse     Point
	clipboard string

	waits    []time.Duration
	captures []bool
}

func (s *fakeSource) PollEvents() []Event {
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

func (s *fakeSource) MousePosition() Point { return s.mouse }

func (s *fakeSource) WaitEvent(timeout time.Duration) {
	s.waits = append(s.waits, timeout)
}

func (s *fakeSource) StartTextInput() { s.captures = append(s.captures, true) }
func (s *fakeSource) StopTextInput()  { s.captures = append(s.captures, false) }

func (s *fakeSource) ClipboardText() string { return s.clipboard }

// stubWidget counts the calls the screen protocol makes.
type stubWidget struct {
	WidgetBase
	refreshes int
	clicks    int
	inputs    int
}

func newStubWidget(box AABB) *stubWidget {
	w := &stubWidget{WidgetBase: makeBase(nil, Pos(box.Origin.X, box.Origin.Y))}
	w.box = box
	return w
}

func (w *stubWidget) Draw(r Renderer) {}

func (w *stubWidget) Refresh(r Renderer) { w.refreshes++ }

func (w *stubWidget) EventClick(in *InputSystem) { w.clicks++ }

func (w *stubWidget) EventInput(in *InputSystem) { w.inputs++ }
