package tableau

import (
	"sort"
	"strings"
)

// editWhitespace is the whitespace set ctrl-backspace stops at.
const editWhitespace = " \t\n\r\v\f"

// TextEdit is an editable single-line text box. It owns the logical rune
// buffer and a cursor index in [0, len]; the displayed run (possibly masked)
// is reshaped lazily when the buffer changes.
type TextEdit struct {
	TextBox

	text   []rune
	cursor int

	// dirty is raised when the buffer changed and the displayed run no
	// longer matches it. Distinct from NeedsRefresh: reshaping happens
	// during draw, relayout during refresh.
	dirty bool

	hideText bool

	// noBlinkTicks holds the caret solid after typing or clicking; it
	// counts down once per frame before blinking resumes.
	noBlinkTicks int
}

// NewTextEdit returns an empty, selectable text edit.
func NewTextEdit(size FontSize, pos Position, minWd, minHt int) *TextEdit {
	e := &TextEdit{TextBox: *NewTextBox("", size, pos, minWd, minHt)}
	e.Selectable = true
	return e
}

// Value returns the buffer contents.
func (e *TextEdit) Value() string { return string(e.text) }

// SetValue replaces the buffer and moves the cursor to the end.
func (e *TextEdit) SetValue(s string) {
	e.text = []rune(s)
	e.cursor = len(e.text)
	e.dirty = true
	e.NeedsRefresh = true
}

// SetHideText switches password masking: the displayed run becomes one '•'
// per character while the buffer keeps the real text.
func (e *TextEdit) SetHideText(hide bool) {
	if e.hideText == hide {
		return
	}
	e.hideText = hide
	e.dirty = true
	e.NeedsRefresh = true
}

// Draw reshapes the displayed run if the buffer changed, computes the caret
// offset for this frame, and renders the box. The caret shows only while
// selected, and only when recently active or in the visible blink phase.
func (e *TextEdit) Draw(r Renderer) {
	if e.dirty {
		e.dirty = false
		s := string(e.text)
		if e.hideText {
			s = strings.Repeat("•", len(e.text))
		}
		e.run.content = s
		e.run.dirty = true
	}
	t := e.run.ensure(r)

	if e.noBlinkTicks > 0 {
		e.noBlinkTicks--
	}
	if e.Selected && len(t.Clusters) > 0 && (e.noBlinkTicks > 0 || r.BlinkCursor()) {
		e.cursorOffs = e.cursorOffset(t)
	} else {
		e.cursorOffs = -1
	}

	if e.Hovered {
		r.SetCursor(CursorIBeam)
	}

	bg := DefaultButtonColour
	if e.Selected {
		bg = HoverButtonColour
	}
	e.drawBox(r, bg)
}

// cursorOffset maps the cursor index to a pixel offset within the run.
//
// A cursor at the ends maps to the run's edges. Otherwise the first cluster
// with index >= cursor is found by binary search: an exact match gives the
// offset directly; a cursor strictly inside a multi-character cluster
// (a ligature) interpolates between the bracketing clusters. A ligature at
// the end of the text has no bracketing cluster on the right, so a virtual
// terminal cluster (text length, run width) stands in for it.
//
// A cluster with index 0 always exists, so the previous-cluster lookup
// cannot underflow once cursor == 0 has been handled.
func (e *TextEdit) cursorOffset(t *ShapedText) int {
	if e.cursor == 0 {
		return 0
	}
	if e.cursor == len(e.text) {
		return t.Width
	}

	cl := t.Clusters
	i := sort.Search(len(cl), func(i int) bool { return cl[i].Index >= e.cursor })
	if i == 0 {
		panic("tableau: cluster list is missing the index-0 cluster")
	}
	prev := cl[i-1]
	x1, i1 := prev.XOffs, prev.Index

	var x2, i2 int
	if i < len(cl) {
		if cl[i].Index == e.cursor {
			return cl[i].XOffs
		}
		x2, i2 = cl[i].XOffs, cl[i].Index
	} else {
		x2, i2 = t.Width, len(e.text)
	}

	return lerp(x1, x2, float32(e.cursor-i1)/float32(i2-i1))
}

// EventClick places the cursor at the clicked position. Clusters are walked
// left to right, one candidate cursor index at a time, tracking the distance
// from the candidate's pixel position to the click; the walk stops and backs
// off one index as soon as the distance starts growing, the previous
// candidate being the local minimum.
func (e *TextEdit) EventClick(in *InputSystem) {
	e.noBlinkTicks = 20

	t := e.run.shaped
	if t == nil {
		e.cursor = 0
		return
	}

	mx := in.Mouse.Pos.X
	x0 := e.textOrigin(t).X
	x1 := x0 + t.Width
	cl := t.Clusters

	switch {
	case mx < x0:
		e.cursor = 0
	case mx > x1:
		e.cursor = len(e.text)
	case len(cl) < 2:
		e.cursor = 0
	default:
		e.cursor = 0
		d := abs(x0 - mx)
		it := 0
		var prev *Cluster

		// A cluster may cover multiple characters, in which case the
		// candidate's offset interpolates into it. The walk is bounded by
		// the cluster pointer, not the text length, so a terminal cluster
		// gets considered as a candidate and the back-off can fire on it.
		for it < len(cl) {
			var xoffs int
			if e.cursor == cl[it].Index {
				xoffs = cl[it].XOffs
			} else {
				px, pi := 0, 0
				if prev != nil {
					px, pi = prev.XOffs, prev.Index
				}
				xoffs = lerp(px, cl[it].XOffs, float32(e.cursor-pi)/float32(cl[it].Index-pi))
			}

			nd := abs(x0 + xoffs - mx)
			if nd > d {
				e.cursor--
				break
			}

			d = nd
			prev = &cl[it]
			e.cursor++
			if e.cursor > cl[it].Index {
				it++
			}
		}

		e.cursor = clamp(e.cursor, 0, len(e.text))
	}
}

// EventInput applies this tick's text and key events to the buffer.
func (e *TextEdit) EventInput(in *InputSystem) {
	if len(in.TextInput) > 0 {
		e.noBlinkTicks = 20
		e.dirty = true
		e.text = insertRunes(e.text, e.cursor, in.TextInput)
		e.cursor += len(in.TextInput)
	}

	paste := func() {
		if s := in.Source().ClipboardText(); s != "" {
			e.text = append(e.text, []rune(s)...)
			e.dirty = true
		}
	}

	for _, ev := range in.KeyEvents {
		e.noBlinkTicks = 20
		switch ev.Key {
		case KeyBackspace:
			if ev.Mods&ModCtrl != 0 {
				// Delete the word before the cursor: skip trailing
				// whitespace, then everything up to the next whitespace.
				pos := e.cursor
				for pos > 0 && strings.ContainsRune(editWhitespace, e.text[pos-1]) {
					pos--
				}
				for pos > 0 && !strings.ContainsRune(editWhitespace, e.text[pos-1]) {
					pos--
				}
				if pos != e.cursor {
					e.text = append(e.text[:pos], e.text[e.cursor:]...)
					e.cursor = pos
					e.dirty = true
				}
			} else if e.cursor != 0 {
				e.cursor--
				e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
				e.dirty = true
			}
		case KeyDelete:
			if e.cursor != len(e.text) {
				e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
				e.dirty = true
			}
		case KeyLeft:
			e.cursor = max(0, e.cursor-1)
		case KeyRight:
			e.cursor = min(len(e.text), e.cursor+1)
		case KeyHome:
			e.cursor = 0
		case KeyEnd:
			e.cursor = len(e.text)
		case KeyV:
			if ev.Mods&ModCtrl != 0 {
				paste()
			}
		case KeyInsert:
			if ev.Mods&ModShift != 0 {
				paste()
			}
		}
	}
}

func insertRunes(dst []rune, at int, src []rune) []rune {
	out := make([]rune, 0, len(dst)+len(src))
	out = append(out, dst[:at]...)
	out = append(out, src...)
	out = append(out, dst[at:]...)
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
