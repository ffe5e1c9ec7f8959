package tableau

import "testing"

// editFixture builds a TextEdit whose displayed run and bounding box are
// set directly, with the box sized so the centered text's left edge sits
// at x = 0.
func editFixture(text string, t *ShapedText) *TextEdit {
	e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
	e.text = []rune(text)
	e.cursor = 0
	e.run.shaped = t
	e.run.dirty = false
	e.SetBoundingBox(Point{0, 0}, Size{t.Width, t.Height + t.Depth})
	return e
}

func TestCursorOffsetRoundTrip(t *testing.T) {
	shaped := &ShapedText{
		Text:     "abc",
		Width:    30,
		Height:   10,
		Clusters: []Cluster{{0, 0}, {1, 10}, {2, 20}, {3, 30}},
	}
	e := editFixture("abc", shaped)

	for c, want := range map[int]int{0: 0, 1: 10, 2: 20, 3: 30} {
		e.cursor = c
		if got := e.cursorOffset(shaped); got != want {
			t.Errorf("cursor %d: offset %d, want %d", c, got, want)
		}
	}

	// Clicking exactly on an offset maps back to the same index.
	in := &InputSystem{}
	in.Mouse.Pos = Point{20, 5}
	e.EventClick(in)
	if e.cursor != 2 {
		t.Errorf("click at 20: cursor %d, want 2", e.cursor)
	}
}

func TestCursorOffsetLigatureInterpolation(t *testing.T) {
	// A single two-character ligature: one cluster, width 10. Cursor 1 is
	// inside it and interpolates against the virtual terminal cluster.
	shaped := &ShapedText{
		Text:     "fl",
		Width:    10,
		Height:   10,
		Clusters: []Cluster{{0, 0}},
	}
	e := editFixture("fl", shaped)

	e.cursor = 1
	if got := e.cursorOffset(shaped); got != 5 {
		t.Errorf("offset %d, want 5 (midpoint)", got)
	}
}

func TestCursorOffsetInsideInteriorLigature(t *testing.T) {
	// "afl b": cluster at 1 covers runes 1-2 (ligature 20px wide).
	shaped := &ShapedText{
		Text:     "aflb",
		Width:    40,
		Height:   10,
		Clusters: []Cluster{{0, 0}, {1, 10}, {3, 30}},
	}
	e := editFixture("aflb", shaped)

	e.cursor = 2
	if got := e.cursorOffset(shaped); got != 20 {
		t.Errorf("offset %d, want 20 (lerp between clusters 1 and 3)", got)
	}
}

func TestClickOutsideTextClamps(t *testing.T) {
	shaped := &ShapedText{
		Text:     "abc",
		Width:    30,
		Height:   10,
		Clusters: []Cluster{{0, 0}, {1, 10}, {2, 20}},
	}

	e := editFixture("abc", shaped)
	e.cursor = 2
	in := &InputSystem{}
	in.Mouse.Pos = Point{-5, 5}
	e.EventClick(in)
	if e.cursor != 0 {
		t.Errorf("click left of text: cursor %d, want 0", e.cursor)
	}

	in.Mouse.Pos = Point{35, 5}
	e.EventClick(in)
	if e.cursor != 3 {
		t.Errorf("click right of text: cursor %d, want 3", e.cursor)
	}
}

func TestClickWithDegenerateClusterListSelectsStart(t *testing.T) {
	shaped := &ShapedText{
		Text:     "ab",
		Width:    20,
		Height:   10,
		Clusters: []Cluster{{0, 0}},
	}
	e := editFixture("ab", shaped)
	e.cursor = 2

	in := &InputSystem{}
	in.Mouse.Pos = Point{10, 5}
	e.EventClick(in)
	if e.cursor != 0 {
		t.Errorf("cursor %d, want 0 (fewer than two clusters)", e.cursor)
	}
}

func TestClickBacksOffWhenDistanceGrows(t *testing.T) {
	shaped := &ShapedText{
		Text:     "abc",
		Width:    30,
		Height:   10,
		Clusters: []Cluster{{0, 0}, {1, 10}, {2, 20}, {3, 30}},
	}
	e := editFixture("abc", shaped)

	// 12 is nearest candidate 1 (distance 2); candidate 2 is 8 away and
	// triggers the back-off.
	in := &InputSystem{}
	in.Mouse.Pos = Point{12, 5}
	e.EventClick(in)
	if e.cursor != 1 {
		t.Errorf("click at 12: cursor %d, want 1", e.cursor)
	}
}

func TestEventInputTextInsertion(t *testing.T) {
	e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
	e.SetValue("ad")
	e.cursor = 1

	in := &InputSystem{TextInput: []rune("bc")}
	e.EventInput(in)
	if e.Value() != "abcd" {
		t.Errorf("value %q, want \"abcd\"", e.Value())
	}
	if e.cursor != 3 {
		t.Errorf("cursor %d, want 3", e.cursor)
	}
}

func TestEventInputEditingKeys(t *testing.T) {
	key := func(k Key, mods KeyMod) *InputSystem {
		return &InputSystem{KeyEvents: []KeyEvent{{k, mods}}}
	}

	t.Run("backspace", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("abc")
		e.EventInput(key(KeyBackspace, 0))
		if e.Value() != "ab" || e.cursor != 2 {
			t.Errorf("value %q cursor %d", e.Value(), e.cursor)
		}
	})

	t.Run("backspace at start is a no-op", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("abc")
		e.cursor = 0
		e.EventInput(key(KeyBackspace, 0))
		if e.Value() != "abc" || e.cursor != 0 {
			t.Errorf("value %q cursor %d", e.Value(), e.cursor)
		}
	})

	t.Run("ctrl backspace deletes the previous word", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("hello world  ")
		e.EventInput(key(KeyBackspace, ModCtrl))
		if e.Value() != "hello " {
			t.Errorf("value %q, want \"hello \"", e.Value())
		}
		if e.cursor != 6 {
			t.Errorf("cursor %d, want 6", e.cursor)
		}
	})

	t.Run("delete", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("abc")
		e.cursor = 1
		e.EventInput(key(KeyDelete, 0))
		if e.Value() != "ac" || e.cursor != 1 {
			t.Errorf("value %q cursor %d", e.Value(), e.cursor)
		}
	})

	t.Run("delete at end is a no-op", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("abc")
		e.EventInput(key(KeyDelete, 0))
		if e.Value() != "abc" {
			t.Errorf("value %q", e.Value())
		}
	})

	t.Run("arrows clamp at the ends", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("ab")
		e.EventInput(key(KeyRight, 0))
		if e.cursor != 2 {
			t.Errorf("right at end: cursor %d, want 2", e.cursor)
		}
		e.cursor = 0
		e.EventInput(key(KeyLeft, 0))
		if e.cursor != 0 {
			t.Errorf("left at start: cursor %d, want 0", e.cursor)
		}
	})

	t.Run("home and end", func(t *testing.T) {
		e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
		e.SetValue("abc")
		e.EventInput(key(KeyHome, 0))
		if e.cursor != 0 {
			t.Errorf("home: cursor %d", e.cursor)
		}
		e.EventInput(key(KeyEnd, 0))
		if e.cursor != 3 {
			t.Errorf("end: cursor %d", e.cursor)
		}
	})
}

func TestEventInputPaste(t *testing.T) {
	src := &fakeSource{clipboard: "xy"}
	in := NewInputSystem(src, newFakeRenderer())

	e := NewTextEdit(FontSizeText, Pos(0, 0), 0, 0)
	e.SetValue("ab")

	in.KeyEvents = []KeyEvent{{KeyV, ModCtrl}}
	e.EventInput(in)
	if e.Value() != "abxy" {
		t.Errorf("ctrl-v: value %q, want \"abxy\"", e.Value())
	}

	in.KeyEvents = []KeyEvent{{KeyInsert, ModShift}}
	e.EventInput(in)
	if e.Value() != "abxyxy" {
		t.Errorf("shift-insert: value %q, want \"abxyxy\"", e.Value())
	}

	// Plain V without ctrl must not paste.
	in.KeyEvents = []KeyEvent{{KeyV, 0}}
	e.EventInput(in)
	if e.Value() != "abxyxy" {
		t.Errorf("plain v pasted: value %q", e.Value())
	}
}

func TestHideTextMasksDisplayedRun(t *testing.T) {
	r := newFakeRenderer()
	e := NewTextEdit(FontSizeText, Pos(0, 0), 100, 0)
	e.SetValue("secret")
	e.SetHideText(true)
	e.Refresh(r)
	e.Draw(r)

	if got := e.run.content; got != "••••••" {
		t.Errorf("displayed run %q, want six bullets", got)
	}
	if e.Value() != "secret" {
		t.Errorf("buffer %q, want the real text", e.Value())
	}
}

func TestCaretBlinkSuppressionAfterActivity(t *testing.T) {
	r := newFakeRenderer()
	r.blink = false // blink phase hidden

	e := NewTextEdit(FontSizeText, Pos(0, 0), 100, 0)
	e.SetValue("ab")
	e.Selected = true
	e.Refresh(r)

	// No recent activity: caret follows the hidden blink phase.
	e.noBlinkTicks = 0
	e.Draw(r)
	if e.cursorOffs != -1 {
		t.Error("caret drawn during hidden blink phase")
	}

	// Typing holds the caret solid regardless of the phase.
	e.EventInput(&InputSystem{TextInput: []rune("c")})
	e.Draw(r)
	if e.cursorOffs == -1 {
		t.Error("caret hidden right after typing")
	}
	if e.noBlinkTicks != 19 {
		t.Errorf("noBlinkTicks=%d, want 19 after one frame", e.noBlinkTicks)
	}
}

func TestCaretHiddenWhenNotSelected(t *testing.T) {
	r := newFakeRenderer()
	e := NewTextEdit(FontSizeText, Pos(0, 0), 100, 0)
	e.SetValue("ab")
	e.noBlinkTicks = 20
	e.Refresh(r)
	e.Draw(r)
	if e.cursorOffs != -1 {
		t.Error("caret drawn on an unselected edit")
	}
}
