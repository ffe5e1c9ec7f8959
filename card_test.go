package tableau

import "testing"

func newTestGroup(n int, maxWidth int) *CardGroup {
	g := NewCardGroup(nil, Pos(0, 0))
	g.SetMaxWidth(maxWidth)
	for i := 0; i < n; i++ {
		g.Add("p")
	}
	return g
}

func TestAutoscalePicksLargestFittingLevel(t *testing.T) {
	r := newFakeRenderer()

	tests := []struct {
		name      string
		cards     int
		maxWidth  int
		wantScale Scale
		wantSize  Size
	}{
		// 4*240+3*20=1020 and 4*120+3*10=510 don't fit in 300;
		// 4*60+3*5=255 does.
		{"four cards at 300", 4, 300, ScaleField, Size{255, 90}},
		// 2*240+20=500 fits in 1000 at the largest level.
		{"two cards at 1000", 2, 1000, ScalePreview, Size{500, 360}},
		// 3*120+2*10=380 fits in 400, 3*240+2*20=760 does not.
		{"three cards at 400", 3, 400, ScaleHand, Size{380, 180}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGroup(tt.cards, tt.maxWidth)
			g.Refresh(r)
			for _, c := range g.Cards() {
				if c.Scale() != tt.wantScale {
					t.Errorf("card scale %v, want %v", c.Scale(), tt.wantScale)
				}
			}
			if g.BoundingBox().Size != tt.wantSize {
				t.Errorf("group size %v, want %v", g.BoundingBox().Size, tt.wantSize)
			}
		})
	}
}

func TestAutoscaleFloorWhenNothingFits(t *testing.T) {
	r := newFakeRenderer()
	g := newTestGroup(4, 100) // even 255 doesn't fit
	g.Refresh(r)
	for _, c := range g.Cards() {
		if c.Scale() != ScaleField {
			t.Errorf("scale %v, want the smallest level as floor", c.Scale())
		}
	}
}

func TestAutoscaleRespectsFloorScale(t *testing.T) {
	r := newFakeRenderer()
	g := newTestGroup(4, 100)
	g.SetScale(ScaleHand)
	g.Refresh(r)
	for _, c := range g.Cards() {
		if c.Scale() != ScaleHand {
			t.Errorf("scale %v, want the ScaleHand floor", c.Scale())
		}
	}
}

func TestExplicitScaleWhenAutoscaleOff(t *testing.T) {
	r := newFakeRenderer()
	g := newTestGroup(4, 100)
	g.SetAutoscale(false)
	g.SetScale(ScalePreview)
	g.Refresh(r)
	for _, c := range g.Cards() {
		if c.Scale() != ScalePreview {
			t.Errorf("scale %v, want ScalePreview", c.Scale())
		}
	}
}

func TestLayoutLeftToRightWithoutTrailingGap(t *testing.T) {
	r := newFakeRenderer()
	g := newTestGroup(3, 1000) // 3*240+2*20=760 fits: ScalePreview
	g.Refresh(r)

	cards := g.Cards()
	wantX := []int{0, 260, 520}
	for i, c := range cards {
		if c.Pos.Base.X != wantX[i] {
			t.Errorf("card %d at x=%d, want %d", i, c.Pos.Base.X, wantX[i])
		}
		if c.Pos.Base.Y != Centered {
			t.Errorf("card %d not vertically centered", i)
		}
	}
	if g.BoundingBox().Size.Wd != 760 {
		t.Errorf("width %d, want 760 (no trailing gap)", g.BoundingBox().Size.Wd)
	}
}

func TestEmptyGroupRefreshIsANoOp(t *testing.T) {
	r := newFakeRenderer()
	g := NewCardGroup(nil, Pos(0, 0))
	g.Refresh(r) // must not panic or set a box
	if g.BoundingBox().Size != (Size{}) {
		t.Errorf("empty group grew a box: %v", g.BoundingBox())
	}
}

func TestGroupFallsBackToOwnWidth(t *testing.T) {
	r := newFakeRenderer()
	g := NewCardGroup(nil, Pos(0, 0))
	for i := 0; i < 4; i++ {
		g.Add("t")
	}
	g.SetBoundingBox(Point{}, Size{300, 90})
	g.Refresh(r)
	for _, c := range g.Cards() {
		if c.Scale() != ScaleField {
			t.Errorf("scale %v, want ScaleField from the group's own width", c.Scale())
		}
	}
}

func TestCardSetIDFillsLabels(t *testing.T) {
	c := NewCard(nil, Pos(0, 0))
	c.SetID("p")

	if c.code.Text() != "P1M1" {
		t.Errorf("code %q, want \"P1M1\"", c.code.Text())
	}
	if c.name.Text() != "p" || c.middle.Text() != "p" {
		t.Errorf("name %q middle %q", c.name.Text(), c.middle.Text())
	}
	if c.special.Text() != "→ b\n→ f" {
		t.Errorf("special %q, want conversion lines", c.special.Text())
	}
	if c.count != 4 {
		t.Errorf("count %d, want 4", c.count)
	}
	if !c.NeedsRefresh {
		t.Error("SetID did not raise the dirty latch")
	}
}

func TestCardSetIDUnknownIsIgnored(t *testing.T) {
	c := NewCard(nil, Pos(0, 0))
	c.SetID("no-such-card")
	if c.ID() != NoCard {
		t.Errorf("id %q, want NoCard", c.ID())
	}
}

func TestCardRefreshRecomputesLabelsOnScaleChangeOnly(t *testing.T) {
	r := newFakeRenderer()
	c := NewCard(nil, Pos(0, 0))
	c.SetID("p")
	c.Refresh(r)

	if c.scaleChanged {
		t.Fatal("scaleChanged not consumed by refresh")
	}
	if got := c.middle.run.size; got != middleSizes[ScaleField] {
		t.Errorf("middle size %v, want %v", got, middleSizes[ScaleField])
	}

	c.SetScale(ScalePreview)
	if !c.scaleChanged || !c.NeedsRefresh {
		t.Fatal("SetScale did not mark the card")
	}
	c.Refresh(r)
	if got := c.middle.run.size; got != middleSizes[ScalePreview] {
		t.Errorf("middle size %v, want %v", got, middleSizes[ScalePreview])
	}
	if c.BoundingBox().Size != CardSizes[ScalePreview] {
		t.Errorf("box %v, want %v", c.BoundingBox().Size, CardSizes[ScalePreview])
	}

	// Setting the same scale again must not mark anything.
	c.SetScale(ScalePreview)
	if c.scaleChanged {
		t.Error("unchanged scale marked the card")
	}
}

func TestCardDrawSelectionOutlineAndPips(t *testing.T) {
	r := newFakeRenderer()
	s := NewScreen()
	c := NewCard(nil, Pos(0, 0))
	c.SetID("p") // count 4
	s.Add(c)
	s.Refresh(r)

	c.Draw(r)
	if len(r.outlines) != 0 {
		t.Fatal("outline drawn on an unselected card")
	}
	// Background plus one pip per deck copy.
	if len(r.rects) != 1+4 {
		t.Errorf("rects %d, want 5", len(r.rects))
	}

	r.rects, r.outlines = nil, nil
	c.Selected = true
	c.Draw(r)
	if len(r.outlines) != 1 || r.outlines[0].c != SelectedCardColour {
		t.Errorf("selection outline missing or wrong colour: %v", r.outlines)
	}
}
