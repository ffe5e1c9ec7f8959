package tableau

import "testing"

func TestThrobberRotationAdvancesAndWraps(t *testing.T) {
	th := NewThrobber(Center())

	th.Update(0.5)
	first := th.angle
	if first <= 0 {
		t.Fatalf("angle %v did not advance", first)
	}

	th.Update(0.5)
	if th.angle <= first {
		t.Errorf("angle %v did not keep advancing past %v", th.angle, first)
	}

	// A full period completes the tween; the next update starts over.
	th.Update(throbberPeriod)
	th.Update(0.1)
	if th.angle >= first {
		t.Errorf("angle %v did not wrap after a full revolution", th.angle)
	}
}

func TestThrobberPositionsAgainstScreen(t *testing.T) {
	r := newFakeRenderer() // 800x600
	th := NewThrobber(Center())
	th.Refresh(r)

	want := AABB{
		Origin: Point{(800 - 2*throbberRadius) / 2, (600 - 2*throbberRadius) / 2},
		Size:   Size{2 * throbberRadius, 2 * throbberRadius},
	}
	if th.BoundingBox() != want {
		t.Errorf("box %v, want %v", th.BoundingBox(), want)
	}
}

func TestThrobberDrawsSpokes(t *testing.T) {
	r := newFakeRenderer()
	th := NewThrobber(Center())
	th.Update(0.25)
	th.Draw(r)
	if len(r.lines) != throbberSpokes {
		t.Errorf("drew %d lines, want %d", len(r.lines), throbberSpokes)
	}
}
