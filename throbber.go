package tableau

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// throbberRadius is the spinner's radius in pixels.
const throbberRadius = 20

// throbberSpokes is the number of spokes drawn around the hub.
const throbberSpokes = 8

// throbberPeriod is the seconds one full revolution takes.
const throbberPeriod = 3

// Throbber is a spinning wait indicator. It positions itself against the
// whole screen rather than a parent, so it can be shown before any layout
// exists (e.g. while connecting).
type Throbber struct {
	WidgetBase

	Colour Colour

	// rotation is driven by a looping tween from 0 to 2π over the period.
	rotation *gween.Tween
	angle    float32
}

// NewThrobber returns a spinner at the given position.
func NewThrobber(pos Position) *Throbber {
	t := &Throbber{
		WidgetBase: makeBase(nil, pos),
		Colour:     ColourWhite,
		rotation:   gween.New(0, 2*math.Pi, throbberPeriod, ease.Linear),
	}
	return t
}

// Update advances the rotation by dt seconds, restarting the tween when a
// revolution completes. Call once per tick.
func (t *Throbber) Update(dt float32) {
	v, finished := t.rotation.Update(dt)
	t.angle = v
	if finished {
		t.rotation.Reset()
	}
}

func (t *Throbber) Refresh(r Renderer) {
	sz := Size{2 * throbberRadius, 2 * throbberRadius}
	t.SetBoundingBox(t.Pos.Absolute(r.Size(), sz), sz)
}

// Draw renders the spokes, fading them around the hub so the rotation reads
// as motion.
func (t *Throbber) Draw(r Renderer) {
	sz := Size{2 * throbberRadius, 2 * throbberRadius}
	at := t.Pos.Absolute(r.Size(), sz)
	cx := at.X + throbberRadius
	cy := at.Y + throbberRadius

	for i := 0; i < throbberSpokes; i++ {
		a := float64(t.angle) + 2*math.Pi*float64(i)/throbberSpokes
		inner := float64(throbberRadius) * 0.45
		outer := float64(throbberRadius)

		from := Point{
			cx + int(inner*math.Cos(a)),
			cy + int(inner*math.Sin(a)),
		}
		to := Point{
			cx + int(outer*math.Cos(a)),
			cy + int(outer*math.Sin(a)),
		}

		c := t.Colour
		c.A = uint8(255 * (i + 1) / throbberSpokes)
		r.DrawLine(from, to, 2, c)
	}
}
