package tableau

import (
	"fmt"
	"os"
)

// Scale is a card's discrete display size.
type Scale uint8

const (
	ScaleField   Scale = iota // on the table
	ScaleHand                 // in the player's hand
	ScalePreview              // enlarged preview

	NumScales = 3
)

// Per-scale layout tables. Indexed by Scale.
var (
	CardSizes   = [NumScales]Size{{60, 90}, {120, 180}, {240, 360}}
	CardGaps    = [NumScales]int{5, 10, 20}
	cardOffsets = [NumScales]int{3, 6, 12}

	codeSizes        = [NumScales]FontSize{6, FontSizeSmall, FontSizeMedium}
	nameSpecialSizes = [NumScales]FontSize{6, FontSizeSmall, FontSizeMedium}
	middleSizes      = [NumScales]FontSize{FontSizeMedium, FontSizeHuge, FontSizeTitle}
)

// SelectedCardColour outlines a selected card.
var SelectedCardColour = Colour{50, 50, 200, 255}

// Card displays one card: its background, four text labels (phonetic code,
// name, center glyph, conversion lines), a selection outline, and one pip
// per copy in the deck. Label fonts and positions are recomputed only when
// the scale changes.
type Card struct {
	WidgetBase

	id    CardID
	scale Scale

	// scaleChanged gates the label font/position recomputation in Refresh.
	scaleChanged bool

	count int

	code    Label
	name    Label
	middle  Label
	special Label

	BgColour Colour
}

// NewCard returns a card at the field scale with no identity.
func NewCard(parent Element, pos Position) *Card {
	c := &Card{
		WidgetBase: makeBase(parent, pos),
		id:         NoCard,
		BgColour:   ColourWhite,
	}
	c.code = *NewLabel("", codeSizes[c.scale], Pos(0, 0))
	c.name = *NewLabel("", nameSpecialSizes[c.scale], Pos(0, 0))
	c.middle = *NewLabel("", middleSizes[c.scale], Center())
	c.special = *NewLabel("", nameSpecialSizes[c.scale], Pos(0, 0))
	for _, l := range []*Label{&c.code, &c.name, &c.middle, &c.special} {
		l.Parent = c
		l.Colour = ColourBlack
	}
	c.scaleChanged = true
	return c
}

// ID returns the card's identity.
func (c *Card) ID() CardID { return c.id }

// Scale returns the card's current scale.
func (c *Card) Scale() Scale { return c.scale }

// SetScale changes the display scale, deferring the label recomputation to
// the next refresh.
func (c *Card) SetScale(s Scale) {
	if c.scale == s {
		return
	}
	c.scale = s
	c.scaleChanged = true
	c.NeedsRefresh = true
}

// SetID gives the card an identity and fills the labels from the card
// database.
func (c *Card) SetID(id CardID) {
	data, ok := LookupCard(id)
	if !ok {
		return
	}
	c.id = id
	if data.Type != SoundCard {
		_, _ = fmt.Fprintf(os.Stderr, "[tableau] power cards are not implemented yet\n")
		return
	}

	c.count = data.Count
	c.code.SetText(data.Code())
	c.name.SetText(data.Name)
	c.middle.SetText(data.Center)
	c.special.SetText(data.ConversionLines())
	c.NeedsRefresh = true
}

func (c *Card) Refresh(r Renderer) {
	sz := CardSizes[c.scale]
	c.SetBoundingBox(c.Pos.Relative(c.parentBox(), sz), sz)

	if !c.scaleChanged {
		return
	}
	c.scaleChanged = false
	offs := cardOffsets[c.scale]

	c.code.SetFontSize(codeSizes[c.scale])
	c.name.SetFontSize(nameSpecialSizes[c.scale])
	c.middle.SetFontSize(middleSizes[c.scale])
	c.special.SetFontSize(nameSpecialSizes[c.scale])

	codeHt := c.code.run.ensure(r).Height
	c.code.Pos = Pos(offs, -offs)
	c.special.Pos = HCenter(10 * offs)
	c.name.Pos = Pos(offs, -(4*offs + codeHt))
}

func (c *Card) Draw(r Renderer) {
	offs := cardOffsets[c.scale]
	sz := CardSizes[c.scale]
	at := c.Pos.Relative(c.parentBox(), sz)
	box := AABB{Origin: at, Size: sz}

	r.DrawRect(box, c.BgColour)
	if c.Selected {
		r.DrawOutlineRect(box, CardGaps[c.scale]/2, SelectedCardColour)
	}

	c.code.Draw(r)
	c.middle.Draw(r)
	c.special.Draw(r)
	c.name.Draw(r)

	// One pip per copy of the card in the deck, stacked down the right edge.
	pip := Size{5 * offs, offs}
	for i := 0; i < c.count; i++ {
		origin := Pos(-3*offs, -(2*offs + 2*i*offs)).RelativeTo(at, sz, pip)
		r.DrawRect(AABB{Origin: origin, Size: pip}, ColourBlack)
	}
}

// CardGroup lays out a row of cards, shrinking them together through the
// scale levels until the row fits its width.
type CardGroup struct {
	WidgetBase

	cards []*Card

	autoscale bool

	// maxWidth bounds the row; 0 means use the group's current width.
	maxWidth int

	// scale is the explicit scale when autoscaling is off, and the
	// smallest level autoscaling may fall to when it is on.
	scale Scale
}

// NewCardGroup returns an empty group with autoscaling enabled.
func NewCardGroup(parent Element, pos Position) *CardGroup {
	g := &CardGroup{WidgetBase: makeBase(parent, pos)}
	g.autoscale = true
	return g
}

// Cards returns the group's cards in layout order.
func (g *CardGroup) Cards() []*Card { return g.cards }

// Add appends a card with the given identity.
func (g *CardGroup) Add(id CardID) *Card {
	c := NewCard(g, Pos(0, 0))
	c.SetID(id)
	g.cards = append(g.cards, c)
	g.NeedsRefresh = true
	return c
}

// SetAutoscale toggles automatic scale selection.
func (g *CardGroup) SetAutoscale(v bool) { setCached(&g.WidgetBase, &g.autoscale, v) }

// SetMaxWidth bounds the row width; 0 falls back to the group's own width.
func (g *CardGroup) SetMaxWidth(wd int) { setCached(&g.WidgetBase, &g.maxWidth, wd) }

// SetScale sets the explicit scale (autoscaling off) or the floor scale
// (autoscaling on).
func (g *CardGroup) SetScale(s Scale) { setCached(&g.WidgetBase, &g.scale, s) }

// Refresh picks the scale and lays the cards out left to right.
//
// Autoscaling walks the levels from largest to smallest: a level is chosen
// when the row's total width at that level is strictly less than the
// available width. The group's own scale is the floor; if nothing above it
// fits, the floor is used anyway.
func (g *CardGroup) Refresh(r Renderer) {
	if len(g.cards) == 0 {
		return
	}

	width := g.maxWidth
	if width == 0 {
		width = g.box.Size.Wd
	}

	s := g.scale
	if g.autoscale {
		s = Scale(NumScales - 1)
		for s != g.scale {
			wd := len(g.cards)*CardSizes[s].Wd + (len(g.cards)-1)*CardGaps[s]
			if wd < width {
				break
			}
			s--
		}
	}

	x := 0
	for _, c := range g.cards {
		c.SetScale(s)
		c.Pos = VCenter(x)
		x += CardSizes[s].Wd + CardGaps[s]
	}

	sz := Size{x - CardGaps[s], CardSizes[s].Ht}
	g.SetBoundingBox(g.Pos.Relative(g.parentBox(), sz), sz)
	for _, c := range g.cards {
		c.Refresh(r)
	}
}

func (g *CardGroup) Draw(r Renderer) {
	for _, c := range g.cards {
		c.Draw(r)
	}
}
