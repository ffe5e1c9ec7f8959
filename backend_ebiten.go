package tableau

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// EbitenRenderer implements Renderer on an Ebitengine frame. The engine's
// bottom-left-origin coordinates are flipped to Ebitengine's top-left space
// at the draw-call boundary; nothing above this file knows about the flip.
type EbitenRenderer struct {
	dst  *ebiten.Image
	size Size

	fontSource *text.GoTextFaceSource

	// frames drives the caret blink phase.
	frames int

	cursor Cursor
}

// NewEbitenRenderer returns a renderer shaping text with the bundled Go
// font.
func NewEbitenRenderer() (*EbitenRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &EbitenRenderer{fontSource: src}, nil
}

func (r *EbitenRenderer) face(size FontSize) *text.GoTextFace {
	return &text.GoTextFace{Source: r.fontSource, Size: float64(size)}
}

// flipY converts a bottom-left-origin y to Ebitengine's top-left origin.
func (r *EbitenRenderer) flipY(y int) float32 {
	return float32(r.size.Ht - y)
}

func (r *EbitenRenderer) Size() Size { return r.size }

func (r *EbitenRenderer) DrawRect(box AABB, c Colour) {
	vector.DrawFilledRect(
		r.dst,
		float32(box.Origin.X),
		r.flipY(box.Origin.Y+box.Size.Ht),
		float32(box.Size.Wd),
		float32(box.Size.Ht),
		rgba(c),
		false,
	)
}

func (r *EbitenRenderer) DrawOutlineRect(box AABB, thickness int, c Colour) {
	// Expand outward so the outline hugs the box without covering it.
	th := float32(thickness)
	vector.StrokeRect(
		r.dst,
		float32(box.Origin.X)-th/2,
		r.flipY(box.Origin.Y+box.Size.Ht)-th/2,
		float32(box.Size.Wd)+th,
		float32(box.Size.Ht)+th,
		th,
		rgba(c),
		false,
	)
}

func (r *EbitenRenderer) DrawLine(from, to Point, thickness int, c Colour) {
	vector.StrokeLine(
		r.dst,
		float32(from.X), r.flipY(from.Y),
		float32(to.X), r.flipY(to.Y),
		float32(thickness),
		rgba(c),
		false,
	)
}

func (r *EbitenRenderer) DrawText(t *ShapedText, at Point, c Colour) {
	if t.Empty() {
		return
	}
	face := r.face(t.Size)
	op := &text.DrawOptions{}
	op.LineSpacing = face.Metrics().HAscent + face.Metrics().HDescent
	// at is the baseline origin; text.Draw positions the layout box's
	// top-left corner.
	op.GeoM.Translate(float64(at.X), float64(r.flipY(at.Y+t.Height)))
	op.ColorScale.ScaleWithColor(rgba(c))
	text.Draw(r.dst, t.Text, face, op)
}

// MakeText shapes a string, deriving the cluster table from the glyph run.
// Byte indices reported by the shaper are converted to rune indices; only
// the first glyph of each cluster contributes an entry.
func (r *EbitenRenderer) MakeText(s string, size FontSize, style TextStyle, align TextAlign, wrapWidth int) *ShapedText {
	face := r.face(size)

	if align != AlignSingleLine && wrapWidth > 0 {
		s = wrapText(s, face, wrapWidth)
	}

	lineSpacing := face.Metrics().HAscent + face.Metrics().HDescent
	w, h := text.Measure(s, face, lineSpacing)

	t := &ShapedText{
		Text:   s,
		Size:   size,
		Style:  style,
		Width:  int(math.Ceil(w)),
		Height: int(math.Ceil(face.Metrics().HAscent)),
		Depth:  int(math.Ceil(h - face.Metrics().HAscent)),
	}

	glyphs := text.AppendGlyphs(nil, s, face, nil)
	lastStart := -1
	for _, g := range glyphs {
		if g.StartIndexInBytes == lastStart {
			continue
		}
		lastStart = g.StartIndexInBytes
		t.Clusters = append(t.Clusters, Cluster{
			Index: utf8.RuneCountInString(s[:g.StartIndexInBytes]),
			XOffs: int(g.X),
		})
	}
	return t
}

func (r *EbitenRenderer) Strut(t *ShapedText) (ascent, descent int) {
	m := r.face(t.Size).Metrics()
	return int(math.Ceil(m.HAscent)), int(math.Ceil(m.HDescent))
}

func (r *EbitenRenderer) SetCursor(c Cursor) {
	if r.cursor == c {
		return
	}
	r.cursor = c
	switch c {
	case CursorIBeam:
		ebiten.SetCursorShape(ebiten.CursorShapeText)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// BlinkCursor toggles roughly twice a second at 60 ticks per second.
func (r *EbitenRenderer) BlinkCursor() bool {
	return (r.frames/30)%2 == 0
}

func rgba(c Colour) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

// wrapText breaks s into lines no wider than wrapWidth using a greedy
// word-by-word fill.
func wrapText(s string, face text.Face, wrapWidth int) string {
	var out bytes.Buffer
	lineWd := 0.0
	spaceWd := text.Advance(" ", face)

	for i, word := range splitWords(s) {
		wd := text.Advance(word, face)
		switch {
		case i == 0:
			out.WriteString(word)
			lineWd = wd
		case lineWd+spaceWd+wd > float64(wrapWidth):
			out.WriteByte('\n')
			out.WriteString(word)
			lineWd = wd
		default:
			out.WriteByte(' ')
			out.WriteString(word)
			lineWd += spaceWd + wd
		}
	}
	return out.String()
}

func splitWords(s string) []string {
	var words []string
	start := -1
	for i, c := range s {
		if c == ' ' || c == '\n' || c == '\t' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// EbitenSource implements EventSource over Ebitengine's polled input. The
// just-pressed queries give one event per press, which is the debouncing
// the snapshot wants.
type EbitenSource struct{}

func (s *EbitenSource) PollEvents() []Event {
	var out []Event

	if ebiten.IsWindowBeingClosed() {
		out = append(out, Event{Kind: EventQuit})
	}

	for _, b := range [...]struct {
		eb  ebiten.MouseButton
		btn MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseLeft},
		{ebiten.MouseButtonRight, MouseRight},
		{ebiten.MouseButtonMiddle, MouseMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			out = append(out, Event{Kind: EventMouseDown, Button: b.btn})
		}
	}

	mods := currentMods()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		key := translateKey(k)
		if key == KeyUnknown {
			continue
		}
		out = append(out, Event{Kind: EventKeyDown, Key: key, Mods: mods})
	}

	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		out = append(out, Event{Kind: EventText, Text: string(chars)})
	}

	return out
}

func (s *EbitenSource) MousePosition() Point {
	x, y := ebiten.CursorPosition()
	return Point{x, y}
}

// WaitEvent is a no-op: Ebitengine schedules ticks itself, so there is no
// blocking wait to perform between them.
func (s *EbitenSource) WaitEvent(timeout time.Duration) {}

// Text input is always delivered through AppendInputChars; there is no
// OS-level capture to toggle.
func (s *EbitenSource) StartTextInput() {}
func (s *EbitenSource) StopTextInput()  {}

func (s *EbitenSource) ClipboardText() string { return "" }

func currentMods() KeyMod {
	var m KeyMod
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ModAlt
	}
	return m
}

func translateKey(k ebiten.Key) Key {
	switch k {
	case ebiten.KeyBackspace:
		return KeyBackspace
	case ebiten.KeyDelete:
		return KeyDelete
	case ebiten.KeyArrowLeft:
		return KeyLeft
	case ebiten.KeyArrowRight:
		return KeyRight
	case ebiten.KeyArrowUp:
		return KeyUp
	case ebiten.KeyArrowDown:
		return KeyDown
	case ebiten.KeyHome:
		return KeyHome
	case ebiten.KeyEnd:
		return KeyEnd
	case ebiten.KeyInsert:
		return KeyInsert
	case ebiten.KeyEnter:
		return KeyEnter
	case ebiten.KeyEscape:
		return KeyEscape
	case ebiten.KeyTab:
		return KeyTab
	case ebiten.KeyV:
		return KeyV
	}
	return KeyUnknown
}

// App drives the engine from Ebitengine's fixed 60 TPS scheduler instead of
// the blocking GameLoop; the per-tick protocol (poll, tick, refresh) is the
// same, with the frame budget enforced by measurement rather than by
// sleeping.
type App struct {
	renderer *EbitenRenderer
	source   *EbitenSource
	input    *InputSystem
	screen   *Screen

	// ShowFPS overlays frame statistics in the top-left corner.
	ShowFPS bool

	overruns   int
	lastTickMs float64
}

// NewApp returns an app showing the given screen.
func NewApp(screen *Screen) (*App, error) {
	r, err := NewEbitenRenderer()
	if err != nil {
		return nil, err
	}
	a := &App{
		renderer: r,
		source:   &EbitenSource{},
		screen:   screen,
	}
	a.input = NewInputSystem(a.source, a.renderer)
	a.input.OnOverrun = func(took time.Duration) {
		a.overruns++
		_, _ = fmt.Fprintf(os.Stderr, "[tableau] tick took too long: %v\n", took)
	}
	screen.Enter()
	return a, nil
}

// SetScreen switches the active screen, firing its enter hook.
func (a *App) SetScreen(s *Screen) {
	a.screen = s
	s.Enter()
}

// Screen returns the active screen.
func (a *App) Screen() *Screen { return a.screen }

// Input returns the app's input system.
func (a *App) Input() *InputSystem { return a.input }

// Update runs one tick: build the input snapshot, run the interaction
// protocol, and relayout dirty widgets. Implements ebiten.Game.
func (a *App) Update() error {
	start := time.Now()

	a.input.ProcessEvents()
	if a.input.Quit {
		return ebiten.Termination
	}

	a.screen.Tick(a.input)
	a.screen.Refresh(a.renderer)

	took := time.Since(start)
	a.lastTickMs = float64(took.Microseconds()) / 1000
	if took >= TickDuration && a.input.OnOverrun != nil {
		a.input.OnOverrun(took)
	}
	return nil
}

// Draw renders the active screen. Implements ebiten.Game.
func (a *App) Draw(dst *ebiten.Image) {
	a.renderer.dst = dst
	a.renderer.frames++
	a.screen.Draw(a.renderer)

	if a.ShowFPS {
		ebitenutil.DebugPrint(dst, fmt.Sprintf(
			"FPS: %.1f\nTPS: %.1f\ntick: %.2fms\noverruns: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), a.lastTickMs, a.overruns,
		))
	}
}

// Layout reports the drawable size. Implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.renderer.size = Size{outsideWidth, outsideHeight}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the app quits.
func (a *App) Run(cfg Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// Run shows the screen in a window and blocks until quit.
func Run(cfg Config, screen *Screen) error {
	app, err := NewApp(screen)
	if err != nil {
		return err
	}
	app.ShowFPS = cfg.Debug
	return app.Run(cfg)
}
