package tableau

import (
	"fmt"
	"os"
	"time"
)

// TickDuration is the fixed budget of one input/update step.
const TickDuration = 16 * time.Millisecond

// EventKind discriminates the flat Event struct.
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventMouseDown
	EventKeyDown
	EventText
)

// MouseButton identifies a mouse button in a mouse-down event.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Key identifies a keyboard key in a key-down event. Only the keys the
// built-in widgets react to are named; backends may pass others through
// with values of their own.
type Key int

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyEnter
	KeyEscape
	KeyTab
	KeyV
)

// KeyMod is a bitmask of modifier keys held during a key-down event.
type KeyMod uint8

const (
	ModShift KeyMod = 1 << iota
	ModCtrl
	ModAlt
)

// Event is one OS event, normalized to a flat struct. Only the fields
// relevant to the Kind are set.
type Event struct {
	Kind   EventKind
	Button MouseButton // EventMouseDown
	Key    Key         // EventKeyDown
	Mods   KeyMod      // EventKeyDown
	Text   string      // EventText; UTF-8, may hold several characters
}

// KeyEvent is a key press recorded in a tick's snapshot.
type KeyEvent struct {
	Key  Key
	Mods KeyMod
}

// MouseState is the per-tick mouse snapshot. Button fields are debounced:
// any number of down events for a button within one poll collapse to true.
type MouseState struct {
	Pos    Point
	Left   bool
	Right  bool
	Middle bool
}

// EventSource is the engine's window-system backend: it produces events,
// reports the raw mouse position, blocks the loop between ticks, and owns
// OS-level text-input capture.
type EventSource interface {
	// PollEvents drains and returns all pending events.
	PollEvents() []Event

	// MousePosition returns the raw cursor position in the backend's
	// native top-left-origin space.
	MousePosition() Point

	// WaitEvent blocks until an event arrives or the timeout elapses.
	WaitEvent(timeout time.Duration)

	StartTextInput()
	StopTextInput()

	// ClipboardText returns the system clipboard's text, or "".
	ClipboardText() string
}

// InputSystem turns the backend's event stream into the per-tick snapshot
// widgets consume, and runs the fixed-budget game loop.
type InputSystem struct {
	Mouse     MouseState
	KeyEvents []KeyEvent
	TextInput []rune
	Quit      bool

	// OnOverrun is called with the measured duration when a tick exceeds
	// its budget. Defaults to a stderr log line.
	OnOverrun func(took time.Duration)

	src         EventSource
	renderer    Renderer
	wasSelected bool
}

// NewInputSystem returns an input system reading from src. The renderer is
// needed to flip the mouse position into the bottom-left-origin space.
func NewInputSystem(src EventSource, r Renderer) *InputSystem {
	if src == nil {
		panic("tableau: nil event source")
	}
	if r == nil {
		panic("tableau: nil renderer")
	}
	return &InputSystem{
		OnOverrun: func(took time.Duration) {
			_, _ = fmt.Fprintf(os.Stderr, "[tableau] tick took too long: %v\n", took)
		},
		src:      src,
		renderer: r,
	}
}

// Source returns the underlying event source.
func (in *InputSystem) Source() EventSource { return in.src }

// ProcessEvents builds the snapshot for the coming tick: previous keyboard
// and text state is discarded, pending events are folded in, and the mouse
// position is sampled exactly once. The position is read after the fold so
// a source that moves the cursor while delivering a click reports both from
// the same instant.
func (in *InputSystem) ProcessEvents() {
	in.KeyEvents = in.KeyEvents[:0]
	in.TextInput = in.TextInput[:0]
	in.Mouse = MouseState{}

	for _, ev := range in.src.PollEvents() {
		switch ev.Kind {
		case EventQuit:
			in.Quit = true
		case EventMouseDown:
			switch ev.Button {
			case MouseLeft:
				in.Mouse.Left = true
			case MouseRight:
				in.Mouse.Right = true
			case MouseMiddle:
				in.Mouse.Middle = true
			}
		case EventKeyDown:
			in.KeyEvents = append(in.KeyEvents, KeyEvent{ev.Key, ev.Mods})
		case EventText:
			in.TextInput = append(in.TextInput, []rune(ev.Text)...)
		}
	}

	raw := in.src.MousePosition()
	in.Mouse.Pos = Point{raw.X, in.renderer.Size().Ht - raw.Y}
}

// UpdateSelection tells the input system whether any widget holds the
// selection. OS text-input capture starts and stops only when the state
// actually changes.
func (in *InputSystem) UpdateSelection(selected bool) {
	if selected == in.wasSelected {
		return
	}
	in.wasSelected = selected
	if selected {
		in.src.StartTextInput()
	} else {
		in.src.StopTextInput()
	}
}

// GameLoop runs tick at the fixed budget until the quit flag is raised.
// Time left over after a tick is spent blocked in WaitEvent, so the loop
// wakes early when input arrives. A tick that exceeds the budget is
// reported and the next one starts immediately.
func (in *InputSystem) GameLoop(tick func()) {
	for !in.Quit {
		start := time.Now()
		in.ProcessEvents()
		tick()
		took := time.Since(start)
		if took < TickDuration {
			in.src.WaitEvent(TickDuration - took)
		} else if in.OnOverrun != nil {
			in.OnOverrun(took)
		}
	}
}
