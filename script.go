package tableau

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in a JSON input script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Button string `json:"button,omitempty"`
	Key    string `json:"key,omitempty"`
	Mods   string `json:"mods,omitempty"`
	Text   string `json:"text,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// inputScript is the top-level JSON structure.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptedSource is an EventSource that replays a JSON script, one step per
// poll. It drives automated UI tests without a window system: each "click",
// "key", or "text" step becomes the corresponding events on the next tick,
// "move" repositions the virtual mouse, "wait" consumes idle ticks, and
// "quit" ends the loop. The source records text-input capture transitions
// and WaitEvent timeouts for assertions.
type ScriptedSource struct {
	steps  []scriptStep
	cursor int
	ticks  int // remaining wait ticks

	mouse Point

	// Captures records every StartTextInput (true) / StopTextInput (false)
	// transition in order.
	Captures []bool

	// Waits records the timeout passed to each WaitEvent call.
	Waits []time.Duration
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*ScriptedSource, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &ScriptedSource{steps: script.Steps}, nil
}

// Done reports whether the script has been fully replayed.
func (s *ScriptedSource) Done() bool {
	return s.ticks == 0 && s.cursor >= len(s.steps)
}

// PollEvents executes the next step and returns its events.
func (s *ScriptedSource) PollEvents() []Event {
	if s.ticks > 0 {
		s.ticks--
		return nil
	}

	var out []Event
	for s.cursor < len(s.steps) {
		st := s.steps[s.cursor]
		s.cursor++

		switch st.Action {
		case "move":
			s.mouse = Point{st.X, st.Y}
			return out
		case "click":
			s.mouse = Point{st.X, st.Y}
			out = append(out, Event{Kind: EventMouseDown, Button: scriptButton(st.Button)})
			return out
		case "key":
			out = append(out, Event{Kind: EventKeyDown, Key: scriptKey(st.Key), Mods: scriptMods(st.Mods)})
			return out
		case "text":
			out = append(out, Event{Kind: EventText, Text: st.Text})
			return out
		case "wait":
			if st.Ticks > 1 {
				s.ticks = st.Ticks - 1 // this poll counts as one
			}
			return out
		case "quit":
			out = append(out, Event{Kind: EventQuit})
			return out
		default:
			// Unknown steps are skipped so scripts stay forward compatible.
		}
	}
	return out
}

func (s *ScriptedSource) MousePosition() Point { return s.mouse }

func (s *ScriptedSource) WaitEvent(timeout time.Duration) {
	s.Waits = append(s.Waits, timeout)
}

func (s *ScriptedSource) StartTextInput() { s.Captures = append(s.Captures, true) }
func (s *ScriptedSource) StopTextInput()  { s.Captures = append(s.Captures, false) }

func (s *ScriptedSource) ClipboardText() string { return "" }

func scriptButton(name string) MouseButton {
	switch name {
	case "", "left":
		return MouseLeft
	case "right":
		return MouseRight
	case "middle":
		return MouseMiddle
	}
	return MouseLeft
}

func scriptKey(name string) Key {
	switch name {
	case "backspace":
		return KeyBackspace
	case "delete":
		return KeyDelete
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	case "insert":
		return KeyInsert
	case "enter":
		return KeyEnter
	case "escape":
		return KeyEscape
	case "tab":
		return KeyTab
	case "v":
		return KeyV
	}
	return KeyUnknown
}

func scriptMods(spec string) KeyMod {
	var m KeyMod
	for _, c := range spec {
		switch c {
		case 'c':
			m |= ModCtrl
		case 's':
			m |= ModShift
		case 'a':
			m |= ModAlt
		}
	}
	return m
}
