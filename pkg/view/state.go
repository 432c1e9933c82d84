package view

import "github.com/matzehuels/gatexray/pkg/circuit"

// State is the per-operator display flag. It starts Compact.
type State struct {
	custom bool
	mode   Mode
}

// NewState returns the initial state for op.
func NewState(op circuit.Operator) *State {
	return &State{custom: op.Explodable()}
}

// Mode returns the current mode.
func (s *State) Mode() Mode { return s.mode }

// Toggle flips the mode and reports whether it changed. Operators without
// an internal grid stay Compact.
func (s *State) Toggle() bool {
	if !s.custom {
		return false
	}
	s.mode = s.mode.Next()
	return true
}

// Set forces the mode, with the same restriction as Toggle.
func (s *State) Set(m Mode) bool {
	if !s.custom && m != Compact {
		return false
	}
	changed := s.mode != m
	s.mode = m
	return changed
}

// Event is a pointer-style input event that can be consumed by the first
// control that handles it.
type Event struct {
	stopped bool
}

// Stop marks the event as handled; containers must not act on it.
func (e *Event) Stop() { e.stopped = true }

// Stopped reports whether a control consumed the event.
func (e *Event) Stopped() bool { return e != nil && e.stopped }

// ToggleLabel is the accessible name of the toggle control.
const ToggleLabel = "Toggle X-Ray Mode"

// Toggle is the small eye button shown on custom operators.
type Toggle struct {
	state *State
}

// NewToggle returns the control for state, or nil when the operator has no
// exploded view to switch to.
func NewToggle(state *State) *Toggle {
	if state == nil || !state.custom {
		return nil
	}
	return &Toggle{state: state}
}

// HandleClick flips the mode and consumes ev.
func (t *Toggle) HandleClick(ev *Event) bool {
	if t == nil {
		return false
	}
	if ev != nil {
		ev.Stop()
	}
	return t.state.Toggle()
}

// Visible reports whether the button is drawn. In compact mode it only
// shows while the operator is hovered.
func (t *Toggle) Visible(hover bool) bool {
	if t == nil {
		return false
	}
	return hover || t.state.mode == Exploded
}

// Active reports whether the exploded view is showing.
func (t *Toggle) Active() bool {
	return t != nil && t.state.mode == Exploded
}
