package press

// Key represents a keyboard key the behavior layer routes on.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab

	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// ClickEvent is a pointer activation delivered to a widget and bubbled
// to the root. The controller's delegated handler runs at the root.
type ClickEvent struct {
	// Target is the widget the click landed on.
	Target *Widget

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event so the host skips its native action.
func (e *ClickEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether the native action was suppressed.
func (e *ClickEvent) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents any remaining listeners from seeing the event.
func (e *ClickEvent) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was halted.
func (e *ClickEvent) Stopped() bool { return e.stopped }

// KeyEvent is a key press delivered to a widget and bubbled to the root.
type KeyEvent struct {
	// Key is the logical key. Printable characters use KeyRune + Rune.
	Key  Key
	Rune rune

	// Target is the widget that had focus when the key was pressed.
	Target *Widget

	defaultPrevented bool
	stopped          bool
}

// PreventDefault marks the event so the host skips its native action
// (scrolling on Space, focus advance on Tab, and so on).
func (e *KeyEvent) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether the native action was suppressed.
func (e *KeyEvent) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents any remaining listeners from seeing the event.
func (e *KeyEvent) StopPropagation() { e.stopped = true }

// Stopped reports whether propagation was halted.
func (e *KeyEvent) Stopped() bool { return e.stopped }

// isSpace reports whether the event is the space bar. Space is a rune,
// not a named key.
func isSpace(e *KeyEvent) bool {
	return e.Key == KeyRune && e.Rune == ' '
}

// inputListener pairs a handler with an active flag so removal is safe
// while a dispatch is in flight.
type inputListener[E any] struct {
	fn     func(E)
	active bool
}

// OnClick registers a click listener on w. Clicks on w or any descendant
// reach the listener as they bubble. Returns a removal handle.
func (w *Widget) OnClick(fn func(*ClickEvent)) func() {
	l := &inputListener[*ClickEvent]{fn: fn, active: true}
	w.clickListeners = append(w.clickListeners, l)
	return func() { l.active = false }
}

// OnKey registers a key listener on w, with the same bubbling and removal
// contract as OnClick.
func (w *Widget) OnKey(fn func(*KeyEvent)) func() {
	l := &inputListener[*KeyEvent]{fn: fn, active: true}
	w.keyListeners = append(w.keyListeners, l)
	return func() { l.active = false }
}

// Click delivers a pointer activation on w. The event bubbles from w to
// the root, stopping early if a listener calls StopPropagation. The
// returned event carries the suppression flags for the host to inspect.
func (w *Widget) Click() *ClickEvent {
	ev := &ClickEvent{Target: w}
	for n := w; n != nil && !ev.stopped; n = n.parent {
		for _, l := range append([]*inputListener[*ClickEvent](nil), n.clickListeners...) {
			if !l.active {
				continue
			}
			l.fn(ev)
			if ev.stopped {
				break
			}
		}
	}
	return ev
}

// Keydown delivers a key press on w with the same bubbling contract as
// Click.
func (w *Widget) Keydown(key Key, r rune) *KeyEvent {
	ev := &KeyEvent{Key: key, Rune: r, Target: w}
	for n := w; n != nil && !ev.stopped; n = n.parent {
		for _, l := range append([]*inputListener[*KeyEvent](nil), n.keyListeners...) {
			if !l.active {
				continue
			}
			l.fn(ev)
			if ev.stopped {
				break
			}
		}
	}
	return ev
}
