package press

// Event is a domain event emitted on a widget. Events bubble from the
// emitting widget to the root. Payloads are closed structs: they carry
// exactly the declared fields and nothing dynamic.
type Event interface {
	// Target returns the widget the event was emitted on.
	Target() *Widget
}

// ToggleEvent fires after a toggle operation with the resulting state.
type ToggleEvent struct {
	Widget  *Widget
	Pressed bool
}

// Target implements Event.
func (e ToggleEvent) Target() *Widget { return e.Widget }

// LoadingCompleteEvent fires when a loading session ends on an attached
// widget, whether by natural expiry or explicit cancellation.
type LoadingCompleteEvent struct {
	Widget *Widget
}

// Target implements Event.
func (e LoadingCompleteEvent) Target() *Widget { return e.Widget }

// SelectEvent fires on the dropdown container when an item is selected.
type SelectEvent struct {
	Dropdown *Widget
	Value    string
	Item     *Widget
}

// Target implements Event.
func (e SelectEvent) Target() *Widget { return e.Dropdown }

// ExpandEvent fires after an expand/collapse toggle.
type ExpandEvent struct {
	Widget   *Widget
	Expanded bool
}

// Target implements Event.
func (e ExpandEvent) Target() *Widget { return e.Widget }

// PrimaryActionEvent fires for a split button's main-part click, carrying
// the original click event.
type PrimaryActionEvent struct {
	Widget *Widget
	Click  *ClickEvent
}

// Target implements Event.
func (e PrimaryActionEvent) Target() *Widget { return e.Widget }

// EventListener observes domain events. Returning true cancels the event:
// no listener higher in the tree sees it.
type EventListener func(Event) bool

type eventListener struct {
	fn     EventListener
	active bool
}

// Listen registers a domain event listener on w. Events emitted on w or
// any descendant reach the listener as they bubble. Returns a removal
// handle; removal is safe during dispatch.
func (w *Widget) Listen(fn EventListener) func() {
	l := &eventListener{fn: fn, active: true}
	w.eventListeners = append(w.eventListeners, l)
	return func() { l.active = false }
}

// emit bubbles ev from its target widget to the root. Returns true if a
// listener canceled the event.
func emit(w *Widget, ev Event) bool {
	for n := w; n != nil; n = n.parent {
		for _, l := range append([]*eventListener(nil), n.eventListeners...) {
			if !l.active {
				continue
			}
			if l.fn(ev) {
				return true
			}
		}
	}
	return false
}
