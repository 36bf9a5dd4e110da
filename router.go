package press

import "github.com/grindlemire/go-press/pkg/debug"

// The router is the single input entry point: one delegated click
// listener and one delegated key listener on the root, both revoked
// atomically at teardown. Capability handlers run in a fixed order:
// toggle → loading → auto-disable → dropdown → expand. Split primary
// forwarding runs last; it is glue, not a state machine.

// bindInput registers the delegated listeners on the root.
func (c *Controller) bindInput() {
	c.unbindClick = c.root.OnClick(c.handleClick)
	c.unbindKey = c.root.OnKey(c.handleKey)
}

// unbindInput revokes both subscriptions. Safe to call twice.
func (c *Controller) unbindInput() {
	if c.unbindClick != nil {
		c.unbindClick()
		c.unbindClick = nil
	}
	if c.unbindKey != nil {
		c.unbindKey()
		c.unbindKey = nil
	}
}

// handleClick classifies a click and dispatches to the behavior handlers.
func (c *Controller) handleClick(ev *ClickEvent) {
	// Outside-click dismissal runs before anything else, even when the
	// click lands on a widget of its own.
	if ev.Target == nil {
		c.closeAll()
		return
	}
	if ev.Target.Closest(func(n *Widget) bool { return n.HasAttr(AttrDropdown) }) == nil {
		c.closeAll()
	}

	w := ev.Target.Closest(func(n *Widget) bool { return capsOf(n).any() })
	if w == nil {
		return
	}

	if w.Disabled() || boolAttr(w, AttrDisabled) {
		ev.PreventDefault()
		ev.StopPropagation()
		return
	}

	caps := capsOf(w)
	debug.Log("router: click on widget caps=%+v", caps)
	if caps.toggle {
		c.Toggle(w)
	}
	if caps.loading {
		c.loadingFromClick(w, ev)
	}
	if caps.autoDisable {
		c.autoDisableFromClick(w)
	}
	if caps.dropdown {
		c.dropdownFromClick(w, ev)
	}
	if caps.expand {
		c.toggleExpand(w)
	}
	if caps.split {
		c.primaryAction(w, ev)
	}
}

// handleKey routes a key press. Keys inside a dropdown belong entirely to
// the dropdown keyboard machine; outside one, the router only keeps Space
// from scrolling the page when a toggle widget is focused.
func (c *Controller) handleKey(ev *KeyEvent) {
	if ev.Target == nil {
		return
	}
	if d, ok := resolveDropdown(ev.Target); ok {
		c.dropdownKeydown(d, ev)
		return
	}
	if isSpace(ev) && ev.Target.HasAttr(AttrToggle) {
		ev.PreventDefault()
	}
}
