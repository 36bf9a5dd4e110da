package press

import "regexp"

// Toggle group names are restricted to identifier characters. Anything
// else is ignored outright: group names flow into membership lookups, and
// the whitelist is the boundary against selector injection.
var groupNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func validGroupName(name string) bool {
	return groupNameRe.MatchString(name)
}

// Toggle flips the pressed state of w, or activates it within its toggle
// group. After a group toggle exactly one member is pressed. A nil widget
// or an invalid group name is a no-op. Emits a ToggleEvent with the
// resulting state.
func (c *Controller) Toggle(w *Widget) {
	if w == nil {
		return
	}
	if group := w.Attr(AttrToggleGroup); group != "" {
		if !validGroupName(group) {
			return
		}
		c.activateInGroup(group, w)
		return
	}
	c.applyPressed(w, !boolAttr(w, AttrPressed))
}

// SetPressed is an unconditional external override of pressed state.
// Returns ErrInvalidWidget for a nil handle.
func (c *Controller) SetPressed(w *Widget, pressed bool) error {
	if w == nil {
		return ErrInvalidWidget
	}
	c.applyPressed(w, pressed)
	return nil
}

// SetGroupValue makes active the single pressed member of the named
// group. Invalid group names and nil or non-member widgets are no-ops.
func (c *Controller) SetGroupValue(group string, active *Widget) {
	if active == nil || !validGroupName(group) {
		return
	}
	if active.Attr(AttrToggleGroup) != group {
		return
	}
	c.activateInGroup(group, active)
}

// groupMembers looks up membership by attribute match. Membership is
// computed on demand, never cached.
func (c *Controller) groupMembers(group string) []*Widget {
	return c.root.FindAll(func(n *Widget) bool {
		return n.Attr(AttrToggleGroup) == group
	})
}

// activateInGroup presses active and releases every other group member
// synchronously, so mutual exclusion holds before the operation returns.
func (c *Controller) activateInGroup(group string, active *Widget) {
	for _, m := range c.groupMembers(group) {
		if m == active {
			continue
		}
		setBoolAttr(m, AttrPressed, false)
	}
	c.applyPressed(active, true)
}

func (c *Controller) applyPressed(w *Widget, pressed bool) {
	setBoolAttr(w, AttrPressed, pressed)
	emit(w, ToggleEvent{Widget: w, Pressed: pressed})
}
