package press

import "testing"

func pressedMembers(members []*Widget) []*Widget {
	var pressed []*Widget
	for _, m := range members {
		if boolAttr(m, AttrPressed) {
			pressed = append(pressed, m)
		}
	}
	return pressed
}

func TestToggle_UngroupedFlips(t *testing.T) {
	root := NewWidget()
	btn := NewWidget(WithAttr(AttrToggle, ""))
	root.AddChild(btn)

	c, _ := newTestController(t, root)

	var states []bool
	root.Listen(func(ev Event) bool {
		if e, ok := ev.(ToggleEvent); ok {
			states = append(states, e.Pressed)
		}
		return false
	})

	c.Toggle(btn)
	if btn.Attr(AttrPressed) != "true" {
		t.Errorf("pressed = %q, want true", btn.Attr(AttrPressed))
	}

	c.Toggle(btn)
	if btn.Attr(AttrPressed) != "false" {
		t.Errorf("pressed = %q, want false", btn.Attr(AttrPressed))
	}

	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("toggle event states = %v, want [true false]", states)
	}
}

func TestToggle_GroupExclusivity(t *testing.T) {
	root := NewWidget()
	var members []*Widget
	for i := 0; i < 3; i++ {
		m := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "size"))
		members = append(members, m)
		root.AddChild(m)
	}

	c, _ := newTestController(t, root)

	c.Toggle(members[1])

	pressed := pressedMembers(members)
	if len(pressed) != 1 || pressed[0] != members[1] {
		t.Fatalf("pressed members = %d, want exactly members[1]", len(pressed))
	}
	if boolAttr(members[0], AttrPressed) || boolAttr(members[2], AttrPressed) {
		t.Error("other members should be released")
	}

	c.Toggle(members[2])

	pressed = pressedMembers(members)
	if len(pressed) != 1 || pressed[0] != members[2] {
		t.Fatalf("pressed members = %d, want exactly members[2]", len(pressed))
	}
}

func TestToggle_GroupReclickStaysPressed(t *testing.T) {
	root := NewWidget()
	m := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "size"))
	root.AddChild(m)

	c, _ := newTestController(t, root)

	c.Toggle(m)
	c.Toggle(m)

	if !boolAttr(m, AttrPressed) {
		t.Error("re-toggling the active group member should keep it pressed")
	}
}

func TestToggle_InvalidGroupName(t *testing.T) {
	root := NewWidget()
	m := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "bad name!"))
	root.AddChild(m)

	c, _ := newTestController(t, root)

	events := 0
	root.Listen(func(ev Event) bool {
		if _, ok := ev.(ToggleEvent); ok {
			events++
		}
		return false
	})

	c.Toggle(m)

	if m.HasAttr(AttrPressed) {
		t.Error("invalid group name should block the toggle entirely")
	}
	if events != 0 {
		t.Errorf("events = %d, want 0", events)
	}
}

func TestToggle_NilWidget(t *testing.T) {
	c, _ := newTestController(t, NewWidget())
	c.Toggle(nil)
}

func TestToggle_GroupMembershipNotCached(t *testing.T) {
	root := NewWidget()
	a := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "view"))
	root.AddChild(a)

	c, _ := newTestController(t, root)
	c.Toggle(a)

	// A member added after the first lookup still participates.
	b := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "view"))
	root.AddChild(b)

	c.Toggle(b)

	if boolAttr(a, AttrPressed) {
		t.Error("previously active member should be released")
	}
	if !boolAttr(b, AttrPressed) {
		t.Error("late-added member should be pressed")
	}
}

func TestSetPressed(t *testing.T) {
	root := NewWidget()
	btn := NewWidget(WithAttr(AttrToggle, ""))
	root.AddChild(btn)

	c, _ := newTestController(t, root)

	if err := c.SetPressed(btn, true); err != nil {
		t.Fatalf("SetPressed: %v", err)
	}
	if btn.Attr(AttrPressed) != "true" {
		t.Error("SetPressed should press the widget")
	}

	if err := c.SetPressed(btn, false); err != nil {
		t.Fatalf("SetPressed: %v", err)
	}
	if btn.Attr(AttrPressed) != "false" {
		t.Error("SetPressed should release the widget")
	}

	if err := c.SetPressed(nil, true); err != ErrInvalidWidget {
		t.Errorf("err = %v, want ErrInvalidWidget", err)
	}
}

func TestSetGroupValue(t *testing.T) {
	root := NewWidget()
	a := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "size"))
	b := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "size"))
	outsider := NewWidget(WithAttr(AttrToggle, ""))
	root.AddChild(a, b, outsider)

	c, _ := newTestController(t, root)
	c.Toggle(a)

	c.SetGroupValue("size", b)
	if boolAttr(a, AttrPressed) || !boolAttr(b, AttrPressed) {
		t.Error("SetGroupValue should move the active member to b")
	}

	// Invalid group name changes nothing.
	c.SetGroupValue("a b", b)
	if boolAttr(a, AttrPressed) || !boolAttr(b, AttrPressed) {
		t.Error("invalid group name should be a no-op")
	}

	// Non-member widget changes nothing.
	c.SetGroupValue("size", outsider)
	if outsider.HasAttr(AttrPressed) {
		t.Error("non-member should not be pressed")
	}
	if !boolAttr(b, AttrPressed) {
		t.Error("active member should be untouched")
	}

	c.SetGroupValue("size", nil)
}

func TestToggle_GroupEmitsOneEvent(t *testing.T) {
	root := NewWidget()
	a := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "size"))
	b := NewWidget(WithAttr(AttrToggle, ""), WithAttr(AttrToggleGroup, "size"))
	root.AddChild(a, b)

	c, _ := newTestController(t, root)
	c.Toggle(a)

	var got []ToggleEvent
	remove := root.Listen(func(ev Event) bool {
		if e, ok := ev.(ToggleEvent); ok {
			got = append(got, e)
		}
		return false
	})
	defer remove()

	c.Toggle(b)

	if len(got) != 1 {
		t.Fatalf("events = %d, want 1", len(got))
	}
	if got[0].Widget != b || !got[0].Pressed {
		t.Error("event should carry the newly active member")
	}
}
