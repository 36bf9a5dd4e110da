package press

import "testing"

func TestEvents_BubbleOrder(t *testing.T) {
	root := NewWidget()
	mid := NewWidget()
	leaf := NewWidget()
	root.AddChild(mid)
	mid.AddChild(leaf)

	var order []string
	leaf.Listen(func(ev Event) bool { order = append(order, "leaf"); return false })
	mid.Listen(func(ev Event) bool { order = append(order, "mid"); return false })
	root.Listen(func(ev Event) bool { order = append(order, "root"); return false })

	emit(leaf, ToggleEvent{Widget: leaf, Pressed: true})

	want := []string{"leaf", "mid", "root"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEvents_CancelStopsBubbling(t *testing.T) {
	root := NewWidget()
	mid := NewWidget()
	root.AddChild(mid)

	rootSaw := false
	mid.Listen(func(ev Event) bool { return true })
	root.Listen(func(ev Event) bool { rootSaw = true; return false })

	canceled := emit(mid, ToggleEvent{Widget: mid, Pressed: true})

	if !canceled {
		t.Error("emit should report cancellation")
	}
	if rootSaw {
		t.Error("canceled event must not reach higher listeners")
	}
}

func TestEvents_ListenerRemoval(t *testing.T) {
	root := NewWidget()

	calls := 0
	remove := root.Listen(func(ev Event) bool { calls++; return false })

	emit(root, ToggleEvent{Widget: root, Pressed: true})
	remove()
	emit(root, ToggleEvent{Widget: root, Pressed: false})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestEvents_Targets(t *testing.T) {
	w := NewWidget()
	item := NewWidget()
	click := &ClickEvent{Target: w}

	tests := map[string]struct {
		ev   Event
		want *Widget
	}{
		"toggle":           {ev: ToggleEvent{Widget: w, Pressed: true}, want: w},
		"loading complete": {ev: LoadingCompleteEvent{Widget: w}, want: w},
		"select":           {ev: SelectEvent{Dropdown: w, Value: "v", Item: item}, want: w},
		"expand":           {ev: ExpandEvent{Widget: w, Expanded: true}, want: w},
		"primary action":   {ev: PrimaryActionEvent{Widget: w, Click: click}, want: w},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if tc.ev.Target() != tc.want {
				t.Error("wrong event target")
			}
		})
	}
}
