package press

import "testing"

func TestCapsOf(t *testing.T) {
	tests := map[string]struct {
		opts []WidgetOption
		want capabilities
	}{
		"none": {},
		"toggle": {
			opts: []WidgetOption{WithAttr(AttrToggle, "")},
			want: capabilities{toggle: true},
		},
		"loading": {
			opts: []WidgetOption{WithAttr(AttrLoading, "")},
			want: capabilities{loading: true},
		},
		"auto disable": {
			opts: []WidgetOption{WithAttr(AttrAutoDisable, "")},
			want: capabilities{autoDisable: true},
		},
		"dropdown trigger": {
			opts: []WidgetOption{WithAttr(AttrDropdownTrigger, "")},
			want: capabilities{dropdown: true},
		},
		"dropdown item": {
			opts: []WidgetOption{WithAttr(AttrDropdownItem, "")},
			want: capabilities{dropdown: true},
		},
		"expand": {
			opts: []WidgetOption{WithAttr(AttrExpand, "")},
			want: capabilities{expand: true},
		},
		"split primary": {
			opts: []WidgetOption{WithAttr(AttrSplitPrimary, "")},
			want: capabilities{split: true},
		},
		"stacked": {
			opts: []WidgetOption{WithAttr(AttrToggle, ""), WithAttr(AttrLoading, "")},
			want: capabilities{toggle: true, loading: true},
		},
		"container attrs carry nothing": {
			opts: []WidgetOption{WithAttr(AttrDropdown, ""), WithAttr(AttrDropdownMenu, "")},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := capsOf(NewWidget(tc.opts...))
			if got != tc.want {
				t.Errorf("caps = %+v, want %+v", got, tc.want)
			}
			if got.any() != (tc.want != capabilities{}) {
				t.Errorf("any() = %v", got.any())
			}
		})
	}
}
