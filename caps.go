package press

// capabilities are the behaviors a widget declares through its
// attributes. A widget may carry several at once; the router invokes the
// matching handlers in a fixed order.
type capabilities struct {
	toggle      bool
	loading     bool
	autoDisable bool
	dropdown    bool
	expand      bool
	split       bool
}

// capsOf computes the capability flags for a widget from its attributes.
// Dropdown membership covers both the trigger and the items, since either
// participates in dropdown click handling.
func capsOf(w *Widget) capabilities {
	return capabilities{
		toggle:      w.HasAttr(AttrToggle),
		loading:     w.HasAttr(AttrLoading),
		autoDisable: w.HasAttr(AttrAutoDisable),
		dropdown:    w.HasAttr(AttrDropdownTrigger) || w.HasAttr(AttrDropdownItem),
		expand:      w.HasAttr(AttrExpand),
		split:       w.HasAttr(AttrSplitPrimary),
	}
}

// any reports whether the widget declares at least one behavior.
func (c capabilities) any() bool {
	return c.toggle || c.loading || c.autoDisable || c.dropdown || c.expand || c.split
}
