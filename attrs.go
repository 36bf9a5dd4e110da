package press

// Attribute names read by the controller. The host authors these on its
// widgets; the controller only ever mutates the state attributes
// (pressed, expanded, busy, hidden, menu position).
const (
	// AttrID addresses a widget for target references.
	AttrID = "id"

	// Toggle behavior.
	AttrToggle      = "data-toggle"
	AttrToggleGroup = "data-toggle-group"

	// Loading behavior.
	AttrLoading         = "data-loading"
	AttrLoadingText     = "data-loading-text"
	AttrLoadingDuration = "data-loading-duration"

	// Auto-disable behavior.
	AttrAutoDisable     = "data-auto-disable"
	AttrDisableDuration = "data-disable-duration"

	// Dropdown structure.
	AttrDropdown        = "data-dropdown"
	AttrDropdownTrigger = "data-dropdown-trigger"
	AttrDropdownMenu    = "data-dropdown-menu"
	AttrDropdownItem    = "data-dropdown-item"
	AttrValue           = "data-value"

	// Expand/collapse behavior. AttrTarget references the collapsible
	// region by its AttrID value.
	AttrExpand = "data-expand"
	AttrTarget = "data-target"

	// Split button main part.
	AttrSplitPrimary = "data-split-primary"
)

// State attributes written by the controller.
const (
	AttrPressed      = "aria-pressed"
	AttrExpanded     = "aria-expanded"
	AttrBusy         = "aria-busy"
	AttrLive         = "aria-live"
	AttrDisabled     = "data-disabled"
	AttrHidden       = "data-hidden"
	AttrMenuPosition = "data-menu-position"
)

// Values for AttrMenuPosition. Empty (attribute absent) means the menu
// stays at its default placement below the trigger's leading edge.
const (
	MenuPositionStart    = "start"
	MenuPositionTop      = "top"
	MenuPositionStartTop = "start top"
)

// setBoolAttr writes "true"/"false" for the given state attribute.
func setBoolAttr(w *Widget, name string, v bool) {
	if v {
		w.SetAttr(name, "true")
	} else {
		w.SetAttr(name, "false")
	}
}

// boolAttr reads a "true"/"false" state attribute. Absent means false.
func boolAttr(w *Widget, name string) bool {
	return w.Attr(name) == "true"
}
