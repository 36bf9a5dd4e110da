package press

// primaryAction forwards a split button's main-part click as a domain
// event so hosts listen for one event instead of wiring per-button click
// handlers.
func (c *Controller) primaryAction(w *Widget, ev *ClickEvent) {
	emit(w, PrimaryActionEvent{Widget: w, Click: ev})
}
