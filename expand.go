package press

// toggleExpand flips the expanded state of an expand/collapse trigger and
// mirrors it onto the referenced target region: expanded shows the
// target, collapsed hides it. A missing or dangling target reference
// still toggles the trigger itself.
func (c *Controller) toggleExpand(w *Widget) {
	expanded := !boolAttr(w, AttrExpanded)
	setBoolAttr(w, AttrExpanded, expanded)

	if target := c.root.ByID(w.Attr(AttrTarget)); target != nil {
		if expanded {
			target.RemoveAttr(AttrHidden)
		} else {
			target.SetAttr(AttrHidden, "true")
		}
	}

	emit(w, ExpandEvent{Widget: w, Expanded: expanded})
}
