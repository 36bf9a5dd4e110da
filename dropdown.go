package press

import (
	"time"

	"github.com/grindlemire/go-press/pkg/debug"
)

// dropdown is the resolved structure of one dropdown widget: the
// container (AttrDropdown), its trigger, and its menu. Resolution is
// recomputed per interaction; a container missing either piece skips
// dropdown handling entirely.
type dropdown struct {
	container *Widget
	trigger   *Widget
	menu      *Widget
}

// itemCacheEntry is a cached menu item list with its query timestamp.
// Entries age out of the freshness window; nothing invalidates them on
// structural mutation, so callers needing guaranteed freshness use
// InvalidateItems.
type itemCacheEntry struct {
	items []*Widget
	at    time.Time
}

// resolveDropdown finds the dropdown w belongs to. Returns false when w
// is outside any dropdown container or the container is structurally
// incomplete.
func resolveDropdown(w *Widget) (*dropdown, bool) {
	container := w.Closest(func(n *Widget) bool { return n.HasAttr(AttrDropdown) })
	if container == nil {
		return nil, false
	}
	trigger := container.Find(func(n *Widget) bool { return n.HasAttr(AttrDropdownTrigger) })
	menu := container.Find(func(n *Widget) bool { return n.HasAttr(AttrDropdownMenu) })
	if trigger == nil || menu == nil {
		return nil, false
	}
	return &dropdown{container: container, trigger: trigger, menu: menu}, true
}

// OpenDropdown opens the dropdown containing w (w may be the container,
// trigger, menu, or any descendant). Any other open dropdown closes
// first. A nil widget or an unresolvable dropdown is a no-op.
func (c *Controller) OpenDropdown(w *Widget) {
	if w == nil {
		return
	}
	if d, ok := resolveDropdown(w); ok {
		c.openDropdown(d)
	}
}

// CloseDropdown closes the dropdown containing w. Closing an already
// closed dropdown is a no-op.
func (c *Controller) CloseDropdown(w *Widget) {
	if w == nil {
		return
	}
	if d, ok := resolveDropdown(w); ok {
		c.closeDropdown(d)
	}
}

// CloseAllDropdowns closes every tracked open dropdown.
func (c *Controller) CloseAllDropdowns() {
	c.closeAll()
}

// IsOpen reports whether the dropdown containing w is open.
func (c *Controller) IsOpen(w *Widget) bool {
	if w == nil {
		return false
	}
	d, ok := resolveDropdown(w)
	if !ok {
		return false
	}
	_, open := c.open[d.container]
	return open
}

// InvalidateItems drops the cached item list for a menu, forcing the next
// lookup to re-query.
func (c *Controller) InvalidateItems(menu *Widget) {
	delete(c.items, menu)
}

// openDropdown transitions Closed → Open. Positioning and initial focus
// are deferred to the next frame so the menu has real layout dimensions
// to measure; each deferred step re-checks that the dropdown is still
// open and attached before touching anything.
func (c *Controller) openDropdown(d *dropdown) {
	if _, open := c.open[d.container]; open {
		return
	}

	// Single-open policy: opening one closes all others, regardless of
	// how the open was triggered.
	c.closeAll()

	d.trigger.SetAttr(AttrExpanded, "true")
	d.container.SetAttr(AttrExpanded, "true")
	c.open[d.container] = d
	debug.Log("dropdown: opened, deferring position+focus to next frame")

	c.sched.PostFrame(func() {
		if c.open[d.container] != d || !c.connected(d.container) {
			return
		}
		c.positionMenu(d)
		// Focus is delayed past positioning so assistive technology
		// registers the expanded state before focus moves.
		c.sched.PostDelayed(c.focusDelay, func() {
			if c.open[d.container] != d || !c.connected(d.container) {
				return
			}
			if items := c.menuItems(d.menu); len(items) > 0 {
				c.setFocus(items[0])
			}
		})
	})
}

// closeDropdown transitions Open → Closed and clears the positioning
// override. Idempotent.
func (c *Controller) closeDropdown(d *dropdown) {
	if _, open := c.open[d.container]; !open {
		return
	}
	delete(c.open, d.container)
	d.trigger.SetAttr(AttrExpanded, "false")
	d.container.SetAttr(AttrExpanded, "false")
	d.menu.RemoveAttr(AttrMenuPosition)
}

// closeAll closes every tracked dropdown that is still attached, and
// clears the tracking set unconditionally so stale handles never
// accumulate.
func (c *Controller) closeAll() {
	for container, d := range c.open {
		if c.connected(container) {
			d.trigger.SetAttr(AttrExpanded, "false")
			d.container.SetAttr(AttrExpanded, "false")
			d.menu.RemoveAttr(AttrMenuPosition)
		}
		delete(c.open, container)
	}
}

// positionMenu recomputes the menu's two-axis position marker from pure
// measurement: reset the override, compare the menu box against the
// viewport, flip to the start edge on trailing overflow and to the top on
// bottom overflow. No position state persists between opens.
func (c *Controller) positionMenu(d *dropdown) {
	d.menu.RemoveAttr(AttrMenuPosition)

	vp := c.viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	mb := d.menu.Bounds()

	var flipStart bool
	if c.rtl {
		flipStart = mb.X < vp.X
	} else {
		flipStart = mb.X+mb.Width > vp.X+vp.Width
	}
	flipTop := mb.Y+mb.Height > vp.Y+vp.Height

	switch {
	case flipStart && flipTop:
		d.menu.SetAttr(AttrMenuPosition, MenuPositionStartTop)
	case flipStart:
		d.menu.SetAttr(AttrMenuPosition, MenuPositionStart)
	case flipTop:
		d.menu.SetAttr(AttrMenuPosition, MenuPositionTop)
	}
}

// menuItems returns the menu's navigable items, served from the cache
// while the entry is inside the freshness window.
func (c *Controller) menuItems(menu *Widget) []*Widget {
	if entry, ok := c.items[menu]; ok && c.now().Sub(entry.at) < c.cacheWindow {
		return entry.items
	}
	items := menu.FindAll(func(n *Widget) bool { return n.HasAttr(AttrDropdownItem) })
	c.items[menu] = itemCacheEntry{items: items, at: c.now()}
	return items
}

// dropdownFromClick is the router entry for clicks on dropdown members:
// items select, the trigger toggles open/closed.
func (c *Controller) dropdownFromClick(w *Widget, ev *ClickEvent) {
	d, ok := resolveDropdown(w)
	if !ok {
		return
	}
	switch {
	case w.HasAttr(AttrDropdownItem):
		c.selectItem(d, w)
	case w.HasAttr(AttrDropdownTrigger):
		if _, open := c.open[d.container]; open {
			c.closeDropdown(d)
		} else {
			c.openDropdown(d)
		}
	}
}

// dropdownKeydown is the keyboard state machine, active only while the
// key target sits inside a dropdown.
func (c *Controller) dropdownKeydown(d *dropdown, ev *KeyEvent) {
	_, open := c.open[d.container]

	switch {
	case ev.Key == KeyEscape:
		if open {
			c.closeDropdown(d)
			c.setFocus(d.trigger)
			ev.PreventDefault()
			ev.StopPropagation()
		}

	case ev.Key == KeyDown:
		ev.PreventDefault()
		if !open {
			c.openDropdown(d)
			return
		}
		c.moveItemFocus(d, 1)

	case ev.Key == KeyUp:
		if open {
			ev.PreventDefault()
			c.moveItemFocus(d, -1)
		}

	case ev.Key == KeyHome:
		if open {
			ev.PreventDefault()
			c.focusItemAt(d, 0)
		}

	case ev.Key == KeyEnd:
		if open {
			ev.PreventDefault()
			c.focusItemAt(d, -1)
		}

	case ev.Key == KeyEnter || isSpace(ev):
		if ev.Target.HasAttr(AttrDropdownItem) {
			ev.PreventDefault()
			c.selectItem(d, ev.Target)
		}

	case ev.Key == KeyTab:
		// Close but let the default focus advance proceed: Tab never
		// traps focus inside the menu.
		if open {
			c.closeDropdown(d)
		}
	}
}

// moveItemFocus moves focus by delta through the menu items, wrapping at
// both ends. When focus is not on an item yet, down lands on the first
// item and up on the last.
func (c *Controller) moveItemFocus(d *dropdown, delta int) {
	items := c.menuItems(d.menu)
	if len(items) == 0 {
		return
	}
	idx := -1
	for i, item := range items {
		if item == c.focused {
			idx = i
			break
		}
	}
	if idx == -1 {
		if delta > 0 {
			c.setFocus(items[0])
		} else {
			c.setFocus(items[len(items)-1])
		}
		return
	}
	c.setFocus(items[(idx+delta+len(items))%len(items)])
}

// focusItemAt jumps focus to the item at index; -1 means the last item.
func (c *Controller) focusItemAt(d *dropdown, index int) {
	items := c.menuItems(d.menu)
	if len(items) == 0 {
		return
	}
	if index < 0 {
		index = len(items) - 1
	}
	c.setFocus(items[index])
}

// selectItem reads the item's declared value (falling back to trimmed
// text), emits a SelectEvent on the container, closes the dropdown, and
// returns focus to the trigger if it is still attached.
func (c *Controller) selectItem(d *dropdown, item *Widget) {
	value := item.Attr(AttrValue)
	if value == "" {
		value = item.TrimmedText()
	}
	emit(d.container, SelectEvent{Dropdown: d.container, Value: value, Item: item})
	c.closeDropdown(d)
	if c.connected(d.trigger) {
		c.setFocus(d.trigger)
	}
}
