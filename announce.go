package press

// The announcement channel owns one live region widget attached under the
// root for the controller's lifetime. Announcing clears the region
// immediately and sets the new text after a fixed delay, so assistive
// technology re-announces even when the message text repeats.
//
// Supersede policy: a second announcement before the delay elapses
// replaces the pending text but does not restart the timer. A burst of
// announcements yields one spoken update with the final text.

// attachLiveRegion creates the shared output node once.
func (c *Controller) attachLiveRegion() {
	if c.liveRegion != nil {
		return
	}
	region := NewWidget(WithAttr(AttrLive, "polite"))
	c.root.AddChild(region)
	c.liveRegion = region
}

// detachLiveRegion removes the output node and any pending announcement.
func (c *Controller) detachLiveRegion() {
	if c.liveRegion == nil {
		return
	}
	if c.announceTimer != nil {
		c.announceTimer()
		c.announceTimer = nil
	}
	c.root.RemoveChild(c.liveRegion)
	c.liveRegion = nil
}

// LiveRegion returns the shared announcement node, or nil before Start /
// after Stop.
func (c *Controller) LiveRegion() *Widget {
	return c.liveRegion
}

// Announce schedules message on the live region.
func (c *Controller) Announce(message string) {
	c.announce(message)
}

func (c *Controller) announce(message string) {
	if c.liveRegion == nil {
		return
	}
	c.liveRegion.SetText("")
	c.announcePending = message
	if c.announceTimer != nil {
		// Coalesce: last write wins on content, timer keeps its deadline.
		return
	}
	c.announceTimer = c.sched.PostDelayed(c.announceDelay, func() {
		c.announceTimer = nil
		if c.liveRegion == nil {
			return
		}
		c.liveRegion.SetText(c.announcePending)
	})
}
