package press

import (
	"strconv"
	"time"

	"github.com/grindlemire/go-press/pkg/debug"
)

// transientTimer is one live countdown for a (widget, behavior) slot.
// Starting a new countdown for the same slot cancels and discards the
// previous record; the side-table entry itself is the mutual-exclusion
// point, so a cancellation racing natural expiry has exactly one winner.
type transientTimer struct {
	cancel   CancelFunc
	snapshot widgetSnapshot
	done     chan struct{} // loading only; closed exactly once
}

// widgetSnapshot is the pre-timer state restored when loading ends.
type widgetSnapshot struct {
	text     string
	disabled bool
}

func snapshotOf(w *Widget) widgetSnapshot {
	return widgetSnapshot{text: w.Text(), disabled: w.Disabled()}
}

// StartLoading places w into the loading state for d (clamped into the
// configured bounds). The returned channel is closed exactly once, when
// the widget is restored or the session is discarded. Returns
// ErrInvalidWidget for a nil handle.
func (c *Controller) StartLoading(w *Widget, d time.Duration) (<-chan struct{}, error) {
	if w == nil {
		return nil, ErrInvalidWidget
	}
	return c.startLoading(w, c.clampDuration(d)), nil
}

// IsLoading reports whether w has a live loading session.
func (c *Controller) IsLoading(w *Widget) bool {
	_, ok := c.loading[w]
	return ok
}

// CancelLoading ends an in-flight loading session early, restoring the
// widget's snapshot if it is still attached. Idempotent: cancelling a
// widget with no live session is a no-op, and racing a natural expiry
// leaves exactly one restoration.
func (c *Controller) CancelLoading(w *Widget) {
	if w == nil {
		return
	}
	rec, ok := c.loading[w]
	if !ok {
		return
	}
	c.finishLoading(w, rec)
}

// loadingFromClick is the router entry: a busy widget suppresses the
// action entirely (no re-entry); otherwise a session starts with the
// widget's declared duration.
func (c *Controller) loadingFromClick(w *Widget, ev *ClickEvent) {
	if boolAttr(w, AttrBusy) {
		ev.PreventDefault()
		ev.StopPropagation()
		return
	}
	c.startLoading(w, c.durationFromAttr(w, AttrLoadingDuration))
}

func (c *Controller) startLoading(w *Widget, d time.Duration) <-chan struct{} {
	rec := &transientTimer{done: make(chan struct{})}

	if prev, ok := c.loading[w]; ok {
		// Restarting keeps the original pre-loading snapshot; the widget
		// already shows its loading presentation. The superseded session
		// ends without restoring anything.
		prev.cancel()
		rec.snapshot = prev.snapshot
		close(prev.done)
	} else {
		rec.snapshot = snapshotOf(w)
		if loadingText := w.Attr(AttrLoadingText); loadingText != "" {
			w.SetText(loadingText)
		}
		w.SetAttr(AttrBusy, "true")
		w.SetDisabled(true)
		c.announce(c.loadingMessage)
	}

	c.loading[w] = rec
	rec.cancel = c.sched.PostDelayed(d, func() {
		c.finishLoading(w, rec)
	})
	debug.Log("transient: loading started for %v", d)
	return rec.done
}

// finishLoading is the single completion path for expiry and cancel.
// The table check makes the slot the mutual-exclusion point: whichever
// path runs second sees a stale record and returns.
func (c *Controller) finishLoading(w *Widget, rec *transientTimer) {
	if c.loading[w] != rec {
		return
	}
	delete(c.loading, w)
	rec.cancel()

	if c.connected(w) {
		w.SetText(rec.snapshot.text)
		w.SetDisabled(rec.snapshot.disabled)
		w.RemoveAttr(AttrBusy)
		c.announce(c.loadedMessage)
		emit(w, LoadingCompleteEvent{Widget: w})
	} else {
		// Detached mid-timer: discard the bookkeeping, mutate nothing.
		debug.Log("transient: loading expiry on detached widget, discarding")
	}
	close(rec.done)
}

// autoDisableFromClick disables the widget and schedules re-enabling.
// A repeat trigger cancels the previous countdown first, so at most one
// timer per widget is ever live.
func (c *Controller) autoDisableFromClick(w *Widget) {
	c.startAutoDisable(w, c.durationFromAttr(w, AttrDisableDuration))
}

// StartAutoDisable disables w for d (clamped). Returns ErrInvalidWidget
// for a nil handle.
func (c *Controller) StartAutoDisable(w *Widget, d time.Duration) error {
	if w == nil {
		return ErrInvalidWidget
	}
	c.startAutoDisable(w, c.clampDuration(d))
	return nil
}

// CancelAutoDisable ends an auto-disable countdown early, re-enabling the
// widget if still attached. Idempotent.
func (c *Controller) CancelAutoDisable(w *Widget) {
	if w == nil {
		return
	}
	rec, ok := c.autoDisable[w]
	if !ok {
		return
	}
	c.finishAutoDisable(w, rec)
}

func (c *Controller) startAutoDisable(w *Widget, d time.Duration) {
	rec := &transientTimer{}
	if prev, ok := c.autoDisable[w]; ok {
		// Restarting keeps the original pre-disable snapshot.
		prev.cancel()
		rec.snapshot = prev.snapshot
	} else {
		rec.snapshot = snapshotOf(w)
	}
	w.SetDisabled(true)
	c.autoDisable[w] = rec
	rec.cancel = c.sched.PostDelayed(d, func() {
		c.finishAutoDisable(w, rec)
	})
}

func (c *Controller) finishAutoDisable(w *Widget, rec *transientTimer) {
	if c.autoDisable[w] != rec {
		return
	}
	delete(c.autoDisable, w)
	rec.cancel()
	if c.connected(w) {
		w.SetDisabled(rec.snapshot.disabled)
	}
}

// cancelAllTimers is the teardown policy hook: every live slot finishes
// through the same attached/detached branch as explicit cancellation.
func (c *Controller) cancelAllTimers() {
	loading := make([]*Widget, 0, len(c.loading))
	for w := range c.loading {
		loading = append(loading, w)
	}
	for _, w := range loading {
		c.CancelLoading(w)
	}

	disabled := make([]*Widget, 0, len(c.autoDisable))
	for w := range c.autoDisable {
		disabled = append(disabled, w)
	}
	for _, w := range disabled {
		c.CancelAutoDisable(w)
	}
}

// durationFromAttr parses a millisecond duration attribute. Missing,
// non-numeric, or negative values fall back to the default; valid values
// are clamped into [minDuration, maxDuration].
func (c *Controller) durationFromAttr(w *Widget, name string) time.Duration {
	raw := w.Attr(name)
	ms, err := strconv.Atoi(raw)
	if raw == "" || err != nil || ms < 0 {
		return c.clampDuration(c.defaultDuration)
	}
	return c.clampDuration(time.Duration(ms) * time.Millisecond)
}

func (c *Controller) clampDuration(d time.Duration) time.Duration {
	if d < c.minDuration {
		return c.minDuration
	}
	if d > c.maxDuration {
		return c.maxDuration
	}
	return d
}
