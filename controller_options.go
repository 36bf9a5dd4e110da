package press

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Controller.
type Option func(*Controller) error

// WithoutAutoStart defers startup: the caller must invoke Start before
// any input is routed. By default New starts the controller.
func WithoutAutoStart() Option {
	return func(c *Controller) error {
		c.autoStart = false
		return nil
	}
}

// WithLoadingMessage sets the announcement spoken when loading begins.
func WithLoadingMessage(msg string) Option {
	return func(c *Controller) error {
		if msg == "" {
			return fmt.Errorf("loading message cannot be empty")
		}
		c.loadingMessage = msg
		return nil
	}
}

// WithLoadedMessage sets the announcement spoken when loading completes.
func WithLoadedMessage(msg string) Option {
	return func(c *Controller) error {
		if msg == "" {
			return fmt.Errorf("loaded message cannot be empty")
		}
		c.loadedMessage = msg
		return nil
	}
}

// WithDefaultDuration sets the fallback for missing or malformed
// duration attributes.
func WithDefaultDuration(d time.Duration) Option {
	return func(c *Controller) error {
		if d <= 0 {
			return fmt.Errorf("default duration must be positive")
		}
		c.defaultDuration = d
		return nil
	}
}

// WithDurationBounds sets the clamp range for transient-state durations.
func WithDurationBounds(min, max time.Duration) Option {
	return func(c *Controller) error {
		if min <= 0 || max < min {
			return fmt.Errorf("invalid duration bounds [%v, %v]", min, max)
		}
		c.minDuration = min
		c.maxDuration = max
		return nil
	}
}

// WithAnnounceDelay sets the delay between clearing and setting the live
// region text.
func WithAnnounceDelay(d time.Duration) Option {
	return func(c *Controller) error {
		if d <= 0 {
			return fmt.Errorf("announce delay must be positive")
		}
		c.announceDelay = d
		return nil
	}
}

// WithFocusDelay sets the pause between menu positioning and focusing the
// first item of a freshly opened dropdown.
func WithFocusDelay(d time.Duration) Option {
	return func(c *Controller) error {
		if d <= 0 {
			return fmt.Errorf("focus delay must be positive")
		}
		c.focusDelay = d
		return nil
	}
}

// WithItemCacheWindow sets how long a cached dropdown item list stays
// fresh before a lookup re-queries the menu.
func WithItemCacheWindow(d time.Duration) Option {
	return func(c *Controller) error {
		if d <= 0 {
			return fmt.Errorf("item cache window must be positive")
		}
		c.cacheWindow = d
		return nil
	}
}

// WithFrameRate sets the frame approximation used by the default
// scheduler. Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) Option {
	return func(c *Controller) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		c.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) Option {
	return func(c *Controller) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		c.queueSize = size
		return nil
	}
}

// WithScheduler replaces the default timer-based scheduler. Use
// ManualScheduler for deterministic tests or synchronous hosts.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) error {
		if s == nil {
			return fmt.Errorf("nil scheduler")
		}
		c.sched = s
		return nil
	}
}

// WithViewport sets the viewport rectangle menus are positioned against.
// Without a viewport (zero width or height), overflow flipping is skipped.
func WithViewport(r Rect) Option {
	return func(c *Controller) error {
		c.viewport = r
		return nil
	}
}

// WithRightToLeft marks the host layout direction as right-to-left, so
// the trailing edge for menu overflow is the left viewport edge.
func WithRightToLeft() Option {
	return func(c *Controller) error {
		c.rtl = true
		return nil
	}
}

// WithCancelTimersOnTeardown makes Stop cancel every in-flight loading
// and auto-disable timer, restoring attached widgets immediately. By
// default timers are left to finish through the detached-widget fallback.
func WithCancelTimersOnTeardown() Option {
	return func(c *Controller) error {
		c.cancelTimersOnTeardown = true
		return nil
	}
}
