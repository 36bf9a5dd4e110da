package press

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grindlemire/go-press/pkg/debug"
)

// ErrInvalidWidget is returned when a state-changing operation receives
// something that is not a usable widget handle.
var ErrInvalidWidget = errors.New("invalid widget handle")

// Controller owns the interactive behavior for one widget tree: the
// central input router, toggle state, transient loading / auto-disable
// timers, dropdown lifecycle, and the announcement channel.
//
// All behavior runs on a single logical goroutine: input handling is
// synchronous with the caller of Widget.Click / Widget.Keydown, and the
// scheduler delivers deferred callbacks onto the controller queue. Public
// methods must be called from that goroutine; use QueueUpdate from
// anywhere else.
type Controller struct {
	root  *Widget
	sched Scheduler

	// Event loop fields
	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	started  bool

	// Configuration (set via options)
	autoStart              bool
	loadingMessage         string
	loadedMessage          string
	defaultDuration        time.Duration
	minDuration            time.Duration
	maxDuration            time.Duration
	announceDelay          time.Duration
	focusDelay             time.Duration
	cacheWindow            time.Duration
	frameDuration          time.Duration
	queueSize              int
	cancelTimersOnTeardown bool
	viewport               Rect
	rtl                    bool
	nowFn                  func() time.Time

	// Input routing (set by Start, cleared by Stop)
	unbindClick func()
	unbindKey   func()

	// Focus tracking
	focused *Widget

	// Transient-state side-tables, keyed by widget identity
	loading     map[*Widget]*transientTimer
	autoDisable map[*Widget]*transientTimer

	// Dropdown state
	open  map[*Widget]*dropdown
	items map[*Widget]itemCacheEntry

	// Announcement channel
	liveRegion      *Widget
	announcePending string
	announceTimer   CancelFunc
}

// Default configuration values.
const (
	defaultLoadingMessage = "Loading…"
	defaultLoadedMessage  = "Loading complete"

	defaultDuration      = 2 * time.Second
	defaultMinDuration   = 50 * time.Millisecond
	defaultMaxDuration   = 30 * time.Second
	defaultAnnounceDelay = 100 * time.Millisecond
	defaultFocusDelay    = 50 * time.Millisecond
	defaultCacheWindow   = time.Second
	defaultFrameDuration = 16 * time.Millisecond // ~60fps
	defaultQueueSize     = 256
)

// New creates a behavior controller for the tree rooted at root.
// Unless WithoutAutoStart is given, the controller starts immediately:
// input listeners are bound and the live region is attached.
func New(root *Widget, opts ...Option) (*Controller, error) {
	if root == nil {
		return nil, fmt.Errorf("press: nil root widget")
	}

	c := &Controller{
		root:            root,
		autoStart:       true,
		loadingMessage:  defaultLoadingMessage,
		loadedMessage:   defaultLoadedMessage,
		defaultDuration: defaultDuration,
		minDuration:     defaultMinDuration,
		maxDuration:     defaultMaxDuration,
		announceDelay:   defaultAnnounceDelay,
		focusDelay:      defaultFocusDelay,
		cacheWindow:     defaultCacheWindow,
		frameDuration:   defaultFrameDuration,
		queueSize:       defaultQueueSize,
		nowFn:           time.Now,
		loading:         make(map[*Widget]*transientTimer),
		autoDisable:     make(map[*Widget]*transientTimer),
		open:            make(map[*Widget]*dropdown),
		items:           make(map[*Widget]itemCacheEntry),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.sched == nil {
		c.sched = newTimedScheduler(c.frameDuration)
	}
	c.queue = make(chan func(), c.queueSize)
	c.stopCh = make(chan struct{})

	if c.autoStart {
		c.Start()
	}
	return c, nil
}

// Root returns the tree root this controller is bound to.
func (c *Controller) Root() *Widget {
	return c.root
}

// Focused returns the widget the controller last moved focus to, or nil.
func (c *Controller) Focused() *Widget {
	return c.focused
}

// setFocus records behavioral focus. The host mirrors this into its own
// focus handling by observing Focused.
func (c *Controller) setFocus(w *Widget) {
	c.focused = w
}

// Start binds the delegated input listeners, attaches the live region,
// and starts the scheduler and event loop. Calling Start on a started
// controller is a no-op.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	debug.Log("Controller.Start: binding input, attaching live region")

	c.attachLiveRegion()
	c.bindInput()
	c.sched.Start(c.queue, c.stopCh)
	go c.loop()
}

// Stop tears the controller down: both input subscriptions are revoked
// atomically, the live region is detached, and the event loop exits.
// In-flight per-widget timers are left to finish through the
// detached-widget fallback unless WithCancelTimersOnTeardown was given.
// Stop is idempotent.
func (c *Controller) Stop() {
	c.stopOnce.Do(func() {
		debug.Log("Controller.Stop: tearing down")
		c.unbindInput()
		if c.cancelTimersOnTeardown {
			c.cancelAllTimers()
		}
		c.detachLiveRegion()
		close(c.stopCh)
		c.started = false
	})
}

// Running reports whether the controller has started and not stopped.
func (c *Controller) Running() bool {
	select {
	case <-c.stopCh:
		return false
	default:
		return c.started
	}
}

// loop executes queued callbacks until Stop.
func (c *Controller) loop() {
	for {
		select {
		case <-c.stopCh:
			return
		case fn := <-c.queue:
			fn()
		}
	}
}

// QueueUpdate enqueues fn to run on the controller goroutine.
// Safe to call from any goroutine; dropped if the controller has stopped.
func (c *Controller) QueueUpdate(fn func()) {
	select {
	case c.queue <- fn:
	case <-c.stopCh:
		// Controller is stopping, ignore update.
	}
}

// PruneDetached drops bookkeeping for widgets that have left the tree:
// live timers finish through their detached branch, and item-cache and
// open-set entries for detached widgets are discarded. Side-table entries
// are keyed by widget identity, so hosts call this after bulk widget
// removal to keep the tables from outliving their widgets.
func (c *Controller) PruneDetached() {
	for w, rec := range c.loading {
		if !c.connected(w) {
			c.finishLoading(w, rec)
		}
	}
	for w, rec := range c.autoDisable {
		if !c.connected(w) {
			c.finishAutoDisable(w, rec)
		}
	}
	for menu := range c.items {
		if !c.connected(menu) {
			delete(c.items, menu)
		}
	}
	for container := range c.open {
		if !c.connected(container) {
			delete(c.open, container)
		}
	}
}

// now returns the controller clock (overridable in tests).
func (c *Controller) now() time.Time {
	return c.nowFn()
}

// connected reports whether w is attached to the controller's tree.
func (c *Controller) connected(w *Widget) bool {
	return w.ConnectedTo(c.root)
}
