package press

import "strings"

// Rect is an axis-aligned rectangle in host coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Widget is a handle to a node in the host UI tree. The host owns widget
// creation, destruction, and rendering; press only reads configuration
// attributes and mutates state attributes.
//
// Widgets are addressed by pointer identity. A widget is "connected" when
// it is reachable from the root registered with a Controller; behavior
// timers never mutate a widget that has left the tree.
type Widget struct {
	// Tree structure (single source of truth)
	children []*Widget
	parent   *Widget

	// Host-authored state
	attrs    map[string]string
	text     string
	disabled bool
	bounds   Rect

	// Input listeners (delegation: the controller registers on the root)
	clickListeners []*inputListener[*ClickEvent]
	keyListeners   []*inputListener[*KeyEvent]

	// Domain event listeners (bubbling)
	eventListeners []*eventListener
}

// WidgetOption configures a Widget at construction.
type WidgetOption func(*Widget)

// WithAttr sets an attribute on the widget.
func WithAttr(name, value string) WidgetOption {
	return func(w *Widget) {
		w.attrs[name] = value
	}
}

// WithID sets the widget's id attribute.
func WithID(id string) WidgetOption {
	return func(w *Widget) {
		w.attrs[AttrID] = id
	}
}

// WithText sets the widget's text content.
func WithText(text string) WidgetOption {
	return func(w *Widget) {
		w.text = text
	}
}

// WithDisabled marks the widget natively disabled.
func WithDisabled() WidgetOption {
	return func(w *Widget) {
		w.disabled = true
	}
}

// WithBounds sets the widget's measured bounding box.
func WithBounds(r Rect) WidgetOption {
	return func(w *Widget) {
		w.bounds = r
	}
}

// NewWidget creates a widget handle with the given options.
func NewWidget(opts ...WidgetOption) *Widget {
	w := &Widget{
		attrs: make(map[string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// --- Tree API ---

// AddChild appends children to this widget.
func (w *Widget) AddChild(children ...*Widget) {
	for _, child := range children {
		child.parent = w
		w.children = append(w.children, child)
	}
}

// RemoveChild detaches a child from this widget.
// Returns true if the child was found and removed.
func (w *Widget) RemoveChild(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child from this widget.
func (w *Widget) RemoveAllChildren() {
	for _, child := range w.children {
		child.parent = nil
	}
	w.children = nil
}

// Children returns the child widgets.
func (w *Widget) Children() []*Widget {
	return w.children
}

// Parent returns the parent widget, or nil if detached or root.
func (w *Widget) Parent() *Widget {
	return w.parent
}

// ConnectedTo reports whether w is attached to the tree rooted at root.
func (w *Widget) ConnectedTo(root *Widget) bool {
	if root == nil {
		return false
	}
	for n := w; n != nil; n = n.parent {
		if n == root {
			return true
		}
	}
	return false
}

// Closest walks from w up through its ancestors and returns the first
// widget matching the predicate, or nil.
func (w *Widget) Closest(match func(*Widget) bool) *Widget {
	for n := w; n != nil; n = n.parent {
		if match(n) {
			return n
		}
	}
	return nil
}

// Find returns the first descendant (DFS order, excluding w itself)
// matching the predicate, or nil.
func (w *Widget) Find(match func(*Widget) bool) *Widget {
	for _, child := range w.children {
		if match(child) {
			return child
		}
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant (DFS order) matching the predicate.
func (w *Widget) FindAll(match func(*Widget) bool) []*Widget {
	var out []*Widget
	for _, child := range w.children {
		if match(child) {
			out = append(out, child)
		}
		out = append(out, child.FindAll(match)...)
	}
	return out
}

// ByID returns the descendant whose id attribute equals id, or nil.
func (w *Widget) ByID(id string) *Widget {
	if id == "" {
		return nil
	}
	return w.Find(func(n *Widget) bool { return n.Attr(AttrID) == id })
}

// --- Attribute API ---

// Attr returns the attribute value, or "" when absent.
func (w *Widget) Attr(name string) string {
	return w.attrs[name]
}

// HasAttr reports whether the attribute is present (even if empty).
func (w *Widget) HasAttr(name string) bool {
	_, ok := w.attrs[name]
	return ok
}

// SetAttr sets an attribute.
func (w *Widget) SetAttr(name, value string) {
	w.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (w *Widget) RemoveAttr(name string) {
	delete(w.attrs, name)
}

// Text returns the widget's text content.
func (w *Widget) Text() string {
	return w.text
}

// SetText replaces the widget's text content.
func (w *Widget) SetText(text string) {
	w.text = text
}

// TrimmedText returns the text content with surrounding whitespace removed.
func (w *Widget) TrimmedText() string {
	return strings.TrimSpace(w.text)
}

// Disabled reports the native disabled flag.
func (w *Widget) Disabled() bool {
	return w.disabled
}

// SetDisabled sets the native disabled flag.
func (w *Widget) SetDisabled(v bool) {
	w.disabled = v
}

// Bounds returns the widget's measured bounding box.
func (w *Widget) Bounds() Rect {
	return w.bounds
}

// SetBounds records the widget's measured bounding box. The host updates
// this whenever layout runs; press reads it for menu positioning.
func (w *Widget) SetBounds(r Rect) {
	w.bounds = r
}
