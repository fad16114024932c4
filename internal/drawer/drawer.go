// Package drawer models the mobile navigation overlay: open state, background scroll lock and
// a cyclic keyboard focus trap. The embedded site script implements the same contract in the
// browser.
package drawer

// Page is the document a drawer lives in.
type Page interface {
	LockScroll()
	UnlockScroll()
	// ActiveElement returns the id of the focused element, or "" when none has an id.
	ActiveElement() string
	Focus(id string)
}

// EscapeKey is the key that closes an open drawer.
const EscapeKey = "Escape"

// Controller is the state of one drawer on one page instance. It is not safe for concurrent
// use; a page drives it from a single event loop.
type Controller struct {
	page       Page
	focusables []string
	controls   []string
	group      *Group

	open    bool
	restore string
}

// Option customises a Controller.
type Option func(*Controller)

// WithControls registers the ids of the elements that toggle the drawer. Their
// aria-expanded value is reported by Toggles.
func WithControls(ids ...string) Option {
	return func(c *Controller) { c.controls = append(c.controls, ids...) }
}

// New returns a closed drawer over page. focusables are the ids of the drawer's focusable
// elements in document order; see Focusables.
func New(page Page, focusables []string, opts ...Option) *Controller {
	c := &Controller{page: page, focusables: append([]string(nil), focusables...)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsOpen reports whether the drawer is open.
func (c *Controller) IsOpen() bool { return c.open }

// Toggle flips the drawer.
func (c *Controller) Toggle() { c.transition(!c.open) }

// Open opens the drawer. It is a no-op when already open.
func (c *Controller) Open() { c.transition(true) }

// Close closes the drawer. It is a no-op when already closed.
func (c *Controller) Close() { c.transition(false) }

// SelectLink handles activation of a navigation link inside the drawer.
func (c *Controller) SelectLink() { c.transition(false) }

// ClickBackdrop handles a click on the dimmed backdrop.
func (c *Controller) ClickBackdrop() { c.transition(false) }

// KeyDown handles a key press. Only Escape is meaningful; Tab goes through Tab.
func (c *Controller) KeyDown(key string) {
	if key == EscapeKey && c.open {
		c.transition(false)
	}
}

// Tab moves focus to the next (or, with shift, previous) focusable element inside the open
// drawer, wrapping at either end. It returns the newly focused id, or "" when the drawer is
// closed or has nothing focusable, in which case the browser default applies.
func (c *Controller) Tab(shift bool) string {
	if !c.open || len(c.focusables) == 0 {
		return ""
	}
	n := len(c.focusables)
	cur := c.indexOf(c.page.ActiveElement())
	var next int
	switch {
	case cur < 0 && shift:
		next = n - 1
	case cur < 0:
		next = 0
	case shift:
		next = (cur - 1 + n) % n
	default:
		next = (cur + 1) % n
	}
	id := c.focusables[next]
	c.page.Focus(id)
	return id
}

// Toggles returns the aria-expanded state of every registered control.
func (c *Controller) Toggles() map[string]bool {
	out := make(map[string]bool, len(c.controls))
	for _, id := range c.controls {
		out[id] = c.open
	}
	return out
}

// transition is the only place open state and scroll lock change.
func (c *Controller) transition(open bool) {
	if open == c.open {
		return
	}
	if open {
		if c.group != nil {
			c.group.closeOthers(c)
		}
		c.restore = c.page.ActiveElement()
		c.page.LockScroll()
		c.open = true
		if len(c.focusables) > 0 {
			c.page.Focus(c.focusables[0])
		}
		return
	}
	c.page.UnlockScroll()
	c.open = false
	if c.restore != "" {
		c.page.Focus(c.restore)
	}
	c.restore = ""
}

func (c *Controller) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, f := range c.focusables {
		if f == id {
			return i
		}
	}
	return -1
}

// Group keeps at most one of its drawers open.
type Group struct {
	drawers []*Controller
}

// NewGroup registers the given drawers. A drawer belongs to at most one group.
func NewGroup(drawers ...*Controller) *Group {
	g := &Group{}
	for _, d := range drawers {
		g.Add(d)
	}
	return g
}

// Add registers d. If d is already open, other open drawers are closed.
func (g *Group) Add(d *Controller) {
	if d == nil {
		return
	}
	d.group = g
	g.drawers = append(g.drawers, d)
	if d.open {
		g.closeOthers(d)
	}
}

// Open returns the open drawer, if any.
func (g *Group) Open() (*Controller, bool) {
	for _, d := range g.drawers {
		if d.open {
			return d, true
		}
	}
	return nil, false
}

// Toggles merges the aria-expanded state of every control of every drawer.
func (g *Group) Toggles() map[string]bool {
	out := make(map[string]bool)
	for _, d := range g.drawers {
		for id, expanded := range d.Toggles() {
			out[id] = expanded
		}
	}
	return out
}

func (g *Group) closeOthers(keep *Controller) {
	for _, d := range g.drawers {
		if d != keep && d.open {
			d.transition(false)
		}
	}
}
