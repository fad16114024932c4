// Package reveal decides when fade-in sections become visible. An element is revealed the first
// time enough of it is inside the viewport, and is never observed again.
package reveal

const (
	// DefaultThreshold is the visible fraction of an element that reveals it.
	DefaultThreshold = 0.24
	// DefaultBottomMargin is the fraction of the viewport height excluded at the bottom.
	DefaultBottomMargin = 0.10
)

// Rect is an element's box relative to the viewport's top-left corner.
type Rect struct {
	Top, Left, Width, Height float64
}

// Viewport is the visible area of the page.
type Viewport struct {
	Width, Height float64
}

// Observer tracks a set of elements until each is revealed. It is not safe for concurrent use.
type Observer struct {
	threshold    float64
	bottomMargin float64

	order    []string
	pending  map[string]bool
	revealed map[string]bool
}

// Option customises an Observer.
type Option func(*Observer)

// WithThreshold overrides the visible fraction; values outside (0, 1] are ignored.
func WithThreshold(t float64) Option {
	return func(o *Observer) {
		if t > 0 && t <= 1 {
			o.threshold = t
		}
	}
}

// WithBottomMargin overrides the excluded bottom fraction; values outside [0, 1) are ignored.
func WithBottomMargin(m float64) Option {
	return func(o *Observer) {
		if m >= 0 && m < 1 {
			o.bottomMargin = m
		}
	}
}

func New(opts ...Option) *Observer {
	o := &Observer{
		threshold:    DefaultThreshold,
		bottomMargin: DefaultBottomMargin,
		pending:      make(map[string]bool),
		revealed:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Observe starts watching ids. Already observed or revealed ids are ignored.
func (o *Observer) Observe(ids ...string) {
	for _, id := range ids {
		if id == "" || o.pending[id] || o.revealed[id] {
			continue
		}
		o.pending[id] = true
		o.order = append(o.order, id)
	}
}

// Update evaluates the observed elements against the viewport and returns the ids revealed by
// this call, in observation order. Elements missing from rects are left pending.
func (o *Observer) Update(vp Viewport, rects map[string]Rect) []string {
	root := Rect{Width: vp.Width, Height: vp.Height * (1 - o.bottomMargin)}
	var out []string
	kept := o.order[:0]
	for _, id := range o.order {
		r, ok := rects[id]
		if ok && Ratio(r, root) >= o.threshold {
			delete(o.pending, id)
			o.revealed[id] = true
			out = append(out, id)
			continue
		}
		kept = append(kept, id)
	}
	o.order = kept
	return out
}

// Revealed reports whether id has been revealed.
func (o *Observer) Revealed(id string) bool { return o.revealed[id] }

// Pending returns the number of elements still observed.
func (o *Observer) Pending() int { return len(o.order) }

// Ratio is the fraction of r's area that lies inside root. An empty r counts as fully visible
// when it sits inside root.
func Ratio(r, root Rect) float64 {
	left := max(r.Left, root.Left)
	right := min(r.Left+r.Width, root.Left+root.Width)
	top := max(r.Top, root.Top)
	bottom := min(r.Top+r.Height, root.Top+root.Height)
	if right < left || bottom < top {
		return 0
	}
	area := r.Width * r.Height
	if area <= 0 {
		return 1
	}
	return (right - left) * (bottom - top) / area
}
