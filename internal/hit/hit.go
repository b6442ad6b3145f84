// Package hit maps terminal cells to screen elements and delivers clicks to
// listeners with browser-style target and current-target semantics.
package hit

// ElementID names a clickable region of the screen.
type ElementID string

// Rect is a cell-aligned rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of r and o. The result is empty (zero width
// or height) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is an element with bounds and nested children. Later children are
// drawn on top of earlier ones.
type Region struct {
	ID       ElementID
	Bounds   Rect
	Children []Region
}

// Path returns the chain of elements under (x, y), innermost first, ending
// with r itself. It is empty when the point is outside r.
func (r Region) Path(x, y int) []ElementID {
	if !r.Bounds.Contains(x, y) {
		return nil
	}
	for i := len(r.Children) - 1; i >= 0; i-- {
		if p := r.Children[i].Path(x, y); p != nil {
			return append(p, r.ID)
		}
	}
	return []ElementID{r.ID}
}

// HitTest returns the innermost element under (x, y).
func (r Region) HitTest(x, y int) (ElementID, bool) {
	p := r.Path(x, y)
	if len(p) == 0 {
		return "", false
	}
	return p[0], true
}

// Event is a click as seen by one listener. Target is the element the click
// landed on; CurrentTarget is the element the listener is bound to.
type Event struct {
	Target        ElementID
	CurrentTarget ElementID
	X, Y          int
}

// Listener reacts to a click. Returning true stops propagation.
type Listener func(Event) bool

// Dispatch delivers a click at (x, y) to the listeners along the hit path,
// innermost first. It returns the target, or false when nothing was hit.
func Dispatch(root Region, x, y int, listeners map[ElementID]Listener) (ElementID, bool) {
	path := root.Path(x, y)
	if len(path) == 0 {
		return "", false
	}
	target := path[0]
	for _, id := range path {
		l, ok := listeners[id]
		if !ok {
			continue
		}
		if l(Event{Target: target, CurrentTarget: id, X: x, Y: y}) {
			break
		}
	}
	return target, true
}
