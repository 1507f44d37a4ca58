package pointer

// Rect is an absolute cell rectangle, W and H of zero mean empty
type Rect struct {
	X, Y int
	W, H int
}

// Empty returns true if the rect covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the cell (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
