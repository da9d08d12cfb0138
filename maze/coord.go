package maze

// Coord is anything that resolves to a doubled grid position
type Coord interface {
	Actual() Point
}

// Tile is a logical maze coordinate, one room of the W×H maze
type Tile struct {
	X, Y int
}

// Point is a doubled grid coordinate
// Even/even points are tiles, everything else is a corridor or wall slot
type Point struct {
	X, Y int
}

// Actual maps a logical tile into doubled space
func (t Tile) Actual() Point {
	return Point{X: t.X * 2, Y: t.Y * 2}
}

// Actual is the identity for doubled points
func (p Point) Actual() Point {
	return p
}

// Tile converts back to logical space; false if p is not on a tile slot
func (p Point) Tile() (Tile, bool) {
	if p.X < 0 || p.Y < 0 || p.X%2 != 0 || p.Y%2 != 0 {
		return Tile{}, false
	}
	return Tile{X: p.X / 2, Y: p.Y / 2}, true
}

// Step moves n doubled cells in direction d
func (p Point) Step(d Direction, n int) Point {
	dx, dy := d.Vector()
	return Point{X: p.X + dx*n, Y: p.Y + dy*n}
}

// Midpoint returns the slot lying between two doubled coordinates
func Midpoint(a, b Coord) Point {
	pa, pb := a.Actual(), b.Actual()
	return Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}
}

// SameCell reports whether two coordinates address the same grid slot
func SameCell(a, b Coord) bool {
	return a.Actual() == b.Actual()
}
