package maze

// Direction is one of the four cardinal directions
type Direction uint8

// Index order N, S, W, E matches neighbor scan order
const (
	North Direction = iota
	South
	West
	East
	dirCount
)

// Cardinals is the iteration order used for path indexing and rendering
var Cardinals = [4]Direction{North, South, East, West}

// Unit vectors in doubled space, indexed by Direction
var dirVectors = [dirCount][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
}

var dirOpposite = [dirCount]Direction{South, North, East, West}

// Perpendicular pairs inspected while walking a corridor
var dirPerpendicular = [dirCount][2]Direction{
	{West, East},
	{East, West},
	{South, North},
	{North, South},
}

var dirNames = [dirCount]string{"N", "S", "W", "E"}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	return dirOpposite[d]
}

// Perpendicular returns the two directions crossing d
func (d Direction) Perpendicular() (Direction, Direction) {
	p := dirPerpendicular[d]
	return p[0], p[1]
}

// Vector returns the unit step of d
func (d Direction) Vector() (dx, dy int) {
	v := dirVectors[d]
	return v[0], v[1]
}

// Valid reports whether d is one of the four cardinals
func (d Direction) Valid() bool {
	return d < dirCount
}

func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return dirNames[d]
}

// ParseDirection maps "N", "S", "E", "W" to a Direction
// Anything else reports false
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "N":
		return North, true
	case "S":
		return South, true
	case "W":
		return West, true
	case "E":
		return East, true
	}
	return 0, false
}
