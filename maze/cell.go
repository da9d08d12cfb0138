package maze

// Kind classifies a lattice slot
type Kind uint8

const (
	KindWall Kind = iota
	KindTile
	KindStart
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindTile:
		return "tile"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	}
	return "unknown"
}

// CellID indexes the lattice cell arena
type CellID int32

// Link slot states
// A resolved link equal to the owning cell's own ID marks a dead end
const (
	NoCell     CellID = -1
	unresolved CellID = -2
)

// Cell is one slot of the doubled lattice
// Links are arena indices, never pointers, so the lattice can be dropped as a whole
type Cell struct {
	ID   CellID
	Kind Kind
	At   Point

	open  [dirCount]bool
	links [dirCount]CellID
}

func newCell(id CellID, at Point) Cell {
	return Cell{
		ID:    id,
		Kind:  KindWall,
		At:    at,
		links: [dirCount]CellID{unresolved, unresolved, unresolved, unresolved},
	}
}

// Open reports whether a corridor continues in direction d
func (c *Cell) Open(d Direction) bool {
	return d.Valid() && c.open[d]
}

// OpenCount returns the number of open directions
func (c *Cell) OpenCount() int {
	n := 0
	for _, o := range c.open {
		if o {
			n++
		}
	}
	return n
}

// Link returns the path link in direction d
// ok is false while the slot is unresolved
func (c *Cell) Link(d Direction) (CellID, bool) {
	if !d.Valid() {
		return NoCell, false
	}
	id := c.links[d]
	return id, id != unresolved
}

// Resolved reports whether all four path links have been resolved
func (c *Cell) Resolved() bool {
	for _, id := range c.links {
		if id == unresolved {
			return false
		}
	}
	return true
}

// Passable is true for every non-wall kind
func (c *Cell) Passable() bool {
	return c.Kind != KindWall
}

// Junction reports whether the cell branches in more than two directions
func (c *Cell) Junction() bool {
	return c.OpenCount() > 2
}

// DeadEnd reports whether exactly one corridor leaves the cell
func (c *Cell) DeadEnd() bool {
	return c.OpenCount() == 1
}
