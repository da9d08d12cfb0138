package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"
)

var (
	// ErrInvalidSize is returned for lattices with a dimension below 1
	ErrInvalidSize = errors.New("maze: dimensions must be at least 1x1")
	// ErrOutOfBounds is returned for explicit start/end tiles off their row
	ErrOutOfBounds = errors.New("maze: endpoint outside its row")
	// ErrMalformed signals a broken generator invariant found during indexing or validation
	ErrMalformed = errors.New("maze: malformed lattice")
)

// Config describes a lattice before generation
type Config struct {
	// Logical size in tiles
	Width, Height int

	Start *Tile // Optional (nil = random tile on the top row)
	End   *Tile // Optional (nil = random tile on the bottom row)
	Seed  int64 // Optional (0 = Random)

	// Parallel indexer bands (0 = GOMAXPROCS)
	Workers int
}

// Size is a width/height pair
type Size struct {
	Width, Height int
}

// Neighbor is an unvisited tile two doubled steps away
type Neighbor struct {
	Cell *Cell
	Dir  Direction
}

// Lattice owns every cell of a doubled-resolution maze grid
type Lattice struct {
	size   Size // logical
	bounds Size // doubled: 2w-1 x 2h-1

	cells []Cell

	start, end Tile
	seed       int64
	rng        *rand.Rand
	workers    int

	generated bool
}

// New allocates an ungenerated lattice and fixes its start and end tiles
func New(cfg Config) (*Lattice, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	l := &Lattice{
		size:    Size{Width: cfg.Width, Height: cfg.Height},
		bounds:  Size{Width: cfg.Width*2 - 1, Height: cfg.Height*2 - 1},
		seed:    seed,
		rng:     rng,
		workers: workers,
	}

	start, err := l.resolveEndpoint(cfg.Start, 0)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := l.resolveEndpoint(cfg.End, cfg.Height-1)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	l.start, l.end = start, end

	l.reset()
	return l, nil
}

func (l *Lattice) resolveEndpoint(t *Tile, row int) (Tile, error) {
	if t == nil {
		return Tile{X: l.rng.Intn(l.size.Width), Y: row}, nil
	}
	if t.Y != row || t.X < 0 || t.X >= l.size.Width {
		return Tile{}, fmt.Errorf("%w: %v not on row %d", ErrOutOfBounds, *t, row)
	}
	return *t, nil
}

// reset fills the arena with fresh wall cells
func (l *Lattice) reset() {
	w, h := l.bounds.Width, l.bounds.Height
	if cap(l.cells) < w*h {
		l.cells = make([]Cell, w*h)
	}
	l.cells = l.cells[:w*h]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := CellID(y*w + x)
			l.cells[id] = newCell(id, Point{X: x, Y: y})
		}
	}
	l.generated = false
}

// Size returns the logical dimensions
func (l *Lattice) Size() Size { return l.size }

// Bounds returns the doubled grid dimensions
func (l *Lattice) Bounds() Size { return l.bounds }

// Start returns the entry tile on the top row
func (l *Lattice) Start() Tile { return l.start }

// End returns the goal tile on the bottom row
func (l *Lattice) End() Tile { return l.end }

// Seed returns the seed the lattice RNG was built from
func (l *Lattice) Seed() int64 { return l.seed }

// Generated reports whether Generate has completed successfully
func (l *Lattice) Generated() bool { return l.generated }

// InBounds reports whether p addresses a slot of the doubled grid
func (l *Lattice) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < l.bounds.Width && p.Y < l.bounds.Height
}

// Cell returns the cell at a logical or doubled coordinate, nil when out of range
func (l *Lattice) Cell(c Coord) *Cell {
	p := c.Actual()
	if !l.InBounds(p) {
		return nil
	}
	return &l.cells[p.Y*l.bounds.Width+p.X]
}

// At resolves an arena index, nil for NoCell or out of range
func (l *Lattice) At(id CellID) *Cell {
	if id < 0 || int(id) >= len(l.cells) {
		return nil
	}
	return &l.cells[id]
}

// SetKind changes the kind of the addressed cell; no-op when out of range
func (l *Lattice) SetKind(c Coord, k Kind) {
	if cell := l.Cell(c); cell != nil {
		cell.Kind = k
	}
}

// EmptyNeighbors returns unvisited tiles two doubled steps away, in N, S, W, E order
func (l *Lattice) EmptyNeighbors(c *Cell) []Neighbor {
	out := make([]Neighbor, 0, 4)
	for d := North; d < dirCount; d++ {
		n := l.Cell(c.At.Step(d, 2))
		if n != nil && n.Kind == KindWall {
			out = append(out, Neighbor{Cell: n, Dir: d})
		}
	}
	return out
}

// Rows returns the cell grid row by row
// The returned slices alias the arena
func (l *Lattice) Rows() [][]Cell {
	w := l.bounds.Width
	rows := make([][]Cell, l.bounds.Height)
	for y := range rows {
		rows[y] = l.cells[y*w : (y+1)*w]
	}
	return rows
}

// IsEnd reports whether c addresses the goal slot
func (l *Lattice) IsEnd(c Coord) bool {
	return SameCell(c, l.end)
}
