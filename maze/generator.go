package maze

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// Generate carves a perfect maze into the lattice, indexes it and validates the result
// Calling it again discards the previous maze and carves a new one from the same RNG stream
func (l *Lattice) Generate() error {
	l.reset()
	l.carve()

	if err := l.Index(); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	l.generated = true
	return nil
}

// carve runs a randomized depth-first backtracker over logical tiles
// The stack always holds the path from the start tile to the frontier
func (l *Lattice) carve() {
	l.SetKind(l.start, KindStart)

	s := stack.New[*Cell]()
	s.Push(l.Cell(l.start))

	for s.Size() > 0 {
		curr := s.Peek()

		candidates := l.EmptyNeighbors(curr)
		if len(candidates) == 0 {
			s.Pop()
			continue
		}

		pick := candidates[l.rng.Intn(len(candidates))]
		next, d := pick.Cell, pick.Dir
		corridor := l.Cell(Midpoint(curr.At, next.At))

		next.Kind = KindTile
		corridor.Kind = KindTile

		back := d.Opposite()
		curr.open[d] = true
		next.open[back] = true
		corridor.open[d] = true
		corridor.open[back] = true

		s.Push(next)
	}

	// Every tile was visited, so the goal is always reachable
	l.SetKind(l.end, KindEnd)
}

// Stats summarizes the topology of a generated maze
type Stats struct {
	Tiles     int // logical tiles
	Passages  int // carved non-wall slots
	Edges     int // open tile-to-tile connections
	DeadEnds  int
	Junctions int
}

// Stats counts tiles, dead ends and junctions over the logical grid
func (l *Lattice) Stats() Stats {
	st := Stats{Tiles: l.size.Width * l.size.Height}
	for i := range l.cells {
		c := &l.cells[i]
		if !c.Passable() {
			continue
		}
		st.Passages++
		if _, ok := c.At.Tile(); !ok {
			continue
		}
		if c.open[South] {
			st.Edges++
		}
		if c.open[East] {
			st.Edges++
		}
		switch {
		case c.DeadEnd():
			st.DeadEnds++
		case c.Junction():
			st.Junctions++
		}
	}
	return st
}
