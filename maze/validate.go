package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// Validate checks the structural invariants of a carved and indexed lattice:
// walls stay closed and unlinked, every passable cell has four resolved links,
// the open tile edges form a spanning tree (W*H-1 edges, no cycle, all tiles reachable).
func (l *Lattice) Validate() error {
	if end := l.Cell(l.end); end == nil || end.Kind != KindEnd {
		return fmt.Errorf("%w: goal %v not stamped", ErrMalformed, l.end)
	}

	for i := range l.cells {
		c := &l.cells[i]
		if !c.Passable() {
			if c.OpenCount() != 0 {
				return fmt.Errorf("%w: wall %v has open corridors", ErrMalformed, c.At)
			}
			for _, d := range Cardinals {
				if _, ok := c.Link(d); ok {
					return fmt.Errorf("%w: wall %v has a path link", ErrMalformed, c.At)
				}
			}
			continue
		}
		if !c.Resolved() {
			return fmt.Errorf("%w: cell %v has unresolved links", ErrMalformed, c.At)
		}
	}

	edges, err := l.checkAcyclic()
	if err != nil {
		return err
	}
	if want := l.size.Width*l.size.Height - 1; edges != want {
		return fmt.Errorf("%w: %d open edges, want %d", ErrMalformed, edges, want)
	}

	if n := l.reachableTiles(); n != l.size.Width*l.size.Height {
		return fmt.Errorf("%w: %d of %d tiles reachable", ErrMalformed, n, l.size.Width*l.size.Height)
	}
	return nil
}

// checkAcyclic unions the endpoints of every open tile edge and fails on the first
// edge joining two tiles already in the same set
func (l *Lattice) checkAcyclic() (int, error) {
	sets := make(map[CellID]*disjoint.Element, l.size.Width*l.size.Height)
	elem := func(c *Cell) *disjoint.Element {
		e, ok := sets[c.ID]
		if !ok {
			e = disjoint.NewElement()
			sets[c.ID] = e
		}
		return e
	}

	edges := 0
	for ty := 0; ty < l.size.Height; ty++ {
		for tx := 0; tx < l.size.Width; tx++ {
			c := l.Cell(Tile{X: tx, Y: ty})
			for _, d := range [2]Direction{South, East} {
				if !c.open[d] {
					continue
				}
				corridor := l.Cell(c.At.Step(d, 1))
				next := l.Cell(c.At.Step(d, 2))
				if corridor == nil || next == nil {
					return 0, fmt.Errorf("%w: %v opens %s off the grid", ErrMalformed, c.At, d)
				}
				if !corridor.Passable() || !next.open[d.Opposite()] {
					return 0, fmt.Errorf("%w: one-sided corridor %v -> %v", ErrMalformed, c.At, next.At)
				}

				a, b := elem(c), elem(next)
				if a.Find() == b.Find() {
					return 0, fmt.Errorf("%w: cycle through %v -> %v", ErrMalformed, c.At, next.At)
				}
				disjoint.Union(a, b)
				edges++
			}
		}
	}
	return edges, nil
}

// reachableTiles floods the tile graph from the start tile
func (l *Lattice) reachableTiles() int {
	visited := mapset.New[Point]()
	s := stack.New[*Cell]()
	s.Push(l.Cell(l.start))

	for s.Size() > 0 {
		c := s.Pop()
		if visited.Has(c.At) {
			continue
		}
		visited.Put(c.At)

		for _, d := range Cardinals {
			if !c.open[d] {
				continue
			}
			if n := l.Cell(c.At.Step(d, 2)); n != nil && !visited.Has(n.At) {
				s.Push(n)
			}
		}
	}
	return visited.Size()
}
