package maze

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Index resolves every path link of every passable cell
// Rows are resolved concurrently; a walk only reads open flags and kinds and only writes
// the links of the cell it started from, so bands never contend.
// Already resolved links are kept, making a second pass a no-op.
func (l *Lattice) Index() error {
	w, h := l.bounds.Width, l.bounds.Height

	var g errgroup.Group
	g.SetLimit(l.workers)

	for y := 0; y < h; y++ {
		g.Go(func() error {
			row := l.cells[y*w : (y+1)*w]
			for i := range row {
				if err := l.fillPaths(&row[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (l *Lattice) fillPaths(c *Cell) error {
	if !c.Passable() {
		return nil
	}
	for _, d := range Cardinals {
		if c.links[d] != unresolved {
			continue
		}
		id, err := l.resolve(c, d)
		c.links[d] = id
		if err != nil {
			return err
		}
	}
	return nil
}

// resolve walks straight from c until a decision point
// Stops at junctions (a perpendicular corridor is open), at the goal, or where the
// corridor does not continue. Leaving the grid or entering a wall means the carving
// left an open flag pointing nowhere; the last valid cell is recorded and an error returned.
func (l *Lattice) resolve(c *Cell, d Direction) (CellID, error) {
	if !c.open[d] {
		return c.ID, nil
	}

	left, right := d.Perpendicular()
	last := c
	p := c.At
	for {
		p = p.Step(d, 1)
		next := l.Cell(p)
		if next == nil {
			return last.ID, fmt.Errorf("%w: walk %s from %v left the grid at %v", ErrMalformed, d, c.At, p)
		}
		if !next.Passable() {
			return last.ID, fmt.Errorf("%w: walk %s from %v hit wall at %v", ErrMalformed, d, c.At, p)
		}

		if next.open[left] || next.open[right] || next.Kind == KindEnd {
			return next.ID, nil
		}
		if !next.open[d] {
			return next.ID, nil
		}
		last = next
	}
}

// PathLink returns the cell reached by snapping from c in direction d
// nil while the link is unresolved or c is nil
func (l *Lattice) PathLink(c *Cell, d Direction) *Cell {
	if c == nil {
		return nil
	}
	id, ok := c.Link(d)
	if !ok {
		return nil
	}
	return l.At(id)
}
