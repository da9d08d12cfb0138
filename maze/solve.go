package maze

import (
	"github.com/zyedidia/generic/queue"
)

// Path returns the unique corridor path between two passable cells, both ends included
// Returns nil when either end is a wall, off the grid, or the lattice is not generated
func (l *Lattice) Path(from, to Coord) []Point {
	start, goal := l.Cell(from), l.Cell(to)
	if !l.generated || start == nil || goal == nil || !start.Passable() || !goal.Passable() {
		return nil
	}

	cameFrom := make(map[CellID]CellID)
	cameFrom[start.ID] = NoCell

	q := queue.New[*Cell]()
	q.Enqueue(start)

	for !q.Empty() {
		curr := q.Dequeue()

		if curr.ID == goal.ID {
			// Reconstruct
			var path []Point
			for id := curr.ID; id != NoCell; id = cameFrom[id] {
				path = append(path, l.At(id).At)
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range Cardinals {
			if !curr.open[d] {
				continue
			}
			next := l.Cell(curr.At.Step(d, 1))
			if next == nil {
				continue
			}
			if _, seen := cameFrom[next.ID]; seen {
				continue
			}
			cameFrom[next.ID] = curr.ID
			q.Enqueue(next)
		}
	}
	return nil
}
