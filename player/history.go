package player

import "github.com/lixenwraith/vi-maze/maze"

// History keeps previously occupied cells, oldest first
// A limit of 0 keeps everything
type History struct {
	limit int
	cells []maze.CellID
}

// NewHistory creates a history bounded to limit entries
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Push appends id, discarding the oldest entry once the bound is reached
func (h *History) Push(id maze.CellID) {
	if h.limit > 0 && len(h.cells) == h.limit {
		copy(h.cells, h.cells[1:])
		h.cells = h.cells[:len(h.cells)-1]
	}
	h.cells = append(h.cells, id)
}

// Last returns the most recent entry
func (h *History) Last() (maze.CellID, bool) {
	if len(h.cells) == 0 {
		return maze.NoCell, false
	}
	return h.cells[len(h.cells)-1], true
}

// Cells returns a copy of the entries, oldest first
func (h *History) Cells() []maze.CellID {
	out := make([]maze.CellID, len(h.cells))
	copy(out, h.cells)
	return out
}

func (h *History) Len() int   { return len(h.cells) }
func (h *History) Limit() int { return h.limit }

// Reset drops every entry
func (h *History) Reset() {
	h.cells = h.cells[:0]
}
