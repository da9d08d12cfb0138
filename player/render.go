package player

import (
	"strings"

	"github.com/lixenwraith/vi-maze/maze"
)

// RenderMode selects a rendering strategy
type RenderMode uint8

const (
	// Partial shows only the lookahead around the cursor and the trail
	Partial RenderMode = iota
	// Full shows the whole map
	Full
)

func (m RenderMode) String() string {
	if m == Full {
		return "full"
	}
	return "partial"
}

// Toggle returns the other render mode
func (m RenderMode) Toggle() RenderMode {
	if m == Full {
		return Partial
	}
	return Full
}

// Frame is a glyph grid sized to the doubled lattice, indexed [y][x]
type Frame [][]string

func newFrame(b maze.Size, fill func(x, y int) string) Frame {
	f := make(Frame, b.Height)
	for y := range f {
		f[y] = make([]string, b.Width)
		for x := range f[y] {
			f[y][x] = fill(x, y)
		}
	}
	return f
}

// At returns the glyph at p, empty when out of range
func (f Frame) At(p maze.Point) string {
	if p.Y < 0 || p.Y >= len(f) || p.X < 0 || p.X >= len(f[p.Y]) {
		return ""
	}
	return f[p.Y][p.X]
}

func (f Frame) set(p maze.Point, glyph string) {
	if p.Y < 0 || p.Y >= len(f) || p.X < 0 || p.X >= len(f[p.Y]) {
		return
	}
	f[p.Y][p.X] = glyph
}

// segment fills the straight run between a and b, both ends included
func (f Frame) segment(a, b maze.Point, glyph string) {
	x1, x2 := a.X, b.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			f.set(maze.Point{X: x, Y: y}, glyph)
		}
	}
}

// Lines joins each row, prefixing it with pad
func (f Frame) Lines(pad string) []string {
	out := make([]string, len(f))
	for y, row := range f {
		out[y] = pad + strings.Join(row, "")
	}
	return out
}

func (f Frame) String() string {
	return strings.Join(f.Lines(""), "\n")
}

// Draw renders with the chosen strategy
func (p *Player) Draw(m RenderMode) Frame {
	switch m {
	case Full:
		return p.FullRender()
	default:
		return p.Render()
	}
}

// FullRender draws every cell with the glyph of its kind
func (p *Player) FullRender() Frame {
	l := p.lattice
	f := newFrame(l.Bounds(), func(x, y int) string {
		return p.theme.Glyph(l.Cell(maze.Point{X: x, Y: y}).Kind)
	})
	p.stampStatic(f)
	return f
}

// Render draws the partial view: corridors up to the lookahead depth,
// direction hints at every visited decision point, and the full trail
func (p *Player) Render() Frame {
	f := newFrame(p.lattice.Bounds(), func(int, int) string { return p.theme.Wall })

	var prev *maze.Cell
	if id, ok := p.history.Last(); ok {
		prev = p.lattice.At(id)
	}

	var hints []hint
	p.lookahead(f, &hints, prev, p.cell, 0)
	for _, h := range hints {
		f.set(h.at, h.glyph)
	}

	p.drawTrail(f)
	p.stampStatic(f)
	return f
}

type hint struct {
	at    maze.Point
	glyph string
}

// lookahead walks path links from curr, never straight back to prev
// Segments are drawn until depth reaches the lookahead; hints are collected at every visited cell
func (p *Player) lookahead(f Frame, hints *[]hint, prev, curr *maze.Cell, depth int) {
	if depth < p.lookAhead {
		for _, d := range maze.Cardinals {
			next := p.lattice.PathLink(curr, d)
			if next == nil || next == curr || next == prev {
				continue
			}
			f.segment(curr.At, next.At, p.theme.Tile)
			p.lookahead(f, hints, curr, next, depth+1)
		}
	}
	*hints = p.appendHints(*hints, prev, curr)
}

// appendHints adds a direction glyph at the corridor midpoint next to curr for every
// open direction except the one leading back to prev
// Only tile slots carry hints; from a corridor slot the adjacent slot is a tile
func (p *Player) appendHints(hints []hint, prev, curr *maze.Cell) []hint {
	if _, ok := curr.At.Tile(); !ok {
		return hints
	}
	back, hasBack := maze.Direction(0), false
	if prev != nil {
		back, hasBack = towards(curr.At, prev.At)
	}
	for _, d := range maze.Cardinals {
		if !curr.Open(d) || (hasBack && d == back) {
			continue
		}
		adj := curr.At.Step(d, 1)
		if prev != nil && (p.lattice.PathLink(curr, d) == prev || adj == prev.At) {
			continue
		}
		hints = append(hints, hint{at: adj, glyph: p.theme.Direction(d)})
	}
	return hints
}

// towards returns the direction from a to b when both share a row or column
func towards(a, b maze.Point) (maze.Direction, bool) {
	switch {
	case a.X == b.X && b.Y < a.Y:
		return maze.North, true
	case a.X == b.X && b.Y > a.Y:
		return maze.South, true
	case a.Y == b.Y && b.X < a.X:
		return maze.West, true
	case a.Y == b.Y && b.X > a.X:
		return maze.East, true
	}
	return 0, false
}

// drawTrail draws branch hints seen along the history, then the travelled segments
func (p *Player) drawTrail(f Frame) {
	var prev *maze.Cell
	for _, id := range p.history.Cells() {
		c := p.lattice.At(id)
		for _, h := range p.appendHints(nil, nil, c) {
			f.set(h.at, h.glyph)
		}
		if prev != nil {
			f.segment(prev.At, c.At, p.theme.Trail)
		}
		prev = c
	}
	if prev != nil {
		f.segment(prev.At, p.cell.At, p.theme.Trail)
	}
}

// stampStatic draws start, end and player last so they are always visible
func (p *Player) stampStatic(f Frame) {
	f.set(p.lattice.Start().Actual(), p.theme.Start)
	f.set(p.lattice.End().Actual(), p.theme.End)
	f.set(p.cell.At, p.theme.Player)
}
