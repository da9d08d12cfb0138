package player

import (
	"errors"

	"github.com/lixenwraith/vi-maze/maze"
)

// ErrNotGenerated is returned when a player is placed on an ungenerated lattice
var ErrNotGenerated = errors.New("player: lattice has not been generated")

// DefaultLookAhead is the number of decision points revealed by the partial render
const DefaultLookAhead = 3

// Mode selects movement granularity
type Mode uint8

const (
	// Step moves one slot along an open corridor
	Step Mode = iota
	// Snap jumps to the next decision point
	Snap
)

func (m Mode) String() string {
	if m == Snap {
		return "snap"
	}
	return "step"
}

// Player is a cursor over a generated lattice
// It borrows the lattice and must not outlive it
type Player struct {
	lattice   *maze.Lattice
	cell      *maze.Cell
	mode      Mode
	theme     Theme
	lookAhead int
	history   *History
}

// Option configures a Player
type Option func(*Player)

// WithTheme sets the glyph theme
func WithTheme(t Theme) Option {
	return func(p *Player) { p.theme = t }
}

// WithLookBehind bounds the trail history; 0 keeps every move
func WithLookBehind(n int) Option {
	return func(p *Player) { p.history = NewHistory(n) }
}

// WithLookAhead sets how many decision points the partial render reveals
func WithLookAhead(n int) Option {
	return func(p *Player) {
		if n < 0 {
			n = 0
		}
		p.lookAhead = n
	}
}

// WithMode sets the initial movement mode
func WithMode(m Mode) Option {
	return func(p *Player) { p.mode = m }
}

// New places a player on the start tile of a generated lattice
func New(l *maze.Lattice, opts ...Option) (*Player, error) {
	if l == nil || !l.Generated() {
		return nil, ErrNotGenerated
	}
	start := l.Cell(l.Start())
	if start == nil {
		return nil, ErrNotGenerated
	}

	p := &Player{
		lattice:   l,
		cell:      start,
		mode:      Step,
		theme:     DefaultTheme,
		lookAhead: DefaultLookAhead,
		history:   NewHistory(0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Cell returns the cell under the cursor
func (p *Player) Cell() *maze.Cell { return p.cell }

// Position returns the doubled coordinate of the cursor
func (p *Player) Position() maze.Point { return p.cell.At }

// Lattice returns the maze the player walks
func (p *Player) Lattice() *maze.Lattice { return p.lattice }

// Mode returns the active movement mode
func (p *Player) Mode() Mode { return p.mode }

// SetMode switches the movement mode
func (p *Player) SetMode(m Mode) { p.mode = m }

// Theme returns the glyph theme used by the renderers
func (p *Player) Theme() Theme { return p.theme }

// LookAhead returns the decision-point depth of the partial render
func (p *Player) LookAhead() int { return p.lookAhead }

// History returns the trail of previously occupied cells
func (p *Player) History() *History { return p.history }

// ToggleMode flips between step and snap movement
func (p *Player) ToggleMode() Mode {
	if p.mode == Snap {
		p.mode = Step
	} else {
		p.mode = Snap
	}
	return p.mode
}

// Won reports whether the cursor sits on the goal
func (p *Player) Won() bool {
	return p.lattice.IsEnd(p.cell.At)
}

// Move advances the cursor in direction d and reports whether it moved
// Illegal moves and non-cardinal directions leave the state untouched
func (p *Player) Move(d maze.Direction) bool {
	if !d.Valid() {
		return false
	}

	var next *maze.Cell
	switch p.mode {
	case Snap:
		next = p.lattice.PathLink(p.cell, d)
	default:
		if p.cell.Open(d) {
			next = p.lattice.Cell(p.cell.At.Step(d, 1))
		}
	}

	if next == nil || next == p.cell {
		return false
	}

	p.history.Push(p.cell.ID)
	p.cell = next
	return true
}

// MoveKey moves by direction name ("N", "S", "E", "W"); anything else is ignored
func (p *Player) MoveKey(s string) bool {
	d, ok := maze.ParseDirection(s)
	if !ok {
		return false
	}
	return p.Move(d)
}
