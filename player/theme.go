package player

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-maze/maze"
)

// Role is a visual role a glyph can be assigned to
type Role uint8

const (
	RoleWall Role = iota
	RoleTile
	RolePlayer
	RoleStart
	RoleEnd
	RoleUp
	RoleDown
	RoleLeft
	RoleRight
	RoleTrail
	roleCount
)

var roleNames = [roleCount]string{
	"wall", "tile", "player", "start", "end", "up", "down", "left", "right", "trail",
}

func (r Role) String() string {
	if r >= roleCount {
		return "unknown"
	}
	return roleNames[r]
}

// Roles lists every role in declaration order
func Roles() []Role {
	out := make([]Role, roleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}

// RoleByName resolves a role from its configuration key
func RoleByName(name string) (Role, bool) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return 0, false
}

// Theme maps every visual role to a display glyph
// Passed by value; a Theme is never mutated once built
type Theme struct {
	Wall   string
	Tile   string
	Player string
	Start  string
	End    string
	Up     string
	Down   string
	Left   string
	Right  string
	Trail  string
}

// DefaultTheme renders with emoji squares, two terminal columns per glyph
var DefaultTheme = Theme{
	Wall:   "\u2b1c",     // white large square
	Tile:   "\U0001f7eb", // large brown square
	Player: "\U0001f608", // smiling face with horns
	Start:  "\U0001f7e5", // large red square
	End:    "\U0001f7e9", // large green square
	Up:     "\u2b06\ufe0f",
	Down:   "\u2b07\ufe0f",
	Left:   "\u2b05\ufe0f",
	Right:  "\u27a1\ufe0f",
	Trail:  "\U0001f538", // small orange diamond
}

// ASCIITheme is a single-column fallback for terminals without emoji
var ASCIITheme = Theme{
	Wall:   "#",
	Tile:   " ",
	Player: "@",
	Start:  "S",
	End:    "E",
	Up:     "^",
	Down:   "v",
	Left:   "<",
	Right:  ">",
	Trail:  ".",
}

// Role returns the glyph bound to r
func (t Theme) Role(r Role) string {
	switch r {
	case RoleWall:
		return t.Wall
	case RoleTile:
		return t.Tile
	case RolePlayer:
		return t.Player
	case RoleStart:
		return t.Start
	case RoleEnd:
		return t.End
	case RoleUp:
		return t.Up
	case RoleDown:
		return t.Down
	case RoleLeft:
		return t.Left
	case RoleRight:
		return t.Right
	case RoleTrail:
		return t.Trail
	}
	return ""
}

// With returns a copy of t with role r rebound to glyph
func (t Theme) With(r Role, glyph string) Theme {
	switch r {
	case RoleWall:
		t.Wall = glyph
	case RoleTile:
		t.Tile = glyph
	case RolePlayer:
		t.Player = glyph
	case RoleStart:
		t.Start = glyph
	case RoleEnd:
		t.End = glyph
	case RoleUp:
		t.Up = glyph
	case RoleDown:
		t.Down = glyph
	case RoleLeft:
		t.Left = glyph
	case RoleRight:
		t.Right = glyph
	case RoleTrail:
		t.Trail = glyph
	}
	return t
}

// Glyph returns the glyph for a cell kind
func (t Theme) Glyph(k maze.Kind) string {
	switch k {
	case maze.KindWall:
		return t.Wall
	case maze.KindTile:
		return t.Tile
	case maze.KindStart:
		return t.Start
	case maze.KindEnd:
		return t.End
	}
	return ""
}

// Direction maps N→up, S→down, W→left, E→right
func (t Theme) Direction(d maze.Direction) string {
	return t.Role(DirectionRole(d))
}

// DirectionRole returns the hint role for a direction
func DirectionRole(d maze.Direction) Role {
	switch d {
	case maze.North:
		return RoleUp
	case maze.South:
		return RoleDown
	case maze.West:
		return RoleLeft
	case maze.East:
		return RoleRight
	}
	return roleCount
}

// Width returns the display width of the widest glyph
// Front-ends use it as the column pitch of one lattice cell
func (t Theme) Width() int {
	w := 0
	for _, r := range Roles() {
		if gw := runewidth.StringWidth(t.Role(r)); gw > w {
			w = gw
		}
	}
	return w
}
