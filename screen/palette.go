package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-maze/player"
)

// Role colors, modeled on the classic terminal look: black walls, green floor
var roleStyles = map[player.Role]tcell.Style{
	player.RoleWall:   tcell.StyleDefault.Background(tcell.ColorBlack),
	player.RoleTile:   tcell.StyleDefault.Background(tcell.ColorGreen),
	player.RolePlayer: tcell.StyleDefault.Background(tcell.ColorGreen).Bold(true),
	player.RoleStart:  tcell.StyleDefault.Background(tcell.ColorRed),
	player.RoleEnd:    tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorGreen),
	player.RoleUp:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	player.RoleDown:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	player.RoleLeft:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	player.RoleRight:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
	player.RoleTrail:  tcell.StyleDefault.Foreground(tcell.ColorOrange).Background(tcell.ColorGreen),
}

var (
	headerStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	helpStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	bannerStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkKhaki)
	victoryStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLime)
)

// Palette resolves rendered glyphs back to their styles
type Palette struct {
	styles map[string]tcell.Style
}

// NewPalette indexes the theme glyphs by role style
// When two roles share a glyph the later role in declaration order wins
func NewPalette(th player.Theme) Palette {
	p := Palette{styles: make(map[string]tcell.Style, len(roleStyles))}
	for _, r := range player.Roles() {
		p.styles[th.Role(r)] = roleStyles[r]
	}
	return p
}

// Style returns the style of a glyph, default style for unknown glyphs
func (p Palette) Style(glyph string) tcell.Style {
	if st, ok := p.styles[glyph]; ok {
		return st
	}
	return tcell.StyleDefault
}
