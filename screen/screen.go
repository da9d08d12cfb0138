// Package screen is the full-screen terminal front-end built on tcell
package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/player"
)

// Rows above the maze: header, help line, spacer
const reservedRows = 3

// App drives one session on a tcell screen
type App struct {
	screen  tcell.Screen
	opts    game.Options
	session *game.Session
	palette Palette
	pitch   int // columns per lattice cell

	// Derive the maze size from the screen; false when the size was configured
	autoSize      bool
	width, height int
}

// New prepares an app on an initialized screen
// Zero maze width/height in opts are derived from the screen size
func New(s tcell.Screen, opts game.Options) *App {
	if opts.Theme == (player.Theme{}) {
		opts.Theme = player.DefaultTheme
	}
	a := &App{
		screen:   s,
		opts:     opts,
		palette:  NewPalette(opts.Theme),
		pitch:    opts.Theme.Width(),
		autoSize: opts.Maze.Width == 0 || opts.Maze.Height == 0,
	}
	a.width, a.height = s.Size()
	return a
}

// Session returns the running session, nil before Start
func (a *App) Session() *game.Session { return a.session }

// Start shows the generating banner, builds the session and draws the first frame
func (a *App) Start() error {
	a.banner("Generating maze...", bannerStyle)

	if a.autoSize {
		sz := a.fit()
		a.opts.Maze.Width, a.opts.Maze.Height = sz.Width, sz.Height
	}

	s, err := game.NewSession(a.opts)
	if err != nil {
		return err
	}
	a.session = s
	a.draw()
	return nil
}

// Run processes events until the player quits or wins and acknowledges
// Reports whether the maze was solved
func (a *App) Run() (bool, error) {
	if a.session == nil {
		if err := a.Start(); err != nil {
			return false, err
		}
	}

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return a.session.Won(), nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			out := a.session.Handle(a.decode(ev))
			if out.Quit {
				return a.session.Won(), nil
			}
			if out.Won {
				a.victory()
				a.waitKey()
				return true, nil
			}
			if out.Redraw {
				a.draw()
			}

		case *tcell.EventResize:
			if err := a.handleResize(); err != nil {
				return false, err
			}
		}
	}
}

func (a *App) decode(ev *tcell.EventKey) game.Action {
	return Decode(a.session.Keys(), ev)
}

// Decode maps arrows, escape and bound runes to actions
func Decode(km game.KeyMap, ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionQuit
	case tcell.KeyUp:
		return game.ActionMoveNorth
	case tcell.KeyDown:
		return game.ActionMoveSouth
	case tcell.KeyLeft:
		return game.ActionMoveWest
	case tcell.KeyRight:
		return game.ActionMoveEast
	case tcell.KeyRune:
		return km.Lookup(ev.Rune())
	}
	return game.ActionNone
}

// handleResize restarts the session on a maze fitting the new surface
func (a *App) handleResize() error {
	a.screen.Sync()
	w, h := a.screen.Size()
	if w == a.width && h == a.height {
		a.draw()
		return nil
	}
	a.width, a.height = w, h

	if sz := a.fit(); a.autoSize && sz != a.session.Lattice().Size() {
		log.WithFields(log.Fields{"cols": w, "rows": h}).Debug("terminal resized")
		a.banner("Generating maze...", bannerStyle)
		if err := a.session.Resize(sz); err != nil {
			return fmt.Errorf("restart after resize: %w", err)
		}
	}
	a.draw()
	return nil
}

func (a *App) fit() maze.Size {
	return game.FitSize(a.width, a.height, reservedRows, a.pitch)
}

func (a *App) draw() {
	a.screen.Clear()

	a.line(0, padRight(center(a.session.Header(), a.width), a.width), headerStyle)
	a.line(1, padRight(a.session.Help(), a.width), helpStyle)

	frame := a.session.Frame()
	for y, row := range frame {
		sy := y + reservedRows
		if sy >= a.height {
			break
		}
		for x, glyph := range row {
			sx := (x + 1) * a.pitch
			if sx+a.pitch > a.width {
				break
			}
			a.glyph(sx, sy, glyph, a.palette.Style(glyph))
		}
	}

	a.screen.Show()
}

func (a *App) glyph(x, y int, g string, st tcell.Style) {
	PutGlyph(a.screen, x, y, g, a.pitch, st)
}

// PutGlyph draws one lattice cell at x,y, padding narrow glyphs to pitch columns
// Zero-width runes ride along as combining characters of the preceding rune
func PutGlyph(s tcell.Screen, x, y int, g string, pitch int, st tcell.Style) {
	col := x
	var main rune
	var comb []rune
	flush := func() {
		if main == 0 {
			return
		}
		s.SetContent(col, y, main, comb, st)
		col += runewidth.RuneWidth(main)
	}
	for _, r := range g {
		if main != 0 && runewidth.RuneWidth(r) == 0 {
			comb = append(comb, r)
			continue
		}
		flush()
		main, comb = r, nil
	}
	flush()
	for ; col < x+pitch; col++ {
		s.SetContent(col, y, ' ', nil, st)
	}
}

func (a *App) line(y int, text string, st tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= a.width {
			return
		}
		a.screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

func (a *App) banner(text string, st tcell.Style) {
	a.screen.Clear()
	mid := a.height / 2
	a.line(mid, padRight(center(text, a.width), a.width), st)
	a.screen.Show()
}

func (a *App) victory() {
	a.screen.Clear()
	mid := a.height / 2
	blank := padRight("", a.width)
	a.line(mid-1, blank, victoryStyle)
	a.line(mid, padRight(center("Congratulations. You won!", a.width), a.width), victoryStyle)
	a.line(mid+1, blank, victoryStyle)
	a.line(mid+3, center(fmt.Sprintf("%d moves in %s", a.session.Moves(), a.session.Elapsed().Round(1e9)), a.width), tcell.StyleDefault)
	a.screen.Show()
}

func (a *App) waitKey() {
	for {
		switch a.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return runewidth.FillLeft(s, w+(width-w)/2)
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
