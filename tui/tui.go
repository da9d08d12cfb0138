// Package tui is the two-pane tview front-end: the player's partial view
// beside a full map, with a ticking header
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/player"
	"github.com/lixenwraith/vi-maze/screen"
)

const (
	pageMain    = "main"
	pageVictory = "victory"

	// Header, status line and pane borders
	reservedRows = 4
)

// Fit returns the largest maze whose map pane fits a cols×rows terminal
// Each of the two panes gets half the columns minus its border
func Fit(cols, rows int, th player.Theme) maze.Size {
	return game.FitSize(cols/2-2, rows, reservedRows, th.Width())
}

// UI wires a session into a tview application
type UI struct {
	app     *tview.Application
	session *game.Session
	palette screen.Palette
	pitch   int

	header  *tview.TextView
	pov     *tview.Box
	overmap *tview.Box
	status  *tview.TextView
	pages   *tview.Pages
	victory *tview.Modal

	// Restart on a fitting maze when the terminal size changes
	autoSize   bool
	cols, rows int

	quit bool
}

// New generates the session and builds the layout
// The maze size in opts must be set; with autoSize the session restarts on a
// fitting maze whenever the terminal is resized
func New(opts game.Options, autoSize bool) (*UI, error) {
	if opts.Theme == (player.Theme{}) {
		opts.Theme = player.DefaultTheme
	}
	s, err := game.NewSession(opts)
	if err != nil {
		return nil, err
	}

	u := &UI{
		app:     tview.NewApplication(),
		session: s,
		palette: screen.NewPalette(opts.Theme),
		pitch:   opts.Theme.Width(),

		autoSize: autoSize,
	}

	u.header = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	u.header.SetBackgroundColor(tcell.ColorBlue)
	u.status = tview.NewTextView()

	u.pov = tview.NewBox()
	u.pov.SetBorder(true).SetTitle(" View ")
	u.pov.SetDrawFunc(func(sc tcell.Screen, x, y, w, h int) (int, int, int, int) {
		return u.drawFrame(sc, u.session.Frame(), x, y, w, h)
	})

	u.overmap = tview.NewBox()
	u.overmap.SetBorder(true).SetTitle(" Map ")
	u.overmap.SetDrawFunc(func(sc tcell.Screen, x, y, w, h int) (int, int, int, int) {
		return u.drawFrame(sc, u.session.Player().FullRender(), x, y, w, h)
	})

	body := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(u.pov, 0, 1, true).
		AddItem(u.overmap, 0, 1, false)
	main := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(u.status, 1, 0, false)

	u.victory = tview.NewModal().
		SetText("Congratulations. You won!").
		AddButtons([]string{"New maze", "Quit"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "New maze" {
				u.regenerate()
				return
			}
			u.stop()
		})

	u.pages = tview.NewPages().
		AddPage(pageMain, main, true, true).
		AddPage(pageVictory, u.victory, true, false)

	u.app.SetRoot(u.pages, true)
	u.app.SetInputCapture(u.capture)
	u.app.SetBeforeDrawFunc(func(sc tcell.Screen) bool {
		w, h := sc.Size()
		u.resize(w, h)
		return false
	})
	u.refresh()
	return u, nil
}

// Session returns the running session
func (u *UI) Session() *game.Session { return u.session }

// SetScreen runs the application on a prepared screen instead of the terminal
func (u *UI) SetScreen(s tcell.Screen) { u.app.SetScreen(s) }

// Run blocks until the player quits or ctx is cancelled
func (u *UI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go u.tick(ctx)
	go func() {
		<-ctx.Done()
		u.app.Stop()
	}()

	return u.app.Run()
}

// tick refreshes the header clock once a second
func (u *UI) tick(ctx context.Context) {
	t := time.NewTicker(time.Second)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			u.app.QueueUpdateDraw(u.refresh)
		}
	}
}

func (u *UI) capture(ev *tcell.EventKey) *tcell.EventKey {
	if ev == nil {
		return nil
	}
	if name, _ := u.pages.GetFrontPage(); name == pageVictory {
		// Modal buttons handle their own keys
		if ev.Key() == tcell.KeyEscape {
			u.stop()
			return nil
		}
		return ev
	}

	out := u.session.Handle(screen.Decode(u.session.Keys(), ev))
	switch {
	case out.Quit:
		u.stop()
	case out.Won:
		u.refresh()
		u.pages.ShowPage(pageVictory)
		u.app.SetFocus(u.victory)
	case out.Redraw:
		u.refresh()
	}
	return nil
}

func (u *UI) regenerate() {
	if err := u.session.Regenerate(); err != nil {
		log.WithError(err).Error("regenerate failed")
		u.stop()
		return
	}
	u.pages.HidePage(pageVictory)
	u.app.SetFocus(u.pov)
	u.refresh()
}

// resize restarts an auto-sized session when the terminal no longer fits its maze
// Runs inside the draw, so it must not touch application focus
func (u *UI) resize(cols, rows int) {
	if cols == u.cols && rows == u.rows {
		return
	}
	u.cols, u.rows = cols, rows
	if !u.autoSize {
		return
	}
	if name, _ := u.pages.GetFrontPage(); name == pageVictory {
		return
	}

	sz := Fit(cols, rows, u.session.Player().Theme())
	if sz == u.session.Lattice().Size() {
		return
	}
	log.WithFields(log.Fields{"cols": cols, "rows": rows}).Debug("terminal resized")
	if err := u.session.Resize(sz); err != nil {
		log.WithError(err).Error("restart after resize failed")
		return
	}
	u.refresh()
}

func (u *UI) stop() {
	u.quit = true
	u.app.Stop()
}

// Quit reports whether the player asked to leave
func (u *UI) Quit() bool { return u.quit }

func (u *UI) refresh() {
	s := u.session
	u.header.SetText(fmt.Sprintf("%s  moves %d  %s", s.Header(), s.Moves(), s.Elapsed().Truncate(time.Second)))
	u.status.SetText(s.Help())
}

// drawFrame centers a frame inside a bordered box and returns the inner rect
func (u *UI) drawFrame(sc tcell.Screen, f player.Frame, x, y, w, h int) (int, int, int, int) {
	ix, iy, iw, ih := x+1, y+1, w-2, h-2
	if iw <= 0 || ih <= 0 || len(f) == 0 {
		return ix, iy, iw, ih
	}

	fw, fh := len(f[0])*u.pitch, len(f)
	ox, oy := ix, iy
	if fw < iw {
		ox += (iw - fw) / 2
	}
	if fh < ih {
		oy += (ih - fh) / 2
	}

	for row, cells := range f {
		sy := oy + row
		if sy >= iy+ih {
			break
		}
		for col, g := range cells {
			sx := ox + col*u.pitch
			if sx+u.pitch > ix+iw {
				break
			}
			screen.PutGlyph(sc, sx, sy, g, u.pitch, u.palette.Style(g))
		}
	}
	return ix, iy, iw, ih
}
