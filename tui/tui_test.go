package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/player"
)

func init() {
	log.SetOutput(io.Discard)
}

func newUI(t *testing.T, w, h int) *UI {
	t.Helper()
	return newSizedUI(t, w, h, false)
}

func newSizedUI(t *testing.T, w, h int, autoSize bool) *UI {
	t.Helper()
	u, err := New(game.Options{
		Maze:      maze.Config{Width: w, Height: h, Seed: 1},
		Theme:     player.ASCIITheme,
		LookAhead: 3,
	}, autoSize)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return u
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestCaptureMovesAndWins(t *testing.T) {
	u := newUI(t, 1, 2)

	if ev := u.capture(key(tcell.KeyRune, 's')); ev != nil {
		t.Error("handled key should be consumed")
	}
	if u.session.Moves() != 1 {
		t.Fatalf("moves = %d", u.session.Moves())
	}
	u.capture(key(tcell.KeyDown, 0))
	if !u.session.Won() {
		t.Fatal("expected a win after two steps south")
	}
	if name, _ := u.pages.GetFrontPage(); name != pageVictory {
		t.Errorf("front page = %q", name)
	}

	// Modal now owns the keys; escape still quits
	if ev := u.capture(key(tcell.KeyRune, 'w')); ev == nil {
		t.Error("keys should pass through to the modal")
	}
	u.capture(key(tcell.KeyEscape, 0))
	if !u.Quit() {
		t.Error("escape on the victory page should quit")
	}
}

func TestRegenerateHidesVictory(t *testing.T) {
	u := newUI(t, 1, 2)
	u.capture(key(tcell.KeyRune, 's'))
	u.capture(key(tcell.KeyRune, 's'))

	u.regenerate()
	if name, _ := u.pages.GetFrontPage(); name != pageMain {
		t.Errorf("front page = %q", name)
	}
	if u.session.Won() || u.session.Moves() != 0 {
		t.Error("regenerate should start a fresh game")
	}
}

func TestCaptureQuit(t *testing.T) {
	u := newUI(t, 3, 3)
	u.capture(key(tcell.KeyRune, 'x'))
	if !u.Quit() {
		t.Error("x should quit")
	}
}

func TestDrawFrameCentersMaze(t *testing.T) {
	u := newUI(t, 1, 2)
	sc := tcell.NewSimulationScreen("UTF-8")
	if err := sc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer sc.Fini()
	sc.SetSize(20, 12)

	// 1x3 lattice inside an 18x10 interior
	ix, iy, iw, ih := u.drawFrame(sc, u.session.Player().FullRender(), 0, 0, 20, 12)
	if ix != 1 || iy != 1 || iw != 18 || ih != 10 {
		t.Fatalf("inner rect = %d,%d %dx%d", ix, iy, iw, ih)
	}
	ox, oy := 1+(18-1)/2, 1+(10-3)/2
	if r, _, _, _ := sc.GetContent(ox, oy); r != '@' {
		t.Errorf("player = %q", r)
	}
	if r, _, _, _ := sc.GetContent(ox, oy+2); r != 'E' {
		t.Errorf("end = %q", r)
	}
	if r, _, _, _ := sc.GetContent(ox-1, oy); r != ' ' {
		t.Errorf("left of the maze = %q", r)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	u := newUI(t, 3, 3)
	sc := tcell.NewSimulationScreen("UTF-8")
	if err := sc.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sc.SetSize(60, 20)
	u.SetScreen(sc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestRefreshHeader(t *testing.T) {
	u := newUI(t, 2, 2)
	if got := u.header.GetText(true); !strings.HasPrefix(got, "Maze Game (Size 2x2)  moves 0") {
		t.Errorf("header = %q", got)
	}
}

func TestAutoSizeRestartsOnResize(t *testing.T) {
	sz := Fit(60, 20, player.ASCIITheme)
	if sz != (maze.Size{Width: 13, Height: 8}) {
		t.Fatalf("Fit(60, 20) = %v", sz)
	}
	u := newSizedUI(t, sz.Width, sz.Height, true)
	old := u.session.Lattice()

	// Same fit keeps the game in progress
	u.resize(60, 20)
	if u.session.Lattice() != old {
		t.Fatal("unchanged fit should not restart")
	}

	u.resize(40, 14)
	if got := u.session.Lattice().Size(); got != Fit(40, 14, player.ASCIITheme) {
		t.Errorf("size after resize = %v", got)
	}
	if got := u.header.GetText(true); !strings.Contains(got, "Size 8x5") {
		t.Errorf("header not refreshed: %q", got)
	}
}

func TestFixedSizeKeepsMazeOnResize(t *testing.T) {
	u := newUI(t, 4, 4)
	old := u.session.Lattice()
	u.resize(100, 40)
	if u.session.Lattice() != old {
		t.Error("configured size should not restart on resize")
	}
}

func TestResizeDuringVictoryKeepsGame(t *testing.T) {
	u := newSizedUI(t, 1, 2, true)
	u.capture(key(tcell.KeyRune, 's'))
	u.capture(key(tcell.KeyRune, 's'))
	if !u.session.Won() {
		t.Fatal("expected a win")
	}
	u.resize(80, 24)
	if !u.session.Won() {
		t.Error("resize under the victory dialog restarted the game")
	}
}
