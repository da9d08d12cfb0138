package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-maze/audio"
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/maze"
	"github.com/lixenwraith/vi-maze/player"
)

// Sounder receives feedback effects; *audio.SoundManager satisfies it
type Sounder interface {
	Play(audio.Sound)
}

type silent struct{}

func (silent) Play(audio.Sound) {}

// Options configures one game session
type Options struct {
	Maze       maze.Config
	Theme      player.Theme
	LookAhead  int
	LookBehind int
	Mode       player.Mode
	Render     player.RenderMode
	Keys       KeyMap
	Sound      Sounder
}

// OptionsFromConfig maps file/flag settings onto session options
// Maze width/height are left for the caller to fill from the screen when zero
func OptionsFromConfig(cfg config.Config) (Options, error) {
	th, err := cfg.BuildTheme()
	if err != nil {
		return Options{}, err
	}
	keys, err := NewKeyMap(cfg.Keys)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Maze: maze.Config{
			Width:   cfg.Maze.Width,
			Height:  cfg.Maze.Height,
			Seed:    cfg.Maze.Seed,
			Workers: cfg.Maze.Workers,
		},
		Theme:      th,
		LookAhead:  cfg.Play.LookAhead,
		LookBehind: cfg.Play.LookBehind,
		Keys:       keys,
	}
	if cfg.Play.Snap {
		opts.Mode = player.Snap
	}
	if cfg.Play.Full {
		opts.Render = player.Full
	}
	return opts, nil
}

// Outcome reports what an input changed
type Outcome struct {
	Redraw bool
	Moved  bool
	Won    bool
	Quit   bool
}

// Session owns one lattice and the player walking it
type Session struct {
	id      uuid.UUID
	opts    Options
	lattice *maze.Lattice
	player  *player.Player
	render  player.RenderMode
	moves   int
	started time.Time
	log     *log.Entry
}

// NewSession generates a maze and places a player on it
func NewSession(opts Options) (*Session, error) {
	if opts.Keys == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Sound == nil {
		opts.Sound = silent{}
	}
	if opts.Theme == (player.Theme{}) {
		opts.Theme = player.DefaultTheme
	}

	s := &Session{
		id:     uuid.New(),
		opts:   opts,
		render: opts.Render,
	}
	s.log = log.WithField("session", s.id.String())

	if err := s.generate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) generate() error {
	begin := time.Now()

	l, err := maze.New(s.opts.Maze)
	if err != nil {
		return fmt.Errorf("new maze: %w", err)
	}
	if err := l.Generate(); err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}

	p, err := player.New(l,
		player.WithTheme(s.opts.Theme),
		player.WithLookAhead(s.opts.LookAhead),
		player.WithLookBehind(s.opts.LookBehind),
		player.WithMode(s.opts.Mode),
	)
	if err != nil {
		return fmt.Errorf("place player: %w", err)
	}

	s.lattice, s.player = l, p
	s.moves = 0
	s.started = time.Now()

	st := l.Stats()
	s.log.WithFields(log.Fields{
		"width":     l.Size().Width,
		"height":    l.Size().Height,
		"seed":      l.Seed(),
		"dead_ends": st.DeadEnds,
		"junctions": st.Junctions,
		"elapsed":   time.Since(begin),
	}).Info("maze generated")
	return nil
}

// ID returns the session identifier used in logs
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Lattice() *maze.Lattice { return s.lattice }
func (s *Session) Player() *player.Player { return s.player }
func (s *Session) RenderMode() player.RenderMode { return s.render }
func (s *Session) Keys() KeyMap { return s.opts.Keys }
func (s *Session) Moves() int { return s.moves }

// Elapsed returns the time since the current maze was generated
func (s *Session) Elapsed() time.Duration { return time.Since(s.started) }

// Won reports whether the player reached the goal
func (s *Session) Won() bool { return s.player.Won() }

// Frame renders the current state with the active strategy
func (s *Session) Frame() player.Frame {
	return s.player.Draw(s.render)
}

// HandleKey decodes and applies a key press
// Unbound keys are ignored
func (s *Session) HandleKey(r rune) Outcome {
	return s.Handle(s.opts.Keys.Lookup(r))
}

// Handle applies one action; at most one state mutation per call
func (s *Session) Handle(a Action) Outcome {
	if d, ok := a.Direction(); ok {
		return s.move(d)
	}

	switch a {
	case ActionToggleRender:
		s.render = s.render.Toggle()
		s.log.WithField("render", s.render).Debug("render mode toggled")
		return Outcome{Redraw: true, Won: s.Won()}
	case ActionToggleSnap:
		m := s.player.ToggleMode()
		s.opts.Mode = m
		s.log.WithField("mode", m).Debug("movement mode toggled")
		return Outcome{Redraw: true, Won: s.Won()}
	case ActionRegenerate:
		if err := s.Regenerate(); err != nil {
			s.log.WithError(err).Error("regenerate failed")
			return Outcome{}
		}
		return Outcome{Redraw: true, Won: s.Won()}
	case ActionQuit:
		s.log.WithField("moves", s.moves).Info("session quit")
		return Outcome{Quit: true, Won: s.Won()}
	}
	return Outcome{Won: s.Won()}
}

func (s *Session) move(d maze.Direction) Outcome {
	if s.Won() {
		return Outcome{Won: true}
	}
	if !s.player.Move(d) {
		s.opts.Sound.Play(audio.SoundBump)
		return Outcome{}
	}

	s.moves++
	s.log.WithFields(log.Fields{"dir": d, "at": s.player.Position()}).Debug("move")

	won := s.Won()
	switch {
	case won:
		s.opts.Sound.Play(audio.SoundWin)
		s.log.WithFields(log.Fields{"moves": s.moves, "elapsed": s.Elapsed()}).Info("maze solved")
	case s.player.Mode() == player.Snap:
		s.opts.Sound.Play(audio.SoundSnap)
	default:
		s.opts.Sound.Play(audio.SoundStep)
	}
	return Outcome{Redraw: true, Moved: true, Won: won}
}

// Regenerate discards the maze and carves a new one of the same size
// A fixed seed is dropped so the new maze differs from the old one
func (s *Session) Regenerate() error {
	s.opts.Maze.Seed = 0
	return s.generate()
}

// Resize starts over on a maze of a new logical size
func (s *Session) Resize(size maze.Size) error {
	s.opts.Maze.Width, s.opts.Maze.Height = size.Width, size.Height
	s.opts.Maze.Start, s.opts.Maze.End = nil, nil
	s.log.WithFields(log.Fields{"width": size.Width, "height": size.Height}).Info("surface resized, restarting")
	return s.generate()
}

// Header is the title line shown above the maze
func (s *Session) Header() string {
	sz := s.lattice.Size()
	return fmt.Sprintf("Maze Game (Size %dx%d)", sz.Width, sz.Height)
}

// Help is the key hint line shown under the header
func (s *Session) Help() string {
	key := func(a Action) string {
		if r, ok := s.opts.Keys.KeyFor(a); ok {
			return string(r)
		}
		return "?"
	}
	moves := fmt.Sprintf("%s%s%s%s", key(ActionMoveNorth), key(ActionMoveWest), key(ActionMoveSouth), key(ActionMoveEast))
	return fmt.Sprintf("Use %s to move. %s to exit. %s: %s view, %s: %s moves. This is you: %s",
		moves, key(ActionQuit),
		key(ActionToggleRender), s.render,
		key(ActionToggleSnap), s.player.Mode(),
		s.opts.Theme.Player)
}

// FitSize derives the largest logical maze that fits a cols×rows surface
// reserved rows are taken by header/status lines; glyphWidth is the theme column pitch
func FitSize(cols, rows, reserved, glyphWidth int) maze.Size {
	if glyphWidth < 1 {
		glyphWidth = 1
	}
	// Lattice spans 2w-1 columns after a one-cell margin, leaving one spare cell
	// on the right (the classic width/4-1 for two-column glyphs), and 2h-1 rows
	w := (cols/glyphWidth)/2 - 1
	h := (rows - reserved + 1) / 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return maze.Size{Width: w, Height: h}
}
