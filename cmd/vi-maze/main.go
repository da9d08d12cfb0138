package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-maze/audio"
	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/game"
	"github.com/lixenwraith/vi-maze/screen"
	"github.com/lixenwraith/vi-maze/tui"
)

var (
	fullFlag       = flag.Bool("full", false, "Render the whole maze instead of the partial view")
	snapFlag       = flag.Bool("snap", false, "Jump to the next decision point on each move")
	configFlag     = flag.String("config", "", "Path to a TOML settings file")
	seedFlag       = flag.Int64("seed", 0, "Maze seed (0 picks one from the clock)")
	lookAheadFlag  = flag.Int("lookahead", 0, "Corridor segments revealed ahead of the player")
	lookBehindFlag = flag.Int("lookbehind", 0, "Trail length kept behind the player (0 keeps all)")
	widthFlag      = flag.Int("width", 0, "Maze width in tiles (0 fits the terminal)")
	heightFlag     = flag.Int("height", 0, "Maze height in tiles (0 fits the terminal)")
	tuiFlag        = flag.Bool("tui", false, "Two-pane view with a full map")
	muteFlag       = flag.Bool("mute", false, "Disable sound effects")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/vi-maze.log")
)

// Seams replaced in tests
var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	play       = func(opts game.Options) error {
		if *tuiFlag {
			return runTUI(opts)
		}
		return runScreen(opts)
	}
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code; deferred cleanup finishes before main exits
func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	if !isTerminal() {
		fmt.Fprintln(os.Stderr, "vi-maze needs an interactive terminal")
		return 1
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	opts, err := game.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		return 1
	}

	// Sound is optional, the game continues silently on any audio failure
	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetMuted(cfg.Audio.Mute)
	if !cfg.Audio.Mute {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
	}
	defer sound.Cleanup()
	opts.Sound = sound

	if err := play(opts); err != nil {
		log.WithError(err).Error("game ended with an error")
		fmt.Fprintf(os.Stderr, "vi-maze: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the optional file, then applies explicitly set flags on top
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "full":
			cfg.Play.Full = *fullFlag
		case "snap":
			cfg.Play.Snap = *snapFlag
		case "seed":
			cfg.Maze.Seed = *seedFlag
		case "lookahead":
			cfg.Play.LookAhead = *lookAheadFlag
		case "lookbehind":
			cfg.Play.LookBehind = *lookBehindFlag
		case "width":
			cfg.Maze.Width = *widthFlag
		case "height":
			cfg.Maze.Height = *heightFlag
		case "mute":
			cfg.Audio.Mute = *muteFlag
		}
	})
	return cfg, cfg.Validate()
}

func runScreen(opts game.Options) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}

	// Panic Recovery: restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			scr.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app := screen.New(scr, opts)
	won, err := app.Run()
	scr.Fini()
	if err != nil {
		return err
	}

	if s := app.Session(); s != nil && won {
		fmt.Printf("Solved a %dx%d maze in %d moves\n", s.Lattice().Size().Width, s.Lattice().Size().Height, s.Moves())
	}
	return nil
}

func runTUI(opts game.Options) error {
	autoSize := opts.Maze.Width == 0 || opts.Maze.Height == 0
	if autoSize {
		cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return fmt.Errorf("terminal size: %w", err)
		}
		sz := tui.Fit(cols, rows, opts.Theme)
		if opts.Maze.Width == 0 {
			opts.Maze.Width = sz.Width
		}
		if opts.Maze.Height == 0 {
			opts.Maze.Height = sz.Height
		}
	}

	u, err := tui.New(opts, autoSize)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := u.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
