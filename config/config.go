// Package config loads game settings from an optional TOML file
//
// Example:
//
//	[maze]
//	width = 30
//	height = 12
//	seed = 42
//
//	[play]
//	snap = true
//	lookahead = 4
//	theme = "ascii"
//
//	[theme]
//	player = "@"
//
//	[keys]
//	up = "k"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-maze/player"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

// Config is the full set of user settings
type Config struct {
	Maze  MazeConfig        `toml:"maze"`
	Play  PlayConfig        `toml:"play"`
	Theme map[string]string `toml:"theme"`
	Keys  KeyConfig         `toml:"keys"`
	Audio AudioConfig       `toml:"audio"`
}

// MazeConfig sizes the lattice; zero width/height means derive from the terminal
type MazeConfig struct {
	Width   int   `toml:"width"`
	Height  int   `toml:"height"`
	Seed    int64 `toml:"seed"`
	Workers int   `toml:"workers"`
}

// PlayConfig holds movement and rendering preferences
type PlayConfig struct {
	Snap       bool   `toml:"snap"`
	Full       bool   `toml:"full"`
	LookAhead  int    `toml:"lookahead"`
	LookBehind int    `toml:"lookbehind"`
	Preset     string `toml:"theme"`
}

// KeyConfig binds single characters to game actions
type KeyConfig struct {
	Up           string `toml:"up"`
	Down         string `toml:"down"`
	Left         string `toml:"left"`
	Right        string `toml:"right"`
	Quit         string `toml:"quit"`
	ToggleRender string `toml:"toggle_render"`
	ToggleSnap   string `toml:"toggle_snap"`
	Regenerate   string `toml:"regenerate"`
}

// AudioConfig controls sound feedback
type AudioConfig struct {
	Mute   bool    `toml:"mute"`
	Volume float64 `toml:"volume"`
}

// Theme presets
const (
	PresetEmoji = "emoji"
	PresetASCII = "ascii"
)

// Default returns the settings used when no file is given
func Default() Config {
	return Config{
		Play: PlayConfig{
			LookAhead: player.DefaultLookAhead,
			Preset:    PresetEmoji,
		},
		Keys: KeyConfig{
			Up:           "w",
			Down:         "s",
			Left:         "a",
			Right:        "d",
			Quit:         "x",
			ToggleRender: "f",
			ToggleSnap:   "t",
			Regenerate:   "r",
		},
		Audio: AudioConfig{Volume: 0.5},
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result
// Unknown keys are rejected so typos surface instead of silently doing nothing
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges, theme roles and key bindings
func (c Config) Validate() error {
	if c.Maze.Width < 0 || c.Maze.Height < 0 {
		return fmt.Errorf("%w: maze size %dx%d", ErrInvalid, c.Maze.Width, c.Maze.Height)
	}
	if c.Play.LookAhead < 0 {
		return fmt.Errorf("%w: lookahead %d", ErrInvalid, c.Play.LookAhead)
	}
	if c.Play.LookBehind < 0 {
		return fmt.Errorf("%w: lookbehind %d", ErrInvalid, c.Play.LookBehind)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if _, err := c.BuildTheme(); err != nil {
		return err
	}
	if _, err := c.Keys.Runes(); err != nil {
		return err
	}
	return nil
}

// BuildTheme starts from the preset and applies per-role overrides
func (c Config) BuildTheme() (player.Theme, error) {
	var th player.Theme
	switch c.Play.Preset {
	case "", PresetEmoji:
		th = player.DefaultTheme
	case PresetASCII:
		th = player.ASCIITheme
	default:
		return player.Theme{}, fmt.Errorf("%w: theme preset %q", ErrInvalid, c.Play.Preset)
	}

	for name, glyph := range c.Theme {
		role, ok := player.RoleByName(name)
		if !ok {
			return player.Theme{}, fmt.Errorf("%w: theme role %q", ErrInvalid, name)
		}
		if glyph == "" {
			return player.Theme{}, fmt.Errorf("%w: theme role %q has an empty glyph", ErrInvalid, name)
		}
		th = th.With(role, glyph)
	}
	return th, nil
}

// Runes resolves every binding to its character, keyed by action name
func (k KeyConfig) Runes() (map[string]rune, error) {
	fields := []struct {
		name, value string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"quit", k.Quit},
		{"toggle_render", k.ToggleRender},
		{"toggle_snap", k.ToggleSnap},
		{"regenerate", k.Regenerate},
	}

	out := make(map[string]rune, len(fields))
	seen := make(map[rune]string, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) != 1 {
			return nil, fmt.Errorf("%w: key %s must be a single character, got %q", ErrInvalid, f.name, f.value)
		}
		r, _ := utf8.DecodeRuneInString(f.value)
		if other, dup := seen[r]; dup {
			return nil, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, f.value, other, f.name)
		}
		seen[r] = f.name
		out[f.name] = r
	}
	return out, nil
}
