package game

import (
	"fmt"
	"unicode"

	"github.com/lixenwraith/vi-maze/config"
	"github.com/lixenwraith/vi-maze/maze"
)

// Action is a high-level command decoded from a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionToggleRender
	ActionToggleSnap
	ActionRegenerate
	ActionQuit
)

var actionNames = map[string]Action{
	"up":            ActionMoveNorth,
	"down":          ActionMoveSouth,
	"left":          ActionMoveWest,
	"right":         ActionMoveEast,
	"toggle_render": ActionToggleRender,
	"toggle_snap":   ActionToggleSnap,
	"regenerate":    ActionRegenerate,
	"quit":          ActionQuit,
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "none"
}

// Direction returns the movement direction of a move action
func (a Action) Direction() (maze.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return maze.North, true
	case ActionMoveSouth:
		return maze.South, true
	case ActionMoveWest:
		return maze.West, true
	case ActionMoveEast:
		return maze.East, true
	}
	return 0, false
}

// KeyMap resolves runes to actions, case-insensitively
type KeyMap map[rune]Action

// NewKeyMap builds a key map from configured bindings
func NewKeyMap(k config.KeyConfig) (KeyMap, error) {
	runes, err := k.Runes()
	if err != nil {
		return nil, err
	}
	km := make(KeyMap, len(runes)*2)
	for name, r := range runes {
		a, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown action %q", config.ErrInvalid, name)
		}
		km[unicode.ToLower(r)] = a
		km[unicode.ToUpper(r)] = a
	}
	return km, nil
}

// DefaultKeyMap is WASD movement, x quit, f/t toggles, r regenerate
func DefaultKeyMap() KeyMap {
	km, err := NewKeyMap(config.Default().Keys)
	if err != nil {
		panic(err)
	}
	return km
}

// Lookup returns the bound action or ActionNone
func (km KeyMap) Lookup(r rune) Action {
	return km[r]
}

// KeyFor returns the lower-case rune bound to a, if any
func (km KeyMap) KeyFor(a Action) (rune, bool) {
	for r, bound := range km {
		if bound == a && !unicode.IsUpper(r) {
			return r, true
		}
	}
	return 0, false
}
