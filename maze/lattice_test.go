package maze

import (
	"errors"
	"testing"
)

func newGenerated(t *testing.T, w, h int, seed int64) *Lattice {
	t.Helper()
	l, err := New(Config{Width: w, Height: h, Seed: seed})
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	if err := l.Generate(); err != nil {
		t.Fatalf("Generate(%d, %d): %v", w, h, err)
	}
	return l
}

func TestNewRejectsInvalidSize(t *testing.T) {
	cases := []struct{ w, h int }{{0, 1}, {1, 0}, {-1, 3}, {0, 0}}
	for _, tc := range cases {
		if _, err := New(Config{Width: tc.w, Height: tc.h}); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", tc.w, tc.h, err)
		}
	}
}

func TestNewPlacesEndpointsOnOuterRows(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l, err := New(Config{Width: 7, Height: 5, Seed: seed})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if s := l.Start(); s.Y != 0 || s.X < 0 || s.X >= 7 {
			t.Errorf("seed %d: start %v not on top row", seed, s)
		}
		if e := l.End(); e.Y != 4 || e.X < 0 || e.X >= 7 {
			t.Errorf("seed %d: end %v not on bottom row", seed, e)
		}
		if b := l.Bounds(); b.Width != 13 || b.Height != 9 {
			t.Errorf("seed %d: bounds %v, want 13x9", seed, b)
		}
	}
}

func TestNewExplicitEndpoints(t *testing.T) {
	l, err := New(Config{Width: 4, Height: 3, Start: &Tile{X: 2, Y: 0}, End: &Tile{X: 1, Y: 2}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Start() != (Tile{X: 2, Y: 0}) || l.End() != (Tile{X: 1, Y: 2}) {
		t.Errorf("endpoints = %v, %v", l.Start(), l.End())
	}

	if _, err := New(Config{Width: 4, Height: 3, Start: &Tile{X: 0, Y: 1}}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("start off top row: error = %v, want ErrOutOfBounds", err)
	}
	if _, err := New(Config{Width: 4, Height: 3, End: &Tile{X: 4, Y: 2}}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("end past width: error = %v, want ErrOutOfBounds", err)
	}
}

func TestCellLookup(t *testing.T) {
	l, err := New(Config{Width: 3, Height: 2, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	outside := []Coord{
		Point{X: -1, Y: 0},
		Point{X: 0, Y: -1},
		Point{X: 5, Y: 0},
		Point{X: 0, Y: 3},
		Tile{X: 3, Y: 0},
		Tile{X: 0, Y: 2},
	}
	for _, c := range outside {
		if cell := l.Cell(c); cell != nil {
			t.Errorf("Cell(%v) = %v, want nil", c, cell.At)
		}
	}

	a := l.Cell(Tile{X: 1, Y: 1})
	b := l.Cell(Point{X: 2, Y: 2})
	if a == nil || a != b {
		t.Fatalf("Tile{1,1} and Point{2,2} resolved to different cells")
	}
	if a.At != (Point{X: 2, Y: 2}) {
		t.Errorf("cell at %v, want (2,2)", a.At)
	}
	if !SameCell(Tile{X: 1, Y: 1}, Point{X: 2, Y: 2}) {
		t.Error("SameCell should compare doubled coordinates")
	}
}

func TestSetKindIgnoresOutOfRange(t *testing.T) {
	l, err := New(Config{Width: 2, Height: 2, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.SetKind(Point{X: 10, Y: 10}, KindTile)
	l.SetKind(Point{X: 1, Y: 1}, KindTile)
	if k := l.Cell(Point{X: 1, Y: 1}).Kind; k != KindTile {
		t.Errorf("kind = %v, want tile", k)
	}
}

func TestCoordinateConversions(t *testing.T) {
	if got := Midpoint(Tile{X: 0, Y: 0}, Tile{X: 1, Y: 0}); got != (Point{X: 1, Y: 0}) {
		t.Errorf("Midpoint = %v, want (1,0)", got)
	}
	if got := Midpoint(Point{X: 4, Y: 2}, Point{X: 4, Y: 4}); got != (Point{X: 4, Y: 3}) {
		t.Errorf("Midpoint = %v, want (4,3)", got)
	}

	if tile, ok := (Point{X: 6, Y: 4}).Tile(); !ok || tile != (Tile{X: 3, Y: 2}) {
		t.Errorf("Point{6,4}.Tile() = %v, %v", tile, ok)
	}
	for _, p := range []Point{{X: 1, Y: 0}, {X: 0, Y: 3}, {X: -2, Y: 0}} {
		if _, ok := p.Tile(); ok {
			t.Errorf("%v should not convert to a tile", p)
		}
	}

	if got := (Point{X: 2, Y: 2}).Step(West, 2); got != (Point{X: 0, Y: 2}) {
		t.Errorf("Step = %v", got)
	}
}

func TestEmptyNeighborsOrder(t *testing.T) {
	l, err := New(Config{Width: 3, Height: 3, Seed: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := l.EmptyNeighbors(l.Cell(Tile{X: 1, Y: 1}))
	want := []Direction{North, South, West, East}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(want))
	}
	for i, n := range got {
		if n.Dir != want[i] {
			t.Errorf("neighbor %d dir = %v, want %v", i, n.Dir, want[i])
		}
		if n.Cell != l.Cell(Tile{X: 1, Y: 1}.Actual().Step(n.Dir, 2)) {
			t.Errorf("neighbor %d is not two steps %v", i, n.Dir)
		}
	}

	corner := l.EmptyNeighbors(l.Cell(Tile{X: 0, Y: 0}))
	if len(corner) != 2 || corner[0].Dir != South || corner[1].Dir != East {
		t.Errorf("corner neighbors = %v", corner)
	}

	l.SetKind(Tile{X: 1, Y: 0}, KindTile)
	if n := l.EmptyNeighbors(l.Cell(Tile{X: 0, Y: 0})); len(n) != 1 || n[0].Dir != South {
		t.Errorf("visited tile should be excluded, got %v", n)
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"N", "S", "E", "W"} {
		d, ok := ParseDirection(s)
		if !ok || d.String() != s {
			t.Errorf("ParseDirection(%q) = %v, %v", s, d, ok)
		}
	}
	for _, s := range []string{"", "n", "NE", "X"} {
		if _, ok := ParseDirection(s); ok {
			t.Errorf("ParseDirection(%q) should fail", s)
		}
	}
	for _, d := range Cardinals {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v opposite is not an involution", d)
		}
		a, b := d.Perpendicular()
		if a == d || b == d || a == d.Opposite() || b == d.Opposite() || a.Opposite() != b {
			t.Errorf("%v perpendicular = %v, %v", d, a, b)
		}
	}
}
