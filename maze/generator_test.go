package maze

import (
	"errors"
	"testing"
)

func TestGenerateSpanningTree(t *testing.T) {
	sizes := []Size{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {5, 3}, {3, 8}, {12, 12}, {31, 17}}
	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			l := newGenerated(t, sz.Width, sz.Height, seed)

			st := l.Stats()
			if want := sz.Width*sz.Height - 1; st.Edges != want {
				t.Errorf("%v seed %d: %d edges, want %d", sz, seed, st.Edges, want)
			}
			if n := l.reachableTiles(); n != sz.Width*sz.Height {
				t.Errorf("%v seed %d: %d reachable tiles, want %d", sz, seed, n, sz.Width*sz.Height)
			}
			if st.Passages != 2*sz.Width*sz.Height-1 {
				t.Errorf("%v seed %d: %d passages, want %d", sz, seed, st.Passages, 2*sz.Width*sz.Height-1)
			}
		}
	}
}

func TestGenerateStampsEndpoints(t *testing.T) {
	l := newGenerated(t, 6, 4, 7)
	if !l.Generated() {
		t.Fatal("Generated() = false after Generate")
	}
	if k := l.Cell(l.Start()).Kind; k != KindStart {
		t.Errorf("start kind = %v", k)
	}
	if k := l.Cell(l.End()).Kind; k != KindEnd {
		t.Errorf("end kind = %v", k)
	}

	starts, ends := 0, 0
	for _, row := range l.Rows() {
		for _, c := range row {
			switch c.Kind {
			case KindStart:
				starts++
			case KindEnd:
				ends++
			}
		}
	}
	if starts != 1 || ends != 1 {
		t.Errorf("found %d start and %d end cells", starts, ends)
	}
}

func TestGenerateOddSlotsStayWalls(t *testing.T) {
	l := newGenerated(t, 9, 7, 3)
	for _, row := range l.Rows() {
		for _, c := range row {
			if c.At.X%2 == 1 && c.At.Y%2 == 1 && c.Passable() {
				t.Errorf("pillar slot %v carved", c.At)
			}
			if _, isTile := c.At.Tile(); isTile && !c.Passable() {
				t.Errorf("tile %v left as wall", c.At)
			}
		}
	}
}

func TestOneByOneLattice(t *testing.T) {
	l := newGenerated(t, 1, 1, 1)
	if l.Start() != l.End() {
		t.Fatalf("start %v != end %v", l.Start(), l.End())
	}
	c := l.Cell(l.Start())
	if c.Kind != KindEnd {
		t.Errorf("kind = %v, want end", c.Kind)
	}
	for _, d := range Cardinals {
		if id, ok := c.Link(d); !ok || id != c.ID {
			t.Errorf("link %v = %d, %v; want self", d, id, ok)
		}
	}
}

func TestOneByTwoLattice(t *testing.T) {
	l := newGenerated(t, 1, 2, 1)

	start := l.Cell(l.Start())
	corridor := l.Cell(Point{X: 0, Y: 1})
	end := l.Cell(l.End())

	if !start.Open(South) || start.Open(North) || start.Open(East) || start.Open(West) {
		t.Error("start should only open south")
	}
	if corridor.Kind != KindTile || !corridor.Open(North) || !corridor.Open(South) {
		t.Error("corridor should be a tile open north and south")
	}
	if !end.Open(North) || end.OpenCount() != 1 {
		t.Error("end should only open north")
	}
	if got := l.PathLink(start, South); got != end {
		t.Errorf("start south link = %v, want end", got.At)
	}
	if got := l.PathLink(end, North); got != start {
		t.Errorf("end north link = %v, want start", got.At)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a := newGenerated(t, 10, 10, 42)
	b := newGenerated(t, 10, 10, 42)

	if a.Start() != b.Start() || a.End() != b.End() {
		t.Fatalf("endpoints differ: %v/%v vs %v/%v", a.Start(), a.End(), b.Start(), b.End())
	}
	ra, rb := a.Rows(), b.Rows()
	for y := range ra {
		for x := range ra[y] {
			if ra[y][x].open != rb[y][x].open || ra[y][x].Kind != rb[y][x].Kind {
				t.Fatalf("cell (%d,%d) differs for identical seed", x, y)
			}
		}
	}
}

func TestRegenerateProducesNewMaze(t *testing.T) {
	l := newGenerated(t, 12, 12, 9)
	before := make([][dirCount]bool, len(l.cells))
	for i := range l.cells {
		before[i] = l.cells[i].open
	}
	start, end := l.Start(), l.End()

	if err := l.Generate(); err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if l.Start() != start || l.End() != end {
		t.Error("endpoints must stay fixed across regeneration")
	}
	if err := l.Validate(); err != nil {
		t.Fatalf("regenerated maze invalid: %v", err)
	}

	same := true
	for i := range l.cells {
		if l.cells[i].open != before[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("regeneration reproduced the previous maze")
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	l := newGenerated(t, 2, 2, 5)

	// A 2x2 tree has three of the four possible edges; add the missing one
	pairs := []struct {
		a Tile
		d Direction
	}{
		{Tile{0, 0}, East}, {Tile{0, 1}, East}, {Tile{0, 0}, South}, {Tile{1, 0}, South},
	}
	for _, p := range pairs {
		a := l.Cell(p.a)
		if a.Open(p.d) {
			continue
		}
		corridor := l.Cell(a.At.Step(p.d, 1))
		b := l.Cell(a.At.Step(p.d, 2))
		corridor.Kind = KindTile
		a.open[p.d], b.open[p.d.Opposite()] = true, true
		corridor.open[p.d], corridor.open[p.d.Opposite()] = true, true
		break
	}

	if _, err := l.checkAcyclic(); !errors.Is(err, ErrMalformed) {
		t.Errorf("checkAcyclic error = %v, want ErrMalformed", err)
	}
	if err := l.Validate(); !errors.Is(err, ErrMalformed) {
		t.Errorf("Validate error = %v, want ErrMalformed", err)
	}
}
