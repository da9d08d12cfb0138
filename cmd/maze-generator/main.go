package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/vi-maze/maze"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	markStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println()
		fmt.Println(titleStyle.Render("=== DOUBLED LATTICE MAZE GENERATOR ==="))

		w := getInt(reader, "Width in tiles (default 20): ", 20)
		h := getInt(reader, "Height in tiles (default 10): ", 10)
		seed := int64(getInt(reader, "Seed [0 = clock] (default 0): ", 0))

		fmt.Println("\nGenerating...")
		startT := time.Now()
		l, err := generate(w, h, seed)
		dur := time.Since(startT)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
			continue
		}

		st := l.Stats()
		path := l.Path(l.Start(), l.End())
		fmt.Println(statStyle.Render(fmt.Sprintf("Done in %v", dur)))
		fmt.Println(statStyle.Render(fmt.Sprintf("Seed: %d  Grid: %dx%d  Dead ends: %d  Junctions: %d",
			l.Seed(), l.Bounds().Width, l.Bounds().Height, st.DeadEnds, st.Junctions)))
		fmt.Println(statStyle.Render(fmt.Sprintf("Solution Path Length: %d cells", len(path))))

		fmt.Print(draw(l, path))

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func generate(w, h int, seed int64) (*maze.Lattice, error) {
	l, err := maze.New(maze.Config{Width: w, Height: h, Seed: seed})
	if err != nil {
		return nil, err
	}
	if err := l.Generate(); err != nil {
		return nil, err
	}
	return l, nil
}

// draw prints the full lattice with the start-to-end path marked
func draw(l *maze.Lattice, path []maze.Point) string {
	onPath := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	for _, row := range l.Rows() {
		for _, c := range row {
			switch {
			case c.Kind == maze.KindStart:
				b.WriteString(markStyle.Render("S"))
			case c.Kind == maze.KindEnd:
				b.WriteString(markStyle.Render("E"))
			case c.Kind == maze.KindWall:
				b.WriteString("█")
			case onPath[c.At]:
				b.WriteString(pathStyle.Render("•"))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
