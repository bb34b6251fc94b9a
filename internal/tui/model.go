// Package tui implements a terminal visualizer for stepping through a
// solution move-by-move, built on bubbletea and lipgloss.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	cube "github.com/jrwhitlock/gocube-solve"
)

// Model steps a scramble forward through a solution one move at a time.
type Model struct {
	initial *cube.Cube
	moves   []int

	step     int
	quitting bool
}

// New builds a replay model starting from scramble, which will be stepped
// forward through moves (search-engine move indices, as returned by
// search.Solve or decoded with cube.DecodeSolution).
func New(scramble *cube.Cube, moves []int) Model {
	return Model{initial: scramble, moves: moves}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ", "n", "right":
		if m.step < len(m.moves) {
			m.step++
		}

	case "b", "left":
		if m.step > 0 {
			m.step--
		}

	case "r":
		m.step = 0

	case "g":
		m.step = len(m.moves)
	}

	return m, nil
}

func (m Model) current() *cube.Cube {
	c := m.initial.Clone()
	for _, mv := range m.moves[:m.step] {
		c.ApplyMoveIndex(mv)
	}
	return c
}

func (m Model) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("GoCube Solve Replay"))
	b.WriteString("\n\n")

	c := m.current()
	b.WriteString(renderNet(c))
	b.WriteString("\n")

	if c.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED!"))
		b.WriteString("\n\n")
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("Move %d/%d", m.step, len(m.moves))))
	b.WriteString("\n")
	b.WriteString(renderMoveTrail(m.moves, m.step))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("space/n=next  b=back  r=reset  g=end  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func renderMoveTrail(moves []int, step int) string {
	if len(moves) == 0 {
		return moveStyle.Render("(already solved)")
	}
	var parts []string
	for i, mv := range moves {
		n := cube.EncodeSolution([]int{mv})
		if i < step {
			parts = append(parts, pastMoveStyle.Render(n))
		} else {
			parts = append(parts, moveStyle.Render(n))
		}
	}
	return strings.Join(parts, " ")
}

func renderNet(c *cube.Cube) string {
	row := func(face cube.CubeFace, r int) []string {
		out := make([]string, 3)
		for col := 0; col < 3; col++ {
			out[col] = renderSticker(c.Facelets[face][r*3+col].String())
		}
		return out
	}
	blank := "   "

	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(blank + " ")
		b.WriteString(strings.Join(row(cube.CubeFaceU, r), ""))
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		for _, face := range []cube.CubeFace{cube.CubeFaceL, cube.CubeFaceF, cube.CubeFaceR, cube.CubeFaceB} {
			b.WriteString(strings.Join(row(face, r), ""))
		}
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(blank + " ")
		b.WriteString(strings.Join(row(cube.CubeFaceD, r), ""))
		b.WriteString("\n")
	}
	return b.String()
}
