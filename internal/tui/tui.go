// Package tui implements a terminal playback view for a found solution,
// stepping through its moves one at a time against the cube net.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aaf1007/rubiks-cube-solver/internal/cube"
	"github.com/aaf1007/rubiks-cube-solver/internal/move"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	nextMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stickerStyles = map[cube.Color]lipgloss.Style{
		cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
		cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
		cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
		cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("255")),
		cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
		cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	}
)

// Play steps through solution move-by-move starting from c, advancing
// on every tick or keypress, and rendering the cube net with lipgloss
// styling keyed by sticker color.
func Play(c *cube.Cube, solution []move.Move) error {
	m := newModel(c, solution)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg time.Time

type model struct {
	cube     *cube.Cube
	solution []move.Move
	index    int
	paused   bool
	speed    time.Duration
	quitting bool
}

func newModel(c *cube.Cube, solution []move.Move) *model {
	return &model{
		cube:     c.Clone(),
		solution: solution,
		speed:    800 * time.Millisecond,
	}
}

func (m *model) Init() tea.Cmd {
	return m.scheduleTick()
}

func (m *model) scheduleTick() tea.Cmd {
	if m.index >= len(m.solution) {
		return nil
	}
	return tea.Tick(m.speed, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if !m.paused {
				return m, m.scheduleTick()
			}
		case "n", "right":
			m.step()
		case "+", "=":
			if m.speed > 100*time.Millisecond {
				m.speed -= 100 * time.Millisecond
			}
		case "-":
			m.speed += 100 * time.Millisecond
		}

	case tickMsg:
		if !m.paused {
			m.step()
			return m, m.scheduleTick()
		}
	}

	return m, nil
}

func (m *model) step() {
	if m.index >= len(m.solution) {
		return
	}
	m.cube.Apply(move.Index(m.solution[m.index]))
	m.index++
}

func (m *model) View() string {
	if m.quitting {
		return "Playback ended.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Solution playback"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf("Move %d/%d", m.index, len(m.solution))))
	if m.paused {
		b.WriteString(statusStyle.Render(" [PAUSED]"))
	}
	b.WriteString("\n\n")

	b.WriteString("Moves: ")
	for i, mv := range m.solution {
		style := moveStyle
		if i == m.index {
			style = nextMoveStyle
		} else if i > m.index {
			style = helpStyle
		}
		b.WriteString(style.Render(mv.Notation()))
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("space=pause  n=step  +/-=speed  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func renderNet(c *cube.Cube) string {
	grid := c.String()
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(grid, "\n"), "\n") {
		for _, ch := range line {
			col := cube.Color(ch)
			if style, ok := stickerStyles[col]; ok {
				b.WriteString(style.Render(" " + string(ch) + " "))
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
