// Package viz replays precomputed trajectories in the terminal. The engine
// always computes the full trajectory eagerly; everything here is pacing
// and rendering.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/venturesim/internal/sim"
	"github.com/san-kum/venturesim/internal/storage"
)

const graphWidth = 70

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model replays one stored trajectory point by point.
type Model struct {
	meta    *storage.RunMetadata
	points  []sim.Point
	head    int
	playing bool
	fps     int
}

func NewModel(meta *storage.RunMetadata, points []sim.Point, fps int) Model {
	if fps <= 0 {
		fps = 10
	}
	return Model{meta: meta, points: points, playing: true, fps: fps}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.head = 0
			m.playing = true
		case "left", "h":
			if m.head > 0 {
				m.head--
			}
		case "right", "l":
			if m.head < len(m.points)-1 {
				m.head++
			}
		}
		return m, nil

	case TickMsg:
		if m.playing && m.head < len(m.points)-1 {
			m.head++
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	if len(m.points) == 0 {
		return "no trajectory data\n"
	}

	p := m.points[m.head]

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("replay %s  period %d/%d",
		m.meta.ID, p.Period, m.points[len(m.points)-1].Period)))
	b.WriteString("\n")

	b.WriteString(graphStyle.Render(m.graph("motivation", func(p sim.Point) float64 { return p.Motivation })))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(m.graph("strain", func(p sim.Point) float64 { return p.Strain })))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(m.graph("wellbeing", func(p sim.Point) float64 { return p.Wellbeing })))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value float64
	}{
		{"motivation", p.Motivation},
		{"strain", p.Strain},
		{"performance", p.Performance},
		{"cum. effort", p.CumulativeEffort},
		{"wellbeing", p.Wellbeing},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%10.3f", row.value)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · ←/→ scrub · r restart · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) graph(caption string, pick func(sim.Point) float64) string {
	data := make([]float64, m.head+1)
	for i := 0; i <= m.head; i++ {
		data[i] = pick(m.points[i])
	}
	if len(data) < 2 {
		// asciigraph needs at least two samples.
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(6),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(caption),
	)
}
