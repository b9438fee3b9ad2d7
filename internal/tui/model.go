// Package tui drives the interactive file viewer: bubbletea owns the raw
// terminal, key events mutate the viewport, and a tick loop advances the
// automaton while it is running.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/bitraster/internal/config"
	"github.com/san-kum/bitraster/internal/input"
	"github.com/san-kum/bitraster/internal/viewport"
)

const idleTick = config.DefaultIdleMS * time.Millisecond

var (
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	lifeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type TickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model holds the viewer state between events. The viewport owns the
// bit buffer; the model only keeps the last rendered frame and the
// status-line toggles.
type Model struct {
	vp       *viewport.Controller
	delay    time.Duration
	ready    bool // first WindowSizeMsg received
	showInfo bool
	frame    []string
	err      error
}

func NewModel(vp *viewport.Controller, delay time.Duration) Model {
	return Model{vp: vp, delay: delay}
}

func (m Model) Init() tea.Cmd {
	return tick(idleTick)
}

// Err reports the failure that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// bottom row is reserved for the status line
		h := msg.Height - 1
		if h < 1 {
			h = 1
		}
		m.vp.SetSize(msg.Width, h)
		m.ready = true
		m.render()
		if m.err != nil {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		cmd, ok := input.DecodeKey(msg)
		if !ok {
			return m, nil
		}
		if cmd != input.Quit && !m.ready {
			return m, nil
		}
		switch cmd {
		case input.Quit:
			return m, tea.Quit
		case input.ShowInfo:
			m.showInfo = !m.showInfo
		case input.ToggleLife:
			m.vp.ToggleLife()
		case input.ScrollUp:
			m.vp.ScrollRows(-1)
		case input.ScrollDown:
			m.vp.ScrollRows(1)
		case input.ScrollLeft:
			m.vp.ScrollColumns(-1)
		case input.ScrollRight:
			m.vp.ScrollColumns(1)
		case input.PageUp:
			m.vp.Page(-1)
		case input.PageDown:
			m.vp.Page(1)
		case input.JumpStart:
			m.vp.JumpStart()
		case input.JumpEnd:
			m.vp.JumpEnd()
		}
		m.render()
		if m.err != nil {
			return m, tea.Quit
		}

	case TickMsg:
		if !m.ready {
			return m, tick(idleTick)
		}
		if m.vp.LifeActive() {
			m.vp.StepLife()
		}
		m.render()
		if m.err != nil {
			return m, tea.Quit
		}
		if m.vp.LifeActive() {
			return m, tick(m.delay)
		}
		return m, tick(idleTick)
	}
	return m, nil
}

func (m *Model) render() {
	frame, err := m.vp.Frame()
	if err != nil {
		m.err = err
		return
	}
	m.frame = frame
}

func (m Model) View() string {
	if m.err != nil {
		return errStyle.Render(m.err.Error()) + "\n"
	}
	if !m.ready {
		return ""
	}
	var s strings.Builder
	for _, line := range m.frame {
		s.WriteString(line)
		s.WriteByte('\n')
	}
	s.WriteString(m.statusLine())
	return s.String()
}

func (m Model) statusLine() string {
	switch {
	case m.showInfo:
		return infoStyle.Render(fmt.Sprintf("File Offset: 0x%08x  Bit Offset: 0x%08x",
			m.vp.FileOffset(), m.vp.ColumnOffset()))
	case m.vp.LifeActive():
		return lifeStyle.Render("LIFE")
	}
	return ""
}

// Run drives the viewer until the user quits or a refill fails.
func Run(vp *viewport.Controller, delay time.Duration) error {
	p := tea.NewProgram(NewModel(vp, delay), tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := out.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
