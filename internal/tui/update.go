package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/plot"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		at := plot.Pos{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoom(zoomStep, at)
		case tea.MouseButtonWheelDown:
			m.zoom(1/zoomStep, at)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := m.chart.Transform.Frame()
	stepX := frame.Width() * panFraction
	stepY := frame.Height() * panFraction

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.pan(plot.Vec{Y: -stepY})
	case key.Matches(msg, m.keys.Down):
		m.pan(plot.Vec{Y: stepY})
	case key.Matches(msg, m.keys.Left):
		m.pan(plot.Vec{X: -stepX})
	case key.Matches(msg, m.keys.Right):
		m.pan(plot.Vec{X: stepX})
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom(zoomStep, frame.Center())
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom(1/zoomStep, frame.Center())
	case key.Matches(msg, m.keys.Aspect):
		m.aspectLocked = !m.aspectLocked
		m.status = fmt.Sprintf("aspect lock: %v", m.aspectLocked)
		m.relayout()
	case key.Matches(msg, m.keys.Reset):
		m.bounds = m.home
		m.status = "reset"
		m.relayout()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// pan moves the view by a screen-space delta in cells.
func (m *Model) pan(delta plot.Vec) {
	if m.width <= 0 {
		return
	}
	m.bounds = m.chart.Transform.TranslateBounds(delta).Bounds()
	m.status = "pan"
	m.relayout()
}

// zoom scales the view by factor on both axes around the cell position at.
func (m *Model) zoom(factor float64, at plot.Pos) {
	if m.width <= 0 {
		return
	}
	before := m.chart.Transform.Bounds()
	m.bounds = m.chart.Transform.Zoom(plot.Splat(factor), at).Bounds()
	if m.bounds == before {
		m.status = "zoom limit"
	} else {
		m.status = fmt.Sprintf("zoom ×%.2f", factor)
	}
	m.relayout()
}
