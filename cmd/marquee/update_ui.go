package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 1

// handleWindowSize handles terminal resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.ui.Width = msg.Width
	m.ui.Height = msg.Height
	m.ui.Help.SetSize(msg.Width, msg.Height)
	m.ui.Alert.SetSize(msg.Width, msg.Height)
	m.layout()
	return m, nil
}

// layout sizes the header and the panels. The header may wrap on narrow
// terminals and its buttons change per view, so it runs on every navigation.
func (m *Model) layout() {
	m.ui.Header.SetWidth(m.ui.Width)
	width, height := m.ui.Width, m.panelHeight()

	m.ui.Movies.SetSize(width, height)
	if m.ui.Active != nil {
		m.ui.Active.SetSize(width, height)
	}
}

// panelHeight is the room left between the header and the footer
func (m *Model) panelHeight() int {
	headerHeight := lipgloss.Height(m.ui.Header.View())
	return max(m.ui.Height-headerHeight-footerHeight-1, 1)
}
