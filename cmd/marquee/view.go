package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/marquee/internal/ui"
)

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.ui.Width == 0 {
		return "Cargando..."
	}

	header := m.ui.Header.View()
	footer := m.renderFooter()

	headerHeight := lipgloss.Height(header)
	mainHeight := max(m.ui.Height-headerHeight-lipgloss.Height(footer)-1, 1)

	mainArea := lipgloss.NewStyle().
		Height(mainHeight).
		Width(m.ui.Width).
		Render(m.ui.Active.View())

	fullView := lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)

	// Forms of the active panel float over it
	if dialog, ok := m.ui.Active.Overlay(); ok {
		x := max((m.ui.Width-lipgloss.Width(dialog))/2, 0)
		fullView = placeOverlay(x, headerHeight, dialog, fullView)
	}

	if m.ui.Focus.Has(ui.FocusHelp) {
		fullView = m.ui.Help.View()
	}

	if m.ui.Alert.Visible() {
		fullView = m.ui.Alert.View()
	}

	if m.ui.Toast.Visible() {
		toastY := max(m.ui.Height-footerHeight-2, 0)
		fullView = placeOverlay(0, toastY, m.ui.Toast.View(m.ui.Width), fullView)
	}

	return fullView
}

// renderFooter renders the bottom footer with the endpoint and keybind hints
func (m Model) renderFooter() string {
	leftParts := []string{ui.DimStyle.Render(m.ctx.EndpointFor(m.ui.View))}

	var rightParts []string
	hint := func(s string) {
		rightParts = append(rightParts, ui.DimStyle.Render(s))
	}

	_, formOpen := m.ui.Active.Overlay()
	switch {
	case formOpen:
		hint("tab siguiente")
		hint("enter guardar")
		hint("esc cerrar")

	case m.ui.Active.CapturesInput():
		hint("enter buscar")
		hint("esc salir del campo")

	default:
		switch m.ui.View {
		case ui.ViewMovies:
			hint("n crear")
			hint("e editar")
			hint("s estado")
		case ui.ViewSearch:
			hint("/ buscar")
			hint("c copiar")
		case ui.ViewLanguages:
			hint("n nuevo")
			hint("e editar")
			hint("s estado")
		case ui.ViewLanguageCatalog:
			hint("c copiar código")
			hint("C copiar nombre")
		}
		hint("r recargar")
		hint("o abrir")
		hint("? ayuda")
		hint("q salir")
	}

	left := joinWithSeparator(leftParts, "  ")
	right := joinWithSeparator(rightParts, "  ")

	// Drop the endpoint first when the hints need the room
	padding := m.ui.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		left = truncateToWidth(left, max(m.ui.Width-lipgloss.Width(right)-3, 0))
		padding = max(m.ui.Width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	}

	return truncateToWidth(" "+left+strings.Repeat(" ", padding)+right+" ", m.ui.Width)
}
