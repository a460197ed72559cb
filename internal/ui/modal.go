package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// ModalBase provides common functionality for modal dialogs
type ModalBase struct {
	visible bool
	width   int
	height  int
}

// SetSize sets the modal dimensions for centering
func (m *ModalBase) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show shows the modal
func (m *ModalBase) Show() {
	m.visible = true
}

// Hide hides the modal
func (m *ModalBase) Hide() {
	m.visible = false
}

// Visible returns whether the modal is visible
func (m *ModalBase) Visible() bool {
	return m.visible
}

// CenterDialog centers the given dialog content on screen
func (m *ModalBase) CenterDialog(dialog string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg),
	)
}

// RenderDialogWithStyle creates a dialog with custom style, then centers it
func (m *ModalBase) RenderDialogWithStyle(style lipgloss.Style, parts ...string) string {
	dialog := style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return m.CenterDialog(dialog)
}
