package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertModal is a blocking dialog that swallows every key until dismissed
type AlertModal struct {
	ModalBase

	title   string
	message string

	// Viewport for long messages
	viewport viewport.Model
}

// NewAlertModal creates a new alert modal
func NewAlertModal() *AlertModal {
	vp := viewport.New(50, 3)
	vp.Style = lipgloss.NewStyle().Foreground(ColorText)

	return &AlertModal{
		viewport: vp,
	}
}

// SetSize sets the dialog dimensions for centering and sizes the viewport
func (m *AlertModal) SetSize(width, height int) {
	m.ModalBase.SetSize(width, height)

	dialogWidth := min(width-4, DefaultDialogMaxWidth)
	dialogHeight := min(height-4, DefaultDialogMaxHeight)
	contentWidth := max(dialogWidth-DialogPaddingAllowance, MinContentWidth)
	contentHeight := max(dialogHeight-DialogChromeAllowance, MinContentHeight)

	m.viewport.Width = min(contentWidth, 60)
	m.viewport.Height = contentHeight
	m.viewport.SetContent(m.wrapped())
}

// Show shows the alert with the given content
func (m *AlertModal) Show(title, message string) {
	m.title = title
	m.message = message
	m.ModalBase.Show()

	m.viewport.SetContent(m.wrapped())
	m.viewport.GotoTop()
}

func (m *AlertModal) wrapped() string {
	return lipgloss.NewStyle().Width(m.viewport.Width).Render(m.message)
}

// Title returns the alert title
func (m *AlertModal) Title() string {
	return m.title
}

// Message returns the alert text
func (m *AlertModal) Message() string {
	return m.message
}

// Update handles key events. Only enter and esc dismiss the alert.
func (m *AlertModal) Update(msg tea.KeyMsg) (dismissed bool) {
	if !m.Visible() {
		return false
	}

	switch {
	case key.Matches(msg, Keys.Escape), msg.String() == "enter":
		m.ModalBase.Hide()
		return true

	case key.Matches(msg, Keys.Up):
		m.viewport.LineUp(1)

	case key.Matches(msg, Keys.Down):
		m.viewport.LineDown(1)
	}

	return false
}

// View renders the alert modal
func (m *AlertModal) View() string {
	title := DialogTitleStyle.Foreground(ColorWarning).Render(m.title)
	footer := DimStyle.Render("\nenter/esc aceptar")

	alertStyle := DialogStyle.BorderForeground(ColorWarning)
	return m.RenderDialogWithStyle(alertStyle, title, m.viewport.View(), footer)
}
