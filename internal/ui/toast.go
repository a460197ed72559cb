package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long the toast is visible
const ToastDuration = 3 * time.Second

// Toast is a temporary notification message
type Toast struct {
	message string
	visible bool
	seq     int
}

// ToastHideMsg hides the toast after timeout
type ToastHideMsg struct {
	seq int
}

// NewToast creates a new toast component
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast message. A newer toast outlives the timers of older ones.
func (t *Toast) Show(message string) tea.Cmd {
	t.seq++
	t.message = message
	t.visible = true

	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastHideMsg{seq: seq}
	})
}

// HandleHide hides the toast if msg belongs to the toast currently shown
func (t *Toast) HandleHide(msg ToastHideMsg) {
	if msg.seq == t.seq {
		t.Hide()
	}
}

// Hide hides the toast
func (t *Toast) Hide() {
	t.visible = false
	t.message = ""
}

// Visible returns whether the toast is visible
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the toast text
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 2).
		Bold(true)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(t.message))
}
