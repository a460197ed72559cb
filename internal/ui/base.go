package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ListBase provides the loading and sizing state shared by the panels.
// Embed this in panel types and call InitSpinner from the constructor.
type ListBase struct {
	loading    bool
	loadingMsg string
	spinner    spinner.Model
	width      int
}

// InitSpinner initializes the spinner with default settings
func (l *ListBase) InitSpinner() {
	l.spinner = spinner.New()
	l.spinner.Spinner = spinner.Dot
	l.spinner.Style = lipgloss.NewStyle().Foreground(ColorPrimary)
}

// Spinner returns the spinner model
func (l *ListBase) Spinner() spinner.Model {
	return l.spinner
}

// StartLoading enters the loading state and returns the first spinner tick
func (l *ListBase) StartLoading(msg string) tea.Cmd {
	l.loading = true
	l.loadingMsg = msg
	return l.spinner.Tick
}

// StopLoading leaves the loading state. The spinner stops on its next tick.
func (l *ListBase) StopLoading() {
	l.loading = false
}

// UpdateSpinner advances the spinner while loading
func (l *ListBase) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if !l.loading {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// IsLoading returns true if in loading state
func (l *ListBase) IsLoading() bool {
	return l.loading
}

// LoadingView renders the spinner with the loading message
func (l *ListBase) LoadingView() string {
	return l.spinner.View() + " " + l.loadingMsg
}

// SetSize records the list width. Panels size their tables from height.
func (l *ListBase) SetSize(width, _ int) {
	l.width = width
}

// Width returns the list width
func (l *ListBase) Width() int {
	return l.width
}

// MessageLine renders a panel message cut to the list width
func (l *ListBase) MessageLine(msg string) string {
	line := RenderMessage(msg)
	if line == "" || l.Width() <= 4 {
		return line
	}
	return ansi.Truncate(line, l.Width()-4, "…")
}
