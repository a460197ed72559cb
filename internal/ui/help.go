package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpItem represents a single help entry
type HelpItem struct {
	Key  string
	Desc string
}

// HelpDialog renders a help overlay
type HelpDialog struct {
	items    []HelpItem
	width    int
	height   int
	viewport viewport.Model
	ready    bool
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog() *HelpDialog {
	return &HelpDialog{
		items: []HelpItem{
			{Key: "", Desc: "Navigation"},
			{Key: "↑/k", Desc: "Move up"},
			{Key: "↓/j", Desc: "Move down"},
			{Key: "pgup", Desc: "Page up"},
			{Key: "pgdn", Desc: "Page down"},
			{Key: "g", Desc: "Go to top"},
			{Key: "G", Desc: "Go to bottom"},
			{Key: "", Desc: ""},

			{Key: "", Desc: "Views"},
			{Key: "1", Desc: "Lista de Películas"},
			{Key: "2", Desc: "Buscar Película"},
			{Key: "3", Desc: "Lenguajes Netflix"},
			{Key: "4", Desc: "Lenguajes API"},
			{Key: "esc/b", Desc: "Back to the movie list"},
			{Key: "", Desc: ""},

			{Key: "", Desc: "Records"},
			{Key: "n", Desc: "Create a record"},
			{Key: "e/enter", Desc: "Edit the selected record"},
			{Key: "s", Desc: "Toggle Activo/Inactivo"},
			{Key: "/", Desc: "Focus the search input"},
			{Key: "c", Desc: "Copy name (code in Lenguajes API)"},
			{Key: "C", Desc: "Copy name in Lenguajes API"},
			{Key: "r", Desc: "Reload the current view"},
			{Key: "o", Desc: "Open the endpoint in a browser"},
			{Key: "", Desc: ""},

			{Key: "", Desc: "Forms"},
			{Key: "tab", Desc: "Next field"},
			{Key: "shift+tab", Desc: "Previous field"},
			{Key: "enter", Desc: "Save"},
			{Key: "esc", Desc: "Close without saving"},
			{Key: "", Desc: ""},

			{Key: "", Desc: "General"},
			{Key: "?", Desc: "Toggle help"},
			{Key: "q", Desc: "Quit"},
		},
	}
}

// SetSize sets the dialog dimensions for centering
func (h *HelpDialog) SetSize(width, height int) {
	h.width = width
	h.height = height

	content := h.buildContent()
	contentLines := strings.Count(content, "\n") + 1

	// Border, padding, title and scroll indicators, plus a screen margin
	dialogChrome := 11

	maxVpHeight := height - dialogChrome
	if maxVpHeight < 3 {
		maxVpHeight = 3
	}

	vpHeight := contentLines
	if vpHeight > maxVpHeight {
		vpHeight = maxVpHeight
	}

	if !h.ready {
		h.viewport = viewport.New(48, vpHeight)
		h.ready = true
	} else {
		h.viewport.Width = 48
		h.viewport.Height = vpHeight
	}
	h.viewport.SetContent(content)
}

// buildContent builds the help content string
func (h *HelpDialog) buildContent() string {
	var lines []string
	for _, item := range h.items {
		if item.Key == "" && item.Desc != "" {
			lines = append(lines, "")
			lines = append(lines, LabelStyle.Render(item.Desc))
		} else if item.Key == "" {
			lines = append(lines, "")
		} else {
			lines = append(lines, fmt.Sprintf("  %s  %s",
				ValueStyle.Render(fmt.Sprintf("%9s", item.Key)),
				DimStyle.Render(item.Desc)))
		}
	}

	if len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}

	return strings.Join(lines, "\n")
}

// Update handles key events for scrolling
func (h *HelpDialog) Update(msg tea.KeyMsg) {
	if !h.ready {
		return
	}
	h.viewport, _ = h.viewport.Update(msg)
}

// View renders the help dialog centered on screen
func (h *HelpDialog) View() string {
	title := DialogTitleStyle.Render("Keyboard Shortcuts")

	var content string
	if h.ready {
		isScrollable := h.viewport.TotalLineCount() > h.viewport.Height
		canScrollUp := h.viewport.YOffset > 0
		canScrollDown := h.viewport.YOffset < h.viewport.TotalLineCount()-h.viewport.Height

		var parts []string
		if isScrollable {
			if canScrollUp {
				parts = append(parts, ScrollIndicatorStyle.Render("      ▲"))
			} else {
				parts = append(parts, "       ")
			}
		}

		parts = append(parts, h.viewport.View())

		if isScrollable {
			if canScrollDown {
				parts = append(parts, ScrollIndicatorStyle.Render("      ▼"))
			} else {
				parts = append(parts, "       ")
			}
		}

		content = strings.Join(parts, "\n")
	} else {
		content = h.buildContent()
	}

	dialog := DialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorBg),
	)
}
