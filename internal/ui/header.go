package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewState is the single active panel. Exactly one view is shown at a time.
type ViewState int

const (
	ViewMovies ViewState = iota
	ViewSearch
	ViewLanguages
	ViewLanguageCatalog
)

func (v ViewState) String() string {
	switch v {
	case ViewMovies:
		return "Lista de Películas"
	case ViewSearch:
		return "Buscar Película"
	case ViewLanguages:
		return "Lenguajes Netflix"
	case ViewLanguageCatalog:
		return "Lenguajes API"
	default:
		return "Unknown"
	}
}

// NavButton is one navigation action shown in the header
type NavButton struct {
	Key   string
	Label string
}

// NavButtons returns the navigation actions available from view. A view's own
// button is hidden while it is active, "Lista de Películas" only appears away
// from the list and "Crear Película" only on it.
func NavButtons(view ViewState) []NavButton {
	var buttons []NavButton
	if view != ViewSearch {
		buttons = append(buttons, NavButton{Key: "2", Label: ViewSearch.String()})
	}
	if view != ViewLanguages {
		buttons = append(buttons, NavButton{Key: "3", Label: ViewLanguages.String()})
	}
	if view != ViewLanguageCatalog {
		buttons = append(buttons, NavButton{Key: "4", Label: ViewLanguageCatalog.String()})
	}
	if view != ViewMovies {
		buttons = append(buttons, NavButton{Key: "esc", Label: ViewMovies.String()})
	}
	if view == ViewMovies {
		buttons = append(buttons, NavButton{Key: "n", Label: "Crear Película"})
	}
	return buttons
}

// Header renders the top navigation bar
type Header struct {
	view  ViewState
	width int
}

// NewHeader creates a new header component
func NewHeader() Header {
	return Header{view: ViewMovies}
}

// SetView sets the active view
func (h *Header) SetView(view ViewState) {
	h.view = view
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header
func (h *Header) View() string {
	brand := BrandStyle.Render("Películas Frontend") + DimStyle.Render(" · ") + TitleStyle.Render(h.view.String())

	var parts []string
	for _, b := range NavButtons(h.view) {
		parts = append(parts, NavKeyStyle.Render(b.Key)+" "+NavLabelStyle.Render(b.Label))
	}
	nav := strings.Join(parts, DimStyle.Render("  "))

	gap := h.width - lipgloss.Width(brand) - lipgloss.Width(nav) - 2
	if gap < 1 {
		// Not enough room on one line: stack the buttons under the brand
		return lipgloss.JoinVertical(lipgloss.Left, " "+brand, " "+nav, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, " "+brand+strings.Repeat(" ", gap)+nav+" ", "")
}
