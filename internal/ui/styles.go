package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rfhold/marquee/internal/catalog"
)

// Color palette (Tokyo Night)
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#bb9af7")
	ColorText      = lipgloss.Color("#c0caf5")
	ColorDim       = lipgloss.Color("#565f89")
	ColorError     = lipgloss.Color("#f7768e")
	ColorBg        = lipgloss.Color("#1a1b26")
	ColorSelection = lipgloss.Color("#283457")
	ColorSuccess   = lipgloss.Color("#9ece6a")
	ColorWarning   = lipgloss.Color("#e0af68")
	ColorInfo      = lipgloss.Color("#7dcfff")
)

// Styles
var (
	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Dialog styles
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginBottom(1)

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)

	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SelectionStyle = lipgloss.NewStyle().
			Background(ColorSelection)

	// Status badges
	BadgeActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	BadgeInactiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorError)

	// Navigation bar
	BrandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	NavKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	NavLabelStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ScrollIndicatorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorInfo)
)

// Layout constants for UI components
const (
	DefaultInputWidth = 40

	DefaultDialogMaxWidth  = 80
	DefaultDialogMaxHeight = 30
	MinContentWidth        = 20
	MinContentHeight       = 3
	DialogPaddingAllowance = 6  // Padding around dialog content
	DialogChromeAllowance  = 10 // Title, footer space
)

// RenderStatus renders the Activo/Inactivo badge of a status
func RenderStatus(status catalog.Status) string {
	if status == catalog.StatusActive {
		return BadgeActiveStyle.Render(status.Label())
	}
	return BadgeInactiveStyle.Render(status.Label())
}
