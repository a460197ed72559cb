package main

import "github.com/rfhold/marquee/internal/ui"

// UIState holds all UI component state.
// Layout, focus and the components live here, apart from the injected
// dependencies and the run context.
type UIState struct {
	// Layout dimensions
	Width  int
	Height int

	// Focus management
	Focus ui.FocusStack

	// Active view; exactly one panel is shown
	View ui.ViewState

	// UI Components
	Header ui.Header
	Movies *ui.MovieList
	Active ui.Panel
	Alert  *ui.AlertModal
	Help   *ui.HelpDialog
	Toast  *ui.Toast
}

// NewUIState creates a new UIState showing the movie list
func NewUIState(movies *ui.MovieList) *UIState {
	return &UIState{
		Focus:  ui.NewFocusStack(),
		View:   ui.ViewMovies,
		Header: ui.NewHeader(),
		Movies: movies,
		Active: movies,
		Alert:  ui.NewAlertModal(),
		Help:   ui.NewHelpDialog(),
		Toast:  ui.NewToast(),
	}
}
