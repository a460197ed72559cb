package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/ui"
)

// Keyboard handlers, in focus order: alert, help, the active panel's
// inputs, global keys and finally the panel's own bindings.

// handleKeyPress routes a key press to the layer that owns the keyboard
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.Focus.Current() {
	case ui.FocusAlert:
		if m.ui.Alert.Update(msg) {
			m.hideAlert()
		}
		return m, nil

	case ui.FocusHelp:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, ui.Keys.Help) || key.Matches(msg, ui.Keys.Escape) || msg.String() == "q" {
			m.hideHelp()
			return m, nil
		}
		m.ui.Help.Update(msg)
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	active := m.ui.Active
	if active.CapturesInput() {
		cmd, _ := active.HandleKey(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, ui.Keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, ui.Keys.Help):
		m.showHelp()
		return m, nil

	case key.Matches(msg, ui.Keys.ViewMovies), key.Matches(msg, ui.Keys.Back):
		return m, m.navigate(ui.ViewMovies)

	case key.Matches(msg, ui.Keys.ViewSearch):
		return m, m.navigate(ui.ViewSearch)

	case key.Matches(msg, ui.Keys.ViewLanguage):
		return m, m.navigate(ui.ViewLanguages)

	case key.Matches(msg, ui.Keys.ViewCatalog):
		return m, m.navigate(ui.ViewLanguageCatalog)

	case key.Matches(msg, ui.Keys.Refresh):
		return m, active.Refresh()

	case key.Matches(msg, ui.Keys.Open):
		url := m.ctx.EndpointFor(m.ui.View)
		if url == "" {
			return m, nil
		}
		return m, m.openURL(url)
	}

	cmd, _ := active.HandleKey(msg)
	return m, cmd
}

// navigate switches the active panel. Sub-panels are mounted fresh on every
// visit; the movie list stays mounted and is fetched again on return.
func (m *Model) navigate(view ui.ViewState) tea.Cmd {
	if view == m.ui.View {
		return nil
	}
	m.deps.Logger.Debug("navigate", "from", m.ui.View.String(), "to", view.String())

	m.ui.View = view
	m.ui.Header.SetView(view)

	logger := m.deps.Logger.With("panel", view.String())
	var panel ui.Panel
	switch view {
	case ui.ViewSearch:
		panel = ui.NewMovieSearch(m.appCtx, m.deps.Movies, logger)
	case ui.ViewLanguages:
		panel = ui.NewLanguageList(m.appCtx, m.deps.Languages, logger)
	case ui.ViewLanguageCatalog:
		panel = ui.NewLanguageCatalog(m.appCtx, m.deps.Languages, logger)
	default:
		m.ui.Active = m.ui.Movies
		m.layout()
		return m.ui.Movies.Refresh()
	}

	m.ui.Active = panel
	m.layout()
	return panel.Init()
}
