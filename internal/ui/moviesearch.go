package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/catalog"
)

type moviesSearchedMsg struct {
	gen     uint64
	query   string
	results []catalog.ExternalMovie
	err     error
}

// MovieSearch queries the external movie API by name. Searching is manual:
// typing never issues a request, enter does.
type MovieSearch struct {
	ListBase

	ctx    context.Context
	svc    catalog.MovieService
	logger *slog.Logger
	gen    uint64

	input     textinput.Model
	lastQuery string
	results   []catalog.ExternalMovie
	table     *Table
}

// NewMovieSearch creates the search panel
func NewMovieSearch(ctx context.Context, svc catalog.MovieService, logger *slog.Logger) *MovieSearch {
	input := textinput.New()
	input.Placeholder = "Nombre de la película"
	input.Prompt = "› "
	input.Width = DefaultInputWidth

	table := NewTable(
		Column{Title: "Nombre"},
		Column{Title: "Descripción"},
		Column{Title: "Año", Width: 6},
	)
	table.SetEmptyText("No hay películas")

	p := &MovieSearch{
		ctx:    ctx,
		svc:    svc,
		logger: orDiscard(logger),
		gen:    nextGeneration(),
		input:  input,
		table:  table,
	}
	p.InitSpinner()
	return p
}

// Init focuses the query input. Nothing is fetched until the first search.
func (p *MovieSearch) Init() tea.Cmd {
	return p.input.Focus()
}

// Query returns the current query text
func (p *MovieSearch) Query() string {
	return p.input.Value()
}

// SetQuery replaces the query text
func (p *MovieSearch) SetQuery(q string) {
	p.input.SetValue(q)
}

// Results returns the last result snapshot
func (p *MovieSearch) Results() []catalog.ExternalMovie {
	return p.results
}

// Search issues the current query. An empty query is a no-op.
func (p *MovieSearch) Search() tea.Cmd {
	query := p.input.Value()
	if query == "" {
		return nil
	}
	p.lastQuery = query

	ctx, svc, gen := p.ctx, p.svc, p.gen
	search := func() tea.Msg {
		results, err := svc.Search(ctx, query)
		return moviesSearchedMsg{gen: gen, query: query, results: results, err: err}
	}
	return tea.Batch(p.StartLoading("Cargando..."), search)
}

// Refresh repeats the last search
func (p *MovieSearch) Refresh() tea.Cmd {
	if p.lastQuery == "" {
		return nil
	}
	if p.input.Value() == "" {
		p.input.SetValue(p.lastQuery)
	}
	return p.Search()
}

// Update handles search results, spinner ticks and cursor blinks
func (p *MovieSearch) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case moviesSearchedMsg:
		if msg.gen != p.gen {
			return nil
		}
		p.StopLoading()
		if msg.err != nil {
			// The previous results stay on screen
			return reportFailure(p.logger, catalog.OpMovieSearch, msg.err, func(string) {})
		}
		p.logger.Debug("search finished", "query", msg.query, "results", len(msg.results))
		p.results = msg.results
		p.syncRows()
		return nil

	case spinner.TickMsg:
		return p.UpdateSpinner(msg)
	}

	if p.input.Focused() {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}
	return nil
}

func (p *MovieSearch) syncRows() {
	rows := make([][]string, len(p.results))
	for i, m := range p.results {
		rows[i] = []string{singleLine(m.NameText()), singleLine(m.DescriptionText()), m.YearText()}
	}
	p.table.SetRows(rows)
}

// CapturesInput reports whether the query input has focus
func (p *MovieSearch) CapturesInput() bool {
	return p.input.Focused()
}

// HandleKey handles a key press
func (p *MovieSearch) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.input.Focused() {
		switch msg.String() {
		case "enter":
			if p.input.Value() != "" {
				p.input.Blur()
			}
			return p.Search(), true
		case "esc", "tab":
			p.input.Blur()
			return nil, true
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd, true
	}

	switch {
	case key.Matches(msg, Keys.FocusSearch):
		return p.input.Focus(), true

	case key.Matches(msg, Keys.Copy):
		i := p.table.Cursor()
		if i < 0 || i >= len(p.results) {
			return nil, true
		}
		return requestCopy(p.results[i].NameText()), true
	}

	return nil, p.table.HandleKey(msg)
}

// SetSize sets the panel dimensions
func (p *MovieSearch) SetSize(width, height int) {
	p.ListBase.SetSize(width, height)
	p.input.Width = min(DefaultInputWidth, max(width-12, 10))
	p.table.SetSize(width, max(height-5, 3))
}

// Overlay is always empty, the search panel has no dialogs
func (p *MovieSearch) Overlay() (string, bool) {
	return "", false
}

// View renders the query line, the loading line and the results
func (p *MovieSearch) View() string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(TitleStyle.Render("Buscar películas desde Disney API"))
	b.WriteString("\n  ")
	b.WriteString(p.input.View())
	b.WriteString("  ")
	b.WriteString(DimStyle.Render("enter Buscar"))
	b.WriteString("\n")
	if p.IsLoading() {
		b.WriteString("  ")
		b.WriteString(p.LoadingView())
	}
	b.WriteString("\n")
	b.WriteString(p.table.View())
	return b.String()
}
