package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/catalog"
)

type moviesFetchedMsg struct {
	seq    int
	movies []catalog.Movie
	err    error
}

type movieStatusChangedMsg struct {
	id     string
	status catalog.Status
	err    error
}

type movieCreatedMsg struct {
	movie catalog.Movie
	err   error
}

type movieUpdatedMsg struct {
	id    string
	movie catalog.Movie
	err   error
}

// MovieList is the primary panel: every movie with create, edit and status toggle.
// It stays mounted for the whole session and refetches whenever it is shown again.
type MovieList struct {
	ListBase

	ctx    context.Context
	svc    catalog.MovieService
	logger *slog.Logger

	movies []catalog.Movie
	table  *Table

	createForm *FormModal
	editForm   *FormModal
	editing    *catalog.Movie

	// message is shared by both forms and the panel status line
	message string

	fetchSeq int
}

// NewMovieList creates the movie list panel
func NewMovieList(ctx context.Context, svc catalog.MovieService, logger *slog.Logger) *MovieList {
	fields := []FormField{
		{Label: "Nombre", Placeholder: "Nombre de la película"},
		{Label: "Descripción", Placeholder: "Descripción de la película"},
	}

	createForm := NewFormModal(fields...)
	createForm.SetTitle("Crear Película")
	createForm.SetButtons("Cerrar", "Guardar")

	editForm := NewFormModal(fields...)
	editForm.SetTitle("Actualizar Película")
	editForm.SetButtons("Cerrar", "Actualizar")

	table := NewTable(
		Column{Title: "Pelicula"},
		Column{Title: "Descripción"},
		Column{Title: "Estado", Width: 8},
	)
	table.SetEmptyText("No hay películas disponibles")

	p := &MovieList{
		ctx:        ctx,
		svc:        svc,
		logger:     orDiscard(logger),
		table:      table,
		createForm: createForm,
		editForm:   editForm,
	}
	p.InitSpinner()
	return p
}

// Init fetches the movie list
func (p *MovieList) Init() tea.Cmd {
	return p.fetch()
}

// Refresh fetches the movie list again, replacing the snapshot
func (p *MovieList) Refresh() tea.Cmd {
	return p.fetch()
}

// Movies returns the current snapshot
func (p *MovieList) Movies() []catalog.Movie {
	return p.movies
}

// Message returns the shared message line
func (p *MovieList) Message() string {
	return p.message
}

// Editing returns the movie being edited, nil when the edit form is closed
func (p *MovieList) Editing() *catalog.Movie {
	return p.editing
}

// CreateOpen reports whether the create form is open
func (p *MovieList) CreateOpen() bool {
	return p.createForm.Visible()
}

// Selected returns the movie under the cursor
func (p *MovieList) Selected() (catalog.Movie, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.movies) {
		return catalog.Movie{}, false
	}
	return p.movies[i], true
}

func (p *MovieList) fetch() tea.Cmd {
	p.fetchSeq++
	seq := p.fetchSeq
	ctx, svc := p.ctx, p.svc
	return func() tea.Msg {
		movies, err := svc.List(ctx)
		return moviesFetchedMsg{seq: seq, movies: movies, err: err}
	}
}

func (p *MovieList) changeStatus(id string, status catalog.Status) tea.Cmd {
	ctx, svc := p.ctx, p.svc
	return func() tea.Msg {
		err := svc.ChangeStatus(ctx, id, status)
		return movieStatusChangedMsg{id: id, status: status, err: err}
	}
}

func (p *MovieList) create(name, description string) tea.Cmd {
	ctx, svc := p.ctx, p.svc
	return func() tea.Msg {
		movie, err := svc.Create(ctx, name, description)
		return movieCreatedMsg{movie: movie, err: err}
	}
}

func (p *MovieList) update(id, oldName, name, description string) tea.Cmd {
	ctx, svc := p.ctx, p.svc
	return func() tea.Msg {
		movie, err := svc.Update(ctx, oldName, name, description)
		return movieUpdatedMsg{id: id, movie: movie, err: err}
	}
}

func (p *MovieList) setMessage(msg string) {
	p.message = msg
	p.createForm.SetMessage(msg)
	p.editForm.SetMessage(msg)
}

func (p *MovieList) syncRows() {
	rows := make([][]string, len(p.movies))
	for i, m := range p.movies {
		rows[i] = []string{singleLine(m.Name), singleLine(m.Description), RenderStatus(m.Status)}
	}
	p.table.SetRows(rows)
}

// Update handles request results and forwards everything else to an open form
func (p *MovieList) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case moviesFetchedMsg:
		if msg.seq != p.fetchSeq {
			return nil
		}
		if msg.err != nil {
			return reportFailure(p.logger, catalog.OpMovieList, msg.err, p.setMessage)
		}
		p.movies = msg.movies
		p.syncRows()
		return nil

	case movieStatusChangedMsg:
		if msg.err != nil {
			return reportFailure(p.logger, catalog.OpMovieChangeStatus, msg.err, p.setMessage)
		}
		if catalog.PolicyFor(catalog.OpMovieChangeStatus).Sync == catalog.SyncRefetch {
			return p.fetch()
		}
		for i := range p.movies {
			if p.movies[i].ID == msg.id {
				p.movies[i].Status = msg.status
			}
		}
		p.syncRows()
		return nil

	case movieCreatedMsg:
		return p.handleCreated(msg)

	case movieUpdatedMsg:
		return p.handleUpdated(msg)
	}

	switch {
	case p.createForm.Visible():
		_, cmd := p.createForm.Update(msg)
		return cmd
	case p.editForm.Visible():
		_, cmd := p.editForm.Update(msg)
		return cmd
	}
	return nil
}

func (p *MovieList) handleCreated(msg movieCreatedMsg) tea.Cmd {
	if msg.err != nil {
		return reportFailure(p.logger, catalog.OpMovieCreate, msg.err, p.setMessage)
	}

	p.logger.Info("movie created", "id", msg.movie.ID, "name", msg.movie.Name)
	p.setMessage(fmt.Sprintf("Película \"%s\" creada correctamente", msg.movie.Name))
	p.createForm.Clear()
	p.createForm.Hide()

	if catalog.PolicyFor(catalog.OpMovieCreate).Sync == catalog.SyncRefetch {
		return p.fetch()
	}
	p.movies = append(p.movies, msg.movie)
	p.syncRows()
	return nil
}

func (p *MovieList) handleUpdated(msg movieUpdatedMsg) tea.Cmd {
	if msg.err != nil {
		return reportFailure(p.logger, catalog.OpMovieUpdate, msg.err, p.setMessage)
	}

	p.logger.Info("movie updated", "id", msg.id, "name", msg.movie.Name)
	p.setMessage(fmt.Sprintf("Película \"%s\" actualizada correctamente", msg.movie.Name))
	p.editing = nil
	p.editForm.Clear()
	p.editForm.Hide()

	if catalog.PolicyFor(catalog.OpMovieUpdate).Sync == catalog.SyncRefetch {
		return p.fetch()
	}
	// The request is keyed by the old name but the snapshot is patched by id
	for i := range p.movies {
		if p.movies[i].ID == msg.id {
			p.movies[i] = msg.movie
		}
	}
	p.syncRows()
	return nil
}

// CapturesInput reports whether one of the forms is open
func (p *MovieList) CapturesInput() bool {
	return p.createForm.Visible() || p.editForm.Visible()
}

// OpenCreate opens the create form. A draft left by a cancelled create survives.
func (p *MovieList) OpenCreate() tea.Cmd {
	if p.CapturesInput() {
		return nil
	}
	return p.createForm.Show()
}

// OpenEdit opens the edit form for the selected movie
func (p *MovieList) OpenEdit() tea.Cmd {
	movie, ok := p.Selected()
	if !ok || p.CapturesInput() {
		return nil
	}
	p.editing = &movie
	p.editForm.SetValues(movie.Name, movie.Description)
	p.setMessage("")
	return p.editForm.Show()
}

// HandleKey handles a key press
func (p *MovieList) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if p.createForm.Visible() {
		return p.handleCreateForm(msg), true
	}
	if p.editForm.Visible() {
		return p.handleEditForm(msg), true
	}

	switch {
	case key.Matches(msg, Keys.New):
		return p.OpenCreate(), true

	case key.Matches(msg, Keys.Edit):
		return p.OpenEdit(), true

	case key.Matches(msg, Keys.ToggleStatus):
		movie, ok := p.Selected()
		if !ok {
			return nil, true
		}
		return p.changeStatus(movie.ID, movie.Status.Toggle()), true
	}

	return nil, p.table.HandleKey(msg)
}

func (p *MovieList) handleCreateForm(msg tea.KeyMsg) tea.Cmd {
	action, cmd := p.createForm.Update(msg)
	switch action {
	case FormCancel:
		p.createForm.Hide()
	case FormSubmit:
		name, description := p.createForm.Value(0), p.createForm.Value(1)
		switch {
		case name == "":
			p.setMessage("Debe ingresar un nombre de película")
		case description == "":
			p.setMessage("Debe ingresar una descripción de la película")
		default:
			return p.create(name, description)
		}
	}
	return cmd
}

func (p *MovieList) handleEditForm(msg tea.KeyMsg) tea.Cmd {
	action, cmd := p.editForm.Update(msg)
	switch action {
	case FormCancel:
		p.editing = nil
		p.editForm.Hide()
	case FormSubmit:
		name, description := p.editForm.Value(0), p.editForm.Value(1)
		switch {
		case p.editing == nil:
		case name == "":
			p.setMessage("Debe ingresar un nombre de película")
		case description == "":
			p.setMessage("Debe ingresar una descripción")
		default:
			return p.update(p.editing.ID, p.editing.Name, name, description)
		}
	}
	return cmd
}

// SetSize sets the panel dimensions
func (p *MovieList) SetSize(width, height int) {
	p.ListBase.SetSize(width, height)
	p.table.SetSize(width, max(height-2, 3))
	p.createForm.SetSize(width, height)
	p.editForm.SetSize(width, height)
}

// Overlay returns the open form
func (p *MovieList) Overlay() (string, bool) {
	switch {
	case p.createForm.Visible():
		return p.createForm.Dialog(), true
	case p.editForm.Visible():
		return p.editForm.Dialog(), true
	}
	return "", false
}

// View renders the table and the message line
func (p *MovieList) View() string {
	var b strings.Builder
	b.WriteString(p.table.View())
	if msg := p.MessageLine(p.message); msg != "" {
		b.WriteString("\n\n  ")
		b.WriteString(msg)
	}
	return b.String()
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
