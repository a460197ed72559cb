package main

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rfhold/marquee/internal/catalog"
	"github.com/rfhold/marquee/internal/ui"
)

const (
	testWidth  = 120
	testHeight = 40
)

type testDeps struct {
	movies    *catalog.FakeMovieService
	languages *catalog.FakeLanguageService
	clipboard *ui.FakeClipboard
	opened    []string
	openErr   error
}

// newTestDependencies creates dependencies backed by fakes
func newTestDependencies() (*Dependencies, *testDeps) {
	td := &testDeps{
		movies: (&catalog.FakeMovieService{}).WithMovies(
			catalog.Movie{ID: "m1", Name: "Encanto", Description: "The Madrigals", Status: catalog.StatusActive},
		),
		languages: (&catalog.FakeLanguageService{}).WithLanguages(
			catalog.Language{ID: "l1", Code: "es", Name: "Spanish", Status: catalog.StatusActive},
		),
		clipboard: &ui.FakeClipboard{},
	}
	deps := &Dependencies{
		Movies:    td.movies,
		Languages: td.languages,
		Clipboard: td.clipboard,
		OpenURL: func(url string) error {
			td.opened = append(td.opened, url)
			return td.openErr
		},
		Logger: slog.New(slog.DiscardHandler),
	}
	return deps, td
}

var testAppContext = AppContext{
	MoviesURL:    "http://stub/movies/GetAll",
	LanguagesURL: "http://stub/languages/db/GetAll",
	CatalogURL:   "http://stub/languages/api",
}

// newTestModel returns a sized model with the mount fetch settled
func newTestModel(t *testing.T) (Model, *testDeps) {
	t.Helper()
	deps, td := newTestDependencies()
	m := initialModel(context.Background(), testAppContext, deps)
	m = update(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	m = settle(t, m, m.Init())
	return m, td
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// update feeds one message and settles the returned command
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyPress(k))
	}
	return m
}

// settle runs cmd and every command it produces. Commands that do not
// return promptly (timers, cursor blinks) are dropped.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("commands did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg, ok := runWithin(c, 100*time.Millisecond)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case nil, spinner.TickMsg, tea.QuitMsg:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		}
		next, c := m.Update(msg)
		m = next.(Model)
		queue = append(queue, c)
	}
	return m
}

func runWithin(cmd tea.Cmd, d time.Duration) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d):
		return nil, false
	}
}

// TestInit_LoadsMovieList verifies the movie list is mounted on start
func TestInit_LoadsMovieList(t *testing.T) {
	m, td := newTestModel(t)

	if td.movies.Calls.List != 1 {
		t.Errorf("expected 1 List call, got %d", td.movies.Calls.List)
	}
	if m.ui.View != ui.ViewMovies || m.ui.Active != ui.Panel(m.ui.Movies) {
		t.Error("expected the movie list active")
	}
	view := m.View()
	for _, want := range []string{"Películas Frontend", "Lista de Películas", "Encanto", "Crear Película", "http://stub/movies/GetAll"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

// TestNavigate_MountsPanels verifies the number keys mount each panel and
// fetch its data
func TestNavigate_MountsPanels(t *testing.T) {
	m, td := newTestModel(t)

	m = press(t, m, "3")
	if _, ok := m.ui.Active.(*ui.LanguageList); !ok || m.ui.View != ui.ViewLanguages {
		t.Fatalf("expected language list, got %T", m.ui.Active)
	}
	if td.languages.Calls.List != 1 {
		t.Errorf("expected languages fetched, got %d", td.languages.Calls.List)
	}
	if !strings.Contains(m.View(), "Spanish") {
		t.Error("expected language rows rendered")
	}

	m = press(t, m, "4")
	if _, ok := m.ui.Active.(*ui.LanguageCatalog); !ok {
		t.Fatalf("expected language catalog, got %T", m.ui.Active)
	}
	if td.languages.Calls.ListExternal != 1 {
		t.Errorf("expected catalog fetched, got %d", td.languages.Calls.ListExternal)
	}

	m = press(t, m, "4")
	if td.languages.Calls.ListExternal != 1 {
		t.Error("expected the active view key to be a no-op")
	}
}

// TestNavigate_BackRefetchesMovies verifies returning to the list fetches it again
func TestNavigate_BackRefetchesMovies(t *testing.T) {
	m, td := newTestModel(t)

	m = press(t, m, "3", "b")
	if m.ui.View != ui.ViewMovies || m.ui.Active != ui.Panel(m.ui.Movies) {
		t.Fatal("expected the movie list active")
	}
	if td.movies.Calls.List != 2 {
		t.Errorf("expected a refetch, got %d List calls", td.movies.Calls.List)
	}
}

// TestNavigate_SearchInputCapturesKeys verifies typed keys go to the query
// until the input is left with esc
func TestNavigate_SearchInputCapturesKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "2")
	search, ok := m.ui.Active.(*ui.MovieSearch)
	if !ok {
		t.Fatalf("expected movie search, got %T", m.ui.Active)
	}

	m = press(t, m, "1", "q")
	if m.ui.View != ui.ViewSearch || m.quitting {
		t.Fatal("expected keys typed into the query")
	}
	if search.Query() != "1q" {
		t.Errorf("expected query 1q, got %q", search.Query())
	}

	m = press(t, m, "esc", "esc")
	if m.ui.View != ui.ViewMovies {
		t.Errorf("expected back on the list, got %v", m.ui.View)
	}
}

// TestNavigate_DropsResultsOfUnmountedPanel verifies a response for a
// replaced panel does not reach its successor
func TestNavigate_DropsResultsOfUnmountedPanel(t *testing.T) {
	m, td := newTestModel(t)

	next, stale := m.Update(keyPress("3"))
	m = next.(Model)
	m = press(t, m, "b", "3")

	// The old panel's request resolves last and sees a different list
	td.languages.ListFunc = func(context.Context) ([]catalog.Language, error) {
		return []catalog.Language{{ID: "l1"}, {ID: "l2"}}, nil
	}
	m = settle(t, m, stale)

	languages := m.ui.Active.(*ui.LanguageList).Languages()
	if len(languages) != 1 {
		t.Fatalf("expected the fresh panel's own snapshot, got %d rows", len(languages))
	}
}

// TestAlert_BlocksUntilDismissed verifies the alert swallows keys
func TestAlert_BlocksUntilDismissed(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, ui.AlertMsg{Title: "Aviso", Message: "No se pudo cambiar el estado"})
	if m.ui.Focus.Current() != ui.FocusAlert {
		t.Fatal("expected alert focus")
	}
	if !strings.Contains(m.View(), "No se pudo cambiar el estado") {
		t.Error("expected alert rendered")
	}

	m = press(t, m, "q", "3")
	if m.quitting || m.ui.View != ui.ViewMovies {
		t.Error("expected keys swallowed by the alert")
	}

	m = press(t, m, "enter")
	if m.ui.Focus.Current() != ui.FocusMain || m.ui.Alert.Visible() {
		t.Error("expected alert dismissed")
	}
}

// TestToggleFailure_RaisesAlert verifies a panel alert reaches the shell
func TestToggleFailure_RaisesAlert(t *testing.T) {
	m, td := newTestModel(t)
	td.movies.ChangeStatusFunc = func(context.Context, string, catalog.Status) error {
		return errors.New("connection refused")
	}

	m = press(t, m, "s")

	if !m.ui.Alert.Visible() || m.ui.Alert.Message() != "No se pudo cambiar el estado" {
		t.Errorf("expected status alert, got %q", m.ui.Alert.Message())
	}
}

// TestCopy_ShowsToast verifies a copy request reaches the clipboard and
// confirms with a toast
func TestCopy_ShowsToast(t *testing.T) {
	m, td := newTestModel(t)

	m = update(t, m, ui.CopyRequestMsg{Text: "es"})

	if len(td.clipboard.Copied) != 1 || td.clipboard.Copied[0] != "es" {
		t.Errorf("unexpected clipboard writes %v", td.clipboard.Copied)
	}
	if !m.ui.Toast.Visible() || m.ui.Toast.Message() != "Copiado: es" {
		t.Errorf("unexpected toast %q", m.ui.Toast.Message())
	}
	if !strings.Contains(m.View(), "Copiado: es") {
		t.Error("expected toast rendered")
	}
}

// TestCopy_FailureShowsWarning verifies a clipboard error does not alert
func TestCopy_FailureShowsWarning(t *testing.T) {
	m, td := newTestModel(t)
	td.clipboard.Err = errors.New("no clipboard")

	m = update(t, m, ui.CopyRequestMsg{Text: "es"})

	if m.ui.Toast.Message() != "No se pudo copiar al portapapeles" {
		t.Errorf("unexpected toast %q", m.ui.Toast.Message())
	}
	if m.ui.Alert.Visible() {
		t.Error("expected no alert")
	}
}

// TestOpen_UsesViewEndpoint verifies o opens the collection of the active view
func TestOpen_UsesViewEndpoint(t *testing.T) {
	m, td := newTestModel(t)

	m = press(t, m, "o", "4", "o")

	want := []string{testAppContext.MoviesURL, testAppContext.CatalogURL}
	if strings.Join(td.opened, ",") != strings.Join(want, ",") {
		t.Errorf("expected %v, got %v", want, td.opened)
	}

	td.openErr = errors.New("no browser")
	m = press(t, m, "o")
	if !strings.HasPrefix(m.ui.Toast.Message(), "No se pudo abrir") {
		t.Errorf("unexpected toast %q", m.ui.Toast.Message())
	}
}

// TestHelp_Toggles verifies ? opens and closes help and q closes it without quitting
func TestHelp_Toggles(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "?")
	if m.ui.Focus.Current() != ui.FocusHelp {
		t.Fatal("expected help focus")
	}
	m = press(t, m, "q")
	if m.quitting || m.ui.Focus.Current() != ui.FocusMain {
		t.Error("expected q to close help")
	}
}

// TestQuit verifies q and ctrl+c quit outside of inputs
func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, _ := newTestModel(t)
			next, cmd := m.Update(keyPress(k))

			if !next.(Model).quitting {
				t.Error("expected quitting")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("expected quit command")
			}
		})
	}
}

// TestCreateForm_Overlay verifies the create dialog floats over the list and
// keys go to the form
func TestCreateForm_Overlay(t *testing.T) {
	m, td := newTestModel(t)

	m = press(t, m, "n")
	view := m.View()
	for _, want := range []string{"Crear Película", "Guardar", "esc cerrar"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m = press(t, m, "C", "o", "c", "o", "tab", "B", "o", "y", "enter")

	if len(td.movies.Calls.Create) != 1 || td.movies.Calls.Create[0].Name != "Coco" {
		t.Fatalf("unexpected create calls %v", td.movies.Calls.Create)
	}
	if len(m.ui.Movies.Movies()) != 2 {
		t.Errorf("expected appended movie, got %d", len(m.ui.Movies.Movies()))
	}
	if len(td.opened) != 0 {
		t.Error("expected o typed into the form")
	}
}

// TestWindowSize_Resizes verifies the panels follow the terminal size
func TestWindowSize_Resizes(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	if m.ui.Width != 80 || m.ui.Height != 20 {
		t.Errorf("unexpected size %dx%d", m.ui.Width, m.ui.Height)
	}
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) > 20 {
		t.Errorf("expected at most 20 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "q salir") {
		t.Errorf("expected footer hints on the last line, got %q", lines[len(lines)-1])
	}
}
