//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/hashicorp/go-hclog"
	"github.com/muesli/termenv"

	"github.com/rfhold/marquee/internal/catalog"
	"github.com/rfhold/marquee/internal/fakebackend"
	"github.com/rfhold/marquee/internal/ui"
)

func init() {
	// Force consistent color profile for reproducible tests across environments
	lipgloss.SetColorProfile(termenv.Ascii)
}

const (
	goldenWidth  = 120
	goldenHeight = 40
)

// TestEnvironment is a stub backend served over HTTP with real clients
type TestEnvironment struct {
	t         *testing.T
	Backend   *fakebackend.Server
	Clipboard *ui.FakeClipboard
	server    *httptest.Server
}

// SetupTestEnv starts a seeded stub backend for the test
func SetupTestEnv(t *testing.T) *TestEnvironment {
	t.Helper()

	store := fakebackend.NewStore()
	store.SeedDemo()
	backend := fakebackend.NewServer(store, hclog.NewNullLogger())
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	return &TestEnvironment{
		t:         t,
		Backend:   backend,
		Clipboard: &ui.FakeClipboard{},
		server:    srv,
	}
}

// CreateModel wires the model to the stub backend
func (te *TestEnvironment) CreateModel() Model {
	te.t.Helper()

	logger := slog.New(slog.DiscardHandler)
	movies, err := catalog.NewMovieClient(te.server.URL+fakebackend.MoviesPrefix, catalog.WithLogger(logger))
	if err != nil {
		te.t.Fatalf("movie client: %v", err)
	}
	languages, err := catalog.NewLanguageClient(te.server.URL+fakebackend.LanguagesPrefix, catalog.WithLogger(logger))
	if err != nil {
		te.t.Fatalf("language client: %v", err)
	}

	deps := &Dependencies{
		Movies:    movies,
		Languages: languages,
		Clipboard: te.Clipboard,
		OpenURL:   func(string) error { return nil },
		Logger:    logger,
	}
	appCtx := AppContext{
		MoviesURL:    movies.ListURL(),
		LanguagesURL: languages.ListURL(),
		CatalogURL:   languages.ExternalURL(),
	}
	return initialModel(context.Background(), appCtx, deps)
}

type outputCapture struct {
	tm       *teatest.TestModel
	captured bytes.Buffer
	mu       sync.Mutex
}

type testHarness struct {
	t       *testing.T
	tm      *teatest.TestModel
	capture *outputCapture
}

func newOutputCapture(tm *teatest.TestModel) *outputCapture {
	return &outputCapture{tm: tm}
}

func (oc *outputCapture) Read(p []byte) (n int, err error) {
	n, err = oc.tm.Output().Read(p)
	if n > 0 {
		oc.mu.Lock()
		oc.captured.Write(p[:n])
		oc.mu.Unlock()
	}
	return n, err
}

func (oc *outputCapture) AllOutput() []byte {
	remaining, _ := io.ReadAll(oc.tm.Output())
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.captured.Write(remaining)
	return oc.captured.Bytes()
}

func newTestHarness(t *testing.T, m Model) *testHarness {
	t.Helper()
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(goldenWidth, goldenHeight),
	)
	return &testHarness{t: t, tm: tm, capture: newOutputCapture(tm)}
}

func (h *testHarness) Send(msg tea.Msg) {
	h.tm.Send(msg)
}

// Type sends each rune as its own key press
func (h *testHarness) Type(text string) {
	for _, r := range text {
		h.tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *testHarness) Key(k tea.KeyType) {
	h.tm.Send(tea.KeyMsg{Type: k})
}

func (h *testHarness) WaitFor(content string, timeout time.Duration) {
	h.t.Helper()
	teatest.WaitFor(h.t, h.capture,
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(content))
		},
		teatest.WithCheckInterval(50*time.Millisecond),
		teatest.WithDuration(timeout),
	)
}

func (h *testHarness) WaitAndSnapshot(content string, name string, timeout time.Duration) {
	h.t.Helper()
	h.WaitFor(content, timeout)
	h.Snapshot(name)
}

func (h *testHarness) Snapshot(name string) {
	h.t.Helper()
	// Let pending requests and redraws land
	time.Sleep(300 * time.Millisecond)
	frame := normalizeFrame(string(extractLastFrame(h.capture.AllOutput())))
	h.t.Run(name, func(t *testing.T) {
		golden.RequireEqual(t, []byte(frame))
	})
}

// FinalModel quits the program and returns the last model
func (h *testHarness) FinalModel() Model {
	h.t.Helper()
	time.Sleep(100 * time.Millisecond)
	h.tm.Send(tea.Quit())
	return h.tm.FinalModel(h.t, teatest.WithFinalTimeout(5*time.Second)).(Model)
}

func (h *testHarness) Quit(timeout time.Duration) {
	h.tm.Send(tea.Quit())
	h.tm.WaitFinished(h.t, teatest.WithFinalTimeout(timeout))
}

var cursorUp = regexp.MustCompile(`\x1b\[\d+A`)

// extractLastFrame keeps the output after the last redraw, which Bubble Tea
// starts by moving the cursor up
func extractLastFrame(output []byte) []byte {
	locs := cursorUp.FindAllIndex(output, -1)
	if len(locs) == 0 {
		return output
	}
	return output[locs[len(locs)-1][0]:]
}

var spinnerFrames = regexp.MustCompile(`[⣾⣷⣯⣟⡿⢿⣻⣽]`)

// normalizeFrame masks the spinner and the random port of the test server
func normalizeFrame(s string) string {
	s = spinnerFrames.ReplaceAllString(s, "◐")
	s = regexp.MustCompile(`127\.0\.0\.1:\d+`).ReplaceAllStringFunc(s, func(m string) string {
		return "127.0.0.1:" + strings.Repeat("X", len(m)-len("127.0.0.1:"))
	})

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
