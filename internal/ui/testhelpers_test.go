package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rfhold/marquee/internal/catalog"
)

// Test dimensions for consistent output
const (
	testWidth  = 100
	testHeight = 30
)

var errTest = errors.New("connection refused")

// keyPress builds a key message from its string form
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends text to the panel as a single paste-like key message.
// The returned command (cursor blink) is dropped.
func typeText(p Panel, text string) {
	p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// drain runs cmd to completion. Panel results are fed back into p, the
// messages addressed to the shell are returned. Spinner ticks are dropped.
// Only pass commands that never block on timers (no cursor blinks).
func drain(t *testing.T, p Panel, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("drain: too many steps")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, spinner.TickMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case AlertMsg, CopyRequestMsg:
			out = append(out, msg)
		default:
			queue = append(queue, p.Update(msg))
		}
	}
	return out
}

// alerts returns the alert messages among msgs
func alerts(msgs []tea.Msg) []AlertMsg {
	var out []AlertMsg
	for _, m := range msgs {
		if a, ok := m.(AlertMsg); ok {
			out = append(out, a)
		}
	}
	return out
}

func movieFixtures() []catalog.Movie {
	return []catalog.Movie{
		{ID: "m1", Name: "Encanto", Description: "A family with magic", Status: catalog.StatusActive},
		{ID: "m2", Name: "Moana", Description: "Ocean voyage", Status: catalog.StatusInactive},
	}
}

func languageFixtures() []catalog.Language {
	return []catalog.Language{
		{ID: "l1", Code: "es", Name: "Spanish", NativeName: "Español", Region: "ES", Status: catalog.StatusActive},
		{ID: "l2", Code: "fr", Name: "French", NativeName: "Français", Region: "FR", Status: catalog.StatusActive},
	}
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func newLoadedMovieList(t *testing.T, svc *catalog.FakeMovieService) *MovieList {
	t.Helper()
	p := NewMovieList(context.Background(), svc, nil)
	p.SetSize(testWidth, testHeight)
	drain(t, p, p.Init())
	return p
}

func newLoadedLanguageList(t *testing.T, svc *catalog.FakeLanguageService) *LanguageList {
	t.Helper()
	p := NewLanguageList(context.Background(), svc, nil)
	p.SetSize(testWidth, testHeight)
	drain(t, p, p.Init())
	return p
}
