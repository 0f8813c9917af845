package ui

import (
	"testing"

	"pinned/internal/settings"
	"pinned/internal/storage"
	"pinned/internal/task"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest forces the Ascii color profile so rendered output is stable
// regardless of the terminal the tests run in.
func setupTest(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

func createTestStorage(t *testing.T) *storage.Storage {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	return store
}

func createTestStyles() *Styles {
	return NewStyles(settings.Default())
}

func seedList(titles ...string) *task.List {
	list := task.NewList()
	for _, title := range titles {
		list.Add(title, task.PositionBottom)
	}
	return list
}

func newTestTaskPane(list *task.List) (*TaskPane, *settings.Store) {
	prefs := settings.NewStore()
	pane := NewTaskPane(list, prefs, createTestStyles(), nil)
	pane.SetSize(44, 20)
	return pane, prefs
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEscape} }

// typeString feeds a string into a pane one rune at a time, the way the
// terminal delivers it.
func typeString(pane *TaskPane, s string) {
	for _, r := range s {
		pane.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
