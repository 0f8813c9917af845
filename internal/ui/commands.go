// Package ui implements the popover interface for the pinned app.
// This file contains tea.Cmd factories that wrap persistence operations.
// The gateway serializes concurrent writes internally, so a burst of
// mutations schedules a burst of commands safely; last write wins.
package ui

import (
	"time"

	"pinned/internal/settings"
	"pinned/internal/storage"
	"pinned/internal/task"

	tea "github.com/charmbracelet/bubbletea"
)

// loadTasksCmd reads the persisted task list.
func loadTasksCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		tasks, err := store.LoadTasks()
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

// saveTasksCmd persists the given snapshot, or purges the file when the
// retention preference is off. The snapshot is taken at schedule time so a
// later mutation cannot race the write.
func saveTasksCmd(store *storage.Storage, tasks []task.Task, retain bool) tea.Cmd {
	return func() tea.Msg {
		return tasksSavedMsg{err: store.SaveTasks(tasks, retain)}
	}
}

// loadSettingsCmd reads the persisted settings record.
func loadSettingsCmd(store *storage.Storage) tea.Cmd {
	return func() tea.Msg {
		rec, err := store.LoadSettings()
		return settingsLoadedMsg{record: rec, err: err}
	}
}

// saveSettingsCmd persists the settings record.
func saveSettingsCmd(store *storage.Storage, rec settings.Settings) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: store.SaveSettings(rec)}
	}
}

// expireStatusCmd clears the status line after a short delay. The id lets
// the app ignore expirations for statuses that were since replaced.
func expireStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}
