// Package ui implements the popover interface for the pinned app.
// This file defines message types for async persistence operations using
// the Bubble Tea command pattern. All file I/O returns one of these so the
// event loop never blocks on disk.
package ui

import (
	"pinned/internal/settings"
	"pinned/internal/task"
)

// tasksLoadedMsg is sent when the persisted task list has been read.
type tasksLoadedMsg struct {
	tasks []task.Task
	err   error
}

// tasksSavedMsg is sent when a task list write (or retention purge) finishes.
type tasksSavedMsg struct {
	err error
}

// settingsLoadedMsg is sent when the persisted settings record has been read.
type settingsLoadedMsg struct {
	record settings.Settings
	err    error
}

// settingsSavedMsg is sent when a settings write finishes.
type settingsSavedMsg struct {
	err error
}

// statusExpiredMsg clears the transient status line.
type statusExpiredMsg struct {
	id int
}
