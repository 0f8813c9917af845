// Package storage is the persistence gateway: it owns the two data files
// (tasks.json and settings.json) under the app's data directory and is the
// only component that reads or writes them.
//
// Persistence is best-effort. The in-memory task list stays the source of
// truth for a running session; a failed write is reported but never blocks
// the operation that triggered it, and a missing or corrupt file on load
// degrades to an empty list or default settings rather than an error the UI
// would have to surface.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"pinned/internal/fsutil"
	"pinned/internal/settings"
	"pinned/internal/task"
)

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	tasksFile    = "tasks.json"
	settingsFile = "settings.json"
)

// Storage handles all file I/O for tasks and settings.
type Storage struct {
	dataDir string
	mu      sync.Mutex // serializes writers; rapid saves must not interleave
	onSave  func(filename string)
}

// New creates a Storage rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Storage{dataDir: dataDir}, nil
}

// SetOnSave registers a callback invoked after each successful file write,
// with the file's base name.
func (s *Storage) SetOnSave(fn func(filename string)) {
	s.onSave = fn
}

// DataDir returns the path to the data directory.
func (s *Storage) DataDir() string {
	return s.dataDir
}

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	path := s.path(filename)

	s.mu.Lock()
	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)
	err = fsutil.WriteFileAtomic(path, data, dataFilePerm)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	if s.onSave != nil {
		s.onSave(filename)
	}
	return nil
}

// loadJSONWithRecovery reads filename into v. A missing file leaves v
// untouched. A corrupt file is recovered from its .bak when possible;
// otherwise the broken file is quarantined so the next save starts clean.
// The returned error is advisory: v always holds a usable value.
func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err != nil {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
	}
	return nil
}

func (s *Storage) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try the backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			s.quarantine(path)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file and fall back to defaults.
	corruptPath := s.quarantine(path)
	return fmt.Errorf("%s (falling back to defaults; original moved to %s)", cause.Error(), corruptPath)
}

func (s *Storage) quarantine(path string) string {
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	return corruptPath
}

// LoadTasks reads the persisted task list in display order. A missing or
// unreadable file yields an empty list; the error, when non-nil, is for
// logging only.
func (s *Storage) LoadTasks() ([]task.Task, error) {
	tasks := []task.Task{}
	err := s.loadJSONWithRecovery(tasksFile, &tasks)
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks, err
}

// SaveTasks persists the task list in display order when retain is true.
// When retain is false it deletes the task file (and its backup) instead, so
// turning retention off purges stale data rather than leaving it dormant.
func (s *Storage) SaveTasks(tasks []task.Task, retain bool) error {
	if !retain {
		return s.DeleteTasksFile()
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return s.writeJSONAtomic(tasksFile, tasks)
}

// DeleteTasksFile removes the persisted task list and its backup.
func (s *Storage) DeleteTasksFile() error {
	path := s.path(tasksFile)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fsutil.Remove(path); err != nil {
		return err
	}
	return fsutil.Remove(path + ".bak")
}

// LoadSettings reads the persisted settings record, normalized field by
// field. A missing or unreadable file yields the defaults; the error is for
// logging only.
func (s *Storage) LoadSettings() (settings.Settings, error) {
	rec := settings.Default()
	err := s.loadJSONWithRecovery(settingsFile, &rec)
	return rec.Normalize(), err
}

// SaveSettings persists the settings record.
func (s *Storage) SaveSettings(rec settings.Settings) error {
	return s.writeJSONAtomic(settingsFile, rec.Normalize())
}
