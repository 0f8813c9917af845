package settings

import "pinned/internal/task"

// Store holds the single live settings record for the process. Setters
// validate, assign, and fire the change callback; applying a loaded record
// suppresses the callback so restoring from disk never schedules a save of
// the file being read.
//
// Like the task list, the store is driven from the UI event loop and needs
// no locking.
type Store struct {
	current  Settings
	loading  bool
	onChange []func(Settings)
}

// NewStore creates a store holding the default record.
func NewStore() *Store {
	return &Store{current: Default()}
}

// OnChange registers a callback fired after every effective field change
// outside of a load.
func (st *Store) OnChange(fn func(Settings)) {
	if fn != nil {
		st.onChange = append(st.onChange, fn)
	}
}

// Current returns a copy of the live record.
func (st *Store) Current() Settings {
	return st.current
}

// ApplyLoaded replaces the record with a freshly loaded one, normalized.
// Change callbacks do not fire.
func (st *Store) ApplyLoaded(s Settings) {
	st.loading = true
	st.current = s.Normalize()
	st.loading = false
}

func (st *Store) changed() {
	if st.loading {
		return
	}
	for _, fn := range st.onChange {
		fn(st.current)
	}
}

// SetFontSize assigns a clamped font size.
func (st *Store) SetFontSize(size float64) {
	size = ClampFontSize(size)
	if st.current.FontSize == size {
		return
	}
	st.current.FontSize = size
	st.changed()
}

// AdjustFontSize nudges the font size by delta, clamped.
func (st *Store) AdjustFontSize(delta float64) {
	st.SetFontSize(st.current.FontSize + delta)
}

// SetTheme assigns the theme; unknown values fall back to system.
func (st *Store) SetTheme(theme Theme) {
	switch theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		theme = ThemeSystem
	}
	if st.current.Theme == theme {
		return
	}
	st.current.Theme = theme
	st.changed()
}

// SetColorScheme records the resolved light/dark scheme.
func (st *Store) SetColorScheme(scheme string) {
	if scheme != "light" {
		scheme = "dark"
	}
	if st.current.ColorScheme == scheme {
		return
	}
	st.current.ColorScheme = scheme
	st.changed()
}

// SetAccentColor validates and assigns a hex accent color. Invalid input is
// rejected and the previous value kept.
func (st *Store) SetAccentColor(hex string) bool {
	normalized, ok := NormalizeHex(hex)
	if !ok {
		return false
	}
	if st.current.AccentColor != normalized {
		st.current.AccentColor = normalized
		st.changed()
	}
	return true
}

// SetAddPosition assigns where new tasks are inserted.
func (st *Store) SetAddPosition(pos task.Position) {
	if pos != task.PositionBottom {
		pos = task.PositionTop
	}
	if st.current.AddPosition == pos {
		return
	}
	st.current.AddPosition = pos
	st.changed()
}

// SetRetainTasksOnClose assigns the retention flag.
func (st *Store) SetRetainTasksOnClose(retain bool) {
	if st.current.RetainTasksOnClose == retain {
		return
	}
	st.current.RetainTasksOnClose = retain
	st.changed()
}
