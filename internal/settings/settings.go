// Package settings defines the user-preference record persisted alongside
// the task list, plus the validation rules that keep persisted values inside
// their supported ranges.
package settings

import (
	"fmt"
	"strings"

	"pinned/internal/task"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme selects the appearance mode.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// FontSize bounds. The UI slider covers a narrower band, but anything inside
// these bounds must render; anything outside must never reach disk.
const (
	MinFontSize     = 10
	MaxFontSize     = 30
	DefaultFontSize = 14
)

// DefaultAccentColor is the accent used until the user picks one.
const DefaultAccentColor = "#6D72C3"

// Settings is the persisted preference record. Field names are the on-disk
// schema and must stay stable; AddPosition in particular is stored as an
// integer so renaming the variants never breaks old files.
type Settings struct {
	FontSize           float64       `json:"fontSize"`
	ColorScheme        string        `json:"colorScheme"`
	Theme              Theme         `json:"theme"`
	AccentColor        string        `json:"accentColorHex"`
	AddPosition        task.Position `json:"addTaskPosition"`
	RetainTasksOnClose bool          `json:"retainTasksOnClose"`
}

// Default returns the settings used on first run and as the fallback when
// the persisted record is missing or unreadable.
func Default() Settings {
	return Settings{
		FontSize:           DefaultFontSize,
		ColorScheme:        "dark",
		Theme:              ThemeSystem,
		AccentColor:        DefaultAccentColor,
		AddPosition:        task.PositionTop,
		RetainTasksOnClose: true,
	}
}

// Normalize clamps and defaults every field independently, so one corrupt
// value never takes down the rest of the record.
func (s Settings) Normalize() Settings {
	s.FontSize = ClampFontSize(s.FontSize)

	switch s.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		s.Theme = ThemeSystem
	}

	switch s.ColorScheme {
	case "dark", "light":
	default:
		s.ColorScheme = "dark"
	}

	switch s.AddPosition {
	case task.PositionTop, task.PositionBottom:
	default:
		s.AddPosition = task.PositionTop
	}

	if hex, ok := NormalizeHex(s.AccentColor); ok {
		s.AccentColor = hex
	} else {
		s.AccentColor = DefaultAccentColor
	}

	return s
}

// ClampFontSize forces a font size into the supported range.
func ClampFontSize(size float64) float64 {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// NormalizeHex parses a hex color and re-renders it as canonical #RRGGBB.
// The round trip is lossless for 24-bit colors; shorthand #RGB expands.
func NormalizeHex(hex string) (string, bool) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return "", false
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b), true
}
