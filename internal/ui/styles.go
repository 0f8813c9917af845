package ui

import (
	"pinned/internal/settings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all application styles, derived from the live settings
// record: the accent color drives highlights and the theme picks the
// light or dark palette. Rebuilt whenever the record changes.
type Styles struct {
	// Colors
	ColorAccent    lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorText      lipgloss.Color
	ColorTextMuted lipgloss.Color
	ColorBgLight   lipgloss.Color

	// Row spacing derived from the font size preference; a terminal cannot
	// scale glyphs, so larger sizes render as roomier rows instead.
	RowPadding int

	// Component styles
	TitleStyle       lipgloss.Style
	PopoverStyle     lipgloss.Style
	CountStyle       lipgloss.Style
	TaskDoneStyle    lipgloss.Style
	TaskPendingStyle lipgloss.Style
	TaskEmptyStyle   lipgloss.Style
	CursorStyle      lipgloss.Style
	GrabbedStyle     lipgloss.Style
	DropMarkerStyle  lipgloss.Style
	HelpStyle        lipgloss.Style
	HelpKeyStyle     lipgloss.Style
	StatusStyle      lipgloss.Style
	ErrorStyle       lipgloss.Style
	InputPromptStyle lipgloss.Style
	LabelStyle       lipgloss.Style
	ValueStyle       lipgloss.Style

	TaskCheckboxDone    string
	TaskCheckboxPending string
	DropMarker          string
}

// NewStyles builds the style table for the given settings record.
func NewStyles(rec settings.Settings) *Styles {
	s := &Styles{}

	s.ColorAccent = lipgloss.Color(rec.AccentColor)
	s.ColorDanger = lipgloss.Color("#EF4444")
	s.ColorSuccess = lipgloss.Color("#10B981")

	light := rec.Theme == settings.ThemeLight ||
		(rec.Theme == settings.ThemeSystem && rec.ColorScheme == "light")
	if light {
		s.ColorText = lipgloss.Color("#111827")
		s.ColorTextMuted = lipgloss.Color("#6B7280")
		s.ColorMuted = lipgloss.Color("#9CA3AF")
		s.ColorBgLight = lipgloss.Color("#E5E7EB")
	} else {
		s.ColorText = lipgloss.Color("#F9FAFB")
		s.ColorTextMuted = lipgloss.Color("#9CA3AF")
		s.ColorMuted = lipgloss.Color("#6B7280")
		s.ColorBgLight = lipgloss.Color("#374151")
	}

	if rec.FontSize >= 18 {
		s.RowPadding = 1
	}

	s.initComponentStyles()
	return s
}

func (s *Styles) initComponentStyles() {
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.ColorAccent)

	s.PopoverStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.ColorAccent).
		Padding(0, 1)

	s.CountStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.TaskDoneStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted).
		Strikethrough(true)

	s.TaskPendingStyle = lipgloss.NewStyle().
		Foreground(s.ColorText)

	// Placeholder rendering for tasks whose title was edited down to nothing.
	s.TaskEmptyStyle = lipgloss.NewStyle().
		Foreground(s.ColorMuted).
		Italic(true)

	s.CursorStyle = lipgloss.NewStyle().
		Background(s.ColorBgLight).
		Foreground(s.ColorText).
		Bold(true)

	s.GrabbedStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent).
		Bold(true)

	s.DropMarkerStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.HelpKeyStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.ColorSuccess)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.ColorDanger).
		Bold(true)

	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.ColorAccent)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(s.ColorTextMuted)

	s.ValueStyle = lipgloss.NewStyle().
		Foreground(s.ColorText).
		Bold(true)

	s.TaskCheckboxDone = lipgloss.NewStyle().Foreground(s.ColorSuccess).Render("[✓]")
	s.TaskCheckboxPending = lipgloss.NewStyle().Foreground(s.ColorMuted).Render("[ ]")
	s.DropMarker = lipgloss.NewStyle().Foreground(s.ColorAccent).Render("▸ ───")
}
