// Package ui implements the popover interface for the pinned app.
// This file renders the settings overlay: the cosmetic and behavior
// preferences backed by the settings store.
package ui

import (
	"fmt"
	"strings"

	"pinned/internal/config"
	"pinned/internal/settings"
	"pinned/internal/task"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settingsRow identifies one line of the overlay.
type settingsRow int

const (
	rowFontSize settingsRow = iota
	rowTheme
	rowAddPosition
	rowRetain
	rowAccent
	rowCount
)

// SettingsPane edits the settings record in place. Every effective change
// fires the store's save callback; the pane itself never touches disk.
type SettingsPane struct {
	prefs  *settings.Store
	styles *Styles

	cursor  settingsRow
	editing bool
	input   textinput.Model
	invalid bool
	width   int

	keys      ListKeyMap
	inputKeys InputKeyMap
	adjust    key.Binding
	adjustBck key.Binding
}

// NewSettingsPane creates the settings overlay.
func NewSettingsPane(prefs *settings.Store, styles *Styles, keyCfg *config.KeysConfig) *SettingsPane {
	ti := textinput.New()
	ti.Placeholder = "#RRGGBB"
	ti.CharLimit = 7
	ti.Width = 9

	return &SettingsPane{
		prefs:     prefs,
		styles:    styles,
		input:     ti,
		keys:      NewListKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
		adjust: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→", "increase"),
		),
		adjustBck: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←", "decrease"),
		),
	}
}

// SetSize sets the overlay width.
func (p *SettingsPane) SetSize(width int) {
	p.width = width
}

// SetStyles swaps in a rebuilt style table.
func (p *SettingsPane) SetStyles(styles *Styles) {
	p.styles = styles
}

// Editing reports whether the accent input owns the keyboard.
func (p *SettingsPane) Editing() bool {
	return p.editing
}

// Update handles key messages for the overlay. It returns true while the
// overlay stays open; false means the user dismissed it.
func (p *SettingsPane) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if p.editing {
		if isKey {
			switch {
			case key.Matches(keyMsg, p.inputKeys.Confirm):
				p.invalid = !p.prefs.SetAccentColor(p.input.Value())
				if !p.invalid {
					p.editing = false
					p.input.Reset()
					p.input.Blur()
				}
				return true, nil
			case key.Matches(keyMsg, p.inputKeys.Cancel):
				p.editing = false
				p.invalid = false
				p.input.Reset()
				p.input.Blur()
				return true, nil
			}
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return true, cmd
	}

	if !isKey {
		return true, nil
	}

	switch {
	case key.Matches(keyMsg, p.inputKeys.Cancel):
		return false, nil

	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < rowCount-1 {
			p.cursor++
		}

	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}

	case key.Matches(keyMsg, p.adjust):
		p.step(+1)

	case key.Matches(keyMsg, p.adjustBck):
		p.step(-1)

	case key.Matches(keyMsg, p.inputKeys.Confirm):
		if p.cursor == rowAccent {
			p.editing = true
			p.invalid = false
			p.input.SetValue(p.prefs.Current().AccentColor)
			p.input.CursorEnd()
			p.input.Focus()
			return true, textinput.Blink
		}
		p.step(+1)
	}
	return true, nil
}

// step adjusts the value under the cursor. Enum rows cycle; the font size
// moves by one point, clamped by the store.
func (p *SettingsPane) step(dir int) {
	cur := p.prefs.Current()
	switch p.cursor {
	case rowFontSize:
		p.prefs.AdjustFontSize(float64(dir))

	case rowTheme:
		order := []settings.Theme{settings.ThemeSystem, settings.ThemeLight, settings.ThemeDark}
		idx := 0
		for i, th := range order {
			if th == cur.Theme {
				idx = i
				break
			}
		}
		idx = (idx + dir + len(order)) % len(order)
		p.prefs.SetTheme(order[idx])

	case rowAddPosition:
		if cur.AddPosition == task.PositionTop {
			p.prefs.SetAddPosition(task.PositionBottom)
		} else {
			p.prefs.SetAddPosition(task.PositionTop)
		}

	case rowRetain:
		p.prefs.SetRetainTasksOnClose(!cur.RetainTasksOnClose)
	}
}

// View renders the settings overlay.
func (p *SettingsPane) View() string {
	cur := p.prefs.Current()

	rows := []struct {
		row   settingsRow
		label string
		value string
	}{
		{rowFontSize, "Font size", fmt.Sprintf("%.0f pt", cur.FontSize)},
		{rowTheme, "Theme", string(cur.Theme)},
		{rowAddPosition, "New tasks", cur.AddPosition.String()},
		{rowRetain, "Keep tasks on close", onOff(cur.RetainTasksOnClose)},
		{rowAccent, "Accent color", cur.AccentColor},
	}

	var b strings.Builder
	b.WriteString(p.styles.TitleStyle.Render("Settings"))
	b.WriteString("\n\n")

	for _, r := range rows {
		marker := "  "
		// Pad before styling; ANSI sequences would skew %-*s padding.
		label := p.styles.LabelStyle.Render(fmt.Sprintf("%-22s", r.label))
		value := p.styles.ValueStyle.Render(r.value)

		if r.row == rowAccent {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cur.AccentColor)).Render("■")
			value += " " + swatch
			if p.editing {
				value = p.input.View()
				if p.invalid {
					value += " " + p.styles.ErrorStyle.Render("invalid")
				}
			}
		}
		if r.row == p.cursor {
			marker = p.styles.InputPromptStyle.Render("▸ ")
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, label, value))
	}

	b.WriteString("\n")
	b.WriteString(p.styles.HelpStyle.Render("↑/↓ select · ←/→ change · enter edit · esc back"))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
