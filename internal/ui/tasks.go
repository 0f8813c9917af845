// Package ui implements the popover interface for the pinned app.
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
	"github.com/mattn/go-runewidth"
)

// paneMode tracks what the task pane is currently doing with key input.
type paneMode int

const (
	modeNormal paneMode = iota
	modeAdding
	modeEditing
	modeMoving
)

// TaskPane renders the task list and translates key gestures into list
// mutations. The list itself is the App's; the pane never persists anything.
type TaskPane struct {
	list   *task.List
	prefs  *settings.Store
	styles *Styles

	cursor int
	width  int
	height int
	mode   paneMode

	input  textinput.Model
	editID string

	// Move mode state: the grabbed task and the drop slot. Slot i means
	// "between row i-1 and row i"; slot len(tasks) is below the last row.
	grabbedID string
	dropSlot  int

	keys      ListKeyMap
	inputKeys InputKeyMap
}

// NewTaskPane creates the task pane.
func NewTaskPane(list *task.List, prefs *settings.Store, styles *Styles, keyCfg *config.KeysConfig) *TaskPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	ti.Width = 36

	return &TaskPane{
		list:      list,
		prefs:     prefs,
		styles:    styles,
		input:     ti,
		keys:      NewListKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetSize sets the pane dimensions.
func (p *TaskPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(16, width-6)
}

// SetStyles swaps in a rebuilt style table after a settings change.
func (p *TaskPane) SetStyles(styles *Styles) {
	p.styles = styles
}

// Mode exposes the current input mode so the app can route global keys
// around text entry.
func (p *TaskPane) Mode() paneMode {
	return p.mode
}

func (p *TaskPane) clampCursor() {
	if p.cursor >= p.list.Len() {
		p.cursor = max(0, p.list.Len()-1)
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// CursorTask returns the task under the cursor.
func (p *TaskPane) CursorTask() (task.Task, bool) {
	tasks := p.list.Tasks()
	if p.cursor < 0 || p.cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[p.cursor], true
}

// Update handles key messages for the task pane.
func (p *TaskPane) Update(msg tea.Msg) tea.Cmd {
	switch p.mode {
	case modeAdding, modeEditing:
		return p.updateInput(msg)
	case modeMoving:
		return p.updateMoving(msg)
	}
	return p.updateNormal(msg)
}

func (p *TaskPane) updateInput(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.inputKeys.Confirm):
			value := p.input.Value()
			editing := p.mode == modeEditing
			editID := p.editID

			p.mode = modeNormal
			p.editID = ""
			p.input.Reset()
			p.input.Blur()

			if editing {
				// Empty commits are kept; the row renders a placeholder.
				p.list.EditTitle(editID, value)
				return nil
			}
			// Blank submissions are silently ignored by the list; the
			// input buffer is cleared either way.
			if t := p.list.Add(value, p.prefs.Current().AddPosition); t != nil {
				if p.prefs.Current().AddPosition == task.PositionTop {
					p.cursor = 0
				} else {
					p.cursor = p.list.Len() - 1
				}
			}
			return nil

		case key.Matches(keyMsg, p.inputKeys.Cancel):
			p.mode = modeNormal
			p.editID = ""
			p.input.Reset()
			p.input.Blur()
			return nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *TaskPane) updateMoving(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Down):
		if p.dropSlot < p.list.Len() {
			p.dropSlot++
		}

	case key.Matches(keyMsg, p.keys.Up):
		if p.dropSlot > 0 {
			p.dropSlot--
		}

	case key.Matches(keyMsg, p.keys.Top):
		p.dropSlot = 0

	case key.Matches(keyMsg, p.keys.Bottom):
		p.dropSlot = p.list.Len()

	case key.Matches(keyMsg, p.inputKeys.Confirm), key.Matches(keyMsg, p.keys.Move):
		p.drop()

	case key.Matches(keyMsg, p.inputKeys.Cancel):
		p.mode = modeNormal
		p.grabbedID = ""
	}
	return nil
}

// drop translates the drop slot into a single Move call: the slot points at
// a target row plus an above/below side, exactly like releasing a drag.
func (p *TaskPane) drop() {
	tasks := p.list.Tasks()
	grabbed := p.grabbedID
	slot := p.dropSlot

	p.mode = modeNormal
	p.grabbedID = ""

	src := -1
	for i := range tasks {
		if tasks[i].ID == grabbed {
			src = i
			break
		}
	}
	if src < 0 {
		return
	}
	// Dropping right where the task already sits.
	if slot == src || slot == src+1 {
		p.cursor = src
		return
	}

	if slot < len(tasks) {
		p.list.Move(grabbed, tasks[slot].ID, true)
	} else {
		p.list.Move(grabbed, tasks[len(tasks)-1].ID, false)
	}

	// Follow the task to its new row.
	for i, t := range p.list.Tasks() {
		if t.ID == grabbed {
			p.cursor = i
			break
		}
	}
}

func (p *TaskPane) updateNormal(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Down):
		if p.list.Len() > 0 {
			p.cursor = min(p.cursor+1, p.list.Len()-1)
		}

	case key.Matches(keyMsg, p.keys.Up):
		if p.list.Len() > 0 {
			p.cursor = max(p.cursor-1, 0)
		}

	case key.Matches(keyMsg, p.keys.Top):
		p.cursor = 0

	case key.Matches(keyMsg, p.keys.Bottom):
		if p.list.Len() > 0 {
			p.cursor = p.list.Len() - 1
		}

	case key.Matches(keyMsg, p.keys.Add):
		p.mode = modeAdding
		p.input.Placeholder = "What needs doing?"
		p.input.Focus()
		return textinput.Blink

	case key.Matches(keyMsg, p.keys.Toggle):
		if t, ok := p.CursorTask(); ok {
			p.list.Toggle(t.ID)
		}

	case key.Matches(keyMsg, p.keys.Delete):
		if t, ok := p.CursorTask(); ok {
			p.list.Delete(t.ID)
			p.clampCursor()
		}

	case key.Matches(keyMsg, p.keys.Edit):
		if t, ok := p.CursorTask(); ok {
			p.mode = modeEditing
			p.editID = t.ID
			p.input.Placeholder = ""
			p.input.SetValue(t.Title)
			p.input.CursorEnd()
			p.input.Focus()
			return textinput.Blink
		}

	case key.Matches(keyMsg, p.keys.Move):
		if t, ok := p.CursorTask(); ok && p.list.Len() > 1 {
			p.mode = modeMoving
			p.grabbedID = t.ID
			p.dropSlot = p.cursor
		}

	case key.Matches(keyMsg, p.keys.ClearCompleted):
		p.list.ClearCompleted()
		p.clampCursor()
	}
	return nil
}

// View renders the task list portion of the popover.
func (p *TaskPane) View() string {
	var b strings.Builder

	tasks := p.list.Tasks()

	if len(tasks) == 0 && p.mode != modeAdding {
		b.WriteString(p.styles.TaskEmptyStyle.Render("  No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, t := range tasks {
		if p.mode == modeMoving && p.dropSlot == i {
			b.WriteString(" " + p.styles.DropMarker)
			b.WriteString("\n")
		}
		b.WriteString(p.renderRow(i, t))
		b.WriteString("\n")
		for pad := 0; pad < p.styles.RowPadding; pad++ {
			b.WriteString("\n")
		}
	}
	if p.mode == modeMoving && p.dropSlot == len(tasks) {
		b.WriteString(" " + p.styles.DropMarker)
		b.WriteString("\n")
	}

	if p.mode == modeAdding || p.mode == modeEditing {
		prompt := "+ "
		if p.mode == modeEditing {
			prompt = "✎ "
		}
		b.WriteString("\n")
		b.WriteString(p.styles.InputPromptStyle.Render(prompt) + p.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(" " + p.styles.CountStyle.Render(p.countLine(tasks)))

	return b.String()
}

func (p *TaskPane) countLine(tasks []task.Task) string {
	remaining := 0
	for _, t := range tasks {
		if !t.Done {
			remaining++
		}
	}
	if remaining == 1 {
		return "1 task remaining"
	}
	return fmt.Sprintf("%d tasks remaining", remaining)
}

func (p *TaskPane) renderRow(i int, t task.Task) string {
	checkbox := p.styles.TaskCheckboxPending
	if t.Done {
		checkbox = p.styles.TaskCheckboxDone
	}

	textWidth := p.width - 8
	if textWidth < 8 {
		textWidth = 24
	}
	title := runewidth.Truncate(t.Title, textWidth, "…")

	var styled string
	switch {
	case title == "":
		styled = p.styles.TaskEmptyStyle.Render("(untitled)")
	case t.Done:
		styled = p.styles.TaskDoneStyle.Render(title)
	default:
		styled = p.styles.TaskPendingStyle.Render(title)
	}

	if p.mode == modeMoving && t.ID == p.grabbedID {
		return " " + p.styles.GrabbedStyle.Render("≡") + " " + checkbox + " " + styled
	}
	if i == p.cursor && p.mode == modeNormal {
		plain := title
		if plain == "" {
			plain = "(untitled)"
		}
		return p.styles.CursorStyle.Render(" " + checkboxGlyph(t.Done) + " " + plain + " ")
	}
	return "   " + checkbox + " " + styled
}

// checkboxGlyph is the unstyled checkbox used inside the cursor highlight,
// where nested ANSI sequences would break the background run.
func checkboxGlyph(done bool) string {
	if done {
		return "[✓]"
	}
	return "[ ]"
}
