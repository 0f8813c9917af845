// Package ui implements the popover interface for the pinned app.
// This file contains the App model, which owns the task list and settings
// store, routes key input between the list pane and the overlays, and
// schedules a persistence write after every effective mutation.
package ui

import (
	"strings"
	"time"

	"pinned/internal/config"
	"pinned/internal/settings"
	"pinned/internal/storage"
	"pinned/internal/task"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const popoverWidth = 46

// statusTTL is how long a transient status line stays visible.
const statusTTL = 3 * time.Second

// App is the top-level Bubble Tea model.
type App struct {
	storage *storage.Storage
	list    *task.List
	prefs   *settings.Store
	styles  *Styles

	taskPane     *TaskPane
	settingsPane *SettingsPane
	helpOverlay  *HelpOverlay

	keys      GlobalKeyMap
	listKeys  ListKeyMap
	inputKeys InputKeyMap

	showHelp     bool
	showSettings bool
	confirm      *confirmState

	// Dirty flags set by the change listeners; drained once per Update so a
	// burst of mutations inside one event coalesces into a single write.
	listDirty  bool
	prefsDirty bool

	// lastRetain detects retention flips so the task file can be purged or
	// re-persisted immediately, not on the next task mutation.
	lastRetain    bool
	retainChanged bool

	width     int
	height    int
	status    string
	statusErr bool
	statusID  int
	quitting  bool
}

type confirmState struct {
	prompt string
	apply  func()
}

// NewApp creates the application model. Data loading is deferred to Init()
// to keep the constructor non-blocking.
func NewApp(store *storage.Storage, list *task.List, prefs *settings.Store, keyCfg *config.KeysConfig) *App {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}

	styles := NewStyles(prefs.Current())

	a := &App{
		storage:      store,
		list:         list,
		prefs:        prefs,
		styles:       styles,
		taskPane:     NewTaskPane(list, prefs, styles, keyCfg),
		settingsPane: NewSettingsPane(prefs, styles, keyCfg),
		helpOverlay:  NewHelpOverlay(styles),
		keys:         NewGlobalKeyMap(keyCfg),
		listKeys:     NewListKeyMap(keyCfg),
		inputKeys:    NewInputKeyMap(keyCfg),
		lastRetain:   prefs.Current().RetainTasksOnClose,
	}

	list.OnChange(func() { a.listDirty = true })
	prefs.OnChange(func(s settings.Settings) {
		a.prefsDirty = true
		if s.RetainTasksOnClose != a.lastRetain {
			a.lastRetain = s.RetainTasksOnClose
			a.retainChanged = true
		}
	})

	return a
}

// Init loads the persisted state asynchronously.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		loadSettingsCmd(a.storage),
		loadTasksCmd(a.storage),
	)
}

// SetStatus shows a transient message in the footer.
func (a *App) SetStatus(text string, isErr bool) tea.Cmd {
	a.status = text
	a.statusErr = isErr
	a.statusID++
	return expireStatusCmd(a.statusID, statusTTL)
}

func (a *App) refreshStyles() {
	a.styles = NewStyles(a.prefs.Current())
	a.taskPane.SetStyles(a.styles)
	a.settingsPane.SetStyles(a.styles)
	a.helpOverlay.SetStyles(a.styles)
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		paneWidth := min(popoverWidth, max(24, msg.Width-4))
		a.taskPane.SetSize(paneWidth, msg.Height-6)
		a.settingsPane.SetSize(paneWidth)
		a.helpOverlay.SetSize(msg.Width, msg.Height)
		return a, nil

	case settingsLoadedMsg:
		// A corrupt file already degraded to defaults inside the gateway;
		// that fallback is deliberately invisible here.
		a.prefs.ApplyLoaded(msg.record)
		a.lastRetain = a.prefs.Current().RetainTasksOnClose
		a.refreshStyles()
		return a, nil

	case tasksLoadedMsg:
		a.list.Reset(msg.tasks)
		return a, nil

	case tasksSavedMsg:
		if msg.err != nil {
			return a, a.SetStatus("Couldn't save tasks", true)
		}
		return a, nil

	case settingsSavedMsg:
		if msg.err != nil {
			return a, a.SetStatus("Couldn't save settings", true)
		}
		return a, nil

	case statusExpiredMsg:
		if msg.id == a.statusID {
			a.status = ""
			a.statusErr = false
		}
		return a, nil

	case tea.KeyMsg:
		cmds = append(cmds, a.handleKey(msg))

	default:
		// Blink ticks and other component messages flow to whichever input
		// is live.
		if a.showSettings {
			_, cmd := a.settingsPane.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, a.taskPane.Update(msg))
		}
	}

	cmds = append(cmds, a.drainDirty()...)
	return a, tea.Batch(cmds...)
}

// drainDirty converts the dirty flags raised during this update into
// persistence commands.
func (a *App) drainDirty() []tea.Cmd {
	var cmds []tea.Cmd
	retain := a.prefs.Current().RetainTasksOnClose

	if a.listDirty || a.retainChanged {
		a.listDirty = false
		a.retainChanged = false
		cmds = append(cmds, saveTasksCmd(a.storage, a.list.Tasks(), retain))
	}
	if a.prefsDirty {
		a.prefsDirty = false
		a.refreshStyles()
		cmds = append(cmds, saveSettingsCmd(a.storage, a.prefs.Current()))
	}
	return cmds
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirmation prompt owns the keyboard.
	if a.confirm != nil {
		switch msg.String() {
		case "y", "Y", "enter":
			a.confirm.apply()
			a.confirm = nil
		case "n", "N", "esc", "q":
			a.confirm = nil
		}
		return nil
	}

	if a.showHelp {
		if key.Matches(msg, a.keys.Help) || key.Matches(msg, a.inputKeys.Cancel) || key.Matches(msg, a.keys.Quit) {
			a.showHelp = false
		}
		return nil
	}

	if a.showSettings {
		open, cmd := a.settingsPane.Update(msg)
		a.showSettings = open
		return cmd
	}

	// Text entry and move mode swallow everything except their own keys.
	if a.taskPane.Mode() != modeNormal {
		return a.taskPane.Update(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()

	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return nil

	case key.Matches(msg, a.keys.Settings):
		a.showSettings = true
		return nil

	case key.Matches(msg, a.listKeys.ClearAll):
		if a.list.Len() > 0 {
			a.confirm = &confirmState{
				prompt: "Delete all tasks?",
				apply:  func() { a.list.ClearAll() },
			}
		}
		return nil
	}

	return a.taskPane.Update(msg)
}

// quit flushes synchronously before exiting. Closing the popover is the one
// natural checkpoint where a blocking write is fine.
func (a *App) quit() tea.Cmd {
	a.quitting = true
	_ = a.storage.SaveTasks(a.list.Tasks(), a.prefs.Current().RetainTasksOnClose)
	return tea.Quit
}

// View renders the popover.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body string
	switch {
	case a.showSettings:
		body = a.settingsPane.View()
	default:
		var b strings.Builder
		b.WriteString(" " + a.styles.TitleStyle.Render("pinned"))
		b.WriteString("\n\n")
		b.WriteString(a.taskPane.View())
		body = b.String()
	}

	var footer string
	switch {
	case a.confirm != nil:
		footer = a.styles.ErrorStyle.Render(a.confirm.prompt) + a.styles.HelpStyle.Render(" (y/n)")
	case a.status != "":
		if a.statusErr {
			footer = a.styles.ErrorStyle.Render(a.status)
		} else {
			footer = a.styles.StatusStyle.Render(a.status)
		}
	case a.showSettings:
		footer = ""
	default:
		footer = a.styles.HelpStyle.Render("a add · s settings · ? help · q close")
	}
	if footer != "" {
		body += "\n\n " + footer
	}

	popover := a.styles.PopoverStyle.Width(min(popoverWidth, max(24, a.width-2))).Render(body)

	if a.showHelp {
		return a.helpOverlay.View()
	}

	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, popover)
	}
	return popover
}

// Run starts the popover and blocks until the user closes it.
func Run(store *storage.Storage, keyCfg *config.KeysConfig) error {
	app := NewApp(store, task.NewList(), settings.NewStore(), keyCfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
