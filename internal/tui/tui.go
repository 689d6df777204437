// Package tui provides a Bubble Tea terminal user interface for photo-organizer.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/photo-organizer/internal/config"
	"github.com/handiism/photo-organizer/internal/logging"
	"github.com/handiism/photo-organizer/internal/model"
	"github.com/handiism/photo-organizer/internal/organizer"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// Focus targets, cycled with tab.
const (
	focusSource = iota
	focusLibrary
	focusOptions
	focusCount
)

const (
	maxLogs      = 10
	eventBuffer  = 256
	tickInterval = 200 * time.Millisecond
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organizer.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	source   textinput.Model
	library  textinput.Model
	focus    int
	spinner  spinner.Model
	progress progress.Model

	settings     *config.Settings
	settingsPath string

	logs    []LogEntry
	summary organizer.Summary
	err     error

	org    *organizer.Organizer
	events chan organizer.ProgressEvent

	processed int
	total     int

	width  int
	height int
}

// NewModel creates a new TUI model. Settings are read from settingsPath
// (when not empty) and written back there when a run starts.
func NewModel(settingsPath string) Model {
	settings := config.DefaultSettings()
	if settingsPath != "" {
		if loaded, err := config.Load(settingsPath); err == nil {
			settings = loaded
		}
	}

	src := textinput.New()
	src.Placeholder = "/path/to/unsorted/photos"
	src.CharLimit = 500
	src.Width = 60
	src.SetValue(settings.SourceDir)
	src.Focus()

	lib := textinput.New()
	lib.Placeholder = "/path/to/library"
	lib.CharLimit = 500
	lib.Width = 60
	lib.SetValue(settings.LibraryDir)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:        StateInput,
		source:       src,
		library:      lib,
		spinner:      sp,
		progress:     prog,
		settings:     settings,
		settingsPath: settingsPath,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one organizer event.
	ProgressMsg struct {
		Event organizer.ProgressEvent
	}

	// RunDoneMsg is sent when the organizer finishes.
	RunDoneMsg struct {
		Summary organizer.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				step := 1
				if msg.String() == "shift+tab" {
					step = focusCount - 1
				}
				m.setFocus((m.focus + step) % focusCount)
				return m, nil
			}

		case "enter":
			if m.state == StateInput && m.source.Value() != "" && m.library.Value() != "" {
				return m.start()
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.summary = organizer.Summary{}
				m.org = nil
				m.events = nil
				m.processed, m.total = 0, 0
				m.setFocus(focusSource)
				return m, nil
			}
		}

		if m.state == StateInput && m.focus == focusOptions {
			m.toggle(msg.String())
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != organizer.LevelVerbose || m.settings.Verbose {
			m.logs = append(m.logs, LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
			if len(m.logs) > maxLogs {
				m.logs = m.logs[len(m.logs)-maxLogs:]
			}
		}
		cmds = append(cmds, waitForEvent(m.events))

	case RunDoneMsg:
		m.summary = msg.Summary
		m.processed, m.total = m.org.Progress()
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.org != nil && m.state == StateRunning {
			m.processed, m.total = m.org.Progress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		switch m.focus {
		case focusSource:
			m.source, cmd = m.source.Update(msg)
		case focusLibrary:
			m.library, cmd = m.library.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.source.Blur()
	m.library.Blur()
	switch focus {
	case focusSource:
		m.source.Focus()
	case focusLibrary:
		m.library.Focus()
	}
}

// toggle applies an option key pressed while the options row is focused.
func (m *Model) toggle(key string) {
	s := m.settings
	switch key {
	case "m":
		s.Mode = nextMode(s.Mode).String()
	case "+":
		s.Limit++
	case "-":
		if s.Limit > 0 {
			s.Limit--
		}
	case "n":
		s.Rename = !s.Rename
	case "c":
		if s.Action == model.ActionCopy.String() {
			s.Action = model.ActionMove.String()
		} else {
			s.Action = model.ActionCopy.String()
		}
	case "d":
		s.DryRun = !s.DryRun
	case "v":
		s.Verbose = !s.Verbose
	}
}

// nextMode cycles daily, monthly, compact, flat.
func nextMode(current string) model.Mode {
	mode, err := model.ParseMode(current)
	if err != nil {
		return model.ModeDaily
	}
	modes := model.Modes()
	for i, m := range modes {
		if m == mode {
			return modes[(i+1)%len(modes)]
		}
	}
	return model.ModeDaily
}

// start validates the form and launches the organizer.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.settings.SourceDir = strings.TrimSpace(m.source.Value())
	m.settings.LibraryDir = strings.TrimSpace(m.library.Value())

	cfg, err := m.settings.RunConfig()
	if err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	if m.settingsPath != "" {
		if err := m.settings.Save(m.settingsPath); err != nil {
			m.logs = append(m.logs, LogEntry{Message: fmt.Sprintf("Could not save settings: %v", err), Level: organizer.LevelWarning})
		}
	}

	var logEvent func(organizer.ProgressEvent)
	var closeLog func() error
	if m.settings.LogFile != "" {
		logger, closer, err := logging.New(m.settings.LogFile, m.settings.Verbose, m.settings.DryRun)
		if err != nil {
			m.state = StateError
			m.err = err
			return m, nil
		}
		logEvent, closeLog = logging.Sink(logger), closer
	}

	events := make(chan organizer.ProgressEvent, eventBuffer)
	org := organizer.New(cfg, func(event organizer.ProgressEvent) {
		if logEvent != nil {
			logEvent(event)
		}
		select {
		case events <- event:
		default:
			// The UI only shows the latest lines; drop when it falls behind.
		}
	})

	m.org = org
	m.events = events
	m.state = StateRunning

	run := func() tea.Msg {
		summary, err := org.Run()
		close(events)
		if closeLog != nil {
			closeLog()
		}
		return RunDoneMsg{Summary: summary, Err: err}
	}
	return m, tea.Batch(run, waitForEvent(events), m.tickProgress(), m.spinner.Tick)
}

// waitForEvent returns a command that delivers the next organizer event,
// or nothing once the run has closed the channel.
func waitForEvent(events <-chan organizer.ProgressEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📷 Photo Organizer"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Sort photos into a dated library by their EXIF capture time"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(m.label("Source directory:", focusSource))
	b.WriteString("\n")
	b.WriteString(m.source.View())
	b.WriteString("\n\n")
	b.WriteString(m.label("Library directory:", focusLibrary))
	b.WriteString("\n")
	b.WriteString(m.library.View())
	b.WriteString("\n\n")

	s := m.settings
	b.WriteString(m.label("Options:", focusOptions))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Mode: %s (m)\n", s.Mode))
	if s.Mode == model.ModeCompact.String() {
		b.WriteString(fmt.Sprintf("  Monthly limit: %d (+/-)\n", s.Limit))
	}
	b.WriteString(fmt.Sprintf("  %s Rename to capture time (n)\n", check(s.Rename)))
	b.WriteString(fmt.Sprintf("  %s Copy instead of move (c)\n", check(s.Action == model.ActionCopy.String())))
	b.WriteString(fmt.Sprintf("  %s Dry run (d)\n", check(s.DryRun)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", check(s.Verbose)))

	for _, log := range m.logs {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("! " + log.Message))
	}

	return b.String()
}

func (m Model) label(text string, focus int) string {
	if m.focus == focus {
		return focusStyle.Render("› " + text)
	}
	return subtitleStyle.Render("  " + text)
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Organizing..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Photos: %d/%d", m.processed, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	s := m.summary
	title := "✨ Done!"
	if s.DryRun {
		title = "✨ Dry run complete (nothing was changed)"
	}
	transferred := fmt.Sprintf("Transferred: %d", s.Transferred)
	if s.DryRun {
		transferred = fmt.Sprintf("Would transfer: %d", s.Transferred)
	}

	box := boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"Files found: %d\n"+
			"%s\n"+
			"Already organized: %d\n"+
			"Skipped (no EXIF): %d\n"+
			"Failed: %d",
		title, s.Discovered, transferred, s.AlreadyOrganized, s.Skipped, s.Failed,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(s.String()))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		if errors.Is(m.err, organizer.ErrSourceMissing) {
			b.WriteString("\n\n")
			b.WriteString(dimStyle.Render("  Check the source path and try again."))
		}
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organizer.LevelError:
			style = errorStyle
			prefix = "✗"
		case organizer.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organizer.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organizer.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		if m.focus == focusOptions {
			return "enter: start • tab: next field • m/n/c/d/v: toggle • +/-: limit • esc: quit"
		}
		return "enter: start • tab: next field • esc: quit"
	case StateRunning:
		return "ctrl+c: quit"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settingsPath string) error {
	p := tea.NewProgram(NewModel(settingsPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
