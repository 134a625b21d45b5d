// Package tui provides a Bubble Tea terminal user interface for flickr-backup.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/farrago/flickr-backup/internal/config"
	"github.com/farrago/flickr-backup/internal/organize"
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

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateOrganizing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   organize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	logs      []LogEntry
	albums    []string
	err       error

	// Organizing context
	ctx    context.Context
	cancel context.CancelFunc

	// Organize manager reference; events flow through the channel so the
	// Update loop can drain them on ticks.
	manager *organize.Manager
	events  chan organize.ProgressEvent

	// Progress counters and final summary
	albumsDone  int32
	albumsTotal int32
	copiedFiles int32
	summary     *organize.Summary

	// Options
	unicode bool
	dryRun  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/flickr/export"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan organize.ProgressEvent, 256),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// InitDoneMsg is sent when the manifest has been loaded.
	InitDoneMsg struct {
		Albums  []string
		Manager *organize.Manager
		Err     error
	}

	// OrganizeDoneMsg is sent when the organizing pass completes.
	OrganizeDoneMsg struct {
		Summary *organize.Summary
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
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading || m.state == StateOrganizing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateLoading
				return m, tea.Batch(m.loadManifest(), m.spinner.Tick)
			}

		case "u":
			if m.state == StateInput {
				m.unicode = !m.unicode
			}

		case "n":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another run
				m.state = StateInput
				m.logs = nil
				m.albums = nil
				m.err = nil
				m.summary = nil
				m.albumsDone = 0
				m.albumsTotal = 0
				m.copiedFiles = 0
				m.manager = nil
				m.events = make(chan organize.ProgressEvent, 256)
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		m.drainEvents()
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.albums = msg.Albums
			m.manager = msg.Manager
			m.state = StateOrganizing
			cmds = append(cmds, m.startOrganizing(), m.tickProgress())
		}

	case OrganizeDoneMsg:
		m.drainEvents()
		m.summary = msg.Summary
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateOrganizing {
			m.drainEvents()
			done, total, copied := m.manager.GetProgress()
			m.albumsDone = done
			m.albumsTotal = total
			m.copiedFiles = copied

			var percent float64
			if total > 0 {
				percent = float64(done) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// drainEvents moves pending progress events into the log tail.
func (m *Model) drainEvents() {
	for {
		select {
		case event := <-m.events:
			if event.Level == organize.LevelVerbose && !m.verbose {
				continue
			}
			m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		default:
			return
		}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📦 Flickr Backup"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Organize a Flickr photo export into albums"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateOrganizing:
		b.WriteString(m.viewOrganizing())
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

	b.WriteString(subtitleStyle.Render("Enter the photos directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	unicodeCheck := "[ ]"
	if m.unicode {
		unicodeCheck = "[×]"
	}
	dryRunCheck := "[ ]"
	if m.dryRun {
		dryRunCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Unicode album names (u)\n", unicodeCheck))
	b.WriteString(fmt.Sprintf("  %s Dry run (n)\n", dryRunCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Albums and duplicates.txt are written next to the photos."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Loading albums.json..."))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewOrganizing() string {
	var b strings.Builder

	if len(m.albums) > 0 {
		b.WriteString(successStyle.Render(fmt.Sprintf("Found %d album(s):", len(m.albums))))
		b.WriteString("\n")
		for _, album := range m.albums {
			b.WriteString(albumStyle.Render(fmt.Sprintf("  ▸ %s", album)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Progress bar
	var percent float64
	if m.albumsTotal > 0 {
		percent = float64(m.albumsDone) / float64(m.albumsTotal)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Albums: %d/%d | Copied: %d files",
		m.albumsDone,
		m.albumsTotal,
		m.copiedFiles,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	albums, matched, duplicates, albumless, copied := 0, 0, 0, 0, 0
	if m.summary != nil {
		albums = m.summary.Albums
		matched = m.summary.Matched
		duplicates = m.summary.Duplicates
		albumless = m.summary.Albumless
		copied = m.summary.Copied
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Organizing Complete!\n\n"+
			"Albums: %d\n"+
			"Photos in albums: %d\n"+
			"Shared between albums: %d\n"+
			"Without album: %d\n"+
			"Files copied: %d",
		albums, matched, duplicates, albumless, copied,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case organize.LevelError:
			style = errorStyle
			prefix = "✗"
		case organize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case organize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case organize.LevelInfo:
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
		return "enter: start • u: unicode names • n: dry run • v: verbose • esc: quit"
	case StateLoading, StateOrganizing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: organize again • q: quit"
	}
	return ""
}

// loadManifest creates the manager and loads the manifest.
func (m *Model) loadManifest() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		photosDir := m.textInput.Value()

		settings := config.DefaultSettings()
		settings.AllowUnicodeNames = m.unicode
		settings.DryRun = m.dryRun

		// Events are buffered on a channel and drained by the Update
		// loop on every tick.
		manager := organize.NewManager(settings, func(event organize.ProgressEvent) {
			select {
			case events <- event:
			default:
			}
		})

		if err := manager.Initialize(m.ctx, "", photosDir, ""); err != nil {
			return InitDoneMsg{Err: err}
		}

		return InitDoneMsg{
			Albums:  manager.GetAlbumNames(),
			Manager: manager,
			Err:     nil,
		}
	}
}

// startOrganizing runs the organizing pass in the background.
func (m *Model) startOrganizing() tea.Cmd {
	return func() tea.Msg {
		if m.manager == nil {
			return OrganizeDoneMsg{Err: fmt.Errorf("no manager")}
		}

		summary, err := m.manager.Organize(m.ctx)
		return OrganizeDoneMsg{Summary: summary, Err: err}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
