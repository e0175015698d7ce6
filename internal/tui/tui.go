package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/dominoscore/internal/location"
	"github.com/lox/dominoscore/internal/playerid"
	"github.com/lox/dominoscore/internal/scoreboard"
)

// DateLayout is how the game date is shown
const DateLayout = "January 2, 2006"

// Options configures a Model
type Options struct {
	// Locator answers "fetch". Nil disables location lookups.
	Locator *location.Helper

	// Names are offered as completions for "add"
	Names []string

	// NewID creates player ids, playerid.New when nil
	NewID func() string

	// Clock dates new games, the real clock when nil
	Clock quartz.Clock

	// TestMode records notices for assertions
	TestMode bool
}

// Model is the Bubble Tea model for the scorekeeper
type Model struct {
	logger *log.Logger

	game    scoreboard.Game
	history scoreboard.History

	locator *location.Helper
	names   []string
	newID   func() string
	clock   quartz.Clock

	// UI components
	input   textinput.Model
	spinner spinner.Model

	// State
	notice      string
	noticeLevel noticeLevel
	confirming  bool
	fetching    bool
	showHelp    bool
	showHistory bool
	quitting    bool

	// Dimensions
	width  int
	height int

	// Test mode
	testMode        bool
	capturedNotices []string
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

// LocationResultMsg delivers the outcome of a "fetch"
type LocationResultMsg struct {
	Result location.Result
}

// NewModel creates a scorekeeper with an empty game
func NewModel(logger *log.Logger, opts Options) *Model {
	if opts.NewID == nil {
		opts.NewID = playerid.New
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	ti := textinput.New()
	ti.Placeholder = "add <name>, round, set <player> <score>, help"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60
	ti.ShowSuggestions = true
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = WarningStyle

	m := &Model{
		logger:   logger.WithPrefix("tui"),
		locator:  opts.Locator,
		names:    opts.Names,
		newID:    opts.NewID,
		clock:    opts.Clock,
		input:    ti,
		spinner:  sp,
		testMode: opts.TestMode,
	}
	m.game = scoreboard.New(m.today())
	m.refreshSuggestions()
	return m
}

func (m *Model) today() string {
	return m.clock.Now().Format(DateLayout)
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case LocationResultMsg:
		m.handleLocationResult(msg.Result)
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if m.confirming {
			m.handleConfirmKey(msg)
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.input.SetValue("")
			m.showHelp = false
			m.showHistory = false
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			return m, m.execute(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleConfirmKey answers the "start a new game?" prompt
func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.confirming = false
		m.resetGame()
	case "n", "esc", "enter":
		m.confirming = false
		m.setNotice(noticeInfo, "New game cancelled.")
	}
}

func (m *Model) resetGame() {
	if m.history.Record(scoreboard.Summary(m.game, m.newID())) {
		m.logger.Info("Archived finished game", "games", m.history.Len())
	}

	m.game = scoreboard.Reset(m.game, m.today())
	m.refreshSuggestions()
	m.setNotice(noticeSuccess, "New game started.")
	m.logger.Info("Game reset")
}

func (m *Model) handleLocationResult(res location.Result) {
	m.fetching = false

	if !res.OK() {
		m.setNotice(noticeError, fmt.Sprintf("Error fetching location: %s", res.Err.Error()))
		return
	}

	m.game = scoreboard.SetLocation(m.game, location.Format(res.Coordinates))
	m.setNotice(noticeSuccess, m.game.Location)
}

// startFetch issues the position request immediately so its timeout is
// armed before Update returns; the returned command only waits for it
func (m *Model) startFetch() tea.Cmd {
	if m.locator == nil {
		m.setNotice(noticeError, fmt.Sprintf("Error fetching location: %s", location.ErrUnavailable))
		return nil
	}
	if m.fetching || m.locator.Fetching() {
		m.setNotice(noticeInfo, "Already fetching location...")
		return nil
	}

	m.fetching = true
	m.setNotice(noticeInfo, "Fetching location...")
	m.logger.Info("Fetching location", "timeout", m.locator.Timeout())

	ch := m.locator.Start(context.Background())
	wait := func() tea.Msg {
		return LocationResultMsg{Result: <-ch}
	}
	return tea.Batch(wait, m.spinner.Tick)
}

// refreshSuggestions offers "add <name>" for every name not yet seated
func (m *Model) refreshSuggestions() {
	suggestions := slices.Clone(commandNames)
	if len(m.game.Players) < scoreboard.MaxPlayers {
		for _, name := range scoreboard.AvailableNames(m.game, m.names) {
			suggestions = append(suggestions, "add "+name)
		}
	}
	m.input.SetSuggestions(suggestions)
}

func (m *Model) setNotice(level noticeLevel, text string) {
	m.notice = text
	m.noticeLevel = level

	if m.testMode {
		m.capturedNotices = append(m.capturedNotices, text)
	}
	if level == noticeError {
		m.logger.Warn("User notice", "message", text)
	}
}

// Game returns the current game state
func (m *Model) Game() scoreboard.Game {
	return m.game
}

// History returns the games finished this session
func (m *Model) History() []scoreboard.GameSummary {
	return m.history.Entries()
}

// Fetching reports whether a location lookup is outstanding
func (m *Model) Fetching() bool {
	return m.fetching
}

// Confirming reports whether the new-game prompt is showing
func (m *Model) Confirming() bool {
	return m.confirming
}

// Notice returns the message currently shown to the user
func (m *Model) Notice() string {
	return m.notice
}

// IsTestMode returns whether the TUI is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}

// GetCapturedNotices returns every notice shown so far (test mode only)
func (m *Model) GetCapturedNotices() []string {
	if !m.testMode {
		return nil
	}
	return slices.Clone(m.capturedNotices)
}
