package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/dominoscore/internal/export"
	"github.com/lox/dominoscore/internal/scoreboard"
)

// commandNames are offered as completions alongside "add <name>"
var commandNames = []string{"round", "set ", "rm ", "loc ", "fetch", "new", "history", "export ", "help", "quit"}

const confirmPrompt = "Are you sure you want to start a new game? All current data will be lost. (y/n)"

// execute runs one line typed into the command input
func (m *Model) execute(line string) tea.Cmd {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	if looksNumeric(cmd) {
		m.enterRound(strings.Fields(line))
		return nil
	}

	switch strings.ToLower(cmd) {
	case "add", "a":
		m.addPlayer(rest)
	case "rm", "remove", "del":
		m.removePlayer(rest)
	case "round", "r":
		m.addRound()
	case "set", "s":
		m.setScore(strings.Fields(rest))
	case "loc", "location":
		m.game = scoreboard.SetLocation(m.game, rest)
		m.setNotice(noticeSuccess, "Location updated.")
	case "fetch", "f":
		return m.startFetch()
	case "new", "reset":
		m.confirming = true
		m.setNotice(noticeInfo, confirmPrompt)
	case "export":
		m.exportScores(rest)
	case "history", "h":
		m.showHistory = !m.showHistory
		m.showHelp = false
	case "help", "?":
		m.showHelp = !m.showHelp
		m.showHistory = false
	case "quit", "q", "exit":
		m.quitting = true
		return tea.Quit
	default:
		m.setNotice(noticeError, fmt.Sprintf("Unknown command %q, type help", cmd))
	}
	return nil
}

func (m *Model) addPlayer(name string) {
	if strings.TrimSpace(name) == "" {
		m.setNotice(noticeError, "Enter a player name.")
		return
	}

	game, err := scoreboard.AddPlayer(m.game, m.newID(), name)
	switch {
	case errors.Is(err, scoreboard.ErrDuplicateName):
		m.setNotice(noticeError, "Player name already exists.")
		return
	case errors.Is(err, scoreboard.ErrPlayerLimit):
		m.setNotice(noticeError, "Maximum of 4 players reached.")
		return
	case err != nil:
		m.setNotice(noticeError, err.Error())
		return
	}

	m.game = game
	m.refreshSuggestions()
	added := game.Players[len(game.Players)-1]
	m.setNotice(noticeSuccess, fmt.Sprintf("Added %s.", added.Name))
	m.logger.Info("Player added", "id", added.ID, "name", added.Name, "players", len(game.Players))
}

func (m *Model) removePlayer(ref string) {
	p, ok := m.lookupPlayer(ref)
	if !ok {
		m.setNotice(noticeError, fmt.Sprintf("No player %q.", ref))
		return
	}

	m.game = scoreboard.RemovePlayer(m.game, p.ID)
	m.refreshSuggestions()
	m.setNotice(noticeSuccess, fmt.Sprintf("Removed %s.", p.Name))
	m.logger.Info("Player removed", "id", p.ID, "name", p.Name)
}

func (m *Model) addRound() {
	if len(m.game.Players) == 0 {
		m.setNotice(noticeError, "Add some players to start!")
		return
	}

	m.game = scoreboard.AddRound(m.game)
	m.setNotice(noticeSuccess, fmt.Sprintf("Round %d started.", scoreboard.CurrentRound(m.game)+1))
	m.logger.Info("Round added", "rounds", len(m.game.Rounds))
}

// setScore handles "set <player> <score>" for the current round
func (m *Model) setScore(args []string) {
	if len(args) != 2 {
		m.setNotice(noticeError, "Usage: set <player> <score>")
		return
	}

	p, ok := m.lookupPlayer(args[0])
	if !ok {
		m.setNotice(noticeError, fmt.Sprintf("No player %q.", args[0]))
		return
	}

	m.writeScore(scoreboard.PlayerIndex(m.game, p.ID), scoreboard.ParseScore(args[1]))
}

// enterRound fills the current round from left to right
func (m *Model) enterRound(values []string) {
	if len(m.game.Players) == 0 {
		m.setNotice(noticeError, "Add some players to start!")
		return
	}
	if len(values) > len(m.game.Players) {
		m.setNotice(noticeError, fmt.Sprintf("Got %d scores for %d players.", len(values), len(m.game.Players)))
		return
	}

	for i, v := range values {
		m.writeScore(i, scoreboard.ParseScore(v))
	}
}

func (m *Model) writeScore(player, value int) {
	round := scoreboard.CurrentRound(m.game)
	game, err := scoreboard.SetScore(m.game, round, player, value)
	if err != nil {
		m.setNotice(noticeError, err.Error())
		return
	}

	m.game = game
	m.setNotice(noticeInfo, fmt.Sprintf("Round %d: %s = %d", round+1, game.Players[player].Name, value))
	m.logger.Debug("Score set", "round", round, "player", player, "value", value)
}

// exportScores writes the current standings and this session's finished
// games as JSON
func (m *Model) exportScores(path string) {
	if path == "" {
		m.setNotice(noticeError, "Usage: export <file>")
		return
	}

	sheet := export.Scoresheet{
		Current:  scoreboard.Summary(m.game, m.newID()),
		Finished: m.history.Entries(),
	}
	if err := export.Write(path, sheet); err != nil {
		m.setNotice(noticeError, fmt.Sprintf("Export failed: %s", err))
		return
	}

	m.setNotice(noticeSuccess, fmt.Sprintf("Scores written to %s.", path))
	m.logger.Info("Scores exported", "path", path, "finished", len(sheet.Finished))
}

// lookupPlayer resolves a 1-based seat number or a name
func (m *Model) lookupPlayer(ref string) (scoreboard.Player, bool) {
	ref = strings.TrimSpace(ref)
	if seat, err := strconv.Atoi(ref); err == nil {
		if seat >= 1 && seat <= len(m.game.Players) {
			return m.game.Players[seat-1], true
		}
		return scoreboard.Player{}, false
	}
	return scoreboard.FindByName(m.game, ref)
}

func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if (c == '-' || c == '+') && len(s) > 1 {
		c = s[1]
	}
	return c >= '0' && c <= '9'
}
