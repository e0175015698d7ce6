package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/dominoscore/internal/scoreboard"
)

const crown = "♛"

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		HeaderStyle.Render("Domino Scorekeeper"),
		m.renderInfo(),
		m.renderPlayers(),
	}

	if len(m.game.Players) > 0 {
		sections = append(sections, m.renderScorecard())
	}

	switch {
	case m.showHelp:
		sections = append(sections, renderHelp())
	case m.showHistory:
		sections = append(sections, m.renderHistory())
	}

	sections = append(sections, m.renderNotice(), m.renderPrompt())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	return view
}

// renderInfo shows the date and location line
func (m *Model) renderInfo() string {
	loc := m.game.Location
	if loc == "" {
		loc = InfoStyle.Render("(no location, use loc <text> or fetch)")
	}

	line := fmt.Sprintf("%s %s   %s %s",
		LabelStyle.Render("Date"), m.game.Date,
		LabelStyle.Render("Location"), loc)

	if m.fetching {
		line += "  " + m.spinner.View()
	}
	return line
}

// renderPlayers lists the seated players with their seat numbers
func (m *Model) renderPlayers() string {
	if len(m.game.Players) == 0 {
		return InfoStyle.Render("Add some players to start!")
	}

	parts := make([]string, len(m.game.Players))
	for i, p := range m.game.Players {
		parts[i] = fmt.Sprintf("%d %s", i+1, p.Name)
	}

	label := "Players"
	if len(m.game.Players) >= scoreboard.MaxPlayers {
		label = "Players (max 4 players reached)"
	}
	return LabelStyle.Render(label+": ") + strings.Join(parts, "  ")
}

// renderScorecard draws every round, the totals row and leader crowns
func (m *Model) renderScorecard() string {
	g := m.game
	totals := scoreboard.Totals(g)
	leaders := scoreboard.Leaders(g)
	current := scoreboard.CurrentRound(g)

	headers := make([]string, 0, len(g.Players)+1)
	headers = append(headers, "Round")
	for _, p := range g.Players {
		name := p.Name
		if _, ok := leaders[p.ID]; ok {
			name = crown + " " + name
		}
		headers = append(headers, name)
	}

	rows := make([][]string, 0, len(g.Rounds)+1)
	marks := make([][]scoreboard.Highlight, 0, len(g.Rounds))
	for i, round := range g.Rounds {
		label := strconv.Itoa(i + 1)
		if i == current {
			label = "▸ " + label
		}
		row := []string{label}
		for _, v := range round {
			row = append(row, strconv.Itoa(v))
		}
		rows = append(rows, row)
		marks = append(marks, scoreboard.RoundHighlights(round))
	}

	totalRow := []string{"Total"}
	for _, t := range totals {
		totalRow = append(totalRow, strconv.Itoa(t))
	}
	rows = append(rows, totalRow)
	totalIndex := len(rows) - 1

	leaderColumn := func(col int) bool {
		if col < 1 || col > len(g.Players) {
			return false
		}
		_, ok := leaders[g.Players[col-1].ID]
		return ok
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				if leaderColumn(col) {
					return leaderCellStyle
				}
				return headerCellStyle
			case row == totalIndex:
				if leaderColumn(col) {
					return leaderCellStyle
				}
				return cellStyle.Inherit(TotalStyle)
			case col == 0:
				return cellStyle.Inherit(LabelStyle)
			}
			return scoreStyle(marks[row][col-1], row == current)
		})

	return t.Render()
}

func scoreStyle(h scoreboard.Highlight, current bool) lipgloss.Style {
	if current {
		switch h {
		case scoreboard.Best:
			return currentBestStyle
		case scoreboard.Worst:
			return currentWorstStyle
		default:
			return currentPlainStyle
		}
	}

	switch h {
	case scoreboard.Best:
		return pastBestStyle
	case scoreboard.Worst:
		return pastWorstStyle
	default:
		return pastPlainStyle
	}
}

func (m *Model) renderHistory() string {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return InfoStyle.Render("No finished games yet.")
	}

	var b strings.Builder
	b.WriteString(LabelStyle.Render("Finished games"))
	for i, e := range entries {
		results := make([]string, len(e.Players))
		for j, p := range e.Players {
			results[j] = fmt.Sprintf("%s %d", p.Name, p.Score)
		}

		where := ""
		if e.Location != "" {
			where = " @ " + e.Location
		}

		fmt.Fprintf(&b, "\n%d. %s%s: %s  %s %s",
			i+1, e.Date, where, strings.Join(results, ", "),
			crown, LeaderStyle.Render(strings.Join(e.WinnerNames, ", ")))
	}
	return b.String()
}

func renderHelp() string {
	lines := []string{
		"add <name>         add a player (tab completes suggested names)",
		"rm <#|name>        remove a player and their scores",
		"round              start a new round; earlier rounds are frozen",
		"set <#|name> <n>   score a player in the current round",
		"<n> <n> ...        score the current round left to right",
		"loc <text>         set the location",
		"fetch              look up the location from this machine",
		"new                start a new game",
		"history            show games finished this session",
		"export <file>      write current and finished games as JSON",
		"quit               exit",
	}
	return InfoStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderNotice() string {
	if m.notice == "" {
		return ""
	}

	switch m.noticeLevel {
	case noticeError:
		return ErrorStyle.Render(m.notice)
	case noticeSuccess:
		return SuccessStyle.Render(m.notice)
	default:
		return WarningStyle.Render(m.notice)
	}
}

func (m *Model) renderPrompt() string {
	if m.confirming {
		return WarningStyle.Render("Start a new game? [y/N]")
	}

	help := "Enter to submit • Tab to complete • help for commands • Ctrl+C to quit"
	return m.input.View() + "\n" + InfoStyle.Render(help)
}
