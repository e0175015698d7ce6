package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/dominoscore/internal/export"
	"github.com/lox/dominoscore/internal/location"
	"github.com/lox/dominoscore/internal/scoreboard"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// sequentialIDs returns p1, p2, ... so tests can refer to players by id
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func newTestModel(t *testing.T, locator location.Locator) (*Model, *quartz.Mock) {
	t.Helper()

	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2026, time.October, 19, 20, 0, 0, 0, time.UTC))

	var helper *location.Helper
	if locator != nil {
		helper = location.NewHelper(locator, mClock, 10*time.Second, quietLogger())
	}

	m := NewModel(quietLogger(), Options{
		Locator:  helper,
		Names:    scoreboard.SuggestedNames(),
		NewID:    sequentialIDs(),
		Clock:    mClock,
		TestMode: true,
	})
	return m, mClock
}

// submit types line into the command input and presses enter
func submit(m *Model, line string) tea.Cmd {
	m.input.SetValue(line)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func press(m *Model, key string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// collect runs cmd, expanding batches, and returns the messages produced
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func deliverLocation(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collect(cmd) {
		if res, ok := msg.(LocationResultMsg); ok {
			m.Update(res)
			return
		}
	}
	t.Fatal("fetch did not produce a LocationResultMsg")
}

func TestNewModel(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.True(t, m.IsTestMode())
	assert.Equal(t, scoreboard.New("October 19, 2026"), m.Game())
	assert.Empty(t, m.GetCapturedNotices())
	assert.Contains(t, m.View(), "Add some players to start!")
}

func TestProductionModeDoesNotCaptureNotices(t *testing.T) {
	m := NewModel(quietLogger(), Options{})
	submit(m, "add Budi")

	assert.False(t, m.IsTestMode())
	assert.Nil(t, m.GetCapturedNotices())
	assert.Equal(t, "Added Budi.", m.Notice())
}

func TestAddAndRemovePlayers(t *testing.T) {
	m, _ := newTestModel(t, nil)

	submit(m, "add Budi")
	submit(m, "a Edi")
	submit(m, "add budi")

	g := m.Game()
	require.Len(t, g.Players, 2)
	assert.Equal(t, scoreboard.Player{ID: "p1", Name: "Budi"}, g.Players[0])
	assert.Equal(t, "Player name already exists.", m.Notice())

	submit(m, "add Joko")
	submit(m, "add Tri")
	submit(m, "add Yudi")
	assert.Len(t, m.Game().Players, 4)
	assert.Equal(t, "Maximum of 4 players reached.", m.Notice())
	assert.Equal(t, [][]int{{0, 0, 0, 0}}, m.Game().Rounds)

	submit(m, "rm 2")
	submit(m, "rm joko")
	submit(m, "rm nobody")

	var names []string
	for _, p := range m.Game().Players {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Budi", "Tri"}, names)
	assert.Equal(t, `No player "nobody".`, m.Notice())

	submit(m, "add")
	assert.Equal(t, "Enter a player name.", m.Notice())
}

func TestScoring(t *testing.T) {
	m, _ := newTestModel(t, nil)

	submit(m, "round")
	assert.Equal(t, "Add some players to start!", m.Notice())
	assert.Len(t, m.Game().Rounds, 1)

	submit(m, "add A")
	submit(m, "add B")
	submit(m, "3 5")
	submit(m, "round")
	submit(m, "set 1 2")
	submit(m, "set B two")
	submit(m, "set b 2")

	g := m.Game()
	assert.Equal(t, [][]int{{3, 5}, {2, 2}}, g.Rounds)
	assert.Equal(t, []int{5, 7}, scoreboard.Totals(g))
	assert.Equal(t, map[string]struct{}{"p1": {}}, scoreboard.Leaders(g))

	view := m.View()
	assert.Contains(t, view, crown+" A")
	assert.Contains(t, view, "Total")
	assert.Contains(t, view, "▸ 2")
}

func TestScoringEditsOnlyCurrentRound(t *testing.T) {
	m, _ := newTestModel(t, nil)

	submit(m, "add A")
	submit(m, "add B")
	submit(m, "4 4")
	submit(m, "r")
	submit(m, "9")

	assert.Equal(t, [][]int{{4, 4}, {9, 0}}, m.Game().Rounds)

	submit(m, "1 2 3")
	assert.Equal(t, "Got 3 scores for 2 players.", m.Notice())
	assert.Equal(t, [][]int{{4, 4}, {9, 0}}, m.Game().Rounds)
}

func TestNewGameRequiresConfirmation(t *testing.T) {
	m, _ := newTestModel(t, nil)

	submit(m, "add Agus")
	submit(m, "7")
	submit(m, "loc Pos ronda")

	t.Run("declining keeps everything", func(t *testing.T) {
		before := m.Game()
		submit(m, "new")
		require.True(t, m.Confirming())
		assert.Contains(t, m.View(), "Start a new game?")

		press(m, "n")
		assert.False(t, m.Confirming())
		assert.Equal(t, before, m.Game())
		assert.Equal(t, "New game cancelled.", m.Notice())
	})

	t.Run("other keys are ignored while confirming", func(t *testing.T) {
		submit(m, "new")
		press(m, "x")
		assert.True(t, m.Confirming())
		m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, m.Confirming())
	})

	t.Run("accepting resets and archives", func(t *testing.T) {
		submit(m, "new")
		press(m, "y")

		assert.False(t, m.Confirming())
		assert.Equal(t, scoreboard.New("October 19, 2026"), m.Game())

		history := m.History()
		require.Len(t, history, 1)
		assert.Equal(t, "Pos ronda", history[0].Location)
		assert.Equal(t, []scoreboard.PlayerResult{{Name: "Agus", Score: 7}}, history[0].Players)
		assert.Equal(t, []string{"Agus"}, history[0].WinnerNames)

		submit(m, "history")
		assert.Contains(t, m.View(), "Finished games")
	})

	t.Run("empty games are not archived", func(t *testing.T) {
		submit(m, "new")
		press(m, "y")
		assert.Len(t, m.History(), 1)
	})
}

func TestFetchLocation(t *testing.T) {
	t.Run("success overwrites location", func(t *testing.T) {
		m, _ := newTestModel(t, location.StaticLocator{Coordinates: location.Coordinates{Latitude: -6.1754, Longitude: 106.8272}})
		submit(m, "loc typed by hand")

		cmd := submit(m, "fetch")
		assert.True(t, m.Fetching())

		deliverLocation(t, m, cmd)
		assert.False(t, m.Fetching())
		assert.Equal(t, "Location fetched: -6.18, 106.83", m.Game().Location)
	})

	t.Run("failure keeps location and relays message", func(t *testing.T) {
		m, _ := newTestModel(t, failing{errors.New("User denied Geolocation")})
		submit(m, "loc Warung")

		deliverLocation(t, m, submit(m, "fetch"))
		assert.False(t, m.Fetching())
		assert.Equal(t, "Warung", m.Game().Location)
		assert.Equal(t, "Error fetching location: User denied Geolocation", m.Notice())
	})

	t.Run("timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		m, mClock := newTestModel(t, blocking{})
		cmd := submit(m, "fetch")

		submit(m, "fetch")
		assert.Equal(t, "Already fetching location...", m.Notice())

		mClock.Advance(10 * time.Second).MustWait(ctx)
		deliverLocation(t, m, cmd)
		assert.Equal(t, "Error fetching location: timeout expired", m.Notice())
		assert.Empty(t, m.Game().Location)
	})

	t.Run("no locator configured", func(t *testing.T) {
		m, _ := newTestModel(t, nil)
		assert.Nil(t, submit(m, "fetch"))
		assert.Equal(t, "Error fetching location: location services are not available", m.Notice())
		assert.False(t, m.Fetching())
	})
}

func TestExport(t *testing.T) {
	m, _ := newTestModel(t, nil)
	submit(m, "add Priyo")
	submit(m, "12")

	path := filepath.Join(t.TempDir(), "scores.json")
	submit(m, "export "+path)
	assert.Equal(t, fmt.Sprintf("Scores written to %s.", path), m.Notice())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var sheet export.Scoresheet
	require.NoError(t, json.Unmarshal(data, &sheet))
	assert.Equal(t, []scoreboard.PlayerResult{{Name: "Priyo", Score: 12}}, sheet.Current.Players)
	assert.Empty(t, sheet.Finished)

	submit(m, "export")
	assert.Equal(t, "Usage: export <file>", m.Notice())
}

func TestUnknownCommand(t *testing.T) {
	m, _ := newTestModel(t, nil)
	before := m.Game()

	submit(m, "dance")
	assert.Equal(t, `Unknown command "dance", type help`, m.Notice())
	assert.Equal(t, before, m.Game())
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	submit(m, "help")
	assert.Contains(t, m.View(), "score the current round left to right")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "score the current round left to right")

	cmd := submit(m, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestSuggestionsTrackSeatedPlayers(t *testing.T) {
	m, _ := newTestModel(t, nil)

	assert.Contains(t, m.input.AvailableSuggestions(), "add Agus")

	submit(m, "add Agus")
	assert.NotContains(t, m.input.AvailableSuggestions(), "add Agus")
	assert.Contains(t, m.input.AvailableSuggestions(), "round")

	for _, name := range []string{"Budi", "Dani", "Edy"} {
		submit(m, "add "+name)
	}
	assert.NotContains(t, m.input.AvailableSuggestions(), "add Yudi", "no name suggestions once the table is full")
}

type failing struct{ err error }

func (f failing) Locate(context.Context) (location.Coordinates, error) {
	return location.Coordinates{}, f.err
}

type blocking struct{}

func (blocking) Locate(ctx context.Context) (location.Coordinates, error) {
	<-ctx.Done()
	return location.Coordinates{}, ctx.Err()
}
