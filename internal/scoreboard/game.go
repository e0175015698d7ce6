package scoreboard

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPlayers is the largest table a domino game is scored for
const MaxPlayers = 4

var (
	ErrEmptyName        = errors.New("player name is empty")
	ErrDuplicateName    = errors.New("player name already exists")
	ErrPlayerLimit      = errors.New("maximum of 4 players reached")
	ErrRoundOutOfRange  = errors.New("round index out of range")
	ErrPlayerOutOfRange = errors.New("player index out of range")
)

// Player is a registered participant
type Player struct {
	ID   string
	Name string
}

// Game is the complete state of one scoring session.
//
// Every round in Rounds has exactly len(Players) entries, entry i belonging
// to Players[i].
type Game struct {
	Players  []Player
	Rounds   [][]int
	Location string
	Date     string
}

// New returns an empty game: no players, a single empty round
func New(date string) Game {
	return Game{
		Rounds: [][]int{{}},
		Date:   date,
	}
}

// clone deep copies the game so updates never alias the caller's slices
func (g Game) clone() Game {
	out := Game{
		Players:  make([]Player, len(g.Players)),
		Rounds:   make([][]int, len(g.Rounds)),
		Location: g.Location,
		Date:     g.Date,
	}
	copy(out.Players, g.Players)
	for i, round := range g.Rounds {
		out.Rounds[i] = make([]int, len(round))
		copy(out.Rounds[i], round)
	}
	return out
}

// PlayerIndex returns the seat index of the player with id, or -1
func PlayerIndex(g Game, id string) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FindByName looks a player up case-insensitively
func FindByName(g Game, name string) (Player, bool) {
	name = strings.TrimSpace(name)
	for _, p := range g.Players {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Player{}, false
}

// AddPlayer registers a new player under id and gives them a zero in every
// existing round. On error the game is returned unchanged.
func AddPlayer(g Game, id, name string) (Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return g, ErrEmptyName
	}
	if _, exists := FindByName(g, name); exists {
		return g, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if len(g.Players) >= MaxPlayers {
		return g, ErrPlayerLimit
	}

	out := g.clone()
	out.Players = append(out.Players, Player{ID: id, Name: name})
	for i := range out.Rounds {
		out.Rounds[i] = append(out.Rounds[i], 0)
	}
	return out, nil
}

// RemovePlayer drops the player and their column from every round.
// Unknown ids are ignored.
func RemovePlayer(g Game, id string) Game {
	idx := PlayerIndex(g, id)
	if idx < 0 {
		return g
	}

	out := g.clone()
	out.Players = append(out.Players[:idx], out.Players[idx+1:]...)
	for i, round := range out.Rounds {
		if idx < len(round) {
			out.Rounds[i] = append(round[:idx], round[idx+1:]...)
		}
	}
	return out
}

// SetLocation replaces the free-text location
func SetLocation(g Game, location string) Game {
	out := g.clone()
	out.Location = location
	return out
}

// Reset starts a new game dated date, discarding players, scores and location
func Reset(g Game, date string) Game {
	return New(date)
}
