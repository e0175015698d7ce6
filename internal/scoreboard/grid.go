package scoreboard

import (
	"fmt"
	"strconv"
	"strings"
)

// AddRound appends a round of zeros, one per current player
func AddRound(g Game) Game {
	out := g.clone()
	out.Rounds = append(out.Rounds, make([]int, len(g.Players)))
	return out
}

// CurrentRound is the index of the last round, the only one players edit
func CurrentRound(g Game) int {
	return len(g.Rounds) - 1
}

// SetScore overwrites a single cell of the grid.
//
// Any round may be written; keeping earlier rounds read-only is left to the
// caller.
func SetScore(g Game, round, player, value int) (Game, error) {
	if round < 0 || round >= len(g.Rounds) {
		return g, fmt.Errorf("%w: %d", ErrRoundOutOfRange, round)
	}
	if player < 0 || player >= len(g.Rounds[round]) {
		return g, fmt.Errorf("%w: %d", ErrPlayerOutOfRange, player)
	}

	out := g.clone()
	out.Rounds[round][player] = value
	return out, nil
}

// ParseScore converts user input into a score. A leading integer is used if
// present ("12pts" is 12); anything else, including overflow, is 0.
func ParseScore(input string) int {
	s := strings.TrimSpace(input)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
