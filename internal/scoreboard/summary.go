package scoreboard

import "slices"

// PlayerResult is one player's final standing in a finished game
type PlayerResult struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// GameSummary records the outcome of a game once it is replaced by a new one
type GameSummary struct {
	ID          string         `json:"id"`
	Date        string         `json:"date"`
	Location    string         `json:"location"`
	Players     []PlayerResult `json:"players"`
	WinnerNames []string       `json:"winnerNames"`
}

// Summary captures the current standings of g under id
func Summary(g Game, id string) GameSummary {
	totals := Totals(g)
	leaders := Leaders(g)

	s := GameSummary{
		ID:       id,
		Date:     g.Date,
		Location: g.Location,
		Players:  make([]PlayerResult, len(g.Players)),
	}
	for i, p := range g.Players {
		s.Players[i] = PlayerResult{Name: p.Name, Score: totals[i]}
		if _, ok := leaders[p.ID]; ok {
			s.WinnerNames = append(s.WinnerNames, p.Name)
		}
	}
	return s
}

// History is the list of games finished during this session, oldest first
type History struct {
	entries []GameSummary
}

// Record appends a summary. Games without players are not worth keeping.
func (h *History) Record(s GameSummary) bool {
	if len(s.Players) == 0 {
		return false
	}
	h.entries = append(h.entries, s)
	return true
}

// Entries returns a copy of the recorded summaries
func (h *History) Entries() []GameSummary {
	return slices.Clone(h.entries)
}

// Len returns how many games have been recorded
func (h *History) Len() int {
	return len(h.entries)
}
