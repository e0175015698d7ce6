package scoreboard

// Highlight marks how a cell compares to the rest of its round
type Highlight int

const (
	Plain Highlight = iota
	Best
	Worst
)

func (h Highlight) String() string {
	switch h {
	case Best:
		return "best"
	case Worst:
		return "worst"
	default:
		return "plain"
	}
}

// Totals sums each player's scores across all rounds. Short rounds count
// as zero for the missing seats.
func Totals(g Game) []int {
	totals := make([]int, len(g.Players))
	for i := range g.Players {
		for _, round := range g.Rounds {
			if i < len(round) {
				totals[i] += round[i]
			}
		}
	}
	return totals
}

// Leaders returns the ids of every player holding the lowest total
func Leaders(g Game) map[string]struct{} {
	leaders := make(map[string]struct{})
	if len(g.Players) == 0 {
		return leaders
	}

	totals := Totals(g)
	lowest := totals[0]
	for _, t := range totals[1:] {
		if t < lowest {
			lowest = t
		}
	}

	for i, t := range totals {
		if t == lowest {
			leaders[g.Players[i].ID] = struct{}{}
		}
	}
	return leaders
}

// IsLeader reports whether id is among the current leaders
func IsLeader(g Game, id string) bool {
	_, ok := Leaders(g)[id]
	return ok
}

// RoundHighlights marks the lowest score(s) of a round Best and the highest
// Worst. Rounds with fewer than two entries, and rounds where every entry is
// equal, have no Worst.
func RoundHighlights(round []int) []Highlight {
	marks := make([]Highlight, len(round))
	if len(round) < 2 {
		return marks
	}

	lo, hi := round[0], round[0]
	for _, v := range round[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	for i, v := range round {
		switch {
		case v == lo:
			marks[i] = Best
		case v == hi && lo != hi:
			marks[i] = Worst
		}
	}
	return marks
}
