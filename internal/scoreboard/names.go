package scoreboard

import (
	"slices"
	"strings"
)

// suggestedNames are offered when typing a new player's name
var suggestedNames = sortedNames(
	"Joko", "Budi", "Edy", "Edi", "Teguh", "Rahmat", "Bambang", "Agus",
	"Anto", "Usman", "Jefri", "Tri", "Fikar", "Yudi", "Merdha", "Marjuki",
	"Imam", "Alex", "Priyo", "Aldo", "Joni", "Guntur", "Denny", "Dani",
	"Rian", "Rizky", "Mike", "Dodi",
)

func sortedNames(names ...string) []string {
	slices.Sort(names)
	return names
}

// SuggestedNames returns the built-in name list in alphabetical order
func SuggestedNames() []string {
	return slices.Clone(suggestedNames)
}

// AvailableNames filters names down to those not already seated in g,
// preserving order
func AvailableNames(g Game, names []string) []string {
	var out []string
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, taken := FindByName(g, name); !taken {
			out = append(out, name)
		}
	}
	return out
}
