// Package scoreboard holds the state of a domino scoring session.
//
// A Game is a plain value: players in seating order, a grid of per-round
// scores index-aligned to those players, and a free-text location. Every
// operation takes a Game and returns a new one; the input is never modified.
// Totals and leaders are derived from the grid on every call.
//
// Lower totals are better. The leaders are every player whose total equals
// the minimum total.
package scoreboard
