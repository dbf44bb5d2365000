package ranking

import (
	"sort"

	"github.com/pfrederiksen/nba-mvp/internal/player"
)

// SortKey represents the available ranking orders
type SortKey string

const (
	SortByPoints  SortKey = "points"
	SortByOverall SortKey = "overall"
)

// value extracts the ranking value for a player
func (k SortKey) value(p player.Player) float64 {
	switch k {
	case SortByOverall:
		return p.OverallScore()
	default:
		return p.Points
	}
}

// Sorted returns a copy of players ordered descending by key.
// The input slice is never reordered. Ties keep their input order.
func Sorted(players []player.Player, key SortKey) []player.Player {
	out := make([]player.Player, len(players))
	copy(out, players)

	sort.SliceStable(out, func(i, j int) bool {
		return key.value(out[i]) > key.value(out[j])
	})

	return out
}
