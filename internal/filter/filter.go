// Package filter narrows a player list by name before ranking.
//
// A filter holds an optional regular expression that is matched against player
// names with unanchored, case-insensitive search semantics. Plain substrings are
// valid expressions, so "king" matches "LeBron King".
//
// Example usage:
//
//	f, err := filter.New("james|curry")
//	if err != nil {
//	    return err
//	}
//	players = f.Apply(players)
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pfrederiksen/nba-mvp/internal/player"
)

// Filter represents player name filtering criteria
type Filter struct {
	pattern string
	re      *regexp.Regexp
}

// New compiles pattern into a name filter.
// An empty or whitespace-only pattern produces a filter that matches everything.
func New(pattern string) (*Filter, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return &Filter{}, nil
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}

	return &Filter{pattern: pattern, re: re}, nil
}

// IsEmpty reports whether the filter has no pattern and therefore matches all players
func (f *Filter) IsEmpty() bool {
	return f == nil || f.re == nil
}

// Pattern returns the pattern the filter was built from
func (f *Filter) Pattern() string {
	if f == nil {
		return ""
	}
	return f.pattern
}

// Matches checks if the player's name matches the pattern anywhere.
// An empty filter matches all players.
func (f *Filter) Matches(p player.Player) bool {
	if f.IsEmpty() {
		return true
	}
	return f.re.MatchString(p.Name)
}

// Apply returns the players whose names match, preserving order.
// If the filter is empty, returns the original slice unchanged.
func (f *Filter) Apply(players []player.Player) []player.Player {
	if f.IsEmpty() {
		return players
	}

	filtered := make([]player.Player, 0, len(players))
	for _, p := range players {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}

// String returns a human-readable description of the filter
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}
	return fmt.Sprintf("Name matches: %s", f.pattern)
}
