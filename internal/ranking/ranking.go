package ranking

import (
	"errors"
	"fmt"

	"github.com/pfrederiksen/nba-mvp/internal/player"
)

const (
	// DefaultTopCount is the number of top scorers reported when unspecified
	DefaultTopCount = 5
	// PodiumSize is the number of players needed for best, second and third place
	PodiumSize = 3
)

var (
	// ErrInsufficientData matches every InsufficientDataError via errors.Is
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidTopCount is returned when the top count is below one
	ErrInvalidTopCount = errors.New("top count must be at least 1")
)

// InsufficientDataError reports that too few players remain to rank
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %d players available, need at least %d", e.Have, e.Need)
}

// Is makes errors.Is(err, ErrInsufficientData) true
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// Result holds the ranked views of a player list
type Result struct {
	TopByPoints []player.Player `json:"top_by_points"`
	Overall     []player.Player `json:"overall_ranking"`
	Best        player.Player   `json:"best"`
	Second      player.Player   `json:"second"`
	Third       player.Player   `json:"third"`
}

// Rank computes the top scorers and the overall podium.
// topCount above the number of players is truncated to the available count.
func Rank(players []player.Player, topCount int) (*Result, error) {
	if topCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTopCount, topCount)
	}
	if len(players) < PodiumSize {
		return nil, &InsufficientDataError{Have: len(players), Need: PodiumSize}
	}

	byPoints := Sorted(players, SortByPoints)
	if topCount > len(byPoints) {
		topCount = len(byPoints)
	}

	overall := Sorted(players, SortByOverall)

	return &Result{
		TopByPoints: byPoints[:topCount:topCount],
		Overall:     overall,
		Best:        overall[0],
		Second:      overall[1],
		Third:       overall[2],
	}, nil
}

// MVP returns the best overall player
func (r *Result) MVP() player.Player {
	return r.Best
}
