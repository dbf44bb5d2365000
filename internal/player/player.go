package player

import "strconv"

// DefaultName is used when a row carries no player name
const DefaultName = "N/A"

// Player holds one athlete's per-game statistics for a season
type Player struct {
	Name          string  `json:"name"`
	Points        float64 `json:"points"`
	FieldGoalPct  float64 `json:"field_goal_pct"`
	ThreePointPct float64 `json:"three_point_pct"`
	Rebounds      float64 `json:"rebounds"`
	Assists       float64 `json:"assists"`
}

// OverallScore returns the unweighted sum of the five statistics.
// Counting stats and percentages are added as-is.
func (p Player) OverallScore() float64 {
	return p.Points + p.FieldGoalPct + p.ThreePointPct + p.Rebounds + p.Assists
}

// FormatStat renders a statistic using the shortest decimal that round-trips
func FormatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
