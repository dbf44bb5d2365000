package player

import "strings"

// MinCells is the minimum number of positional cells a row must carry
const MinCells = 9

// Row is a raw statistics row as delivered by a row source
type Row struct {
	// Name is the display name, empty when the source had none
	Name string
	// Cells holds the positional stat cells in page order
	Cells []string
	// Columns maps header labels to cell text. May be nil.
	Columns map[string]string
}

// Field describes where a statistic lives in a Row
type Field struct {
	Label  string // human readable name used in diagnostics
	Header string // column header label
	Index  int    // positional fallback into Row.Cells
}

// Named fields for the five statistics, in Player field order.
var (
	FieldPoints        = Field{Label: "points", Header: "PTS", Index: 3}
	FieldFieldGoalPct  = Field{Label: "field goal percentage", Header: "FG%", Index: 6}
	FieldThreePointPct = Field{Label: "three point percentage", Header: "3P%", Index: 9}
	FieldRebounds      = Field{Label: "rebounds", Header: "REB", Index: 13}
	FieldAssists       = Field{Label: "assists", Header: "AST", Index: 14}
)

// Fields lists every statistic the normalizer extracts
var Fields = []Field{
	FieldPoints,
	FieldFieldGoalPct,
	FieldThreePointPct,
	FieldRebounds,
	FieldAssists,
}

// Lookup returns the trimmed text of a field, preferring the header mapping
// over the positional index. ok is false when neither is present.
func (r Row) Lookup(f Field) (string, bool) {
	if v, ok := r.Columns[f.Header]; ok {
		return strings.TrimSpace(v), true
	}
	if f.Index >= 0 && f.Index < len(r.Cells) {
		return strings.TrimSpace(r.Cells[f.Index]), true
	}
	return "", false
}
