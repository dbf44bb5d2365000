package player

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedRow matches every MalformedRowError via errors.Is
var ErrMalformedRow = errors.New("malformed row")

// MalformedRowError reports a row that could not become a Player
type MalformedRowError struct {
	Index  int    // position of the row in the source sequence
	Name   string // player name, if any
	Field  string // offending field label, empty for length failures
	Value  string // offending text
	Reason string
}

func (e *MalformedRowError) Error() string {
	name := e.Name
	if name == "" {
		name = DefaultName
	}
	if e.Field == "" {
		return fmt.Sprintf("row %d (%s): %s", e.Index, name, e.Reason)
	}
	return fmt.Sprintf("row %d (%s): %s %q: %s", e.Index, name, e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedRow) true
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// Normalize converts one row into a Player. index is only used for diagnostics.
func Normalize(index int, row Row) (Player, error) {
	name := strings.TrimSpace(row.Name)

	if len(row.Cells) < MinCells {
		return Player{}, &MalformedRowError{
			Index:  index,
			Name:   name,
			Reason: fmt.Sprintf("has %d cells, need at least %d", len(row.Cells), MinCells),
		}
	}

	values := make([]float64, len(Fields))
	for i, f := range Fields {
		text, ok := row.Lookup(f)
		if !ok {
			return Player{}, &MalformedRowError{Index: index, Name: name, Field: f.Label, Reason: "missing"}
		}
		v, err := parseStat(text)
		if err != nil {
			return Player{}, &MalformedRowError{Index: index, Name: name, Field: f.Label, Value: text, Reason: err.Error()}
		}
		values[i] = v
	}

	if name == "" {
		name = DefaultName
	}

	return Player{
		Name:          name,
		Points:        values[0],
		FieldGoalPct:  values[1],
		ThreePointPct: values[2],
		Rebounds:      values[3],
		Assists:       values[4],
	}, nil
}

// NormalizeAll converts rows in order, skipping malformed ones.
// The returned errors are all *MalformedRowError, one per skipped row.
func NormalizeAll(rows []Row) ([]Player, []error) {
	players := make([]Player, 0, len(rows))
	var skipped []error

	for i, row := range rows {
		p, err := Normalize(i, row)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		players = append(players, p)
	}

	return players, skipped
}

func parseStat(text string) (float64, error) {
	if text == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	if v < 0 {
		return 0, errors.New("negative value")
	}
	return v, nil
}
