package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pfrederiksen/nba-mvp/internal/player"
	"github.com/pfrederiksen/nba-mvp/internal/ranking"
)

// Separator terminates every player block
const Separator = "------------------------"

// Options controls optional report content
type Options struct {
	// ShowScores adds the overall score to every stat block
	ShowScores bool
}

// Render writes the report for result to w
func Render(w io.Writer, result *ranking.Result, opts Options) error {
	if result == nil {
		return fmt.Errorf("rendering report: no ranking result")
	}

	// w receives the whole report in a single write
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "Top Players:")
	for _, p := range result.TopByPoints {
		writeStatBlock(&buf, p, opts)
	}

	sections := []struct {
		title  string
		player player.Player
	}{
		{"Player with the Best Overall Stats:", result.Best},
		{"Second Place:", result.Second},
		{"Third Place:", result.Third},
	}
	for _, s := range sections {
		fmt.Fprintln(&buf, s.title)
		writeStatBlock(&buf, s.player, opts)
	}

	fmt.Fprintf(&buf, "The NBA MVP should be: %s\n", result.MVP().Name)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// String renders the report into a string
func String(result *ranking.Result, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, result, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeStatBlock(w io.Writer, p player.Player, opts Options) {
	fmt.Fprintf(w, "Player: %s\n", p.Name)
	fmt.Fprintf(w, "Points: %s\n", player.FormatStat(p.Points))
	fmt.Fprintf(w, "Field Goal Percentage: %s\n", player.FormatStat(p.FieldGoalPct))
	fmt.Fprintf(w, "Three Point Percentage: %s\n", player.FormatStat(p.ThreePointPct))
	fmt.Fprintf(w, "Rebounds: %s\n", player.FormatStat(p.Rebounds))
	fmt.Fprintf(w, "Assists: %s\n", player.FormatStat(p.Assists))
	if opts.ShowScores {
		fmt.Fprintf(w, "Overall Score: %s\n", player.FormatStat(p.OverallScore()))
	}
	fmt.Fprintln(w, Separator)
}
