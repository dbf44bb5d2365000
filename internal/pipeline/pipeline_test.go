package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pfrederiksen/nba-mvp/internal/logger"
	"github.com/pfrederiksen/nba-mvp/internal/player"
	"github.com/pfrederiksen/nba-mvp/internal/ranking"
	"github.com/pfrederiksen/nba-mvp/internal/scraper"
)

// fakeSource returns fixed rows and records the season it was asked for
type fakeSource struct {
	rows   []player.Row
	err    error
	season string
	calls  int
}

func (f *fakeSource) FetchRows(_ context.Context, season string) ([]player.Row, error) {
	f.calls++
	f.season = season
	return f.rows, f.err
}

func row(name, pts, fg, tp, reb, ast string) player.Row {
	return player.Row{
		Name:    name,
		Cells:   make([]string, player.MinCells),
		Columns: map[string]string{"PTS": pts, "FG%": fg, "3P%": tp, "REB": reb, "AST": ast},
	}
}

func exampleRows() []player.Row {
	return []player.Row{
		row("LeBron King", "30", "50", "40", "10", "5"),
		row("Bobby Brown", "25", "60", "45", "12", "8"),
		{Name: "Too Short", Cells: []string{"1", "2"}},
		row("Carl Cobb", "20", "40", "30", "5", "3"),
		row("Dan Dunk", "--", "40", "30", "5", "3"),
	}
}

func newTestPipeline(src RowSource) (*Pipeline, *bytes.Buffer) {
	var logs bytes.Buffer
	return New(src, logger.New(logger.LevelDebug, &logs), nil), &logs
}

func TestRun(t *testing.T) {
	src := &fakeSource{rows: exampleRows()}
	p, logs := newTestPipeline(src)

	var out bytes.Buffer
	result, err := p.Run(context.Background(), Config{Season: "2023", TopCount: 2}, &out)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if src.calls != 1 || src.season != "2023" {
		t.Errorf("source called %d times with season %q, want once with 2023", src.calls, src.season)
	}
	if result.Best.Name != "Bobby Brown" || result.Second.Name != "LeBron King" || result.Third.Name != "Carl Cobb" {
		t.Errorf("podium = %s/%s/%s", result.Best.Name, result.Second.Name, result.Third.Name)
	}
	if !strings.HasSuffix(out.String(), "The NBA MVP should be: Bobby Brown\n") {
		t.Errorf("report does not end with MVP line:\n%s", out.String())
	}

	if n := strings.Count(logs.String(), "Invalid row, skipping"); n != 2 {
		t.Errorf("logged %d skipped rows, want 2", n)
	}

	m := p.Metrics()
	if got := m.Counter("rows.fetched"); got != 5 {
		t.Errorf("rows.fetched = %d, want 5", got)
	}
	if got := m.Counter("rows.skipped"); got != 2 {
		t.Errorf("rows.skipped = %d, want 2", got)
	}
	if got := m.Counter("players.accepted"); got != 3 {
		t.Errorf("players.accepted = %d, want 3", got)
	}
}

func TestRun_Pattern(t *testing.T) {
	rows := append(exampleRows(), row("Ken Kingston", "10", "45", "35", "4", "2"))
	p, _ := newTestPipeline(&fakeSource{rows: rows})

	// "KING" matches two players, not enough for a podium
	_, err := p.Run(context.Background(), Config{TopCount: 5, Pattern: "KING"}, &bytes.Buffer{})
	if !errors.Is(err, ranking.ErrInsufficientData) {
		t.Fatalf("Run() error = %v, want ErrInsufficientData", err)
	}
	if got := p.Metrics().Counter("players.filtered_out"); got != 2 {
		t.Errorf("players.filtered_out = %d, want 2", got)
	}

	p, _ = newTestPipeline(&fakeSource{rows: rows})
	result, err := p.Run(context.Background(), Config{TopCount: 5, Pattern: "b"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// LeBron, Bobby Brown, Carl Cobb all contain a "b"
	if len(result.Overall) != 3 {
		t.Errorf("ranked %d players, want 3", len(result.Overall))
	}
}

func TestRun_InvalidPattern(t *testing.T) {
	src := &fakeSource{rows: exampleRows()}
	p, _ := newTestPipeline(src)

	if _, err := p.Run(context.Background(), Config{TopCount: 5, Pattern: "(["}, &bytes.Buffer{}); err == nil {
		t.Fatal("Run() expected error for invalid pattern")
	}
	if src.calls != 0 {
		t.Error("source should not be called when the pattern is invalid")
	}
}

func TestRun_SourceUnavailable(t *testing.T) {
	srcErr := &scraper.SourceUnavailableError{URL: "https://example.test", Err: errors.New("connection refused")}
	p, logs := newTestPipeline(&fakeSource{err: srcErr})

	var out bytes.Buffer
	_, err := p.Run(context.Background(), Config{TopCount: 5}, &out)
	if !errors.Is(err, scraper.ErrSourceUnavailable) {
		t.Fatalf("Run() error = %v, want ErrSourceUnavailable", err)
	}
	if out.Len() != 0 {
		t.Errorf("report written on failure: %q", out.String())
	}
	if !strings.Contains(logs.String(), "Row source failed") {
		t.Error("source failure was not logged")
	}
}

func TestRun_EmptySource(t *testing.T) {
	p, _ := newTestPipeline(&fakeSource{})

	_, err := p.Run(context.Background(), Config{TopCount: 5}, &bytes.Buffer{})
	var ide *ranking.InsufficientDataError
	if !errors.As(err, &ide) {
		t.Fatalf("Run() error = %v, want *InsufficientDataError", err)
	}
	if ide.Have != 0 {
		t.Errorf("Have = %d, want 0", ide.Have)
	}
}

func TestNew_Defaults(t *testing.T) {
	p := New(&fakeSource{}, nil, nil)
	if p.log == nil || p.metrics == nil {
		t.Error("New() should fill in default logger and metrics")
	}
}
