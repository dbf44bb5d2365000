// Package pipeline wires a row source through normalization, filtering, ranking
// and rendering for one MVP report run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/nba-mvp/internal/filter"
	"github.com/pfrederiksen/nba-mvp/internal/logger"
	"github.com/pfrederiksen/nba-mvp/internal/player"
	"github.com/pfrederiksen/nba-mvp/internal/ranking"
	"github.com/pfrederiksen/nba-mvp/internal/report"
)

// RowSource supplies the raw statistics rows for a season
type RowSource interface {
	FetchRows(ctx context.Context, season string) ([]player.Row, error)
}

// Config holds the parameters of one run
type Config struct {
	Season   string
	TopCount int
	Pattern  string
	Report   report.Options
}

// Pipeline runs the MVP report against an injected source
type Pipeline struct {
	source  RowSource
	log     *logger.Logger
	metrics *logger.Metrics
}

// New creates a pipeline. A nil log uses the package default logger.
func New(source RowSource, log *logger.Logger, metrics *logger.Metrics) *Pipeline {
	if log == nil {
		log = logger.Default()
	}
	if metrics == nil {
		metrics = logger.NewMetrics()
	}
	return &Pipeline{
		source:  source,
		log:     log,
		metrics: metrics,
	}
}

// Metrics returns the tracker the pipeline records into
func (p *Pipeline) Metrics() *logger.Metrics {
	return p.metrics
}

// Run fetches, normalizes, filters and ranks players, then writes the report to w.
// Source, ranking and rendering errors are returned unchanged in their chain.
func (p *Pipeline) Run(ctx context.Context, cfg Config, w io.Writer) (*ranking.Result, error) {
	nameFilter, err := filter.New(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	p.log.Debug("Fetching rows", logger.Fields{"season": cfg.Season})

	start := time.Now()
	rows, err := p.source.FetchRows(ctx, cfg.Season)
	p.metrics.RecordTiming("source.fetch", time.Since(start))
	if err != nil {
		p.log.Error("Row source failed", logger.Fields{"season": cfg.Season}, err)
		return nil, fmt.Errorf("fetching rows: %w", err)
	}
	p.metrics.AddCounter("rows.fetched", int64(len(rows)))

	players, skipped := player.NormalizeAll(rows)
	for _, rowErr := range skipped {
		p.metrics.IncrCounter("rows.skipped")
		p.log.Warn("Invalid row, skipping", logger.Fields{"reason": rowErr.Error()})
	}
	p.metrics.AddCounter("players.accepted", int64(len(players)))

	filtered := nameFilter.Apply(players)
	p.metrics.AddCounter("players.filtered_out", int64(len(players)-len(filtered)))
	p.log.Info("Players normalized", logger.Fields{
		"rows":     len(rows),
		"skipped":  len(skipped),
		"players":  len(players),
		"filtered": len(filtered),
		"filter":   nameFilter.String(),
	})

	result, err := ranking.Rank(filtered, cfg.TopCount)
	if err != nil {
		return nil, fmt.Errorf("ranking players: %w", err)
	}
	p.metrics.SetGauge("players.ranked", float64(len(result.Overall)))

	if err := report.Render(w, result, cfg.Report); err != nil {
		return nil, err
	}

	p.log.Debug("Run metrics", p.metrics.Snapshot())

	return result, nil
}
