package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pfrederiksen/nba-mvp/internal/logger"
	"github.com/pfrederiksen/nba-mvp/internal/pipeline"
	"github.com/pfrederiksen/nba-mvp/internal/ranking"
	"github.com/pfrederiksen/nba-mvp/internal/report"
	"github.com/pfrederiksen/nba-mvp/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess           = 0
	ExitError             = 1
	ExitInsufficientData  = 2
	ExitSourceUnavailable = 3
)

const (
	DefaultSeason = "2023"

	EnvSeason    = "NBA_MVP_SEASON"
	EnvSourceURL = "NBA_MVP_SOURCE_URL"
	EnvLogLevel  = "NBA_MVP_LOG_LEVEL"
)

// options holds the parsed flag values of one invocation
type options struct {
	top       int
	pattern   string
	season    string
	sourceURL string
	timeout   time.Duration
	logLevel  string
	verbose   bool
}

// SourceFactory builds the row source for a run
type SourceFactory func(urlTemplate string, timeout time.Duration) pipeline.RowSource

func newScraperSource(urlTemplate string, timeout time.Duration) pipeline.RowSource {
	return scraper.New(scraper.WithURLTemplate(urlTemplate), scraper.WithTimeout(timeout))
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(newScraperSource)
}

func newRootCmd(newSource SourceFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "nba-mvp",
		Short: "Rank NBA players and name a most valuable player",
		Long: `A CLI tool that scrapes ESPN per-game player statistics for a season,
lists the top scorers and ranks players by the sum of points, field goal
percentage, three point percentage, rebounds and assists.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, newSource, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	// Define flags
	cmd.Flags().IntVar(&opts.top, "top", ranking.DefaultTopCount, "Number of top scorers to list")
	cmd.Flags().StringVar(&opts.pattern, "pattern", "", "Case-insensitive regular expression to filter player names")
	cmd.Flags().StringVar(&opts.season, "season", envOr(EnvSeason, DefaultSeason), "Season to report on (env: "+EnvSeason+")")
	cmd.Flags().StringVar(&opts.sourceURL, "source-url", envOr(EnvSourceURL, scraper.PlayerStatsURL), "Stats page URL template, %s is replaced by the season (env: "+EnvSourceURL+")")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", scraper.Timeout, "HTTP request timeout")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", envOr(EnvLogLevel, "warn"), "Log level: debug, info, warn or error (env: "+EnvLogLevel+")")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging and show overall scores")

	return cmd
}

// run is the main command logic
func run(ctx context.Context, opts *options, newSource SourceFactory, stdout, stderr io.Writer) error {
	if opts.top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", opts.top)
	}

	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.verbose {
		level = logger.LevelDebug
	}

	log := logger.New(level, stderr).With(logger.Fields{"run_id": logger.NewRunID()})
	logger.SetDefault(log)

	log.Info("Starting run", logger.Fields{
		"season":     opts.season,
		"top":        opts.top,
		"pattern":    opts.pattern,
		"source_url": opts.sourceURL,
	})

	p := pipeline.New(newSource(opts.sourceURL, opts.timeout), log, logger.NewMetrics())

	cfg := pipeline.Config{
		Season:   opts.season,
		TopCount: opts.top,
		Pattern:  opts.pattern,
		Report:   report.Options{ShowScores: opts.verbose},
	}

	if _, err := p.Run(ctx, cfg, stdout); err != nil {
		return err
	}

	return nil
}

// ExitCode maps a run error onto a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ranking.ErrInsufficientData):
		return ExitInsufficientData
	case errors.Is(err, scraper.ErrSourceUnavailable):
		return ExitSourceUnavailable
	default:
		return ExitError
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitCode(err))
	}
}
