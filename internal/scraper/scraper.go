package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/nba-mvp/internal/player"
)

const (
	PlayerStatsURL = "https://www.espn.com/nba/stats/player/_/season/%s/seasontype/2"
	UserAgent      = "nba-mvp-cli/1.0 (github.com/pfrederiksen/nba-mvp)"
	Timeout        = 30 * time.Second
)

const (
	namesTableSelector = "table.Table.Table--fixed-left"
	statsTableSelector = "table.Table"
	nameLinkSelector   = "a.AnchorLink"
)

// ErrSourceUnavailable matches every SourceUnavailableError via errors.Is
var ErrSourceUnavailable = errors.New("source unavailable")

// SourceUnavailableError reports that no rows could be obtained from the page
type SourceUnavailableError struct {
	URL string
	Err error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source unavailable (%s): %v", e.URL, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSourceUnavailable) true
func (e *SourceUnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// Scraper handles fetching and parsing ESPN player statistics
type Scraper struct {
	client      *http.Client
	urlTemplate string
}

// Option configures a Scraper
type Option func(*Scraper)

// WithURLTemplate overrides the page URL. The template must contain one %s for the season.
func WithURLTemplate(tmpl string) Option {
	return func(s *Scraper) {
		s.urlTemplate = tmpl
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		s.client = c
	}
}

// WithTimeout sets the request timeout of the HTTP client
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.client.Timeout = d
	}
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		urlTemplate: PlayerStatsURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the page URL for a season
func (s *Scraper) URL(season string) string {
	if !strings.Contains(s.urlTemplate, "%s") {
		return s.urlTemplate
	}
	return fmt.Sprintf(s.urlTemplate, season)
}

// FetchRows fetches the statistics page for season and returns its raw rows in page order
func (s *Scraper) FetchRows(ctx context.Context, season string) ([]player.Row, error) {
	url := s.URL(season)

	rows, err := s.fetch(ctx, url)
	if err != nil {
		return nil, &SourceUnavailableError{URL: url, Err: err}
	}
	return rows, nil
}

func (s *Scraper) fetch(ctx context.Context, url string) ([]player.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseRows(resp.Body)
}

// parseRows extracts player rows from the statistics page HTML
func parseRows(r io.Reader) ([]player.Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	statsTable := doc.Find(statsTableSelector).Not(namesTableSelector).First()
	if statsTable.Length() == 0 {
		return nil, errors.New("stats table not found")
	}
	namesTable := doc.Find(namesTableSelector).First()

	headers := headerLabels(statsTable)
	statRows := bodyRows(statsTable)
	nameRows := bodyRows(namesTable)

	rows := make([]player.Row, 0, statRows.Length())
	statRows.Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})

		row := player.Row{Cells: cells}
		if i < nameRows.Length() {
			row.Name = strings.TrimSpace(nameRows.Eq(i).Find(nameLinkSelector).First().Text())
		}

		if len(headers) > 0 {
			row.Columns = make(map[string]string, len(cells))
			for j, cell := range cells {
				if j < len(headers) && headers[j] != "" {
					row.Columns[headers[j]] = cell
				}
			}
		}

		rows = append(rows, row)
	})

	return rows, nil
}

// headerLabels returns the upper-cased labels of the table's first header row
func headerLabels(table *goquery.Selection) []string {
	head := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Find("th").Length() > 0
	}).First()

	var labels []string
	head.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		labels = append(labels, strings.ToUpper(strings.TrimSpace(cell.Text())))
	})
	return labels
}

// bodyRows returns the data rows of a table. Header rows carry no td cells.
func bodyRows(table *goquery.Selection) *goquery.Selection {
	return table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Find("td").Length() > 0
	})
}
