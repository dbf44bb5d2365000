// Package scraper provides HTTP fetching and HTML parsing for ESPN NBA player statistics.
//
// The scraper fetches the season player statistics page and extracts one raw row
// per player. ESPN renders the page as two side-by-side tables: a fixed left table
// holding rank and player name, and a scrolling table holding the statistics. Rows
// of the two tables are paired by position, and the stats table header supplies the
// column labels used by the player normalizer.
package scraper
