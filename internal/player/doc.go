// Package player provides the normalized player record and the conversion of raw
// statistics rows into players.
//
// Rows come from a row source (see the scraper package) as display strings. The
// normalizer maps each statistic through a named-field table (header label first,
// positional index as a fallback), parses it as a float and rejects rows that are
// short, incomplete or carry non-numeric or negative values. Rejected rows are
// reported as MalformedRowError values and never stop processing.
package player
