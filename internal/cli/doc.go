// Package cli implements the command-line interface for nba-mvp.
//
// The cli package provides the Cobra-based root command. It reads flags (with
// environment variable defaults), builds the ESPN scraper and the run logger, runs
// the report pipeline and maps fatal errors onto process exit codes.
package cli
