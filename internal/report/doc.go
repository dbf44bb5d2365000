// Package report renders ranking results as human-readable text.
//
// Rendering is pure formatting: it writes to the io.Writer it is handed and has no
// other side effects, so callers pick the console, a file or a test buffer.
package report
