// Package render provides formatting functions for image search results.
package render

// ANSI color codes for line-oriented terminal output.
const (
	Reset = "\x1b[0m"
	Cyan  = "\x1b[0;36m"
	Bold  = "\x1b[1m"
)
