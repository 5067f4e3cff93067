// Package ui defines the terminal UI interface for imgsearch-view.
package ui

// UI abstracts the terminal UI implementation.
// This allows swapping Bubble Tea for gocui without changing app logic.
type UI interface {
	// Run starts the UI main loop and blocks until the user quits.
	Run() error

	// Close releases UI resources.
	Close()
}
