package gocui

// -----------------------------------------------------------------------------
// Layout Constants
// -----------------------------------------------------------------------------

const (
	// HeaderHeight is the height of the header view (including borders).
	HeaderHeight = 3

	// InputHeight is the height of the query input (including borders).
	InputHeight = 3

	// BannerHeight is the height of the error banner (including borders).
	BannerHeight = 3

	// FooterHeight is the height of the footer view.
	FooterHeight = 2

	// MinWidth is the narrowest usable terminal.
	MinWidth = 40
)

// Layout manages view positioning and sizing calculations.
type Layout struct {
	maxX, maxY int
	banner     bool
}

// NewLayout creates a new layout calculator with the given terminal size.
// The banner row is only reserved when banner is true.
func NewLayout(maxX, maxY int, banner bool) *Layout {
	return &Layout{maxX: maxX, maxY: maxY, banner: banner}
}

// HeaderBounds returns the bounds for the header view.
// Returns x0, y0, x1, y1.
func (l *Layout) HeaderBounds() (int, int, int, int) {
	return 0, 0, l.maxX - 1, HeaderHeight - 1
}

// InputBounds returns the bounds for the query input, or the dataset heading.
// Returns x0, y0, x1, y1.
func (l *Layout) InputBounds() (int, int, int, int) {
	return 0, HeaderHeight, l.maxX - 1, HeaderHeight + InputHeight - 1
}

// BannerBounds returns the bounds for the error banner.
// Returns x0, y0, x1, y1.
func (l *Layout) BannerBounds() (int, int, int, int) {
	y0 := HeaderHeight + InputHeight
	return 0, y0, l.maxX - 1, y0 + BannerHeight - 1
}

// ItemsBounds returns the bounds for the item list.
// Returns x0, y0, x1, y1.
func (l *Layout) ItemsBounds() (int, int, int, int) {
	return 0, l.itemsTop(), l.maxX - 1, l.maxY - FooterHeight - 1
}

// FooterBounds returns the bounds for the footer/help view.
// Returns x0, y0, x1, y1.
func (l *Layout) FooterBounds() (int, int, int, int) {
	return 0, l.maxY - FooterHeight, l.maxX - 1, l.maxY
}

func (l *Layout) itemsTop() int {
	top := HeaderHeight + InputHeight
	if l.banner {
		top += BannerHeight
	}
	return top
}

// IsTerminalTooSmall checks if the terminal is too small for the TUI.
func (l *Layout) IsTerminalTooSmall() bool {
	return l.maxX < MinWidth || l.maxY < l.itemsTop()+FooterHeight+3
}
