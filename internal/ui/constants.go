// Package ui provides the shared component base and layout constants.
package ui

// Layout constants shared by the demo host.
const (
	// HeaderHeight is the tab bar plus its separator.
	HeaderHeight = 2

	// FooterHeight is the status line plus the help line.
	FooterHeight = 2

	// ChromeHeight is the vertical space not available to page content.
	ChromeHeight = HeaderHeight + FooterHeight

	// PagePadding is the horizontal margin around page content.
	PagePadding = 2

	// MinPageWidth is the narrowest width markdown pages are wrapped to.
	MinPageWidth = 20
)
