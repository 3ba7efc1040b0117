// Package app is the demo host: a small multi-page terminal application
// navigated through the slide-in menu.
package app

import "time"

// TickMsg refreshes time-relative text such as the status line.
type TickMsg time.Time

// NavigateMsg asks the host to show the page for a route.
type NavigateMsg struct {
	ID string
}

// LinkMsg reports that a social link was activated.
type LinkMsg struct {
	Label string
	URL   string
}
