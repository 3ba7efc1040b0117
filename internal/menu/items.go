package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Item is one navigation entry. A nil OnSelect makes the item inert: it is
// still shown, dimmed, and activating it only closes the menu.
type Item struct {
	Label           string
	AccessibleLabel string
	OnSelect        func() tea.Cmd
}

// A11yLabel returns the text announced for the item.
func (i Item) A11yLabel() string {
	if i.AccessibleLabel != "" {
		return i.AccessibleLabel
	}
	return i.Label
}

// Disabled reports whether the item has no action.
func (i Item) Disabled() bool {
	return i.OnSelect == nil
}

// Social is a link in the socials block at the foot of the panel.
type Social struct {
	Label           string
	AccessibleLabel string
	OnSelect        func() tea.Cmd
}

// A11yLabel returns the text announced for the link.
func (s Social) A11yLabel() string {
	if s.AccessibleLabel != "" {
		return s.AccessibleLabel
	}
	return s.Label
}

// Position is the screen edge the panel slides in from.
type Position int

const (
	Right Position = iota
	Left
)

func (p Position) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

// ParsePosition parses "left" or "right", ignoring case. Empty means Right.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Right, fmt.Errorf("unknown menu position %q", s)
}
