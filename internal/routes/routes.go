// Package routes builds menu items from an application's route table.
package routes

import (
	"cmp"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slidemenu/internal/menu"
)

// CurrentSuffix is appended to the accessible label of the current route.
const CurrentSuffix = " (current page)"

// Route is one navigable destination.
type Route struct {
	ID    string `koanf:"id"`
	Label string `koanf:"label"`
}

// FromMap converts an id→label map to routes ordered by id.
func FromMap(m map[string]string) []Route {
	routes := make([]Route, 0, len(m))
	for id, label := range m {
		routes = append(routes, Route{ID: id, Label: label})
	}
	slices.SortFunc(routes, func(a, b Route) int { return cmp.Compare(a.ID, b.ID) })
	return routes
}

// Items returns one menu item per route. Selecting an item calls navigate
// with its route id. The item for current has no action, so selecting it
// only closes the menu.
func Items(routes []Route, current string, navigate func(id string) tea.Cmd) []menu.Item {
	items := make([]menu.Item, len(routes))
	for i, r := range routes {
		label := r.Label
		if label == "" {
			label = r.ID
		}
		item := menu.Item{Label: label}
		switch {
		case r.ID == current:
			item.AccessibleLabel = label + CurrentSuffix
		case navigate != nil:
			id := r.ID
			item.OnSelect = func() tea.Cmd { return navigate(id) }
		}
		items[i] = item
	}
	return items
}
