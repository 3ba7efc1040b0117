package app

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/llehouerou/slidemenu/internal/routes"
	"github.com/llehouerou/slidemenu/internal/ui"
)

//go:embed pages/*.md
var pageFS embed.FS

// Pages renders route pages from markdown, caching per width.
type Pages struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

// NewPages creates an empty page cache.
func NewPages() *Pages {
	return &Pages{cache: make(map[string]string)}
}

// Source returns the markdown for a route. Routes without a page of their
// own get a placeholder titled with the route label.
func Source(r routes.Route) string {
	name := strings.Trim(r.ID, "/")
	if name == "" {
		name = "home"
	}
	data, err := pageFS.ReadFile(path.Join("pages", name+".md"))
	if err != nil {
		label := r.Label
		if label == "" {
			label = r.ID
		}
		return fmt.Sprintf("# %s\n\nNothing here yet.\n", label)
	}
	return string(data)
}

// Render returns the page for r wrapped to width.
func (p *Pages) Render(r routes.Route, width int) (string, error) {
	width = max(width, ui.MinPageWidth)
	if p.renderer == nil || width != p.width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		p.renderer = renderer
		p.width = width
		clear(p.cache)
	}

	if out, ok := p.cache[r.ID]; ok {
		return out, nil
	}
	out, err := p.renderer.Render(Source(r))
	if err != nil {
		return "", err
	}
	out = strings.Trim(out, "\n")
	p.cache[r.ID] = out
	return out, nil
}

// Reset drops every cached page.
func (p *Pages) Reset() {
	clear(p.cache)
}
