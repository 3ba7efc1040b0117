package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slidemenu/internal/config"
	"github.com/llehouerou/slidemenu/internal/keymap"
	"github.com/llehouerou/slidemenu/internal/menu"
	"github.com/llehouerou/slidemenu/internal/routes"
)

// Options configures the demo host.
type Options struct {
	Config *config.Config

	// Watcher, when set, delivers config reloads.
	Watcher *config.Watcher

	// Controller, when set, lets other goroutines open and close the menu.
	Controller *menu.Controller

	// Position overrides the configured menu position, including on reload.
	Position *menu.Position

	Logger *zap.Logger
	Now    func() time.Time
}

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	watcher  *config.Watcher
	position *menu.Position
	log      *zap.Logger

	menu   *menu.Model
	status *Status
	pages  *Pages
	page   viewport.Model
	help   help.Model

	keys     *keymap.Resolver
	menuKeys *keymap.Resolver

	routes  []routes.Route
	current string

	width  int
	height int
}

// New creates the host and its menu from configuration.
func New(o Options) Model {
	cfg := o.Config
	if cfg == nil {
		cfg = &config.Config{CurrentRoute: "/", Routes: config.DefaultRoutes, Socials: config.DefaultSocials}
	}
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := o.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		cfg:      cfg,
		watcher:  o.Watcher,
		position: o.Position,
		log:      log,
		status:   NewStatus(now, log.Named("status")),
		pages:    NewPages(),
		page:     viewport.New(0, 0),
		help:     help.New(),
		keys:     keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal, keymap.ContextPage)),
		menuKeys: keymap.MenuResolver(),
		routes:   cfg.Routes,
		current:  cfg.CurrentRoute,
	}

	status := m.status
	opts := []menu.Option{
		menu.WithTheme(cfg.Theme),
		menu.WithPosition(m.menuPosition(cfg)),
		menu.WithHeader(cfg.Header),
		menu.WithItems(m.items()...),
		menu.WithSocials(socials(cfg.Socials)...),
		menu.WithAnnouncer(status),
		menu.WithOnOpen(func() tea.Cmd {
			status.MenuOpened()
			return nil
		}),
		menu.WithLogger(log),
		menu.WithClock(now),
	}
	if o.Controller != nil {
		opts = append(opts, menu.WithController(o.Controller))
	}
	m.menu = menu.New(opts...)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), m.waitForReload(), TickCmd())
}

// Menu returns the navigation menu.
func (m Model) Menu() *menu.Model {
	return m.menu
}

// Status returns the status line.
func (m Model) Status() *Status {
	return m.status
}

// Current returns the id of the page being shown.
func (m Model) Current() string {
	return m.current
}

// Dispose releases the menu. Call once the program has exited.
func (m Model) Dispose() {
	m.menu.Dispose()
}

func (m Model) menuPosition(cfg *config.Config) menu.Position {
	if m.position != nil {
		return *m.position
	}
	return cfg.MenuPosition()
}

func (m Model) items() []menu.Item {
	return routes.Items(m.routes, m.current, NavigateCmd)
}

func (m Model) route(id string) (routes.Route, bool) {
	for _, r := range m.routes {
		if r.ID == id {
			return r, true
		}
	}
	return routes.Route{}, false
}

func socials(links []config.Social) []menu.Social {
	out := make([]menu.Social, len(links))
	for i, l := range links {
		label, url := l.Label, l.URL
		out[i] = menu.Social{
			Label:    label,
			OnSelect: func() tea.Cmd { return LinkCmd(label, url) },
		}
		if url != "" {
			out[i].AccessibleLabel = label + " (" + url + ")"
		}
	}
	return out
}
