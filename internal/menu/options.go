package menu

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slidemenu/internal/theme"
)

// ItemRenderer replaces the default ordinal+label content of an item. The
// menu keeps ownership of placement, animation, hit testing and
// accessibility; the renderer only supplies the single-line content.
type ItemRenderer interface {
	RenderItem(item Item, index int, hovered bool) string
}

// ItemRendererFunc adapts a function to ItemRenderer.
type ItemRendererFunc func(item Item, index int, hovered bool) string

// RenderItem implements ItemRenderer.
func (f ItemRendererFunc) RenderItem(item Item, index int, hovered bool) string {
	return f(item, index, hovered)
}

// Announcer delivers text to assistive technology.
type Announcer interface {
	Announce(text string)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(text string)

// Announce implements Announcer.
func (f AnnouncerFunc) Announce(text string) { f(text) }

type options struct {
	items     []Item
	socials   []Social
	position  Position
	overrides theme.Overrides
	ctx       context.Context
	ctrl      *Controller
	onOpen    func() tea.Cmd
	onClose   func() tea.Cmd
	renderer  ItemRenderer
	header    string
	announcer Announcer
	log       *zap.Logger
	now       func() time.Time
}

// Option configures a Model.
type Option func(*options)

// WithItems sets the navigation items.
func WithItems(items ...Item) Option {
	return func(o *options) { o.items = items }
}

// WithSocials sets the links shown at the foot of the panel.
func WithSocials(socials ...Social) Option {
	return func(o *options) { o.socials = socials }
}

// WithPosition sets the edge the panel slides in from.
func WithPosition(p Position) Option {
	return func(o *options) { o.position = p }
}

// WithTheme sets explicit theme values. They win over any theme found in
// the context.
func WithTheme(overrides theme.Overrides) Option {
	return func(o *options) { o.overrides = overrides }
}

// WithContext supplies the context carrying an inherited theme.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithController binds an external controller on Init.
func WithController(c *Controller) Option {
	return func(o *options) { o.ctrl = c }
}

// WithOnOpen sets a callback run synchronously when opening starts.
func WithOnOpen(fn func() tea.Cmd) Option {
	return func(o *options) { o.onOpen = fn }
}

// WithOnClose sets a callback run synchronously when closing starts.
func WithOnClose(fn func() tea.Cmd) Option {
	return func(o *options) { o.onClose = fn }
}

// WithItemRenderer sets a custom item renderer.
func WithItemRenderer(r ItemRenderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithHeader sets the text drawn above the items.
func WithHeader(text string) Option {
	return func(o *options) { o.header = text }
}

// WithAnnouncer sets where accessibility announcements go.
func WithAnnouncer(a Announcer) Option {
	return func(o *options) { o.announcer = a }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock replaces the time source of the menu's animations.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}
