// Package menu implements a slide-in overlay navigation menu for Bubble Tea
// applications: staggered decorative layers, a translucent panel with
// cascading items, a toggle button and programmatic control.
package menu

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/slidemenu/internal/anim"
	"github.com/llehouerou/slidemenu/internal/errmsg"
	"github.com/llehouerou/slidemenu/internal/keymap"
	"github.com/llehouerou/slidemenu/internal/menu/toggle"
	"github.com/llehouerou/slidemenu/internal/theme"
	"github.com/llehouerou/slidemenu/internal/ui"
	"github.com/llehouerou/slidemenu/internal/ui/action"
	"github.com/llehouerou/slidemenu/internal/ui/focus"
	"github.com/llehouerou/slidemenu/internal/ui/layout"
)

// Announcements made on transitions.
const (
	AnnounceOpened = "Menu opened"
	AnnounceClosed = "Menu closed"
)

// State is the menu's lifecycle state. Only open/closed is meaningful to
// hosts; StateOpening and StateClosing mean the animation is still running.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	}
	return "closed"
}

// Model is the menu component. Create it with New, call Init once when it
// is mounted and Dispose when it goes away.
type Model struct {
	ui.Base

	theme    theme.Theme
	position Position
	items    []Item
	socials  []Social
	header   string
	renderer ItemRenderer

	open     bool
	disposed bool
	driver   *anim.Driver
	toggle   *toggle.Model
	trap     focus.Trap
	keys     *keymap.Resolver

	hover hoverState
	hits  []hit

	ctrl *Controller
	att  *attachment

	onOpen    func() tea.Cmd
	onClose   func() tea.Cmd
	announcer Announcer
	log       *zap.Logger
}

type hoverState struct {
	item   int // -1 when none
	social int // -1 when none
}

// New creates a closed menu. The theme is resolved from WithTheme, then
// the theme in WithContext's context, then the defaults.
func New(opts ...Option) *Model {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	t := theme.ResolveContext(o.ctx, o.overrides)
	m := &Model{
		theme:     t,
		position:  o.position,
		items:     slices.Clone(o.items),
		socials:   slices.Clone(o.socials),
		header:    o.header,
		renderer:  o.renderer,
		driver:    anim.New(t.Duration),
		toggle:    toggle.New(t),
		keys:      keymap.MenuResolver(),
		hover:     hoverState{item: -1, social: -1},
		ctrl:      o.ctrl,
		onOpen:    o.onOpen,
		onClose:   o.onClose,
		announcer: o.announcer,
		log:       o.log.Named("menu"),
	}
	m.SetMetrics(metricsOf(t))
	if o.now != nil {
		m.driver.SetClock(o.now)
		m.toggle.SetClock(o.now)
	}
	return m
}

func metricsOf(t theme.Theme) layout.Metrics {
	return layout.Metrics{CellWidth: t.CellWidth, CellHeight: t.CellHeight}
}

// Init binds the controller, if any, and starts listening for its
// requests. A controller already bound elsewhere is logged and ignored;
// the menu keeps working without it.
func (m *Model) Init() tea.Cmd {
	if m.ctrl == nil || m.att != nil || m.disposed {
		return nil
	}
	att, err := m.ctrl.attach()
	if err != nil {
		m.log.Warn(errmsg.Format(errmsg.OpMenuAttach, err), zap.Error(err))
		return nil
	}
	m.att = att
	m.ctrl.setOpen(m.open)
	return m.ctrl.wait(att)
}

// Update handles frames, input, resizes and controller requests.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.disposed {
		return m, nil
	}
	switch msg := msg.(type) {
	case anim.FrameMsg:
		if m.driver.Owns(msg) {
			return m, m.driver.Update(msg)
		}
		return m, m.toggle.Update(msg)
	case pendingMsg:
		return m, m.handlePending(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handlePending(msg pendingMsg) tea.Cmd {
	if msg.att == nil || msg.att != m.att {
		return nil
	}
	var cmd tea.Cmd
	switch a := m.ctrl.take(); a {
	case ActionOpen:
		cmd = m.Open()
	case ActionClose:
		cmd = m.Close()
	case ActionToggle:
		cmd = m.Toggle()
	}
	return tea.Batch(cmd, m.ctrl.wait(m.att))
}

// Open starts opening the menu. No-op when already open or disposed.
// OnOpen runs before Open returns.
func (m *Model) Open() tea.Cmd {
	if m.disposed || m.open {
		return nil
	}
	m.open = true
	m.log.Debug("opening", zap.Float64("progress", m.driver.Value()))

	cmds := []tea.Cmd{m.callback(m.onOpen)}
	cmds = append(cmds, m.driver.Forward(), m.toggle.Open())

	m.trap.Capture(m.focusSize(), m.firstFocus())
	m.SetFocused(true)
	m.syncController()
	m.announce(AnnounceOpened)
	cmds = append(cmds, action.Emit(Source, Opened{}))
	return tea.Batch(cmds...)
}

// Close starts closing the menu from wherever the animation is. No-op
// when already closed or disposed. OnClose runs before Close returns.
func (m *Model) Close() tea.Cmd {
	if m.disposed || !m.open {
		return nil
	}
	m.open = false
	m.log.Debug("closing", zap.Float64("progress", m.driver.Value()))

	cmds := []tea.Cmd{m.callback(m.onClose)}
	cmds = append(cmds, m.driver.Reverse(), m.toggle.Close())

	m.trap.Release()
	m.SetFocused(false)
	m.hover = hoverState{item: -1, social: -1}
	m.syncController()
	m.announce(AnnounceClosed)
	cmds = append(cmds, action.Emit(Source, Closed{}))
	return tea.Batch(cmds...)
}

// Toggle closes an open menu and opens a closed one.
func (m *Model) Toggle() tea.Cmd {
	if m.open {
		return m.Close()
	}
	return m.Open()
}

func (m *Model) callback(fn func() tea.Cmd) tea.Cmd {
	if fn == nil {
		return nil
	}
	return fn()
}

func (m *Model) syncController() {
	if m.att != nil {
		m.ctrl.setOpen(m.open)
	}
}

func (m *Model) announce(text string) {
	if m.announcer == nil || text == "" {
		return
	}
	m.announcer.Announce(text)
}

// IsOpen reports whether the menu is open or opening.
func (m *Model) IsOpen() bool {
	return m.open
}

// State returns the lifecycle state.
func (m *Model) State() State {
	animating := m.driver.Animating()
	switch {
	case m.open && animating:
		return StateOpening
	case m.open:
		return StateOpen
	case animating:
		return StateClosing
	}
	return StateClosed
}

// Progress returns the global animation progress in [0,1].
func (m *Model) Progress() float64 {
	return m.driver.Value()
}

// Animating reports whether either animation is still running.
func (m *Model) Animating() bool {
	return m.driver.Animating() || m.toggle.Driver().Animating()
}

// CapturesInput reports whether keyboard input belongs to the menu.
func (m *Model) CapturesInput() bool {
	return m.open && !m.disposed
}

// Theme returns the resolved theme in use.
func (m *Model) Theme() theme.Theme {
	return m.theme
}

// SetTheme replaces the theme. The theme is normalized first; an equal
// theme changes nothing and a different duration applies to the running
// animation from its current value.
func (m *Model) SetTheme(t theme.Theme) {
	t = t.Normalize()
	if m.theme.Equal(t) {
		return
	}
	m.theme = t
	m.driver.SetDuration(t.Duration)
	m.toggle.SetTheme(t)
	m.SetMetrics(metricsOf(t))
	m.log.Debug("theme changed", zap.Duration("duration", t.Duration))
}

// SetItems replaces the navigation items.
func (m *Model) SetItems(items []Item) {
	m.items = slices.Clone(items)
	if m.hover.item >= len(m.items) {
		m.hover.item = -1
	}
	m.trap.Resize(m.focusSize())
}

// SetSocials replaces the social links.
func (m *Model) SetSocials(socials []Social) {
	m.socials = slices.Clone(socials)
	if m.hover.social >= len(m.socials) {
		m.hover.social = -1
	}
	m.trap.Resize(m.focusSize())
}

// SetPosition moves the menu to another edge.
func (m *Model) SetPosition(p Position) {
	m.position = p
}

// SetHeader sets the text drawn above the items.
func (m *Model) SetHeader(text string) {
	m.header = text
}

// Items returns the navigation items.
func (m *Model) Items() []Item {
	return m.items
}

// Position returns the edge the menu slides in from.
func (m *Model) Position() Position {
	return m.position
}

// Disposed reports whether Dispose was called.
func (m *Model) Disposed() bool {
	return m.disposed
}

// Dispose releases the controller, both animations and the focus trap.
// Safe to call more than once, whatever state the menu is in. Every later
// call on the menu is a no-op.
func (m *Model) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	if m.att != nil {
		m.ctrl.detach(m.att)
		m.att = nil
	}
	m.driver.Dispose()
	m.toggle.Dispose()
	m.trap.Release()
	m.SetFocused(false)
	m.log.Debug("disposed")
}

// Advance delivers the frame stamped at to both animations, for hosts and
// tests that run their own frame clock. The drivers' tick commands are
// dropped.
func (m *Model) Advance(at time.Time) {
	m.Update(m.driver.Frame(at))
	m.Update(m.toggle.Driver().Frame(at))
}
