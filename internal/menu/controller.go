package menu

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAlreadyAttached is returned when a controller is bound to a second
// live menu.
var ErrAlreadyAttached = errors.New("menu: controller already attached to a menu")

// Action is a request waiting in a controller.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionClose
	ActionToggle
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionClose:
		return "close"
	case ActionToggle:
		return "toggle"
	}
	return "none"
}

// Controller lets code outside the Bubble Tea update loop drive a menu.
// It holds a single pending request (last write wins) that the bound menu
// consumes exactly once. Safe for concurrent use. A controller may outlive
// the menus bound to it.
type Controller struct {
	mu      sync.Mutex
	pending Action
	open    bool
	current *attachment

	notify chan struct{}
}

type attachment struct {
	done chan struct{}
}

// pendingMsg tells the attached menu a request is waiting.
type pendingMsg struct {
	att *attachment
}

// NewController creates a detached controller.
func NewController() *Controller {
	return &Controller{notify: make(chan struct{}, 1)}
}

// Open requests that the menu open.
func (c *Controller) Open() { c.request(ActionOpen) }

// Close requests that the menu close.
func (c *Controller) Close() { c.request(ActionClose) }

// Toggle requests that the menu flip state.
func (c *Controller) Toggle() { c.request(ActionToggle) }

// IsOpen mirrors the bound menu's open flag.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Pending returns the request not yet consumed.
func (c *Controller) Pending() Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Attached reports whether a menu is bound.
func (c *Controller) Attached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil
}

func (c *Controller) request(a Action) {
	c.mu.Lock()
	c.pending = a
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
		// a wakeup is already queued; it will read the latest request
	}
}

// take returns the pending request and clears the slot.
func (c *Controller) take() Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := c.pending
	c.pending = ActionNone
	return a
}

func (c *Controller) setOpen(open bool) {
	c.mu.Lock()
	c.open = open
	c.mu.Unlock()
}

func (c *Controller) attach() (*attachment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		return nil, ErrAlreadyAttached
	}
	c.current = &attachment{done: make(chan struct{})}
	return c.current, nil
}

// detach unbinds att, releasing its waiting command. Unknown or stale
// attachments are ignored.
func (c *Controller) detach(att *attachment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if att == nil || c.current != att {
		return
	}
	close(att.done)
	c.current = nil
}

// wait blocks until a request arrives or att is detached.
func (c *Controller) wait(att *attachment) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-c.notify:
			select {
			case <-att.done:
				// Detached meanwhile: leave the wakeup for the next menu.
				c.rearm()
				return nil
			default:
				return pendingMsg{att: att}
			}
		case <-att.done:
			return nil
		}
	}
}

func (c *Controller) rearm() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}
