package menu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slidemenu/internal/keymap"
	"github.com/llehouerou/slidemenu/internal/theme"
	"github.com/llehouerou/slidemenu/internal/ui/action"
)

// ToggleLabel is announced when the toggle gains focus.
const ToggleLabel = "Close menu"

// Focus ring layout: the toggle, then the items, then the socials.
func (m *Model) focusSize() int {
	return 1 + len(m.items) + len(m.socials)
}

func (m *Model) firstFocus() int {
	if len(m.items) > 0 {
		return 1
	}
	return 0
}

// focusedItem returns the item holding keyboard focus, or -1.
func (m *Model) focusedItem() int {
	pos := m.trap.Pos() - 1
	if pos < 0 || pos >= len(m.items) {
		return -1
	}
	return pos
}

// focusedSocial returns the social link holding keyboard focus, or -1.
func (m *Model) focusedSocial() int {
	pos := m.trap.Pos() - 1 - len(m.items)
	if pos < 0 || pos >= len(m.socials) {
		return -1
	}
	return pos
}

func (m *Model) toggleFocused() bool {
	return m.trap.Pos() == 0
}

func (m *Model) focusLabel() string {
	if i := m.focusedItem(); i >= 0 {
		return m.items[i].A11yLabel()
	}
	if i := m.focusedSocial(); i >= 0 {
		return m.socials[i].A11yLabel()
	}
	if m.toggleFocused() {
		return ToggleLabel
	}
	return ""
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.open {
		return nil
	}
	moved := false
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionClose:
		return m.Close()
	case keymap.ActionSelect:
		return m.activateFocused()
	case keymap.ActionFocusNext:
		moved = m.trap.Next()
	case keymap.ActionFocusPrev:
		moved = m.trap.Prev()
	case keymap.ActionMoveDown:
		moved = m.moveItem(1)
	case keymap.ActionMoveUp:
		moved = m.moveItem(-1)
	case keymap.ActionJumpStart:
		moved = len(m.items) > 0 && m.trap.Jump(1)
	case keymap.ActionJumpEnd:
		moved = len(m.items) > 0 && m.trap.Jump(len(m.items))
	}
	if moved {
		m.announce(m.focusLabel())
	}
	return nil
}

// moveItem moves focus among the items only, wrapping at both ends. From
// the toggle or a social link it enters the list at the nearest end.
func (m *Model) moveItem(delta int) bool {
	n := len(m.items)
	if n == 0 {
		return false
	}
	next := 0
	switch cur := m.focusedItem(); {
	case cur >= 0:
		next = ((cur+delta)%n + n) % n
	case delta < 0:
		next = n - 1
	}
	return m.trap.Jump(1 + next)
}

func (m *Model) activateFocused() tea.Cmd {
	if i := m.focusedItem(); i >= 0 {
		return m.Activate(i)
	}
	if i := m.focusedSocial(); i >= 0 {
		return m.ActivateSocial(i)
	}
	if m.toggleFocused() {
		return m.Toggle()
	}
	return nil
}

// Activate runs item i's callback, if any, then closes the menu whether or
// not the item had a callback.
func (m *Model) Activate(i int) tea.Cmd {
	if m.disposed || i < 0 || i >= len(m.items) {
		return nil
	}
	item := m.items[i]
	var cmd tea.Cmd
	if item.OnSelect != nil {
		cmd = item.OnSelect()
	}
	return tea.Batch(
		cmd,
		action.Emit(Source, Selected{Index: i, Label: item.Label}),
		m.Close(),
	)
}

// ActivateSocial runs social link i's callback. The menu stays open.
func (m *Model) ActivateSocial(i int) tea.Cmd {
	if m.disposed || i < 0 || i >= len(m.socials) {
		return nil
	}
	s := m.socials[i]
	var cmd tea.Cmd
	if s.OnSelect != nil {
		cmd = s.OnSelect()
	}
	return tea.Batch(cmd, action.Emit(Source, SocialSelected{Index: i, Label: s.Label}))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	h, ok := m.hitAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.setHover(h, ok)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.click(h, ok)
		}
	}
	return nil
}

func (m *Model) click(h hit, ok bool) tea.Cmd {
	if ok {
		switch h.kind {
		case hitToggle:
			return m.Toggle()
		case hitItem:
			if m.open {
				return m.Activate(h.index)
			}
		case hitSocial:
			if m.open {
				return m.ActivateSocial(h.index)
			}
		}
		// Anything else inside the panel stops here.
		return nil
	}
	if m.open && m.theme.CloseOnClickAway {
		return m.Close()
	}
	return nil
}

func (m *Model) setHover(h hit, ok bool) {
	m.hover = hoverState{item: -1, social: -1}
	m.toggle.SetHovered(false)
	if !ok {
		return
	}
	switch h.kind {
	case hitToggle:
		m.toggle.SetHovered(true)
	case hitItem:
		m.hover.item = h.index
	case hitSocial:
		m.hover.social = h.index
	}
}

// HitTest reports whether column x, row y lands on something the menu drew
// in its last render. Hosts use it to decide whether a click is theirs.
func (m *Model) HitTest(x, y int) bool {
	_, ok := m.hitAt(x, y)
	return ok
}

// itemHovered reports the raw hover state of item i: under the pointer or
// holding keyboard focus.
func (m *Model) itemHovered(i int) bool {
	return m.hover.item == i || m.focusedItem() == i
}

func (m *Model) socialHovered(i int) bool {
	return m.hover.social == i || m.focusedSocial() == i
}

// itemStyle picks the text style for item i. With hover effects disabled
// the normal style wins even while the item is hovered.
func (m *Model) itemStyle(i int) theme.TextStyle {
	if m.theme.EnableHover && m.itemHovered(i) {
		return m.theme.ItemHoverStyle
	}
	return m.theme.ItemStyle
}

func (m *Model) socialStyle(i int) theme.TextStyle {
	if m.theme.EnableHover && m.socialHovered(i) {
		return m.theme.SocialHoverStyle
	}
	return m.theme.SocialStyle
}

type hitKind int

const (
	hitPanel hitKind = iota
	hitToggle
	hitItem
	hitSocial
)

// hit is a rectangle of the last render and what it belongs to.
type hit struct {
	kind       hitKind
	index      int
	x, y, w, h int
}

func (h hit) contains(x, y int) bool {
	return x >= h.x && x < h.x+h.w && y >= h.y && y < h.y+h.h
}

// hitAt returns the topmost rectangle under x, y.
func (m *Model) hitAt(x, y int) (hit, bool) {
	for i := len(m.hits) - 1; i >= 0; i-- {
		if m.hits[i].contains(x, y) {
			return m.hits[i], true
		}
	}
	return hit{}, false
}

func (m *Model) addHit(h hit) {
	if h.w <= 0 || h.h <= 0 {
		return
	}
	m.hits = append(m.hits, h)
}
