package menu

// Source is the action.Msg source name for menu actions.
const Source = "menu"

// Opened is emitted when the menu starts opening.
type Opened struct{}

// ActionType implements action.Action.
func (Opened) ActionType() string { return "menu.opened" }

// Closed is emitted when the menu starts closing.
type Closed struct{}

// ActionType implements action.Action.
func (Closed) ActionType() string { return "menu.closed" }

// Selected is emitted when an item is activated.
type Selected struct {
	Index int
	Label string
}

// ActionType implements action.Action.
func (Selected) ActionType() string { return "menu.selected" }

// SocialSelected is emitted when a social link is activated.
type SocialSelected struct {
	Index int
	Label string
}

// ActionType implements action.Action.
func (SocialSelected) ActionType() string { return "menu.social_selected" }
