package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the host application's color palette. The menu itself is
// styled by theme.Theme; the palette styles the chrome around it.
type Palette struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - active states, menu accent
	Secondary lipgloss.Color // Gold - highlights

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status
	Success lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the host chrome.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Status lipgloss.Style
}

var defaultPalette = Palette{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase: lipgloss.Color("#1a1a1a"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
}

// T returns the default palette.
func T() *Palette {
	return &defaultPalette
}

// S returns the pre-built styles for this palette.
func (p *Palette) S() *Styles {
	if p.styles == nil {
		p.styles = p.buildStyles()
	}
	return p.styles
}

func (p *Palette) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(p.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(p.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(p.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(p.Error),
		Status: lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),
	}
}
