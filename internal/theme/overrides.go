package theme

import (
	"slices"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slidemenu/internal/ease"
)

// Overrides names a subset of Theme fields. A nil field is not named and
// leaves the underlying value alone. The koanf tags are the config file keys.
type Overrides struct {
	LayerColors []lipgloss.Color `koanf:"layer_colors"`

	PanelColor       *lipgloss.Color `koanf:"panel_color"`
	PanelOpacity     *float64        `koanf:"panel_opacity"`
	BlurRadius       *float64        `koanf:"blur_radius"`
	MinWidth         *float64        `koanf:"min_width"`
	MaxWidth         *float64        `koanf:"max_width"`
	WidthFraction    *float64        `koanf:"width_fraction"`
	MobileBreakpoint *float64        `koanf:"mobile_breakpoint"`
	Padding          *Insets         `koanf:"padding"`

	AccentColor       *lipgloss.Color `koanf:"accent_color"`
	ToggleClosedColor *lipgloss.Color `koanf:"toggle_closed_color"`
	ToggleOpenColor   *lipgloss.Color `koanf:"toggle_open_color"`
	IconSize          *float64        `koanf:"icon_size"`
	IconRotation      *float64        `koanf:"icon_rotation"`

	ItemStyle         *TextStyle `koanf:"item_style"`
	ItemHoverStyle    *TextStyle `koanf:"item_hover_style"`
	NumberStyle       *TextStyle `koanf:"number_style"`
	SocialsTitleStyle *TextStyle `koanf:"socials_title_style"`
	SocialStyle       *TextStyle `koanf:"social_style"`
	SocialHoverStyle  *TextStyle `koanf:"social_hover_style"`

	ShowNumbers      *bool `koanf:"show_numbers"`
	EnableHover      *bool `koanf:"enable_hover"`
	CloseOnClickAway *bool `koanf:"close_on_click_away"`

	Duration     *time.Duration `koanf:"duration"`
	PanelCurve   *ease.Curve    `koanf:"panel_curve"`
	LayerCurve   *ease.Curve    `koanf:"layer_curve"`
	ItemCurve    *ease.Curve    `koanf:"item_curve"`
	LayerStagger *float64       `koanf:"layer_stagger"`
	ItemStagger  *float64       `koanf:"item_stagger"`

	BackgroundColor *lipgloss.Color `koanf:"background_color"`
	CellWidth       *float64        `koanf:"cell_width"`
	CellHeight      *float64        `koanf:"cell_height"`
	SocialsTitle    *string         `koanf:"socials_title"`
}

// Ptr returns a pointer to v. Handy for building Overrides literals.
func Ptr[T any](v T) *T {
	return &v
}

// IsZero reports whether no field is named.
func (o Overrides) IsZero() bool {
	return o.LayerColors == nil &&
		o.PanelColor == nil && o.PanelOpacity == nil && o.BlurRadius == nil &&
		o.MinWidth == nil && o.MaxWidth == nil && o.WidthFraction == nil &&
		o.MobileBreakpoint == nil && o.Padding == nil &&
		o.AccentColor == nil && o.ToggleClosedColor == nil && o.ToggleOpenColor == nil &&
		o.IconSize == nil && o.IconRotation == nil &&
		o.ItemStyle == nil && o.ItemHoverStyle == nil && o.NumberStyle == nil &&
		o.SocialsTitleStyle == nil && o.SocialStyle == nil && o.SocialHoverStyle == nil &&
		o.ShowNumbers == nil && o.EnableHover == nil && o.CloseOnClickAway == nil &&
		o.Duration == nil && o.PanelCurve == nil && o.LayerCurve == nil && o.ItemCurve == nil &&
		o.LayerStagger == nil && o.ItemStagger == nil &&
		o.BackgroundColor == nil && o.CellWidth == nil && o.CellHeight == nil &&
		o.SocialsTitle == nil
}

// WithOverrides returns a copy of t with only the named fields replaced.
// The receiver is not modified.
func (t Theme) WithOverrides(o Overrides) Theme {
	t.LayerColors = slices.Clone(t.LayerColors)
	if o.LayerColors != nil {
		t.LayerColors = slices.Clone(o.LayerColors)
	}

	set(&t.PanelColor, o.PanelColor)
	set(&t.PanelOpacity, o.PanelOpacity)
	set(&t.BlurRadius, o.BlurRadius)
	set(&t.MinWidth, o.MinWidth)
	set(&t.MaxWidth, o.MaxWidth)
	set(&t.WidthFraction, o.WidthFraction)
	set(&t.MobileBreakpoint, o.MobileBreakpoint)
	set(&t.Padding, o.Padding)

	set(&t.AccentColor, o.AccentColor)
	set(&t.ToggleClosedColor, o.ToggleClosedColor)
	set(&t.ToggleOpenColor, o.ToggleOpenColor)
	set(&t.IconSize, o.IconSize)
	set(&t.IconRotation, o.IconRotation)

	set(&t.ItemStyle, o.ItemStyle)
	set(&t.ItemHoverStyle, o.ItemHoverStyle)
	set(&t.NumberStyle, o.NumberStyle)
	set(&t.SocialsTitleStyle, o.SocialsTitleStyle)
	set(&t.SocialStyle, o.SocialStyle)
	set(&t.SocialHoverStyle, o.SocialHoverStyle)

	set(&t.ShowNumbers, o.ShowNumbers)
	set(&t.EnableHover, o.EnableHover)
	set(&t.CloseOnClickAway, o.CloseOnClickAway)

	set(&t.Duration, o.Duration)
	set(&t.PanelCurve, o.PanelCurve)
	set(&t.LayerCurve, o.LayerCurve)
	set(&t.ItemCurve, o.ItemCurve)
	set(&t.LayerStagger, o.LayerStagger)
	set(&t.ItemStagger, o.ItemStagger)

	set(&t.BackgroundColor, o.BackgroundColor)
	set(&t.CellWidth, o.CellWidth)
	set(&t.CellHeight, o.CellHeight)
	set(&t.SocialsTitle, o.SocialsTitle)
	return t
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
