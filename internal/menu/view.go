package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slidemenu/internal/menu/toggle"
	"github.com/llehouerou/slidemenu/internal/ui/overlay"
	"github.com/llehouerou/slidemenu/internal/ui/render"
	"github.com/llehouerou/slidemenu/internal/ui/styles"
)

// Placeholder is shown in place of an empty item list.
const Placeholder = "No items"

const (
	itemPitch       = 2   // rows per item: the label and a gap
	ordinalWidth    = 4   // "01" and two spaces
	disabledOpacity = 0.5 // label opacity factor for items without action
	socialGap       = 3
)

// View renders the menu over a blank screen. A disposed menu renders
// nothing.
func (m *Model) View() string {
	if m.disposed {
		return ""
	}
	return m.Overlay(overlay.Fill(m.Width(), m.Height()))
}

// Overlay draws the menu over base, the host's rendered view, bottom-up:
// decorative layers, the panel and its content, then the toggle. It also
// records the hit map used for pointer events until the next render.
func (m *Model) Overlay(base string) string {
	m.hits = m.hits[:0]
	if m.disposed || !m.Sized() {
		return base
	}
	host := overlay.Normalize(base, m.Height())
	out := host

	var sc *Scene
	panelBg := m.theme.BackgroundColor
	if p := m.driver.Value(); p > 0 {
		s := Compose(m.theme, m.Viewport(), m.position, len(m.items), p)
		sc = &s
		out = m.drawLayers(out, s)
		out, panelBg = m.drawPanel(out, host, s)
	}
	return m.drawToggle(out, sc, panelBg)
}

func (m *Model) drawLayers(base string, sc Scene) string {
	for i, l := range sc.Layers {
		x0, x1, _ := sc.span(l.Shift)
		if l.Progress <= 0 || x1 <= x0 {
			continue
		}
		block := solid(x1-x0, m.Height(), m.theme.LayerColors[i])
		base = overlay.Place(base, block, x0, 0, m.Width())
	}
	return base
}

func solid(width, height int, c lipgloss.Color) string {
	row := lipgloss.NewStyle().Background(c).Render(strings.Repeat(" ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// underPanel is the color the translucent panel is blended over: the
// top-most layer, or the host background when there are no layers.
func (m *Model) underPanel() lipgloss.Color {
	if n := len(m.theme.LayerColors); n > 0 {
		return m.theme.LayerColors[n-1]
	}
	return m.theme.BackgroundColor
}

func (m *Model) drawPanel(base, host string, sc Scene) (string, lipgloss.Color) {
	bg := styles.Fade(m.theme.PanelColor, m.underPanel(), m.theme.PanelOpacity)
	x0, x1, origin := sc.span(sc.Panel.Shift)
	if sc.Panel.Progress <= 0 || x1 <= x0 {
		return base, bg
	}

	m.addHit(hit{kind: hitPanel, x: x0, y: 0, w: x1 - x0, h: m.Height()})

	rows := m.panelFill(host, origin, sc.PanelColumns, bg)
	c := canvas{rows: rows, width: sc.PanelColumns, origin: origin, x0: x0, x1: x1}
	m.drawContent(&c, sc, bg)

	for i := range rows {
		rows[i] = ansi.Cut(rows[i], x0-origin, x1-origin)
	}
	return overlay.Place(base, strings.Join(rows, "\n"), x0, 0, m.Width()), bg
}

// panelFill returns the empty panel rows. With blur the host is frosted
// out; without it the host's glyphs ghost through, faded.
func (m *Model) panelFill(host string, origin, width int, bg lipgloss.Color) []string {
	fill := lipgloss.NewStyle().Background(bg)
	rows := make([]string, m.Height())

	if m.theme.BlurRadius > 0 {
		row := fill.Render(strings.Repeat(" ", width))
		for i := range rows {
			rows[i] = row
		}
		return rows
	}

	ghost := fill.Foreground(styles.Fade(m.theme.ItemStyle.Color, bg, 1-m.theme.PanelOpacity))
	lines := strings.Split(host, "\n")
	for i := range rows {
		var text string
		if i < len(lines) {
			text = ansi.Cut(ansi.Strip(lines[i]), max(origin, 0), origin+width)
		}
		text = strings.Repeat(" ", max(-origin, 0)) + text
		rows[i] = ghost.Render(render.Pad(text, width))
	}
	return rows
}

// canvas is the panel's rows in panel-relative columns, with the panel's
// screen placement for recording hits.
type canvas struct {
	rows   []string
	width  int
	origin int // screen column of panel column 0
	x0, x1 int // visible screen columns
}

func (c *canvas) put(x, y int, seg string) {
	if y < 0 || y >= len(c.rows) {
		return
	}
	c.rows[y] = overlay.PlaceLine(c.rows[y], seg, x, c.width)
}

// screen converts a panel-relative span to a clipped screen span.
func (c *canvas) screen(x, w int) (int, int) {
	left := max(c.origin+x, c.x0)
	right := min(c.origin+x+w, c.x1)
	return left, right - left
}

func (m *Model) drawContent(c *canvas, sc Scene, bg lipgloss.Color) {
	t := m.theme
	metrics := sc.Viewport.Metrics
	height := len(c.rows)

	padTop := max(metrics.Rows(t.Padding.Top), 1)
	padBottom := metrics.Rows(t.Padding.Bottom)
	padLeft := metrics.Columns(t.Padding.Left)
	padRight := metrics.Columns(t.Padding.Right)
	contentW := c.width - padLeft - padRight
	if contentW < 1 {
		padLeft, contentW = 0, c.width
	}
	if contentW < 1 {
		return
	}

	row := padTop
	if m.header != "" {
		header := render.TruncateEllipsis(m.header, contentW)
		c.put(padLeft, row, styles.ApplyBoldGradient(header, t.AccentColor, t.ItemStyle.Color, bg))
		row += 2
	}

	limit := height - padBottom
	if len(m.socials) > 0 {
		cells, lines := m.layoutSocials(contentW)
		top := limit - 1 - lines
		if top > row {
			m.drawSocials(c, cells, top, padLeft, sc.Socials, bg)
			limit = top - 1
		}
	}

	if len(m.items) == 0 {
		if row < limit {
			c.put(padLeft, row, styles.Text(t.NumberStyle, bg, sc.Panel.Progress).Render(Placeholder))
		}
		return
	}

	for i, item := range m.items {
		tr := sc.Items[i]
		slot := row + i*itemPitch
		y := slot + tr.RowShift
		if slot >= limit || y >= limit || tr.Progress <= 0 {
			continue
		}
		x := padLeft + tr.ColShift
		c.put(x, y, m.itemContent(i, item, sc, tr, bg, contentW-tr.ColShift))
		if m.focusedItem() == i && padLeft >= 2 {
			c.put(padLeft-2, y, lipgloss.NewStyle().Background(bg).Foreground(t.AccentColor).Render("›"))
		}
		hx, hw := c.screen(padLeft, contentW)
		m.addHit(hit{kind: hitItem, index: i, x: hx, y: y, w: hw, h: 1})
	}
}

func (m *Model) itemContent(i int, item Item, sc Scene, tr ItemTransform, bg lipgloss.Color, avail int) string {
	if avail <= 0 {
		return ""
	}
	hovered := m.theme.EnableHover && m.itemHovered(i)
	if m.renderer != nil {
		return ansi.Truncate(m.renderer.RenderItem(item, i, hovered), avail, "…")
	}

	var b strings.Builder
	if m.theme.ShowNumbers && avail > ordinalWidth {
		ordinal := fmt.Sprintf("%02d", i+1)
		b.WriteString(styles.Text(m.theme.NumberStyle, bg, tr.OrdinalOpacity).Render(ordinal))
		b.WriteString(lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", ordinalWidth-len(ordinal))))
		avail -= ordinalWidth
	}

	ts := m.itemStyle(i)
	ts.Bold = ts.Bold || sc.Bold
	label := render.Sanitize(item.Label)
	if spaced := render.LetterSpace(label); sc.Spaced && ansi.StringWidth(spaced) <= avail {
		label = spaced
	}
	opacity := tr.Opacity
	if item.Disabled() {
		opacity *= disabledOpacity
	}
	b.WriteString(styles.Text(ts, bg, opacity).Render(render.TruncateEllipsis(label, avail)))
	return b.String()
}

// socialCell is one laid-out social link.
type socialCell struct {
	index int
	line  int
	col   int
	text  string
}

// layoutSocials flows the links left to right, wrapping at width.
func (m *Model) layoutSocials(width int) ([]socialCell, int) {
	cells := make([]socialCell, 0, len(m.socials))
	line, col := 0, 0
	for i, s := range m.socials {
		text := render.TruncateEllipsis(s.Label, width)
		w := ansi.StringWidth(text)
		if col > 0 && col+w > width {
			line++
			col = 0
		}
		cells = append(cells, socialCell{index: i, line: line, col: col, text: text})
		col += w + socialGap
	}
	return cells, line + 1
}

func (m *Model) drawSocials(c *canvas, cells []socialCell, top, left int, opacity float64, bg lipgloss.Color) {
	if opacity <= 0 {
		return
	}
	t := m.theme
	c.put(left, top, styles.Text(t.SocialsTitleStyle, bg, opacity).Render(t.SocialsTitle))
	for _, cell := range cells {
		y := top + 1 + cell.line
		c.put(left+cell.col, y, styles.Text(m.socialStyle(cell.index), bg, opacity).Render(cell.text))
		hx, hw := c.screen(left+cell.col, ansi.StringWidth(cell.text))
		m.addHit(hit{kind: hitSocial, index: cell.index, x: hx, y: y, w: hw, h: 1})
	}
}

func (m *Model) drawToggle(base string, sc *Scene, panelBg lipgloss.Color) string {
	w := m.Width()
	x := 1
	if m.position == Right {
		x = w - toggle.Width - 1
	}
	x = max(x, 0)

	bg := m.theme.BackgroundColor
	if sc != nil {
		if x0, x1, _ := sc.span(sc.Panel.Shift); x >= x0 && x < x1 {
			bg = panelBg
		}
	}
	m.addHit(hit{kind: hitToggle, x: x, y: 0, w: min(toggle.Width, w-x), h: 1})
	return overlay.Place(base, m.toggle.View(bg), x, 0, w)
}
