package layout

import "testing"

func TestPanelWidth(t *testing.T) {
	opts := PanelOpts{
		MobileBreakpoint: 640,
		WidthFraction:    0.38,
		MinWidth:         260,
		MaxWidth:         420,
	}

	tests := []struct {
		name     string
		viewport float64
		want     float64
	}{
		{"below breakpoint takes full width", 500, 500},
		{"wide viewport clamped to max", 1200, 420},
		{"at breakpoint clamped to min", 640, 260},
		{"fraction inside bounds", 1000, 380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PanelWidth(tt.viewport, opts)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("PanelWidth(%v) = %v, want %v", tt.viewport, got, tt.want)
			}
		})
	}
}

func TestPanelColumns(t *testing.T) {
	opts := PanelOpts{MobileBreakpoint: 640, WidthFraction: 0.38, MinWidth: 260, MaxWidth: 420}
	m := Metrics{CellWidth: 8, CellHeight: 16}

	tests := []struct {
		name    string
		columns int
		want    int
	}{
		{"narrow terminal uses every column", 60, 60},
		{"wide terminal clamps to max width", 200, 53}, // 420 / 8 = 52.5
		{"empty viewport", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PanelColumns(Viewport{Columns: tt.columns, Rows: 24, Metrics: m}, opts)
			if got != tt.want {
				t.Errorf("PanelColumns(%d) = %d, want %d", tt.columns, got, tt.want)
			}
		})
	}
}

func TestItemFontSize(t *testing.T) {
	tests := []struct {
		viewport float64
		want     float64
	}{
		{300, 36},  // 19.5 clamped up
		{640, 41.6},
		{2000, 52}, // 130 clamped down
	}

	for _, tt := range tests {
		got := ItemFontSize(tt.viewport)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("ItemFontSize(%v) = %v, want %v", tt.viewport, got, tt.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	m := Metrics{CellWidth: 8, CellHeight: 16}

	if got := m.Columns(44); got != 6 { // 5.5 rounds away from zero
		t.Errorf("Columns(44) = %d, want 6", got)
	}
	if got := m.Rows(44); got != 3 {
		t.Errorf("Rows(44) = %d, want 3", got)
	}
	if got := m.Width(10); got != 80 {
		t.Errorf("Width(10) = %v, want 80", got)
	}
	if got := m.Height(2); got != 32 {
		t.Errorf("Height(2) = %v, want 32", got)
	}

	var zero Metrics
	if zero.Columns(100) != 0 || zero.Rows(100) != 0 {
		t.Error("zero metrics should convert to zero cells")
	}
}

func TestIsMobile(t *testing.T) {
	if !IsMobile(500, 640) {
		t.Error("500 < 640 should be mobile")
	}
	if IsMobile(640, 640) {
		t.Error("breakpoint itself is not mobile")
	}
}
