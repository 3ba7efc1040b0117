package menu

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/llehouerou/slidemenu/internal/anim"
	"github.com/llehouerou/slidemenu/internal/theme"
	"github.com/llehouerou/slidemenu/internal/ui/action"
	"github.com/llehouerou/slidemenu/internal/ui/testutil"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

type recorder struct {
	announced []string
	selected  []string
	opened    int
	closed    int
}

func (r *recorder) Announce(text string) {
	r.announced = append(r.announced, text)
}

func (r *recorder) item(label string) Item {
	return Item{Label: label, OnSelect: func() tea.Cmd {
		r.selected = append(r.selected, label)
		return nil
	}}
}

type fixture struct {
	m     *Model
	clock *testClock
	rec   *recorder
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	rec := &recorder{}
	base := []Option{
		WithItems(rec.item("Home"), rec.item("About"), rec.item("Contact")),
		WithClock(clock.Now),
		WithAnnouncer(rec),
		WithOnOpen(func() tea.Cmd { rec.opened++; return nil }),
		WithOnClose(func() tea.Cmd { rec.closed++; return nil }),
	}
	m := New(append(base, opts...)...)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	t.Cleanup(m.Dispose)
	return &fixture{m: m, clock: clock, rec: rec}
}

// step moves the clock forward by d and delivers one frame.
func (f *fixture) step(d time.Duration) {
	f.clock.now = f.clock.now.Add(d)
	f.m.Advance(f.clock.now)
}

// settle runs frames until both animations stop.
func (f *fixture) settle() {
	for range 1000 {
		if !f.m.Animating() {
			return
		}
		f.step(anim.FrameInterval)
	}
}

func (f *fixture) open(t *testing.T) {
	t.Helper()
	f.m.Open()
	f.settle()
	require.Equal(t, StateOpen, f.m.State())
}

func TestOpen_RunsToOpen(t *testing.T) {
	f := newFixture(t)

	cmd := f.m.Open()
	require.NotNil(t, cmd)
	assert.True(t, f.m.IsOpen())
	assert.Equal(t, StateOpening, f.m.State())
	assert.Equal(t, 1, f.rec.opened, "callback fires when opening starts")
	assert.Equal(t, []string{AnnounceOpened}, f.rec.announced)
	assert.True(t, f.m.CapturesInput())

	f.settle()
	assert.Equal(t, StateOpen, f.m.State())
	assert.InDelta(t, 1.0, f.m.Progress(), 1e-9)
}

func TestOpen_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.m.Open()
	assert.Nil(t, f.m.Open())
	assert.Equal(t, 1, f.rec.opened)

	assert.Nil(t, newFixture(t).m.Close(), "closing a closed menu does nothing")
}

func TestOpen_EmitsAction(t *testing.T) {
	f := newFixture(t)
	msgs := testutil.Exec(f.m.Open())

	assert.Contains(t, msgs, action.Msg{Source: Source, Action: Opened{}})
}

func TestCloseImmediatelyAfterOpen(t *testing.T) {
	f := newFixture(t)
	f.m.Open()
	f.m.Close()

	assert.False(t, f.m.IsOpen())
	assert.Zero(t, f.m.Progress())
	assert.Equal(t, 1, f.rec.closed)

	f.settle()
	assert.Equal(t, StateClosed, f.m.State())
	assert.Zero(t, f.m.Progress())
}

func TestClose_MidOpenReversesFromCurrentValue(t *testing.T) {
	f := newFixture(t)
	f.m.Open()
	f.step(f.m.Theme().Duration / 2)
	mid := f.m.Progress()
	require.InDelta(t, 0.5, mid, 1e-9)

	f.m.Close()
	assert.Equal(t, StateClosing, f.m.State())
	f.step(anim.FrameInterval)
	assert.Less(t, f.m.Progress(), mid, "driver heads back toward 0")
	assert.Greater(t, f.m.Progress(), 0.0, "and starts from where it was")

	f.settle()
	assert.Equal(t, StateClosed, f.m.State())
	assert.Zero(t, f.m.Progress())
}

func TestToggle(t *testing.T) {
	f := newFixture(t)
	f.m.Toggle()
	assert.True(t, f.m.IsOpen())
	f.m.Toggle()
	assert.False(t, f.m.IsOpen())
	assert.Equal(t, 1, f.rec.opened)
	assert.Equal(t, 1, f.rec.closed)
}

func TestController_RapidTogglesApplyOnce(t *testing.T) {
	ctrl := NewController()
	f := newFixture(t, WithController(ctrl))
	wait := f.m.Init()
	require.NotNil(t, wait)

	ctrl.Toggle()
	ctrl.Toggle()
	assert.Equal(t, ActionToggle, ctrl.Pending())

	f.m.Update(wait())
	assert.True(t, f.m.IsOpen())
	assert.Equal(t, 1, f.rec.opened)
	assert.Equal(t, ActionNone, ctrl.Pending())
	assert.True(t, ctrl.IsOpen(), "controller mirrors the menu")
}

func TestController_ReentrantNotificationFindsEmptySlot(t *testing.T) {
	ctrl := NewController()
	f := newFixture(t, WithController(ctrl))
	wait := f.m.Init()

	ctrl.Open()
	first := wait()
	ctrl.Open()

	f.m.Update(first)
	require.Equal(t, 1, f.rec.opened)

	second := f.m.ctrl.wait(f.m.att)()
	f.m.Update(second)
	assert.Equal(t, 1, f.rec.opened, "the second wakeup found nothing to do")
	assert.Equal(t, ActionNone, ctrl.Pending())
}

func TestController_MirrorFollowsDirectCalls(t *testing.T) {
	ctrl := NewController()
	f := newFixture(t, WithController(ctrl))
	f.m.Init()

	f.m.Open()
	assert.True(t, ctrl.IsOpen())
	f.m.Close()
	assert.False(t, ctrl.IsOpen())
}

func TestController_SecondMenuIsRejected(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ctrl := NewController()
	first := newFixture(t, WithController(ctrl))
	require.NotNil(t, first.m.Init())

	second := newFixture(t, WithController(ctrl), WithLogger(zap.New(core)))
	assert.Nil(t, second.m.Init())
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Failed to attach menu controller: "+ErrAlreadyAttached.Error(), entry.Message)
	assert.Equal(t, ErrAlreadyAttached.Error(), entry.ContextMap()["error"])

	// The rejected menu still works on its own.
	second.m.Open()
	assert.True(t, second.m.IsOpen())
	assert.False(t, ctrl.IsOpen())
}

func TestDispose_ReleasesEverything(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := NewController()
	m := New(WithController(ctrl))
	wait := m.Init()
	require.NotNil(t, wait)
	m.Open()

	done := make(chan tea.Msg)
	go func() { done <- wait() }()

	m.Dispose()
	m.Dispose()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("controller wait still blocked after Dispose")
	}
	assert.False(t, ctrl.Attached())
	assert.False(t, m.trap.Captured())
	assert.False(t, m.Animating())
	assert.True(t, m.Disposed())
}

func TestDispose_CallsBecomeNoops(t *testing.T) {
	f := newFixture(t)
	f.m.Open()
	f.step(100 * time.Millisecond)
	f.m.Dispose()

	assert.Nil(t, f.m.Open())
	assert.Nil(t, f.m.Close())
	assert.Nil(t, f.m.Toggle())
	_, cmd := f.m.Update(testutil.Key("esc"))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, f.rec.closed)
	assert.Empty(t, f.m.View())
}

func TestEscape(t *testing.T) {
	f := newFixture(t)

	_, cmd := f.m.Update(testutil.Key("esc"))
	assert.Nil(t, cmd, "escape while closed does nothing")
	assert.False(t, f.m.IsOpen())
	assert.Zero(t, f.rec.closed)

	f.open(t)
	require.True(t, f.m.trap.Captured())
	f.m.Update(testutil.Key("esc"))
	assert.False(t, f.m.IsOpen())
	assert.False(t, f.m.trap.Captured(), "focus capture released")
	assert.False(t, f.m.CapturesInput())
}

func TestFocus_TabWrapsInsideMenu(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	f.rec.announced = nil

	h := testutil.NewHarness(f.m)
	h.Press("tab")
	h.Press("tab")
	h.Press("tab")
	h.Press("tab")
	h.Press("shift+tab")

	assert.Equal(t, []string{"About", "Contact", ToggleLabel, "Home", ToggleLabel}, f.rec.announced)
}

func TestFocus_ArrowsStayOnItems(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	assert.Equal(t, 0, f.m.focusedItem(), "opening focuses the first item")

	h := testutil.NewHarness(f.m)
	h.Press("up")
	assert.Equal(t, 2, f.m.focusedItem(), "wraps to the last item")
	h.Press("j")
	assert.Equal(t, 0, f.m.focusedItem())
	h.Press("G")
	assert.Equal(t, 2, f.m.focusedItem())
	h.Press("home")
	assert.Equal(t, 0, f.m.focusedItem())
}

func TestFocus_SocialsJoinTheRing(t *testing.T) {
	f := newFixture(t, WithSocials(Social{Label: "GitHub", AccessibleLabel: "GitHub profile"}))
	f.open(t)
	f.rec.announced = nil

	h := testutil.NewHarness(f.m)
	h.Press("shift+tab") // toggle
	h.Press("shift+tab") // last ring entry: the social link

	assert.Equal(t, []string{ToggleLabel, "GitHub profile"}, f.rec.announced)
	assert.Equal(t, 0, f.m.focusedSocial())
}

func TestActivate_CallsThenCloses(t *testing.T) {
	f := newFixture(t)
	f.open(t)

	h := testutil.NewHarness(f.m)
	h.Press("down")
	cmd := h.Press("enter")

	assert.Equal(t, []string{"About"}, f.rec.selected)
	assert.False(t, f.m.IsOpen())
	assert.Contains(t, testutil.Exec(cmd), action.Msg{Source: Source, Action: Selected{Index: 1, Label: "About"}})
}

func TestActivate_DisabledItemStillCloses(t *testing.T) {
	f := newFixture(t, WithItems(Item{Label: "Home (current)"}))
	f.open(t)

	f.m.Activate(0)
	assert.False(t, f.m.IsOpen())
	assert.Equal(t, 1, f.rec.closed)
}

func TestActivate_OutOfRange(t *testing.T) {
	f := newFixture(t)
	assert.Nil(t, f.m.Activate(-1))
	assert.Nil(t, f.m.Activate(3))
}

func TestActivateSocial_KeepsMenuOpen(t *testing.T) {
	clicked := 0
	f := newFixture(t, WithSocials(Social{Label: "GitHub", OnSelect: func() tea.Cmd {
		clicked++
		return nil
	}}))
	f.open(t)

	f.m.ActivateSocial(0)
	assert.Equal(t, 1, clicked)
	assert.True(t, f.m.IsOpen())
}

func TestHoverDisabledForcesNormalStyle(t *testing.T) {
	f := newFixture(t, WithTheme(theme.Overrides{EnableHover: theme.Ptr(false)}))
	f.open(t)
	f.m.hover.item = 1

	require.True(t, f.m.itemHovered(1), "hover state is still tracked")
	assert.Equal(t, f.m.Theme().ItemStyle, f.m.itemStyle(1))

	f.m.hover.social = 0
	assert.Equal(t, f.m.Theme().SocialStyle, f.m.socialStyle(0))
}

func TestHoverEnabledSwapsStyle(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	f.m.hover.item = 1

	assert.Equal(t, f.m.Theme().ItemHoverStyle, f.m.itemStyle(1))
	assert.Equal(t, f.m.Theme().ItemStyle, f.m.itemStyle(2))
}

func TestItemRendererSeesEffectiveHover(t *testing.T) {
	var seen []bool
	r := ItemRendererFunc(func(item Item, index int, hovered bool) string {
		if index == 1 {
			seen = append(seen, hovered)
		}
		return "<" + item.Label + ">"
	})
	f := newFixture(t, WithItemRenderer(r), WithTheme(theme.Overrides{EnableHover: theme.Ptr(false)}))
	f.open(t)
	f.m.hover.item = 1

	view := f.m.View()
	assert.Contains(t, view, "<About>")
	assert.NotContains(t, view, "01")
	require.NotEmpty(t, seen)
	assert.False(t, seen[len(seen)-1])
}

func TestSetTheme(t *testing.T) {
	f := newFixture(t)
	same := theme.Resolve(theme.Overrides{}, nil)
	f.m.SetTheme(same)
	assert.True(t, f.m.Theme().Equal(same))

	slow := same.WithOverrides(theme.Overrides{Duration: theme.Ptr(2 * time.Second)})
	f.m.SetTheme(slow)
	assert.Equal(t, 2*time.Second, f.m.driver.Duration())
}

func TestSetTheme_NormalizesBeforeUse(t *testing.T) {
	f := newFixture(t)
	f.m.Open()
	f.step(100 * time.Millisecond)

	bad := theme.Default()
	bad.Duration = -time.Second
	bad.WidthFraction = 3
	f.m.SetTheme(bad)

	assert.Equal(t, theme.Default().Duration, f.m.driver.Duration())
	assert.InDelta(t, 1.0, f.m.Theme().WidthFraction, 1e-9)

	f.settle()
	assert.Equal(t, StateOpen, f.m.State())
	assert.InDelta(t, 1.0, f.m.Progress(), 1e-9)
}

func TestWithContext_InheritsTheme(t *testing.T) {
	inherited := theme.Default().WithOverrides(theme.Overrides{
		ShowNumbers: theme.Ptr(false),
		Duration:    theme.Ptr(time.Second),
	})
	ctx := theme.NewContext(context.Background(), inherited)

	m := New(
		WithContext(ctx),
		WithTheme(theme.Overrides{Duration: theme.Ptr(300 * time.Millisecond)}),
	)
	defer m.Dispose()

	assert.False(t, m.Theme().ShowNumbers, "inherited")
	assert.Equal(t, 300*time.Millisecond, m.Theme().Duration, "explicit wins")
}

func TestSetItems_ShrinksFocus(t *testing.T) {
	f := newFixture(t)
	f.open(t)
	testutil.NewHarness(f.m).Press("G")
	require.Equal(t, 2, f.m.focusedItem())

	f.m.SetItems([]Item{{Label: "Only"}})
	assert.Equal(t, 0, f.m.trap.Pos()-1, "focus clamped into the new list")
	assert.Len(t, f.m.Items(), 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "opening", StateOpening.String())
	assert.Equal(t, "closed", StateClosed.String())
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"left", Left, false},
		{"RIGHT", Right, false},
		{"", Right, false},
		{"top", Right, true},
	}
	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want.String(), got.String())
	}
}

func TestItemA11yLabel(t *testing.T) {
	assert.Equal(t, "Home", Item{Label: "Home"}.A11yLabel())
	assert.Equal(t, "Go home", Item{Label: "Home", AccessibleLabel: "Go home"}.A11yLabel())
	assert.True(t, Item{Label: "x"}.Disabled())
}
