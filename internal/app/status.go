package app

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"go.uber.org/zap"

	"github.com/llehouerou/slidemenu/internal/ui/render"
	"github.com/llehouerou/slidemenu/internal/ui/styles"
)

// Status is the footer status line. It is the menu's announcer, so screen
// reader style announcements show up here.
type Status struct {
	now func() time.Time
	log *zap.Logger

	announcement string
	message      string
	isError      bool

	opens    int
	lastOpen time.Time
}

// NewStatus creates an empty status line.
func NewStatus(now func() time.Time, log *zap.Logger) *Status {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Status{now: now, log: log}
}

// Announce implements menu.Announcer.
func (s *Status) Announce(text string) {
	s.announcement = text
	s.log.Debug("announce", zap.String("text", text))
}

// Announcement returns the latest announcement.
func (s *Status) Announcement() string {
	return s.announcement
}

// MenuOpened records that the menu started opening.
func (s *Status) MenuOpened() {
	s.opens++
	s.lastOpen = s.now()
}

// Opens returns how many times the menu was opened.
func (s *Status) Opens() int {
	return s.opens
}

// SetMessage shows an informational message.
func (s *Status) SetMessage(text string) {
	s.message = text
	s.isError = false
}

// SetError shows an error message until the next message replaces it.
func (s *Status) SetError(text string) {
	s.message = text
	s.isError = true
	s.log.Warn("status error", zap.String("message", text))
}

// Message returns the current message and whether it is an error.
func (s *Status) Message() (string, bool) {
	return s.message, s.isError
}

// Summary describes how often and how recently the menu was opened.
func (s *Status) Summary() string {
	if s.opens == 0 {
		return "menu not opened yet"
	}
	when := humanize.RelTime(s.lastOpen, s.now(), "ago", "from now")
	if when == "now" {
		when = "just now"
	}
	return "opened " + english.Plural(s.opens, "time", "") + ", last " + when
}

// Line renders the status line at width.
func (s *Status) Line(width int) string {
	st := styles.T().S()

	left := s.Summary()
	if s.announcement != "" {
		left = s.announcement + " · " + left
	}

	right := ""
	if s.message != "" {
		if s.isError {
			right = st.Error.Render(s.message)
		} else {
			right = st.Muted.Render(s.message)
		}
	}
	return render.Row(st.Status.Render(left), right, width)
}
