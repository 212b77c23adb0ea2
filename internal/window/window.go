package window

import (
	"strings"
	"time"

	"github.com/pfrederiksen/meetup-soon/internal/event"
)

// Policy decides what happens to a record whose start time could not be
// resolved and whose text carries no recognizable relative or "soon" phrase.
// Both behaviors exist in production deployments, so the choice is explicit
// configuration rather than a hardcoded default.
type Policy string

const (
	// IncludeUnresolved keeps such records; the source page is already
	// pre-filtered to "starting soon", and an empty feed hides real events.
	IncludeUnresolved Policy = "include"
	// ExcludeUnresolved drops them, trading recall for precision.
	ExcludeUnresolved Policy = "exclude"
)

// Filter decides inclusion in the "starting soon" window.
type Filter struct {
	now      time.Time
	window   time.Duration
	fallback Policy
}

// New creates a Filter. The now instant is captured once per pipeline run so
// every decision sees the same clock.
func New(now time.Time, window time.Duration, fallback Policy) *Filter {
	return &Filter{
		now:      now,
		window:   window,
		fallback: fallback,
	}
}

// Include reports whether a record belongs in the feed.
//
// With a resolved start time the rule is exact: now <= start <= now+window,
// no grace period on either side. Without one, lexical fallbacks apply: a
// "starting soon" phrase or a relative phrase whose magnitude fits the window
// includes the record; anything else is decided by the configured policy.
func (f *Filter) Include(rec *event.Record) bool {
	if rec.HasStart() {
		if rec.Start.Before(f.now) {
			return false
		}
		return !rec.Start.After(f.now.Add(f.window))
	}

	text := strings.ToLower(strings.TrimSpace(rec.WhenText))

	if strings.Contains(text, "starting soon") {
		return true
	}

	if minutes, ok := event.RelativeMinutes(text); ok {
		return time.Duration(minutes)*time.Minute <= f.window
	}

	return f.fallback == IncludeUnresolved
}
