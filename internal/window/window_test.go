package window

import (
	"testing"
	"time"

	"github.com/pfrederiksen/meetup-soon/internal/event"
)

var now = time.Date(2026, time.March, 1, 18, 0, 0, 0, time.UTC)

func recordAt(start time.Time) *event.Record {
	return &event.Record{Title: "Test Event", Link: "https://example.com/events/x", Start: start}
}

func recordWithText(whenText string) *event.Record {
	return &event.Record{Title: "Test Event", Link: "https://example.com/events/x", WhenText: whenText}
}

func TestIncludeResolvedInstant(t *testing.T) {
	f := New(now, 60*time.Minute, ExcludeUnresolved)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "exactly now", start: now, want: true},
		{name: "mid window", start: now.Add(30 * time.Minute), want: true},
		{name: "exactly window end", start: now.Add(60 * time.Minute), want: true},
		{name: "one minute past window", start: now.Add(61 * time.Minute), want: false},
		{name: "one minute in the past", start: now.Add(-time.Minute), want: false},
		{name: "far future", start: now.Add(48 * time.Hour), want: false},
		{name: "one second past window", start: now.Add(60*time.Minute + time.Second), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Include(recordAt(tt.start)); got != tt.want {
				t.Errorf("Include(start=%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestIncludeLexicalFallbacks(t *testing.T) {
	f := New(now, 60*time.Minute, ExcludeUnresolved)

	tests := []struct {
		name     string
		whenText string
		want     bool
	}{
		{name: "starting soon phrase", whenText: "Starting soon", want: true},
		{name: "starting soon embedded", whenText: "Online event · Starting soon", want: true},
		{name: "relative within window", whenText: "in 45 minutes", want: true},
		{name: "relative at window edge", whenText: "in 1 hour", want: true},
		{name: "relative beyond window", whenText: "in 2 hours", want: false},
		{name: "relative minutes beyond window", whenText: "in 90 minutes", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Include(recordWithText(tt.whenText)); got != tt.want {
				t.Errorf("Include(whenText=%q) = %v, want %v", tt.whenText, got, tt.want)
			}
		})
	}
}

func TestIncludeFallbackPolicy(t *testing.T) {
	rec := recordWithText("Tonight, probably")

	include := New(now, 60*time.Minute, IncludeUnresolved)
	if !include.Include(rec) {
		t.Error("include policy should keep unresolvable records")
	}

	exclude := New(now, 60*time.Minute, ExcludeUnresolved)
	if exclude.Include(rec) {
		t.Error("exclude policy should drop unresolvable records")
	}

	// Policy applies only when no lexical cue matched
	soon := recordWithText("starting soon")
	if !exclude.Include(soon) {
		t.Error("lexical cue should win over exclude policy")
	}
}

func TestIncludeWiderWindow(t *testing.T) {
	f := New(now, 90*time.Minute, ExcludeUnresolved)

	if !f.Include(recordAt(now.Add(75 * time.Minute))) {
		t.Error("expected 75m out to be inside a 90m window")
	}
	if !f.Include(recordWithText("in 90 minutes")) {
		t.Error("expected 'in 90 minutes' to be inside a 90m window")
	}
	if f.Include(recordWithText("in 91 minutes")) {
		t.Error("expected 'in 91 minutes' to be outside a 90m window")
	}
}
