package event

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pfrederiksen/meetup-soon/internal/card"
)

// PlaceholderTime is the display time shown when the card carried no
// human-readable time text.
const PlaceholderTime = "Starting soon (time not provided on card)"

// minTitleLen matches the extraction side: anything shorter is noise.
const minTitleLen = 3

// Record is the canonical event flowing through the pipeline. It is built
// once from a raw card and never mutated afterwards.
type Record struct {
	Title          string    `json:"title"`
	Link           string    `json:"link"` // canonical absolute URL, the dedup key
	DisplayTime    string    `json:"display_time"`
	Start          time.Time `json:"start,omitempty"` // zero when unresolved
	Attendance     *int      `json:"attendance,omitempty"`
	AttendanceText string    `json:"attendance_text,omitempty"`
	WhenText       string    `json:"when_text,omitempty"` // original card text, kept for fallback filtering
}

// HasStart reports whether a start time was resolved for this record.
// The zero time is reserved for "unresolved" and never represents a real event.
func (r *Record) HasStart() bool {
	return !r.Start.IsZero()
}

// AttendanceOrZero returns the attendance count, treating absent as 0.
// Only for ordering; absence itself is preserved on the record.
func (r *Record) AttendanceOrZero() int {
	if r.Attendance == nil {
		return 0
	}
	return *r.Attendance
}

// Normalizer converts raw cards into Records against a fixed site origin,
// reference zone, and pipeline start time.
type Normalizer struct {
	origin *url.URL
	loc    *time.Location
	now    time.Time
}

// NewNormalizer creates a Normalizer. The origin resolves relative card links;
// now is captured once per run so every record sees the same clock.
func NewNormalizer(origin string, loc *time.Location, now time.Time) (*Normalizer, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parsing site origin: %w", err)
	}
	return &Normalizer{
		origin: base,
		loc:    loc,
		now:    now,
	}, nil
}

// Normalize builds a Record from a raw card. The second return value is false
// when the card fails minimum validity (empty link, missing or too-short
// title) and must be dropped. Field-level failures never reject the card:
// an unparseable time or missing attendance simply stay absent.
func (n *Normalizer) Normalize(c card.Card) (*Record, bool) {
	title := strings.TrimSpace(c.Title)
	link := strings.TrimSpace(c.URL)

	if len(title) < minTitleLen || link == "" {
		return nil, false
	}

	rec := &Record{
		Title:    title,
		Link:     n.CanonicalLink(link),
		WhenText: strings.TrimSpace(c.WhenText),
		Start:    ResolveStart(c.MachineTime, c.WhenText, n.now, n.loc),
	}

	if count, phrase, ok := ExtractAttendance(c.CardText); ok {
		rec.Attendance = &count
		rec.AttendanceText = phrase
	}

	if rec.WhenText != "" {
		rec.DisplayTime = rec.WhenText
	} else {
		rec.DisplayTime = PlaceholderTime
	}

	return rec, true
}

// CanonicalLink resolves a possibly-relative card link against the site
// origin and strips the fragment. An unparseable link is returned as-is;
// identity still works, it just cannot be absolutized.
func (n *Normalizer) CanonicalLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	resolved := n.origin.ResolveReference(u)
	resolved.Fragment = ""
	return resolved.String()
}
