package feed

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/pfrederiksen/meetup-soon/internal/event"
)

// Channel holds the fixed channel-level metadata. It is configuration, never
// derived from records.
type Channel struct {
	Title       string
	Link        string
	Description string
	TTLMinutes  int
}

// Diagnostics carries the extraction counts surfaced in diagnostic entries so
// an operator can tell a blocked page from an over-aggressive filter.
type Diagnostics struct {
	Anchors   int
	Extracted int
	Kept      int
}

// item is one rendered feed entry.
type item struct {
	title       string
	link        string
	pubDate     time.Time
	description string
}

// Render serializes the final ordered record set into an RSS 2.0 document.
func Render(ch Channel, records []*event.Record, now time.Time) string {
	items := make([]item, 0, len(records))
	for _, rec := range records {
		items = append(items, recordItem(rec, now))
	}
	return renderDocument(ch, items, now)
}

// RenderUnavailable produces a single-entry document reporting that the
// upstream source was blocked or did not render. No real events are emitted.
func RenderUnavailable(ch Channel, d Diagnostics, now time.Time) string {
	diag := item{
		title: "⚠️ Source blocked or page did not render",
		link:  ch.Link,
		description: fmt.Sprintf("<p>anchors=%d, extracted=%d. Inspect debug.html and debug.json in the output directory.</p>",
			d.Anchors, d.Extracted),
		pubDate: now,
	}
	return renderDocument(ch, []item{diag}, now)
}

// RenderEmpty produces a single-entry document reporting that extraction
// succeeded but the window filter kept nothing.
func RenderEmpty(ch Channel, d Diagnostics, now time.Time) string {
	diag := item{
		title: "ℹ️ Events were extracted but time filtering kept 0",
		link:  ch.Link,
		description: fmt.Sprintf("<p>anchors=%d, extracted=%d, kept=0. Check debug.json for whenText/dtAttr.</p>",
			d.Anchors, d.Extracted),
		pubDate: now,
	}
	return renderDocument(ch, []item{diag}, now)
}

// recordItem maps an event record onto a feed entry. The publish timestamp is
// the resolved start when present, else the document generation time.
func recordItem(rec *event.Record, now time.Time) item {
	var desc strings.Builder
	desc.WriteString(fmt.Sprintf("<p><b>Time:</b> %s</p>", esc(rec.DisplayTime)))
	if rec.Attendance != nil {
		phrase := rec.AttendanceText
		if phrase == "" {
			phrase = fmt.Sprintf("%d attendees", *rec.Attendance)
		}
		desc.WriteString(fmt.Sprintf("<p><b>Attendees:</b> %s</p>", esc(phrase)))
	}
	desc.WriteString(fmt.Sprintf("<p><a href=\"%s\">Open event</a></p>", esc(rec.Link)))

	pubDate := now
	if rec.HasStart() {
		pubDate = rec.Start
	}

	return item{
		title:       rec.Title,
		link:        rec.Link,
		pubDate:     pubDate,
		description: desc.String(),
	}
}

// renderDocument assembles the full RSS document. Entry descriptions are
// HTML fragments wrapped in CDATA; every text field inside them is escaped
// before embedding.
func renderDocument(ch Channel, items []item, now time.Time) string {
	var rss strings.Builder

	rss.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	rss.WriteString("<rss version=\"2.0\">\n")
	rss.WriteString("<channel>\n")
	rss.WriteString(fmt.Sprintf("  <title>%s</title>\n", esc(ch.Title)))
	rss.WriteString(fmt.Sprintf("  <link>%s</link>\n", esc(ch.Link)))
	rss.WriteString(fmt.Sprintf("  <description>%s</description>\n", esc(ch.Description)))
	rss.WriteString(fmt.Sprintf("  <lastBuildDate>%s</lastBuildDate>\n", rfc2822(now)))
	rss.WriteString(fmt.Sprintf("  <ttl>%d</ttl>\n", ch.TTLMinutes))

	for _, it := range items {
		rss.WriteString("  <item>\n")
		rss.WriteString(fmt.Sprintf("    <title>%s</title>\n", esc(it.title)))
		rss.WriteString(fmt.Sprintf("    <link>%s</link>\n", esc(it.link)))
		rss.WriteString(fmt.Sprintf("    <guid isPermaLink=\"true\">%s</guid>\n", esc(it.link)))
		rss.WriteString(fmt.Sprintf("    <pubDate>%s</pubDate>\n", rfc2822(it.pubDate)))
		rss.WriteString(fmt.Sprintf("    <description><![CDATA[%s]]></description>\n", it.description))
		rss.WriteString("  </item>\n")
	}

	rss.WriteString("</channel>\n")
	rss.WriteString("</rss>\n")

	return rss.String()
}

// rfc2822 formats a timestamp the way RSS readers expect, always in UTC.
func rfc2822(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}

// esc escapes text for embedding in the output document.
func esc(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
