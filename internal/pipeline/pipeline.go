package pipeline

import (
	"fmt"
	"time"

	"github.com/pfrederiksen/meetup-soon/internal/card"
	"github.com/pfrederiksen/meetup-soon/internal/config"
	"github.com/pfrederiksen/meetup-soon/internal/event"
	"github.com/pfrederiksen/meetup-soon/internal/feed"
	"github.com/pfrederiksen/meetup-soon/internal/logger"
	"github.com/pfrederiksen/meetup-soon/internal/rank"
	"github.com/pfrederiksen/meetup-soon/internal/window"
)

// Status is the terminal state of a pipeline run.
type Status string

const (
	// StatusOK means real event entries were emitted.
	StatusOK Status = "ok"
	// StatusBlocked means the source was judged unreachable or blocked and a
	// diagnostic entry was emitted instead of events.
	StatusBlocked Status = "blocked"
	// StatusEmpty means extraction succeeded but nothing passed the window
	// filter; the document carries a kept=0 diagnostic entry.
	StatusEmpty Status = "empty"
)

// Result is the outcome of one run. Document is always a complete, well-formed
// feed regardless of status.
type Result struct {
	Document  string
	Status    Status
	Anchors   int
	Extracted int
	Kept      int
}

// Run executes the full transform on one snapshot: normalize and dedup the
// raw cards, filter to the inclusion window, rank, cap, and serialize.
//
// now is captured once by the caller and threaded through every decision so a
// single run is internally consistent. The only error is structural (absent
// snapshot or unusable configuration); malformed card fields degrade
// per-field and never fail the run.
func Run(snap *card.Snapshot, cfg *config.Config, now time.Time) (*Result, error) {
	if snap == nil {
		return nil, fmt.Errorf("no snapshot to process")
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	channel := feed.Channel{
		Title:       cfg.FeedTitle,
		Link:        cfg.FeedLink,
		Description: cfg.FeedDescription,
		TTLMinutes:  cfg.TTLMinutes,
	}
	diag := feed.Diagnostics{
		Anchors:   snap.AnchorCount,
		Extracted: snap.Extracted,
	}

	result := &Result{
		Anchors:   snap.AnchorCount,
		Extracted: snap.Extracted,
	}

	if snap.Blocked() {
		logger.Warn("source blocked or page did not render", logger.Fields{
			"anchors":   snap.AnchorCount,
			"extracted": snap.Extracted,
		})
		result.Status = StatusBlocked
		result.Document = feed.RenderUnavailable(channel, diag, now)
		return result, nil
	}

	records, err := normalize(snap.Cards, cfg, loc, now)
	if err != nil {
		return nil, err
	}

	filter := window.New(now, cfg.Window(), window.Policy(cfg.Fallback))
	kept := make([]*event.Record, 0, len(records))
	for _, rec := range records {
		if filter.Include(rec) {
			kept = append(kept, rec)
		}
	}

	rank.Sort(kept, rank.Order(cfg.Sort))
	kept = rank.Cap(kept, cfg.MaxItems)

	logger.Add("cards.extracted", int64(len(snap.Cards)))
	logger.Add("cards.kept", int64(len(kept)))

	result.Kept = len(kept)

	if len(kept) == 0 {
		result.Status = StatusEmpty
		result.Document = feed.RenderEmpty(channel, diag, now)
		return result, nil
	}

	result.Status = StatusOK
	result.Document = feed.Render(channel, kept, now)
	return result, nil
}

// normalize converts raw cards into records, dropping invalid cards and
// deduplicating by canonical link. The first occurrence of a link wins and
// encounter order is preserved.
func normalize(cards []card.Card, cfg *config.Config, loc *time.Location, now time.Time) ([]*event.Record, error) {
	normalizer, err := event.NewNormalizer(cfg.SiteOrigin, loc, now)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	records := make([]*event.Record, 0, len(cards))

	for _, c := range cards {
		rec, ok := normalizer.Normalize(c)
		if !ok {
			logger.Debug("rejected card", logger.Fields{"title": c.Title, "url": c.URL})
			continue
		}
		if seen[rec.Link] {
			continue
		}
		seen[rec.Link] = true
		records = append(records, rec)
	}

	return records, nil
}
