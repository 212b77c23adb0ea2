package card

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bodySnippetLen bounds the body text kept for block detection.
const bodySnippetLen = 800

// minTitleLen rejects anchors whose best title is too short to be a listing.
const minTitleLen = 3

// ExtractHTML parses a rendered listings page and extracts event cards.
//
// It replicates the collaborator's in-page extraction: every event anchor is
// mapped to its nearest card ancestor (article, list item, or div), the title
// comes from the card heading, the anchor's aria-label, or the anchor text,
// and the card's time element supplies both the human-readable text and the
// machine-readable datetime attribute.
func ExtractHTML(r io.Reader) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	snap := &Snapshot{
		PageTitle: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	seen := make(map[string]bool)

	anchors := doc.Find("a[href*='/events/']")
	snap.AnchorCount = anchors.Length()

	anchors.Each(func(i int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		seen[href] = true

		sel := closestCard(a)

		title := strings.TrimSpace(sel.Find("h3").First().Text())
		if title == "" {
			title, _ = a.Attr("aria-label")
			title = strings.TrimSpace(title)
		}
		if title == "" {
			title = strings.TrimSpace(a.Text())
		}
		if len(title) < minTitleLen {
			return
		}

		timeEl := sel.Find("time").First()
		whenText := strings.TrimSpace(timeEl.Text())
		machineTime, _ := timeEl.Attr("datetime")

		cardText := strings.TrimSpace(sel.Text())
		if cardText == "" {
			cardText = strings.TrimSpace(a.Text())
		}

		snap.Cards = append(snap.Cards, Card{
			Title:       title,
			URL:         href,
			WhenText:    whenText,
			MachineTime: strings.TrimSpace(machineTime),
			CardText:    cardText,
		})
	})

	snap.Extracted = len(snap.Cards)

	body := strings.TrimSpace(doc.Find("body").Text())
	if len(body) > bodySnippetLen {
		body = body[:bodySnippetLen]
	}
	snap.BodySnippet = body

	return snap, nil
}

// closestCard walks up from an anchor to the element most likely to be the
// whole card. Falls back to the anchor itself when nothing matches.
func closestCard(a *goquery.Selection) *goquery.Selection {
	for _, ancestor := range []string{"article", "li", "div"} {
		if c := a.Closest(ancestor); c.Length() > 0 {
			return c
		}
	}
	return a
}
