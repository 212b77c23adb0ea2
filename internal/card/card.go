package card

import "strings"

// Card is one unvalidated scraped listing, as handed off by the rendering
// collaborator. Field tags match the collaborator's debug.json dump so either
// side can produce or consume it.
type Card struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	WhenText    string `json:"whenText"`
	MachineTime string `json:"dtAttr"`
	CardText    string `json:"cardText"`
}

// Snapshot is a full extraction batch plus the diagnostic signals used to
// detect challenge/block pages.
type Snapshot struct {
	PageTitle   string `json:"pageTitle"`
	URL         string `json:"url"`
	AnchorCount int    `json:"countAnchors"`
	Extracted   int    `json:"extracted"`
	BodySnippet string `json:"bodySnippet"`
	Cards       []Card `json:"events"`
}

// blockSignals are phrases that show up on challenge or consent interstitials
// instead of real listings.
var blockSignals = []string{
	"verify",
	"captcha",
	"robot",
	"unusual traffic",
	"enable javascript",
}

// Blocked reports whether the snapshot looks like a blocked or unrendered
// page: nothing extracted at all, or a challenge phrase in the body snippet.
func (s *Snapshot) Blocked() bool {
	if s.AnchorCount == 0 && s.Extracted == 0 {
		return true
	}

	snippet := strings.ToLower(s.BodySnippet)
	for _, signal := range blockSignals {
		if strings.Contains(snippet, signal) {
			return true
		}
	}
	return false
}
