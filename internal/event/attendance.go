package event

import (
	"regexp"
	"strconv"
)

// Attendance phrasing varies across cards: "12 attendees", "12 going",
// "12 RSVPs", "attendees: 12". Numbers are capped at 6 digits.
var (
	countThenWord = regexp.MustCompile(`(?i)\b(\d{1,6})\s*(attendees|going|rsvps|people|attending)\b`)
	wordThenCount = regexp.MustCompile(`(?i)\battendees?\s*[:\-]?\s*(\d{1,6})\b`)
)

// ExtractAttendance scans free card text for a participant-count signal.
// It returns the count, the matched phrase for display, and whether a signal
// was found at all. No match is absent, not zero: "0 attendees" yields
// (0, "0 attendees", true) while silence yields (0, "", false).
func ExtractAttendance(text string) (int, string, bool) {
	if text == "" {
		return 0, "", false
	}

	t := collapseSpaces(text)

	if matches := countThenWord.FindStringSubmatch(t); matches != nil {
		if n, err := strconv.Atoi(matches[1]); err == nil {
			return n, matches[0], true
		}
	}

	if matches := wordThenCount.FindStringSubmatch(t); matches != nil {
		if n, err := strconv.Atoi(matches[1]); err == nil {
			return n, matches[0], true
		}
	}

	return 0, "", false
}
