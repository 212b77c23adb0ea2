package event

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Patterns for the free-text time strategies. Card text is collapsed to
// single spaces before matching.
var (
	spacePattern    = regexp.MustCompile(`\s+`)
	relativePattern = regexp.MustCompile(`(?i)\bin\s+(\d{1,3})\s*(minute|minutes|hour|hours)\b`)
	todayPattern    = regexp.MustCompile(`(?i)\btoday\b`)
	tomorrowPattern = regexp.MustCompile(`(?i)\btomorrow\b`)
)

// whenStrategy attempts to resolve collapsed free text into a start time.
// A zero return means "no match", never an error.
type whenStrategy func(text string, now time.Time, loc *time.Location) time.Time

// whenStrategies are tried in priority order; the first non-zero result wins.
var whenStrategies = []struct {
	name string
	fn   whenStrategy
}{
	{"relative", parseRelative},
	{"calendar", parseCalendar},
}

// ResolveStart resolves an event's start time into the reference zone.
//
// The machine-readable datetime attribute is trusted first when present.
// Otherwise the human-readable text is run through the strategy cascade:
// relative phrases ("in 30 minutes"), then today/tomorrow substitution plus
// a general date parse. Returns the zero time when nothing resolves; callers
// must treat that as a normal outcome.
func ResolveStart(machineTime, whenText string, now time.Time, loc *time.Location) time.Time {
	if attr := strings.TrimSpace(machineTime); attr != "" {
		if t := parseAbsolute(attr, loc); !t.IsZero() {
			return t
		}
	}

	text := collapseSpaces(whenText)
	if text == "" {
		return time.Time{}
	}

	for _, s := range whenStrategies {
		if t := s.fn(text, now, loc); !t.IsZero() {
			return t
		}
	}

	return time.Time{}
}

// parseAbsolute runs a general date/time parse, assuming the reference zone
// when the value carries none, and normalizes the result into it.
func parseAbsolute(text string, loc *time.Location) time.Time {
	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return time.Time{}
	}
	return t.In(loc)
}

// parseRelative resolves phrases like "in 15 minutes" or "in 1 hour" against
// the pipeline's captured now.
func parseRelative(text string, now time.Time, loc *time.Location) time.Time {
	matches := relativePattern.FindStringSubmatch(text)
	if matches == nil {
		return time.Time{}
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}
	}

	if strings.Contains(strings.ToLower(matches[2]), "hour") {
		return now.Add(time.Duration(n) * time.Hour)
	}
	return now.Add(time.Duration(n) * time.Minute)
}

// parseCalendar substitutes the words "today" and "tomorrow" with concrete
// dates and hands the result to the general parser.
func parseCalendar(text string, now time.Time, loc *time.Location) time.Time {
	text = todayPattern.ReplaceAllString(text, now.In(loc).Format("2006-01-02"))
	text = tomorrowPattern.ReplaceAllString(text, now.In(loc).AddDate(0, 0, 1).Format("2006-01-02"))
	return parseAbsolute(text, loc)
}

// RelativeMinutes extracts the magnitude, in minutes, of a relative phrase
// like "in 45 minutes" or "in 2 hours". Used by the window filter's lexical
// fallback when no instant resolved.
func RelativeMinutes(text string) (int, bool) {
	matches := relativePattern.FindStringSubmatch(collapseSpaces(text))
	if matches == nil {
		return 0, false
	}

	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}

	if strings.Contains(strings.ToLower(matches[2]), "hour") {
		return n * 60, true
	}
	return n, true
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
