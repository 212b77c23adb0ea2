package rank

import (
	"sort"

	"github.com/pfrederiksen/meetup-soon/internal/event"
)

// Order represents the available orderings for the final feed.
type Order string

const (
	// Chronological sorts ascending by resolved start time; records without
	// one sort last, keeping their original encounter order.
	Chronological Order = "chronological"
	// ByAttendance sorts descending by attendance count, absent counting
	// as zero; ties keep their original encounter order.
	ByAttendance Order = "attendance"
)

// Sort orders records in place. Sorting is stable so that encounter order
// breaks every tie deterministically.
func Sort(records []*event.Record, order Order) {
	switch order {
	case ByAttendance:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].AttendanceOrZero() > records[j].AttendanceOrZero()
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByStart(records[i], records[j])
		})
	}
}

// compareByStart reports whether record i should precede record j
// chronologically. Records without a start time always sort after those
// with one.
func compareByStart(i, j *event.Record) bool {
	if i.HasStart() && j.HasStart() {
		return i.Start.Before(j.Start)
	}
	if i.HasStart() {
		return true
	}
	return false
}

// Cap truncates records to at most max entries. Call it only after Sort:
// ranking must see the full candidate set.
func Cap(records []*event.Record, max int) []*event.Record {
	if max > 0 && len(records) > max {
		return records[:max]
	}
	return records
}
