// Package cli implements the meetup-soon command line interface.
//
// The exit code reports the run outcome: 0 when real events were emitted,
// 2 when a feed was written but only carries a diagnostic entry, 1 on error.
package cli
