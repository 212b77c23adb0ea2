// Package feed renders the final record set as an RSS 2.0 document.
//
// The document is regenerated in full on every run and is never empty: when
// the source is unreachable or everything was filtered out, a single
// diagnostic entry describes the condition instead of real events.
package feed
