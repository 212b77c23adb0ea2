// Package card defines the raw input contract with the rendering collaborator.
//
// A Snapshot carries the extracted event cards plus the diagnostic signals
// (anchor count, body snippet) used to tell a blocked or unrendered page from
// a genuinely quiet one. Snapshots can be decoded from the collaborator's
// JSON dump, extracted from rendered HTML with goquery, or fetched from a
// published snapshot URL with retry.
package card
