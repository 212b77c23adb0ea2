// Package event turns raw scraped cards into canonical event records.
//
// Every input field on a card is unreliable: timestamps may be absolute,
// relative, or missing; attendance wording varies; identity must be inferred
// from the link. Resolution is therefore best-effort throughout — a field
// that fails to parse stays absent on the record rather than failing the
// card, and only minimum validity (a link and a usable title) can reject a
// card outright.
package event
