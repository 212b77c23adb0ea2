package card

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON reads a snapshot in the collaborator's debug.json dump format.
func DecodeJSON(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot JSON: %w", err)
	}

	// Older dumps omit the extracted count; derive it from the cards.
	if snap.Extracted == 0 && len(snap.Cards) > 0 {
		snap.Extracted = len(snap.Cards)
	}

	return &snap, nil
}
