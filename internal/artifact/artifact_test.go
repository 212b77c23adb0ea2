package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/meetup-soon/internal/card"
)

func TestWriteFeed(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "public"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc := "<?xml version=\"1.0\"?><rss/>"
	if err := w.WriteFeed(doc); err != nil {
		t.Fatalf("WriteFeed: %v", err)
	}

	data, err := os.ReadFile(w.FeedPath())
	if err != nil {
		t.Fatalf("reading feed back: %v", err)
	}
	if string(data) != doc {
		t.Errorf("expected feed round-trip, got %q", string(data))
	}
}

func TestWriteDebug(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap := &card.Snapshot{
		PageTitle:   "Find Events",
		AnchorCount: 3,
		Extracted:   1,
		Cards: []card.Card{
			{Title: "Intro to Rust", URL: "/events/abc123", WhenText: "in 30 minutes"},
		},
	}

	if err := w.WriteDebug(snap); err != nil {
		t.Fatalf("WriteDebug: %v", err)
	}

	data, err := os.ReadFile(w.DebugPath())
	if err != nil {
		t.Fatalf("reading dump back: %v", err)
	}

	var decoded card.Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump should be valid JSON: %v", err)
	}
	if decoded.AnchorCount != 3 || len(decoded.Cards) != 1 {
		t.Errorf("expected dump to round-trip, got %+v", decoded)
	}
}

func TestNewCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	w, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := w.WriteFeed("x"); err != nil {
		t.Fatalf("WriteFeed into nested dir: %v", err)
	}
}
