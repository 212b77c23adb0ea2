package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/meetup-soon/internal/card"
)

// Output file names inside the output directory.
const (
	FeedFile  = "feed.xml"
	DebugFile = "debug.json"
)

// Writer persists run outputs: the feed document and the raw-extraction
// debug dump operators use to diagnose filtering decisions.
type Writer struct {
	outDir string
}

// New creates a Writer rooted at outDir, creating the directory if needed.
func New(outDir string) (*Writer, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{
		outDir: outDir,
	}, nil
}

// FeedPath returns the full path of the feed document.
func (w *Writer) FeedPath() string {
	return filepath.Join(w.outDir, FeedFile)
}

// DebugPath returns the full path of the debug dump.
func (w *Writer) DebugPath() string {
	return filepath.Join(w.outDir, DebugFile)
}

// WriteFeed writes the serialized feed document.
func (w *Writer) WriteFeed(document string) error {
	if err := os.WriteFile(w.FeedPath(), []byte(document), 0644); err != nil {
		return fmt.Errorf("writing feed: %w", err)
	}
	return nil
}

// WriteDebug writes the snapshot back out as indented JSON.
func (w *Writer) WriteDebug(snap *card.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding debug dump: %w", err)
	}
	if err := os.WriteFile(w.DebugPath(), data, 0644); err != nil {
		return fmt.Errorf("writing debug dump: %w", err)
	}
	return nil
}
