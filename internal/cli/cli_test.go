package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/meetup-soon/internal/config"
)

// resetFlags restores package flag state after a test touches it.
func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagInput = ""
		flagInputJSON = ""
		flagURL = ""
		flagConfig = ""
		flagOutDir = ""
		flagWindow = 0
		flagMaxItems = 0
		flagSort = ""
		flagTimezone = ""
		flagFallback = ""
		flagOrigin = ""
		flagVerbose = false
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	resetFlags(t)
	cmd := NewRootCmd()
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.WindowMinutes != config.DefaultWindowMinutes {
		t.Errorf("expected default window, got %d", cfg.WindowMinutes)
	}
	if cfg.Sort != config.SortChronological {
		t.Errorf("expected default sort, got %s", cfg.Sort)
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	resetFlags(t)
	cmd := NewRootCmd()
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

	if err := cmd.Flags().Set("window", "45"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("sort", "attendance"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("fallback", "exclude"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.WindowMinutes != 45 {
		t.Errorf("expected window 45 from flag, got %d", cfg.WindowMinutes)
	}
	if cfg.Sort != config.SortAttendance {
		t.Errorf("expected sort attendance from flag, got %s", cfg.Sort)
	}
	if cfg.Fallback != config.FallbackExclude {
		t.Errorf("expected fallback exclude from flag, got %s", cfg.Fallback)
	}
	// Untouched settings keep their defaults
	if cfg.MaxItems != config.DefaultMaxItems {
		t.Errorf("expected default max items, got %d", cfg.MaxItems)
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	resetFlags(t)
	cmd := NewRootCmd()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window_minutes: 30\nmax_items: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	if err := cmd.Flags().Set("window", "75"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.WindowMinutes != 75 {
		t.Errorf("flag should beat file, got window %d", cfg.WindowMinutes)
	}
	if cfg.MaxItems != 5 {
		t.Errorf("file should beat default, got max items %d", cfg.MaxItems)
	}
}

func TestLoadConfigRejectsInvalidFlag(t *testing.T) {
	resetFlags(t)
	cmd := NewRootCmd()
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")

	if err := cmd.Flags().Set("sort", "alphabetical"); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(cmd); err == nil {
		t.Error("expected validation error for unknown sort order")
	}
}
