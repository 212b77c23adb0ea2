package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/meetup-soon/internal/artifact"
	"github.com/pfrederiksen/meetup-soon/internal/card"
	"github.com/pfrederiksen/meetup-soon/internal/config"
	"github.com/pfrederiksen/meetup-soon/internal/logger"
	"github.com/pfrederiksen/meetup-soon/internal/pipeline"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	// ExitDegraded signals that a feed was written but it carries a
	// diagnostic entry (source blocked, or nothing passed the filter).
	ExitDegraded = 2
)

var (
	flagInput     string
	flagInputJSON string
	flagURL       string
	flagConfig    string
	flagOutDir    string
	flagWindow    int
	flagMaxItems  int
	flagSort      string
	flagTimezone  string
	flagFallback  string
	flagOrigin    string
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meetup-soon",
		Short: "Generate an RSS feed of online events starting soon",
		Long: `Turns a rendered snapshot of the Meetup "starting soon" listings page
into a deduplicated, time-filtered RSS feed plus a debug.json dump.

The snapshot comes from a rendering collaborator: pass its JSON dump with
--input-json, its rendered HTML with --input, or a published snapshot URL
with --url. With no source flag, a JSON dump is read from stdin.`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Rendered HTML snapshot file")
	cmd.Flags().StringVar(&flagInputJSON, "input-json", "", "Snapshot JSON dump file")
	cmd.Flags().StringVar(&flagURL, "url", "", "URL of a published rendered snapshot")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default: XDG config dir)")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", "", "Output directory for feed.xml and debug.json")
	cmd.Flags().IntVar(&flagWindow, "window", 0, "Inclusion window in minutes")
	cmd.Flags().IntVar(&flagMaxItems, "max-items", 0, "Maximum number of feed items")
	cmd.Flags().StringVar(&flagSort, "sort", "", "Sort order: chronological or attendance")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "Reference time zone identifier")
	cmd.Flags().StringVar(&flagFallback, "fallback", "", "Policy for unresolvable times: include or exclude")
	cmd.Flags().StringVar(&flagOrigin, "origin", "", "Site origin for resolving relative links")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagsMutuallyExclusive("input", "input-json", "url")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	// Captured once; every window decision in this run sees the same clock.
	now := time.Now()

	result, err := pipeline.Run(snap, cfg, now)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	writer, err := artifact.New(cfg.OutDir)
	if err != nil {
		return err
	}
	if err := writer.WriteDebug(snap); err != nil {
		logger.Warn("could not write debug dump", logger.Fields{"path": writer.DebugPath()})
	}
	if err := writer.WriteFeed(result.Document); err != nil {
		return err
	}

	logger.Info("feed generated", logger.Fields{
		"page_title": snap.PageTitle,
		"anchors":    result.Anchors,
		"extracted":  result.Extracted,
		"kept":       result.Kept,
		"status":     string(result.Status),
		"path":       writer.FeedPath(),
	})

	if result.Status != pipeline.StatusOK {
		os.Exit(ExitDegraded)
	}
	os.Exit(ExitSuccess)
	return nil
}

// loadConfig merges defaults, the config file, and any changed flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("window") {
		cfg.WindowMinutes = flagWindow
	}
	if cmd.Flags().Changed("max-items") {
		cfg.MaxItems = flagMaxItems
	}
	if cmd.Flags().Changed("sort") {
		cfg.Sort = flagSort
	}
	if cmd.Flags().Changed("timezone") {
		cfg.Timezone = flagTimezone
	}
	if cmd.Flags().Changed("fallback") {
		cfg.Fallback = flagFallback
	}
	if cmd.Flags().Changed("origin") {
		cfg.SiteOrigin = flagOrigin
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = flagOutDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSnapshot reads the raw card batch from whichever source was selected.
func loadSnapshot() (*card.Snapshot, error) {
	switch {
	case flagURL != "":
		logger.Debug("fetching snapshot", logger.Fields{"url": flagURL})
		return card.NewFetcher(flagURL).Fetch()

	case flagInput != "":
		f, err := os.Open(flagInput)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot file: %w", err)
		}
		defer f.Close()
		return card.ExtractHTML(f)

	case flagInputJSON != "":
		f, err := os.Open(flagInputJSON)
		if err != nil {
			return nil, fmt.Errorf("opening snapshot dump: %w", err)
		}
		defer f.Close()
		return card.DecodeJSON(f)

	default:
		return card.DecodeJSON(os.Stdin)
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
