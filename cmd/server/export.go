package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ba-raid-api/internal/engine"
	"github.com/KirkDiggler/ba-raid-api/internal/engine/partyfilter"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
	"github.com/KirkDiggler/ba-raid-api/internal/export"
)

var (
	exportRaid     string
	exportOut      string
	exportCriteria string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a raid's filtered parties to an xlsx workbook",
	Long: `Fetch a raid's parties from the feed, apply the criteria and write the
result to a workbook with a Parties sheet and a Usage sheet.

Criteria are given as JSON, for example:
  --criteria '{"include":[[10005],[10004,53]],"tiers":["L"]}'`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportRaid, "raid", "", "Raid ID (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (defaults to <raid>.xlsx)")
	exportCmd.Flags().StringVar(&exportCriteria, "criteria", "", "Filter criteria as JSON")
	exportCmd.Flags().StringVar(&feedURL, "feed-url", "", "Base URL of the party data feed")
	_ = exportCmd.MarkFlagRequired("raid")
}

// parseCriteria decodes and validates --criteria. Empty means no filter.
func parseCriteria(raw string) (partyfilter.Criteria, error) {
	var criteria partyfilter.Criteria
	if raw == "" {
		return criteria, nil
	}
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return criteria, errors.InvalidArgumentf("invalid criteria JSON: %v", err)
	}
	// video scores only come from stored analyses
	criteria.YoutubeOnly = false
	criteria.VideoScores = nil

	if err := criteria.Validate(); err != nil {
		return criteria, err
	}
	return criteria, nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	slog.SetDefault(newLogger(os.Stderr, cfg.Log))

	criteria, err := parseCriteria(exportCriteria)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = exportRaid + ".xlsx"
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Feed.Timeout*2)
	defer cancel()

	feedClient, err := newFeedClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %w", err)
	}
	eng, err := engine.New(&engine.Config{Thresholds: cfg.Thresholds})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	feed, err := feedClient.GetParties(ctx, exportRaid)
	if err != nil {
		return fmt.Errorf("failed to load parties for %s: %w", exportRaid, err)
	}

	filtered, err := eng.FilterParties(ctx, &engine.FilterPartiesInput{
		Parties:  feed.Parties,
		Criteria: criteria,
	})
	if err != nil {
		return fmt.Errorf("failed to filter parties: %w", err)
	}

	names, err := feedClient.GetStudentNames(ctx)
	if err != nil {
		// names only decorate the workbook
		slog.Warn("student names unavailable, exporting IDs", "error", err)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() { _ = f.Close() }()

	if err := export.Write(f, &export.Input{
		Parties:    filtered.Parties,
		Names:      names,
		Thresholds: eng.Thresholds(),
	}); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	slog.Info("exported parties",
		"raid", exportRaid,
		"matched", len(filtered.Parties),
		"total", len(feed.Parties),
		"file", out)
	return nil
}
