package client

import (
	"context"

	"github.com/spf13/cobra"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
)

var (
	listCriteria  criteriaFlags
	listOwnerID   string
	listPage      int
	listPageSize  int
	optsCriteria  criteriaFlags
	statsCriteria criteriaFlags
	statsTop      int
)

var listPartiesCmd = &cobra.Command{
	Use:   "list-parties [raid-id]",
	Short: "List parties matching the filter criteria",
	Long: `List one page of parties for a raid. Examples:

  list-parties s72 --include 10005:53 --exclude 10010
  list-parties s72 --tier L --party-count 1-2 --page 2
  list-parties s72 --owner user_1   # use saved criteria`,
	Args: cobra.ExactArgs(1),
	RunE: listParties,
}

var filterOptionsCmd = &cobra.Command{
	Use:   "filter-options [raid-id]",
	Short: "Show the member and assist filter options",
	Long: `Show the member and assist pickers for a raid. Without criteria flags the
counts come from the feed; with them the counts cover matching parties only.`,
	Args: cobra.ExactArgs(1),
	RunE: filterOptions,
}

var statsCmd = &cobra.Command{
	Use:   "stats [raid-id]",
	Short: "Show usage statistics over matching parties",
	Args:  cobra.ExactArgs(1),
	RunE:  statistics,
}

func init() {
	listCriteria.register(listPartiesCmd)
	listPartiesCmd.Flags().StringVar(&listOwnerID, "owner", "", "Owner whose saved criteria apply when no criteria flags are set")
	listPartiesCmd.Flags().IntVar(&listPage, "page", 1, "Page number, starting at 1")
	listPartiesCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Page size (server default when 0)")

	optsCriteria.register(filterOptionsCmd)

	statsCriteria.register(statsCmd)
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "Number of top members and assists to show")
}

func listParties(cmd *cobra.Command, args []string) error {
	criteria, err := listCriteria.build(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListParties(ctx, &raidv1alpha1.ListPartiesRequest{
		RaidID:   args[0],
		Criteria: criteria,
		OwnerID:  listOwnerID,
		Page:     listPage,
		PageSize: listPageSize,
	})
	if err != nil {
		return callError("list parties", err)
	}

	return printJSON(cmd, resp)
}

func filterOptions(cmd *cobra.Command, args []string) error {
	criteria, err := optsCriteria.build(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetFilterOptions(ctx, &raidv1alpha1.GetFilterOptionsRequest{
		RaidID:   args[0],
		Criteria: criteria,
	})
	if err != nil {
		return callError("get filter options", err)
	}

	return printJSON(cmd, resp)
}

func statistics(cmd *cobra.Command, args []string) error {
	criteria, err := statsCriteria.build(cmd)
	if err != nil {
		return err
	}

	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetStatistics(ctx, &raidv1alpha1.GetStatisticsRequest{
		RaidID:   args[0],
		Criteria: criteria,
		Top:      statsTop,
	})
	if err != nil {
		return callError("get statistics", err)
	}

	return printJSON(cmd, resp)
}
