package client

import (
	"context"

	"github.com/spf13/cobra"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
)

var (
	saveCriteria criteriaFlags
	saveRaidID   string
	savePageSize int
)

var getStateCmd = &cobra.Command{
	Use:   "get-state [owner-id]",
	Short: "Show an owner's saved filter criteria",
	Args:  cobra.ExactArgs(1),
	RunE:  getState,
}

var saveStateCmd = &cobra.Command{
	Use:   "save-state [owner-id]",
	Short: "Save filter criteria for an owner",
	Long: `Save filter criteria for an owner. Example:

  save-state user_1 --raid s72 --include 10005 --tier L --page-size 50`,
	Args: cobra.ExactArgs(1),
	RunE: saveState,
}

func init() {
	saveCriteria.register(saveStateCmd)
	saveStateCmd.Flags().StringVar(&saveRaidID, "raid", "", "Raid the criteria were made for")
	saveStateCmd.Flags().IntVar(&savePageSize, "page-size", 0, "Preferred page size")
}

func getState(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetFilterState(ctx, &raidv1alpha1.GetFilterStateRequest{OwnerID: args[0]})
	if err != nil {
		return callError("get filter state", err)
	}

	return printJSON(cmd, resp)
}

func saveState(cmd *cobra.Command, args []string) error {
	criteria, err := saveCriteria.build(cmd)
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

	resp, err := client.SaveFilterState(ctx, &raidv1alpha1.SaveFilterStateRequest{
		OwnerID:  args[0],
		RaidID:   saveRaidID,
		Criteria: criteria,
		PageSize: savePageSize,
	})
	if err != nil {
		return callError("save filter state", err)
	}

	return printJSON(cmd, resp)
}
