package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
)

var (
	videoScore int64
	videoURL   string
	videoTitle string
	videoParty string
)

var submitVideoCmd = &cobra.Command{
	Use:   "submit-video [raid-id]",
	Short: "Link a YouTube video to a party lineup",
	Long: `Link a YouTube video to a party lineup. Sub-parties are separated by ";"
and slot codes by ",". Example:

  submit-video s72 --score 45000000 --url https://youtu.be/dQw4w9WgXcQ \
    --party "10005530,20024500,0,0,0,10004521"`,
	Args: cobra.ExactArgs(1),
	RunE: submitVideo,
}

var listVideosCmd = &cobra.Command{
	Use:   "list-videos [raid-id]",
	Short: "List a raid's video analyses",
	Args:  cobra.ExactArgs(1),
	RunE:  listVideos,
}

var deleteVideoCmd = &cobra.Command{
	Use:   "delete-video [analysis-id]",
	Short: "Delete a video analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteVideo,
}

func init() {
	submitVideoCmd.Flags().Int64Var(&videoScore, "score", 0, "Clear score shown in the video")
	submitVideoCmd.Flags().StringVar(&videoURL, "url", "", "YouTube URL")
	submitVideoCmd.Flags().StringVar(&videoTitle, "title", "", "Optional title")
	submitVideoCmd.Flags().StringVar(&videoParty, "party", "", "Slot codes of the lineup")
	_ = submitVideoCmd.MarkFlagRequired("score")
	_ = submitVideoCmd.MarkFlagRequired("url")
	_ = submitVideoCmd.MarkFlagRequired("party")
}

func submitVideo(cmd *cobra.Command, args []string) error {
	partyData, err := parsePartyData(videoParty)
	if err != nil {
		return fmt.Errorf("invalid --party: %w", err)
	}

	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SubmitVideoAnalysis(ctx, &raidv1alpha1.SubmitVideoAnalysisRequest{
		RaidID:     args[0],
		Score:      videoScore,
		YoutubeURL: videoURL,
		Title:      videoTitle,
		PartyData:  partyData,
	})
	if err != nil {
		return callError("submit video analysis", err)
	}

	return printJSON(cmd, resp)
}

func listVideos(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListVideoAnalyses(ctx, &raidv1alpha1.ListVideoAnalysesRequest{RaidID: args[0]})
	if err != nil {
		return callError("list video analyses", err)
	}

	return printJSON(cmd, resp)
}

func deleteVideo(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRaidClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DeleteVideoAnalysis(ctx, &raidv1alpha1.DeleteVideoAnalysisRequest{ID: args[0]})
	if err != nil {
		return callError("delete video analysis", err)
	}

	return printJSON(cmd, resp)
}
