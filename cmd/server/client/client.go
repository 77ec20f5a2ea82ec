// Package client provides commands that call a running raid API server
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	raidv1alpha1 "github.com/KirkDiggler/ba-raid-api/internal/api/raid/v1alpha1"
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the raid API",
	Long:  `Client commands call a running raid API server over gRPC and print the responses as JSON.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Party commands
	ClientCmd.AddCommand(listPartiesCmd)
	ClientCmd.AddCommand(filterOptionsCmd)
	ClientCmd.AddCommand(statsCmd)

	// Saved filter state
	ClientCmd.AddCommand(getStateCmd)
	ClientCmd.AddCommand(saveStateCmd)

	// Video analyses
	ClientCmd.AddCommand(submitVideoCmd)
	ClientCmd.AddCommand(listVideosCmd)
	ClientCmd.AddCommand(deleteVideoCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createRaidClient creates a raid service client
func createRaidClient() (raidv1alpha1.RaidServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return raidv1alpha1.NewRaidServiceClient(conn), cleanup, nil
}

// callError turns a gRPC failure into a readable message, including field
// level validation details when the server sent them
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if !errors.IsInvalidArgument(converted) {
		return fmt.Errorf("failed to %s: %w", action, converted)
	}
	if fields, ok := errors.GetMeta(converted)[errors.ValidationMetaKey].(map[string]any); ok {
		return fmt.Errorf("failed to %s: %s %v", action, errors.GetMessage(converted), fields)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
