// Package main is the entry point for the raid API server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ba-raid-api/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ba-raid-api",
	Short: "Blue Archive raid party API",
	Long:  `ba-raid-api serves filtered raid party records, filter options and usage statistics over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
