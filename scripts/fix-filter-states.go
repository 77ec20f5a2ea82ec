package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	redisclient "github.com/KirkDiggler/ba-raid-api/internal/redis"
	filterstate "github.com/KirkDiggler/ba-raid-api/internal/repositories/filter_state"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewClientFromURL(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for unreadable filter states...")

	iter := client.Scan(ctx, 0, "filter_state:*", 0).Iterator()

	var badKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var state filterstate.State
		if err := json.Unmarshal(data, &state); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s: %v\n", key, err)
			badKeys = append(badKeys, key)
			continue
		}

		if owner := strings.TrimPrefix(key, "filter_state:"); state.OwnerID != owner {
			fmt.Printf("✗ Owner mismatch in %s: stored %q\n", key, state.OwnerID)
			badKeys = append(badKeys, key)
			continue
		}

		// criteria saved before validation was enforced can still be invalid
		if err := state.Criteria.Validate(); err != nil {
			fmt.Printf("✗ Invalid criteria in %s: %v\n", key, err)
			badKeys = append(badKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d bad entries\n", checkedCount, len(badKeys))

	if len(badKeys) == 0 {
		fmt.Println("All filter states are readable!")
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range badKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range badKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
