// Command validate-counts scans stored node counts and reports snapshots
// that can no longer be loaded
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
)

const nodeIndexKey = "counts:nodes"

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning stored node counts...")

	iter := client.Scan(ctx, 0, countsrepo.SnapshotKey("*"), 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		if problem := check(ctx, client, key); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted counts found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		nodeID := strings.TrimPrefix(key, countsrepo.SnapshotKey(""))
		pipe := client.TxPipeline()
		pipe.Del(ctx, key)
		pipe.SRem(ctx, nodeIndexKey, nodeID)
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Deleted %s\n", key)
	}
	fmt.Println("\nCleanup complete!")
}

// check returns a description of what is wrong with the snapshot at key, or
// an empty string when it loads cleanly
func check(ctx context.Context, client *redis.Client, key string) string {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return fmt.Sprintf("read failed: %v", err)
	}

	snapshot, err := countsrepo.DecodeSnapshot(data)
	if err != nil {
		return err.Error()
	}

	if want := countsrepo.SnapshotKey(snapshot.NodeID); want != key {
		return fmt.Sprintf("node id %q belongs under %s", snapshot.NodeID, want)
	}

	if _, err := counts.FromRecords(snapshot.Records); err != nil {
		return err.Error()
	}

	indexed, err := client.SIsMember(ctx, nodeIndexKey, snapshot.NodeID).Result()
	if err != nil {
		return fmt.Sprintf("index check failed: %v", err)
	}
	if !indexed {
		return "missing from the node index"
	}
	return ""
}
