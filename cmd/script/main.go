package main

import (
	"context"
	"log"

	"harvestladder/cmd"
	"harvestladder/internal"
	"harvestladder/internal/logger"

	_ "github.com/lib/pq"
)

// one-shot scan job: check every active alert against live quotes,
// fire the crossed ones, and push notifications. meant for cron.
func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())

	hits, err := handler.ScannerService.ScanAndNotify(ctx)
	if err != nil {
		log.Fatal(err)
	}

	internal.Pprint(hits)
	logger.Info("scan complete: %d hit(s)", len(hits))
}
