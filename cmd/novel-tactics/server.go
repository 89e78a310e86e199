package main

import (
	"context"
	"time"

	"github.com/ericogr/novel-tactics/internal/api"
	"github.com/ericogr/novel-tactics/internal/config"
	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/logging"
	"github.com/ericogr/novel-tactics/internal/service"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// runPacer claims encounters whose enemy turn is due and dispatches
// ENEMY_TURN for each, publishing the new state to stream subscribers. It
// returns when ctx is cancelled.
func runPacer(ctx context.Context, repo storage.Repository, hub *api.StreamHub, s service.Settings, p config.Pacing, workerID string) {
	logging.Info("enemy turn pacer started", logging.Fields{constants.LogFieldWorkerID: workerID})
	ticker := time.NewTicker(p.ScanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		ids, err := repo.ClaimDueEnemyTurns(time.Now().UTC(), p.BatchSize, p.ClaimLease, workerID)
		if err != nil {
			logging.Error("pacer failed to claim due enemy turns", err, logging.Fields{constants.LogFieldWorkerID: workerID})
			continue
		}
		// one at a time, keeps sqlite writes serialised
		for _, id := range ids {
			rec, err := service.HandleDueEnemyTurn(repo, id, workerID, s)
			if err != nil {
				continue
			}
			hub.Publish(rec)
		}
	}
}
