package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent work on the same key. Only one job runs for a given key while
// other callers wait for its result.

import "golang.org/x/sync/singleflight"

// EnemyTurnGroup deduplicates ENEMY_TURN dispatches keyed by encounter id.
// Overlapping pacer ticks that claim the same encounter resolve a single
// enemy turn.
var EnemyTurnGroup singleflight.Group
