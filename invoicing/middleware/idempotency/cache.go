package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/invoicing/model"
)

// retentionWindow is how long a completed response stays replayable. Client
// retries land within minutes; a day leaves room for manual replays.
const retentionWindow = 24 * time.Hour

// Cluster backs the idempotency keyspace. Entries are advisory: losing one
// only costs a duplicate pass through a write path that is itself guarded by
// database constraints.
var Cluster = cache.NewCluster("invoicing-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Keyspace stores one entry per (resource path, idempotency key) pair.
var Keyspace = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotent-requests/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(retentionWindow),
	},
)
