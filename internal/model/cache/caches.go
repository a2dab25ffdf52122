package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"

	"eag.dev/backend/internal/model"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/cache"
	"eag.dev/backend/internal/util/catalogstats"
)

type Flusher func() error

var (
	AccountByID *cache.Set[model.Account]

	CatalogStats *cache.Set[catalogstats.Stats]

	Facets *cache.Singular[types.Facets]

	once sync.Once

	FlusherMap map[string]Flusher
)

// Initialize binds the caches to the redis client. Subsequent calls are no-ops.
func Initialize(client *redis.Client) {
	once.Do(func() {
		cache.Initialize(client)
		initializeCaches()
	})
}

// Delete flushes the cache registered under name. Unknown names are ignored.
func Delete(name string) error {
	if flusher, ok := FlusherMap[name]; ok {
		return flusher()
	}
	return nil
}

func initializeCaches() {
	FlusherMap = make(map[string]Flusher)

	// account
	AccountByID = cache.NewSet[model.Account]("eag:account#accountId")
	FlusherMap["account#accountId"] = AccountByID.Flush

	// catalog stats snapshot, written by the stats worker
	CatalogStats = cache.NewSet[catalogstats.Stats]("eag:catalogStats")
	FlusherMap["catalogStats"] = CatalogStats.Flush

	// facets
	Facets = cache.NewSingular[types.Facets]("facets")
	FlusherMap["facets"] = func() error {
		Facets.Delete()
		return nil
	}
}
