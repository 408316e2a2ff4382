package services

import (
	"context"
	"fmt"
	"time"

	localCache "github.com/quillworks/quill/pkg/internal/cache"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/spf13/viper"
)

const globalFeedCacheTag = "global-feed"

// GlobalFeedLifetime is the window during which a rendered global feed
// page is served as-is, regardless of writes happening underneath.
func GlobalFeedLifetime() time.Duration {
	if lifetime := viper.GetDuration("feed.cache_lifetime"); lifetime > 0 {
		return lifetime
	}
	return 20 * time.Second
}

func globalFeedCacheKey(page int) string {
	return fmt.Sprintf("global-feed#%d", page)
}

func newFeedCache() *cache.Cache[[]byte] {
	return cache.New[[]byte](localCache.S)
}

// GetCachedGlobalFeed returns the rendered page from the cache window, if
// one is still alive.
func GetCachedGlobalFeed(page int) ([]byte, bool) {
	payload, err := newFeedCache().Get(context.Background(), globalFeedCacheKey(page))
	if err != nil || len(payload) == 0 {
		return nil, false
	}
	return payload, true
}

func CacheGlobalFeed(page int, payload []byte) {
	_ = newFeedCache().Set(
		context.Background(),
		globalFeedCacheKey(page),
		payload,
		store.WithExpiration(GlobalFeedLifetime()),
		store.WithTags([]string{globalFeedCacheTag}),
	)
}

// ClearGlobalFeedCache drops every cached page so the next request
// observes current state before the window expires on its own.
func ClearGlobalFeedCache() error {
	return newFeedCache().Invalidate(
		context.Background(),
		store.WithInvalidateTags([]string{globalFeedCacheTag}),
	)
}
