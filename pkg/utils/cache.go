package utils

import (
	"sync"
	"time"
)

// In-memory TTL cache backing refresh-token tracking. sync.Map keeps it
// safe under concurrent logins.
var memoryCache sync.Map

type cacheItem struct {
	value      string
	expiration int64
}

// SetCache stores a value for the given TTL.
func SetCache(key, value string, ttl time.Duration) {
	memoryCache.Store(key, cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl).Unix(),
	})
}

// GetCache returns the value if present and not yet expired. Expired
// entries are lazily deleted.
func GetCache(key string) (string, bool) {
	val, ok := memoryCache.Load(key)
	if !ok {
		return "", false
	}

	item := val.(cacheItem)
	if time.Now().Unix() > item.expiration {
		memoryCache.Delete(key)
		return "", false
	}

	return item.value, true
}

// DeleteCache removes a key, used when rotating refresh tokens.
func DeleteCache(key string) {
	memoryCache.Delete(key)
}
