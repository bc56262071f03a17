package cache

// Cache defines the interface for the durable key-value namespace backing the
// extraction cache. Values never expire: a cached extraction is trusted until
// the namespace is cleared externally, a deliberate tradeoff that bounds
// backend cost.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Clear() error
}

const (
	claimKeyPrefix = "arbiter:claims:v1:"
	lastFetchKey   = "arbiter:last_fetch:v1"
)

// ClaimKey builds the logical cache key for an entry's extracted claims. The
// prefix keeps the namespace collision-free against unrelated stored data.
func ClaimKey(entryLink string) string {
	return claimKeyPrefix + entryLink
}
