package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/arbiterhq/arbiter/internal/model"
)

// ClaimStore is the typed extraction cache: claim lists keyed by entry link,
// plus the last-successful-fetch freshness cell the presentation layer reads.
type ClaimStore struct {
	backend Cache
}

// NewClaimStore wraps a cache backend
func NewClaimStore(backend Cache) *ClaimStore {
	return &ClaimStore{backend: backend}
}

// Get returns the previously extracted claims for an entry, if any
func (s *ClaimStore) Get(entryLink string) ([]model.Claim, bool) {
	data, found := s.backend.Get(ClaimKey(entryLink))
	if !found {
		return nil, false
	}

	var claims []model.Claim
	if err := json.Unmarshal(data, &claims); err != nil {
		// A corrupt record is treated as a miss so the next run re-extracts
		return nil, false
	}

	return claims, true
}

// Put stores the extracted claims for an entry. Callers only invoke this when
// extraction yielded at least one claim; fallback claims are never cached so a
// transient failure self-heals on the next run.
func (s *ClaimStore) Put(entryLink string, claims []model.Claim) error {
	data, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("marshal claims: %w", err)
	}
	return s.backend.Set(ClaimKey(entryLink), data)
}

// SetLastFetch overwrites the freshness cell with the given time
func (s *ClaimStore) SetLastFetch(t time.Time) error {
	return s.backend.Set(lastFetchKey, []byte(t.UTC().Format(time.RFC3339)))
}

// LastFetch reads the freshness cell
func (s *ClaimStore) LastFetch() (time.Time, bool) {
	data, found := s.backend.Get(lastFetchKey)
	if !found {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, string(data))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Clear drops the whole namespace
func (s *ClaimStore) Clear() error {
	return s.backend.Clear()
}
