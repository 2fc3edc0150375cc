package analytics

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Memo is a read-through cache for derived analytics. Concurrent requests for
// the same key compute at most once (singleflight); completed results are
// held in a bounded LRU. Keys must capture every input of the computation, so
// a cached entry can never be stale with respect to its inputs.
type Memo struct {
	cache *lru.Cache[string, any]
	group singleflight.Group
}

// NewMemo creates a memo holding up to size entries.
func NewMemo(size int) (*Memo, error) {
	cache, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memo cache: %w", err)
	}
	return &Memo{cache: cache}, nil
}

// Do returns the cached value for key, or runs compute exactly once across
// concurrent callers and caches the result. Errors are never cached.
func (m *Memo) Do(key string, compute func() (any, error)) (any, bool, error) {
	if v, ok := m.cache.Get(key); ok {
		return v, true, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// Re-check under singleflight: another caller may have populated the
		// cache while we waited.
		if v, ok := m.cache.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		m.cache.Add(key, v)
		return v, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}

// Invalidate drops every cached entry. Called after a stat sync or a scoring
// configuration change.
func (m *Memo) Invalidate() {
	m.cache.Purge()
}

// Len reports the number of cached entries.
func (m *Memo) Len() int {
	return m.cache.Len()
}

// MemoKey builds a canonical cache key from a set of player IDs plus the
// remaining computation parameters. IDs are copied and sorted so the key is
// independent of input order; the whole tuple is FNV-hashed.
func MemoKey(playerIDs []string, parts ...string) string {
	ids := make([]string, len(playerIDs))
	copy(ids, playerIDs)
	sort.Strings(ids)

	h := fnv.New64a()
	h.Write([]byte(strings.Join(ids, ",")))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%x", h.Sum64())
}
