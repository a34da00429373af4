package cache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const keySeparator = "|"

// ViewCache holds derived views keyed by scope. A nil or zero-size cache
// stores nothing.
type ViewCache[V any] struct {
	entries *lru.Cache[string, V]
}

func New[V any](size int) (*ViewCache[V], error) {
	if size <= 0 {
		return &ViewCache[V]{}, nil
	}
	entries, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &ViewCache[V]{entries: entries}, nil
}

// Key joins scope parts; the first part is the invalidation prefix.
func Key(parts ...string) string {
	return strings.Join(parts, keySeparator)
}

func (c *ViewCache[V]) Get(key string) (V, bool) {
	if c == nil || c.entries == nil {
		var zero V
		return zero, false
	}
	return c.entries.Get(key)
}

func (c *ViewCache[V]) Add(key string, value V) {
	if c == nil || c.entries == nil {
		return
	}
	c.entries.Add(key, value)
}

// InvalidatePrefix removes every entry whose first key part is scope.
func (c *ViewCache[V]) InvalidatePrefix(scope string) int {
	if c == nil || c.entries == nil {
		return 0
	}
	prefix := scope + keySeparator
	removed := 0
	for _, key := range c.entries.Keys() {
		if strings.HasPrefix(key, prefix) && c.entries.Remove(key) {
			removed++
		}
	}
	return removed
}

func (c *ViewCache[V]) Len() int {
	if c == nil || c.entries == nil {
		return 0
	}
	return c.entries.Len()
}
