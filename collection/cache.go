package collection

import "sync"

// typeCache is a thread-safe map of computed type metadata
type typeCache[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

func newTypeCache[K comparable, V any]() *typeCache[K, V] {
	return &typeCache[K, V]{m: make(map[K]V)}
}

// getOrLoad returns the cached value for k, computing and storing it with load on a miss
func (c *typeCache[K, V]) getOrLoad(k K, load func(K) V) V {
	c.mux.RLock()
	v, ok := c.m[k]
	c.mux.RUnlock()
	if ok {
		return v
	}
	v = load(k)
	c.mux.Lock()
	c.m[k] = v
	c.mux.Unlock()
	return v
}
