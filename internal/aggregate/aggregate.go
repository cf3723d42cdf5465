// Package aggregate provides the group-by-key-and-accumulate step behind the
// dashboard charts and the payout summary. The charts (count articles per
// source, per category, per day) and the per-author payout rollup are the
// same loop with different key and combine functions, so it lives here once.
package aggregate

// Grouped is an insertion-ordered mapping: keys appear in the order they
// were first seen while aggregating.
type Grouped[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// Keys returns the keys in first-seen order. The returned slice is shared;
// callers must not mutate it.
func (g *Grouped[K, V]) Keys() []K { return g.keys }

// Get looks up the value for a key.
func (g *Grouped[K, V]) Get(k K) (V, bool) {
	v, ok := g.vals[k]
	return v, ok
}

// Len reports the number of distinct keys.
func (g *Grouped[K, V]) Len() int { return len(g.keys) }

// Each calls fn for every key/value pair in first-seen key order.
func (g *Grouped[K, V]) Each(fn func(K, V)) {
	for _, k := range g.keys {
		fn(k, g.vals[k])
	}
}

// Aggregate folds items into per-key accumulators. keysOf may yield zero keys
// (the item lands in no bucket) or several (the item counts once per key).
// Accumulation for each key starts from seed and applies combine once per
// (item, key) attribution.
func Aggregate[T any, K comparable, V any](items []T, keysOf func(T) []K, seed V, combine func(V, T) V) *Grouped[K, V] {
	g := &Grouped[K, V]{vals: make(map[K]V)}
	for _, it := range items {
		for _, k := range keysOf(it) {
			v, ok := g.vals[k]
			if !ok {
				g.keys = append(g.keys, k)
				v = seed
			}
			g.vals[k] = combine(v, it)
		}
	}
	return g
}
