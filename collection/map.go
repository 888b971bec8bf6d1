package collection

import (
	"fmt"
	"slices"

	"github.com/viant/traversal"
)

// Entry is a map element
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

// Map is a removable collection of map entries.
// Keys are captured when the iterator is created; removal deletes the key from the map.
type Map[K comparable, V any] struct {
	data    map[K]V
	compare func(a, b K) int
}

// MapOf creates a Map visiting entries in Go map order
func MapOf[K comparable, V any](data map[K]V) *Map[K, V] {
	return &Map[K, V]{data: data}
}

// SortedMapOf creates a Map visiting entries in key order defined by compare
func SortedMapOf[K comparable, V any](data map[K]V, compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{data: data, compare: compare}
}

// Iterator implements traversal.Collection
func (m *Map[K, V]) Iterator() traversal.Iterator[Entry[K, V]] {
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	if m.compare != nil {
		slices.SortFunc(keys, m.compare)
	}
	return &mapIterator[K, V]{data: m.data, keys: keys, pos: -1}
}

type mapIterator[K comparable, V any] struct {
	data    map[K]V
	keys    []K
	pos     int
	removed bool
}

func (i *mapIterator[K, V]) Next() bool {
	i.removed = false
	for i.pos < len(i.keys) {
		i.pos++
		if i.pos == len(i.keys) {
			return false
		}
		if _, ok := i.data[i.keys[i.pos]]; ok {
			return true
		}
	}
	return false
}

func (i *mapIterator[K, V]) Value() Entry[K, V] {
	if i.pos < 0 || i.pos >= len(i.keys) {
		return Entry[K, V]{}
	}
	key := i.keys[i.pos]
	return Entry[K, V]{Key: key, Value: i.data[key]}
}

func (i *mapIterator[K, V]) Remove() error {
	if i.removed || i.pos < 0 || i.pos >= len(i.keys) {
		return errNoCurrent
	}
	delete(i.data, i.keys[i.pos])
	i.removed = true
	return nil
}
