// Package hmap implements a simple mutable hash map for key types that
// cannot be used with Go's built-in maps, such as structurally compared
// program fragments. Hash collisions are resolved with linked lists.
package hmap

import "github.com/AnimatedRNG/frap/utils"

type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

type Map[K, V any] struct {
	hasher utils.Hasher[K]
	mp     map[uint32]*node[K, V]
	size   int
}

// NewMap creates an empty map with the given hasher. The order of V and K
// is swapped since K can be inferred from the argument.
func NewMap[V, K any](hasher utils.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{
		hasher: hasher,
		mp:     make(map[uint32]*node[K, V]),
	}
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) Set(key K, value V) {
	h := m.hasher.Hash(key)
	snode, found := m.mp[h]
	if !found {
		m.mp[h] = &node[K, V]{key, value, nil}
		m.size++
		return
	}

	for {
		if m.hasher.Equal(key, snode.key) {
			snode.value = value
			return
		}

		if next := snode.next; next == nil {
			// Hash collision
			snode.next = &node[K, V]{key, value, nil}
			m.size++
			return
		} else {
			snode = next
		}
	}
}

func (m *Map[K, V]) GetOk(key K) (res V, ok bool) {
	for node := m.mp[m.hasher.Hash(key)]; node != nil; node = node.next {
		if m.hasher.Equal(key, node.key) {
			return node.value, true
		}
	}

	return
}

func (m *Map[K, V]) Get(key K) V {
	v, _ := m.GetOk(key)
	return v
}
