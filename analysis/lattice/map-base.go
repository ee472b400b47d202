package lattice

import (
	"log"

	"github.com/benbjohnson/immutable"
)

// baseMap is the shared representation of map-shaped lattice elements:
// an immutable map from keys to elements of a range lattice.
type baseMap[K any] struct {
	element
	mp *immutable.Map[K, Element]
}

func (m baseMap[K]) Size() int {
	return m.mp.Len()
}

// Get performs a lookup in the map. The returned boolean indicates
// whether the given key was found.
func (m baseMap[K]) Get(k K) (Element, bool) {
	return m.mp.Get(k)
}

func (m baseMap[K]) GetOrDefault(k K, def Element) Element {
	if v, found := m.Get(k); found {
		return v
	}
	return def
}

func (m baseMap[K]) GetUnsafe(k K) Element {
	if v, found := m.Get(k); found {
		return v
	}

	log.Fatalf("GetUnsafe: %v not found", k)
	panic("unreachable")
}

func (m baseMap[K]) Update(k K, e Element) baseMap[K] {
	m.mp = m.mp.Set(k, e)
	return m
}

func (m baseMap[K]) Remove(k K) baseMap[K] {
	m.mp = m.mp.Delete(k)
	return m
}

func (m baseMap[K]) ForEach(do func(K, Element)) {
	for iter := m.mp.Iterator(); !iter.Done(); {
		k, v, _ := iter.Next()
		do(k, v)
	}
}

func (m baseMap[K]) Find(pred func(k K, e Element) bool) (k K, e Element, found bool) {
	for iter := m.mp.Iterator(); !iter.Done(); {
		k, v, _ := iter.Next()
		if pred(k, v) {
			return k, v, true
		}
	}

	return
}

// monoEq checks two base maps for equality: equal key sets with equal
// values at every key.
func (e1 baseMap[K]) monoEq(e2 baseMap[K]) bool {
	if e1.mp == e2.mp {
		return true
	} else if e1.Size() != e2.Size() {
		return false
	}

	for iter := e1.mp.Iterator(); !iter.Done(); {
		k, v1, _ := iter.Next()
		v2, found := e2.mp.Get(k)
		if !found || !v1.eq(v2) {
			return false
		}
	}

	return true
}

// monoLeq computes the subsumption order on base maps: every key present
// in the left map must be present in the right map bound to a value that
// subsumes the left one. Keys absent from the left map are unconstrained.
func (e1 baseMap[K]) monoLeq(e2 baseMap[K]) bool {
	if e1.mp == e2.mp {
		return true
	} else if e1.Size() > e2.Size() {
		return false
	}

	for iter := e1.mp.Iterator(); !iter.Done(); {
		k, v1, _ := iter.Next()
		v2, found := e2.mp.Get(k)
		if !found || !v1.leq(v2) {
			return false
		}
	}

	return true
}
