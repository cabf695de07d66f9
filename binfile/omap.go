package binfile

import (
	"fmt"
	"iter"
	"slices"

	"github.com/wippyai/plbin/errors"
)

// OrderedMap is a map that iterates in insertion order.
// The zero value is an empty map ready to use.
type OrderedMap[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

// Set stores v under k. A new key is appended to the order;
// an existing key keeps its place.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if m.vals == nil {
		m.vals = make(map[K]V)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Delete removes k and reports whether it was present.
func (m *OrderedMap[K, V]) Delete(k K) bool {
	if _, ok := m.vals[k]; !ok {
		return false
	}
	delete(m.vals, k)
	m.keys = slices.DeleteFunc(m.keys, func(x K) bool { return x == k })
	return true
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values iterates values in insertion order.
func (m *OrderedMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, k := range m.keys {
			if !yield(m.vals[k]) {
				return
			}
		}
	}
}

// All iterates entries in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// EncodeOrderedMap writes a u64 pair count followed by the pairs in
// insertion order.
func EncodeOrderedMap[K comparable, V any](f *File, m OrderedMap[K, V], encK EncodeFunc[K], encV EncodeFunc[V]) error {
	f.writeLen(m.Len())
	for k, v := range m.All() {
		if err := encK(f, k); err != nil {
			return err
		}
		if err := encV(f, v); err != nil {
			return errPathKey(err, k)
		}
	}
	return nil
}

// DecodeOrderedMap reads count-prefixed pairs; stream order becomes
// iteration order.
func DecodeOrderedMap[K comparable, V any](f *File, decK DecodeFunc[K], decV DecodeFunc[V]) (OrderedMap[K, V], error) {
	var m OrderedMap[K, V]
	n, err := f.readLen()
	if err != nil {
		return m, err
	}
	if n == 0 {
		return m, nil
	}
	m.keys = make([]K, 0, f.capHint(n))
	m.vals = make(map[K]V, f.capHint(n))
	for range n {
		k, err := decK(f)
		if err != nil {
			return OrderedMap[K, V]{}, err
		}
		v, err := decV(f)
		if err != nil {
			return OrderedMap[K, V]{}, errPathKey(err, k)
		}
		if _, dup := m.vals[k]; dup {
			return OrderedMap[K, V]{}, duplicateKey(k)
		}
		m.keys = append(m.keys, k)
		m.vals[k] = v
	}
	return m, nil
}

// OrderedMapEncoder builds an encoder for OrderedMap[K, V].
func OrderedMapEncoder[K comparable, V any](encK EncodeFunc[K], encV EncodeFunc[V]) EncodeFunc[OrderedMap[K, V]] {
	return func(f *File, m OrderedMap[K, V]) error {
		return EncodeOrderedMap(f, m, encK, encV)
	}
}

// OrderedMapDecoder builds a decoder for OrderedMap[K, V].
func OrderedMapDecoder[K comparable, V any](decK DecodeFunc[K], decV DecodeFunc[V]) DecodeFunc[OrderedMap[K, V]] {
	return func(f *File) (OrderedMap[K, V], error) {
		return DecodeOrderedMap(f, decK, decV)
	}
}

func errPathKey(err error, k any) error {
	return errors.WithPath(err, fmt.Sprint(k))
}
