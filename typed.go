package chainmap

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Typed wraps Map so the element-size invariant is carried by a value
// type instead of a runtime byte count. V must have a fixed encoded
// size (fixed-size numeric types, arrays, or structs of those); values
// travel through the byte engine in little-endian encoding.
type Typed[V any] struct {
	m *Map
}

// NewTyped creates a map of V-typed values. The element size is derived
// from V's encoded size; NewTyped panics if V is not fixed-size (the
// same contract as an invalid element size). cleanup, if non-nil,
// receives the decoded old value on overwrite, removal, and destroy.
func NewTyped[V any](capacityHint int, cleanup func(V)) *Typed[V] {
	var zero V
	size := binary.Size(zero)
	if size <= 0 {
		panic(fmt.Sprintf("chainmap: %T does not have a fixed encoded size", zero))
	}
	var fn CleanupFunc
	if cleanup != nil {
		fn = func(value []byte) {
			cleanup(decode[V](value))
		}
	}
	return &Typed[V]{m: New(size, capacityHint, fn)}
}

func encode[V any](v V) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		panic("chainmap: encode: " + err.Error())
	}
	return buf.Bytes()
}

func decode[V any](raw []byte) V {
	var v V
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &v); err != nil {
		panic("chainmap: decode: " + err.Error())
	}
	return v
}

// Put associates key with v, overwriting any previous value.
func (t *Typed[V]) Put(key string, v V) {
	t.m.Put(key, encode(v))
}

// Get returns the value stored under key. Unlike Map.Get, the result
// is a decoded copy, not a borrow of map storage.
func (t *Typed[V]) Get(key string) (V, bool) {
	raw := t.m.Get(key)
	if raw == nil {
		var zero V
		return zero, false
	}
	return decode[V](raw), true
}

// Remove deletes key's entry; a no-op if the key is absent.
func (t *Typed[V]) Remove(key string) {
	t.m.Remove(key)
}

// Count returns the number of entries currently in the map.
func (t *Typed[V]) Count() int {
	return t.m.Count()
}

// First and Next iterate exactly as the underlying Map does.
func (t *Typed[V]) First() (string, bool) {
	return t.m.First()
}

func (t *Typed[V]) Next(prevKey string) (string, bool) {
	return t.m.Next(prevKey)
}

// Destroy releases the map's contents, running the cleanup callback on
// every live value. The map must not be used afterwards.
func (t *Typed[V]) Destroy() {
	t.m.Destroy()
}
