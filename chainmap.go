package chainmap

import "fmt"

const (
	// defaultCapacity is the bucket count used when New is given a
	// capacity hint of zero.
	defaultCapacity = 199

	// maxLoadFactor is the element-to-bucket ratio above which Put grows
	// the bucket array.
	maxLoadFactor = 1.5

	// multiplier is the linear-congruence hash constant. Hash codes must
	// stay stable across releases, so this value never changes.
	multiplier = 2630849305
)

// CleanupFunc is called with a value's bytes just before that value is
// overwritten by Put, unlinked by Remove, or released by Destroy. It is
// never called when a key is first inserted.
type CleanupFunc func(value []byte)

// entry is one stored key/value pair, linked into its bucket's chain.
type entry struct {
	next  *entry
	key   string
	value []byte // len(value) == Map.elemSize
}

// Map associates string keys with fixed-size opaque byte values using
// open hashing (separate chaining). Every value stored has exactly the
// element size fixed at creation. A Map is not safe for concurrent use;
// callers needing that must serialize access externally.
type Map struct {
	elemSize int
	count    int
	cleanup  CleanupFunc
	buckets  []*entry
}

// New creates an empty map holding elemSize-byte values. capacityHint
// sets the initial bucket count; zero selects a default. cleanup may be
// nil, in which case values are released without notice.
//
// New panics if elemSize is not positive or capacityHint is negative.
// Both are contract violations by the caller, not recoverable errors.
func New(elemSize, capacityHint int, cleanup CleanupFunc) *Map {
	if elemSize <= 0 {
		panic(fmt.Sprintf("chainmap: element size %d, must be positive", elemSize))
	}
	if capacityHint < 0 {
		panic(fmt.Sprintf("chainmap: negative capacity hint %d", capacityHint))
	}
	if capacityHint == 0 {
		capacityHint = defaultCapacity
	}
	if cleanup == nil {
		cleanup = func([]byte) {}
	}
	return &Map{
		elemSize: elemSize,
		cleanup:  cleanup,
		buckets:  make([]*entry, capacityHint),
	}
}

// Hash derives a bucket index in [0, nbuckets) from key. The code is
// computed by linear congruence over the key's bytes with unsigned
// 64-bit wraparound, so identical (key, nbuckets) pairs always produce
// identical indices. The hash is case-sensitive: "ZELENSKI" and
// "Zelenski" hash independently.
func Hash(key string, nbuckets int) int {
	var code uint64
	for i := 0; i < len(key); i++ {
		code = code*multiplier + uint64(key[i])
	}
	return int(code % uint64(nbuckets))
}

// findSlot walks the chain in key's bucket and returns the address of
// the link pointing at the matching entry: the bucket head slot, or the
// previous entry's next field. The same slot serves Put (overwrite or
// append through it) and Remove (unlink through it) from one traversal.
// When the key is absent, the returned slot is the end of the chain,
// where a new entry would be linked.
func (m *Map) findSlot(key string) (slot **entry, found bool) {
	slot = &m.buckets[Hash(key, len(m.buckets))]
	for *slot != nil {
		if (*slot).key == key {
			return slot, true
		}
		slot = &(*slot).next
	}
	return slot, false
}

// Count returns the number of entries currently in the map.
func (m *Map) Count() int {
	return m.count
}

// LoadFactor returns the current element-to-bucket ratio.
func (m *Map) LoadFactor() float64 {
	return float64(m.count) / float64(len(m.buckets))
}

// Put associates key with a copy of value. If the key is already
// present, the cleanup callback is applied to the old value and the
// value buffer is overwritten in place; otherwise a new entry is linked
// onto the key's chain. Put grows the bucket array afterwards if the
// load factor has been exceeded.
//
// Put panics if len(value) differs from the map's element size.
func (m *Map) Put(key string, value []byte) {
	if len(value) != m.elemSize {
		panic(fmt.Sprintf("chainmap: value is %d bytes, map holds %d-byte elements",
			len(value), m.elemSize))
	}
	slot, found := m.findSlot(key)
	if found {
		e := *slot
		m.cleanup(e.value)
		copy(e.value, value)
	} else {
		buf := make([]byte, m.elemSize)
		copy(buf, value)
		*slot = &entry{key: key, value: buf}
		m.count++
	}
	m.rehashIfNeeded()
}

// Get returns the value stored under key, or nil if the key is absent.
// The returned slice aliases map-owned storage: it stays valid only
// until the next Put or Remove on the map, and writing through it
// writes into the map.
func (m *Map) Get(key string) []byte {
	slot, found := m.findSlot(key)
	if !found {
		return nil
	}
	return (*slot).value
}

// Remove deletes key's entry, applying the cleanup callback to its
// value. Removing an absent key is a no-op.
func (m *Map) Remove(key string) {
	slot, found := m.findSlot(key)
	if !found {
		return
	}
	e := *slot
	*slot = e.next
	m.cleanup(e.value)
	e.next = nil
	m.count--
}

// rehashIfNeeded grows the bucket array once the load factor passes
// maxLoadFactor. Existing entries are relinked onto the new buckets
// as-is: the same entry structs keep their key and value bytes, only
// the next links change. Relinking prepends, so order within a chain
// may reverse; iteration order is arbitrary anyway.
func (m *Map) rehashIfNeeded() {
	if m.LoadFactor() <= maxLoadFactor {
		return
	}
	old := m.buckets
	m.buckets = make([]*entry, len(old)*3+1)
	for _, e := range old {
		for e != nil {
			next := e.next
			idx := Hash(e.key, len(m.buckets))
			e.next = m.buckets[idx]
			m.buckets[idx] = e
			e = next
		}
	}
}

// Destroy applies the cleanup callback to every live value and releases
// the map's contents. Entries are collected up front so cleanup runs
// over a stable snapshot rather than chains being torn down mid-walk.
// The map must not be used after Destroy.
func (m *Map) Destroy() {
	live := make([]*entry, 0, m.count)
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			live = append(live, e)
		}
	}
	for _, e := range live {
		m.cleanup(e.value)
		e.next = nil
		e.value = nil
	}
	m.buckets = nil
	m.count = 0
}

// First returns the key that starts an iteration, scanning buckets in
// index order for the first non-empty chain. ok is false on an empty
// map. Iteration order is arbitrary but repeatable while the map is
// unmodified.
func (m *Map) First() (key string, ok bool) {
	for _, e := range m.buckets {
		if e != nil {
			return e.key, true
		}
	}
	return "", false
}

// Next returns the key following prevKey in iteration order: the next
// entry in the same chain if there is one, otherwise the head of the
// first non-empty bucket after prevKey's bucket. ok is false once every
// key has been visited. Structural mutation between First/Next calls
// leaves the iteration undefined.
func (m *Map) Next(prevKey string) (key string, ok bool) {
	slot, found := m.findSlot(prevKey)
	if found && (*slot).next != nil {
		return (*slot).next.key, true
	}
	for i := Hash(prevKey, len(m.buckets)) + 1; i < len(m.buckets); i++ {
		if e := m.buckets[i]; e != nil {
			return e.key, true
		}
	}
	return "", false
}
