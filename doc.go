/*
Package chainmap provides an associative container mapping string keys to
fixed-size, opaque byte values.

Map is built on open hashing (separate chaining): a resizable array of
buckets, each the head of a singly linked chain of entries. Every value
stored has exactly the element size fixed at creation; values are copied
in on Put and borrowed out by Get. An optional cleanup callback is
applied to values as they are overwritten, removed, or destroyed, for
callers whose values reference externally owned resources.

Basic usage:

	import "github.com/theflywheel/chainmap"

	// Four-byte values, default capacity, no cleanup.
	m := chainmap.New(4, 0, nil)
	defer m.Destroy()

	v := make([]byte, 4)
	binary.LittleEndian.PutUint32(v, 42)
	m.Put("answer", v)

	if got := m.Get("answer"); got != nil {
		fmt.Println(binary.LittleEndian.Uint32(got))
	}

	for key, ok := m.First(); ok; key, ok = m.Next(key) {
		fmt.Println(key)
	}

For a value type enforced at compile time instead of a runtime byte
count, use the generic view:

	ages := chainmap.NewTyped[uint32](0, nil)
	ages.Put("ada", 36)
	age, ok := ages.Get("ada")

Features:

  - Fixed-size values for a predictable per-entry footprint
  - Separate chaining with automatic growth past a 1.5 load factor
  - Stable linear-congruence hashing, case-sensitive, reproducible
    across releases (see Hash)
  - Cleanup callback on overwrite, removal, and destruction
  - First/Next key protocol for allocation-free iteration

Implementation Details:

Each entry owns a copy of its key and a value buffer of the map's
element size, linked into the chain selected by Hash(key, buckets).
A single chain search returns the link slot pointing at an entry, which
gives both in-place update and unlinking without a second traversal.
When the element count exceeds 1.5 times the bucket count, the bucket
array grows to three times its size plus one and the existing entries
are relinked; entry storage is reused, so value bytes are never copied
during a rehash, but iteration positions and chain order are not
preserved across one.

Map is not safe for concurrent use. Callers needing concurrent access
must serialize it externally; chain traversal and rehashing touch
structure shared by every operation, so a single exclusive lock around
the whole map is the only sound granularity.
*/
package chainmap
