package main

import (
	"encoding/binary"
	"fmt"

	"github.com/theflywheel/chainmap"
)

func main() {
	// Four-byte values, default capacity, no cleanup callback.
	m := chainmap.New(4, 0, nil)
	defer m.Destroy()

	fmt.Println("Map created")

	// Insert some data.
	value := make([]byte, 4)
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("item-%d", i)
		binary.LittleEndian.PutUint32(value, uint32(i*100))
		m.Put(key, value)
	}

	fmt.Printf("Inserted %d key-value pairs\n", m.Count())

	// Retrieve and display some values.
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("item-%d", i)
		if v := m.Get(key); v != nil {
			fmt.Printf("Key %s => Value %d\n", key, binary.LittleEndian.Uint32(v))
		} else {
			fmt.Printf("Key %s not found\n", key)
		}
	}

	// Update a value in place.
	binary.LittleEndian.PutUint32(value, 999)
	m.Put("item-2", value)

	if v := m.Get("item-2"); v != nil {
		fmt.Printf("Updated item-2 => Value %d\n", binary.LittleEndian.Uint32(v))
	}

	// Remove an entry, then walk what remains.
	m.Remove("item-0")
	fmt.Printf("After removal: %d entries\n", m.Count())

	for key, ok := m.First(); ok; key, ok = m.Next(key) {
		fmt.Printf("  %s => %d\n", key, binary.LittleEndian.Uint32(m.Get(key)))
	}

	// The typed view carries the element size in the type instead.
	scores := chainmap.NewTyped[uint64](0, nil)
	defer scores.Destroy()

	scores.Put("alice", 12)
	scores.Put("bob", 7)

	if score, ok := scores.Get("alice"); ok {
		fmt.Printf("alice's score: %d\n", score)
	}

	fmt.Println("Example completed successfully")
}
