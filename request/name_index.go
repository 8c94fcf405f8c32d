package request

import "github.com/cqlkit/cqlkit/internal/hash"

// nameIndex maps bound-parameter names to value-slot indices. Lookups key
// on the xxHash64 of the name; entries sharing a hash are disambiguated by
// comparing the stored name. A name may map to multiple indices, which
// supports protocols that allow repeated named markers in one query.
type nameIndex struct {
	entries map[uint64][]nameEntry
}

type nameEntry struct {
	name    string
	indices []uint16
}

// newNameIndex creates an index sized for the request's declared
// value-slot count.
func newNameIndex(capacity int) *nameIndex {
	return &nameIndex{
		entries: make(map[uint64][]nameEntry, capacity),
	}
}

// get returns the slot indices assigned to name, or nil if unknown.
func (ix *nameIndex) get(name string) []uint16 {
	bucket := ix.entries[hash.ID(name)]
	for i := range bucket {
		if bucket[i].name == name {
			return bucket[i].indices
		}
	}

	return nil
}

// insert records one more slot index for name.
func (ix *nameIndex) insert(name string, index uint16) {
	id := hash.ID(name)
	bucket := ix.entries[id]
	for i := range bucket {
		if bucket[i].name == name {
			bucket[i].indices = append(bucket[i].indices, index)
			return
		}
	}
	ix.entries[id] = append(bucket, nameEntry{name: name, indices: []uint16{index}})
}
