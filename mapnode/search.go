package mapnode

import (
	"slices"

	"github.com/signadot/vnodes/intern"
)

// Search returns the position of key in the ascending keys and whether it is
// present. When absent, the position is where key would be inserted.
func Search(keys []intern.Interned, key intern.Interned) (int, bool) {
	return slices.BinarySearch(keys, key)
}

// SearchBucketed returns the same result as Search, choosing a strategy by
// size: a linear scan up to 8 keys, one bisection step then a scan up to 32,
// binary search beyond.
func SearchBucketed(keys []intern.Interned, key intern.Interned) (int, bool) {
	switch n := len(keys); {
	case n <= 8:
		return scan(keys, key, 0)
	case n <= 32:
		return bisectScan(keys, key)
	}
	return Search(keys, key)
}

func bisectScan(keys []intern.Interned, key intern.Interned) (int, bool) {
	mid := len(keys) / 2
	if keys[mid] <= key {
		return scan(keys, key, mid)
	}
	return scan(keys[:mid], key, 0)
}

// scan finds the first index at or after from holding a key not below key.
func scan(keys []intern.Interned, key intern.Interned, from int) (int, bool) {
	for i := from; i < len(keys); i++ {
		if keys[i] >= key {
			return i, keys[i] == key
		}
	}
	return len(keys), false
}
