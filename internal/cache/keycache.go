// Package cache interns decoded Object key strings.
//
// BEVE objects are routinely key-repetitive: a homogeneous array of
// same-shaped objects decodes the same key bytes over and over. KeyCache
// hashes each decoded key with xxhash64 and reuses a previously interned
// string on a hit, the same hash-then-map-lookup idiom mebo's metric index
// uses for O(1) lookups, applied here to cut allocations instead of to
// support a lookup API.
package cache

import "github.com/beve-org/beve/internal/hash"

// KeyCache interns UTF-8 object keys seen during a single decode. It is not
// safe for concurrent use; each decode.Reader owns one.
type KeyCache struct {
	byHash map[uint64]string
}

// NewKeyCache returns an empty KeyCache.
func NewKeyCache() *KeyCache {
	return &KeyCache{byHash: make(map[uint64]string)}
}

// Intern returns a canonical string equal to key, reusing a previously
// interned value when the hash matches, or recording key as canonical on a
// first sighting.
func (c *KeyCache) Intern(key string) string {
	id := hash.ID(key)

	if existing, ok := c.byHash[id]; ok && existing == key {
		return existing
	}

	c.byHash[id] = key

	return key
}
