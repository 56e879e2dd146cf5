/*
Package store provides the key-value storage primitives used by the
custody modules.

KVStore is the basic object to use in all module code. A
CacheableKVStore can produce a KVCacheWrap, a staging area that applies
all writes to the parent store on Write, or throws them away on
Discard. Modules use a cache wrap to make a multi-step state transition
all-or-nothing.
*/
package store

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but at least
// these are required.
type KVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) []byte

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) bool

	// Set sets the key. Panics on nil key.
	Set(key, value []byte)

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte)
}

// SetDeleter is a minimal interface for writing, the write-side subset
// of KVStore.
type SetDeleter interface {
	Set(key, value []byte)
	Delete(key []byte)
}

// Batch can write multiple ops atomically to an underlying KVStore.
type Batch interface {
	SetDeleter
	Write()
}

// CacheableKVStore is a KVStore that can be wrapped with a cache.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a layer on top of a KVStore that buffers all writes
// until either flushed to the parent store or discarded.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write()

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}
