// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

// Package cache provides a thread-safe sharded key/value store with atomic
// hit/miss statistics. It backs the texture manager but is generic over
// any comparable key and any value.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// shardCount is the number of shards. Must be a power of 2 so shard
// selection is a bitwise AND.
const shardCount = 16

const shardMask = shardCount - 1

// Hasher computes a shard-selection hash for a key.
type Hasher[K comparable] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Store is a sharded map with one mutex per shard, keeping concurrent
// lookups on different keys from contending. Entries live until explicitly
// deleted; there is no implicit eviction, matching the manual lifecycle of
// render textures.
type Store[K comparable, V any] struct {
	shards [shardCount]shard[K, V]
	hasher Hasher[K]

	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty store using the given hasher.
func New[K comparable, V any](hasher Hasher[K]) *Store[K, V] {
	s := &Store[K, V]{hasher: hasher}
	for i := range s.shards {
		s.shards[i].entries = make(map[K]V)
	}
	return s
}

// NewStringKeyed creates an empty store with string keys hashed by FNV-1a.
func NewStringKeyed[V any]() *Store[string, V] {
	return New[string, V](StringHasher)
}

func (s *Store[K, V]) shardFor(key K) *shard[K, V] {
	return &s.shards[s.hasher(key)&shardMask]
}

// Get returns the value for key and whether it was present.
func (s *Store[K, V]) Get(key K) (V, bool) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	v, ok := sh.entries[key]
	sh.mu.RUnlock()
	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}
	return v, ok
}

// Put stores value under key, replacing any previous entry.
func (s *Store[K, V]) Put(key K, value V) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	sh.entries[key] = value
	sh.mu.Unlock()
}

// Delete removes key, reporting whether it was present.
func (s *Store[K, V]) Delete(key K) bool {
	sh := s.shardFor(key)
	sh.mu.Lock()
	_, ok := sh.entries[key]
	delete(sh.entries, key)
	sh.mu.Unlock()
	return ok
}

// Len returns the total number of entries across all shards.
func (s *Store[K, V]) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// Range calls fn for every entry until fn returns false. The iteration
// order is undefined. fn must not call back into the store.
func (s *Store[K, V]) Range(fn func(key K, value V) bool) {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for k, v := range sh.entries {
			if !fn(k, v) {
				sh.mu.RUnlock()
				return
			}
		}
		sh.mu.RUnlock()
	}
}

// Stats reports cumulative lookup statistics.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Stats returns the store's cumulative hit/miss counters.
func (s *Store[K, V]) Stats() Stats {
	return Stats{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
	}
}
