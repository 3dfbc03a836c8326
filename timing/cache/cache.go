// Package cache provides the L1 instruction and data caches used by the
// pipeline's Fetch and Execute stages. Tag storage and LRU victim selection
// are delegated to akita's cache directory component; this package never
// stores cache-line data, since the pipeline only ever needs a hit/miss
// verdict and a latency — the architectural value of a
// load always comes from main memory.
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Config holds cache geometry and latency parameters.
type Config struct {
	// Sets is the number of cache sets.
	Sets int
	// Associativity is the number of ways per set.
	Associativity int
	// BlockSize is the cache line size in bytes.
	BlockSize int
	// HitLatency is the latency in cycles for a hit.
	HitLatency uint64
	// MissPenalty is the additional latency in cycles charged on a miss,
	// on top of HitLatency.
	MissPenalty uint64
}

// DefaultL1Config returns the default L1 geometry: 32 sets, 2-way,
// 64-byte blocks, with a 10-cycle miss penalty. Callers supply
// HitLatency (1 cycle for L1I, 2 cycles for L1D).
func DefaultL1Config(hitLatency uint64) Config {
	return Config{
		Sets:          32,
		Associativity: 2,
		BlockSize:     64,
		HitLatency:    hitLatency,
		MissPenalty:   10,
	}
}

// AccessResult reports the outcome of a single cache access.
type AccessResult struct {
	// Hit is true if the access was a cache hit.
	Hit bool
	// Latency is the number of cycles this access takes: HitLatency on a
	// hit, HitLatency+MissPenalty on a miss.
	Latency uint64
}

// Statistics holds cumulative cache counters.
type Statistics struct {
	Accesses uint64
	Hits     uint64
	Misses   uint64
}

// Cache is a set-associative, LRU, write-back L1 cache that reports only
// hit/miss and latency — it holds no cache-line data (see package doc).
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	stats     Statistics
}

// New creates a cache with the given configuration.
func New(config Config) *Cache {
	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			config.Sets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
	}
}

// Config returns the cache's configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns the cache's cumulative counters.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// Access performs a cache access for a load (isWrite=false) or a store
// (isWrite=true), returning whether it hit and the resulting latency.
// On a miss, the LRU way is evicted and replaced with the accessed
// block; a dirty eviction is silently accepted — no write-back traffic
// is modelled.
func (c *Cache) Access(addr uint32, isWrite bool) AccessResult {
	c.stats.Accesses++

	blockAddr := c.blockAlign(addr)
	block := c.directory.Lookup(0, uint64(blockAddr))

	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		if isWrite {
			block.IsDirty = true
		}
		return AccessResult{Hit: true, Latency: c.config.HitLatency}
	}

	c.stats.Misses++
	victim := c.directory.FindVictim(uint64(blockAddr))
	if victim != nil {
		victim.Tag = uint64(blockAddr)
		victim.IsValid = true
		victim.IsDirty = isWrite
		c.directory.Visit(victim)
	}
	return AccessResult{Hit: false, Latency: c.config.HitLatency + c.config.MissPenalty}
}

// Reset invalidates all cache lines and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}

func (c *Cache) blockAlign(addr uint32) uint32 {
	blockSize := uint32(c.config.BlockSize)
	return (addr / blockSize) * blockSize
}
