// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"sync"

	"github.com/luxfi/cache/lru"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
)

// Registry is an in-memory table of known quorum sets keyed by their
// canonical hash, with LRU eviction. Engines feed it the quorum sets peers
// advertise and service the IsQuorum accessor from it; a statement carrying
// an unknown hash simply misses.
//
// Registry is safe for concurrent use. Stored sets must not be mutated
// after Put.
type Registry struct {
	log     log.Logger
	metrics *Metrics

	lock sync.Mutex
	sets *lru.Cache[ids.ID, *QuorumSet]
}

func NewRegistry(size int, logger log.Logger, metrics *Metrics) *Registry {
	return &Registry{
		log:     logger,
		metrics: metrics,
		sets:    lru.NewCache[ids.ID, *QuorumSet](size),
	}
}

// Put records [qset] under its canonical hash and returns that hash.
func (r *Registry) Put(qset *QuorumSet) ids.ID {
	hash := qset.Hash()

	r.lock.Lock()
	r.sets.Put(hash, qset)
	r.lock.Unlock()

	r.log.Debug("registered quorum set",
		"qSetHash", hash,
	)
	return hash
}

// Get returns the quorum set recorded under [hash], if still resident.
func (r *Registry) Get(hash ids.ID) (*QuorumSet, bool) {
	r.lock.Lock()
	qset, ok := r.sets.Get(hash)
	r.lock.Unlock()

	r.metrics.markLookup(ok)
	return qset, ok
}
