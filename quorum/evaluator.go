// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/luxfi/math/set"
)

// Evaluator runs the quorum decision procedures with tracing and metrics
// around them. The underlying functions stay pure; an engine that wants
// observability on its protocol-progress checks routes them through here.
type Evaluator struct {
	log     log.Logger
	metrics *Metrics
}

func NewEvaluator(logger log.Logger, metrics *Metrics) *Evaluator {
	return &Evaluator{
		log:     logger,
		metrics: metrics,
	}
}

func (e *Evaluator) IsQuorumSlice(qset *QuorumSet, nodes set.Set[ids.NodeID]) bool {
	e.metrics.numSliceChecks.Inc()
	e.log.Trace("evaluating quorum slice",
		"nodes", nodes.Len(),
	)
	return IsQuorumSlice(qset, nodes)
}

func (e *Evaluator) IsVBlocking(qset *QuorumSet, nodes set.Set[ids.NodeID]) bool {
	e.metrics.numVBlockingChecks.Inc()
	e.log.Trace("evaluating v-blocking",
		"nodes", nodes.Len(),
	)
	return IsVBlocking(qset, nodes)
}

// IsQuorum runs the fixed-point quorum check over an already-projected
// candidate set, with each candidate's own quorum set looked up through
// [qsetOf], typically a Registry lookup composed with whatever maps nodes
// to quorum set hashes.
func (e *Evaluator) IsQuorum(
	qset *QuorumSet,
	nodes set.Set[ids.NodeID],
	qsetOf func(ids.NodeID) *QuorumSet,
) bool {
	e.metrics.numQuorumChecks.Inc()
	e.log.Trace("evaluating quorum",
		"nodes", nodes.Len(),
	)
	return isQuorum(qset, nodes, qsetOf)
}

func (e *Evaluator) FindClosestVBlocking(
	qset *QuorumSet,
	interesting set.Set[ids.NodeID],
) []ids.NodeID {
	e.metrics.numVBlockingChecks.Inc()
	return FindClosestVBlocking(qset, interesting)
}
