// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"
)

// IsQuorumSlice reports whether [nodes] satisfies [qset]: at least
// [qset.Threshold] of its immediate children are covered, counting direct
// validators present in [nodes] plus inner sets recursively satisfied by it.
// Short-circuits as soon as the threshold is met. Members are never counted
// twice across branches because a sane tree never repeats a NodeID.
//
// The counter only returns true on an exact hit, so a zero threshold, which
// only an insane set carries, is never satisfied.
func IsQuorumSlice(qset *QuorumSet, nodes set.Set[ids.NodeID]) bool {
	remaining := int(qset.Threshold)
	for _, v := range qset.Validators {
		if nodes.Contains(v) {
			remaining--
			if remaining == 0 {
				return true
			}
		}
	}
	for i := range qset.InnerSets {
		if IsQuorumSlice(&qset.InnerSets[i], nodes) {
			remaining--
			if remaining == 0 {
				return true
			}
		}
	}
	return false
}

// IsVBlocking reports whether [nodes] is v-blocking for [qset]: whether it
// intersects every possible slice of [qset], so that no quorum can form
// without at least one of its members.
//
// A level tolerating the absence of slack = 1 + children - threshold of its
// children stays satisfiable until [nodes] accounts for that many of them;
// the set is v-blocking once it does. A threshold of 0 requires nothing and
// can never be blocked.
func IsVBlocking(qset *QuorumSet, nodes set.Set[ids.NodeID]) bool {
	if qset.Threshold == 0 {
		return false
	}

	slack := 1 + len(qset.Validators) + len(qset.InnerSets) - int(qset.Threshold)
	for _, v := range qset.Validators {
		if nodes.Contains(v) {
			slack--
			if slack <= 0 {
				return true
			}
		}
	}
	for i := range qset.InnerSets {
		if IsVBlocking(&qset.InnerSets[i], nodes) {
			slack--
			if slack <= 0 {
				return true
			}
		}
	}
	return false
}

// IsVBlockingFiltered projects the nodes of [statements] whose statement
// passes [filter] into a node set and reports whether that set is
// v-blocking for [qset].
func IsVBlockingFiltered[S any](
	qset *QuorumSet,
	statements map[ids.NodeID]S,
	filter func(S) bool,
) bool {
	return IsVBlocking(qset, filterNodes(statements, filter))
}

// IsQuorum reports whether the nodes of [statements] whose statement passes
// [filter] contain a quorum satisfying [qset]: a self-consistent set in
// which every member's own quorum set, looked up from its statement via
// [qsetOf], is a satisfied slice of that same set.
//
// The candidate set starts as every filtered node and is repeatedly pruned
// to the members whose own quorum set it satisfies; a nil [qsetOf] result
// prunes the node. The candidate set only ever shrinks, so the loop
// terminates once a pass removes nobody. The final candidates are then
// tested as a slice of [qset].
func IsQuorum[S any](
	qset *QuorumSet,
	statements map[ids.NodeID]S,
	qsetOf func(S) *QuorumSet,
	filter func(S) bool,
) bool {
	return isQuorum(qset, filterNodes(statements, filter), func(nodeID ids.NodeID) *QuorumSet {
		return qsetOf(statements[nodeID])
	})
}

func isQuorum(qset *QuorumSet, nodes set.Set[ids.NodeID], qsetOf func(ids.NodeID) *QuorumSet) bool {
	candidates := nodes
	for {
		count := candidates.Len()
		next := set.NewSet[ids.NodeID](count)
		for nodeID := range candidates {
			nodeQSet := qsetOf(nodeID)
			if nodeQSet != nil && IsQuorumSlice(nodeQSet, candidates) {
				next.Add(nodeID)
			}
		}
		candidates = next
		if candidates.Len() == count {
			break
		}
	}
	return IsQuorumSlice(qset, candidates)
}

func filterNodes[S any](statements map[ids.NodeID]S, filter func(S) bool) set.Set[ids.NodeID] {
	nodes := set.NewSet[ids.NodeID](len(statements))
	for nodeID, statement := range statements {
		if filter(statement) {
			nodes.Add(nodeID)
		}
	}
	return nodes
}
