// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import "github.com/luxfi/ids"

// Normalize rewrites [qset] into the canonical form a node stores for
// itself:
//
//	{ threshold: 1, validators: [self] }                  if nothing else remains
//	{ threshold: 2, validators: [self], innerSets: [rest] } otherwise
//
// where rest is [qset] with every occurrence of [self] removed, degenerate
// inner sets dropped, and singleton wrappers collapsed. The result always
// requires the node's own participation in any of its slices, which the
// protocol's safety argument depends on: a node never ratifies a statement
// its own slice did not include it in.
//
// Normalize is pure: the returned tree shares no memory with the input.
// It is idempotent on already-canonical input.
func Normalize(qset *QuorumSet, self ids.NodeID) QuorumSet {
	rest := normalize(qset, self)

	out := QuorumSet{
		Threshold:  1,
		Validators: []ids.NodeID{self},
	}
	if rest.Threshold != 0 {
		out.Threshold = 2
		out.InnerSets = []QuorumSet{rest}
	}
	return out
}

// normalize rebuilds one level, post-order:
//   - inner sets are normalized first; any that degenerate to threshold 0
//     are dropped, and each drop lowers this level's threshold by one (a
//     trivially satisfied child no longer counts toward the requirement)
//   - occurrences of [self] are removed from the validators, each removal
//     again lowering the threshold by one
//   - a bare {threshold: 1, innerSets: [x]} wrapper collapses to x
//
// Threshold decrements saturate at 0; a level that reaches 0 is itself
// dropped by its parent.
func normalize(qset *QuorumSet, self ids.NodeID) QuorumSet {
	out := QuorumSet{
		Threshold: qset.Threshold,
	}

	for i := range qset.InnerSets {
		inner := normalize(&qset.InnerSets[i], self)
		if inner.Threshold == 0 {
			if out.Threshold > 0 {
				out.Threshold--
			}
			continue
		}
		out.InnerSets = append(out.InnerSets, inner)
	}

	for _, v := range qset.Validators {
		if v == self {
			if out.Threshold > 0 {
				out.Threshold--
			}
			continue
		}
		out.Validators = append(out.Validators, v)
	}

	if out.Threshold == 1 && len(out.Validators) == 0 && len(out.InnerSets) == 1 {
		return out.InnerSets[0]
	}
	return out
}
