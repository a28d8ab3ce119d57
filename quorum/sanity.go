// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"
)

// IsSane reports whether [qset] is structurally well-formed and usable as
// [subject]'s trust configuration. Structural well-formedness requires, at
// every level of the tree, 1 <= threshold <= number of immediate children,
// and that no NodeID appears twice anywhere in the tree, including across
// sibling inner sets.
//
// On top of that, [subject] must appear among the collected validators. The
// one exception: a non-validating local node may omit itself, i.e. the
// membership rule is waived when [isValidator] is false and [subject] is
// [localID].
func IsSane(subject ids.NodeID, qset *QuorumSet, isValidator bool, localID ids.NodeID) bool {
	known := set.NewSet[ids.NodeID](len(qset.Validators))
	if !isSane(qset, known) {
		return false
	}
	return known.Contains(subject) || (!isValidator && subject == localID)
}

// isSane accumulates every NodeID seen so far into [known], threaded through
// the recursion so duplicates across branches are caught.
func isSane(qset *QuorumSet, known set.Set[ids.NodeID]) bool {
	totalChildren := len(qset.Validators) + len(qset.InnerSets)
	if qset.Threshold < 1 || int(qset.Threshold) > totalChildren {
		return false
	}
	for _, v := range qset.Validators {
		if known.Contains(v) {
			return false
		}
		known.Add(v)
	}
	for i := range qset.InnerSets {
		if !isSane(&qset.InnerSets[i], known) {
			return false
		}
	}
	return true
}
