// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"sort"

	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"
)

// FindClosestVBlocking returns a minimal-size subset of [interesting] that
// is v-blocking for [qset].
//
// An empty result means [qset] is already structurally blocked without any
// of the interesting nodes (enough of its children fall outside
// [interesting] that no slice can be completed) and must be read as "no
// extra members needed", never as "no blocking set exists" (when the
// threshold is positive, the full node set always blocks). A non-empty
// result satisfies IsVBlocking(qset, result).
func FindClosestVBlocking(qset *QuorumSet, interesting set.Set[ids.NodeID]) []ids.NodeID {
	slack := 1 + len(qset.Validators) + len(qset.InnerSets) - int(qset.Threshold)
	// A threshold past the member count admits no slice at all, so the set
	// is blocked without any help from the interesting nodes.
	if slack <= 0 {
		return nil
	}

	var res []ids.NodeID

	// Validators outside the interesting set already count against the
	// slack; the ones inside are candidates for the result.
	for _, v := range qset.Validators {
		if !interesting.Contains(v) {
			slack--
			if slack == 0 {
				return nil
			}
		} else {
			res = append(res, v)
		}
	}

	var subResults [][]ids.NodeID
	for i := range qset.InnerSets {
		sub := FindClosestVBlocking(&qset.InnerSets[i], interesting)
		if len(sub) == 0 {
			slack--
			if slack == 0 {
				return nil
			}
		} else {
			subResults = append(subResults, sub)
		}
	}

	// Any [slack] of the candidate validators suffice.
	if len(res) > slack {
		res = res[:slack]
	}
	slack -= len(res)

	// Cover the remaining slack with inner-set results, smallest first.
	sort.SliceStable(subResults, func(i, j int) bool {
		return len(subResults[i]) < len(subResults[j])
	})
	for _, sub := range subResults {
		if slack == 0 {
			break
		}
		res = append(res, sub...)
		slack--
	}

	return res
}

// FindClosestVBlockingFiltered projects the nodes of [statements] whose
// statement passes [filter] and delegates to FindClosestVBlocking.
func FindClosestVBlockingFiltered[S any](
	qset *QuorumSet,
	statements map[ids.NodeID]S,
	filter func(S) bool,
) []ids.NodeID {
	return FindClosestVBlocking(qset, filterNodes(statements, filter))
}
