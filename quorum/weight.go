// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	stdmath "math"

	"github.com/luxfi/ids"

	"github.com/luxfi/fba/utils/math"
)

// NodeWeight returns [nodeID]'s approximate relative influence within
// [qset], scaled so that a node the set cannot ratify without has weight
// MaxUint64 and an absent node has weight 0.
//
// A direct validator at a level requiring n of d children weighs n/d of the
// level's weight; membership through an inner set multiplies the fractions
// down the path, truncating toward zero at each step. Only the first
// occurrence of a node counts. Every scaling step uses a 128-bit
// intermediate, so the products never wrap.
func NodeWeight(nodeID ids.NodeID, qset *QuorumSet) uint64 {
	n := uint64(qset.Threshold)
	d := uint64(len(qset.Validators) + len(qset.InnerSets))

	for _, v := range qset.Validators {
		if v == nodeID {
			return math.MulDiv64(stdmath.MaxUint64, n, d)
		}
	}

	for i := range qset.InnerSets {
		if leafWeight := NodeWeight(nodeID, &qset.InnerSets[i]); leafWeight != 0 {
			return math.MulDiv64(leafWeight, n, d)
		}
	}

	return 0
}
