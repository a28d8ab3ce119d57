// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package quorum

import (
	"math"
	"testing"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func TestNodeWeightBoundaries(t *testing.T) {
	a := ids.GenerateTestNodeID()
	b := ids.GenerateTestNodeID()

	single := Singleton(a)
	require.Equal(t, uint64(math.MaxUint64), NodeWeight(a, &single))
	require.Zero(t, NodeWeight(b, &single))

	// 2-of-2: both members are required, so both carry full weight.
	both := QuorumSet{
		Threshold:  2,
		Validators: []ids.NodeID{a, b},
	}
	require.Equal(t, uint64(math.MaxUint64), NodeWeight(a, &both))
	require.Equal(t, uint64(math.MaxUint64), NodeWeight(b, &both))
}

func TestNodeWeightFraction(t *testing.T) {
	a := ids.GenerateTestNodeID()
	b := ids.GenerateTestNodeID()
	c := ids.GenerateTestNodeID()

	// 2-of-3 weighs every member at MaxUint64 * 2/3, exactly (MaxUint64 is
	// divisible by 3).
	qset := QuorumSet{
		Threshold:  2,
		Validators: []ids.NodeID{a, b, c},
	}
	want := uint64(math.MaxUint64) / 3 * 2
	require.Equal(t, want, NodeWeight(a, &qset))
	require.Equal(t, want, NodeWeight(c, &qset))
	require.Zero(t, NodeWeight(ids.GenerateTestNodeID(), &qset))
}

func TestNodeWeightNested(t *testing.T) {
	a := ids.GenerateTestNodeID()
	b := ids.GenerateTestNodeID()
	c := ids.GenerateTestNodeID()

	// a sits in a 1-of-2 inner set, which is 1 of 2 children of a 1-of-2
	// root: weight(a) = ((MaxUint64 * 1/2) * 1) / 2.
	qset := QuorumSet{
		Threshold:  1,
		Validators: []ids.NodeID{c},
		InnerSets: []QuorumSet{{
			Threshold:  1,
			Validators: []ids.NodeID{a, b},
		}},
	}
	leaf := uint64(math.MaxUint64) / 2
	require.Equal(t, leaf/2, NodeWeight(a, &qset))

	// A direct validator does not recurse: c weighs n/d of the root.
	require.Equal(t, leaf, NodeWeight(c, &qset))
}
