// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"testing"

	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/fba/quorum"
)

func newTestNode(t *testing.T, isValidator bool, qset quorum.QuorumSet) *LocalNode {
	sk, err := bls.NewSecretKey()
	require.NoError(t, err)

	n, err := New(sk, isValidator, qset, log.NoLog{})
	require.NoError(t, err)
	return n
}

func TestNewNormalizesQuorumSet(t *testing.T) {
	a := ids.GenerateTestNodeID()
	b := ids.GenerateTestNodeID()

	n := newTestNode(t, true, quorum.QuorumSet{
		Threshold:  2,
		Validators: []ids.NodeID{a, b},
	})

	qset := n.QuorumSet()
	require.Equal(t, []ids.NodeID{n.ID()}, qset.Validators)
	require.Equal(t, uint32(2), qset.Threshold)
	require.Len(t, qset.InnerSets, 1)
	require.Equal(t, qset.Hash(), n.QuorumSetHash())
}

func TestNodeIDDerivation(t *testing.T) {
	sk, err := bls.NewSecretKey()
	require.NoError(t, err)

	first, err := New(sk, true, quorum.QuorumSet{}, log.NoLog{})
	require.NoError(t, err)
	second, err := New(sk, true, quorum.QuorumSet{}, log.NoLog{})
	require.NoError(t, err)

	// The NodeID is a pure function of the key.
	require.Equal(t, first.ID(), second.ID())
	require.NotEqual(t, ids.EmptyNodeID, first.ID())
	require.Same(t, sk, first.Signer())
}

func TestSingletonQuorumSet(t *testing.T) {
	n := newTestNode(t, true, quorum.QuorumSet{})

	single := n.SingletonQuorumSet()
	require.Equal(t, uint32(1), single.Threshold)
	require.Equal(t, []ids.NodeID{n.ID()}, single.Validators)
	require.Empty(t, single.InnerSets)
}

func TestUpdateQuorumSet(t *testing.T) {
	a := ids.GenerateTestNodeID()

	n := newTestNode(t, true, quorum.QuorumSet{})
	before := n.QuorumSetHash()

	replacement := quorum.Normalize(&quorum.QuorumSet{
		Threshold:  2,
		Validators: []ids.NodeID{n.ID(), a},
	}, n.ID())
	n.UpdateQuorumSet(replacement)

	require.True(t, replacement.Equal(n.QuorumSet()))
	require.Equal(t, replacement.Hash(), n.QuorumSetHash())
	require.NotEqual(t, before, n.QuorumSetHash())
}

func TestIsQuorumSetSane(t *testing.T) {
	other := ids.GenerateTestNodeID()

	validator := newTestNode(t, true, quorum.QuorumSet{})
	withoutSelf := quorum.QuorumSet{
		Threshold:  1,
		Validators: []ids.NodeID{other},
	}

	// A validator must include itself.
	require.False(t, validator.IsQuorumSetSane(validator.ID(), &withoutSelf))

	// A non-validating node may omit itself from its own set, but the
	// leniency does not extend to other subjects.
	observer := newTestNode(t, false, quorum.QuorumSet{})
	require.False(t, observer.IsQuorumSetSane(observer.ID(), &quorum.QuorumSet{
		Threshold:  1,
		Validators: []ids.NodeID{observer.ID(), observer.ID()},
	}))
	require.True(t, observer.IsQuorumSetSane(observer.ID(), &withoutSelf))
	require.False(t, observer.IsQuorumSetSane(other, &quorum.QuorumSet{
		Threshold:  1,
		Validators: []ids.NodeID{observer.ID()},
	}))
}
