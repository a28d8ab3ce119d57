// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package quorum implements the quorum-set algebra of federated Byzantine
// agreement: the recursive trust-configuration structure each node publishes,
// and the decision procedures over it: quorum-slice satisfaction,
// v-blocking detection, the self-consistent quorum fixed point, and the
// search for a minimal blocking set.
//
// A quorum set is a threshold over direct validators and nested quorum sets.
// A node set satisfies it (is a "slice") when enough immediate children are
// covered; a node set is "v-blocking" when it intersects every possible
// slice. Safety of the surrounding protocol reduces to slices of distinct
// nodes intersecting, which is why the normalized form always anchors a
// node's own ID at the top of its tree.
//
// All functions in this package are pure and safe for concurrent use as long
// as callers do not mutate an input tree or node set during a call.
package quorum

import (
	"encoding/binary"

	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"

	"github.com/luxfi/fba/utils/hashing"
)

const uint32Len = 4

// QuorumSet is a node's trust configuration: at least [Threshold] of its
// immediate children (direct validators plus recursively satisfied inner
// sets) must agree before this level counts as satisfied.
//
// A well-formed tree has 1 <= Threshold <= len(Validators)+len(InnerSets) at
// every level and no NodeID repeated anywhere; see IsSane. The decision
// procedures assume well-formedness and return meaningless results without
// it, so peer-supplied sets must be checked first.
type QuorumSet struct {
	Threshold  uint32       `json:"threshold"`
	Validators []ids.NodeID `json:"validators"`
	InnerSets  []QuorumSet  `json:"innerSets"`
}

// Singleton returns the minimal quorum set containing only [nodeID].
func Singleton(nodeID ids.NodeID) QuorumSet {
	return QuorumSet{
		Threshold:  1,
		Validators: []ids.NodeID{nodeID},
	}
}

// Copy returns a deep copy sharing no memory with q.
func (q *QuorumSet) Copy() QuorumSet {
	out := QuorumSet{
		Threshold: q.Threshold,
	}
	if q.Validators != nil {
		out.Validators = make([]ids.NodeID, len(q.Validators))
		copy(out.Validators, q.Validators)
	}
	if q.InnerSets != nil {
		out.InnerSets = make([]QuorumSet, len(q.InnerSets))
		for i := range q.InnerSets {
			out.InnerSets[i] = q.InnerSets[i].Copy()
		}
	}
	return out
}

// Equal reports deep structural equality, including member order.
func (q *QuorumSet) Equal(o *QuorumSet) bool {
	if q.Threshold != o.Threshold ||
		len(q.Validators) != len(o.Validators) ||
		len(q.InnerSets) != len(o.InnerSets) {
		return false
	}
	for i, v := range q.Validators {
		if v != o.Validators[i] {
			return false
		}
	}
	for i := range q.InnerSets {
		if !q.InnerSets[i].Equal(&o.InnerSets[i]) {
			return false
		}
	}
	return true
}

// Bytes returns the canonical serialization hashed by Hash: big-endian
// threshold, validator count, each validator's raw bytes in list order,
// inner-set count, then each inner set encoded recursively. Interoperating
// implementations must agree on this encoding bit-for-bit.
func (q *QuorumSet) Bytes() []byte {
	return q.appendTo(make([]byte, 0, q.byteLen()))
}

func (q *QuorumSet) byteLen() int {
	n := 3*uint32Len + len(q.Validators)*ids.NodeIDLen
	for i := range q.InnerSets {
		n += q.InnerSets[i].byteLen()
	}
	return n
}

func (q *QuorumSet) appendTo(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, q.Threshold)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(q.Validators)))
	for _, v := range q.Validators {
		buf = append(buf, v.Bytes()...)
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(q.InnerSets)))
	for i := range q.InnerSets {
		buf = q.InnerSets[i].appendTo(buf)
	}
	return buf
}

// Hash returns the SHA-256 of the canonical serialization. Structurally
// equal quorum sets hash identically, so the hash is usable as a compact
// reference wherever the full tree need not travel.
func (q *QuorumSet) Hash() ids.ID {
	return hashing.ComputeHash256Array(q.Bytes())
}

// ForAllNodes runs [visit] once per distinct NodeID in the tree, in preorder.
// A sane tree never repeats a NodeID, but the dedup guard holds regardless.
func (q *QuorumSet) ForAllNodes(visit func(ids.NodeID)) {
	done := set.NewSet[ids.NodeID](len(q.Validators))
	q.forAllNodes(func(nodeID ids.NodeID) {
		if !done.Contains(nodeID) {
			done.Add(nodeID)
			visit(nodeID)
		}
	})
}

func (q *QuorumSet) forAllNodes(visit func(ids.NodeID)) {
	for _, v := range q.Validators {
		visit(v)
	}
	for i := range q.InnerSets {
		q.InnerSets[i].forAllNodes(visit)
	}
}
