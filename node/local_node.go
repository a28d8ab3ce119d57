// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package node holds the local participant's identity: its key material, its
// validator flag, and the normalized quorum set it publishes.
package node

import (
	"sync"

	"github.com/luxfi/crypto/bls"
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/fba/quorum"
	"github.com/luxfi/fba/utils/hashing"
)

// The singleton quorum set of the local node never changes for the life of
// the process, so its hash is computed once.
var (
	singletonHashOnce sync.Once
	singletonHash     ids.ID
)

// LocalNode is this process's identity in the federated agreement protocol.
// It owns the secret key, the validator flag, and the node's own quorum set,
// which is always stored in normalized (self-anchored) form together with
// its hash.
//
// The quorum set is replaced rarely, on configuration reload; callers must
// serialize UpdateQuorumSet against concurrent reads themselves.
type LocalNode struct {
	nodeID      ids.NodeID
	signer      *bls.SecretKey
	isValidator bool
	qset        quorum.QuorumSet
	qsetHash    ids.ID
	singleQSet  quorum.QuorumSet
	log         log.Logger
}

// New derives the node's ID from [sk]'s public key, normalizes [qset]
// against it, and returns the assembled identity.
func New(sk *bls.SecretKey, isValidator bool, qset quorum.QuorumSet, logger log.Logger) (*LocalNode, error) {
	addr := hashing.PubkeyBytesToAddress(bls.PublicKeyToCompressedBytes(sk.PublicKey()))
	nodeID, err := ids.ToNodeID(addr)
	if err != nil {
		return nil, err
	}

	adjusted := quorum.Normalize(&qset, nodeID)
	n := &LocalNode{
		nodeID:      nodeID,
		signer:      sk,
		isValidator: isValidator,
		qset:        adjusted,
		qsetHash:    adjusted.Hash(),
		singleQSet:  quorum.Singleton(nodeID),
		log:         logger,
	}

	singletonHashOnce.Do(func() {
		singletonHash = n.singleQSet.Hash()
	})

	logger.Info("local node initialized",
		"node", nodeID,
		"qSetHash", n.qsetHash,
	)
	return n, nil
}

func (n *LocalNode) ID() ids.NodeID {
	return n.nodeID
}

func (n *LocalNode) Signer() *bls.SecretKey {
	return n.signer
}

func (n *LocalNode) IsValidator() bool {
	return n.isValidator
}

func (n *LocalNode) QuorumSet() *quorum.QuorumSet {
	return &n.qset
}

func (n *LocalNode) QuorumSetHash() ids.ID {
	return n.qsetHash
}

// SingletonQuorumSet returns the minimal fallback configuration
// {threshold: 1, validators: [self]}.
func (n *LocalNode) SingletonQuorumSet() *quorum.QuorumSet {
	return &n.singleQSet
}

// SingletonQuorumSetHash returns the process-wide hash of the local
// singleton quorum set.
func (n *LocalNode) SingletonQuorumSetHash() ids.ID {
	return singletonHash
}

// UpdateQuorumSet replaces the node's quorum set and recomputes its hash.
// The set is stored as given; callers hand in an already-normalized tree.
func (n *LocalNode) UpdateQuorumSet(qset quorum.QuorumSet) {
	n.qsetHash = qset.Hash()
	n.qset = qset

	n.log.Info("quorum set updated",
		"qSetHash", n.qsetHash,
	)
}

// IsQuorumSetSane reports whether [qset] is usable as [subject]'s trust
// configuration, applying the local node's leniency for itself: a
// non-validating local node may omit itself from its own quorum set.
func (n *LocalNode) IsQuorumSetSane(subject ids.NodeID, qset *quorum.QuorumSet) bool {
	return quorum.IsSane(subject, qset, n.isValidator, n.nodeID)
}
