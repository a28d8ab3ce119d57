// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"crypto/sha256"

	"github.com/luxfi/ids"

	"golang.org/x/crypto/ripemd160"
)

const (
	HashLen = sha256.Size
	AddrLen = ripemd160.Size
)

// ComputeHash256Array computes the SHA-256 hash of [buf].
func ComputeHash256Array(buf []byte) ids.ID {
	return ids.ID(sha256.Sum256(buf))
}

// ComputeHash256 computes the SHA-256 hash of [buf].
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

// ComputeHash160 computes the RIPEMD-160 hash of [buf].
func ComputeHash160(buf []byte) []byte {
	h := ripemd160.New()
	// The hash.Hash contract never returns an error on Write.
	_, _ = h.Write(buf)
	return h.Sum(nil)
}

// PubkeyBytesToAddress returns the 20-byte address form of a serialized
// public key: RIPEMD-160 over SHA-256 of the key bytes.
func PubkeyBytesToAddress(key []byte) []byte {
	return ComputeHash160(ComputeHash256(key))
}
