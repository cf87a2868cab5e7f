// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bmt implements the intra-chunk Binary Merkle Tree hash.
// Binary Merkle Tree Hash is a hash function over a fixed-size chunk payload.
// The BMT hash is defined as H(span|bmt-root) where span is an 8-byte metadata
// prefix and bmt-root is the root hash of the binary merkle tree built over
// fixed size segments of the underlying chunk using a base hash function H
// (Keccak-256 SHA3).
//
// The number of segments on the base level is fixed at 128 so that the
// resulting tree is balanced at exactly 7 internal levels. Payloads shorter
// than the fixed size are hashed as if they had zero padding.
//
// The BMT is optimal for providing compact inclusion proofs, i.e. proving that
// a segment is a substring of a chunk starting at a particular offset. The
// segment size is fixed to the size of the base hash (32 bytes), the EVM word
// size, to optimize for on-chain BMT verification.
//
// Levels hashes the padded payload level by level and keeps every
// intermediate level around so that InclusionProofSegments can extract
// sister segments without recomputing the tree. Hash and RootHash are
// convenience entry points for callers that only need the final digest; they
// compute the same levels through Levels and return only the root.
package bmt
