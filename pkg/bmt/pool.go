// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import (
	"hash"
	"sync"

	"github.com/ethersphere/bmtfile/pkg/swarm"
)

// hasherPool amortises the allocation cost of the base hash.Hash instances
// used while folding a chunk payload up to its BMT root. A pool is shared
// across concurrent level hashing goroutines spawned from RootHash; every
// borrowed hasher is Reset before use and returned before the call it was
// borrowed for completes.
var hasherPool = sync.Pool{
	New: func() interface{} {
		return swarm.NewHasher()
	},
}

func getHasher() hash.Hash {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	return h
}

func putHasher(h hash.Hash) {
	hasherPool.Put(h)
}

// doHash hashes the concatenation of data using a pooled base hasher.
func doHash(data ...[]byte) ([]byte, error) {
	h := getHasher()
	defer putHasher(h)
	for _, d := range data {
		if _, err := h.Write(d); err != nil {
			return nil, err
		}
	}
	return h.Sum(nil), nil
}

// Sha3hash hashes the concatenation of data with the base hash function of
// the tree (Keccak-256). It is exported for callers, such as the file
// package, that need to fold values outside the fixed 128-segment chunk
// shape, e.g. hashing a span together with an already-computed root.
func Sha3hash(data ...[]byte) ([]byte, error) {
	return doHash(data...)
}
