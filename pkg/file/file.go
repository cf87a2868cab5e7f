// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"github.com/ethersphere/bmtfile/pkg/bmt"
	"github.com/ethersphere/bmtfile/pkg/swarm"
)

// ChunkedFile bundles an input payload with its leaf chunks, root chunk and
// multi-level tree. It is built once from the input bytes and is immutable
// thereafter.
type ChunkedFile struct {
	payload    []byte
	leafChunks []*Chunk
}

// MakeChunkedFile partitions payload into leaf chunks of at most
// bmt.MaxPayloadSize bytes (the last zero-padded, annotated with its true
// unpadded length as its span) ready for tree construction and proof
// collection.
func MakeChunkedFile(payload []byte) (*ChunkedFile, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	leaves := make([]*Chunk, 0, (len(payload)+bmt.MaxPayloadSize-1)/bmt.MaxPayloadSize)
	for offset := 0; offset < len(payload); offset += bmt.MaxPayloadSize {
		end := offset + bmt.MaxPayloadSize
		if end > len(payload) {
			end = len(payload)
		}
		chunk, err := MakeChunk(payload[offset:end])
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, chunk)
	}

	return &ChunkedFile{payload: payload, leafChunks: leaves}, nil
}

// LeafChunks returns the file's leaf chunks in input order.
func (cf *ChunkedFile) LeafChunks() []*Chunk {
	leaves := make([]*Chunk, len(cf.leafChunks))
	copy(leaves, cf.leafChunks)
	return leaves
}

// Span returns the file's span: the little-endian encoding of the total
// input length.
func (cf *ChunkedFile) Span() []byte {
	return MakeSpan(uint64(len(cf.payload)))
}

// RootChunk folds the file's leaf chunks to their single root chunk,
// applying the carrier-chunk rule at every level.
func (cf *ChunkedFile) RootChunk() (*Chunk, error) {
	return bmtRootChunk(cf.LeafChunks())
}

// Address returns the file's content address: the address of its root
// chunk.
func (cf *ChunkedFile) Address() (swarm.Address, error) {
	root, err := cf.RootChunk()
	if err != nil {
		return swarm.ZeroAddress, err
	}
	return root.Address()
}

// BMT returns every level of the file's tree, bottom-up, from the leaf
// chunks to the singleton root level.
func (cf *ChunkedFile) BMT() ([][]*Chunk, error) {
	return buildBMT(cf.LeafChunks())
}
