// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"github.com/ethersphere/bmtfile/pkg/bmt"
	"github.com/ethersphere/bmtfile/pkg/swarm"
)

// Chunk is a record of a span and a payload of at most bmt.MaxPayloadSize
// bytes. For a leaf chunk the payload is a slice of the original input; for
// an intermediate chunk it is the concatenation of 2-128 child chunk
// addresses. Both flavors share this one representation; the distinction
// lives entirely in how the payload was populated.
//
// A Chunk is immutable once constructed. Its address is derived on demand
// rather than cached, so building one does not force a hash of payloads the
// caller may never need to address.
type Chunk struct {
	payload   []byte
	spanValue uint64
}

// ChunkOption configures MakeChunk.
type ChunkOption func(*chunkOptions)

type chunkOptions struct {
	spanValue *uint64
}

// WithSpanValue overrides the span a chunk reports, instead of the default
// of len(payload). Intermediate chunks use this to carry the sum of their
// children's spans rather than the byte length of the concatenated
// addresses.
func WithSpanValue(n uint64) ChunkOption {
	return func(o *chunkOptions) { o.spanValue = &n }
}

// MakeChunk constructs a Chunk from a payload of at most
// bmt.MaxPayloadSize bytes.
func MakeChunk(payload []byte, opts ...ChunkOption) (*Chunk, error) {
	if len(payload) > bmt.MaxPayloadSize {
		return nil, ErrPayloadTooLargeForChunk
	}

	var o chunkOptions
	for _, opt := range opts {
		opt(&o)
	}

	spanValue := uint64(len(payload))
	if o.spanValue != nil {
		spanValue = *o.spanValue
	}

	defaultMetrics.ChunksBuilt.Inc()

	return &Chunk{payload: payload, spanValue: spanValue}, nil
}

// Data returns the chunk's payload, zero-padded to bmt.MaxPayloadSize bytes.
func (c *Chunk) Data() []byte {
	padded := make([]byte, bmt.MaxPayloadSize)
	copy(padded, c.payload)
	return padded
}

// Span returns the chunk's span, little-endian encoded.
func (c *Chunk) Span() []byte {
	return MakeSpan(c.spanValue)
}

// SpanValue returns the chunk's span as a decoded integer.
func (c *Chunk) SpanValue() uint64 {
	return c.spanValue
}

// Address returns H(span || bmt_root(payload)), the chunk's content
// address.
func (c *Chunk) Address() (swarm.Address, error) {
	b, err := bmt.Hash(c.Span(), c.payload)
	if err != nil {
		return swarm.ZeroAddress, err
	}
	return swarm.NewAddress(b), nil
}

// BMT returns every level of the chunk's intra-chunk binary Merkle tree, from
// the padded payload up to the single-segment root.
func (c *Chunk) BMT() ([][]byte, error) {
	return bmt.Levels(c.payload)
}

// InclusionProof returns the 7 sister segments needed to reconstruct this
// chunk's BMT root from the segment at segmentIndex.
func (c *Chunk) InclusionProof(segmentIndex int) ([][]byte, error) {
	return bmt.InclusionProofSegments(c.payload, segmentIndex)
}
