// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"github.com/ethersphere/bmtfile/pkg/bmt"
)

// popCarrierChunk splits chunks into a working slice and, if the level has a
// lone right-edge chunk (len(chunks) % bmt.Branches == 1, with more than one
// chunk on the level), the carrier chunk that must be promoted unchanged to
// the next level. It returns the input slice unchanged and a nil carrier
// when there is nothing to carry. Neither return value mutates chunks, so a
// single leaf slice can be reused as the pristine level-0 view while a
// separate working copy is threaded through tree construction.
func popCarrierChunk(chunks []*Chunk) (working []*Chunk, carrier *Chunk) {
	if len(chunks) <= 1 {
		return chunks, nil
	}
	if len(chunks)%bmt.Branches == 1 {
		defaultMetrics.CarrierChunks.Inc()
		return chunks[:len(chunks)-1], chunks[len(chunks)-1]
	}
	return chunks, nil
}

// createIntermediateChunk builds the parent chunk for a run of up to
// bmt.Branches children: its payload is the concatenation of their
// addresses and its span is the sum of their spans.
func createIntermediateChunk(children []*Chunk) (*Chunk, error) {
	addresses := make([]byte, 0, len(children)*bmt.SegmentSize)
	var spanSum uint64
	for _, child := range children {
		addr, err := child.Address()
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr.Bytes()...)
		spanSum += child.SpanValue()
	}
	return MakeChunk(addresses, WithSpanValue(spanSum))
}

// nextBMTLevel groups chunks into runs of up to bmt.Branches and builds an
// intermediate chunk per run, then resolves the carrier: a carrier coming
// in from the level below is appended to this level's result unless the
// result already ends on a full run of bmt.Branches, where the carrier would
// again be a lone right-edge chunk (in which case it keeps riding to the
// level above); otherwise, if this level produced its
// own lone right-edge chunk, that becomes the new carrier.
func nextBMTLevel(chunks []*Chunk, carrier *Chunk) ([]*Chunk, *Chunk, error) {
	if len(chunks) == 0 {
		return nil, nil, errEmptyChunkArray
	}

	var next []*Chunk
	for offset := 0; offset < len(chunks); offset += bmt.Branches {
		end := offset + bmt.Branches
		if end > len(chunks) {
			end = len(chunks)
		}
		parent, err := createIntermediateChunk(chunks[offset:end])
		if err != nil {
			return nil, nil, err
		}
		next = append(next, parent)
	}

	nextCarrier := carrier
	if carrier != nil {
		if len(next)%bmt.Branches != 0 {
			next = append(next, carrier)
			nextCarrier = nil
		}
	} else {
		next, nextCarrier = popCarrierChunk(next)
	}
	return next, nextCarrier, nil
}

// bmtRootChunk folds chunks up to their single root chunk, applying the
// carrier-chunk rule at every level.
func bmtRootChunk(chunks []*Chunk) (*Chunk, error) {
	if len(chunks) == 0 {
		return nil, errEmptyChunkArray
	}

	working, carrier := popCarrierChunk(chunks)
	for len(working) != 1 || carrier != nil {
		next, nextCarrier, err := nextBMTLevel(working, carrier)
		if err != nil {
			return nil, err
		}
		working = next
		carrier = nextCarrier
	}
	return working[0], nil
}

// buildBMT returns every level of the file's tree, bottom-up. Level 0 is the
// pristine, full leaf chunk list; later levels reflect the carrier-chunk
// rule, so a level may be shorter than a uniform grouping of the level below
// would suggest.
func buildBMT(leafChunks []*Chunk) ([][]*Chunk, error) {
	if len(leafChunks) == 0 {
		return nil, errEmptyChunkArray
	}

	levels := [][]*Chunk{leafChunks}
	working, carrier := popCarrierChunk(leafChunks)
	for len(levels[len(levels)-1]) != 1 || carrier != nil {
		next, nextCarrier, err := nextBMTLevel(working, carrier)
		if err != nil {
			return nil, err
		}
		carrier = nextCarrier
		levels = append(levels, next)
		working = next
	}
	return levels, nil
}
