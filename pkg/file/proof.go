// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"github.com/ethersphere/bmtfile/pkg/bmt"
)

// ChunkInclusionProof is one level of rising in a file inclusion proof: the
// span of the chunk at that level and the 7 sister segments needed to
// reconstruct its intra-chunk BMT root.
type ChunkInclusionProof struct {
	Span           []byte
	SisterSegments [][]byte
}

// GetBMTIndexOfSegment maps a segment index to its containing chunk's index
// on the level above, and the number of extra levels that chunk has already
// skipped by riding as a carrier. level is 0 unless segmentIndex addresses a
// carrier chunk that bypassed one or more levels, in which case level
// reports how many.
func GetBMTIndexOfSegment(segmentIndex, lastChunkIndex uint64) (chunkIndex uint64, level int) {
	const maxSegmentCount = uint64(bmt.Branches)
	const chunkBMTLevels = uint(bmt.MaxLevels)

	carriedByLastChunk := (segmentIndex/maxSegmentCount) == lastChunkIndex &&
		(lastChunkIndex%maxSegmentCount) == 0 &&
		lastChunkIndex != 0

	if carriedByLastChunk {
		segmentIndex >>= chunkBMTLevels
		for segmentIndex%maxSegmentCount == 0 {
			level++
			segmentIndex >>= chunkBMTLevels
		}
	} else {
		segmentIndex >>= chunkBMTLevels
	}
	return segmentIndex, level
}

// FileInclusionProofBottomUp walks cf's tree from the leaf containing
// segmentIndex up to the root, collecting one ChunkInclusionProof per level
// actually traversed. Carrier-chunk shortcuts contribute no proof step for
// the levels they skip, so the returned proof may be shorter than the tree
// is tall.
func FileInclusionProofBottomUp(cf *ChunkedFile, segmentIndex uint64) ([]ChunkInclusionProof, error) {
	fileSpanValue := GetSpanValue(cf.Span())
	if segmentIndex*bmt.SegmentSize >= fileSpanValue {
		return nil, newSegmentIndexOutOfRangeError(segmentIndex, (fileSpanValue-1)/bmt.SegmentSize)
	}

	const maxSegmentCount = uint64(bmt.Branches)
	const chunkBMTLevels = uint(bmt.MaxLevels)

	working, carrier := popCarrierChunk(cf.LeafChunks())

	var proofs []ChunkInclusionProof
	for len(working) != 1 || carrier != nil {
		chunkSegmentIndex := segmentIndex % maxSegmentCount
		chunkIndexForProof := segmentIndex / maxSegmentCount

		if chunkIndexForProof == uint64(len(working)) {
			if carrier == nil {
				return nil, errImpossibleProofState
			}
			segmentIndex >>= chunkBMTLevels
			for segmentIndex%maxSegmentCount == 0 {
				next, nextCarrier, err := nextBMTLevel(working, carrier)
				if err != nil {
					return nil, err
				}
				working = next
				carrier = nextCarrier
				segmentIndex >>= chunkBMTLevels
			}
			chunkIndexForProof = uint64(len(working) - 1)
		}

		chunk := working[chunkIndexForProof]
		sisters, err := chunk.InclusionProof(int(chunkSegmentIndex))
		if err != nil {
			return nil, err
		}
		proofs = append(proofs, ChunkInclusionProof{Span: chunk.Span(), SisterSegments: sisters})

		segmentIndex = chunkIndexForProof

		next, nextCarrier, err := nextBMTLevel(working, carrier)
		if err != nil {
			return nil, err
		}
		working = next
		carrier = nextCarrier
	}

	sisters, err := working[0].InclusionProof(int(segmentIndex))
	if err != nil {
		return nil, err
	}
	proofs = append(proofs, ChunkInclusionProof{Span: working[0].Span(), SisterSegments: sisters})
	defaultMetrics.ProofsCollected.Inc()
	return proofs, nil
}

// FileAddressFromInclusionProof reconstructs a file address from a proof
// produced by FileInclusionProofBottomUp, the segment it proves and that
// segment's index, without access to the tree that produced it.
func FileAddressFromInclusionProof(proof []ChunkInclusionProof, proveSegment []byte, proveSegmentIndex uint64) ([]byte, error) {
	if len(proof) == 0 {
		defaultMetrics.ProofVerifyError.Inc()
		return nil, ErrInvalidProofLength
	}
	if len(proveSegment) != bmt.SegmentSize {
		defaultMetrics.ProofVerifyError.Inc()
		return nil, ErrInvalidSegmentSize
	}
	for _, step := range proof {
		if len(step.SisterSegments) != bmt.MaxLevels {
			defaultMetrics.ProofVerifyError.Inc()
			return nil, ErrInvalidProofLength
		}
	}

	const chunkBMTLevels = uint(bmt.MaxLevels)

	fileSize := GetSpanValue(proof[len(proof)-1].Span)
	lastChunkIndex := (fileSize - 1) / bmt.MaxPayloadSize

	calculatedHash := proveSegment
	segmentIndex := proveSegmentIndex

	for _, step := range proof {
		parentChunkIndex, level := GetBMTIndexOfSegment(segmentIndex, lastChunkIndex)

		for _, sister := range step.SisterSegments {
			var err error
			if segmentIndex%2 == 0 {
				calculatedHash, err = bmt.Sha3hash(calculatedHash, sister)
			} else {
				calculatedHash, err = bmt.Sha3hash(sister, calculatedHash)
			}
			if err != nil {
				return nil, err
			}
			segmentIndex /= 2
		}

		var err error
		calculatedHash, err = bmt.Sha3hash(step.Span, calculatedHash)
		if err != nil {
			return nil, err
		}

		segmentIndex = parentChunkIndex
		lastChunkIndex >>= chunkBMTLevels * uint(1+level)
	}

	return calculatedHash, nil
}
