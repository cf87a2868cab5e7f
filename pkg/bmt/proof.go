// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

// InclusionProofSegments returns the MaxLevels sister segments needed to
// reconstruct the BMT root of payload from the segment at segmentIndex,
// ordered from the leaf level (index 0) to the level just below the root
// (index MaxLevels-1).
func InclusionProofSegments(payload []byte, segmentIndex int) ([][]byte, error) {
	if segmentIndex < 0 || segmentIndex >= Branches {
		return nil, ErrSegmentIndexOutOfRange
	}

	levels, err := Levels(payload)
	if err != nil {
		return nil, err
	}

	proof := make([][]byte, MaxLevels)
	pos := segmentIndex
	for level := 0; level < MaxLevels; level++ {
		sister := pos ^ 1
		seg := make([]byte, SegmentSize)
		copy(seg, levels[level][sister*SegmentSize:(sister+1)*SegmentSize])
		proof[level] = seg
		pos >>= 1
	}
	return proof, nil
}

// RootHashFromInclusionProof reconstructs the BMT root of a chunk from a
// segment, its index and the sister segments obtained from
// InclusionProofSegments, without access to the rest of the payload.
func RootHashFromInclusionProof(proofSegments [][]byte, segment []byte, segmentIndex int) ([]byte, error) {
	if len(proofSegments) != MaxLevels {
		return nil, ErrInvalidProofLength
	}
	if len(segment) != SegmentSize {
		return nil, ErrInvalidSegmentSize
	}

	current := segment
	pos := segmentIndex
	var err error
	for _, sister := range proofSegments {
		if pos%2 == 0 {
			current, err = doHash(current, sister)
		} else {
			current, err = doHash(sister, current)
		}
		if err != nil {
			return nil, err
		}
		pos >>= 1
	}
	return current, nil
}
