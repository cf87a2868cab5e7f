// Copyright 2023 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"github.com/ethereum/go-ethereum/common"
)

// ContractInclusionProof is the ABI-facing encoding of a file inclusion
// proof: one common.Hash per sister segment, plus the per-level span as a
// plain uint64, in the shape a verifying smart contract expects. It carries
// the same information as a []ChunkInclusionProof, re-typed for consumption
// outside this module.
type ContractInclusionProof struct {
	ProofSegments [][]common.Hash
	ProveSegment  common.Hash
	ChunkSpans    []uint64
}

// ToContractInclusionProof converts a proof produced by
// FileInclusionProofBottomUp, together with the segment it proves, into its
// ABI-facing encoding.
func ToContractInclusionProof(proof []ChunkInclusionProof, proveSegment []byte) ContractInclusionProof {
	out := ContractInclusionProof{
		ProofSegments: make([][]common.Hash, len(proof)),
		ProveSegment:  common.BytesToHash(proveSegment),
		ChunkSpans:    make([]uint64, len(proof)),
	}
	for i, step := range proof {
		out.ProofSegments[i] = segmentsToCommonHash(step.SisterSegments)
		out.ChunkSpans[i] = GetSpanValue(step.Span)
	}
	return out
}

func segmentsToCommonHash(segments [][]byte) []common.Hash {
	hashes := make([]common.Hash, len(segments))
	for i, s := range segments {
		hashes[i] = common.BytesToHash(s)
	}
	return hashes
}
