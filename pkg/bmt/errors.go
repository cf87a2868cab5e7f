// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import (
	"errors"
)

var (
	// ErrOverflow is returned when a payload is longer than MaxPayloadSize.
	ErrOverflow = errors.New("BMT hash capacity exceeded")

	// ErrInvalidProofLength is returned by RootHashFromInclusionProof when the
	// supplied proof does not carry exactly MaxLevels sister segments.
	ErrInvalidProofLength = errors.New("bmt: invalid inclusion proof length")

	// ErrInvalidSegmentSize is returned when a segment to be proven is not
	// exactly SegmentSize bytes long.
	ErrInvalidSegmentSize = errors.New("bmt: invalid segment size")

	// ErrSegmentIndexOutOfRange is returned when a segment index does not
	// address one of the Branches segments of a chunk payload.
	ErrSegmentIndexOutOfRange = errors.New("bmt: segment index out of range")
)
