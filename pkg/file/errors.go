// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPayload is returned by MakeChunkedFile when called with a
	// zero-length input.
	ErrEmptyPayload = errors.New("file: empty payload")

	// ErrPayloadTooLargeForChunk is returned by MakeChunk when the payload
	// exceeds the maximum chunk payload size.
	ErrPayloadTooLargeForChunk = errors.New("file: payload too large for chunk")

	// ErrSegmentIndexOutOfRange is the sentinel wrapped by
	// SegmentIndexOutOfRangeError; check against it with errors.Is.
	ErrSegmentIndexOutOfRange = errors.New("file: segment index out of range")

	// ErrInvalidProofLength is returned by FileAddressFromInclusionProof when
	// the proof has no steps, or a step does not carry exactly
	// bmt.MaxLevels sister segments.
	ErrInvalidProofLength = errors.New("file: invalid inclusion proof length")

	// ErrInvalidSegmentSize is returned by FileAddressFromInclusionProof when
	// the segment to be proven is not exactly bmt.SegmentSize bytes.
	ErrInvalidSegmentSize = errors.New("file: invalid segment size")

	errEmptyChunkArray      = errors.New("file: given chunk array is empty")
	errImpossibleProofState = errors.New("file: impossible proof state")
)

// SegmentIndexOutOfRangeError reports a segment index beyond the last valid
// 32-byte segment of a payload or file.
type SegmentIndexOutOfRangeError struct {
	SegmentIndex    uint64
	MaxSegmentIndex uint64
}

func (e *SegmentIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("The given segment index %d is greater than %d", e.SegmentIndex, e.MaxSegmentIndex)
}

func (e *SegmentIndexOutOfRangeError) Unwrap() error {
	return ErrSegmentIndexOutOfRange
}

func newSegmentIndexOutOfRangeError(segmentIndex, maxSegmentIndex uint64) error {
	return &SegmentIndexOutOfRangeError{SegmentIndex: segmentIndex, MaxSegmentIndex: maxSegmentIndex}
}
