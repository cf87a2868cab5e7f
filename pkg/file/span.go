// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file

import (
	"encoding/binary"

	"github.com/ethersphere/bmtfile/pkg/swarm"
)

// SpanSize is the byte length of the little-endian span prefix carried by
// every chunk.
const SpanSize = swarm.SpanSize

// MakeSpan encodes n as the little-endian 8-byte span prefix: the count of
// original payload bytes subsumed under a chunk.
func MakeSpan(n uint64) []byte {
	span := make([]byte, SpanSize)
	binary.LittleEndian.PutUint64(span, n)
	return span
}

// GetSpanValue decodes a span previously produced by MakeSpan.
func GetSpanValue(span []byte) uint64 {
	return binary.LittleEndian.Uint64(span)
}
