// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bmt

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ethersphere/bmtfile/pkg/swarm"
)

const (
	// SegmentSize is the size of a single BMT segment, fixed to the base hash size.
	SegmentSize = swarm.SectionSize
	// Branches is the number of segments on the base level of the tree.
	Branches = swarm.Branches
	// MaxPayloadSize is the maximum chunk payload the tree is built over.
	MaxPayloadSize = swarm.ChunkSize
	// MaxLevels is the number of levels above the leaf segments, log2(Branches).
	MaxLevels = 7
)

// Levels computes every level of the intra-chunk BMT over payload, padding it
// with zeros up to MaxPayloadSize. Levels[0] is the padded payload itself
// (128 32-byte segments); Levels[MaxLevels] holds a single 32-byte root.
// The returned slices are safe for the caller to retain: none of them alias
// payload or the pooled hashers used to compute them.
func Levels(payload []byte) ([][]byte, error) {
	if len(payload) > MaxPayloadSize {
		return nil, ErrOverflow
	}

	padded := make([]byte, MaxPayloadSize)
	copy(padded, payload)

	levels := make([][]byte, MaxLevels+1)
	levels[0] = padded

	current := padded
	for level := 0; level < MaxLevels; level++ {
		next, err := hashLevel(current)
		if err != nil {
			return nil, err
		}
		levels[level+1] = next
		current = next
	}

	return levels, nil
}

// hashLevel folds a level of 2n segments into n parent segments by hashing
// every adjacent pair. Pairs are independent so they are hashed concurrently;
// the result is bitwise identical to a sequential fold.
func hashLevel(level []byte) ([]byte, error) {
	pairSize := 2 * SegmentSize
	pairs := len(level) / pairSize
	next := make([]byte, pairs*SegmentSize)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < pairs; i++ {
		i := i
		g.Go(func() error {
			offset := i * pairSize
			hashed, err := doHash(level[offset : offset+pairSize])
			if err != nil {
				return err
			}
			copy(next[i*SegmentSize:(i+1)*SegmentSize], hashed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

// RootHash returns the root of the intra-chunk BMT over payload, without the
// span prefix.
func RootHash(payload []byte) ([]byte, error) {
	levels, err := Levels(payload)
	if err != nil {
		return nil, err
	}
	return levels[MaxLevels], nil
}

// Hash returns the chunk address H(span || RootHash(payload)).
func Hash(span, payload []byte) ([]byte, error) {
	root, err := RootHash(payload)
	if err != nil {
		return nil, err
	}
	return doHash(span, root)
}
