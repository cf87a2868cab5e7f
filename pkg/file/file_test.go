// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package file_test

import (
	"bytes"
	"testing"

	"github.com/ethersphere/bmtfile/pkg/bmt"
	"github.com/ethersphere/bmtfile/pkg/file"
	"github.com/ethersphere/bmtfile/pkg/swarm"
	mockbytes "gitlab.com/nolash/go-mockbytes"
)

// filler returns a deterministic, non-repeating byte sequence of length n,
// useful for exercising tree construction without needing real file content.
func filler(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*2654435761 + 1)
	}
	return b
}

func TestMakeChunkedFileRejectsEmptyPayload(t *testing.T) {
	_, err := file.MakeChunkedFile(nil)
	if err != file.ErrEmptyPayload {
		t.Fatalf("got error %v, want %v", err, file.ErrEmptyPayload)
	}
}

func TestSingleChunkIdentity(t *testing.T) {
	for _, n := range []int{1, 100, bmt.MaxPayloadSize} {
		n := n
		t.Run("", func(t *testing.T) {
			cf, err := file.MakeChunkedFile(filler(n))
			if err != nil {
				t.Fatal(err)
			}
			leaves := cf.LeafChunks()
			if len(leaves) != 1 {
				t.Fatalf("got %d leaf chunks, want 1", len(leaves))
			}

			cfAddr, err := cf.Address()
			if err != nil {
				t.Fatal(err)
			}
			leafAddr, err := leaves[0].Address()
			if err != nil {
				t.Fatal(err)
			}
			if !cfAddr.Equal(leafAddr) {
				t.Fatalf("chunked file address %s != leaf address %s", cfAddr, leafAddr)
			}
			if !bytes.Equal(cf.Span(), leaves[0].Span()) {
				t.Fatalf("chunked file span %x != leaf span %x", cf.Span(), leaves[0].Span())
			}
		})
	}
}

func TestRootSpanEqualsLength(t *testing.T) {
	for _, n := range []int{1, bmt.MaxPayloadSize, bmt.MaxPayloadSize + 1, bmt.MaxPayloadSize*129 + 17} {
		n := n
		t.Run("", func(t *testing.T) {
			cf, err := file.MakeChunkedFile(filler(n))
			if err != nil {
				t.Fatal(err)
			}
			if got := file.GetSpanValue(cf.Span()); got != uint64(n) {
				t.Fatalf("got span value %d, want %d", got, n)
			}
		})
	}
}

func TestTreeHeightMonotonicity(t *testing.T) {
	cases := []struct {
		length    int
		wantLevels int
	}{
		{1, 1},
		{bmt.MaxPayloadSize, 1},
		{bmt.MaxPayloadSize + 1, 2},
		{bmt.MaxPayloadSize * bmt.Branches, 2},
	}
	for _, c := range cases {
		c := c
		t.Run("", func(t *testing.T) {
			cf, err := file.MakeChunkedFile(filler(c.length))
			if err != nil {
				t.Fatal(err)
			}
			tree, err := cf.BMT()
			if err != nil {
				t.Fatal(err)
			}
			if len(tree) != c.wantLevels {
				t.Fatalf("length %d: got %d levels, want %d", c.length, len(tree), c.wantLevels)
			}
		})
	}
}

func TestRootIsSingleton(t *testing.T) {
	for _, n := range []int{1, bmt.MaxPayloadSize + 1, bmt.MaxPayloadSize*129 + 1} {
		n := n
		t.Run("", func(t *testing.T) {
			cf, err := file.MakeChunkedFile(filler(n))
			if err != nil {
				t.Fatal(err)
			}
			tree, err := cf.BMT()
			if err != nil {
				t.Fatal(err)
			}
			if len(tree[len(tree)-1]) != 1 {
				t.Fatalf("top level has %d chunks, want 1", len(tree[len(tree)-1]))
			}
		})
	}
}

func TestIntermediatePayloadPrefixRule(t *testing.T) {
	cf, err := file.MakeChunkedFile(filler(bmt.MaxPayloadSize*2 + 17))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := cf.BMT()
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) < 2 {
		t.Fatalf("expected at least 2 levels, got %d", len(tree))
	}

	firstLeafAddress, err := tree[0][0].Address()
	if err != nil {
		t.Fatal(err)
	}
	parentPayload := tree[1][0].Data()
	if !bytes.Equal(parentPayload[:bmt.SegmentSize], firstLeafAddress.Bytes()) {
		t.Fatalf("parent payload prefix %x does not equal first child's address %s", parentPayload[:bmt.SegmentSize], firstLeafAddress)
	}

	secondLeafAddress, err := tree[0][1].Address()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(parentPayload[bmt.SegmentSize:2*bmt.SegmentSize], secondLeafAddress.Bytes()) {
		t.Fatalf("parent payload second window does not equal second child's address")
	}
}

func TestPaddingChangesAddressViaSpan(t *testing.T) {
	short := filler(100)
	padded := make([]byte, 200)
	copy(padded, short)

	cfShort, err := file.MakeChunkedFile(short)
	if err != nil {
		t.Fatal(err)
	}
	cfPadded, err := file.MakeChunkedFile(padded)
	if err != nil {
		t.Fatal(err)
	}

	shortAddr, err := cfShort.Address()
	if err != nil {
		t.Fatal(err)
	}
	paddedAddr, err := cfPadded.Address()
	if err != nil {
		t.Fatal(err)
	}
	if shortAddr.Equal(paddedAddr) {
		t.Fatal("address did not change after appending zero bytes")
	}
}

// TestKnownVectorS1 pins the chunked-file address of a 3-byte payload to the
// value produced by the reference implementation.
func TestKnownVectorS1(t *testing.T) {
	cf, err := file.MakeChunkedFile([]byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatal(err)
	}
	if len(cf.LeafChunks()) != 1 {
		t.Fatalf("got %d leaf chunks, want 1", len(cf.LeafChunks()))
	}

	got, err := cf.Address()
	if err != nil {
		t.Fatal(err)
	}
	want := swarm.MustParseHexAddress("ca6357a08e317d15ec560fef34e4c45f8f19f01c372aa70f1da72bfa7f1a4338")
	if !got.Equal(want) {
		t.Fatalf("got address %s, want %s", got, want)
	}
}

// TestLargeFileTreeShape exercises the 3-level, saturated-first-level shape
// described for a multi-megabyte file (S2). The address is not pinned here:
// the reference hex is over an undisclosed fixture file whose exact bytes
// this module has no access to, and no generator available to this module
// reproduces them (filler, the deterministic-but-unofficial sequence used
// throughout this file, is not the reference implementation's fixture and
// pinning a guessed hash against it would fabricate a known answer rather
// than ground one). TestKnownVectorCarrierChunk below pins a different,
// independently-verifiable multi-level address instead, using the same
// reference generator and known-answer table the teacher repository itself
// publishes for this exact purpose.
func TestLargeFileTreeShape(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping multi-megabyte tree construction in short mode")
	}

	const length = 15726634
	cf, err := file.MakeChunkedFile(filler(length))
	if err != nil {
		t.Fatal(err)
	}
	if got := file.GetSpanValue(cf.Span()); got != length {
		t.Fatalf("got span value %d, want %d", got, length)
	}

	tree, err := cf.BMT()
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 3 {
		t.Fatalf("got %d levels, want 3", len(tree))
	}
	if len(tree[2]) != 1 {
		t.Fatalf("got %d chunks at top level, want 1", len(tree[2]))
	}
	if len(tree[1][0].Data()) != bmt.MaxPayloadSize {
		t.Fatalf("got level-1 payload length %d, want %d", len(tree[1][0].Data()), bmt.MaxPayloadSize)
	}
}

// fileVectorLength and fileVectorHash are bee's own index-17 entry from
// pkg/file/testing/vector.go: exactly bmt.Branches+1 leaf chunks, the
// smallest length that forces the leaf-level carrier-chunk rule, generated
// with gitlab.com/nolash/go-mockbytes and verified against the reference
// implementation.
const (
	fileVectorLength = bmt.MaxPayloadSize * (bmt.Branches + 1)
	fileVectorHash   = "b8e1804e37a064d28d161ab5f256cc482b1423d5cd0a6b30fde7b0f51ece9199"
)

// TestKnownVectorCarrierChunk pins the chunked-file address of a
// deterministically-generated, exactly-129-leaf-chunk payload (the smallest
// length that forces the leaf-level carrier-chunk rule to trigger) to the
// known answer published by the reference implementation, grounding the
// same invariant spec scenario S2 exercises (a multi-level root whose
// address matches a Swarm-verified fixture) on a fixture this module can
// actually reproduce byte for byte.
func TestKnownVectorCarrierChunk(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 129-chunk carrier construction in short mode")
	}

	g := mockbytes.New(0, mockbytes.MockTypeStandard).WithModulus(255)
	payload, err := g.SequentialBytes(fileVectorLength)
	if err != nil {
		t.Fatal(err)
	}

	cf, err := file.MakeChunkedFile(payload)
	if err != nil {
		t.Fatal(err)
	}
	got, err := cf.Address()
	if err != nil {
		t.Fatal(err)
	}
	want := swarm.MustParseHexAddress(fileVectorHash)
	if !got.Equal(want) {
		t.Fatalf("got address %s, want %s", got, want)
	}
}
