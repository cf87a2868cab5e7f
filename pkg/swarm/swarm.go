// Copyright 2021 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swarm contains the basic constants and addressing primitives
// shared by the bmt and file packages.
package swarm

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/sha3"
)

const (
	// SpanSize is the byte length of the little-endian span prefix of a chunk.
	SpanSize = 8
	// SectionSize is the size of a single BMT segment, equal to the base hash size.
	SectionSize = 32
	// Branches is the number of segments held by a single chunk payload.
	Branches = 128
	// ChunkSize is the maximum number of payload bytes a single chunk can hold.
	ChunkSize = SectionSize * Branches
)

// NewHasher returns the base hash function used throughout the BMT: Keccak-256.
var NewHasher = sha3.NewLegacyKeccak256

// Address is a content address: the output of the BMT hash function.
type Address struct {
	b []byte
}

// NewAddress constructs an Address from a byte slice.
func NewAddress(b []byte) Address {
	return Address{b: b}
}

// ParseHexAddress returns an Address from a hex-encoded string representation.
func ParseHexAddress(s string) (a Address, err error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, err
	}
	return NewAddress(b), nil
}

// MustParseHexAddress returns an Address from a hex-encoded string
// representation, and panics if there is a parse error.
func MustParseHexAddress(s string) Address {
	a, err := ParseHexAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns a hex-encoded representation of the Address.
func (a Address) String() string {
	return hex.EncodeToString(a.b)
}

// Equal returns true if two addresses are identical.
func (a Address) Equal(b Address) bool {
	return bytes.Equal(a.b, b.b)
}

// IsZero returns true if the Address is not set to any value.
func (a Address) IsZero() bool {
	return a.Equal(ZeroAddress)
}

// Bytes returns the byte representation of the Address.
func (a Address) Bytes() []byte {
	return a.b
}

// UnmarshalJSON sets Address to a value from a JSON-encoded representation.
func (a *Address) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a, err = ParseHexAddress(s)
	return err
}

// MarshalJSON returns the JSON-encoded representation of the Address.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ZeroAddress is the address that has no value.
var ZeroAddress = NewAddress(nil)
