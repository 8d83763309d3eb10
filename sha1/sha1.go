//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements an incremental SHA-1 digest engine as
// defined in RFC 3174.
//
// SHA-1 is cryptographically broken and should not be used for
// secure applications. The engine implements the algorithm as
// specified, weaknesses included.
package sha1

import (
	"errors"
)

// Size is the size of a SHA-1 digest in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

// MaxLength is the maximum number of bytes one message can have. The
// message bit length is encoded into a 64-bit field so the byte
// length must stay below 2^61.
const MaxLength = 1<<61 - 1

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

var (
	// ErrLengthBound is the panic value of Update when the message
	// would grow past MaxLength bytes.
	ErrLengthBound = errors.New("sha1: message length exceeds 2^61-1 bytes")

	// ErrInvalidState is returned when unmarshaling a malformed
	// engine state.
	ErrInvalidState = errors.New("sha1: invalid hash state")
)

// Sum returns the SHA-1 digest of the data.
func Sum(data []byte) [Size]byte {
	e := New()
	e.Update(data)
	return e.Final()
}
