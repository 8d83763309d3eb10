//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"hash"
)

// Tracer is called after each compression round with the index of
// the block being compressed, the round number 0-79, and the working
// registers after the round.
type Tracer func(block uint64, round int, a, b, c, d, e uint32)

// Engine computes a SHA-1 digest incrementally. The zero Engine is
// not valid, use New to create engines. An Engine must not be used
// from multiple goroutines concurrently but distinct engines are
// independent.
type Engine struct {
	h      [5]uint32
	x      [BlockSize]byte
	nx     int
	blocks uint64
	tracer Tracer
}

var _ hash.Hash = (*Engine)(nil)

// New creates a new engine in its initial state.
func New() *Engine {
	e := new(Engine)
	e.Reset()
	return e
}

// Reset returns the engine to its initial state and discards any
// message in progress. The tracer is kept.
func (e *Engine) Reset() {
	e.h[0] = init0
	e.h[1] = init1
	e.h[2] = init2
	e.h[3] = init3
	e.h[4] = init4
	e.x = [BlockSize]byte{}
	e.nx = 0
	e.blocks = 0
}

// SetTracer sets the round tracer. The nil tracer disables tracing.
func (e *Engine) SetTracer(tracer Tracer) {
	e.tracer = tracer
}

// Len returns the number of message bytes processed since the last
// reset.
func (e *Engine) Len() uint64 {
	return e.blocks*BlockSize + uint64(e.nx)
}

// Update adds data to the message. Consecutive updates are equivalent
// to one update with the concatenation of their data. Update panics
// with ErrLengthBound if the message would exceed MaxLength bytes; the
// engine state is unmodified in that case.
func (e *Engine) Update(data []byte) {
	if uint64(len(data)) > MaxLength-e.Len() {
		panic(ErrLengthBound)
	}
	if e.nx > 0 {
		n := copy(e.x[e.nx:], data)
		e.nx += n
		if e.nx == BlockSize {
			e.compress(e.x[:])
			e.nx = 0
		}
		data = data[n:]
	}
	if len(data) >= BlockSize {
		n := len(data) &^ (BlockSize - 1)
		e.compress(data[:n])
		data = data[n:]
	}
	if len(data) > 0 {
		e.nx = copy(e.x[:], data)
	}
}

// Final pads the message, compresses the remaining blocks, and
// returns the digest. After Final returns, the engine is in its
// initial state and ready for a new message.
func (e *Engine) Final() [Size]byte {
	length := e.Len() << 3

	// Terminator, then zeros until 8 bytes remain for the length.
	e.x[e.nx] = 0x80
	e.nx++
	if e.nx > BlockSize-8 {
		clear(e.x[e.nx:])
		e.compress(e.x[:])
		e.nx = 0
	}
	clear(e.x[e.nx : BlockSize-8])
	binary.BigEndian.PutUint64(e.x[BlockSize-8:], length)
	e.compress(e.x[:])

	var digest [Size]byte

	binary.BigEndian.PutUint32(digest[0:], e.h[0])
	binary.BigEndian.PutUint32(digest[4:], e.h[1])
	binary.BigEndian.PutUint32(digest[8:], e.h[2])
	binary.BigEndian.PutUint32(digest[12:], e.h[3])
	binary.BigEndian.PutUint32(digest[16:], e.h[4])

	e.Reset()

	return digest
}

func (e *Engine) compress(p []byte) {
	e.blocks = block(&e.h, p, e.blocks, e.tracer)
}

// Size returns the digest size in bytes.
func (e *Engine) Size() int { return Size }

// BlockSize returns the block size in bytes.
func (e *Engine) BlockSize() int { return BlockSize }

// Write implements io.Writer. It never returns an error.
func (e *Engine) Write(p []byte) (int, error) {
	e.Update(p)
	return len(p), nil
}

// Sum appends the digest of the message so far to b. Unlike Final,
// it does not change the engine state.
func (e *Engine) Sum(b []byte) []byte {
	e0 := *e
	e0.tracer = nil
	digest := e0.Final()
	return append(b, digest[:]...)
}
