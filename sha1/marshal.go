//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

const (
	magic         = "sha\x01"
	marshaledSize = len(magic) + 5*4 + BlockSize + 8
)

var (
	_ encoding.BinaryMarshaler   = (*Engine)(nil)
	_ encoding.BinaryUnmarshaler = (*Engine)(nil)
)

// MarshalBinary encodes the engine state so that an interrupted
// message can be resumed later with UnmarshalBinary. The tracer is
// not part of the state.
func (e *Engine) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, v := range e.h {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, e.x[:e.nx]...)
	b = b[:len(b)+len(e.x)-e.nx]
	b = binary.BigEndian.AppendUint64(b, e.Len())
	return b, nil
}

// UnmarshalBinary restores the engine state from data created by
// MarshalBinary.
func (e *Engine) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return fmt.Errorf("%w: size %d, expected %d",
			ErrInvalidState, len(data), marshaledSize)
	}
	if string(data[:len(magic)]) != magic {
		return fmt.Errorf("%w: identifier %q", ErrInvalidState,
			data[:len(magic)])
	}
	length := binary.BigEndian.Uint64(data[marshaledSize-8:])
	if length > MaxLength {
		return fmt.Errorf("%w: length %d", ErrInvalidState, length)
	}

	b := data[len(magic):]
	for i := range e.h {
		e.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	copy(e.x[:], b[:BlockSize])
	e.blocks = length / BlockSize
	e.nx = int(length % BlockSize)
	clear(e.x[e.nx:])

	return nil
}
