//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"math/bits"
)

// block compresses all full blocks of p into the state h. The
// argument n is the number of blocks compressed before this call and
// the function returns the updated count.
func block(h *[5]uint32, p []byte, n uint64, trace Tracer) uint64 {
	var w [16]uint32

	h0, h1, h2, h3, h4 := h[0], h[1], h[2], h[3], h[4]
	for len(p) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(p[i*4:])
		}

		a, b, c, d, e := h0, h1, h2, h3, h4

		i := 0
		for ; i < 16; i++ {
			f := (b & (c ^ d)) ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K0
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
			if trace != nil {
				trace(n, i, a, b, c, d, e)
			}
		}
		for ; i < 20; i++ {
			tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
			w[i&0xf] = bits.RotateLeft32(tmp, 1)

			f := (b & (c ^ d)) ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + _K0
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
			if trace != nil {
				trace(n, i, a, b, c, d, e)
			}
		}
		for ; i < 40; i++ {
			tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
			w[i&0xf] = bits.RotateLeft32(tmp, 1)

			f := b ^ c ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + _K1
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
			if trace != nil {
				trace(n, i, a, b, c, d, e)
			}
		}
		for ; i < 60; i++ {
			tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
			w[i&0xf] = bits.RotateLeft32(tmp, 1)

			f := (b & c) | (b & d) | (c & d)
			t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + _K2
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
			if trace != nil {
				trace(n, i, a, b, c, d, e)
			}
		}
		for ; i < 80; i++ {
			tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
			w[i&0xf] = bits.RotateLeft32(tmp, 1)

			f := b ^ c ^ d
			t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + _K3
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
			if trace != nil {
				trace(n, i, a, b, c, d, e)
			}
		}

		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e

		n++
		p = p[BlockSize:]
	}
	h[0], h[1], h[2], h[3], h[4] = h0, h1, h2, h3, h4

	return n
}
