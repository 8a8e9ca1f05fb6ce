// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a growable bit buffer, filled most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for
// all codewords of a QR code of the given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalCodewords())}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the buffer.  It panics unless b holds whole bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v, nbit <= 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PadTo adds up to t zero terminator bits without exceeding n bits,
// zero fills the last byte and appends alternating 0xec, 0x11 pad
// bytes up to n bits.  n must be a multiple of 8.
func (b *Bits) PadTo(t, n int) {
	if b.nbit > n || n%8 != 0 {
		panic("qr: bad padding")
	}
	b.nbit = min(b.nbit+t, n)
	b.nbit = (b.nbit + 7) &^ 7
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); len(b.b)*8 < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = n
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b    []byte
	nbit int
	pos  int
}

// NewBitStream returns a BitStream reading from b followed by
// extra zero bits.
func NewBitStream(b []byte, extra int) BitStream {
	return BitStream{b: b, nbit: len(b)*8 + extra}
}

// Bytes returns the data underlying s, without the extra bits.
func (s *BitStream) Bytes() []byte { return s.b }

// Len returns the total number of bits in s.
func (s *BitStream) Len() int { return s.nbit }

// Remaining returns the number of bits not yet read.
func (s *BitStream) Remaining() int { return s.nbit - s.pos }

// Next returns the next bit from s as 0 or 1.
// It panics past the end of the stream.
func (s *BitStream) Next() byte {
	if s.pos >= s.nbit {
		panic("qr: bit stream exhausted")
	}
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
	}
	s.pos++
	return b
}
