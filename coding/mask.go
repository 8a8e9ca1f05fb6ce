// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"math/bits"
	"strconv"
)

var ErrMask = errors.New("qr: invalid mask")

// A Mask is a QR data mask pattern number.
type Mask int

// DefaultMask is the mask applied unless another is requested.
// No mask evaluation is done: the mask is fixed.
const DefaultMask Mask = 0

func (mask Mask) String() string { return strconv.Itoa(int(mask)) }

// IsValid reports whether mask is one of the eight patterns.
func (mask Mask) IsValid() bool { return 0 <= mask && mask < 8 }

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//
// The functions report whether the module at column x, row y
// is inverted.
var maskPat = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// ApplyMask inverts the modules not reserved where mask says so.
func (m *Matrix) ApplyMask(mask Mask) {
	if !mask.IsValid() {
		panic(ErrMask.Error() + " " + mask.String())
	}
	inv := maskPat[mask]
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if inv(x, y) && !m.Reserved(x, y) {
				m.flip(x, y)
			}
		}
	}
}

const (
	formatPoly  = 0b101_0011_0111      // BCH(15,5) generator
	formatMask  = 0b101_0100_0001_0010 // XORed with format bits
	versionPoly = 0b1_1111_0010_0101   // BCH(18,6) generator
)

// bch returns the remainder of the polynomial v divided by poly of
// degree n over GF(2).
func bch(v, poly uint32, n int) uint32 {
	for i := bits.Len32(v) - 1; i >= n; i-- {
		if v>>i&1 != 0 {
			v ^= poly << (i - n)
		}
	}
	return v
}

// FormatBits returns the 15 bit format information for level l and
// mask: 2 level bits and 3 mask bits, 10 check bits, masked.
func FormatBits(l Level, mask Mask) uint32 {
	fb := (l.formatBits()<<3 | uint32(mask)&7) << 10
	return (fb | bch(fb, formatPoly, 10)) ^ formatMask
}

// VersionBits returns the 18 bit version information for v:
// 6 version bits and 12 check bits.
func VersionBits(v Version) uint32 {
	vb := uint32(v) << 12
	return vb | bch(vb, versionPoly, 12)
}

// WriteFormatInfo writes format information for level l and mask to
// both copies of the format area.  Bit 0 is the least significant.
func (m *Matrix) WriteFormatInfo(l Level, mask Mask) {
	siz := m.Size
	fb := FormatBits(l, mask)
	bit := func(i int) bool { return fb>>i&1 != 0 }

	// Around the top left box: down column 8, skipping
	// the timing strip, then left along row 8.
	for i := 0; i < 6; i++ {
		m.fix(8, i, bit(i))
	}
	m.fix(8, 7, bit(6))
	m.fix(8, 8, bit(7))
	m.fix(7, 8, bit(8))
	for i := 9; i < 15; i++ {
		m.fix(14-i, 8, bit(i))
	}

	// Beside the top right box along row 8, then beside the
	// bottom left box down column 8, under the dark module.
	for i := 0; i < 8; i++ {
		m.fix(siz-1-i, 8, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.fix(8, siz-15+i, bit(i))
	}
}

// WriteVersionInfo writes version information to both version areas.
// It does nothing for versions below 7.
func (m *Matrix) WriteVersionInfo() {
	if m.Version < 7 {
		return
	}
	siz := m.Size
	vb := VersionBits(m.Version)
	for i := 0; i < 18; i++ {
		b := vb>>i&1 != 0
		a, c := siz-11+i%3, i/3
		m.fix(a, c, b) // top right
		m.fix(c, a, b) // bottom left
	}
}
