// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Matrix is a QR code under construction.  Bitmap holds the
// modules, Map marks modules reserved for function patterns and
// format and version information.  Both are stored row by row,
// Stride bytes per row, leftmost module in the high bit.
//
// A Matrix is owned by a single encoder; it is not safe for
// concurrent use.
type Matrix struct {
	Version Version
	Size    int    // number of modules on a side
	Stride  int    // number of bytes per row
	Bitmap  []byte // 1 is black, 0 is white
	Map     []byte // 1 is reserved, 0 is data
}

// Matrix templates.  A template is created the first time a version
// is used and copied for every code.  Version 40 takes under 8 KB.
var templates [MaxVersion + 1]struct {
	once sync.Once
	m    *Matrix
}

// NewMatrix returns a matrix for a QR code of version v with finder,
// timing and alignment patterns and the dark module in place and all
// of them, as well as the format and version information areas,
// reserved.
func NewMatrix(v Version) *Matrix {
	v.mustBeValid()
	t := &templates[v]
	t.once.Do(func() { t.m = vplan(v) })
	return t.m.clone()
}

func (m *Matrix) clone() *Matrix {
	mm := *m
	n := len(m.Bitmap)
	buf := make([]byte, n+len(m.Map))
	copy(buf, m.Bitmap)
	copy(buf[n:], m.Map)
	mm.Bitmap, mm.Map = buf[:n:n], buf[n:]
	return &mm
}

// pos returns the byte offset and bit of the module at x, y.
func (m *Matrix) pos(x, y int) (int, byte) {
	return y*m.Stride + x>>3, 0x80 >> (x & 7)
}

// Black reports whether the module at column x, row y is black.
func (m *Matrix) Black(x, y int) bool {
	off, bit := m.pos(x, y)
	return m.Bitmap[off]&bit != 0
}

// Reserved reports whether the module at column x, row y
// is reserved.
func (m *Matrix) Reserved(x, y int) bool {
	off, bit := m.pos(x, y)
	return m.Map[off]&bit != 0
}

// set sets the colour of the module at x, y.
func (m *Matrix) set(x, y int, black bool) {
	off, bit := m.pos(x, y)
	if black {
		m.Bitmap[off] |= bit
	} else {
		m.Bitmap[off] &^= bit
	}
}

// flip inverts the module at x, y.
func (m *Matrix) flip(x, y int) {
	off, bit := m.pos(x, y)
	m.Bitmap[off] ^= bit
}

// reserve marks the module at x, y as reserved.
func (m *Matrix) reserve(x, y int) {
	off, bit := m.pos(x, y)
	m.Map[off] |= bit
}

// fix sets and reserves the module at x, y.
func (m *Matrix) fix(x, y int, black bool) {
	m.set(x, y, black)
	m.reserve(x, y)
}

// vplan lays out the function patterns for version v.
func vplan(v Version) *Matrix {
	siz := v.Size()
	stride := (siz + 7) >> 3
	buf := make([]byte, 2*stride*siz)
	m := &Matrix{
		Version: v,
		Size:    siz,
		Stride:  stride,
		Bitmap:  buf[:stride*siz],
		Map:     buf[stride*siz:],
	}

	// Timing strips (overwritten by boxes).
	for i := 0; i < siz; i++ {
		m.fix(i, 6, i&1 == 0) // horizontal
		m.fix(6, i, i&1 == 0) // vertical
	}

	// Position boxes, with separators.
	m.finderBox(3, 3)
	m.finderBox(siz-4, 3)
	m.finderBox(3, siz-4)

	// Alignment boxes, except where the position boxes are.
	apos := v.AlignmentPositions()
	last := len(apos) - 1
	for i, y := range apos {
		for j, x := range apos {
			if i == 0 && (j == 0 || j == last) || i == last && j == 0 {
				continue
			}
			m.alignBox(x, y)
		}
	}

	// Format information: 9+8 modules around the top left box,
	// 8 beside the top right box and 7 beside the bottom left box.
	for i := 0; i <= 8; i++ {
		m.reserve(8, i)
		m.reserve(i, 8)
	}
	for i := 1; i <= 8; i++ {
		m.reserve(siz-i, 8)
		m.reserve(8, siz-i)
	}

	// Version information: 6x3 modules above the bottom left box,
	// 3x6 left of the top right box.
	if v >= 7 {
		for i := 0; i < 6; i++ {
			for j := siz - 11; j < siz-8; j++ {
				m.reserve(i, j)
				m.reserve(j, i)
			}
		}
	}

	// One lonely black module.
	m.fix(8, siz-8, true)
	return m
}

// finderBox draws a position box centred at x, y: 7x7 modules with a
// black border, white ring and 3x3 black centre, surrounded by a white
// separator where it fits in the matrix.
func (m *Matrix) finderBox(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.Size || yy < 0 || yy >= m.Size {
				continue
			}
			d := max(abs(dx), abs(dy))
			m.fix(xx, yy, d != 2 && d != 4)
		}
	}
}

// alignBox draws an alignment box centred at x, y: 5x5 modules with a
// black border, white ring and black centre.
func (m *Matrix) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.fix(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
