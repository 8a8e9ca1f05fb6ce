// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Place writes bits from s to the modules not reserved, in zigzag
// scan order: two columns at a time from the right edge, up and down
// alternately, right column first.  The number of bits must match the
// number of free modules exactly; Place panics otherwise.
func (m *Matrix) Place(s *BitStream) {
	siz := m.Size
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			if !m.Reserved(x, y) && s.Next() != 0 {
				m.set(x, y, true)
			}
			if !m.Reserved(x-1, y) && s.Next() != 0 {
				m.set(x-1, y, true)
			}
		}
		up = !up
	}
	if s.Remaining() != 0 {
		panic("qr: internal error: bit stream too long")
	}
}
