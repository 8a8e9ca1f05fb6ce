// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty returns the mask evaluation penalty of c.  The encoder
// does not use it; it is reported for diagnostics.
//
// Total penalty is the sum of penalties for runs and boxes
// of same-colour modules, finder patterns and colour balance.
//
//   - RunP: for non-overlapping runs of n modules, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping finder patterns -> 40
//     The pattern is 1011101 with 0000 on either side; it may
//     extend into the quiet zone
//   - BalP: for n% of black modules -> 10*(ceiling(abs(n-50)/5)-1)
func (c *Code) Penalty() int {
	const (
		BoxPP = 3  // BoxP:  points per box
		BalPP = 10 // BalP:  points per 5% step
	)
	siz := c.Size
	p := 0
	for i := 0; i < siz; i++ {
		p += linePenalty(siz, func(j int) bool { return c.Black(j, i) })
		p += linePenalty(siz, func(j int) bool { return c.Black(i, j) })
	}

	black := 0
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			b := c.Black(x, y)
			if b {
				black++
			}
			if x+1 < siz && y+1 < siz && c.Black(x+1, y) == b &&
				c.Black(x, y+1) == b && c.Black(x+1, y+1) == b {
				p += BoxPP // BoxP
			}
		}
	}

	// 5% steps away from 50%, rounded up, less one.
	// Size is odd, so dev is never 0.
	sq := siz * siz
	dev := black*20 - sq*10
	if dev < 0 {
		dev = -dev
	}
	p += ((dev+sq-1)/sq - 1) * BalPP // BalP
	return p
}

// linePenalty returns RunP and FindP for a row or column of siz
// modules.  black reports the colour of module j; outside the code
// it must report white.
func linePenalty(siz int, black func(int) bool) int {
	const (
		MinRun    = 5  // RunP:  minimum run length
		RunPDelta = -2 // RunP:  add to run length
		FindPP    = 40 // FindP: points per pattern

		// last 11 modules, matched against finder patterns
		FindB = 0b0000_1011101 // quiet zone before
		FindA = 0b1011101_0000 // quiet zone after
	)
	p := 0
	r := 0        // current run length
	var last bool // colour of current run
	var pat uint32
	for j := -4; j < siz+4; j++ {
		b := black(j)
		if 0 <= j && j < siz {
			if j > 0 && b == last {
				r++
			} else {
				if r >= MinRun {
					p += r + RunPDelta // RunP
				}
				r, last = 1, b
			}
		}
		pat = pat << 1 & 0x7ff
		if b {
			pat |= 1
		}
		if pat == FindB || pat == FindA {
			p += FindPP // FindP
		}
	}
	if r >= MinRun {
		p += r + RunPDelta // RunP
	}
	return p
}
