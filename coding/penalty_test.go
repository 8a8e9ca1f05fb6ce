// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func line(s string) func(int) bool {
	return func(j int) bool { return 0 <= j && j < len(s) && s[j] == '#' }
}

func TestLinePenalty(t *testing.T) {
	tests := []struct {
		s string
		p int
	}{
		{"#.###.#", 80},          // finder, quiet zone on both sides
		{"#.###.#.#", 40},        // quiet zone on the left only
		{"#.#.#.#.#.#", 0},       // timing
		{"#####", 3},             // run of 5
		{"..........#", 8},       // run of 10
		{"#######.#####", 5 + 3}, // two runs
		{"##.###.#.##", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.p, linePenalty(len(tt.s), line(tt.s)), "%q", tt.s)
	}
}

func TestPenalty(t *testing.T) {
	// 5x5 white: 10 runs of 5, 16 boxes, 0% black.
	c := &Code{Size: 5, Stride: 1, Bitmap: make([]byte, 5)}
	assert.Equal(t, 10*3+16*3+90, c.Penalty())

	// Checkerboard: no runs or boxes, 13 of 25 black.
	c.Bitmap = []byte{0xa8, 0x50, 0xa8, 0x50, 0xa8}
	assert.Equal(t, 0, c.Penalty())
}

func TestPenaltyHello(t *testing.T) {
	c, err := Encode([]byte("HELLO"), DefaultMask)
	assert.NoError(t, err)
	// Three finders, each seen in a row and a column.
	assert.GreaterOrEqual(t, c.Penalty(), 3*2*40)
}
