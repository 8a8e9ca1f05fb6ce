// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/unixdj/qrm/gf256"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleaveSingleBlock(t *testing.T) {
	data := []byte{
		64, 84, 132, 84, 196, 196, 240, 236,
		17, 236, 17, 236, 17, 236, 17, 236,
	}
	s := Interleave(data, Version(1).Blocks(), 0)
	assert.Equal(t, 26*8, s.Len())
	assert.Equal(t, append(append([]byte{}, data...),
		35, 115, 35, 153, 236, 8, 201, 247, 55, 223), s.Bytes())
}

func TestInterleaveBlocks(t *testing.T) {
	v := Version(8)
	bl := v.Blocks()
	require.Equal(t, []Block{{38, 22}, {38, 22}, {39, 22}, {39, 22}}, bl)

	data := make([]byte, v.DataCodewords())
	for i := range data {
		data[i] = byte(i)
	}
	s := Interleave(data, bl, v.RemainderBits())
	out := s.Bytes()
	require.Len(t, out, v.TotalCodewords())

	// Column 0 of each block, then column 1.
	assert.Equal(t, []byte{0, 38, 76, 115, 1, 39, 77, 116}, out[:8])
	// After column 37 only the longer blocks have a byte left.
	assert.Equal(t, []byte{37, 75, 113, 152, 114, 153}, out[148:154])

	// Check bytes interleave the same way.
	check := make([][]byte, len(bl))
	off := 0
	for i, b := range bl {
		check[i] = make([]byte, b.Check)
		gf256.NewRSEncoder(Field, b.Check).ECC(data[off:off+b.Data], check[i])
		off += b.Data
	}
	for j := 0; j < 22; j++ {
		for i := range bl {
			require.Equal(t, check[i][j], out[154+j*len(bl)+i],
				"block %d check %d", i, j)
		}
	}
}

func TestInterleaveRemainder(t *testing.T) {
	v := Version(2)
	s := Interleave(make([]byte, v.DataCodewords()), v.Blocks(),
		v.RemainderBits())
	assert.Equal(t, 44*8+7, s.Len())
}

func TestInterleavePanics(t *testing.T) {
	assert.Panics(t, func() {
		Interleave(make([]byte, 15), Version(1).Blocks(), 0)
	})
}
