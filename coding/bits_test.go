// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(0b0100, 4)
	b.Write(5, 8)
	b.Write(0, 0)
	b.Write(0xabc, 12)
	b.Write(1, 1)
	assert.Equal(t, 25, b.Bits())
	assert.Panics(t, func() { b.Bytes() })
	b.Write(0x7f, 7)
	assert.Equal(t, 32, b.Bits())
	assert.Equal(t, []byte{0x40, 0x5a, 0xbc, 0xff}, b.Bytes())

	b.Reset()
	assert.Equal(t, 0, b.Bits())
	b.Write(0xdeadbeef, 32)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b.Bytes())
}

func TestPadTo(t *testing.T) {
	var b Bits
	b.Write(0b101, 3)
	b.PadTo(4, 40)
	assert.Equal(t, []byte{0xa0, 0xec, 0x11, 0xec, 0x11}, b.Bytes())

	// Terminator truncated at the end of capacity.
	b.Reset()
	b.Write(0x3fff, 14)
	b.PadTo(4, 16)
	assert.Equal(t, []byte{0xff, 0xfc}, b.Bytes())

	b.Reset()
	b.Write(1, 9)
	assert.Panics(t, func() { b.PadTo(4, 8) })
	assert.Panics(t, func() { b.PadTo(4, 12) })
}

func TestEncodeData(t *testing.T) {
	b, err := EncodeData([]byte("HELLO"), 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		64, 84, 132, 84, 196, 196, 240, 236,
		17, 236, 17, 236, 17, 236, 17, 236,
	}, b.Bytes())

	// Full version 1: no room for terminator or padding.
	data := bytes.Repeat([]byte{0xff}, 14)
	b, err = EncodeData(data, 1)
	require.NoError(t, err)
	got := b.Bytes()
	require.Len(t, got, 16)
	assert.Equal(t, []byte{0x40, 0xef}, got[:2])
	assert.Equal(t, byte(0xf0), got[15])

	// 16 bit count from version 10.
	b, err = EncodeData([]byte{0x12}, 10)
	require.NoError(t, err)
	got = b.Bytes()
	require.Len(t, got, 216)
	assert.Equal(t, []byte{0x40, 0x00, 0x11, 0x20, 0xec, 0x11}, got[:6])

	_, err = EncodeData(make([]byte, 15), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacity))
}

func TestEncodeDataLength(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, n := range []int{0, 1, v.Capacity() / 2, v.Capacity()} {
			b, err := EncodeData(make([]byte, n), v)
			require.NoError(t, err)
			require.Len(t, b.Bytes(), v.DataCodewords(), "v%d n=%d", v, n)
		}
	}
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5}, 3)
	assert.Equal(t, 11, s.Len())
	var got []byte
	for s.Remaining() > 0 {
		got = append(got, s.Next())
	}
	assert.Equal(t, []byte{1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0}, got)
	assert.Equal(t, []byte{0xa5}, s.Bytes())
	assert.Panics(t, func() { s.Next() })
}
