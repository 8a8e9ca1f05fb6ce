package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/unixdj/qrm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBASet(t *testing.T) {
	tests := []struct {
		in   string
		want rgba
		s    string
	}{
		{"fff", rgba{0xff, 0xff, 0xff, 0xff}, "white"},
		{"0008", rgba{0, 0, 0, 0x88}, "00000088"},
		{"12ab34", rgba{0x12, 0xab, 0x34, 0xff}, "12ab34"},
		{"12ab3456", rgba{0x12, 0xab, 0x34, 0x56}, "12ab3456"},
		{"Navy", rgba{0, 0, 0x80, 0xff}, "000080"},
		{"black", rgba{0, 0, 0, 0xff}, "black"},
	}
	for _, tt := range tests {
		var c rgba
		require.NoError(t, c.Set(tt.in, nil), tt.in)
		assert.Equal(t, tt.want, c, tt.in)
		assert.Equal(t, tt.s, c.String(), tt.in)
	}
	for _, in := range []string{"", "12", "12345", "ggg", "chartreuse"} {
		var c rgba
		assert.Error(t, c.Set(in, nil), in)
	}
}

func modules(c *qr.Code) []string {
	s := make([]string, c.Size)
	for y := range s {
		var b strings.Builder
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		s[y] = b.String()
	}
	return s
}

func TestRandr(t *testing.T) {
	defer func(cx int, inc [2]int) { g.cx, g.inc = cx, inc }(g.cx, g.inc)

	c, err := qr.EncodeString("HELLO")
	require.NoError(t, err)
	orig := modules(c)

	g.cx, g.inc = 0, [2]int{1, 1}
	assert.Equal(t, orig, modules(randr(c)))

	flip()
	f := modules(randr(c))
	for y, row := range orig {
		for x := range row {
			require.Equal(t, row[x], f[y][c.Size-1-x], "(%d,%d)", x, y)
		}
	}

	// Four rotations of the flipped code give it back.
	for i := 0; i < 4; i++ {
		rotate()
	}
	c, err = qr.EncodeString("HELLO")
	require.NoError(t, err)
	assert.Equal(t, f, modules(randr(c)))
}

func TestEPS(t *testing.T) {
	c, err := qr.EncodeString("HELLO")
	require.NoError(t, err)
	c.Scale = 4
	var b bytes.Buffer
	require.NoError(t, eps(c, &b))
	out := b.String()
	assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-2.0 EPSF-2.0\n"))
	assert.Contains(t, out, "%%Title: QR Code version 1\n")
	assert.Equal(t, 21, strings.Count(out, " r\n")+strings.Count(out, "\nr\n"))
	assert.True(t, strings.HasSuffix(out, "%%Trailer\n"))
}
