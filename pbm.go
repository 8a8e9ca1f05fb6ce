// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	if err := c.check(); err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	pix := c.pixels()
	ps := strconv.Itoa(pix)
	b.WriteString("P4\n" + ps + " " + ps + "\n")
	row := make([]byte, (pix+7)>>3)
	for y := 0; y < pix; y += c.Scale {
		c.pbmRow(row, y)
		for i := 0; i < c.Scale; i++ {
			b.Write(row)
		}
	}
	return b.Flush()
}

// pbmRow fills row with image pixel row y.  In PBM 1 is black.
func (c *Code) pbmRow(row []byte, y int) {
	clear(row)
	for x := 0; x < c.pixels(); x++ {
		if c.module(x, y) != c.Reverse {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}
