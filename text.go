// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// Half blocks, indexed by upper module | lower module<<1.
var halfBlocks = [4]string{" ", "▀", "▄", "█"}

// String returns the code drawn with Unicode half blocks, two module
// rows per line, quiet zone included.  Black modules are drawn in the
// foreground colour, so on a dark terminal the code reads inverted
// unless c.Reverse is set.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	bord := c.Border
	var b strings.Builder
	b.Grow((c.Size + 2*bord + 1) * (c.Size/2 + bord + 1) * 3)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if c.Black(x, y) != c.Reverse {
				i |= 1
			}
			// The last line of an odd height has no lower half.
			if y+1 < c.Size+bord && c.Black(x, y+1) != c.Reverse {
				i |= 2
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the code to w as text, two characters per
// module, quiet zone included: "##" for black, spaces for white.
func (c *Code) EncodeASCII(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	bord := c.Border
	pix := c.Size + 2*bord
	b := make([]byte, 0, (pix*2+1)*pix)
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			if c.Black(x, y) != c.Reverse {
				b = append(b, "##"...)
			} else {
				b = append(b, "  "...)
			}
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}
