// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes byte strings as QR codes.

Data is encoded in a single byte mode segment at error correction
level M, in the smallest of the 40 QR versions that holds it, with a
fixed mask pattern.  A Code can be rendered as an image, PNG, PBM or
text.
*/
package qr // import "github.com/unixdj/qrm"

import (
	"errors"
	"image/color"

	"github.com/unixdj/qrm/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")

	// ErrCapacity is matched by errors returned for data too long.
	ErrCapacity = coding.ErrCapacity
)

// Default rendering parameters.
const (
	DefaultScale  = 8
	DefaultBorder = 4 // minimum quiet zone for QR codes
)

// maxPixels limits the side of a rendered image.
const maxPixels = 1 << 16

// A Code is a QR code with rendering parameters.
type Code struct {
	coding.Code

	Scale   int             // image pixels per module
	Border  int             // quiet zone width in modules
	Palette *[2]color.Color // background, foreground; nil is white, black
	Reverse bool            // swap background and foreground
}

// Encode returns a QR code holding data, using the default mask.
func Encode(data []byte) (*Code, error) {
	return EncodeMask(data, coding.DefaultMask)
}

// EncodeString is like Encode for a string.  No character set
// conversion is done: the bytes of s are encoded as is.
func EncodeString(s string) (*Code, error) {
	return EncodeMask([]byte(s), coding.DefaultMask)
}

// EncodeMask returns a QR code holding data with the given mask
// pattern.
func EncodeMask(data []byte, mask coding.Mask) (*Code, error) {
	c, err := coding.Encode(data, mask)
	if err != nil {
		return nil, err
	}
	return &Code{
		Code:   *c,
		Scale:  DefaultScale,
		Border: DefaultBorder,
	}, nil
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && c.Stride >= (c.Size+7)>>3 &&
		len(c.Bitmap) >= c.Size*c.Stride &&
		c.Scale > 0 && c.Border >= 0
}

// check returns ErrArgs or ErrLargeImage if c cannot be rendered.
func (c *Code) check() error {
	if !c.isValid() {
		return ErrArgs
	}
	if (c.Size+2*c.Border)*c.Scale > maxPixels {
		return ErrLargeImage
	}
	return nil
}

// pixels returns the side of the image in pixels.
func (c *Code) pixels() int {
	return (c.Size + 2*c.Border) * c.Scale
}

// module reports whether the image pixel at x, y is dark,
// before Reverse is applied.
func (c *Code) module(x, y int) bool {
	return c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border)
}

// palette returns the background and foreground colours.
func (c *Code) palette() color.Palette {
	pal := color.Palette{color.White, color.Black}
	if c.Palette != nil {
		pal[0], pal[1] = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	return pal
}

// Bools returns the modules of c, row by row, without the quiet zone.
// True is black.
func (c *Code) Bools() [][]bool {
	siz := c.Size
	buf := make([]bool, siz*siz)
	b := make([][]bool, siz)
	for y := range b {
		b[y], buf = buf[:siz:siz], buf[siz:]
		for x := range b[y] {
			b[y][x] = c.Black(x, y)
		}
	}
	return b
}
