// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image returns an Image displaying the code, quiet zone included,
// Scale pixels per module.  The image uses a two colour palette.
func (c *Code) Image() image.Image {
	return &codeImage{c, c.palette(), c.pixels()}
}

// codeImage implements image.PalettedImage.
type codeImage struct {
	*Code
	pal color.Palette
	pix int
}

func (c *codeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.pix, c.pix)
}

func (c *codeImage) ColorModel() color.Model { return c.pal }

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if 0 <= x && x < c.pix && 0 <= y && y < c.pix && c.module(x, y) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.pal[c.ColorIndexAt(x, y)]
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG writes a PNG image displaying the code to w.
// The image is 1 bit per pixel with a two colour palette.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	if err := c.check(); err != nil {
		return err
	}
	return pngEncoder.Encode(w, c.Image())
}

// PNG returns a PNG image displaying the code, or nil if c cannot
// be rendered.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}
