// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a finished QR code: a square module grid
// without the quiet zone.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of modules on a side
	Stride int    // number of bytes per row

	Version Version // QR version
	Level   Level   // error correction level
	Mask    Mask    // mask pattern
}

// Black reports whether the module at column x, row y is black.
// Modules outside the code are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x>>3]&(0x80>>(x&7)) != 0
}

// Encode returns a QR code holding data in a single byte mode
// segment at level M, in the smallest version it fits,
// with the given mask pattern.
func Encode(data []byte, mask Mask) (*Code, error) {
	v, err := ChooseVersion(len(data))
	if err != nil {
		return nil, err
	}
	return EncodeVersion(data, v, mask)
}

// EncodeVersion is like Encode for a fixed version.
func EncodeVersion(data []byte, v Version, mask Mask) (*Code, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !mask.IsValid() {
		return nil, ErrMask
	}
	b, err := EncodeData(data, v)
	if err != nil {
		return nil, err
	}
	s := Interleave(b.Bytes(), v.Blocks(), v.RemainderBits())
	m := NewMatrix(v)
	m.Place(&s)
	m.ApplyMask(mask)
	m.WriteFormatInfo(M, mask)
	m.WriteVersionInfo()
	return &Code{
		Bitmap:  m.Bitmap,
		Size:    m.Size,
		Stride:  m.Stride,
		Version: v,
		Level:   M,
		Mask:    mask,
	}, nil
}
