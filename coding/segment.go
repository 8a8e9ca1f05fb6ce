// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// byteMode is the 4 bit byte mode indicator.
const byteMode = 0b0100

// maxTerminator is the length of the terminator for QR codes.
const maxTerminator = 4

// EncodeData returns the data codewords for a QR code of version v
// holding data in a single byte mode segment: mode indicator,
// character count, data, terminator and padding.
// The result is exactly v.DataCodewords() bytes long.
func EncodeData(data []byte, v Version) (*Bits, error) {
	if max := v.Capacity(); len(data) > max {
		return nil, &CapacityError{len(data), max}
	}
	b := NewBits(v)
	b.Write(byteMode, 4)
	b.Write(uint32(len(data)), v.CountBits())
	// The 12 or 20 bit header leaves the data half a byte off.
	for len(data) >= 4 {
		b.Write(uint32(data[0])<<24|uint32(data[1])<<16|
			uint32(data[2])<<8|uint32(data[3]), 32)
		data = data[4:]
	}
	for _, c := range data {
		b.Write(uint32(c), 8)
	}
	b.PadTo(maxTerminator, v.DataCodewords()*8)
	return b, nil
}
