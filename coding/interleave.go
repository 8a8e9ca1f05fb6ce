// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrm/gf256"

// Interleave splits data across blocks, adds check bytes to each block
// and returns a BitStream reading the data bytes interleaved across
// blocks, the check bytes interleaved likewise, and extra zero bits.
func Interleave(data []byte, blocks []Block, extra int) BitStream {
	var nd, nc, maxd, maxc int
	for _, bl := range blocks {
		nd += bl.Data
		nc += bl.Check
		maxd = max(maxd, bl.Data)
		maxc = max(maxc, bl.Check)
	}
	if len(data) != nd {
		panic("qr: wrong data length")
	}

	// Split and compute check bytes.
	dat := make([][]byte, len(blocks))
	chk := make([][]byte, len(blocks))
	check := make([]byte, nc)
	for i, bl := range blocks {
		dat[i], data = data[:bl.Data], data[bl.Data:]
		chk[i], check = check[:bl.Check], check[bl.Check:]
		gf256.NewRSEncoder(Field, bl.Check).ECC(dat[i], chk[i])
	}

	dst := make([]byte, 0, nd+nc)
	dst = interleave(dst, dat, maxd)
	dst = interleave(dst, chk, maxc)
	return NewBitStream(dst, extra)
}

// interleave appends byte i of every block in src to dst
// for i from 0 to n-1, skipping blocks too short.
func interleave(dst []byte, src [][]byte, n int) []byte {
	for i := 0; i < n; i++ {
		for _, b := range src {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}
