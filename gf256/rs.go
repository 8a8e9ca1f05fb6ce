// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// generator polynomials, by field and degree
var gens sync.Map // map[genKey][]byte

type genKey struct {
	f *Field
	c int
}

// gen returns the generator polynomial of degree e,
// (x - α^0)(x - α^1)...(x - α^(e-1)), highest coefficient first.
// The result is shared and must not be modified.
func (f *Field) gen(e int) []byte {
	k := genKey{f, e}
	if p, ok := gens.Load(k); ok {
		return p.([]byte)
	}
	// p = 1
	p := make([]byte, e+1)
	p[0] = 1
	for i := 0; i < e; i++ {
		// p *= (x + α^i), in place from the low end
		c := f.Exp(i)
		for j := i + 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], c)
		}
	}
	v, _ := gens.LoadOrStore(k, p)
	return v.([]byte)
}

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
// An RSEncoder is safe for concurrent use.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid number of error correction bytes")
	}
	return &RSEncoder{f: f, c: c, gen: f.gen(c)}
}

// Gen returns a copy of the generator polynomial,
// highest coefficient (always 1) first.
func (rs *RSEncoder) Gen() []byte {
	return append([]byte(nil), rs.gen...)
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters:
// the remainder of data·x^c divided by the generator polynomial.
// check must be exactly c bytes long.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	f, gen := rs.f, rs.gen[1:]
	for i := range check {
		check[i] = 0
	}
	// check is a shift register holding the running remainder.
	for _, d := range data {
		k := d ^ check[0]
		copy(check, check[1:])
		check[len(check)-1] = 0
		if k == 0 {
			continue
		}
		for i, g := range gen {
			check[i] ^= f.Mul(g, k)
		}
	}
}
