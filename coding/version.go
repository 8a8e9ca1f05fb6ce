// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the
// byte mode bit stream, Reed-Solomon blocks, module placement,
// masking and format information at error correction level M.
package coding // import "github.com/unixdj/qrm/coding"

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/unixdj/qrm/gf256"
)

var (
	ErrVersion  = errors.New("qr: invalid version")
	ErrCapacity = errors.New("qr: data too long")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// CapacityError reports data too long for any QR code.
// It matches ErrCapacity under errors.Is.
type CapacityError struct {
	Len int // length of data in bytes
	Max int // maximum length in bytes
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bytes, maximum is %d",
		e.Len, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// A Level represents a QR error correction level.
// Only level M is implemented.
type Level int

// M recovers about 15% of codewords.
// The value keeps the L, M, Q, H order.
const M Level = 1

func (l Level) String() string {
	if l == M {
		return "M"
	}
	return strconv.Itoa(int(l))
}

// formatBits returns the 2 bit format information code for l:
// L=01, M=00, Q=11, H=10.
func (l Level) formatBits() uint32 { return uint32(l^1) & 3 }

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// mustBeValid panics unless v is a valid version.  Versions come
// from ChooseVersion or from callers' constants; a bad one is a bug.
func (v Version) mustBeValid() {
	if !v.IsValid() {
		panic(ErrVersion.Error() + " " + strconv.Itoa(int(v)))
	}
}

// Size returns the number of modules on a side.
func (v Version) Size() int {
	v.mustBeValid()
	return int(v)*4 + 17
}

// rawModules returns the number of modules left for data and check
// bits after all function patterns and information areas.
func (v Version) rawModules() int {
	siz := v.Size()
	n := siz * siz
	n -= 3 * 8 * 8      // finder patterns and separators
	n -= 2 * (siz - 16) // timing strips between the separators
	n -= 2*15 + 1       // format information and the dark module
	if na := v.alignCount(); na > 1 {
		// na² boxes less three under the finders; the boxes
		// on row and column 6 share 5 modules with timing.
		n -= 25*(na*na-3) - 2*5*(na-2)
	}
	if v >= 7 {
		n -= 2 * 3 * 6 // version information
	}
	return n
}

// alignCount returns the number of alignment pattern
// coordinates on each axis.
func (v Version) alignCount() int {
	if v < 2 {
		return 0
	}
	return int(v)/7 + 2
}

// TotalCodewords returns the number of data and check bytes.
func (v Version) TotalCodewords() int { return v.rawModules() >> 3 }

// RemainderBits returns the number of zero bits following the last
// codeword to fill the matrix.
func (v Version) RemainderBits() int { return v.rawModules() & 7 }

// DataCodewords returns the number of data bytes at level M.
func (v Version) DataCodewords() int {
	lev := vtab[v]
	return v.TotalCodewords() - lev.nblock*lev.check
}

// CountBits returns the length of the byte mode character count.
func (v Version) CountBits() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// Capacity returns the number of bytes a byte mode segment can hold
// at level M.
func (v Version) Capacity() int {
	return (v.DataCodewords()*8 - 4 - v.CountBits()) >> 3
}

// A Block is a Reed-Solomon block: data and check byte counts.
type Block struct {
	Data  int
	Check int
}

// Blocks returns the error correction block plan for v at level M.
// Blocks holding one more data byte come last.
func (v Version) Blocks() []Block {
	lev := vtab[v]
	nd := v.DataCodewords()
	db := nd / lev.nblock
	normal := (db+1)*lev.nblock - nd
	b := make([]Block, lev.nblock)
	for i := range b {
		b[i] = Block{db, lev.check}
		if i >= normal {
			b[i].Data++
		}
	}
	return b
}

// AlignmentPositions returns the row and column coordinates of
// alignment pattern centres, in increasing order.
func (v Version) AlignmentPositions() []int {
	na := v.alignCount()
	if na == 0 {
		return nil
	}
	siz := v.Size()
	step := 26
	if v != 32 {
		// (siz-13)/(na*2-2), rounded up to even
		step = (siz - 13 + na*2 - 3) / (na*2 - 2) * 2
	}
	pos := make([]int, na)
	pos[0] = 6
	for i, p := na-1, siz-7; i > 0; i, p = i-1, p-step {
		pos[i] = p
	}
	return pos
}

// ChooseVersion returns the smallest version that holds n bytes.
func ChooseVersion(n int) (Version, error) {
	if n > MaxVersion.Capacity() {
		return 0, &CapacityError{n, MaxVersion.Capacity()}
	}
	i := sort.Search(int(MaxVersion), func(i int) bool {
		return Version(i+1).Capacity() >= n
	})
	return Version(i + 1), nil
}

// A level describes the error correction blocks of a version.
type level struct {
	nblock int
	check  int
}
