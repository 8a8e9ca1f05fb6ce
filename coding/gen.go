// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
)

// Level M error correction, from ISO/IEC 18004:2015 table 9:
// total check bytes and the number of blocks in the two groups.
// Blocks in the second group hold one more data byte.
var levelM = [41]struct {
	check  int
	group1 int
	group2 int
}{
	{0, 0, 0},
	{10, 1, 0}, // 1
	{16, 1, 0},
	{26, 1, 0},
	{36, 2, 0},
	{48, 2, 0}, // 5
	{64, 4, 0},
	{72, 4, 0},
	{88, 2, 2},
	{110, 3, 2},
	{130, 4, 1}, // 10
	{150, 1, 4},
	{176, 6, 2},
	{198, 8, 1},
	{216, 4, 5},
	{240, 5, 5}, // 15
	{280, 7, 3},
	{308, 10, 1},
	{338, 9, 4},
	{364, 3, 11},
	{416, 3, 13}, // 20
	{442, 17, 0},
	{476, 17, 0},
	{504, 4, 14},
	{560, 6, 14},
	{588, 8, 13}, // 25
	{644, 19, 4},
	{700, 22, 3},
	{728, 3, 23},
	{784, 21, 7},
	{812, 19, 10}, // 30
	{868, 2, 29},
	{924, 10, 23},
	{980, 14, 21},
	{1036, 14, 23},
	{1064, 12, 26}, // 35
	{1120, 6, 34},
	{1204, 29, 14},
	{1260, 13, 32},
	{1316, 40, 7},
	{1372, 18, 31}, // 40
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Level M block table.
var vtab = [MaxVersion + 1]level{
`)
	for v := 1; v < len(levelM); v++ {
		m := &levelM[v]
		nblock := m.group1 + m.group2
		if m.check%nblock != 0 {
			fmt.Fprintf(os.Stderr, "version %d: uneven blocks\n", v)
			os.Exit(1)
		}
		fmt.Fprintf(w, "\t%d: {%d, %d},\n", v, nblock, m.check/nblock)
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
