// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"fmt"

	"github.com/unixdj/qrm/coding"
)

func ExampleEncode() {
	c, err := coding.Encode([]byte("HELLO"), coding.DefaultMask)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Version, c.Level, c.Mask, c.Size)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			if c.Black(x, y) {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// 1 M 0 21
	// #######
	// #.....#
	// #.###.#
	// #.###.#
	// #.###.#
	// #.....#
	// #######
}

func ExampleChooseVersion() {
	for _, n := range []int{14, 15, 2331, 2332} {
		v, err := coding.ChooseVersion(n)
		fmt.Println(n, v, err)
	}
	// Output:
	// 14 1 <nil>
	// 15 2 <nil>
	// 2331 40 <nil>
	// 2332 0 qr: cannot encode 2332 bytes, maximum is 2331
}

func ExampleVersion_Blocks() {
	v := coding.Version(8)
	fmt.Println(v.Size(), v.TotalCodewords(), v.Capacity(), v.Blocks())
	// Output:
	// 49 242 152 [{38 22} {38 22} {39 22} {39 22}]
}
