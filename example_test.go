// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"image/color"
	"os"

	"github.com/unixdj/qrm"
)

func ExampleEncodeString() {
	c, err := qr.EncodeString("https://github.com/unixdj/qrm")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("version", c.Version, "size", c.Size)
	fmt.Println("image", c.Image().Bounds().Dx())
	// Output:
	// version 3 size 29
	// image 296
}

func ExampleCode_EncodePNG() {
	c, err := qr.EncodeString("HELLO")
	if err != nil {
		fmt.Println(err)
		return
	}
	c.Scale = 4
	c.Palette = &[2]color.Color{
		color.RGBA{0xff, 0xff, 0xe0, 0xff},
		color.RGBA{0x00, 0x00, 0x80, 0xff},
	}
	f, err := os.CreateTemp("", "hello-*.png")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.Remove(f.Name())
	if err := c.EncodePNG(f); err != nil {
		fmt.Println(err)
	}
	if err := f.Close(); err != nil {
		fmt.Println(err)
	}
}
