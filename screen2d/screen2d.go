// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to preview what an OLED panel shows while the hardware is not
// connected.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	X, Y    int
	Palette *ansi256.Palette
	// Out defaults to a colorable stdout.
	Out io.Writer

	_ struct{}
}

// Dev is a 2D display emulator that outputs to the console.
//
// Each pixel is printed as two terminal cells so the aspect ratio is close
// to square.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette

	pixels *image.NRGBA
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{
		w:       w,
		palette: *p,
		pixels:  image.NewNRGBA(image.Rect(0, 0, opts.X, opts.Y)),
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen2D{%dx%d}", d.pixels.Rect.Dx(), d.pixels.Rect.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.pixels.Rect
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.pixels, r.Intersect(d.Bounds()), src, sp)
	return d.refresh()
}

func (d *Dev) refresh() error {
	d.buf.Reset()
	r := d.pixels.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		_, _ = d.buf.WriteString("\033[0m")
		for x := r.Min.X; x < r.Max.X; x++ {
			b := d.palette.Block(d.pixels.NRGBAAt(x, y))
			_, _ = d.buf.WriteString(b)
			_, _ = d.buf.WriteString(b)
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
