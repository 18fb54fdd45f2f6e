// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

const (
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
)

const (
	i2cCmd  = 0x00 // I²C transaction carries a command byte
	i2cData = 0x40 // I²C transaction carries a GDDRAM data byte
)

// Panel geometry.
const (
	Width  = 128
	Height = 64
	// Pages is the number of 8 pixel high horizontal bands.
	Pages = Height / 8
)

// Pixel column values used by Clear and Fill.
const (
	Off byte = 0x00
	On  byte = 0xFF
)

// ErrOutOfBounds is returned when a drawing operation targets a column or
// page outside of the panel.
var ErrOutOfBounds = errors.New("ssd1306: out of bounds")

// Bus is the transport used by Dev. Any i2c.Bus satisfies it.
//
// Dev only ever writes: r is always nil.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:    0x3c,
	Spacing: 0,
}

// Opts defines the options for the device.
type Opts struct {
	// The I²C address of the display.
	Addr uint16
	// Spacing is the number of blank columns drawn after each glyph by
	// DrawText. 0 packs glyphs edge to edge.
	Spacing int
}

// Dev is an open handle to the display controller.
type Dev struct {
	bus     Bus
	addr    uint16
	spacing int
}

// New returns a Dev that talks to the controller at addr on bus.
//
// It sends nothing on the bus. Call Init before drawing.
func New(b Bus, addr uint16) *Dev {
	return &Dev{bus: b, addr: addr}
}

// NewI2C returns an initialized Dev that communicates over I²C to a SSD1306
// display controller.
//
// The panel is cleared as part of the initialization.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	if opts.Spacing < 0 || opts.Spacing > Width-GlyphWidth {
		return nil, fmt.Errorf("ssd1306: invalid spacing %d", opts.Spacing)
	}
	d := New(b, addr)
	d.spacing = opts.Spacing
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%v, %#x}", d.bus, d.addr)
}

// Bounds returns the panel size in pixels. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Init runs the power on sequence of a 128x64 panel, turns the display on
// and clears it.
//
// It stops at the first failed write, leaving the controller partially
// configured. There is no delay between commands; the caller must wait for
// the panel to settle after a reset if needed.
func (d *Dev) Init() error {
	// Page 64 has the full recommended flow.
	err := d.sendCommands(
		_DISPLAYOFF,               // Display off
		_SETMULTIPLEX, Height-1,   // 64 rows
		_SETDISPLAYOFFSET, 0x00,   // No vertical shift
		_SETSTARTLINE,             // Start line 0
		_SETSEGMENTREMAP,          // Column 127 is mapped to SEG0
		_COMSCANDEC,               // Scan from COM[N-1] to COM0
		_SETCOMPINS, 0x12,         // Alternative COM pins, no left/right remap; page 40
		_SETCONTRAST, 0x7F,        // Mid-scale
		_DISPLAYALLON_RESUME,      // Output follows GDDRAM content
		_NORMALDISPLAY,            // 1 is lit
		_SETDISPLAYCLOCKDIV, 0x80, // Power on reset value
		_CHARGEPUMP, 0x14,         // Must be enabled before display on; page 62
		_MEMORYMODE, 0x00,         // Horizontal addressing
		_DISPLAYON,                // Display on
	)
	if err != nil {
		return err
	}
	return d.Clear()
}

// Clear turns every pixel off.
func (d *Dev) Clear() error {
	return d.fillScreenWith(Off)
}

// Fill turns every pixel on.
func (d *Dev) Fill() error {
	return d.fillScreenWith(On)
}

// FillRect turns on or off every pixel in r.
//
// r is clipped to the panel. Its top and bottom edges must be multiples of 8
// since the controller addresses rows by pages.
func (d *Dev) FillRect(r image.Rectangle, on bool) error {
	if r.Min.Y&7 != 0 || r.Max.Y&7 != 0 {
		return fmt.Errorf("ssd1306: rectangle %v is not page aligned", r)
	}
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	v := Off
	if on {
		v = On
	}
	startPage, endPage := r.Min.Y/8, r.Max.Y/8
	if err := d.setWindow(byte(r.Min.X), byte(r.Max.X-1), byte(startPage), byte(endPage-1)); err != nil {
		return err
	}
	for i := 0; i < r.Dx()*(endPage-startPage); i++ {
		if err := d.sendData(v); err != nil {
			return err
		}
	}
	return nil
}

// DrawText renders text starting at column col of page page.
//
// Glyphs are GlyphWidth columns wide plus the configured spacing. When a
// glyph does not fit on the remaining columns of the page, it is drawn at
// column 0 of the next page. Characters not in the font are skipped: they
// use neither bus bandwidth nor space on the panel.
//
// It returns an error wrapping ErrOutOfBounds if col or page is outside of
// the panel, or if the text runs past the last page. Glyphs already drawn
// stay on the panel.
func (d *Dev) DrawText(text string, col, page int) error {
	if col < 0 || col >= Width {
		return fmt.Errorf("%w: column %d", ErrOutOfBounds, col)
	}
	if page < 0 || page >= Pages {
		return fmt.Errorf("%w: page %d", ErrOutOfBounds, page)
	}
	w := GlyphWidth + d.spacing
	for _, r := range text {
		g, ok := GlyphFor(r)
		if !ok {
			continue
		}
		if col+w > Width {
			col = 0
			page++
		}
		if page >= Pages {
			return fmt.Errorf("%w: text overflows past page %d", ErrOutOfBounds, Pages-1)
		}
		if err := d.drawGlyph(g, col, page); err != nil {
			return err
		}
		col += w
	}
	return nil
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommands(_SETCONTRAST, level)
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if blackOnWhite {
		return d.sendCommand(_INVERTDISPLAY)
	}
	return d.sendCommand(_NORMALDISPLAY)
}

// Halt turns off the display.
//
// GDDRAM content is retained; Init turns the display back on and clears it.
func (d *Dev) Halt() error {
	return d.sendCommand(_DISPLAYOFF)
}

func (d *Dev) drawGlyph(g Glyph, col, page int) error {
	if err := d.setCursor(byte(col), byte(page), byte(GlyphWidth+d.spacing)); err != nil {
		return err
	}
	for _, b := range g {
		if err := d.sendData(b); err != nil {
			return err
		}
	}
	for i := 0; i < d.spacing; i++ {
		if err := d.sendData(Off); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) fillScreenWith(v byte) error {
	if err := d.setWindow(0, Width-1, 0, Pages-1); err != nil {
		return err
	}
	for i := 0; i < Width*Pages; i++ {
		if err := d.sendData(v); err != nil {
			return err
		}
	}
	return nil
}

// setCursor restricts the following data writes to span columns of a single
// page, starting at col.
func (d *Dev) setCursor(col, page, span byte) error {
	return d.setWindow(col, col+span-1, page, page)
}

// setWindow sets the inclusive column and page ranges written by the
// following data bytes.
func (d *Dev) setWindow(colStart, colEnd, pageStart, pageEnd byte) error {
	return d.sendCommands(
		_COLUMNADDR, colStart, colEnd,
		_PAGEADDR, pageStart, pageEnd,
	)
}

// sendCommands sends each byte in its own transaction and stops at the
// first error.
func (d *Dev) sendCommands(c ...byte) error {
	for _, b := range c {
		if err := d.sendCommand(b); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) sendCommand(c byte) error {
	return d.bus.Tx(d.addr, []byte{i2cCmd, c}, nil)
}

func (d *Dev) sendData(c byte) error {
	return d.bus.Tx(d.addr, []byte{i2cData, c}, nil)
}

var _ conn.Resource = &Dev{}
