// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306test implements an emulated SSD1306 panel usable as an I²C
// bus in tests.
package ssd1306test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Panel geometry of the emulated controller.
const (
	Width  = 128
	Height = 64
	Pages  = Height / 8
)

// Memory addressing modes; page 34.
const (
	ModeHorizontal = 0x00
	ModeVertical   = 0x01
	ModePage       = 0x02
)

const (
	ctrlCmd  = 0x00
	ctrlData = 0x40
)

// argCount is the number of parameter bytes following each multi-byte
// command.
var argCount = map[byte]int{
	0x20: 1, // Memory addressing mode
	0x21: 2, // Column address
	0x22: 2, // Page address
	0x81: 1, // Contrast
	0x8D: 1, // Charge pump
	0xA8: 1, // Multiplex ratio
	0xD3: 1, // Display offset
	0xD5: 1, // Clock divide ratio
	0xD9: 1, // Pre-charge period
	0xDA: 1, // COM pins configuration
	0xDB: 1, // VCOMH deselect level
}

// Panel emulates a SSD1306 controller connected to an I²C bus.
//
// It decodes command and data transfers into an emulated GDDRAM. It
// implements i2c.Bus so it can be handed to the driver directly, or wrapped
// in an i2ctest.Record. It implements image.Image in GDDRAM coordinates:
// segment and COM remapping are not applied.
type Panel struct {
	// Addr is the address the panel answers to. Transfers to any other
	// address fail.
	Addr uint16
	// Err, when set, is returned by every transfer after FailAfter
	// successful ones.
	Err       error
	FailAfter int

	mu        sync.Mutex
	gddram    [Pages][Width]byte
	transfers int
	pending   []byte

	on, inverted, allOn bool
	chargePump          bool
	contrast            byte
	mode                byte
	colStart, colEnd    byte
	pageStart, pageEnd  byte
	col, page           byte
}

// NewPanel returns a Panel in its power on reset state listening at addr.
func NewPanel(addr uint16) *Panel {
	return &Panel{
		Addr:     addr,
		contrast: 0x7F,
		mode:     ModePage,
		colEnd:   Width - 1,
		pageEnd:  Pages - 1,
	}
}

func (p *Panel) String() string {
	return fmt.Sprintf("ssd1306test.Panel{%#x}", p.Addr)
}

// SetSpeed implements i2c.Bus.
func (p *Panel) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx implements i2c.Bus.
//
// The first byte written is the control byte: 0x00 for a stream of commands,
// 0x40 for a stream of GDDRAM data. Reads are not supported.
func (p *Panel) Tx(addr uint16, w, r []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil && p.transfers >= p.FailAfter {
		return p.Err
	}
	if addr != p.Addr {
		return fmt.Errorf("ssd1306test: no device at %#x", addr)
	}
	if len(r) != 0 {
		return errors.New("ssd1306test: read unsupported")
	}
	if len(w) == 0 {
		return errors.New("ssd1306test: empty transfer")
	}
	switch w[0] {
	case ctrlCmd:
		for _, b := range w[1:] {
			p.command(b)
		}
	case ctrlData:
		for _, b := range w[1:] {
			p.data(b)
		}
	default:
		return fmt.Errorf("ssd1306test: unsupported control byte %#x", w[0])
	}
	p.transfers++
	return nil
}

// Transfers returns the number of successful transfers.
func (p *Panel) Transfers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transfers
}

// Page returns a copy of one GDDRAM page.
func (p *Panel) Page(page int) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]byte, Width)
	copy(out, p.gddram[page][:])
	return out
}

// DisplayOn reports whether the display is turned on.
func (p *Panel) DisplayOn() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// ChargePump reports whether the charge pump regulator is enabled.
func (p *Panel) ChargePump() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chargePump
}

// Inverted reports whether the display shows lit pixels for 0 bits.
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// Contrast returns the current contrast level.
func (p *Panel) Contrast() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contrast
}

// Mode returns the memory addressing mode.
func (p *Panel) Mode() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Window returns the current addressing window as a pixel rectangle.
func (p *Panel) Window() image.Rectangle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return image.Rect(int(p.colStart), int(p.pageStart)*8, int(p.colEnd)+1, (int(p.pageEnd)+1)*8)
}

// ColorModel implements image.Image.
func (p *Panel) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (p *Panel) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At implements image.Image.
//
// It returns what the panel shows, taking into account display on/off,
// inversion and the entire display on override.
func (p *Panel) At(x, y int) color.Color {
	if !image.Pt(x, y).In(p.Bounds()) {
		return color.Gray{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pixel(x, y)
}

// Snapshot returns what the panel shows, scaled up by scale with nearest
// neighbor interpolation.
func (p *Panel) Snapshot(scale int) *image.Gray {
	if scale < 1 {
		scale = 1
	}
	src := p.frame()
	dst := image.NewGray(image.Rect(0, 0, Width*scale, Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Refresh draws what the panel shows to dst.
func (p *Panel) Refresh(dst display.Drawer) error {
	return dst.Draw(dst.Bounds(), p.frame(), image.Point{})
}

func (p *Panel) frame() *image.Gray {
	p.mu.Lock()
	defer p.mu.Unlock()
	img := image.NewGray(p.Bounds())
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetGray(x, y, p.pixel(x, y))
		}
	}
	return img
}

func (p *Panel) pixel(x, y int) color.Gray {
	if !p.on {
		return color.Gray{}
	}
	lit := p.allOn || p.gddram[y/8][x]&(1<<uint(y&7)) != 0
	if p.inverted {
		lit = !lit
	}
	if lit {
		return color.Gray{Y: 255}
	}
	return color.Gray{}
}

func (p *Panel) command(b byte) {
	if len(p.pending) == 0 {
		if argCount[b] == 0 {
			p.exec(b, nil)
			return
		}
		p.pending = append(p.pending, b)
		return
	}
	p.pending = append(p.pending, b)
	if len(p.pending) == argCount[p.pending[0]]+1 {
		p.exec(p.pending[0], p.pending[1:])
		p.pending = p.pending[:0]
	}
}

func (p *Panel) exec(c byte, args []byte) {
	switch {
	case c == 0x20:
		p.mode = args[0] & 0x03
	case c == 0x21:
		p.colStart, p.colEnd = args[0]&0x7F, args[1]&0x7F
		p.col = p.colStart
	case c == 0x22:
		p.pageStart, p.pageEnd = args[0]&0x07, args[1]&0x07
		p.page = p.pageStart
	case c == 0x81:
		p.contrast = args[0]
	case c == 0x8D:
		p.chargePump = args[0]&0x04 != 0
	case c == 0xA4 || c == 0xA5:
		p.allOn = c == 0xA5
	case c == 0xA6 || c == 0xA7:
		p.inverted = c == 0xA7
	case c == 0xAE || c == 0xAF:
		p.on = c == 0xAF
	case c >= 0xB0 && c <= 0xB7:
		p.page = c & 0x07
	case c <= 0x0F && p.mode == ModePage:
		p.col = p.col&0xF0 | c
	case c >= 0x10 && c <= 0x1F && p.mode == ModePage:
		p.col = p.col&0x0F | (c&0x0F)<<4
	}
	// Remaining commands (remap, scan direction, start line, scrolling,
	// timing) do not change GDDRAM addressing.
}

func (p *Panel) data(b byte) {
	p.gddram[p.page&0x07][p.col&0x7F] = b
	switch p.mode {
	case ModeHorizontal:
		if p.col++; p.col > p.colEnd {
			p.col = p.colStart
			if p.page++; p.page > p.pageEnd {
				p.page = p.pageStart
			}
		}
	case ModeVertical:
		if p.page++; p.page > p.pageEnd {
			p.page = p.pageStart
			if p.col++; p.col > p.colEnd {
				p.col = p.colStart
			}
		}
	default:
		if p.col++; p.col >= Width {
			p.col = 0
		}
	}
}

var _ i2c.Bus = &Panel{}
var _ image.Image = &Panel{}
