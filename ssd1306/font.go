// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// GlyphWidth is the number of pixel columns of a glyph.
const GlyphWidth = 5

// Glyph is a 5x8 character bitmap. Each byte is a vertical column of 8
// pixels, bit 0 being the top pixel.
type Glyph [GlyphWidth]byte

// Glyph indexes in font5x8.
const (
	glyphSpace  = 0
	glyphLetter = 1
	glyphDigit  = 27
)

var font5x8 = [...]Glyph{
	{0x00, 0x00, 0x00, 0x00, 0x00}, // Space
	{0x7E, 0x11, 0x11, 0x11, 0x7E}, // A
	{0x7F, 0x49, 0x49, 0x49, 0x36}, // B
	{0x3E, 0x41, 0x41, 0x41, 0x22}, // C
	{0x7F, 0x41, 0x41, 0x22, 0x1C}, // D
	{0x7F, 0x49, 0x49, 0x49, 0x41}, // E
	{0x7F, 0x09, 0x09, 0x09, 0x01}, // F
	{0x3E, 0x41, 0x49, 0x49, 0x7A}, // G
	{0x7F, 0x08, 0x08, 0x08, 0x7F}, // H
	{0x00, 0x41, 0x7F, 0x41, 0x00}, // I
	{0x20, 0x40, 0x41, 0x3F, 0x01}, // J
	{0x7F, 0x08, 0x14, 0x22, 0x41}, // K
	{0x7F, 0x40, 0x40, 0x40, 0x40}, // L
	{0x7F, 0x02, 0x0C, 0x02, 0x7F}, // M
	{0x7F, 0x04, 0x08, 0x10, 0x7F}, // N
	{0x3E, 0x41, 0x41, 0x41, 0x3E}, // O
	{0x7F, 0x09, 0x09, 0x09, 0x06}, // P
	{0x3E, 0x41, 0x51, 0x21, 0x5E}, // Q
	{0x7F, 0x09, 0x19, 0x29, 0x46}, // R
	{0x46, 0x49, 0x49, 0x49, 0x31}, // S
	{0x01, 0x01, 0x7F, 0x01, 0x01}, // T
	{0x3F, 0x40, 0x40, 0x40, 0x3F}, // U
	{0x0F, 0x30, 0x40, 0x30, 0x0F}, // V
	{0x7F, 0x20, 0x18, 0x20, 0x7F}, // W
	{0x63, 0x14, 0x08, 0x14, 0x63}, // X
	{0x03, 0x04, 0x78, 0x04, 0x03}, // Y
	{0x61, 0x51, 0x49, 0x45, 0x43}, // Z
	{0x3E, 0x51, 0x49, 0x45, 0x3E}, // 0
	{0x00, 0x42, 0x7F, 0x40, 0x00}, // 1
	{0x42, 0x61, 0x51, 0x49, 0x46}, // 2
	{0x21, 0x41, 0x45, 0x4B, 0x31}, // 3
	{0x18, 0x14, 0x12, 0x7F, 0x10}, // 4
	{0x27, 0x45, 0x45, 0x45, 0x39}, // 5
	{0x3C, 0x4A, 0x49, 0x49, 0x30}, // 6
	{0x01, 0x71, 0x09, 0x05, 0x03}, // 7
	{0x36, 0x49, 0x49, 0x49, 0x36}, // 8
	{0x06, 0x49, 0x49, 0x29, 0x1E}, // 9
}

// glyphIndex returns the index in font5x8 of the glyph for r.
//
// ok is false when the font has no glyph for r.
func glyphIndex(r rune) (int, bool) {
	switch {
	case r == ' ':
		return glyphSpace, true
	case r >= 'A' && r <= 'Z':
		return glyphLetter + int(r-'A'), true
	case r >= 'a' && r <= 'z':
		return glyphLetter + int(r-'a'), true
	case r >= '0' && r <= '9':
		return glyphDigit + int(r-'0'), true
	}
	return 0, false
}

// GlyphFor returns the bitmap used to render r.
//
// ok is false when r is not part of the font, in which case DrawText skips
// it.
func GlyphFor(r rune) (Glyph, bool) {
	i, ok := glyphIndex(r)
	if !ok {
		return Glyph{}, false
	}
	return font5x8[i], true
}
