// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "testing"

func TestFontSize(t *testing.T) {
	if len(font5x8) != 37 {
		t.Fatalf("font has %d glyphs", len(font5x8))
	}
	for i, g := range font5x8[1:] {
		if g == (Glyph{}) {
			t.Errorf("glyph %d is blank", i+1)
		}
		for _, c := range g {
			if c&0x80 != 0 {
				t.Errorf("glyph %d uses the 8th row", i+1)
			}
		}
	}
}

func TestGlyphIndex(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		want := 1 + int(r-'A')
		for _, c := range []rune{r, r - 'A' + 'a'} {
			if i, ok := glyphIndex(c); !ok || i != want {
				t.Errorf("glyphIndex(%q) = %d, %t; want %d", c, i, ok, want)
			}
		}
	}
	for r := '0'; r <= '9'; r++ {
		want := 27 + int(r-'0')
		if i, ok := glyphIndex(r); !ok || i != want {
			t.Errorf("glyphIndex(%q) = %d, %t; want %d", r, i, ok, want)
		}
	}
	if i, ok := glyphIndex(' '); !ok || i != 0 {
		t.Errorf("glyphIndex(' ') = %d, %t", i, ok)
	}
	for _, r := range "!@#[]`{}~.,-_\t\n\x00é€" {
		if _, ok := glyphIndex(r); ok {
			t.Errorf("glyphIndex(%q) should not be supported", r)
		}
	}
}

func TestGlyphFor(t *testing.T) {
	if g, ok := GlyphFor(' '); !ok || g != (Glyph{}) {
		t.Errorf("GlyphFor(' ') = %v, %t", g, ok)
	}
	if g, ok := GlyphFor('?'); ok || g != (Glyph{}) {
		t.Errorf("GlyphFor('?') = %v, %t", g, ok)
	}
	want := Glyph{0x7F, 0x08, 0x08, 0x08, 0x7F}
	for _, r := range "Hh" {
		if g, ok := GlyphFor(r); !ok || g != want {
			t.Errorf("GlyphFor(%q) = %v, %t", r, g, ok)
		}
	}
	if g, _ := GlyphFor('0'); g != font5x8[27] {
		t.Errorf("GlyphFor('0') = %v", g)
	}
}
