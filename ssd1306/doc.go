// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a 128x64 monochrome OLED display driven by a
// SSD1306 controller over I²C.
//
// The driver keeps no frame buffer and no copy of the controller registers.
// Every operation sets the controller addressing window before streaming
// pixel data, so the state of the physical device is authoritative.
//
// Each command or data byte is sent as its own two byte I²C transaction: a
// control byte (0x00 for a command, 0x40 for GDDRAM data) followed by the
// payload. This is slow on a 100kHz bus but keeps the protocol trivial to
// audit and emulate.
//
// Text is rendered with a built-in 5x8 font covering space, A-Z and 0-9.
// Lower case letters are rendered as upper case. Any other character is
// silently skipped.
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// See page 28 for the command table and page 64 for the recommended
// initialization flow.
package ssd1306
