// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package nfp1315 is a container for the SSD1306 text driver and its
// companion tools.
//
// ssd1306 is the driver. ssd1306/ssd1306test emulates the panel on an I²C
// bus for tests, and screen2d previews the emulated panel in a terminal.
package nfp1315
