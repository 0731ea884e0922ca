// seehuhn.de/go/pixel - integer rasterization of 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixel

import "image/color"

// Color is an 8-bit-per-channel color as it is stored in a [Canvas].
// The channels are written to consecutive bytes in the order R, G, B, A.
//
// Channel values are not premultiplied by alpha.  The rasterizer never
// blends, so A is stored verbatim.
type Color struct {
	R, G, B, A uint8
}

// Packed returns the color whose channels are the four bytes of v, most
// significant byte first.  Packed(0xFF0000FF) is opaque red.
func Packed(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// Uint32 returns the packed form of c.  This is the inverse of [Packed].
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ColorModel converts arbitrary colors to [Color].
var ColorModel color.Model = color.ModelFunc(toColor)

func toColor(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
