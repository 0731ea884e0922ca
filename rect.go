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

import "image"

// FillRect fills the axis-aligned rectangle with top-left corner origin
// and the given extent.  The rectangle covers the pixels with
// origin.X <= x < origin.X+extent.X and origin.Y <= y < origin.Y+extent.Y.
// If either component of extent is zero or negative, nothing is drawn.
func (c *Canvas) FillRect(origin, extent image.Point, col Color) {
	if extent.X <= 0 || extent.Y <= 0 {
		return
	}
	r := c.clipRect(image.Rectangle{Min: origin, Max: origin.Add(extent)})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.SetPixel(image.Pt(x, y), col)
		}
	}
}

// Fill sets every pixel of the canvas to col.
func (c *Canvas) Fill(col Color) {
	c.FillRect(image.Point{}, image.Pt(c.Width, c.Height), col)
}
