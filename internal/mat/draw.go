// Copyright (C) 2020 Markus L. Noga
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

package mat

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// A three channel color value in BGR order
type Vec3b [3]uint8

// Overwrites the pixel at p with color c. m is assumed to have three 8-bit channels.
// Performs no bounds check of its own, an invalid p panics on slice access
func DrawPoint(m *Mat, p Point, c Vec3b) {
	row := m.Row(p.Y)
	copy(row[p.X*3:p.X*3+3], c[:])
}

// Overwrites the pixel at p with the gray value v on all three channels
func DrawPointGray(m *Mat, p Point, v uint8) {
	DrawPoint(m, p, Vec3b{v, v, v})
}

// Overwrites the pixel at p with the given color, clamped to the RGB gamut
func DrawPointColor(m *Mat, p Point, c colorful.Color) {
	r, g, b := c.Clamped().RGB255()
	DrawPoint(m, p, Vec3b{b, g, r})
}

// Chroma and luminance of palette entries in HCL space
const (
	paletteChroma    = 0.35
	paletteLuminance = 0.7
)

// Returns n marker colors with hues evenly spaced around the HCL circle
func Palette(n int) []colorful.Color {
	res := make([]colorful.Color, n)
	for i := range res {
		h := 360 * float64(i) / float64(n)
		res[i] = colorful.Hcl(h, paletteChroma, paletteLuminance).Clamped()
	}
	return res
}
