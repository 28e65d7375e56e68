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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Fixed point luma weights for Y = 0.299 R + 0.587 G + 0.114 B, scaled by 1<<grayShift
const (
	grayShift = 14
	grayR     = 4899
	grayG     = 9617
	grayB     = 1868
)

// Converts a three channel BGR buffer to a single channel gray buffer.
// Single channel input is returned as a copy
func ToGray(m *Mat) (*Mat, error) {
	if err := Require8U("ToGray", m); err != nil {
		return nil, err
	}
	switch m.Channels {
	case 1:
		return m.Clone(), nil
	case 3:
	default:
		return nil, &PreconditionError{Op: "ToGray", Want: "1 or 3 channels", Got: fmt.Sprintf("%d channels", m.Channels)}
	}

	res := NewMat(m.Rows, m.Cols, 1, Depth8U)
	res.ID = m.ID
	for i, o := 0, 0; o < len(res.Data); i, o = i+3, o+1 {
		b, g, r := int(m.Data[i]), int(m.Data[i+1]), int(m.Data[i+2])
		res.Data[o] = uint8((b*grayB + g*grayG + r*grayR + 1<<(grayShift-1)) >> grayShift)
	}
	return res, nil
}

// Converts a single channel gray buffer to three channel BGR by replicating the value.
// Three channel input is returned as a copy
func ToBGR(m *Mat) (*Mat, error) {
	if err := Require8U("ToBGR", m); err != nil {
		return nil, err
	}
	switch m.Channels {
	case 3:
		return m.Clone(), nil
	case 1:
	default:
		return nil, &PreconditionError{Op: "ToBGR", Want: "1 or 3 channels", Got: fmt.Sprintf("%d channels", m.Channels)}
	}

	res := NewMat(m.Rows, m.Cols, 3, Depth8U)
	res.ID = m.ID
	for i, v := range m.Data {
		res.Data[3*i], res.Data[3*i+1], res.Data[3*i+2] = v, v, v
	}
	return res, nil
}

// Converts an in-memory image into a buffer. Gray images become single channel,
// everything else is rendered to RGBA and stored as three channel BGR
func FromImage(img image.Image) *Mat {
	bounds := img.Bounds()
	if g, ok := img.(*image.Gray); ok {
		res := NewMat(bounds.Dy(), bounds.Dx(), 1, Depth8U)
		for y := 0; y < res.Rows; y++ {
			start := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(res.Row(y), g.Pix[start:start+res.Cols])
		}
		return res
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(rgba, image.Point{}, img, bounds, draw.Src, nil)

	res := NewMat(bounds.Dy(), bounds.Dx(), 3, Depth8U)
	for y := 0; y < res.Rows; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+4*res.Cols]
		dst := res.Row(y)
		for x := 0; x < res.Cols; x++ {
			dst[3*x], dst[3*x+1], dst[3*x+2] = src[4*x+2], src[4*x+1], src[4*x]
		}
	}
	return res
}

// Returns an image.Gray for single channel buffers and an opaque image.RGBA for
// three channel BGR buffers
func (m *Mat) ToImage() (image.Image, error) {
	if err := Require8U("ToImage", m); err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, m.Cols, m.Rows)
	switch m.Channels {
	case 1:
		g := image.NewGray(rect)
		for y := 0; y < m.Rows; y++ {
			copy(g.Pix[y*g.Stride:y*g.Stride+m.Cols], m.Row(y))
		}
		return g, nil
	case 3:
		rgba := image.NewRGBA(rect)
		for y := 0; y < m.Rows; y++ {
			row := m.Row(y)
			for x := 0; x < m.Cols; x++ {
				rgba.SetRGBA(x, y, color.RGBA{R: row[3*x+2], G: row[3*x+1], B: row[3*x], A: 0xff})
			}
		}
		return rgba, nil
	}
	return nil, &PreconditionError{Op: "ToImage", Want: "1 or 3 channels", Got: fmt.Sprintf("%d channels", m.Channels)}
}
