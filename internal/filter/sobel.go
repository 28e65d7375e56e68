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

package filter

import (
	"github.com/mlnoga/stitchfilter/internal/mat"
)

// Applies a horizontal Sobel operator to an 8-bit buffer and returns the result in a new buffer
// of the same shape. Negative gradients saturate to zero. The first and last row, the first
// sample of each row and the samples of the last column are left at zero.
//
// Samples are addressed in the interleaved byte stream of a row, so for multi-channel input the
// taps at j-1 and j+1 are neighbouring bytes, not neighbouring pixels of the same channel.
func Sobel(in *mat.Mat) (*mat.Mat, error) {
	if err := mat.Require8U("Sobel", in); err != nil {
		return nil, err
	}

	res := mat.NewMatLike(in)
	rowCount := in.Rows - 1
	colCount := (in.Cols - 1) * in.Channels
	var cache columnCache

	for i := 1; i < rowCount; i++ {
		prev, cur, next := in.Row(i-1), in.Row(i), in.Row(i+1)
		out := res.Row(i)
		cache.reset() // no reuse across rows

		for j := 1; j < colCount; j++ {
			// the right tap of column j-2 is the left tap of column j
			var left int
			if cache.len() < columnCacheSize {
				left = columnSum(prev, cur, next, j-1)
			} else {
				left = cache.pop()
			}
			right := columnSum(prev, cur, next, j+1)
			cache.push(right)

			out[j] = mat.SaturateUint8(right - left)
		}
	}
	return res, nil
}

// Vertical 1-2-1 weighted sum at sample index j
func columnSum(prev, cur, next []byte, j int) int {
	return int(prev[j]) + int(cur[j])<<1 + int(next[j])
}
