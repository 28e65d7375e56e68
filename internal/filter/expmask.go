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

// Decay of the exponential mask
const DefaultTau = 0.75

// Applies a causal exponential mask with DefaultTau. See ExpMask1DTau
func ExpMask1D(in *mat.Mat) (*mat.Mat, error) {
	return ExpMask1DTau(in, DefaultTau)
}

// Applies the causal recursive filter out[k] = tau*out[k-1] + tau*in[k] to the flattened
// sample stream of an 8-bit buffer, returning a new buffer of the same shape.
// Rows are concatenated, so the state carries over from the end of one row to the start
// of the next. out[0] is always zero.
func ExpMask1DTau(in *mat.Mat, tau float64) (*mat.Mat, error) {
	if err := mat.Require8U("ExpMask1D", in); err != nil {
		return nil, err
	}

	res := mat.NewMatLike(in)
	src, dst := in.Data[:in.Samples()], res.Data[:res.Samples()]
	for k := 1; k < len(src); k++ {
		dst[k] = mat.SaturateUint8F(tau*float64(dst[k-1]) + tau*float64(src[k]))
	}
	return res, nil
}
