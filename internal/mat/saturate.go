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

import "math"

// Valid range of an 8-bit unsigned sample
const (
	MinUint8 = 0
	MaxUint8 = math.MaxUint8
)

// Clamps v into [min,max]
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Saturating cast of an integer to an 8-bit sample
func SaturateUint8(v int) uint8 {
	return uint8(Clamp(v, MinUint8, MaxUint8))
}

// Saturating cast of a float to an 8-bit sample. Rounds half to even, NaN maps to 0
func SaturateUint8F(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	r := math.RoundToEven(v)
	if r <= MinUint8 {
		return MinUint8
	}
	if r >= MaxUint8 {
		return MaxUint8
	}
	return uint8(r)
}
