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

// Returned when a buffer of the wrong depth or channel layout is handed to an operation
type PreconditionError struct {
	Op   string // operation that rejected the buffer
	Want string
	Got  string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed, want %s, got %s", e.Op, e.Want, e.Got)
}

// Returns a PreconditionError unless m has 8-bit unsigned depth
func Require8U(op string, m *Mat) error {
	if m.Depth != Depth8U {
		return &PreconditionError{Op: op, Want: "depth " + Depth8U.String(), Got: "depth " + m.Depth.String()}
	}
	return nil
}
