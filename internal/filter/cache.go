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

// Capacity of the column cache. A right tap is reused as left tap two columns later
const columnCacheSize = 2

// A fixed capacity FIFO of previously computed column sums. Lives on the stack of one row pass
type columnCache struct {
	vals [columnCacheSize]int
	head int // index of the oldest entry
	n    int // number of entries
}

func (c *columnCache) reset() { c.head, c.n = 0, 0 }

func (c *columnCache) len() int { return c.n }

// Appends v. The cache must not be full
func (c *columnCache) push(v int) {
	if c.n == columnCacheSize {
		panic("filter: column cache overflow")
	}
	c.vals[(c.head+c.n)%columnCacheSize] = v
	c.n++
}

// Removes and returns the oldest entry. The cache must not be empty
func (c *columnCache) pop() int {
	if c.n == 0 {
		panic("filter: column cache underflow")
	}
	v := c.vals[c.head]
	c.head = (c.head + 1) % columnCacheSize
	c.n--
	return v
}
