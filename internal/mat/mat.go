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
)

// Element depth of a Mat, i.e. the type of a single channel value
type Depth int

const (
	Depth8U Depth = iota
	Depth8S
	Depth16U
	Depth16S
	Depth32S
	Depth32F
	Depth64F
)

var depthNames = []string{"8U", "8S", "16U", "16S", "32S", "32F", "64F"}
var depthSizes = []int{1, 1, 2, 2, 4, 4, 8}

func (d Depth) String() string {
	if d < 0 || int(d) >= len(depthNames) {
		return fmt.Sprintf("Depth(%d)", int(d))
	}
	return depthNames[d]
}

// Size of one channel value in bytes
func (d Depth) Size() int {
	if d < 0 || int(d) >= len(depthSizes) {
		return 0
	}
	return depthSizes[d]
}

// A row-major image buffer with interleaved channels.
// Data holds Rows*Cols*Channels*Depth.Size() bytes
type Mat struct {
	ID       int // Sequential ID number, for log output
	Rows     int
	Cols     int
	Channels int
	Depth    Depth
	Data     []byte
}

// Creates a zero-initialized buffer of given shape. Storage is taken from the byte pool
func NewMat(rows, cols, channels int, depth Depth) *Mat {
	if rows < 0 || cols < 0 || channels < 1 || depth.Size() == 0 {
		panic(fmt.Sprintf("mat: invalid shape %dx%dx%d depth %v", rows, cols, channels, depth))
	}
	data := GetBytes(rows * cols * channels * depth.Size())
	for i := range data {
		data[i] = 0
	}
	return &Mat{Rows: rows, Cols: cols, Channels: channels, Depth: depth, Data: data}
}

// Creates a buffer with 8-bit samples from the given data, which is not copied
func NewMatFromBytes(rows, cols, channels int, data []byte) *Mat {
	if len(data) != rows*cols*channels {
		panic(fmt.Sprintf("mat: %d bytes do not match shape %dx%dx%d", len(data), rows, cols, channels))
	}
	return &Mat{Rows: rows, Cols: cols, Channels: channels, Depth: Depth8U, Data: data}
}

// Creates a zero-initialized buffer with the same shape, depth and ID as m
func NewMatLike(m *Mat) *Mat {
	res := NewMat(m.Rows, m.Cols, m.Channels, m.Depth)
	res.ID = m.ID
	return res
}

// Returns a deep copy
func (m *Mat) Clone() *Mat {
	res := NewMatLike(m)
	copy(res.Data, m.Data)
	return res
}

// Returns the buffer storage to the pool. m must not be used afterwards
func (m *Mat) Release() {
	if m.Data != nil {
		PutBytes(m.Data)
		m.Data = nil
	}
}

// Number of pixels
func (m *Mat) Total() int { return m.Rows * m.Cols }

// Number of channel values
func (m *Mat) Samples() int { return m.Rows * m.Cols * m.Channels }

// Length of one row in bytes
func (m *Mat) Stride() int { return m.Cols * m.Channels * m.Depth.Size() }

// Returns a view of row i. Panics if i is out of range
func (m *Mat) Row(i int) []byte {
	if i < 0 || i >= m.Rows {
		panic(fmt.Sprintf("mat: row %d out of range [0,%d)", i, m.Rows))
	}
	stride := m.Stride()
	return m.Data[i*stride : (i+1)*stride : (i+1)*stride]
}

// Returns the 8-bit sample of channel ch at row y, column x
func (m *Mat) At(y, x, ch int) uint8 {
	return m.Row(y)[m.sampleOffset(x, ch)]
}

// Sets the 8-bit sample of channel ch at row y, column x
func (m *Mat) Set(y, x, ch int, v uint8) {
	m.Row(y)[m.sampleOffset(x, ch)] = v
}

func (m *Mat) sampleOffset(x, ch int) int {
	if x < 0 || x >= m.Cols || ch < 0 || ch >= m.Channels {
		panic(fmt.Sprintf("mat: column %d channel %d out of range for %s", x, ch, m.DimensionsToString()))
	}
	return x*m.Channels + ch
}

// Returns true if both buffers have the same shape and depth
func (m *Mat) SameShape(o *Mat) bool {
	return m.Rows == o.Rows && m.Cols == o.Cols && m.Channels == o.Channels && m.Depth == o.Depth
}

func (m *Mat) DimensionsToString() string {
	return fmt.Sprintf("%dx%dx%d %v", m.Cols, m.Rows, m.Channels, m.Depth)
}
