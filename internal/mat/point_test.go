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
	"testing"
)

func TestIsPointOffMat(t *testing.T) {
	m := NewMat(4, 5, 3, Depth8U) // 4 rows, 5 cols

	tcs := []struct {
		p   Point
		off bool
	}{
		{Point{-1, 0}, true},
		{Point{0, -1}, true},
		{Point{0, 0}, true}, // left of the last column
		{Point{2, 2}, true},
		{Point{3, 3}, true},
		{Point{4, 0}, false}, // last column
		{Point{4, 3}, false},
		{Point{4, 4}, true}, // below the last row
		{Point{5, 0}, false}, // right of the last column
		{Point{100, 1}, false},
	}

	for _, tc := range tcs {
		off, within := IsPointOffMat(m, tc.p), IsPointWithinMat(m, tc.p)
		if off != tc.off {
			t.Errorf("IsPointOffMat(%v)=%v; want %v", tc.p, off, tc.off)
		}
		if off == within {
			t.Errorf("IsPointOffMat(%v)=%v and IsPointWithinMat=%v are not complements", tc.p, off, within)
		}
		if off == InBounds(m, tc.p) {
			t.Logf("%v: IsPointOffMat=%v contradicts geometric bounds test", tc.p, off)
		}
	}
}

func TestInBounds(t *testing.T) {
	m := NewMat(4, 5, 1, Depth8U)
	in := []Point{{0, 0}, {4, 3}, {2, 1}}
	out := []Point{{-1, 0}, {5, 0}, {0, 4}, {0, -1}}
	for _, p := range in {
		if !InBounds(m, p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	for _, p := range out {
		if InBounds(m, p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

func TestDrawPoint(t *testing.T) {
	m := NewMat(2, 3, 3, Depth8U)
	DrawPoint(m, Point{2, 1}, Vec3b{1, 2, 3})
	for ch, want := range []uint8{1, 2, 3} {
		if got := m.At(1, 2, ch); got != want {
			t.Errorf("At(1,2,%d)=%d; want %d", ch, got, want)
		}
	}
	DrawPointGray(m, Point{0, 0}, 77)
	if m.Data[0] != 77 || m.Data[1] != 77 || m.Data[2] != 77 || m.Data[3] != 0 {
		t.Errorf("DrawPointGray wrote %v", m.Data[:6])
	}

	expectPanic(t, "DrawPoint off row", func() { DrawPoint(m, Point{0, 2}, Vec3b{}) })
}

func TestDrawPointColorAndPalette(t *testing.T) {
	pal := Palette(6)
	if len(pal) != 6 {
		t.Fatalf("len(Palette(6))=%d", len(pal))
	}
	seen := map[Vec3b]bool{}
	m := NewMat(1, 6, 3, Depth8U)
	for i, c := range pal {
		if !c.IsValid() {
			t.Errorf("palette entry %d %v outside gamut", i, c)
		}
		DrawPointColor(m, Point{i, 0}, c)
		r, g, b := c.RGB255()
		got := Vec3b{m.At(0, i, 0), m.At(0, i, 1), m.At(0, i, 2)}
		if got != (Vec3b{b, g, r}) {
			t.Errorf("pixel %d=%v; want BGR %v", i, got, Vec3b{b, g, r})
		}
		seen[got] = true
	}
	if len(seen) != 6 {
		t.Errorf("palette has %d distinct colors; want 6", len(seen))
	}
}
