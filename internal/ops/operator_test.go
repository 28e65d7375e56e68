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

package ops

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mlnoga/stitchfilter/internal/filter"
	"github.com/mlnoga/stitchfilter/internal/mat"
)

func rampBGR(rows, cols int) *mat.Mat {
	m := mat.NewMat(rows, cols, 3, mat.Depth8U)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mat.DrawPointGray(m, mat.Point{X: x, Y: y}, uint8(10*x))
		}
	}
	return m
}

func TestNewContext(t *testing.T) {
	c := NewContext(io.Discard)
	if c.MaxThreads < 1 {
		t.Errorf("MaxThreads=%d", c.MaxThreads)
	}
	if !strings.Contains(c.String(), "threads") {
		t.Errorf("String()=%q", c.String())
	}
}

func TestSequenceFromJSON(t *testing.T) {
	raw := `{"type":"seq","steps":[{"type":"gray"},{"type":"expMask","tau":0.5},{"type":"sobel","active":false}]}`
	op, err := UnmarshalOperator([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	seq, ok := op.(*OpSequence)
	if !ok || len(seq.Steps) != 3 || !seq.Active {
		t.Fatalf("decoded %#v", op)
	}
	if em := seq.Steps[1].(*OpExpMask); em.Tau != 0.5 || !em.Active {
		t.Errorf("expMask step %+v", em)
	}
	if seq.Steps[2].IsActive() {
		t.Errorf("sobel step should be inactive")
	}

	log := &bytes.Buffer{}
	c := NewContext(log)
	in := rampBGR(4, 6)
	outs, err := seq.MakePromises(PromisesOf(in), c)
	if err != nil {
		t.Fatal(err)
	}
	ms, err := MaterializeAll(outs, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 1 || ms[0].Channels != 1 {
		t.Fatalf("got %d outputs", len(ms))
	}

	gray, _ := mat.ToGray(in)
	want, _ := filter.ExpMask1DTau(gray, 0.5)
	if !bytes.Equal(ms[0].Data, want.Data) {
		t.Errorf("got %v; want %v", ms[0].Data, want.Data)
	}
	if !strings.Contains(log.String(), "0: gray") || !strings.Contains(log.String(), "0: expMask tau=0.5") {
		t.Errorf("log output %q", log.String())
	}
	if strings.Contains(log.String(), "sobel") {
		t.Errorf("inactive operator logged: %q", log.String())
	}
}

func TestSequenceMarshalRoundTrip(t *testing.T) {
	seq := NewOpSequence(NewOpBGR(true), NewOpForEach(NewOpSobel(true)), NewOpExpMaskDefault())
	b, err := json.Marshal(seq)
	if err != nil {
		t.Fatal(err)
	}
	op, err := UnmarshalOperator(b)
	if err != nil {
		t.Fatalf("%v decoding %s", err, string(b))
	}
	back := op.(*OpSequence)
	if len(back.Steps) != 3 {
		t.Fatalf("decoded %s into %d steps", string(b), len(back.Steps))
	}
	fe, ok := back.Steps[1].(*OpForEach)
	if !ok || fe.Operation == nil || fe.Operation.GetType() != "sobel" {
		t.Errorf("forEach step decoded as %#v", back.Steps[1])
	}
	if em := back.Steps[2].(*OpExpMask); em.Tau != filter.DefaultTau {
		t.Errorf("tau=%g; want %g", em.Tau, filter.DefaultTau)
	}
}

func TestExpMaskDefaultsFromJSON(t *testing.T) {
	op, err := UnmarshalOperator([]byte(`{"type":"expMask"}`))
	if err != nil {
		t.Fatal(err)
	}
	em := op.(*OpExpMask)
	if em.Tau != filter.DefaultTau || !em.Active || em.OpUnaryBase.Apply == nil {
		t.Errorf("decoded %+v", em)
	}
}

func TestUnknownOperator(t *testing.T) {
	_, err := UnmarshalOperator([]byte(`{"type":"seq","steps":[{"type":"warp"}]}`))
	if err == nil || !strings.Contains(err.Error(), "warp") {
		t.Errorf("got %v; want unknown operator error", err)
	}
}

func TestMaterializeAllErrors(t *testing.T) {
	good := mat.NewMat(5, 5, 1, mat.Depth8U)
	bad := mat.NewMat(5, 5, 1, mat.Depth16U)
	outs, err := NewOpSobel(true).MakePromises(PromisesOf(good, bad), NewContext(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	ms, err := MaterializeAll(outs, 2, false)
	if len(ms) != 1 || ms[0].ID != 0 {
		t.Errorf("got %d outputs", len(ms))
	}
	var pe *mat.PreconditionError
	if !errors.As(err, &pe) || !strings.HasPrefix(err.Error(), "1: sobel:") {
		t.Errorf("got %v; want wrapped PreconditionError for ID 1", err)
	}
}

func TestMaterializeAllConcurrent(t *testing.T) {
	ins := make([]*mat.Mat, 16)
	for i := range ins {
		ins[i] = rampBGR(8, 8)
	}
	op := NewOpForEach(NewOpSequence(NewOpSobel(true), NewOpExpMaskDefault()))
	outs, err := op.MakePromises(PromisesOf(ins...), NewContext(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	ms, err := MaterializeAll(outs, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != len(ins) {
		t.Fatalf("got %d outputs; want %d", len(ms), len(ins))
	}
	first := ms[0].Data
	for i, m := range ms {
		if m.ID != i || !bytes.Equal(m.Data, first) {
			t.Errorf("output %d (ID %d) differs", i, m.ID)
		}
	}

	forgotten, err := MaterializeAll(outs, 4, true)
	if err != nil || len(forgotten) != 0 {
		t.Errorf("forget: got %d outputs, %v", len(forgotten), err)
	}
}

func TestForEachWithoutOperation(t *testing.T) {
	op := &OpForEach{OpBase: OpBase{Type: "forEach", Active: true}}
	if _, err := op.MakePromises(PromisesOf(mat.NewMat(1, 1, 1, mat.Depth8U)), NewContext(io.Discard)); err == nil {
		t.Errorf("expected error for missing operation")
	}
}
