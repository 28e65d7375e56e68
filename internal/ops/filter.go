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
	"encoding/json"
	"fmt"

	"github.com/mlnoga/stitchfilter/internal/filter"
	"github.com/mlnoga/stitchfilter/internal/mat"
	"github.com/mlnoga/stitchfilter/internal/stats"
)

// Logs the result of a unary operator with its dimensions and statistics
func logResult(c *Context, op string, m *mat.Mat) {
	fmt.Fprintf(c.Log, "%d: %s %s %v\n", m.ID, op, m.DimensionsToString(), stats.Calc(m.Data))
}

// Horizontal Sobel gradient
type OpSobel struct {
	OpUnaryBase
}

func init() { SetOperatorFactory(func() Operator { return NewOpSobelDefault() }) } // register the operator for JSON decoding

func NewOpSobelDefault() *OpSobel { return NewOpSobel(true) }

func NewOpSobel(active bool) *OpSobel {
	op := OpSobel{
		OpUnaryBase: OpUnaryBase{OpBase: OpBase{Type: "sobel", Active: active}},
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpSobel) UnmarshalJSON(data []byte) error {
	type defaults OpSobel
	def := defaults(*NewOpSobelDefault())
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*op = OpSobel(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpSobel) Apply(m *mat.Mat, c *Context) (result *mat.Mat, err error) {
	if !op.Active {
		return m, nil
	}
	result, err = filter.Sobel(m)
	if err != nil {
		return nil, err
	}
	logResult(c, op.Type, result)
	return result, nil
}

// Causal exponential mask over the flattened sample stream
type OpExpMask struct {
	OpUnaryBase
	Tau float64 `json:"tau"`
}

func init() { SetOperatorFactory(func() Operator { return NewOpExpMaskDefault() }) } // register the operator for JSON decoding

func NewOpExpMaskDefault() *OpExpMask { return NewOpExpMask(filter.DefaultTau) }

func NewOpExpMask(tau float64) *OpExpMask {
	op := OpExpMask{
		OpUnaryBase: OpUnaryBase{OpBase: OpBase{Type: "expMask", Active: true}},
		Tau:         tau,
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpExpMask) UnmarshalJSON(data []byte) error {
	type defaults OpExpMask
	def := defaults(*NewOpExpMaskDefault())
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*op = OpExpMask(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpExpMask) Apply(m *mat.Mat, c *Context) (result *mat.Mat, err error) {
	if !op.Active {
		return m, nil
	}
	result, err = filter.ExpMask1DTau(m, op.Tau)
	if err != nil {
		return nil, err
	}
	logResult(c, fmt.Sprintf("%s tau=%g", op.Type, op.Tau), result)
	return result, nil
}

// Conversion from BGR to gray
type OpGray struct {
	OpUnaryBase
}

func init() { SetOperatorFactory(func() Operator { return NewOpGrayDefault() }) } // register the operator for JSON decoding

func NewOpGrayDefault() *OpGray { return NewOpGray(true) }

func NewOpGray(active bool) *OpGray {
	op := OpGray{
		OpUnaryBase: OpUnaryBase{OpBase: OpBase{Type: "gray", Active: active}},
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpGray) UnmarshalJSON(data []byte) error {
	type defaults OpGray
	def := defaults(*NewOpGrayDefault())
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*op = OpGray(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpGray) Apply(m *mat.Mat, c *Context) (result *mat.Mat, err error) {
	if !op.Active {
		return m, nil
	}
	result, err = mat.ToGray(m)
	if err != nil {
		return nil, err
	}
	logResult(c, op.Type, result)
	return result, nil
}

// Conversion from gray to BGR
type OpBGR struct {
	OpUnaryBase
}

func init() { SetOperatorFactory(func() Operator { return NewOpBGRDefault() }) } // register the operator for JSON decoding

func NewOpBGRDefault() *OpBGR { return NewOpBGR(true) }

func NewOpBGR(active bool) *OpBGR {
	op := OpBGR{
		OpUnaryBase: OpUnaryBase{OpBase: OpBase{Type: "bgr", Active: active}},
	}
	op.OpUnaryBase.Apply = op.Apply // assign class method to superclass abstract method
	return &op
}

// Unmarshal the type from JSON with default values for missing entries
func (op *OpBGR) UnmarshalJSON(data []byte) error {
	type defaults OpBGR
	def := defaults(*NewOpBGRDefault())
	if err := json.Unmarshal(data, &def); err != nil {
		return err
	}
	*op = OpBGR(def)
	op.OpUnaryBase.Apply = op.Apply // make method receiver point to op, not def
	return nil
}

func (op *OpBGR) Apply(m *mat.Mat, c *Context) (result *mat.Mat, err error) {
	if !op.Active {
		return m, nil
	}
	result, err = mat.ToBGR(m)
	if err != nil {
		return nil, err
	}
	logResult(c, op.Type, result)
	return result, nil
}
