// Package tflitetest builds small TFLite models for tests.
package tflitetest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/zerfoo/ztflite/internal/tflite"
)

// Int32s encodes v as little-endian INT32 tensor data.
func Int32s(v ...int32) []byte {
	out := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(x))
	}
	return out
}

// Float32s encodes v as little-endian FLOAT32 tensor data.
func Float32s(v ...float32) []byte {
	out := make([]byte, 4*len(v))
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(x))
	}
	return out
}

// Op describes one operator for Model.
type Op struct {
	Code    tflite.BuiltinOperator
	Custom  string
	Inputs  []int32
	Outputs []int32
	Options tflite.Options
}

// Model assembles a single-subgraph model from tensors and operators,
// deduplicating operator codes the way the TFLite converter does.
// buffers[0] is always the empty sentinel; tensors refer to buffers by
// index into the slice passed here, shifted by one.
func Model(tensors []*tflite.Tensor, buffers [][]byte, ops ...Op) *tflite.Model {
	m := &tflite.Model{
		Version:     tflite.SchemaVersion,
		Description: "tflitetest",
		Buffers:     []*tflite.Buffer{{}},
	}
	for _, b := range buffers {
		m.Buffers = append(m.Buffers, &tflite.Buffer{Data: b})
	}
	g := &tflite.SubGraph{Name: "main", Tensors: tensors}
	index := make(map[string]uint32)
	for _, op := range ops {
		key := op.Code.String() + "/" + op.Custom
		idx, ok := index[key]
		if !ok {
			idx = uint32(len(m.OperatorCodes))
			index[key] = idx
			m.OperatorCodes = append(m.OperatorCodes, &tflite.OperatorCode{
				BuiltinCode: op.Code,
				CustomCode:  op.Custom,
				Version:     1,
			})
		}
		g.Operators = append(g.Operators, &tflite.Operator{
			OpcodeIndex:    idx,
			Inputs:         op.Inputs,
			Outputs:        op.Outputs,
			BuiltinOptions: op.Options,
		})
	}
	m.Subgraphs = []*tflite.SubGraph{g}
	return m
}

// Chain returns a model of three operators over float tensors: a
// CONV_2D with constant weights, a RESHAPE with a constant shape and a
// SPARSE_TO_DENSE whose inputs are graph inputs. The graph inputs are
// tensors 0 and 5 to 7, the outputs tensors 4 and 8.
func Chain() *tflite.Model {
	tensors := []*tflite.Tensor{
		{Name: "input", Shape: []int32{1, 4, 4, 3}, Type: tflite.TensorTypeFLOAT32},
		{Name: "conv/weights", Shape: []int32{2, 3, 3, 3}, Type: tflite.TensorTypeFLOAT32, Buffer: 1},
		{Name: "conv/out", Shape: []int32{1, 4, 4, 2}, Type: tflite.TensorTypeFLOAT32},
		{Name: "reshape/shape", Shape: []int32{2}, Type: tflite.TensorTypeINT32, Buffer: 2},
		{Name: "flat", Shape: []int32{1, 32}, Type: tflite.TensorTypeFLOAT32},
		{Name: "indices", Shape: []int32{3, 1}, Type: tflite.TensorTypeINT32},
		{Name: "dense_shape", Shape: []int32{1}, Type: tflite.TensorTypeINT32},
		{Name: "values", Shape: []int32{3}, Type: tflite.TensorTypeFLOAT32},
		{Name: "dense", Shape: []int32{8}, Type: tflite.TensorTypeFLOAT32},
		{Name: "default", Shape: []int32{}, Type: tflite.TensorTypeFLOAT32, Buffer: 3},
	}
	weights := make([]float32, 2*3*3*3)
	for i := range weights {
		weights[i] = float32(i) / 10
	}
	m := Model(tensors,
		[][]byte{Float32s(weights...), Int32s(1, 32), Float32s(0)},
		Op{
			Code:    tflite.BuiltinOperatorCONV_2D,
			Inputs:  []int32{0, 1, -1},
			Outputs: []int32{2},
			Options: &tflite.Conv2DOptions{
				Padding:                 tflite.PaddingSAME,
				StrideW:                 1,
				StrideH:                 1,
				FusedActivationFunction: tflite.ActivationFunctionTypeRELU,
				DilationWFactor:         1,
				DilationHFactor:         1,
			},
		},
		Op{
			Code:    tflite.BuiltinOperatorRESHAPE,
			Inputs:  []int32{2, 3},
			Outputs: []int32{4},
		},
		Op{
			Code:    tflite.BuiltinOperatorSPARSE_TO_DENSE,
			Inputs:  []int32{5, 6, 7, 9},
			Outputs: []int32{8},
		},
	)
	g := m.Subgraphs[0]
	g.Inputs = []int32{0, 5, 6, 7}
	g.Outputs = []int32{4, 8}
	return m
}

// WriteFile marshals m into dir/name and returns the path.
func WriteFile(t testing.TB, dir, name string, m *tflite.Model) string {
	t.Helper()
	buf, err := tflite.Marshal(m)
	if err != nil {
		t.Fatalf("marshal model: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	return path
}
