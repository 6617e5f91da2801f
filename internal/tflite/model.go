package tflite

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// SchemaVersion is the TFLite schema version written by Marshal.
const SchemaVersion = 3

// FileIdentifier is the flatbuffer file identifier of TFLite models.
const FileIdentifier = "TFL3"

var (
	// ErrMalformedModel is returned when a buffer cannot be decoded as a
	// TFLite model.
	ErrMalformedModel = errors.New("malformed tflite model")

	// ErrIndexOutOfRange is returned when an operator refers to an opcode,
	// tensor or buffer that does not exist.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Model is a decoded TFLite model.
type Model struct {
	Version       uint32
	Description   string
	OperatorCodes []*OperatorCode
	Subgraphs     []*SubGraph
	Buffers       []*Buffer
}

// OperatorCode identifies the kind of operator an Operator runs.
type OperatorCode struct {
	// DeprecatedBuiltinCode holds codes below 127 in files written before
	// the builtin_code field existed.
	DeprecatedBuiltinCode int8
	BuiltinCode           BuiltinOperator
	CustomCode            string
	Version               int32
}

// Code returns the effective builtin code, following the TFLite rule that
// the larger of the deprecated and current fields wins.
func (c *OperatorCode) Code() BuiltinOperator {
	if dep := BuiltinOperator(c.DeprecatedBuiltinCode); dep > c.BuiltinCode {
		return dep
	}
	return c.BuiltinCode
}

// SubGraph is one function of the model.
type SubGraph struct {
	Name      string
	Tensors   []*Tensor
	Inputs    []int32
	Outputs   []int32
	Operators []*Operator
}

// Tensor describes one tensor of a subgraph. Buffer 0 is the empty
// sentinel buffer; constant tensors point at a non-empty buffer.
type Tensor struct {
	Name         string
	Shape        []int32
	Type         TensorType
	Buffer       uint32
	Quantization *QuantizationParameters
	IsVariable   bool
}

// QuantizationParameters holds per-tensor or per-axis affine quantisation.
type QuantizationParameters struct {
	Min                []float32
	Max                []float32
	Scale              []float32
	ZeroPoint          []int64
	QuantizedDimension int32
}

// Operator is one node of a subgraph.
type Operator struct {
	OpcodeIndex        uint32
	Inputs             []int32
	Outputs            []int32
	BuiltinOptionsType BuiltinOptionsType
	// BuiltinOptions is nil when the operator carries no options or the
	// options type is one this package does not decode.
	BuiltinOptions Options
	CustomOptions  []byte
}

// Buffer holds raw constant data.
type Buffer struct {
	Data []byte
}

// OperatorCode resolves the builtin code of op.
func (m *Model) OperatorCode(op *Operator) (BuiltinOperator, error) {
	if int(op.OpcodeIndex) >= len(m.OperatorCodes) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "opcode index %d (model has %d operator codes)",
			op.OpcodeIndex, len(m.OperatorCodes))
	}
	return m.OperatorCodes[op.OpcodeIndex].Code(), nil
}

// CustomCode returns the custom code name of op, or "" for builtin operators.
func (m *Model) CustomCode(op *Operator) string {
	if int(op.OpcodeIndex) >= len(m.OperatorCodes) {
		return ""
	}
	return m.OperatorCodes[op.OpcodeIndex].CustomCode
}

// Subgraph returns the subgraph at index i.
func (m *Model) Subgraph(i int) (*SubGraph, error) {
	if i < 0 || i >= len(m.Subgraphs) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "subgraph %d (model has %d)", i, len(m.Subgraphs))
	}
	return m.Subgraphs[i], nil
}

// Tensor returns the tensor at index i of the subgraph.
func (g *SubGraph) Tensor(i int32) (*Tensor, error) {
	if i < 0 || int(i) >= len(g.Tensors) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "tensor %d (subgraph has %d)", i, len(g.Tensors))
	}
	return g.Tensors[i], nil
}

// Data returns the constant data backing t, or nil when t is not constant.
// The returned slice aliases the model; callers must copy before keeping it.
func (m *Model) Data(t *Tensor) []byte {
	if t == nil || t.Buffer == 0 || int(t.Buffer) >= len(m.Buffers) {
		return nil
	}
	if b := m.Buffers[t.Buffer]; b != nil {
		return b.Data
	}
	return nil
}

// IntData decodes a constant INT32 or INT64 tensor.
func (m *Model) IntData(t *Tensor) ([]int64, error) {
	data := m.Data(t)
	if data == nil {
		return nil, errors.Errorf("tensor %q is not constant", t.Name)
	}
	switch t.Type {
	case TensorTypeINT32:
		if len(data)%4 != 0 {
			return nil, errors.Errorf("tensor %q: %d bytes is not a multiple of 4", t.Name, len(data))
		}
		out := make([]int64, len(data)/4)
		for i := range out {
			out[i] = int64(int32(binary.LittleEndian.Uint32(data[i*4:])))
		}
		return out, nil
	case TensorTypeINT64:
		if len(data)%8 != 0 {
			return nil, errors.Errorf("tensor %q: %d bytes is not a multiple of 8", t.Name, len(data))
		}
		out := make([]int64, len(data)/8)
		for i := range out {
			out[i] = int64(binary.LittleEndian.Uint64(data[i*8:]))
		}
		return out, nil
	default:
		return nil, errors.Errorf("tensor %q has type %s, want INT32 or INT64", t.Name, t.Type)
	}
}

// Float32Data decodes a constant FLOAT32 tensor.
func (m *Model) Float32Data(t *Tensor) ([]float32, error) {
	data := m.Data(t)
	if data == nil {
		return nil, errors.Errorf("tensor %q is not constant", t.Name)
	}
	if t.Type != TensorTypeFLOAT32 {
		return nil, errors.Errorf("tensor %q has type %s, want FLOAT32", t.Name, t.Type)
	}
	if len(data)%4 != 0 {
		return nil, errors.Errorf("tensor %q: %d bytes is not a multiple of 4", t.Name, len(data))
	}
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out, nil
}

// NumElements returns the product of the tensor's dimensions.
func (t *Tensor) NumElements() int64 {
	n := int64(1)
	for _, d := range t.Shape {
		n *= int64(d)
	}
	return n
}
