package tflite

import (
	"os"

	"github.com/pkg/errors"
)

var errTruncated = errors.New("vector runs past end of buffer")

// ParseFile reads and decodes the TFLite model at path.
func ParseFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model file %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}
	return m, nil
}

// Parse decodes a TFLite flatbuffer. The returned model shares no memory
// with buf.
func Parse(buf []byte) (m *Model, err error) {
	if len(buf) < 8 {
		return nil, errors.Wrapf(ErrMalformedModel, "buffer of %d bytes is too short", len(buf))
	}
	if id := string(buf[4:8]); id != FileIdentifier {
		return nil, errors.Wrapf(ErrMalformedModel, "file identifier %q, want %q", id, FileIdentifier)
	}

	// The flatbuffers runtime indexes the buffer without bounds checks of
	// its own, so corrupt offsets surface as panics.
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = errors.Wrapf(ErrMalformedModel, "%v", r)
		}
	}()

	root := rootTable(buf)
	m = &Model{
		Version:     root.u32(0, 0),
		Description: root.str(3),
	}
	for _, t := range root.children(1) {
		m.OperatorCodes = append(m.OperatorCodes, readOperatorCode(t))
	}
	for _, t := range root.children(2) {
		m.Subgraphs = append(m.Subgraphs, readSubGraph(t))
	}
	for _, t := range root.children(4) {
		m.Buffers = append(m.Buffers, &Buffer{Data: t.raw(0)})
	}
	return m, nil
}

func readOperatorCode(t *table) *OperatorCode {
	return &OperatorCode{
		DeprecatedBuiltinCode: t.i8(0, 0),
		CustomCode:            t.str(1),
		Version:               t.i32(2, 1),
		BuiltinCode:           BuiltinOperator(t.i32(3, 0)),
	}
}

func readSubGraph(t *table) *SubGraph {
	g := &SubGraph{
		Inputs:  t.int32s(1),
		Outputs: t.int32s(2),
		Name:    t.str(4),
	}
	for _, tt := range t.children(0) {
		g.Tensors = append(g.Tensors, readTensor(tt))
	}
	for _, ot := range t.children(3) {
		g.Operators = append(g.Operators, readOperator(ot))
	}
	return g
}

func readTensor(t *table) *Tensor {
	tensor := &Tensor{
		Shape:      t.int32s(0),
		Type:       TensorType(t.i8(1, 0)),
		Buffer:     t.u32(2, 0),
		Name:       t.str(3),
		IsVariable: t.flag(5, false),
	}
	if q := t.child(4); q != nil {
		tensor.Quantization = &QuantizationParameters{
			Min:                q.float32s(0),
			Max:                q.float32s(1),
			Scale:              q.float32s(2),
			ZeroPoint:          q.int64s(3),
			QuantizedDimension: q.i32(6, 0),
		}
	}
	return tensor
}

func readOperator(t *table) *Operator {
	op := &Operator{
		OpcodeIndex:        t.u32(0, 0),
		Inputs:             t.int32s(1),
		Outputs:            t.int32s(2),
		BuiltinOptionsType: BuiltinOptionsType(t.u8(3, 0)),
		CustomOptions:      t.raw(5),
	}
	if op.BuiltinOptionsType == BuiltinOptionsNONE {
		return op
	}
	if u := t.union(4); u != nil {
		if opts := newOptions(op.BuiltinOptionsType); opts != nil {
			opts.unpack(u)
			op.BuiltinOptions = opts
		}
	}
	return op
}
