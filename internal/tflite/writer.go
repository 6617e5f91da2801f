package tflite

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// Marshal encodes m as a TFLite flatbuffer with the TFL3 identifier.
//
// An operator whose BuiltinOptions is nil keeps its BuiltinOptionsType
// with no table behind it, which is how files with stripped options look
// on disk.
func Marshal(m *Model) ([]byte, error) {
	if m == nil {
		return nil, errors.New("nil model")
	}
	b := flatbuffers.NewBuilder(1024)

	codes := make([]flatbuffers.UOffsetT, len(m.OperatorCodes))
	for i, c := range m.OperatorCodes {
		codes[i] = writeOperatorCode(b, c)
	}
	subgraphs := make([]flatbuffers.UOffsetT, len(m.Subgraphs))
	for i, g := range m.Subgraphs {
		off, err := writeSubGraph(b, g)
		if err != nil {
			return nil, errors.Wrapf(err, "subgraph %d", i)
		}
		subgraphs[i] = off
	}
	buffers := make([]flatbuffers.UOffsetT, len(m.Buffers))
	for i, buf := range m.Buffers {
		var data flatbuffers.UOffsetT
		if buf != nil && buf.Data != nil {
			data = b.CreateByteVector(buf.Data)
		}
		b.StartObject(1)
		if data != 0 {
			b.PrependUOffsetTSlot(0, data, 0)
		}
		buffers[i] = b.EndObject()
	}

	codesVec := offsetVector(b, codes)
	subgraphsVec := offsetVector(b, subgraphs)
	buffersVec := offsetVector(b, buffers)
	var desc flatbuffers.UOffsetT
	if m.Description != "" {
		desc = b.CreateString(m.Description)
	}

	b.StartObject(5)
	b.PrependUint32Slot(0, m.Version, 0)
	b.PrependUOffsetTSlot(1, codesVec, 0)
	b.PrependUOffsetTSlot(2, subgraphsVec, 0)
	if desc != 0 {
		b.PrependUOffsetTSlot(3, desc, 0)
	}
	b.PrependUOffsetTSlot(4, buffersVec, 0)
	root := b.EndObject()
	b.FinishWithFileIdentifier(root, []byte(FileIdentifier))
	return b.FinishedBytes(), nil
}

func writeOperatorCode(b *flatbuffers.Builder, c *OperatorCode) flatbuffers.UOffsetT {
	var custom flatbuffers.UOffsetT
	if c.CustomCode != "" {
		custom = b.CreateString(c.CustomCode)
	}
	dep := c.DeprecatedBuiltinCode
	if dep == 0 && c.BuiltinCode < 127 {
		dep = int8(c.BuiltinCode)
	}
	b.StartObject(4)
	b.PrependInt8Slot(0, dep, 0)
	if custom != 0 {
		b.PrependUOffsetTSlot(1, custom, 0)
	}
	b.PrependInt32Slot(2, c.Version, 1)
	b.PrependInt32Slot(3, int32(c.BuiltinCode), 0)
	return b.EndObject()
}

func writeSubGraph(b *flatbuffers.Builder, g *SubGraph) (flatbuffers.UOffsetT, error) {
	tensors := make([]flatbuffers.UOffsetT, len(g.Tensors))
	for i, t := range g.Tensors {
		tensors[i] = writeTensor(b, t)
	}
	ops := make([]flatbuffers.UOffsetT, len(g.Operators))
	for i, op := range g.Operators {
		off, err := writeOperator(b, op)
		if err != nil {
			return 0, errors.Wrapf(err, "operator %d", i)
		}
		ops[i] = off
	}
	tensorsVec := offsetVector(b, tensors)
	inputs := int32Vector(b, g.Inputs)
	outputs := int32Vector(b, g.Outputs)
	opsVec := offsetVector(b, ops)
	var name flatbuffers.UOffsetT
	if g.Name != "" {
		name = b.CreateString(g.Name)
	}

	b.StartObject(5)
	b.PrependUOffsetTSlot(0, tensorsVec, 0)
	if inputs != 0 {
		b.PrependUOffsetTSlot(1, inputs, 0)
	}
	if outputs != 0 {
		b.PrependUOffsetTSlot(2, outputs, 0)
	}
	b.PrependUOffsetTSlot(3, opsVec, 0)
	if name != 0 {
		b.PrependUOffsetTSlot(4, name, 0)
	}
	return b.EndObject(), nil
}

func writeTensor(b *flatbuffers.Builder, t *Tensor) flatbuffers.UOffsetT {
	var quant flatbuffers.UOffsetT
	if q := t.Quantization; q != nil {
		minV := float32Vector(b, q.Min)
		maxV := float32Vector(b, q.Max)
		scale := float32Vector(b, q.Scale)
		zp := int64Vector(b, q.ZeroPoint)
		b.StartObject(7)
		for field, v := range []flatbuffers.UOffsetT{minV, maxV, scale, zp} {
			if v != 0 {
				b.PrependUOffsetTSlot(field, v, 0)
			}
		}
		b.PrependInt32Slot(6, q.QuantizedDimension, 0)
		quant = b.EndObject()
	}
	shape := int32Vector(b, t.Shape)
	var name flatbuffers.UOffsetT
	if t.Name != "" {
		name = b.CreateString(t.Name)
	}

	b.StartObject(6)
	if shape != 0 {
		b.PrependUOffsetTSlot(0, shape, 0)
	}
	b.PrependInt8Slot(1, int8(t.Type), 0)
	b.PrependUint32Slot(2, t.Buffer, 0)
	if name != 0 {
		b.PrependUOffsetTSlot(3, name, 0)
	}
	if quant != 0 {
		b.PrependUOffsetTSlot(4, quant, 0)
	}
	b.PrependBoolSlot(5, t.IsVariable, false)
	return b.EndObject()
}

func writeOperator(b *flatbuffers.Builder, op *Operator) (flatbuffers.UOffsetT, error) {
	kind := op.BuiltinOptionsType
	var opts flatbuffers.UOffsetT
	if op.BuiltinOptions != nil {
		if kind != BuiltinOptionsNONE && kind != op.BuiltinOptions.OptionsType() {
			return 0, errors.Errorf("options type %s does not match options value %s",
				kind, op.BuiltinOptions.OptionsType())
		}
		kind = op.BuiltinOptions.OptionsType()
		opts = op.BuiltinOptions.pack(b)
	}
	inputs := int32Vector(b, op.Inputs)
	outputs := int32Vector(b, op.Outputs)
	var custom flatbuffers.UOffsetT
	if op.CustomOptions != nil {
		custom = b.CreateByteVector(op.CustomOptions)
	}

	b.StartObject(6)
	b.PrependUint32Slot(0, op.OpcodeIndex, 0)
	if inputs != 0 {
		b.PrependUOffsetTSlot(1, inputs, 0)
	}
	if outputs != 0 {
		b.PrependUOffsetTSlot(2, outputs, 0)
	}
	b.PrependByteSlot(3, byte(kind), 0)
	if opts != 0 {
		b.PrependUOffsetTSlot(4, opts, 0)
	}
	if custom != 0 {
		b.PrependUOffsetTSlot(5, custom, 0)
	}
	return b.EndObject(), nil
}
