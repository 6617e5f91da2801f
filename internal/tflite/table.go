package tflite

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// table is a thin reader over a flatbuffer table addressed by field index
// rather than vtable offset.
type table struct {
	flatbuffers.Table
}

func vt(field int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*field)
}

func rootTable(buf []byte) *table {
	n := flatbuffers.GetUOffsetT(buf)
	return &table{flatbuffers.Table{Bytes: buf, Pos: n}}
}

func (t *table) offset(field int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t.Offset(vt(field)))
}

func (t *table) i32(field int, d int32) int32 { return t.GetInt32Slot(vt(field), d) }

func (t *table) u32(field int, d uint32) uint32 { return t.GetUint32Slot(vt(field), d) }

func (t *table) i8(field int, d int8) int8 { return t.GetInt8Slot(vt(field), d) }

func (t *table) u8(field int, d byte) byte { return t.GetByteSlot(vt(field), d) }

func (t *table) flag(field int, d bool) bool { return t.GetBoolSlot(vt(field), d) }

func (t *table) f32(field int, d float32) float32 { return t.GetFloat32Slot(vt(field), d) }

// vector locates a vector field and checks that its elements lie inside
// the buffer. A vector running past the end panics with errTruncated,
// which Parse turns into ErrMalformedModel.
func (t *table) vector(field, elemSize int) (start flatbuffers.UOffsetT, n int, ok bool) {
	o := t.offset(field)
	if o == 0 {
		return 0, 0, false
	}
	n = t.VectorLen(o)
	start = t.Vector(o)
	if n < 0 || int(start)+n*elemSize > len(t.Bytes) {
		panic(errTruncated)
	}
	return start, n, true
}

func (t *table) str(field int) string {
	start, n, ok := t.vector(field, 1)
	if !ok {
		return ""
	}
	return string(t.Bytes[start : int(start)+n])
}

func (t *table) raw(field int) []byte {
	start, n, ok := t.vector(field, 1)
	if !ok {
		return nil
	}
	src := t.Bytes[start : int(start)+n]
	out := make([]byte, len(src))
	copy(out, src)
	return out
}

func (t *table) int32s(field int) []int32 {
	start, n, ok := t.vector(field, 4)
	if !ok {
		return nil
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = t.GetInt32(start + flatbuffers.UOffsetT(i*4))
	}
	return out
}

func (t *table) int64s(field int) []int64 {
	start, n, ok := t.vector(field, 8)
	if !ok {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = t.GetInt64(start + flatbuffers.UOffsetT(i*8))
	}
	return out
}

func (t *table) float32s(field int) []float32 {
	start, n, ok := t.vector(field, 4)
	if !ok {
		return nil
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = t.GetFloat32(start + flatbuffers.UOffsetT(i*4))
	}
	return out
}

// child returns the nested table stored in field, or nil when absent.
func (t *table) child(field int) *table {
	o := t.offset(field)
	if o == 0 {
		return nil
	}
	return &table{flatbuffers.Table{Bytes: t.Bytes, Pos: t.Indirect(o + t.Pos)}}
}

// children returns the tables of a vector-of-tables field.
func (t *table) children(field int) []*table {
	start, n, ok := t.vector(field, 4)
	if !ok {
		return nil
	}
	out := make([]*table, n)
	for i := range out {
		pos := t.Indirect(start + flatbuffers.UOffsetT(i*4))
		out[i] = &table{flatbuffers.Table{Bytes: t.Bytes, Pos: pos}}
	}
	return out
}

// union returns the union member table stored in field, or nil.
func (t *table) union(field int) *table {
	o := t.offset(field)
	if o == 0 {
		return nil
	}
	u := &table{}
	t.Union(&u.Table, o)
	return u
}

// Builder helpers used by Marshal.

func int32Vector(b *flatbuffers.Builder, v []int32) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	b.StartVector(4, len(v), 4)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependInt32(v[i])
	}
	return b.EndVector(len(v))
}

func int64Vector(b *flatbuffers.Builder, v []int64) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	b.StartVector(8, len(v), 8)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependInt64(v[i])
	}
	return b.EndVector(len(v))
}

func float32Vector(b *flatbuffers.Builder, v []float32) flatbuffers.UOffsetT {
	if v == nil {
		return 0
	}
	b.StartVector(4, len(v), 4)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependFloat32(v[i])
	}
	return b.EndVector(len(v))
}

func offsetVector(b *flatbuffers.Builder, v []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(4, len(v), 4)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependUOffsetT(v[i])
	}
	return b.EndVector(len(v))
}
