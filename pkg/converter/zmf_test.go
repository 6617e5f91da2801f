package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"github.com/zerfoo/ztflite/internal/tflite/tflitetest"
	"github.com/zerfoo/ztflite/pkg/schema"
	"google.golang.org/protobuf/proto"
)

func TestToZMF(t *testing.T) {
	g, err := New(fullRegistry()).Convert(context.Background(), tflitetest.Chain())
	require.NoError(t, err)

	m, err := ToZMF(g, "1.2.3")
	require.NoError(t, err)

	assert.Equal(t, ProducerName, m.GetMetadata().GetProducerName())
	assert.Equal(t, "1.2.3", m.GetMetadata().GetProducerVersion())
	assert.Equal(t, int64(3), m.GetMetadata().GetOpsetVersion())

	nodes := m.GetGraph().GetNodes()
	require.Len(t, nodes, 3)

	conv := nodes[0]
	assert.Equal(t, "Conv2D", conv.GetOpType())
	assert.Equal(t, "conv/out", conv.GetName())
	assert.Equal(t, []string{"input", "conv/weights"}, conv.GetInputs())
	assert.Equal(t, []string{"conv/out"}, conv.GetOutputs())
	attrs := conv.GetAttributes()
	assert.Equal(t, int64(3), attrs["kernel_h"].GetI())
	assert.Equal(t, int64(2), attrs["out_channel"].GetI())
	assert.Equal(t, int64(0), attrs["has_bias"].GetI())
	assert.Equal(t, "same", attrs["pad_mode"].GetS())
	assert.Equal(t, "relu", attrs["activation"].GetS())

	reshape := nodes[1]
	assert.Equal(t, "Reshape", reshape.GetOpType())
	assert.Equal(t, []int64{1, 32}, reshape.GetAttributes()["shape"].GetInts().GetVal())

	sparse := nodes[2]
	assert.Equal(t, "SparseToDense", sparse.GetOpType())
	assert.Empty(t, sparse.GetAttributes())
	assert.Equal(t, []string{"indices", "dense_shape", "values", "default"}, sparse.GetInputs())

	params := m.GetGraph().GetParameters()
	require.Contains(t, params, "conv/weights")
	assert.Equal(t, zmf.Tensor_FLOAT32, params["conv/weights"].GetDtype())
	assert.Equal(t, []int64{2, 3, 3, 3}, params["conv/weights"].GetShape())
	assert.Len(t, params["conv/weights"].GetData(), 2*3*3*3*4)
	assert.Equal(t, zmf.Tensor_INT32, params["reshape/shape"].GetDtype())
	assert.Contains(t, params, "default")
	assert.NotContains(t, params, "input")

	var inputs []string
	for _, in := range m.GetGraph().GetInputs() {
		inputs = append(inputs, in.GetName())
	}
	assert.Equal(t, []string{"input", "indices", "dense_shape", "values"}, inputs)
	assert.Equal(t, []int64{1, 4, 4, 3}, m.GetGraph().GetInputs()[0].GetShape())
	assert.Equal(t, "flat", m.GetGraph().GetOutputs()[0].GetName())

	buf, err := proto.Marshal(m)
	require.NoError(t, err)
	back := &zmf.Model{}
	require.NoError(t, proto.Unmarshal(buf, back))
	assert.True(t, proto.Equal(m, back))
}

func TestToZMFAttributes(t *testing.T) {
	attrs, err := attributes(&schema.PReLU{ChannelShared: true, Slope: []float32{0.5, 0.25}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), attrs["channel_shared"].GetI())
	assert.Equal(t, []float32{0.5, 0.25}, attrs["slope"].GetFloats().GetVal())

	attrs, err = attributes(&schema.Reshape{})
	require.NoError(t, err)
	assert.NotContains(t, attrs, "shape", "nil slices are omitted")

	attrs, err = attributes(&schema.Softmax{Axis: -1, Beta: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), attrs["axis"].GetI())
	assert.Equal(t, float32(2), attrs["beta"].GetF())

	attrs, err = attributes(&schema.Cast{SrcT: schema.DataTypeFloat32, DstT: schema.DataTypeInt8})
	require.NoError(t, err)
	assert.Equal(t, schema.DataTypeFloat32.String(), attrs["src_t"].GetS())
	assert.Equal(t, schema.DataTypeInt8.String(), attrs["dst_t"].GetS())
}

type mapRecord struct {
	Table map[string]int `attr:"table"`
}

func (*mapRecord) PrimitiveType() schema.PrimitiveType { return schema.PrimitiveAbs }

func TestToZMFErrors(t *testing.T) {
	_, err := ToZMF(nil, "")
	assert.Error(t, err)

	_, err = ToZMF(&schema.Graph{Nodes: []*schema.Node{{Name: "empty"}}}, "")
	assert.Error(t, err)

	_, err = attributes(&mapRecord{Table: map[string]int{}})
	assert.Error(t, err)

	_, err = attributes((*schema.Reshape)(nil))
	assert.Error(t, err)
}

func TestToZMFNamesUnnamedTensors(t *testing.T) {
	g := &schema.Graph{
		Tensors: []*schema.Tensor{
			{DataType: schema.DataTypeFloat32, Shape: []int64{1}},
			{DataType: schema.DataTypeInt8, Shape: []int64{4}, Data: []byte{1, 2, 3, 4}},
		},
		Inputs:  []int{0},
		Outputs: []int{0},
	}
	m, err := ToZMF(g, "")
	require.NoError(t, err)
	assert.Equal(t, "tensor_0", m.GetGraph().GetInputs()[0].GetName())
	assert.Empty(t, m.GetGraph().GetParameters(), "INT8 constants have no ZMF dtype")
}
