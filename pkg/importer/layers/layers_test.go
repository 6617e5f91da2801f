package layers

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/internal/tflite/tflitetest"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// Tensor indices of fixture().
const (
	tIn       = 0  // float32 [1,8,8,3]
	tWeights  = 1  // conv weights [16,3,3,3]
	tBias     = 2  // [16]
	tOut      = 3  // float32 [1,8,8,16]
	tShape    = 4  // const int32 {1, 1024}
	tPerm     = 5  // const int32 {0, 3, 1, 2}
	tAxis     = 6  // const int32 {1}
	tPaddings = 7  // const int32 [4,2]
	tSlope    = 8  // const float32 {0.25}
	tSize     = 9  // const int32 {16, 16}
	tDWeights = 10 // depthwise weights [1,3,3,6]
	tIntOut   = 11 // int32 [1]
	tK        = 12 // const int64 {5}
	tRuntime  = 13 // int32 [2], not constant
)

func fixture() *tflite.Model {
	f32 := tflite.TensorTypeFLOAT32
	i32 := tflite.TensorTypeINT32
	tensors := []*tflite.Tensor{
		tIn:       {Name: "in", Shape: []int32{1, 8, 8, 3}, Type: f32},
		tWeights:  {Name: "weights", Shape: []int32{16, 3, 3, 3}, Type: tflite.TensorTypeINT8, Buffer: 1},
		tBias:     {Name: "bias", Shape: []int32{16}, Type: i32, Buffer: 2},
		tOut:      {Name: "out", Shape: []int32{1, 8, 8, 16}, Type: f32},
		tShape:    {Name: "shape", Shape: []int32{2}, Type: i32, Buffer: 3},
		tPerm:     {Name: "perm", Shape: []int32{4}, Type: i32, Buffer: 4},
		tAxis:     {Name: "axis", Shape: []int32{1}, Type: i32, Buffer: 5},
		tPaddings: {Name: "paddings", Shape: []int32{4, 2}, Type: i32, Buffer: 6},
		tSlope:    {Name: "slope", Shape: []int32{1}, Type: f32, Buffer: 7},
		tSize:     {Name: "size", Shape: []int32{2}, Type: i32, Buffer: 8},
		tDWeights: {Name: "dw_weights", Shape: []int32{1, 3, 3, 6}, Type: f32, Buffer: 9},
		tIntOut:   {Name: "int_out", Shape: []int32{1}, Type: i32},
		tK:        {Name: "k", Shape: []int32{}, Type: tflite.TensorTypeINT64, Buffer: 10},
		tRuntime:  {Name: "runtime", Shape: []int32{2}, Type: i32},
	}
	k := make([]byte, 8)
	k[0] = 5
	return tflitetest.Model(tensors, [][]byte{
		make([]byte, 16*3*3*3),
		tflitetest.Int32s(make([]int32, 16)...),
		tflitetest.Int32s(1, 1024),
		tflitetest.Int32s(0, 3, 1, 2),
		tflitetest.Int32s(1),
		tflitetest.Int32s(0, 0, 1, 1, 1, 1, 0, 0),
		tflitetest.Float32s(0.25),
		tflitetest.Int32s(16, 16),
		tflitetest.Float32s(make([]float32, 54)...),
		k,
	})
}

func newContext(code tflite.BuiltinOperator, log logrus.FieldLogger) *registry.Context {
	return &registry.Context{Code: code, Log: log}
}

func parse(t *testing.T, code tflite.BuiltinOperator, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, *test.Hook, error) {
	t.Helper()
	p, ok := Parsers()[code]
	require.True(t, ok, "no parser for %s", code)
	logger, hook := test.NewNullLogger()
	prim, err := p.Parse(newContext(code, logger), op, model)
	return prim, hook, err
}

func TestParsers(t *testing.T) {
	tests := []struct {
		code tflite.BuiltinOperator
		op   tflite.Operator
		want schema.Attr
	}{
		{
			code: tflite.BuiltinOperatorCONV_2D,
			op: tflite.Operator{Inputs: []int32{tIn, tWeights, tBias}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.Conv2DOptions{Padding: tflite.PaddingSAME, StrideW: 2, StrideH: 1,
					FusedActivationFunction: tflite.ActivationFunctionTypeRELU6, DilationWFactor: 1, DilationHFactor: 2}},
			want: &schema.Conv2D{KernelH: 3, KernelW: 3, StrideH: 1, StrideW: 2, DilationH: 2, DilationW: 1,
				PadMode: schema.PadModeSame, InChannel: 3, OutChannel: 16, Group: 1, HasBias: true,
				Activation: schema.ActivationRelu6},
		},
		{
			code: tflite.BuiltinOperatorDEPTHWISE_CONV_2D,
			op: tflite.Operator{Inputs: []int32{tIn, tDWeights, -1}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.DepthwiseConv2DOptions{Padding: tflite.PaddingVALID, StrideW: 1, StrideH: 1,
					DepthMultiplier: 2, DilationWFactor: 1, DilationHFactor: 1}},
			want: &schema.DepthwiseConv2D{KernelH: 3, KernelW: 3, StrideH: 1, StrideW: 1, DilationH: 1, DilationW: 1,
				PadMode: schema.PadModeValid, InChannel: 3, ChannelMultiplier: 2},
		},
		{
			code: tflite.BuiltinOperatorTRANSPOSE_CONV,
			op: tflite.Operator{Inputs: []int32{tShape, tWeights, tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.TransposeConvOptions{Padding: tflite.PaddingSAME, StrideW: 2, StrideH: 2}},
			want: &schema.TransposeConv2D{KernelH: 3, KernelW: 3, StrideH: 2, StrideW: 2, PadMode: schema.PadModeSame,
				InChannel: 3, OutChannel: 16, OutputShape: []int64{1, 1024}},
		},
		{
			code: tflite.BuiltinOperatorFULLY_CONNECTED,
			op: tflite.Operator{Inputs: []int32{tIn, tWeights, -1}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.FullyConnectedOptions{KeepNumDims: true}},
			want: &schema.FullyConnected{KeepNumDims: true},
		},
		{
			code: tflite.BuiltinOperatorMAX_POOL_2D,
			op: tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.Pool2DOptions{Padding: tflite.PaddingVALID, StrideW: 2, StrideH: 2,
					FilterWidth: 3, FilterHeight: 2}},
			want: &schema.Pooling{Mode: schema.PoolMax, PadMode: schema.PadModeValid, StrideH: 2, StrideW: 2,
				WindowH: 2, WindowW: 3},
		},
		{
			code: tflite.BuiltinOperatorLOGISTIC,
			op:   tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut}},
			want: &schema.Activation{Type: schema.ActivationSigmoid},
		},
		{
			code: tflite.BuiltinOperatorLEAKY_RELU,
			op: tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.LeakyReluOptions{Alpha: 0.5}},
			want: &schema.Activation{Type: schema.ActivationLeakyRelu, Alpha: 0.5},
		},
		{
			code: tflite.BuiltinOperatorPRELU,
			op:   tflite.Operator{Inputs: []int32{tIn, tSlope}, Outputs: []int32{tOut}},
			want: &schema.PReLU{ChannelShared: true, Slope: []float32{0.25}},
		},
		{
			code: tflite.BuiltinOperatorADD,
			op: tflite.Operator{Inputs: []int32{tIn, tIn}, Outputs: []int32{tOut},
				BuiltinOptions: tflite.NewAddOptions(tflite.ActivationFunctionTypeRELU)},
			want: &schema.Add{Activation: schema.ActivationRelu},
		},
		{
			code: tflite.BuiltinOperatorDIV,
			op: tflite.Operator{Inputs: []int32{tIn, tIn}, Outputs: []int32{tOut},
				BuiltinOptions: tflite.NewDivOptions(tflite.ActivationFunctionTypeNONE)},
			want: &schema.Div{},
		},
		{
			code: tflite.BuiltinOperatorSOFTMAX,
			op: tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.SoftmaxOptions{Beta: 1}},
			want: &schema.Softmax{Axis: -1, Beta: 1},
		},
		{
			code: tflite.BuiltinOperatorRESHAPE,
			op:   tflite.Operator{Inputs: []int32{tIn, tShape}, Outputs: []int32{tOut}},
			want: &schema.Reshape{Shape: []int64{1, 1024}},
		},
		{
			code: tflite.BuiltinOperatorRESHAPE,
			op: tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.ReshapeOptions{NewShape: []int32{-1, 3}}},
			want: &schema.Reshape{Shape: []int64{-1, 3}},
		},
		{
			code: tflite.BuiltinOperatorRESHAPE,
			op:   tflite.Operator{Inputs: []int32{tIn, tRuntime}, Outputs: []int32{tOut}},
			want: &schema.Reshape{},
		},
		{
			code: tflite.BuiltinOperatorTRANSPOSE,
			op:   tflite.Operator{Inputs: []int32{tIn, tPerm}, Outputs: []int32{tOut}},
			want: &schema.Transpose{Perm: []int64{0, 3, 1, 2}},
		},
		{
			code: tflite.BuiltinOperatorSTRIDED_SLICE,
			op: tflite.Operator{Inputs: []int32{tIn, tPerm, tPerm, tAxis}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.StridedSliceOptions{BeginMask: 1, ShrinkAxisMask: 8}},
			want: &schema.StridedSlice{BeginMask: 1, ShrinkAxisMask: 8,
				Begin: []int64{0, 3, 1, 2}, End: []int64{0, 3, 1, 2}, Strides: []int64{1}},
		},
		{
			code: tflite.BuiltinOperatorPACK,
			op:   tflite.Operator{Inputs: []int32{tIn, tIn, tIn}, Outputs: []int32{tOut}, BuiltinOptions: tflite.NewPackOptions(3, 1)},
			want: &schema.Stack{Axis: 1, N: 3},
		},
		{
			code: tflite.BuiltinOperatorSPLIT,
			op: tflite.Operator{Inputs: []int32{tAxis, tIn}, Outputs: []int32{tOut, tOut},
				BuiltinOptions: tflite.NewSplitOptions(2)},
			want: &schema.Split{Axis: 1, NumSplits: 2},
		},
		{
			code: tflite.BuiltinOperatorSPLIT_V,
			op: tflite.Operator{Inputs: []int32{tIn, tShape, tAxis}, Outputs: []int32{tOut, tOut},
				BuiltinOptions: tflite.NewSplitVOptions(2)},
			want: &schema.Split{Axis: 1, NumSplits: 2, SizeSplits: []int64{1, 1024}},
		},
		{
			code: tflite.BuiltinOperatorMIRROR_PAD,
			op: tflite.Operator{Inputs: []int32{tIn, tPaddings}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.MirrorPadOptions{Mode: tflite.MirrorPadModeREFLECT}},
			want: &schema.Pad{Mode: schema.PaddingReflect, Paddings: []int64{0, 0, 1, 1, 1, 1, 0, 0}},
		},
		{
			code: tflite.BuiltinOperatorPAD,
			op:   tflite.Operator{Inputs: []int32{tIn, tPaddings}, Outputs: []int32{tOut}},
			want: &schema.Pad{Mode: schema.PaddingConstant, Paddings: []int64{0, 0, 1, 1, 1, 1, 0, 0}},
		},
		{
			code: tflite.BuiltinOperatorMEAN,
			op: tflite.Operator{Inputs: []int32{tIn, tAxis}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.ReducerOptions{KeepDims: true}},
			want: &schema.Reduce{Mode: schema.ReduceMean, KeepDims: true, Axes: []int64{1}},
		},
		{
			code: tflite.BuiltinOperatorRESIZE_BILINEAR,
			op: tflite.Operator{Inputs: []int32{tIn, tSize}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.ResizeBilinearOptions{HalfPixelCenters: true}},
			want: &schema.Resize{Method: schema.ResizeBilinear, HalfPixelCenters: true, NewHeight: 16, NewWidth: 16},
		},
		{
			code: tflite.BuiltinOperatorARG_MAX,
			op: tflite.Operator{Inputs: []int32{tIn, tAxis}, Outputs: []int32{tIntOut},
				BuiltinOptions: tflite.NewArgMaxOptions(tflite.TensorTypeINT32)},
			want: &schema.ArgMax{Axis: 1, OutType: schema.DataTypeInt32},
		},
		{
			code: tflite.BuiltinOperatorTOPK_V2,
			op:   tflite.Operator{Inputs: []int32{tIn, tK}, Outputs: []int32{tOut, tIntOut}},
			want: &schema.TopK{K: 5},
		},
		{
			code: tflite.BuiltinOperatorCAST,
			op:   tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tIntOut}},
			want: &schema.Cast{SrcT: schema.DataTypeFloat32, DstT: schema.DataTypeInt32},
		},
		{
			code: tflite.BuiltinOperatorDEQUANTIZE,
			op:   tflite.Operator{Inputs: []int32{tWeights}, Outputs: []int32{tOut}},
			want: &schema.QuantDTypeCast{SrcT: schema.DataTypeInt8, DstT: schema.DataTypeFloat32},
		},
		{
			code: tflite.BuiltinOperatorLOCAL_RESPONSE_NORMALIZATION,
			op: tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.LocalResponseNormalizationOptions{Radius: 2, Bias: 1, Alpha: 0.5, Beta: 0.75}},
			want: &schema.LocalResponseNormalization{DepthRadius: 2, Bias: 1, Alpha: 0.5, Beta: 0.75},
		},
		{
			code: tflite.BuiltinOperatorSHAPE,
			op: tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tIntOut},
				BuiltinOptions: tflite.NewShapeOptions(tflite.TensorTypeINT32)},
			want: &schema.Shape{OutType: schema.DataTypeInt32},
		},
		{
			code: tflite.BuiltinOperatorGREATER_EQUAL,
			op:   tflite.Operator{Inputs: []int32{tIn, tIn}, Outputs: []int32{tOut}},
			want: &schema.GreaterEqual{},
		},
		{
			code: tflite.BuiltinOperatorSPARSE_TO_DENSE,
			op:   tflite.Operator{Inputs: []int32{tAxis, tShape, tIn, tIn}, Outputs: []int32{tOut}},
			want: &schema.SparseToDense{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			model := fixture()
			before, err := tflite.Marshal(model)
			require.NoError(t, err)

			prim, hook, err := parse(t, tt.code, &tt.op, model)
			require.NoError(t, err)
			require.NotNil(t, prim)
			assert.Equal(t, tt.want.PrimitiveType(), prim.Type())
			assert.Equal(t, tt.want, prim.Value())
			assert.Empty(t, hook.AllEntries())

			after, err := tflite.Marshal(model)
			require.NoError(t, err)
			assert.Equal(t, before, after, "parser modified the model")
		})
	}
}

func TestSparseToDenseRegistration(t *testing.T) {
	r := registry.New()
	RegisterAll(r)

	p, ok := r.Lookup(tflite.BuiltinOperatorSPARSE_TO_DENSE)
	require.True(t, ok)
	assert.Equal(t, SparseToDenseParser{}, p)

	logger, hook := test.NewNullLogger()
	op := &tflite.Operator{Inputs: []int32{tAxis, tShape, tIn, tIn}, Outputs: []int32{tOut}}
	prim, err := p.Parse(newContext(tflite.BuiltinOperatorSPARSE_TO_DENSE, logger), op, fixture())
	require.NoError(t, err)
	assert.Equal(t, schema.PrimitiveSparseToDense, prim.Type())
	assert.Equal(t, &schema.SparseToDense{}, prim.Value())
	assert.Empty(t, hook.AllEntries())

	// validate_indices has no IR counterpart.
	op.BuiltinOptions = &tflite.SparseToDenseOptions{ValidateIndices: true}
	prim, err = p.Parse(newContext(tflite.BuiltinOperatorSPARSE_TO_DENSE, logger), op, fixture())
	require.NoError(t, err)
	assert.Equal(t, &schema.SparseToDense{}, prim.Value())
}

func TestRegisterAllLeavesUnknownCodesUnregistered(t *testing.T) {
	r := registry.New()
	RegisterAll(r)
	assert.Equal(t, len(Parsers()), r.Len())
	for _, code := range []tflite.BuiltinOperator{
		tflite.BuiltinOperatorCUSTOM,
		tflite.BuiltinOperatorLSTM,
		tflite.BuiltinOperatorWHILE,
	} {
		_, ok := r.Lookup(code)
		assert.False(t, ok, code.String())
	}
}

func TestMalformedOperators(t *testing.T) {
	tests := []struct {
		name string
		code tflite.BuiltinOperator
		op   tflite.Operator
	}{
		{"missing options", tflite.BuiltinOperatorCONV_2D,
			tflite.Operator{Inputs: []int32{tIn, tWeights}, Outputs: []int32{tOut},
				BuiltinOptionsType: tflite.BuiltinOptionsConv2DOptions}},
		{"wrong options type", tflite.BuiltinOperatorCONV_2D,
			tflite.Operator{Inputs: []int32{tIn, tWeights}, Outputs: []int32{tOut},
				BuiltinOptions: tflite.NewAddOptions(tflite.ActivationFunctionTypeNONE)}},
		{"weight rank", tflite.BuiltinOperatorCONV_2D,
			tflite.Operator{Inputs: []int32{tIn, tShape}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.Conv2DOptions{}}},
		{"missing weight", tflite.BuiltinOperatorCONV_2D,
			tflite.Operator{Inputs: []int32{tIn}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.Conv2DOptions{}}},
		{"tensor index out of range", tflite.BuiltinOperatorCONV_2D,
			tflite.Operator{Inputs: []int32{tIn, 99}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.Conv2DOptions{}}},
		{"zero depth multiplier", tflite.BuiltinOperatorDEPTHWISE_CONV_2D,
			tflite.Operator{Inputs: []int32{tIn, tDWeights}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.DepthwiseConv2DOptions{}}},
		{"not a permutation", tflite.BuiltinOperatorTRANSPOSE,
			tflite.Operator{Inputs: []int32{tIn, tAxis}, Outputs: []int32{tOut}}},
		{"float shape tensor", tflite.BuiltinOperatorRESHAPE,
			tflite.Operator{Inputs: []int32{tIn, tSlope}, Outputs: []int32{tOut}}},
		{"reshape with foreign options", tflite.BuiltinOperatorRESHAPE,
			tflite.Operator{Inputs: []int32{tIn, tShape}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.SoftmaxOptions{}}},
		{"resize size", tflite.BuiltinOperatorRESIZE_NEAREST_NEIGHBOR,
			tflite.Operator{Inputs: []int32{tIn, tAxis}, Outputs: []int32{tOut},
				BuiltinOptions: &tflite.ResizeNearestNeighborOptions{}}},
		{"split axis not scalar", tflite.BuiltinOperatorSPLIT,
			tflite.Operator{Inputs: []int32{tShape, tIn}, Outputs: []int32{tOut},
				BuiltinOptions: tflite.NewSplitOptions(2)}},
		{"cast without output", tflite.BuiltinOperatorCAST,
			tflite.Operator{Inputs: []int32{tIn}}},
		{"prelu integer slope", tflite.BuiltinOperatorPRELU,
			tflite.Operator{Inputs: []int32{tIn, tAxis}, Outputs: []int32{tOut}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prim, hook, err := parse(t, tt.code, &tt.op, fixture())
			assert.Nil(t, prim)
			require.Error(t, err)
			assert.True(t, errors.Is(err, registry.ErrMalformedOptions), "got %v", err)
			require.Len(t, hook.AllEntries(), 1, "want exactly one diagnostic")
			assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		})
	}
}

func TestBuildFailureReportsOnce(t *testing.T) {
	failing := schema.BuilderFunc(func(schema.PrimitiveType, schema.Attr) (*schema.Primitive, error) {
		return nil, errors.Wrap(schema.ErrBuildFailed, "allocation failed")
	})
	ops := map[tflite.BuiltinOperator]*tflite.Operator{
		tflite.BuiltinOperatorSPARSE_TO_DENSE: {Inputs: []int32{tAxis, tShape, tIn, tIn}, Outputs: []int32{tOut}},
		tflite.BuiltinOperatorCONV_2D: {Inputs: []int32{tIn, tWeights}, Outputs: []int32{tOut},
			BuiltinOptions: &tflite.Conv2DOptions{}},
		tflite.BuiltinOperatorABS: {Inputs: []int32{tIn}, Outputs: []int32{tOut}},
		tflite.BuiltinOperatorADD: {Inputs: []int32{tIn, tIn}, Outputs: []int32{tOut},
			BuiltinOptions: tflite.NewAddOptions(tflite.ActivationFunctionTypeNONE)},
	}
	parsers := Parsers()
	for code, op := range ops {
		t.Run(code.String(), func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			ctx := &registry.Context{Code: code, Log: logger, Builder: failing}
			prim, err := parsers[code].Parse(ctx, op, fixture())
			assert.Nil(t, prim)
			assert.True(t, errors.Is(err, schema.ErrBuildFailed))
			assert.Len(t, hook.AllEntries(), 1)
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	model := fixture()
	op := &tflite.Operator{Inputs: []int32{tIn, tShape}, Outputs: []int32{tOut}}
	p := Parsers()[tflite.BuiltinOperatorRESHAPE]

	first, err := p.Parse(newContext(tflite.BuiltinOperatorRESHAPE, nil), op, model)
	require.NoError(t, err)
	second, err := p.Parse(newContext(tflite.BuiltinOperatorRESHAPE, nil), op, model)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.NotSame(t, first.Value(), second.Value())
	assert.Equal(t, first.Value(), second.Value())

	// Records own their slices.
	first.Value().(*schema.Reshape).Shape[0] = 42
	assert.Equal(t, int64(1), second.Value().(*schema.Reshape).Shape[0])
	again, err := model.IntData(model.Subgraphs[0].Tensors[tShape])
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1024}, again)
}

func TestEveryParserTagsItsKind(t *testing.T) {
	// Whatever the operator data, a parser either fails or returns a
	// primitive whose record matches its tag.
	model := fixture()
	for code, p := range Parsers() {
		logger, _ := test.NewNullLogger()
		op := &tflite.Operator{Inputs: []int32{tIn, tAxis, tAxis, tAxis}, Outputs: []int32{tOut}}
		prim, err := p.Parse(newContext(code, logger), op, model)
		if err != nil {
			assert.Nil(t, prim, code.String())
			continue
		}
		assert.Equal(t, prim.Type(), prim.Value().PrimitiveType(), code.String())
	}
}
