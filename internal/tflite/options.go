package tflite

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
)

// BuiltinOptionsType is the discriminant of the builtin_options union.
type BuiltinOptionsType uint8

const (
	BuiltinOptionsNONE                              BuiltinOptionsType = 0
	BuiltinOptionsConv2DOptions                     BuiltinOptionsType = 1
	BuiltinOptionsDepthwiseConv2DOptions            BuiltinOptionsType = 2
	BuiltinOptionsConcatEmbeddingsOptions           BuiltinOptionsType = 3
	BuiltinOptionsLSHProjectionOptions              BuiltinOptionsType = 4
	BuiltinOptionsPool2DOptions                     BuiltinOptionsType = 5
	BuiltinOptionsSVDFOptions                       BuiltinOptionsType = 6
	BuiltinOptionsRNNOptions                        BuiltinOptionsType = 7
	BuiltinOptionsFullyConnectedOptions             BuiltinOptionsType = 8
	BuiltinOptionsSoftmaxOptions                    BuiltinOptionsType = 9
	BuiltinOptionsConcatenationOptions              BuiltinOptionsType = 10
	BuiltinOptionsAddOptions                        BuiltinOptionsType = 11
	BuiltinOptionsL2NormOptions                     BuiltinOptionsType = 12
	BuiltinOptionsLocalResponseNormalizationOptions BuiltinOptionsType = 13
	BuiltinOptionsLSTMOptions                       BuiltinOptionsType = 14
	BuiltinOptionsResizeBilinearOptions             BuiltinOptionsType = 15
	BuiltinOptionsCallOptions                       BuiltinOptionsType = 16
	BuiltinOptionsReshapeOptions                    BuiltinOptionsType = 17
	BuiltinOptionsSkipGramOptions                   BuiltinOptionsType = 18
	BuiltinOptionsSpaceToDepthOptions               BuiltinOptionsType = 19
	BuiltinOptionsEmbeddingLookupSparseOptions      BuiltinOptionsType = 20
	BuiltinOptionsMulOptions                        BuiltinOptionsType = 21
	BuiltinOptionsPadOptions                        BuiltinOptionsType = 22
	BuiltinOptionsGatherOptions                     BuiltinOptionsType = 23
	BuiltinOptionsBatchToSpaceNDOptions             BuiltinOptionsType = 24
	BuiltinOptionsSpaceToBatchNDOptions             BuiltinOptionsType = 25
	BuiltinOptionsTransposeOptions                  BuiltinOptionsType = 26
	BuiltinOptionsReducerOptions                    BuiltinOptionsType = 27
	BuiltinOptionsSubOptions                        BuiltinOptionsType = 28
	BuiltinOptionsDivOptions                        BuiltinOptionsType = 29
	BuiltinOptionsSqueezeOptions                    BuiltinOptionsType = 30
	BuiltinOptionsSequenceRNNOptions                BuiltinOptionsType = 31
	BuiltinOptionsStridedSliceOptions               BuiltinOptionsType = 32
	BuiltinOptionsExpOptions                        BuiltinOptionsType = 33
	BuiltinOptionsTopKV2Options                     BuiltinOptionsType = 34
	BuiltinOptionsSplitOptions                      BuiltinOptionsType = 35
	BuiltinOptionsLogSoftmaxOptions                 BuiltinOptionsType = 36
	BuiltinOptionsCastOptions                       BuiltinOptionsType = 37
	BuiltinOptionsDequantizeOptions                 BuiltinOptionsType = 38
	BuiltinOptionsMaximumMinimumOptions             BuiltinOptionsType = 39
	BuiltinOptionsArgMaxOptions                     BuiltinOptionsType = 40
	BuiltinOptionsLessOptions                       BuiltinOptionsType = 41
	BuiltinOptionsNegOptions                        BuiltinOptionsType = 42
	BuiltinOptionsPadV2Options                      BuiltinOptionsType = 43
	BuiltinOptionsGreaterOptions                    BuiltinOptionsType = 44
	BuiltinOptionsGreaterEqualOptions               BuiltinOptionsType = 45
	BuiltinOptionsLessEqualOptions                  BuiltinOptionsType = 46
	BuiltinOptionsSelectOptions                     BuiltinOptionsType = 47
	BuiltinOptionsSliceOptions                      BuiltinOptionsType = 48
	BuiltinOptionsTransposeConvOptions              BuiltinOptionsType = 49
	BuiltinOptionsSparseToDenseOptions              BuiltinOptionsType = 50
	BuiltinOptionsTileOptions                       BuiltinOptionsType = 51
	BuiltinOptionsExpandDimsOptions                 BuiltinOptionsType = 52
	BuiltinOptionsEqualOptions                      BuiltinOptionsType = 53
	BuiltinOptionsNotEqualOptions                   BuiltinOptionsType = 54
	BuiltinOptionsShapeOptions                      BuiltinOptionsType = 55
	BuiltinOptionsPowOptions                        BuiltinOptionsType = 56
	BuiltinOptionsArgMinOptions                     BuiltinOptionsType = 57
	BuiltinOptionsFakeQuantOptions                  BuiltinOptionsType = 58
	BuiltinOptionsPackOptions                       BuiltinOptionsType = 59
	BuiltinOptionsLogicalOrOptions                  BuiltinOptionsType = 60
	BuiltinOptionsOneHotOptions                     BuiltinOptionsType = 61
	BuiltinOptionsLogicalAndOptions                 BuiltinOptionsType = 62
	BuiltinOptionsLogicalNotOptions                 BuiltinOptionsType = 63
	BuiltinOptionsUnpackOptions                     BuiltinOptionsType = 64
	BuiltinOptionsFloorDivOptions                   BuiltinOptionsType = 65
	BuiltinOptionsSquareOptions                     BuiltinOptionsType = 66
	BuiltinOptionsZerosLikeOptions                  BuiltinOptionsType = 67
	BuiltinOptionsFillOptions                       BuiltinOptionsType = 68
	BuiltinOptionsBidirectionalSequenceLSTMOptions  BuiltinOptionsType = 69
	BuiltinOptionsBidirectionalSequenceRNNOptions   BuiltinOptionsType = 70
	BuiltinOptionsUnidirectionalSequenceLSTMOptions BuiltinOptionsType = 71
	BuiltinOptionsFloorModOptions                   BuiltinOptionsType = 72
	BuiltinOptionsRangeOptions                      BuiltinOptionsType = 73
	BuiltinOptionsResizeNearestNeighborOptions      BuiltinOptionsType = 74
	BuiltinOptionsLeakyReluOptions                  BuiltinOptionsType = 75
	BuiltinOptionsSquaredDifferenceOptions          BuiltinOptionsType = 76
	BuiltinOptionsMirrorPadOptions                  BuiltinOptionsType = 77
	BuiltinOptionsAbsOptions                        BuiltinOptionsType = 78
	BuiltinOptionsSplitVOptions                     BuiltinOptionsType = 79
	BuiltinOptionsUniqueOptions                     BuiltinOptionsType = 80
	BuiltinOptionsReverseV2Options                  BuiltinOptionsType = 81
	BuiltinOptionsAddNOptions                       BuiltinOptionsType = 82
	BuiltinOptionsGatherNdOptions                   BuiltinOptionsType = 83
	BuiltinOptionsCosOptions                        BuiltinOptionsType = 84
	BuiltinOptionsWhereOptions                      BuiltinOptionsType = 85
	BuiltinOptionsRankOptions                       BuiltinOptionsType = 86
	BuiltinOptionsReverseSequenceOptions            BuiltinOptionsType = 87
	BuiltinOptionsMatrixDiagOptions                 BuiltinOptionsType = 88
	BuiltinOptionsQuantizeOptions                   BuiltinOptionsType = 89
	BuiltinOptionsMatrixSetDiagOptions              BuiltinOptionsType = 90
	BuiltinOptionsHardSwishOptions                  BuiltinOptionsType = 91
	BuiltinOptionsIfOptions                         BuiltinOptionsType = 92
	BuiltinOptionsWhileOptions                      BuiltinOptionsType = 93
	BuiltinOptionsDepthToSpaceOptions               BuiltinOptionsType = 94
)

var builtinOptionsNames = map[BuiltinOptionsType]string{
	BuiltinOptionsNONE:                              "NONE",
	BuiltinOptionsConv2DOptions:                     "Conv2DOptions",
	BuiltinOptionsDepthwiseConv2DOptions:            "DepthwiseConv2DOptions",
	BuiltinOptionsPool2DOptions:                     "Pool2DOptions",
	BuiltinOptionsFullyConnectedOptions:             "FullyConnectedOptions",
	BuiltinOptionsSoftmaxOptions:                    "SoftmaxOptions",
	BuiltinOptionsConcatenationOptions:              "ConcatenationOptions",
	BuiltinOptionsAddOptions:                        "AddOptions",
	BuiltinOptionsL2NormOptions:                     "L2NormOptions",
	BuiltinOptionsLocalResponseNormalizationOptions: "LocalResponseNormalizationOptions",
	BuiltinOptionsResizeBilinearOptions:             "ResizeBilinearOptions",
	BuiltinOptionsReshapeOptions:                    "ReshapeOptions",
	BuiltinOptionsSpaceToDepthOptions:               "SpaceToDepthOptions",
	BuiltinOptionsMulOptions:                        "MulOptions",
	BuiltinOptionsPadOptions:                        "PadOptions",
	BuiltinOptionsGatherOptions:                     "GatherOptions",
	BuiltinOptionsTransposeOptions:                  "TransposeOptions",
	BuiltinOptionsReducerOptions:                    "ReducerOptions",
	BuiltinOptionsSubOptions:                        "SubOptions",
	BuiltinOptionsDivOptions:                        "DivOptions",
	BuiltinOptionsSqueezeOptions:                    "SqueezeOptions",
	BuiltinOptionsStridedSliceOptions:               "StridedSliceOptions",
	BuiltinOptionsSplitOptions:                      "SplitOptions",
	BuiltinOptionsCastOptions:                       "CastOptions",
	BuiltinOptionsArgMaxOptions:                     "ArgMaxOptions",
	BuiltinOptionsTransposeConvOptions:              "TransposeConvOptions",
	BuiltinOptionsSparseToDenseOptions:              "SparseToDenseOptions",
	BuiltinOptionsShapeOptions:                      "ShapeOptions",
	BuiltinOptionsArgMinOptions:                     "ArgMinOptions",
	BuiltinOptionsPackOptions:                       "PackOptions",
	BuiltinOptionsOneHotOptions:                     "OneHotOptions",
	BuiltinOptionsUnpackOptions:                     "UnpackOptions",
	BuiltinOptionsResizeNearestNeighborOptions:      "ResizeNearestNeighborOptions",
	BuiltinOptionsLeakyReluOptions:                  "LeakyReluOptions",
	BuiltinOptionsMirrorPadOptions:                  "MirrorPadOptions",
	BuiltinOptionsSplitVOptions:                     "SplitVOptions",
	BuiltinOptionsDepthToSpaceOptions:               "DepthToSpaceOptions",
}

func (t BuiltinOptionsType) String() string {
	if name, ok := builtinOptionsNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BuiltinOptions(%d)", uint8(t))
}

// Options is a decoded member of the builtin_options union.
type Options interface {
	OptionsType() BuiltinOptionsType
	unpack(t *table)
	pack(b *flatbuffers.Builder) flatbuffers.UOffsetT
}

// newOptions returns a zero options value for t, or nil when the union
// member is not decoded by this package.
func newOptions(t BuiltinOptionsType) Options {
	switch t {
	case BuiltinOptionsConv2DOptions:
		return &Conv2DOptions{}
	case BuiltinOptionsDepthwiseConv2DOptions:
		return &DepthwiseConv2DOptions{}
	case BuiltinOptionsPool2DOptions:
		return &Pool2DOptions{}
	case BuiltinOptionsFullyConnectedOptions:
		return &FullyConnectedOptions{}
	case BuiltinOptionsSoftmaxOptions:
		return &SoftmaxOptions{}
	case BuiltinOptionsConcatenationOptions:
		return &ConcatenationOptions{}
	case BuiltinOptionsAddOptions:
		return &AddOptions{}
	case BuiltinOptionsL2NormOptions:
		return &L2NormOptions{}
	case BuiltinOptionsLocalResponseNormalizationOptions:
		return &LocalResponseNormalizationOptions{}
	case BuiltinOptionsResizeBilinearOptions:
		return &ResizeBilinearOptions{}
	case BuiltinOptionsReshapeOptions:
		return &ReshapeOptions{}
	case BuiltinOptionsSpaceToDepthOptions:
		return &SpaceToDepthOptions{}
	case BuiltinOptionsMulOptions:
		return &MulOptions{}
	case BuiltinOptionsGatherOptions:
		return &GatherOptions{}
	case BuiltinOptionsReducerOptions:
		return &ReducerOptions{}
	case BuiltinOptionsSubOptions:
		return &SubOptions{}
	case BuiltinOptionsDivOptions:
		return &DivOptions{}
	case BuiltinOptionsSqueezeOptions:
		return &SqueezeOptions{}
	case BuiltinOptionsStridedSliceOptions:
		return &StridedSliceOptions{}
	case BuiltinOptionsSplitOptions:
		return &SplitOptions{}
	case BuiltinOptionsCastOptions:
		return &CastOptions{}
	case BuiltinOptionsArgMaxOptions:
		return &ArgMaxOptions{}
	case BuiltinOptionsTransposeConvOptions:
		return &TransposeConvOptions{}
	case BuiltinOptionsSparseToDenseOptions:
		return &SparseToDenseOptions{}
	case BuiltinOptionsShapeOptions:
		return &ShapeOptions{}
	case BuiltinOptionsArgMinOptions:
		return &ArgMinOptions{}
	case BuiltinOptionsPackOptions:
		return &PackOptions{}
	case BuiltinOptionsOneHotOptions:
		return &OneHotOptions{}
	case BuiltinOptionsUnpackOptions:
		return &UnpackOptions{}
	case BuiltinOptionsResizeNearestNeighborOptions:
		return &ResizeNearestNeighborOptions{}
	case BuiltinOptionsLeakyReluOptions:
		return &LeakyReluOptions{}
	case BuiltinOptionsMirrorPadOptions:
		return &MirrorPadOptions{}
	case BuiltinOptionsSplitVOptions:
		return &SplitVOptions{}
	case BuiltinOptionsDepthToSpaceOptions:
		return &DepthToSpaceOptions{}
	}
	return nil
}

type Conv2DOptions struct {
	Padding                 Padding
	StrideW                 int32
	StrideH                 int32
	FusedActivationFunction ActivationFunctionType
	DilationWFactor         int32
	DilationHFactor         int32
}

func (*Conv2DOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsConv2DOptions }

func (o *Conv2DOptions) unpack(t *table) {
	o.Padding = Padding(t.i8(0, 0))
	o.StrideW = t.i32(1, 0)
	o.StrideH = t.i32(2, 0)
	o.FusedActivationFunction = ActivationFunctionType(t.i8(3, 0))
	o.DilationWFactor = t.i32(4, 1)
	o.DilationHFactor = t.i32(5, 1)
}

func (o *Conv2DOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(6)
	b.PrependInt8Slot(0, int8(o.Padding), 0)
	b.PrependInt32Slot(1, o.StrideW, 0)
	b.PrependInt32Slot(2, o.StrideH, 0)
	b.PrependInt8Slot(3, int8(o.FusedActivationFunction), 0)
	b.PrependInt32Slot(4, o.DilationWFactor, 1)
	b.PrependInt32Slot(5, o.DilationHFactor, 1)
	return b.EndObject()
}

type DepthwiseConv2DOptions struct {
	Padding                 Padding
	StrideW                 int32
	StrideH                 int32
	DepthMultiplier         int32
	FusedActivationFunction ActivationFunctionType
	DilationWFactor         int32
	DilationHFactor         int32
}

func (*DepthwiseConv2DOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsDepthwiseConv2DOptions
}

func (o *DepthwiseConv2DOptions) unpack(t *table) {
	o.Padding = Padding(t.i8(0, 0))
	o.StrideW = t.i32(1, 0)
	o.StrideH = t.i32(2, 0)
	o.DepthMultiplier = t.i32(3, 0)
	o.FusedActivationFunction = ActivationFunctionType(t.i8(4, 0))
	o.DilationWFactor = t.i32(5, 1)
	o.DilationHFactor = t.i32(6, 1)
}

func (o *DepthwiseConv2DOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(7)
	b.PrependInt8Slot(0, int8(o.Padding), 0)
	b.PrependInt32Slot(1, o.StrideW, 0)
	b.PrependInt32Slot(2, o.StrideH, 0)
	b.PrependInt32Slot(3, o.DepthMultiplier, 0)
	b.PrependInt8Slot(4, int8(o.FusedActivationFunction), 0)
	b.PrependInt32Slot(5, o.DilationWFactor, 1)
	b.PrependInt32Slot(6, o.DilationHFactor, 1)
	return b.EndObject()
}

type Pool2DOptions struct {
	Padding                 Padding
	StrideW                 int32
	StrideH                 int32
	FilterWidth             int32
	FilterHeight            int32
	FusedActivationFunction ActivationFunctionType
}

func (*Pool2DOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsPool2DOptions }

func (o *Pool2DOptions) unpack(t *table) {
	o.Padding = Padding(t.i8(0, 0))
	o.StrideW = t.i32(1, 0)
	o.StrideH = t.i32(2, 0)
	o.FilterWidth = t.i32(3, 0)
	o.FilterHeight = t.i32(4, 0)
	o.FusedActivationFunction = ActivationFunctionType(t.i8(5, 0))
}

func (o *Pool2DOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(6)
	b.PrependInt8Slot(0, int8(o.Padding), 0)
	b.PrependInt32Slot(1, o.StrideW, 0)
	b.PrependInt32Slot(2, o.StrideH, 0)
	b.PrependInt32Slot(3, o.FilterWidth, 0)
	b.PrependInt32Slot(4, o.FilterHeight, 0)
	b.PrependInt8Slot(5, int8(o.FusedActivationFunction), 0)
	return b.EndObject()
}

type FullyConnectedOptions struct {
	FusedActivationFunction  ActivationFunctionType
	WeightsFormat            FullyConnectedOptionsWeightsFormat
	KeepNumDims              bool
	AsymmetricQuantizeInputs bool
}

func (*FullyConnectedOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsFullyConnectedOptions
}

func (o *FullyConnectedOptions) unpack(t *table) {
	o.FusedActivationFunction = ActivationFunctionType(t.i8(0, 0))
	o.WeightsFormat = FullyConnectedOptionsWeightsFormat(t.i8(1, 0))
	o.KeepNumDims = t.flag(2, false)
	o.AsymmetricQuantizeInputs = t.flag(3, false)
}

func (o *FullyConnectedOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(4)
	b.PrependInt8Slot(0, int8(o.FusedActivationFunction), 0)
	b.PrependInt8Slot(1, int8(o.WeightsFormat), 0)
	b.PrependBoolSlot(2, o.KeepNumDims, false)
	b.PrependBoolSlot(3, o.AsymmetricQuantizeInputs, false)
	return b.EndObject()
}

type SoftmaxOptions struct {
	Beta float32
}

func (*SoftmaxOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsSoftmaxOptions }

func (o *SoftmaxOptions) unpack(t *table) { o.Beta = t.f32(0, 0) }

func (o *SoftmaxOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependFloat32Slot(0, o.Beta, 0)
	return b.EndObject()
}

type ConcatenationOptions struct {
	Axis                    int32
	FusedActivationFunction ActivationFunctionType
}

func (*ConcatenationOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsConcatenationOptions
}

func (o *ConcatenationOptions) unpack(t *table) {
	o.Axis = t.i32(0, 0)
	o.FusedActivationFunction = ActivationFunctionType(t.i8(1, 0))
}

func (o *ConcatenationOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependInt32Slot(0, o.Axis, 0)
	b.PrependInt8Slot(1, int8(o.FusedActivationFunction), 0)
	return b.EndObject()
}

// activationOptions is the layout shared by ADD, SUB, MUL, DIV and
// L2_NORMALIZATION options: the fused activation in field 0.
type activationOptions struct {
	FusedActivationFunction ActivationFunctionType
}

// Activation returns the fused activation.
func (o *activationOptions) Activation() ActivationFunctionType {
	return o.FusedActivationFunction
}

func (o *activationOptions) unpack(t *table) {
	o.FusedActivationFunction = ActivationFunctionType(t.i8(0, 0))
}

func (o *activationOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt8Slot(0, int8(o.FusedActivationFunction), 0)
	return b.EndObject()
}

type AddOptions struct{ activationOptions }

func (*AddOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsAddOptions }

type SubOptions struct{ activationOptions }

func (*SubOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsSubOptions }

type MulOptions struct{ activationOptions }

func (*MulOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsMulOptions }

type DivOptions struct{ activationOptions }

func (*DivOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsDivOptions }

type L2NormOptions struct{ activationOptions }

func (*L2NormOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsL2NormOptions }

// NewAddOptions and friends spare callers from naming the embedded layout.
func NewAddOptions(act ActivationFunctionType) *AddOptions {
	return &AddOptions{activationOptions{act}}
}

func NewSubOptions(act ActivationFunctionType) *SubOptions {
	return &SubOptions{activationOptions{act}}
}

func NewMulOptions(act ActivationFunctionType) *MulOptions {
	return &MulOptions{activationOptions{act}}
}

func NewDivOptions(act ActivationFunctionType) *DivOptions {
	return &DivOptions{activationOptions{act}}
}

func NewL2NormOptions(act ActivationFunctionType) *L2NormOptions {
	return &L2NormOptions{activationOptions{act}}
}

type LocalResponseNormalizationOptions struct {
	Radius int32
	Bias   float32
	Alpha  float32
	Beta   float32
}

func (*LocalResponseNormalizationOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsLocalResponseNormalizationOptions
}

func (o *LocalResponseNormalizationOptions) unpack(t *table) {
	o.Radius = t.i32(0, 0)
	o.Bias = t.f32(1, 0)
	o.Alpha = t.f32(2, 0)
	o.Beta = t.f32(3, 0)
}

func (o *LocalResponseNormalizationOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(4)
	b.PrependInt32Slot(0, o.Radius, 0)
	b.PrependFloat32Slot(1, o.Bias, 0)
	b.PrependFloat32Slot(2, o.Alpha, 0)
	b.PrependFloat32Slot(3, o.Beta, 0)
	return b.EndObject()
}

type ResizeBilinearOptions struct {
	AlignCorners     bool
	HalfPixelCenters bool
}

func (*ResizeBilinearOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsResizeBilinearOptions
}

// Fields 0 and 1 are the deprecated new_height/new_width.
func (o *ResizeBilinearOptions) unpack(t *table) {
	o.AlignCorners = t.flag(2, false)
	o.HalfPixelCenters = t.flag(3, false)
}

func (o *ResizeBilinearOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(4)
	b.PrependBoolSlot(2, o.AlignCorners, false)
	b.PrependBoolSlot(3, o.HalfPixelCenters, false)
	return b.EndObject()
}

type ResizeNearestNeighborOptions struct {
	AlignCorners     bool
	HalfPixelCenters bool
}

func (*ResizeNearestNeighborOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsResizeNearestNeighborOptions
}

func (o *ResizeNearestNeighborOptions) unpack(t *table) {
	o.AlignCorners = t.flag(0, false)
	o.HalfPixelCenters = t.flag(1, false)
}

func (o *ResizeNearestNeighborOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependBoolSlot(0, o.AlignCorners, false)
	b.PrependBoolSlot(1, o.HalfPixelCenters, false)
	return b.EndObject()
}

type ReshapeOptions struct {
	NewShape []int32
}

func (*ReshapeOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsReshapeOptions }

func (o *ReshapeOptions) unpack(t *table) { o.NewShape = t.int32s(0) }

func (o *ReshapeOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	shape := int32Vector(b, o.NewShape)
	b.StartObject(1)
	if shape != 0 {
		b.PrependUOffsetTSlot(0, shape, 0)
	}
	return b.EndObject()
}

type SqueezeOptions struct {
	SqueezeDims []int32
}

func (*SqueezeOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsSqueezeOptions }

func (o *SqueezeOptions) unpack(t *table) { o.SqueezeDims = t.int32s(0) }

func (o *SqueezeOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	dims := int32Vector(b, o.SqueezeDims)
	b.StartObject(1)
	if dims != 0 {
		b.PrependUOffsetTSlot(0, dims, 0)
	}
	return b.EndObject()
}

// blockSizeOptions is shared by SPACE_TO_DEPTH and DEPTH_TO_SPACE.
type blockSizeOptions struct {
	BlockSize int32
}

func (o *blockSizeOptions) unpack(t *table) { o.BlockSize = t.i32(0, 0) }

func (o *blockSizeOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt32Slot(0, o.BlockSize, 0)
	return b.EndObject()
}

type SpaceToDepthOptions struct{ blockSizeOptions }

func (*SpaceToDepthOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsSpaceToDepthOptions
}

type DepthToSpaceOptions struct{ blockSizeOptions }

func (*DepthToSpaceOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsDepthToSpaceOptions
}

func NewSpaceToDepthOptions(blockSize int32) *SpaceToDepthOptions {
	return &SpaceToDepthOptions{blockSizeOptions{blockSize}}
}

func NewDepthToSpaceOptions(blockSize int32) *DepthToSpaceOptions {
	return &DepthToSpaceOptions{blockSizeOptions{blockSize}}
}

type GatherOptions struct {
	Axis      int32
	BatchDims int32
}

func (*GatherOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsGatherOptions }

func (o *GatherOptions) unpack(t *table) {
	o.Axis = t.i32(0, 0)
	o.BatchDims = t.i32(1, 0)
}

func (o *GatherOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependInt32Slot(0, o.Axis, 0)
	b.PrependInt32Slot(1, o.BatchDims, 0)
	return b.EndObject()
}

type ReducerOptions struct {
	KeepDims bool
}

func (*ReducerOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsReducerOptions }

func (o *ReducerOptions) unpack(t *table) { o.KeepDims = t.flag(0, false) }

func (o *ReducerOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependBoolSlot(0, o.KeepDims, false)
	return b.EndObject()
}

type StridedSliceOptions struct {
	BeginMask      int32
	EndMask        int32
	EllipsisMask   int32
	NewAxisMask    int32
	ShrinkAxisMask int32
}

func (*StridedSliceOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsStridedSliceOptions
}

func (o *StridedSliceOptions) unpack(t *table) {
	o.BeginMask = t.i32(0, 0)
	o.EndMask = t.i32(1, 0)
	o.EllipsisMask = t.i32(2, 0)
	o.NewAxisMask = t.i32(3, 0)
	o.ShrinkAxisMask = t.i32(4, 0)
}

func (o *StridedSliceOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(5)
	b.PrependInt32Slot(0, o.BeginMask, 0)
	b.PrependInt32Slot(1, o.EndMask, 0)
	b.PrependInt32Slot(2, o.EllipsisMask, 0)
	b.PrependInt32Slot(3, o.NewAxisMask, 0)
	b.PrependInt32Slot(4, o.ShrinkAxisMask, 0)
	return b.EndObject()
}

// numSplitsOptions is shared by SPLIT and SPLIT_V.
type numSplitsOptions struct {
	NumSplits int32
}

func (o *numSplitsOptions) unpack(t *table) { o.NumSplits = t.i32(0, 0) }

func (o *numSplitsOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt32Slot(0, o.NumSplits, 0)
	return b.EndObject()
}

type SplitOptions struct{ numSplitsOptions }

func (*SplitOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsSplitOptions }

type SplitVOptions struct{ numSplitsOptions }

func (*SplitVOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsSplitVOptions }

func NewSplitOptions(n int32) *SplitOptions { return &SplitOptions{numSplitsOptions{n}} }

func NewSplitVOptions(n int32) *SplitVOptions { return &SplitVOptions{numSplitsOptions{n}} }

type CastOptions struct {
	InDataType  TensorType
	OutDataType TensorType
}

func (*CastOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsCastOptions }

func (o *CastOptions) unpack(t *table) {
	o.InDataType = TensorType(t.i8(0, 0))
	o.OutDataType = TensorType(t.i8(1, 0))
}

func (o *CastOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependInt8Slot(0, int8(o.InDataType), 0)
	b.PrependInt8Slot(1, int8(o.OutDataType), 0)
	return b.EndObject()
}

// outputTypeOptions is shared by ARG_MAX, ARG_MIN and SHAPE.
type outputTypeOptions struct {
	OutputType TensorType
}

func (o *outputTypeOptions) unpack(t *table) { o.OutputType = TensorType(t.i8(0, 0)) }

func (o *outputTypeOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt8Slot(0, int8(o.OutputType), 0)
	return b.EndObject()
}

type ArgMaxOptions struct{ outputTypeOptions }

func (*ArgMaxOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsArgMaxOptions }

type ArgMinOptions struct{ outputTypeOptions }

func (*ArgMinOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsArgMinOptions }

type ShapeOptions struct{ outputTypeOptions }

func (*ShapeOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsShapeOptions }

func NewArgMaxOptions(t TensorType) *ArgMaxOptions { return &ArgMaxOptions{outputTypeOptions{t}} }

func NewArgMinOptions(t TensorType) *ArgMinOptions { return &ArgMinOptions{outputTypeOptions{t}} }

func NewShapeOptions(t TensorType) *ShapeOptions { return &ShapeOptions{outputTypeOptions{t}} }

type TransposeConvOptions struct {
	Padding Padding
	StrideW int32
	StrideH int32
}

func (*TransposeConvOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsTransposeConvOptions
}

func (o *TransposeConvOptions) unpack(t *table) {
	o.Padding = Padding(t.i8(0, 0))
	o.StrideW = t.i32(1, 0)
	o.StrideH = t.i32(2, 0)
}

func (o *TransposeConvOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(3)
	b.PrependInt8Slot(0, int8(o.Padding), 0)
	b.PrependInt32Slot(1, o.StrideW, 0)
	b.PrependInt32Slot(2, o.StrideH, 0)
	return b.EndObject()
}

type SparseToDenseOptions struct {
	ValidateIndices bool
}

func (*SparseToDenseOptions) OptionsType() BuiltinOptionsType {
	return BuiltinOptionsSparseToDenseOptions
}

func (o *SparseToDenseOptions) unpack(t *table) { o.ValidateIndices = t.flag(0, false) }

func (o *SparseToDenseOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependBoolSlot(0, o.ValidateIndices, false)
	return b.EndObject()
}

// axisCountOptions is the layout of PACK (values_count, axis) and UNPACK
// (num, axis).
type axisCountOptions struct {
	count int32
	Axis  int32
}

func (o *axisCountOptions) unpack(t *table) {
	o.count = t.i32(0, 0)
	o.Axis = t.i32(1, 0)
}

func (o *axisCountOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(2)
	b.PrependInt32Slot(0, o.count, 0)
	b.PrependInt32Slot(1, o.Axis, 0)
	return b.EndObject()
}

type PackOptions struct{ axisCountOptions }

func (*PackOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsPackOptions }

// ValuesCount is the number of packed inputs.
func (o *PackOptions) ValuesCount() int32 { return o.count }

type UnpackOptions struct{ axisCountOptions }

func (*UnpackOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsUnpackOptions }

// Num is the number of unpacked outputs.
func (o *UnpackOptions) Num() int32 { return o.count }

func NewPackOptions(valuesCount, axis int32) *PackOptions {
	return &PackOptions{axisCountOptions{count: valuesCount, Axis: axis}}
}

func NewUnpackOptions(num, axis int32) *UnpackOptions {
	return &UnpackOptions{axisCountOptions{count: num, Axis: axis}}
}

type OneHotOptions struct {
	Axis int32
}

func (*OneHotOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsOneHotOptions }

func (o *OneHotOptions) unpack(t *table) { o.Axis = t.i32(0, 0) }

func (o *OneHotOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt32Slot(0, o.Axis, 0)
	return b.EndObject()
}

type LeakyReluOptions struct {
	Alpha float32
}

func (*LeakyReluOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsLeakyReluOptions }

func (o *LeakyReluOptions) unpack(t *table) { o.Alpha = t.f32(0, 0) }

func (o *LeakyReluOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependFloat32Slot(0, o.Alpha, 0)
	return b.EndObject()
}

type MirrorPadOptions struct {
	Mode MirrorPadMode
}

func (*MirrorPadOptions) OptionsType() BuiltinOptionsType { return BuiltinOptionsMirrorPadOptions }

func (o *MirrorPadOptions) unpack(t *table) { o.Mode = MirrorPadMode(t.i8(0, 0)) }

func (o *MirrorPadOptions) pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	b.StartObject(1)
	b.PrependInt8Slot(0, int8(o.Mode), 0)
	return b.EndObject()
}
