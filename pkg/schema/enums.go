package schema

import "fmt"

// DataType is the element type of an IR tensor.
type DataType int

const (
	DataTypeUnknown DataType = iota
	DataTypeFloat32
	DataTypeFloat16
	DataTypeFloat64
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeUint8
	DataTypeBool
	DataTypeString
	DataTypeComplex64
)

var dataTypeNames = [...]string{
	"unknown", "float32", "float16", "float64", "int8", "int16",
	"int32", "int64", "uint8", "bool", "string", "complex64",
}

func (d DataType) String() string {
	if d >= 0 && int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

// PadMode is the spatial padding scheme of windowed operators.
type PadMode int

const (
	PadModeNotSet PadMode = iota
	PadModeSame
	PadModeValid
)

func (p PadMode) String() string {
	switch p {
	case PadModeSame:
		return "same"
	case PadModeValid:
		return "valid"
	}
	return "not_set"
}

// ActivationType names an activation, standalone or fused into another
// operator.
type ActivationType int

const (
	ActivationNone ActivationType = iota
	ActivationRelu
	ActivationRelu6
	ActivationReluN1To1
	ActivationSigmoid
	ActivationTanh
	ActivationHardSwish
	ActivationElu
	ActivationLeakyRelu
	ActivationSignBit
)

var activationNames = [...]string{
	"none", "relu", "relu6", "relu_n1_to_1", "sigmoid", "tanh",
	"hard_swish", "elu", "leaky_relu", "sign_bit",
}

func (a ActivationType) String() string {
	if a >= 0 && int(a) < len(activationNames) {
		return activationNames[a]
	}
	return fmt.Sprintf("ActivationType(%d)", int(a))
}

// PoolMode selects the pooling reduction.
type PoolMode int

const (
	PoolMax PoolMode = iota
	PoolAverage
	PoolL2
)

func (p PoolMode) String() string {
	switch p {
	case PoolMax:
		return "max"
	case PoolAverage:
		return "average"
	case PoolL2:
		return "l2"
	}
	return fmt.Sprintf("PoolMode(%d)", int(p))
}

// ReduceMode selects the reduction of a Reduce node.
type ReduceMode int

const (
	ReduceMean ReduceMode = iota
	ReduceSum
	ReduceMax
	ReduceMin
	ReduceProd
	ReduceAny
)

var reduceNames = [...]string{"mean", "sum", "max", "min", "prod", "any"}

func (r ReduceMode) String() string {
	if r >= 0 && int(r) < len(reduceNames) {
		return reduceNames[r]
	}
	return fmt.Sprintf("ReduceMode(%d)", int(r))
}

// ResizeMethod selects the interpolation of a Resize node.
type ResizeMethod int

const (
	ResizeBilinear ResizeMethod = iota
	ResizeNearestNeighbor
)

func (r ResizeMethod) String() string {
	if r == ResizeNearestNeighbor {
		return "nearest_neighbor"
	}
	return "bilinear"
}

// PaddingMode selects how a Pad node fills the border.
type PaddingMode int

const (
	PaddingConstant PaddingMode = iota
	PaddingReflect
	PaddingSymmetric
)

func (p PaddingMode) String() string {
	switch p {
	case PaddingReflect:
		return "reflect"
	case PaddingSymmetric:
		return "symmetric"
	}
	return "constant"
}
