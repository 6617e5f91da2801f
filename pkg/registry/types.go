package registry

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// DataType maps a TFLite tensor type onto the IR element type.
func DataType(t tflite.TensorType) schema.DataType {
	switch t {
	case tflite.TensorTypeFLOAT32:
		return schema.DataTypeFloat32
	case tflite.TensorTypeFLOAT16:
		return schema.DataTypeFloat16
	case tflite.TensorTypeFLOAT64:
		return schema.DataTypeFloat64
	case tflite.TensorTypeINT8:
		return schema.DataTypeInt8
	case tflite.TensorTypeINT16:
		return schema.DataTypeInt16
	case tflite.TensorTypeINT32:
		return schema.DataTypeInt32
	case tflite.TensorTypeINT64:
		return schema.DataTypeInt64
	case tflite.TensorTypeUINT8:
		return schema.DataTypeUint8
	case tflite.TensorTypeBOOL:
		return schema.DataTypeBool
	case tflite.TensorTypeSTRING:
		return schema.DataTypeString
	case tflite.TensorTypeCOMPLEX64:
		return schema.DataTypeComplex64
	default:
		return schema.DataTypeUnknown
	}
}

// Activation maps a fused TFLite activation onto the IR activation.
func Activation(a tflite.ActivationFunctionType) schema.ActivationType {
	switch a {
	case tflite.ActivationFunctionTypeRELU:
		return schema.ActivationRelu
	case tflite.ActivationFunctionTypeRELU6:
		return schema.ActivationRelu6
	case tflite.ActivationFunctionTypeRELU_N1_TO_1:
		return schema.ActivationReluN1To1
	case tflite.ActivationFunctionTypeTANH:
		return schema.ActivationTanh
	case tflite.ActivationFunctionTypeSIGN_BIT:
		return schema.ActivationSignBit
	default:
		return schema.ActivationNone
	}
}

// PadMode maps a TFLite padding scheme onto the IR pad mode.
func PadMode(p tflite.Padding) schema.PadMode {
	switch p {
	case tflite.PaddingSAME:
		return schema.PadModeSame
	case tflite.PaddingVALID:
		return schema.PadModeValid
	default:
		return schema.PadModeNotSet
	}
}
