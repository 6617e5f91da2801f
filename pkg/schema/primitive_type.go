// Package schema defines the intermediate representation produced by the
// operator parsers: typed attribute records, the primitive envelope that
// tags each record with its operator kind, and the graph that holds them.
package schema

import "fmt"

// PrimitiveType is the operator-kind discriminant of an IR node.
type PrimitiveType int

const (
	PrimitiveUnknown PrimitiveType = iota
	PrimitiveConv2D
	PrimitiveDepthwiseConv2D
	PrimitiveTransposeConv2D
	PrimitiveFullyConnected
	PrimitivePooling
	PrimitiveActivation
	PrimitivePReLU
	PrimitiveAdd
	PrimitiveSub
	PrimitiveMul
	PrimitiveDiv
	PrimitiveSoftmax
	PrimitiveLogSoftmax
	PrimitiveConcat
	PrimitiveReshape
	PrimitiveTranspose
	PrimitiveSqueeze
	PrimitiveExpandDims
	PrimitiveStridedSlice
	PrimitiveSlice
	PrimitiveGather
	PrimitiveGatherNd
	PrimitiveStack
	PrimitiveUnstack
	PrimitiveSplit
	PrimitiveTile
	PrimitiveDepthToSpace
	PrimitiveSpaceToDepth
	PrimitiveBatchToSpaceND
	PrimitiveSpaceToBatchND
	PrimitiveShape
	PrimitiveRank
	PrimitiveFill
	PrimitiveZerosLike
	PrimitiveRange
	PrimitiveReverseV2
	PrimitiveOneHot
	PrimitivePad
	PrimitiveReduce
	PrimitiveResize
	PrimitiveArgMax
	PrimitiveArgMin
	PrimitiveTopK
	PrimitiveWhere
	PrimitiveSelect
	PrimitiveSparseToDense
	PrimitiveCast
	PrimitiveQuantDTypeCast
	PrimitiveL2Norm
	PrimitiveLocalResponseNormalization
	PrimitiveAbs
	PrimitiveExp
	PrimitiveLog
	PrimitiveSqrt
	PrimitiveRsqrt
	PrimitiveSin
	PrimitiveCos
	PrimitiveNeg
	PrimitiveFloor
	PrimitiveCeil
	PrimitiveRound
	PrimitiveSquare
	PrimitivePow
	PrimitiveMaximum
	PrimitiveMinimum
	PrimitiveSquaredDifference
	PrimitiveFloorDiv
	PrimitiveFloorMod
	PrimitiveAddN
	PrimitiveEqual
	PrimitiveNotEqual
	PrimitiveLess
	PrimitiveLessEqual
	PrimitiveGreater
	PrimitiveGreaterEqual
	PrimitiveLogicalAnd
	PrimitiveLogicalOr
	PrimitiveLogicalNot

	primitiveTypeCount
)

var primitiveTypeNames = [primitiveTypeCount]string{
	PrimitiveUnknown:                    "Unknown",
	PrimitiveConv2D:                     "Conv2D",
	PrimitiveDepthwiseConv2D:            "DepthwiseConv2D",
	PrimitiveTransposeConv2D:            "TransposeConv2D",
	PrimitiveFullyConnected:             "FullyConnected",
	PrimitivePooling:                    "Pooling",
	PrimitiveActivation:                 "Activation",
	PrimitivePReLU:                      "PReLU",
	PrimitiveAdd:                        "Add",
	PrimitiveSub:                        "Sub",
	PrimitiveMul:                        "Mul",
	PrimitiveDiv:                        "Div",
	PrimitiveSoftmax:                    "Softmax",
	PrimitiveLogSoftmax:                 "LogSoftmax",
	PrimitiveConcat:                     "Concat",
	PrimitiveReshape:                    "Reshape",
	PrimitiveTranspose:                  "Transpose",
	PrimitiveSqueeze:                    "Squeeze",
	PrimitiveExpandDims:                 "ExpandDims",
	PrimitiveStridedSlice:               "StridedSlice",
	PrimitiveSlice:                      "Slice",
	PrimitiveGather:                     "Gather",
	PrimitiveGatherNd:                   "GatherNd",
	PrimitiveStack:                      "Stack",
	PrimitiveUnstack:                    "Unstack",
	PrimitiveSplit:                      "Split",
	PrimitiveTile:                       "Tile",
	PrimitiveDepthToSpace:               "DepthToSpace",
	PrimitiveSpaceToDepth:               "SpaceToDepth",
	PrimitiveBatchToSpaceND:             "BatchToSpaceND",
	PrimitiveSpaceToBatchND:             "SpaceToBatchND",
	PrimitiveShape:                      "Shape",
	PrimitiveRank:                       "Rank",
	PrimitiveFill:                       "Fill",
	PrimitiveZerosLike:                  "ZerosLike",
	PrimitiveRange:                      "Range",
	PrimitiveReverseV2:                  "ReverseV2",
	PrimitiveOneHot:                     "OneHot",
	PrimitivePad:                        "Pad",
	PrimitiveReduce:                     "Reduce",
	PrimitiveResize:                     "Resize",
	PrimitiveArgMax:                     "ArgMax",
	PrimitiveArgMin:                     "ArgMin",
	PrimitiveTopK:                       "TopK",
	PrimitiveWhere:                      "Where",
	PrimitiveSelect:                     "Select",
	PrimitiveSparseToDense:              "SparseToDense",
	PrimitiveCast:                       "Cast",
	PrimitiveQuantDTypeCast:             "QuantDTypeCast",
	PrimitiveL2Norm:                     "L2Norm",
	PrimitiveLocalResponseNormalization: "LocalResponseNormalization",
	PrimitiveAbs:                        "Abs",
	PrimitiveExp:                        "Exp",
	PrimitiveLog:                        "Log",
	PrimitiveSqrt:                       "Sqrt",
	PrimitiveRsqrt:                      "Rsqrt",
	PrimitiveSin:                        "Sin",
	PrimitiveCos:                        "Cos",
	PrimitiveNeg:                        "Neg",
	PrimitiveFloor:                      "Floor",
	PrimitiveCeil:                       "Ceil",
	PrimitiveRound:                      "Round",
	PrimitiveSquare:                     "Square",
	PrimitivePow:                        "Pow",
	PrimitiveMaximum:                    "Maximum",
	PrimitiveMinimum:                    "Minimum",
	PrimitiveSquaredDifference:          "SquaredDifference",
	PrimitiveFloorDiv:                   "FloorDiv",
	PrimitiveFloorMod:                   "FloorMod",
	PrimitiveAddN:                       "AddN",
	PrimitiveEqual:                      "Equal",
	PrimitiveNotEqual:                   "NotEqual",
	PrimitiveLess:                       "Less",
	PrimitiveLessEqual:                  "LessEqual",
	PrimitiveGreater:                    "Greater",
	PrimitiveGreaterEqual:               "GreaterEqual",
	PrimitiveLogicalAnd:                 "LogicalAnd",
	PrimitiveLogicalOr:                  "LogicalOr",
	PrimitiveLogicalNot:                 "LogicalNot",
}

func (t PrimitiveType) String() string {
	if t >= 0 && t < primitiveTypeCount {
		return primitiveTypeNames[t]
	}
	return fmt.Sprintf("PrimitiveType(%d)", int(t))
}

// Valid reports whether t names a concrete operator kind.
func (t PrimitiveType) Valid() bool {
	return t > PrimitiveUnknown && t < primitiveTypeCount
}

// PrimitiveTypes returns every concrete operator kind in declaration order.
func PrimitiveTypes() []PrimitiveType {
	out := make([]PrimitiveType, 0, primitiveTypeCount-1)
	for t := PrimitiveUnknown + 1; t < primitiveTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
