// Package layers holds one parser per supported TFLite builtin operator.
// Nothing is registered implicitly; RegisterAll installs the parsers into
// a registry during startup.
package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// Parsers returns a fresh table of every parser this package provides,
// keyed by the operator code it handles.
func Parsers() map[tflite.BuiltinOperator]registry.Parser {
	return map[tflite.BuiltinOperator]registry.Parser{
		tflite.BuiltinOperatorCONV_2D:           registry.ParserFunc(parseConv2D),
		tflite.BuiltinOperatorDEPTHWISE_CONV_2D: registry.ParserFunc(parseDepthwiseConv2D),
		tflite.BuiltinOperatorTRANSPOSE_CONV:    registry.ParserFunc(parseTransposeConv),
		tflite.BuiltinOperatorFULLY_CONNECTED:   registry.ParserFunc(parseFullyConnected),

		tflite.BuiltinOperatorAVERAGE_POOL_2D: poolParser(schema.PoolAverage),
		tflite.BuiltinOperatorMAX_POOL_2D:     poolParser(schema.PoolMax),
		tflite.BuiltinOperatorL2_POOL_2D:      poolParser(schema.PoolL2),

		tflite.BuiltinOperatorRELU:         activationParser(schema.ActivationRelu),
		tflite.BuiltinOperatorRELU6:        activationParser(schema.ActivationRelu6),
		tflite.BuiltinOperatorRELU_N1_TO_1: activationParser(schema.ActivationReluN1To1),
		tflite.BuiltinOperatorLOGISTIC:     activationParser(schema.ActivationSigmoid),
		tflite.BuiltinOperatorTANH:         activationParser(schema.ActivationTanh),
		tflite.BuiltinOperatorHARD_SWISH:   activationParser(schema.ActivationHardSwish),
		tflite.BuiltinOperatorELU:          activationParser(schema.ActivationElu),
		tflite.BuiltinOperatorLEAKY_RELU:   registry.ParserFunc(parseLeakyRelu),
		tflite.BuiltinOperatorPRELU:        registry.ParserFunc(parsePRelu),

		tflite.BuiltinOperatorADD: parseAdd,
		tflite.BuiltinOperatorSUB: parseSub,
		tflite.BuiltinOperatorMUL: parseMul,
		tflite.BuiltinOperatorDIV: parseDiv,

		tflite.BuiltinOperatorSOFTMAX:     registry.ParserFunc(parseSoftmax),
		tflite.BuiltinOperatorLOG_SOFTMAX: registry.ParserFunc(parseLogSoftmax),

		tflite.BuiltinOperatorCONCATENATION:     registry.ParserFunc(parseConcatenation),
		tflite.BuiltinOperatorRESHAPE:           registry.ParserFunc(parseReshape),
		tflite.BuiltinOperatorTRANSPOSE:         registry.ParserFunc(parseTranspose),
		tflite.BuiltinOperatorSQUEEZE:           registry.ParserFunc(parseSqueeze),
		tflite.BuiltinOperatorEXPAND_DIMS:       registry.ParserFunc(parseExpandDims),
		tflite.BuiltinOperatorSTRIDED_SLICE:     registry.ParserFunc(parseStridedSlice),
		tflite.BuiltinOperatorSLICE:             registry.ParserFunc(parseSlice),
		tflite.BuiltinOperatorGATHER:            registry.ParserFunc(parseGather),
		tflite.BuiltinOperatorGATHER_ND:         attrless[schema.GatherNd](),
		tflite.BuiltinOperatorPACK:              registry.ParserFunc(parsePack),
		tflite.BuiltinOperatorUNPACK:            registry.ParserFunc(parseUnpack),
		tflite.BuiltinOperatorSPLIT:             registry.ParserFunc(parseSplit),
		tflite.BuiltinOperatorSPLIT_V:           registry.ParserFunc(parseSplitV),
		tflite.BuiltinOperatorTILE:              registry.ParserFunc(parseTile),
		tflite.BuiltinOperatorDEPTH_TO_SPACE:    registry.ParserFunc(parseDepthToSpace),
		tflite.BuiltinOperatorSPACE_TO_DEPTH:    registry.ParserFunc(parseSpaceToDepth),
		tflite.BuiltinOperatorBATCH_TO_SPACE_ND: registry.ParserFunc(parseBatchToSpaceND),
		tflite.BuiltinOperatorSPACE_TO_BATCH_ND: registry.ParserFunc(parseSpaceToBatchND),
		tflite.BuiltinOperatorSHAPE:             registry.ParserFunc(parseShape),
		tflite.BuiltinOperatorRANK:              attrless[schema.Rank](),
		tflite.BuiltinOperatorFILL:              attrless[schema.Fill](),
		tflite.BuiltinOperatorZEROS_LIKE:        attrless[schema.ZerosLike](),
		tflite.BuiltinOperatorRANGE:             attrless[schema.Range](),
		tflite.BuiltinOperatorREVERSE_V2:        registry.ParserFunc(parseReverseV2),
		tflite.BuiltinOperatorONE_HOT:           registry.ParserFunc(parseOneHot),

		tflite.BuiltinOperatorPAD:        padParser(false),
		tflite.BuiltinOperatorPADV2:      padParser(false),
		tflite.BuiltinOperatorMIRROR_PAD: padParser(true),

		tflite.BuiltinOperatorMEAN:        reduceParser(schema.ReduceMean),
		tflite.BuiltinOperatorSUM:         reduceParser(schema.ReduceSum),
		tflite.BuiltinOperatorREDUCE_MAX:  reduceParser(schema.ReduceMax),
		tflite.BuiltinOperatorREDUCE_MIN:  reduceParser(schema.ReduceMin),
		tflite.BuiltinOperatorREDUCE_PROD: reduceParser(schema.ReduceProd),
		tflite.BuiltinOperatorREDUCE_ANY:  reduceParser(schema.ReduceAny),

		tflite.BuiltinOperatorRESIZE_BILINEAR:         registry.ParserFunc(parseResizeBilinear),
		tflite.BuiltinOperatorRESIZE_NEAREST_NEIGHBOR: registry.ParserFunc(parseResizeNearestNeighbor),

		tflite.BuiltinOperatorARG_MAX:         registry.ParserFunc(parseArgMax),
		tflite.BuiltinOperatorARG_MIN:         registry.ParserFunc(parseArgMin),
		tflite.BuiltinOperatorTOPK_V2:         registry.ParserFunc(parseTopKV2),
		tflite.BuiltinOperatorWHERE:           attrless[schema.Where](),
		tflite.BuiltinOperatorSELECT:          attrless[schema.Select](),
		tflite.BuiltinOperatorSPARSE_TO_DENSE: SparseToDenseParser{},

		tflite.BuiltinOperatorCAST:       registry.ParserFunc(parseCast),
		tflite.BuiltinOperatorQUANTIZE:   registry.ParserFunc(parseQuantDTypeCast),
		tflite.BuiltinOperatorDEQUANTIZE: registry.ParserFunc(parseQuantDTypeCast),

		tflite.BuiltinOperatorL2_NORMALIZATION:             parseL2Norm,
		tflite.BuiltinOperatorLOCAL_RESPONSE_NORMALIZATION: registry.ParserFunc(parseLocalResponseNormalization),

		tflite.BuiltinOperatorABS:                attrless[schema.Abs](),
		tflite.BuiltinOperatorEXP:                attrless[schema.Exp](),
		tflite.BuiltinOperatorLOG:                attrless[schema.Log](),
		tflite.BuiltinOperatorSQRT:               attrless[schema.Sqrt](),
		tflite.BuiltinOperatorRSQRT:              attrless[schema.Rsqrt](),
		tflite.BuiltinOperatorSIN:                attrless[schema.Sin](),
		tflite.BuiltinOperatorCOS:                attrless[schema.Cos](),
		tflite.BuiltinOperatorNEG:                attrless[schema.Neg](),
		tflite.BuiltinOperatorFLOOR:              attrless[schema.Floor](),
		tflite.BuiltinOperatorCEIL:               attrless[schema.Ceil](),
		tflite.BuiltinOperatorROUND:              attrless[schema.Round](),
		tflite.BuiltinOperatorSQUARE:             attrless[schema.Square](),
		tflite.BuiltinOperatorPOW:                attrless[schema.Pow](),
		tflite.BuiltinOperatorMAXIMUM:            attrless[schema.Maximum](),
		tflite.BuiltinOperatorMINIMUM:            attrless[schema.Minimum](),
		tflite.BuiltinOperatorSQUARED_DIFFERENCE: attrless[schema.SquaredDifference](),
		tflite.BuiltinOperatorFLOOR_DIV:          attrless[schema.FloorDiv](),
		tflite.BuiltinOperatorFLOOR_MOD:          attrless[schema.FloorMod](),
		tflite.BuiltinOperatorADD_N:              attrless[schema.AddN](),

		tflite.BuiltinOperatorEQUAL:         attrless[schema.Equal](),
		tflite.BuiltinOperatorNOT_EQUAL:     attrless[schema.NotEqual](),
		tflite.BuiltinOperatorLESS:          attrless[schema.Less](),
		tflite.BuiltinOperatorLESS_EQUAL:    attrless[schema.LessEqual](),
		tflite.BuiltinOperatorGREATER:       attrless[schema.Greater](),
		tflite.BuiltinOperatorGREATER_EQUAL: attrless[schema.GreaterEqual](),
		tflite.BuiltinOperatorLOGICAL_AND:   attrless[schema.LogicalAnd](),
		tflite.BuiltinOperatorLOGICAL_OR:    attrless[schema.LogicalOr](),
		tflite.BuiltinOperatorLOGICAL_NOT:   attrless[schema.LogicalNot](),
	}
}

// RegisterAll installs every parser of this package into r.
func RegisterAll(r *registry.Registry) {
	for code, p := range Parsers() {
		r.Register(code, p)
	}
}
