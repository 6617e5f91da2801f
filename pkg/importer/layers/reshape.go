package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// parseReshape converts RESHAPE. The target shape comes from the options
// when the converter wrote them, otherwise from a constant shape tensor
// (input 1). A runtime shape leaves Shape empty.
func parseReshape(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	var shape []int64
	switch opts := op.BuiltinOptions.(type) {
	case nil:
	case *tflite.ReshapeOptions:
		shape = int64s(opts.NewShape)
	default:
		return nil, ctx.Malformed("%s: builtin options are %s", ctx.Code, opts.OptionsType())
	}
	if len(shape) == 0 {
		var err error
		if shape, err = constInts(ctx, op, model, 1); err != nil {
			return nil, err
		}
	}
	return ctx.Build(schema.PrimitiveReshape, &schema.Reshape{Shape: shape})
}

func parseSqueeze(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.SqueezeOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSqueeze, &schema.Squeeze{Axes: int64s(opts.SqueezeDims)})
}

func parseExpandDims(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	axis, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveExpandDims, &schema.ExpandDims{Axis: axis})
}

func parseConcatenation(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.ConcatenationOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveConcat, &schema.Concat{
		Axis:       int64(opts.Axis),
		Activation: registry.Activation(opts.FusedActivationFunction),
	})
}

func parsePack(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.PackOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveStack, &schema.Stack{Axis: int64(opts.Axis), N: int64(opts.ValuesCount())})
}

func parseUnpack(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.UnpackOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveUnstack, &schema.Unstack{Axis: int64(opts.Axis), Num: int64(opts.Num())})
}

// parseSplit converts SPLIT, whose inputs are (axis, value).
func parseSplit(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.SplitOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	axis, _, err := constScalar(ctx, op, model, 0)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSplit, &schema.Split{Axis: axis, NumSplits: int64(opts.NumSplits)})
}

// parseSplitV converts SPLIT_V, whose inputs are (value, size_splits, axis).
func parseSplitV(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.SplitVOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	sizes, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	axis, _, err := constScalar(ctx, op, model, 2)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSplit, &schema.Split{
		Axis:       axis,
		NumSplits:  int64(opts.NumSplits),
		SizeSplits: sizes,
	})
}

func parseDepthToSpace(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.DepthToSpaceOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveDepthToSpace, &schema.DepthToSpace{BlockSize: int64(opts.BlockSize)})
}

func parseSpaceToDepth(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.SpaceToDepthOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSpaceToDepth, &schema.SpaceToDepth{BlockSize: int64(opts.BlockSize)})
}

func parseBatchToSpaceND(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	block, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	crops, err := constInts(ctx, op, model, 2)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveBatchToSpaceND, &schema.BatchToSpaceND{BlockShape: block, Crops: crops})
}

func parseSpaceToBatchND(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	block, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	paddings, err := constInts(ctx, op, model, 2)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSpaceToBatchND, &schema.SpaceToBatchND{BlockShape: block, Paddings: paddings})
}

func parseShape(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.ShapeOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveShape, &schema.Shape{OutType: registry.DataType(opts.OutputType)})
}

func parseTile(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	multiples, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveTile, &schema.Tile{Multiples: multiples})
}

func parseReverseV2(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	axes, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveReverseV2, &schema.ReverseV2{Axes: axes})
}

func parseOneHot(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.OneHotOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveOneHot, &schema.OneHot{Axis: int64(opts.Axis)})
}
