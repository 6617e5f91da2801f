package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// reduceParser converts MEAN, SUM and the REDUCE_* codes. The axes are
// input 1.
func reduceParser(mode schema.ReduceMode) registry.Parser {
	return registry.ParserFunc(func(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
		opts, err := registry.Options[*tflite.ReducerOptions](ctx, op)
		if err != nil {
			return nil, err
		}
		axes, err := constInts(ctx, op, model, 1)
		if err != nil {
			return nil, err
		}
		return ctx.Build(schema.PrimitiveReduce, &schema.Reduce{Mode: mode, KeepDims: opts.KeepDims, Axes: axes})
	})
}

// parseResizeBilinear and parseResizeNearestNeighbor take the output size
// from a constant [new_height, new_width] tensor at input 1 when present.
func parseResizeBilinear(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.ResizeBilinearOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return buildResize(ctx, op, model, &schema.Resize{
		Method:           schema.ResizeBilinear,
		AlignCorners:     opts.AlignCorners,
		HalfPixelCenters: opts.HalfPixelCenters,
	})
}

func parseResizeNearestNeighbor(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.ResizeNearestNeighborOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return buildResize(ctx, op, model, &schema.Resize{
		Method:           schema.ResizeNearestNeighbor,
		AlignCorners:     opts.AlignCorners,
		HalfPixelCenters: opts.HalfPixelCenters,
	})
}

func buildResize(ctx *registry.Context, op *tflite.Operator, model *tflite.Model, attr *schema.Resize) (*schema.Primitive, error) {
	size, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	switch len(size) {
	case 0:
	case 2:
		attr.NewHeight, attr.NewWidth = size[0], size[1]
	default:
		return nil, ctx.Malformed("%s: size has %d values, want 2", ctx.Code, len(size))
	}
	return ctx.Build(schema.PrimitiveResize, attr)
}
