package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// parseTranspose converts TRANSPOSE. The permutation is input 1; when it
// is not constant the record leaves Perm empty.
func parseTranspose(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	if _, err := requiredInput(ctx, op, model, 1); err != nil {
		return nil, err
	}
	perm, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || int(p) >= len(perm) || seen[p] {
			return nil, ctx.Malformed("%s: %v is not a permutation", ctx.Code, perm)
		}
		seen[p] = true
	}
	return ctx.Build(schema.PrimitiveTranspose, &schema.Transpose{Perm: perm})
}

// parseStridedSlice converts STRIDED_SLICE; begin, end and strides are
// inputs 1 to 3.
func parseStridedSlice(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.StridedSliceOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	attr := &schema.StridedSlice{
		BeginMask:      int64(opts.BeginMask),
		EndMask:        int64(opts.EndMask),
		EllipsisMask:   int64(opts.EllipsisMask),
		NewAxisMask:    int64(opts.NewAxisMask),
		ShrinkAxisMask: int64(opts.ShrinkAxisMask),
	}
	for i, dst := range []*[]int64{&attr.Begin, &attr.End, &attr.Strides} {
		if *dst, err = constInts(ctx, op, model, i+1); err != nil {
			return nil, err
		}
	}
	return ctx.Build(schema.PrimitiveStridedSlice, attr)
}

func parseSlice(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	begin, err := constInts(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	size, err := constInts(ctx, op, model, 2)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSlice, &schema.Slice{Begin: begin, Size: size})
}

func parseGather(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.GatherOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveGather, &schema.Gather{Axis: int64(opts.Axis), BatchDims: int64(opts.BatchDims)})
}

// padParser converts PAD and PADV2 (constant fill) and MIRROR_PAD. The
// paddings are input 1, an [rank, 2] tensor.
func padParser(mirror bool) registry.Parser {
	return registry.ParserFunc(func(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
		attr := &schema.Pad{Mode: schema.PaddingConstant}
		if mirror {
			opts, err := registry.Options[*tflite.MirrorPadOptions](ctx, op)
			if err != nil {
				return nil, err
			}
			switch opts.Mode {
			case tflite.MirrorPadModeREFLECT:
				attr.Mode = schema.PaddingReflect
			case tflite.MirrorPadModeSYMMETRIC:
				attr.Mode = schema.PaddingSymmetric
			default:
				return nil, ctx.Malformed("%s: mirror pad mode %d", ctx.Code, opts.Mode)
			}
		}
		paddings, err := constInts(ctx, op, model, 1)
		if err != nil {
			return nil, err
		}
		if len(paddings)%2 != 0 {
			return nil, ctx.Malformed("%s: %d paddings, want pairs", ctx.Code, len(paddings))
		}
		attr.Paddings = paddings
		return ctx.Build(schema.PrimitivePad, attr)
	})
}
