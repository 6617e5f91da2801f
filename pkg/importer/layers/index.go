package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// parseArgMax and parseArgMin read the reduction axis from input 1.
func parseArgMax(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.ArgMaxOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	axis, _, err := constScalar(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveArgMax, &schema.ArgMax{Axis: axis, OutType: registry.DataType(opts.OutputType)})
}

func parseArgMin(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.ArgMinOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	axis, _, err := constScalar(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveArgMin, &schema.ArgMin{Axis: axis, OutType: registry.DataType(opts.OutputType)})
}

func parseTopKV2(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	k, _, err := constScalar(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveTopK, &schema.TopK{K: k})
}

// SparseToDenseParser converts SPARSE_TO_DENSE. Indices, output shape,
// values and the default value are all runtime inputs, and
// validate_indices is a runtime check, so the record is empty.
type SparseToDenseParser struct{}

// Parse builds an empty SparseToDense record.
func (SparseToDenseParser) Parse(ctx *registry.Context, _ *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	return ctx.Build(schema.PrimitiveSparseToDense, &schema.SparseToDense{})
}

// parseCast takes the source and destination types from the operator's
// tensors, which unlike CastOptions are always written.
func parseCast(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	src, dst, err := ioTypes(ctx, op, model)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveCast, &schema.Cast{SrcT: src, DstT: dst})
}

// parseQuantDTypeCast converts QUANTIZE and DEQUANTIZE.
func parseQuantDTypeCast(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	src, dst, err := ioTypes(ctx, op, model)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveQuantDTypeCast, &schema.QuantDTypeCast{SrcT: src, DstT: dst})
}

func ioTypes(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (schema.DataType, schema.DataType, error) {
	in, err := requiredInput(ctx, op, model, 0)
	if err != nil {
		return 0, 0, err
	}
	out, err := output(ctx, op, model, 0)
	if err != nil {
		return 0, 0, err
	}
	return registry.DataType(in.Type), registry.DataType(out.Type), nil
}
