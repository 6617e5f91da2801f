package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// activationParser converts the standalone activation codes that carry no
// options: RELU, RELU6, RELU_N1_TO_1, LOGISTIC, TANH, HARD_SWISH and ELU.
func activationParser(kind schema.ActivationType) registry.Parser {
	return registry.ParserFunc(func(ctx *registry.Context, _ *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
		return ctx.Build(schema.PrimitiveActivation, &schema.Activation{Type: kind})
	})
}

func parseLeakyRelu(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.LeakyReluOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveActivation, &schema.Activation{
		Type:  schema.ActivationLeakyRelu,
		Alpha: opts.Alpha,
	})
}

// parsePRelu converts PRELU. A constant slope with one element is shared
// across channels; a runtime slope leaves Slope empty.
func parsePRelu(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	alpha, err := requiredInput(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	attr := &schema.PReLU{}
	if model.Data(alpha) != nil {
		slope, err := model.Float32Data(alpha)
		if err != nil {
			return nil, ctx.Malformed("%s slope: %v", ctx.Code, err)
		}
		attr.Slope = slope
		attr.ChannelShared = len(slope) == 1
	}
	return ctx.Build(schema.PrimitivePReLU, attr)
}

func parseSoftmax(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.SoftmaxOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveSoftmax, &schema.Softmax{Axis: -1, Beta: opts.Beta})
}

func parseLogSoftmax(ctx *registry.Context, _ *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	return ctx.Build(schema.PrimitiveLogSoftmax, &schema.LogSoftmax{Axis: -1})
}
