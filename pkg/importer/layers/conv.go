package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// TFLite stores convolution weights as OHWI.
const (
	ohwiOut = iota
	ohwiH
	ohwiW
	ohwiIn
)

// parseConv2D converts CONV_2D. Kernel and channel sizes come from the
// weight tensor (input 1); input 2 is the optional bias.
func parseConv2D(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.Conv2DOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	weight, err := requiredInput(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	w, err := shape4(ctx, weight, "weight")
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveConv2D, &schema.Conv2D{
		KernelH:    w[ohwiH],
		KernelW:    w[ohwiW],
		StrideH:    int64(opts.StrideH),
		StrideW:    int64(opts.StrideW),
		DilationH:  int64(opts.DilationHFactor),
		DilationW:  int64(opts.DilationWFactor),
		PadMode:    registry.PadMode(opts.Padding),
		InChannel:  w[ohwiIn],
		OutChannel: w[ohwiOut],
		Group:      1,
		HasBias:    hasInput(op, 2),
		Activation: registry.Activation(opts.FusedActivationFunction),
	})
}

// parseDepthwiseConv2D converts DEPTHWISE_CONV_2D. The weight tensor is
// [1, H, W, in*multiplier].
func parseDepthwiseConv2D(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.DepthwiseConv2DOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	weight, err := requiredInput(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	w, err := shape4(ctx, weight, "weight")
	if err != nil {
		return nil, err
	}
	mult := int64(opts.DepthMultiplier)
	if mult <= 0 {
		return nil, ctx.Malformed("%s: depth multiplier %d", ctx.Code, mult)
	}
	inChannel := w[ohwiIn] / mult
	if in, err := input(ctx, op, model, 0); err != nil {
		return nil, err
	} else if in != nil && len(in.Shape) == 4 && in.Shape[3] > 0 {
		inChannel = int64(in.Shape[3])
	}
	return ctx.Build(schema.PrimitiveDepthwiseConv2D, &schema.DepthwiseConv2D{
		KernelH:           w[ohwiH],
		KernelW:           w[ohwiW],
		StrideH:           int64(opts.StrideH),
		StrideW:           int64(opts.StrideW),
		DilationH:         int64(opts.DilationHFactor),
		DilationW:         int64(opts.DilationWFactor),
		PadMode:           registry.PadMode(opts.Padding),
		InChannel:         inChannel,
		ChannelMultiplier: mult,
		HasBias:           hasInput(op, 2),
		Activation:        registry.Activation(opts.FusedActivationFunction),
	})
}

// parseTransposeConv converts TRANSPOSE_CONV, whose inputs are
// (output_shape, weights, input[, bias]).
func parseTransposeConv(ctx *registry.Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.TransposeConvOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	weight, err := requiredInput(ctx, op, model, 1)
	if err != nil {
		return nil, err
	}
	w, err := shape4(ctx, weight, "weight")
	if err != nil {
		return nil, err
	}
	outShape, err := constInts(ctx, op, model, 0)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveTransposeConv2D, &schema.TransposeConv2D{
		KernelH:     w[ohwiH],
		KernelW:     w[ohwiW],
		StrideH:     int64(opts.StrideH),
		StrideW:     int64(opts.StrideW),
		PadMode:     registry.PadMode(opts.Padding),
		InChannel:   w[ohwiIn],
		OutChannel:  w[ohwiOut],
		HasBias:     hasInput(op, 3),
		OutputShape: outShape,
	})
}

// parseFullyConnected converts FULLY_CONNECTED; input 2 is the optional
// bias.
func parseFullyConnected(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.FullyConnectedOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveFullyConnected, &schema.FullyConnected{
		Activation:  registry.Activation(opts.FusedActivationFunction),
		KeepNumDims: opts.KeepNumDims,
		HasBias:     hasInput(op, 2),
	})
}

// poolParser converts the three 2-D pooling codes, which share
// Pool2DOptions and differ only in the reduction.
func poolParser(mode schema.PoolMode) registry.Parser {
	return registry.ParserFunc(func(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
		opts, err := registry.Options[*tflite.Pool2DOptions](ctx, op)
		if err != nil {
			return nil, err
		}
		return ctx.Build(schema.PrimitivePooling, &schema.Pooling{
			Mode:       mode,
			PadMode:    registry.PadMode(opts.Padding),
			StrideH:    int64(opts.StrideH),
			StrideW:    int64(opts.StrideW),
			WindowH:    int64(opts.FilterHeight),
			WindowW:    int64(opts.FilterWidth),
			Activation: registry.Activation(opts.FusedActivationFunction),
		})
	})
}
