package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// fusedOptions is satisfied by the options of ADD, SUB, MUL, DIV and
// L2_NORMALIZATION, which carry nothing but a fused activation.
type fusedOptions interface {
	tflite.Options
	Activation() tflite.ActivationFunctionType
}

// fusedParser builds the record returned by newAttr from options of type O.
func fusedParser[O fusedOptions](kind schema.PrimitiveType, newAttr func(schema.ActivationType) schema.Attr) registry.Parser {
	return registry.ParserFunc(func(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
		opts, err := registry.Options[O](ctx, op)
		if err != nil {
			return nil, err
		}
		return ctx.Build(kind, newAttr(registry.Activation(opts.Activation())))
	})
}

var parseAdd = fusedParser[*tflite.AddOptions](schema.PrimitiveAdd, func(a schema.ActivationType) schema.Attr {
	return &schema.Add{Activation: a}
})

var parseSub = fusedParser[*tflite.SubOptions](schema.PrimitiveSub, func(a schema.ActivationType) schema.Attr {
	return &schema.Sub{Activation: a}
})

var parseMul = fusedParser[*tflite.MulOptions](schema.PrimitiveMul, func(a schema.ActivationType) schema.Attr {
	return &schema.Mul{Activation: a}
})

var parseDiv = fusedParser[*tflite.DivOptions](schema.PrimitiveDiv, func(a schema.ActivationType) schema.Attr {
	return &schema.Div{Activation: a}
})

var parseL2Norm = fusedParser[*tflite.L2NormOptions](schema.PrimitiveL2Norm, func(a schema.ActivationType) schema.Attr {
	return &schema.L2Norm{Activation: a}
})

func parseLocalResponseNormalization(ctx *registry.Context, op *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
	opts, err := registry.Options[*tflite.LocalResponseNormalizationOptions](ctx, op)
	if err != nil {
		return nil, err
	}
	return ctx.Build(schema.PrimitiveLocalResponseNormalization, &schema.LocalResponseNormalization{
		DepthRadius: int64(opts.Radius),
		Bias:        opts.Bias,
		Alpha:       opts.Alpha,
		Beta:        opts.Beta,
	})
}
