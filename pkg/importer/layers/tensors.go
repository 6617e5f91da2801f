package layers

import (
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// input returns the tensor behind input i of op, or nil when the operator
// has no such input or marks it omitted with -1.
func input(ctx *registry.Context, op *tflite.Operator, model *tflite.Model, i int) (*tflite.Tensor, error) {
	if i >= len(op.Inputs) || op.Inputs[i] < 0 {
		return nil, nil
	}
	g, err := model.Subgraph(ctx.Subgraph)
	if err != nil {
		return nil, ctx.Malformed("%s: %v", ctx.Code, err)
	}
	t, err := g.Tensor(op.Inputs[i])
	if err != nil {
		return nil, ctx.Malformed("%s input %d: %v", ctx.Code, i, err)
	}
	return t, nil
}

// requiredInput is input for operands the operator cannot do without.
func requiredInput(ctx *registry.Context, op *tflite.Operator, model *tflite.Model, i int) (*tflite.Tensor, error) {
	t, err := input(ctx, op, model, i)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ctx.Malformed("%s: missing input %d (operator has %d)", ctx.Code, i, len(op.Inputs))
	}
	return t, nil
}

// output returns the tensor behind output i of op.
func output(ctx *registry.Context, op *tflite.Operator, model *tflite.Model, i int) (*tflite.Tensor, error) {
	if i >= len(op.Outputs) || op.Outputs[i] < 0 {
		return nil, ctx.Malformed("%s: missing output %d", ctx.Code, i)
	}
	g, err := model.Subgraph(ctx.Subgraph)
	if err != nil {
		return nil, ctx.Malformed("%s: %v", ctx.Code, err)
	}
	t, err := g.Tensor(op.Outputs[i])
	if err != nil {
		return nil, ctx.Malformed("%s output %d: %v", ctx.Code, i, err)
	}
	return t, nil
}

// hasInput reports whether input i is present and not omitted.
func hasInput(op *tflite.Operator, i int) bool {
	return i < len(op.Inputs) && op.Inputs[i] >= 0
}

// constInts reads input i as constant integers. A missing or non-constant
// input yields nil without error, since TFLite lets most of these operands
// be computed at runtime.
func constInts(ctx *registry.Context, op *tflite.Operator, model *tflite.Model, i int) ([]int64, error) {
	t, err := input(ctx, op, model, i)
	if err != nil || t == nil || model.Data(t) == nil {
		return nil, err
	}
	v, err := model.IntData(t)
	if err != nil {
		return nil, ctx.Malformed("%s input %d: %v", ctx.Code, i, err)
	}
	return v, nil
}

// constScalar reads input i as a single constant integer.
func constScalar(ctx *registry.Context, op *tflite.Operator, model *tflite.Model, i int) (int64, bool, error) {
	v, err := constInts(ctx, op, model, i)
	if err != nil || v == nil {
		return 0, false, err
	}
	if len(v) != 1 {
		return 0, false, ctx.Malformed("%s input %d: want a scalar, got %d values", ctx.Code, i, len(v))
	}
	return v[0], true, nil
}

// shape4 returns the shape of t, which must have rank 4.
func shape4(ctx *registry.Context, t *tflite.Tensor, role string) ([4]int64, error) {
	var s [4]int64
	if len(t.Shape) != 4 {
		return s, ctx.Malformed("%s: %s tensor %q has rank %d, want 4", ctx.Code, role, t.Name, len(t.Shape))
	}
	for i, d := range t.Shape {
		s[i] = int64(d)
	}
	return s, nil
}

func int64s(v []int32) []int64 {
	if v == nil {
		return nil
	}
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}

// attrless returns a parser for operators whose record has no fields.
func attrless[A any, PA interface {
	*A
	schema.Attr
}]() registry.Parser {
	kind := PA(new(A)).PrimitiveType()
	return registry.ParserFunc(func(ctx *registry.Context, _ *tflite.Operator, _ *tflite.Model) (*schema.Primitive, error) {
		return ctx.Build(kind, PA(new(A)))
	})
}
