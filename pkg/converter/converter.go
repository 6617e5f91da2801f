// Package converter turns the main subgraph of a TFLite model into an IR
// graph by running the registered operator parsers, and exports IR graphs
// to ZMF.
package converter

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// Policy decides what Convert does after an operator fails.
type Policy int

const (
	// CollectErrors converts every operator and reports all failures.
	CollectErrors Policy = iota
	// FailFast stops at the first failure.
	FailFast
)

func (p Policy) String() string {
	switch p {
	case CollectErrors:
		return "collect"
	case FailFast:
		return "failfast"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the names printed by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "collect", "":
		return CollectErrors, nil
	case "failfast", "fail-fast":
		return FailFast, nil
	default:
		return 0, errors.Errorf("unknown error policy %q (want collect or failfast)", s)
	}
}

// Converter drives the conversion of a model. A Converter is safe for
// concurrent use once configured.
type Converter struct {
	reg             *registry.Registry
	policy          Policy
	workers         int
	skipUnsupported bool
	log             logrus.FieldLogger
	builder         schema.Builder
}

// Option configures a Converter.
type Option func(*Converter)

// WithPolicy sets the failure policy. The default is CollectErrors.
func WithPolicy(p Policy) Option {
	return func(c *Converter) { c.policy = p }
}

// WithWorkers sets how many operators are parsed concurrently. Values
// below 2 parse sequentially.
func WithWorkers(n int) Option {
	return func(c *Converter) { c.workers = n }
}

// WithSkipUnsupported makes operators without a parser a warning instead
// of a failure; their nodes are left out of the graph.
func WithSkipUnsupported(skip bool) Option {
	return func(c *Converter) { c.skipUnsupported = skip }
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithBuilder replaces the primitive builder handed to parsers.
func WithBuilder(b schema.Builder) Option {
	return func(c *Converter) { c.builder = b }
}

// New returns a converter that resolves parsers in reg.
func New(reg *registry.Registry, opts ...Option) *Converter {
	c := &Converter{
		reg:     reg,
		policy:  CollectErrors,
		workers: 1,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// result is the outcome of converting one operator.
type result struct {
	node *schema.Node
	diag *Diagnostic
}

// Convert converts subgraph 0 of model. Every failing operator is logged
// exactly once. With CollectErrors a failed conversion returns a
// *ConversionError; with FailFast it returns the first *Diagnostic.
func (c *Converter) Convert(ctx context.Context, model *tflite.Model) (*schema.Graph, error) {
	if model == nil {
		return nil, errors.New("convert: nil model")
	}
	sg, err := model.Subgraph(0)
	if err != nil {
		return nil, errors.Wrap(err, "convert")
	}

	g := &schema.Graph{
		Name:        sg.Name,
		Description: model.Description,
		Version:     model.Version,
		Tensors:     make([]*schema.Tensor, len(sg.Tensors)),
		Inputs:      indices(sg.Inputs),
		Outputs:     indices(sg.Outputs),
	}
	for i, t := range sg.Tensors {
		g.Tensors[i] = convertTensor(model, t)
	}

	results := make([]result, len(sg.Operators))
	if c.workers > 1 {
		err = c.convertConcurrently(ctx, model, sg, results)
	} else {
		err = c.convertSequentially(ctx, model, sg, results)
	}
	if err != nil {
		return nil, err
	}

	var diags []*Diagnostic
	for _, r := range results {
		switch {
		case r.diag != nil:
			diags = append(diags, r.diag)
		case r.node != nil:
			g.Nodes = append(g.Nodes, r.node)
		}
	}
	if len(diags) > 0 {
		return nil, &ConversionError{Operators: len(sg.Operators), Diagnostics: diags}
	}
	return g, nil
}

func (c *Converter) convertSequentially(ctx context.Context, model *tflite.Model, sg *tflite.SubGraph, results []result) error {
	for i, op := range sg.Operators {
		if err := ctx.Err(); err != nil {
			return err
		}
		results[i] = c.convertOperator(model, sg, i, op)
		if results[i].diag != nil && c.policy == FailFast {
			return results[i].diag
		}
	}
	return nil
}

func (c *Converter) convertConcurrently(ctx context.Context, model *tflite.Model, sg *tflite.SubGraph, results []result) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)
	for i, op := range sg.Operators {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = c.convertOperator(model, sg, i, op)
			if results[i].diag != nil && c.policy == FailFast {
				return results[i].diag
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// convertOperator resolves, looks up and runs the parser for operator i.
func (c *Converter) convertOperator(model *tflite.Model, sg *tflite.SubGraph, i int, op *tflite.Operator) result {
	pctx := &registry.Context{Subgraph: 0, Index: i, Builder: c.builder, Log: c.log}
	if op == nil {
		err := errors.Wrapf(tflite.ErrMalformedModel, "operator %d is missing", i)
		pctx.Logger().WithError(err).Error("invalid operator")
		return result{diag: &Diagnostic{Index: i, Kind: InvalidOpcode, Err: err}}
	}

	code, err := model.OperatorCode(op)
	if err != nil {
		pctx.Logger().WithError(err).Error("invalid operator code")
		return result{diag: &Diagnostic{Index: i, Kind: InvalidOpcode, Err: err}}
	}
	pctx.Code = code
	custom := model.CustomCode(op)

	p, ok := c.reg.Lookup(code)
	if !ok {
		name := code.String()
		if custom != "" {
			name = fmt.Sprintf("%s(%s)", name, custom)
		}
		if c.skipUnsupported {
			pctx.Logger().Warnf("skipping unsupported operator %s", name)
			return result{}
		}
		err := errors.Wrap(registry.ErrUnsupported, name)
		pctx.Logger().WithError(err).Error("operator not supported")
		return result{diag: &Diagnostic{Index: i, Code: code, Custom: custom, Kind: Unsupported, Err: err}}
	}

	prim, err := c.parse(pctx, p, op, model)
	if err == nil && prim == nil {
		err = pctx.Fail(errors.Wrapf(schema.ErrBuildFailed, "%s parser returned no primitive", code))
	}
	if err != nil {
		return result{diag: &Diagnostic{Index: i, Code: code, Custom: custom, Kind: ParseFailed, Err: err}}
	}
	return result{node: &schema.Node{
		Name:      nodeName(sg, i, op, code),
		Primitive: prim,
		Inputs:    indices(op.Inputs),
		Outputs:   indices(op.Outputs),
	}}
}

// parse runs p, turning a panic into a reported parse failure.
func (c *Converter) parse(pctx *registry.Context, p registry.Parser, op *tflite.Operator, model *tflite.Model) (prim *schema.Primitive, err error) {
	defer func() {
		if r := recover(); r != nil {
			prim = nil
			err = pctx.Fail(errors.Errorf("parser panicked: %v", r))
		}
	}()
	return p.Parse(pctx, op, model)
}

// nodeName names a node after its first output tensor, which is how
// TFLite converters label operators.
func nodeName(sg *tflite.SubGraph, i int, op *tflite.Operator, code tflite.BuiltinOperator) string {
	if len(op.Outputs) > 0 {
		if t, err := sg.Tensor(op.Outputs[0]); err == nil && t.Name != "" {
			return t.Name
		}
	}
	return fmt.Sprintf("%s_%d", strings.ToLower(code.String()), i)
}

func convertTensor(model *tflite.Model, t *tflite.Tensor) *schema.Tensor {
	if t == nil {
		return &schema.Tensor{}
	}
	out := &schema.Tensor{
		Name:     t.Name,
		DataType: registry.DataType(t.Type),
		Shape:    make([]int64, len(t.Shape)),
		Variable: t.IsVariable,
	}
	for i, d := range t.Shape {
		out.Shape[i] = int64(d)
	}
	if data := model.Data(t); len(data) > 0 {
		out.Data = append([]byte(nil), data...)
	}
	if q := t.Quantization; q != nil && (len(q.Scale) > 0 || len(q.Min) > 0) {
		out.Quantization = &schema.Quantization{
			Scale:     append([]float32(nil), q.Scale...),
			ZeroPoint: append([]int64(nil), q.ZeroPoint...),
			Min:       append([]float32(nil), q.Min...),
			Max:       append([]float32(nil), q.Max...),
			Axis:      int64(q.QuantizedDimension),
		}
	}
	return out
}

func indices(v []int32) []int {
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}
