package registry

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/schema"
)

var (
	// ErrMalformedOptions is returned when an operator's options or
	// constant inputs do not have the shape its parser expects.
	ErrMalformedOptions = errors.New("malformed operator data")

	// ErrUnsupported is returned for operator codes without a parser.
	ErrUnsupported = errors.New("unsupported operator")
)

// Context carries the position of the operator being parsed and the
// services a parser may use. A Context is created per operator.
type Context struct {
	Subgraph int
	Index    int
	Code     tflite.BuiltinOperator

	// Builder constructs primitives. Nil means schema.DefaultBuilder.
	Builder schema.Builder

	// Log receives the parser's diagnostic. Nil means the logrus standard
	// logger.
	Log logrus.FieldLogger
}

// Logger returns the context logger tagged with the operator position.
func (c *Context) Logger() logrus.FieldLogger {
	l := c.Log
	if l == nil {
		l = logrus.StandardLogger()
	}
	return l.WithFields(logrus.Fields{
		"subgraph": c.Subgraph,
		"operator": c.Index,
		"code":     c.Code.String(),
	})
}

// Build wraps attr into a primitive. A failure is reported once and
// returned unchanged apart from positional context.
func (c *Context) Build(t schema.PrimitiveType, attr schema.Attr) (*schema.Primitive, error) {
	b := c.Builder
	if b == nil {
		b = schema.DefaultBuilder
	}
	p, err := b.Build(t, attr)
	if err != nil {
		return nil, c.Fail(err)
	}
	if p == nil {
		return nil, c.Fail(errors.Wrapf(schema.ErrBuildFailed, "builder returned no %s primitive", t))
	}
	return p, nil
}

// Malformed reports malformed operator data and returns an error wrapping
// ErrMalformedOptions.
func (c *Context) Malformed(format string, args ...any) error {
	return c.Fail(errors.Wrapf(ErrMalformedOptions, format, args...))
}

// Fail logs err as the operator's single diagnostic and returns it.
func (c *Context) Fail(err error) error {
	c.Logger().WithError(err).Error("operator parse failed")
	return err
}

// Options returns op's builtin options as T, or a malformed-data failure
// when they are missing or of another type.
func Options[T tflite.Options](c *Context, op *tflite.Operator) (T, error) {
	opts, ok := op.BuiltinOptions.(T)
	if !ok {
		var zero T
		if op.BuiltinOptions == nil {
			return zero, c.Malformed("%s: missing builtin options (declared %s)", c.Code, op.BuiltinOptionsType)
		}
		return zero, c.Malformed("%s: builtin options are %s, want %T",
			c.Code, op.BuiltinOptions.OptionsType(), zero)
	}
	return opts, nil
}
