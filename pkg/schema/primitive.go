package schema

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrBuildFailed reports that a primitive could not be constructed.
	// Builders that run out of a resource wrap it.
	ErrBuildFailed = errors.New("failed to build primitive")

	// ErrNilAttr is returned when a primitive is built without a record.
	ErrNilAttr = errors.New("nil attribute record")

	// ErrUnknownPrimitiveType is returned for a discriminant outside the
	// declared operator kinds.
	ErrUnknownPrimitiveType = errors.New("unknown primitive type")

	// ErrTypeMismatch is returned when a record does not belong to the
	// requested operator kind.
	ErrTypeMismatch = errors.New("attribute record does not match primitive type")
)

// Primitive is an IR node payload: an operator kind and the attribute
// record that configures it. The two always agree. A Primitive and its
// record must not be modified after construction.
type Primitive struct {
	typ  PrimitiveType
	attr Attr
}

// NewPrimitive wraps attr in a primitive tagged t. It is the only way to
// obtain a *Primitive, and it rejects records whose kind differs from t.
func NewPrimitive(t PrimitiveType, attr Attr) (*Primitive, error) {
	if attr == nil {
		return nil, errors.Wrapf(ErrNilAttr, "building %s", t)
	}
	if v := reflect.ValueOf(attr); v.Kind() == reflect.Ptr && v.IsNil() {
		return nil, errors.Wrapf(ErrNilAttr, "building %s", t)
	}
	if !t.Valid() {
		return nil, errors.Wrapf(ErrUnknownPrimitiveType, "%s", t)
	}
	if got := attr.PrimitiveType(); got != t {
		return nil, errors.Wrapf(ErrTypeMismatch, "%T is a %s record, not %s", attr, got, t)
	}
	return &Primitive{typ: t, attr: attr}, nil
}

// Type returns the operator kind.
func (p *Primitive) Type() PrimitiveType { return p.typ }

// Value returns the attribute record. Its dynamic type always matches Type.
func (p *Primitive) Value() Attr { return p.attr }

// Builder constructs primitives on behalf of operator parsers.
type Builder interface {
	Build(t PrimitiveType, attr Attr) (*Primitive, error)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(t PrimitiveType, attr Attr) (*Primitive, error)

// Build calls f(t, attr).
func (f BuilderFunc) Build(t PrimitiveType, attr Attr) (*Primitive, error) {
	return f(t, attr)
}

// DefaultBuilder builds primitives with NewPrimitive.
var DefaultBuilder Builder = BuilderFunc(NewPrimitive)
