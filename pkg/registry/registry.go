// Package registry maps TFLite operator codes to the parsers that turn
// operators of that kind into IR primitives.
package registry

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// Parser converts one TFLite operator into a primitive.
//
// Implementations must be stateless: the same value serves every operator
// of its kind, possibly from several goroutines at once. Parse must not
// modify model, keep references into it, or perform I/O. On failure it
// reports the problem through ctx exactly once and returns a nil primitive.
type Parser interface {
	Parse(ctx *Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(ctx *Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error)

// Parse calls f(ctx, op, model).
func (f ParserFunc) Parse(ctx *Context, op *tflite.Operator, model *tflite.Model) (*schema.Primitive, error) {
	return f(ctx, op, model)
}

// Registry holds at most one parser per operator code. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parsers map[tflite.BuiltinOperator]Parser
	log     logrus.FieldLogger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration warnings.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		parsers: make(map[tflite.BuiltinOperator]Parser),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register installs p under code. A later registration for the same code
// replaces the earlier one and logs a warning. A nil parser is ignored.
func (r *Registry) Register(code tflite.BuiltinOperator, p Parser) {
	if p == nil {
		r.log.WithField("code", code.String()).Warn("ignoring nil parser registration")
		return
	}
	r.mu.Lock()
	_, dup := r.parsers[code]
	r.parsers[code] = p
	r.mu.Unlock()
	if dup {
		r.log.WithField("code", code.String()).Warn("parser registered twice, replacing previous registration")
	}
}

// Lookup returns the parser registered for code. It never panics, and a
// nil registry has no parsers.
func (r *Registry) Lookup(code tflite.BuiltinOperator) (Parser, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[code]
	return p, ok
}

// Populated reports whether any parser has been registered.
func (r *Registry) Populated() bool { return r.Len() > 0 }

// Len returns the number of registered codes.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.parsers)
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []tflite.BuiltinOperator {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	codes := make([]tflite.BuiltinOperator, 0, len(r.parsers))
	for c := range r.parsers {
		codes = append(codes, c)
	}
	r.mu.RUnlock()
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register installs p under code in the process-wide registry.
func Register(code tflite.BuiltinOperator, p Parser) { defaultRegistry.Register(code, p) }

// Lookup consults the process-wide registry.
func Lookup(code tflite.BuiltinOperator) (Parser, bool) { return defaultRegistry.Lookup(code) }
