package converter

import (
	"fmt"
	"strings"

	"github.com/zerfoo/ztflite/internal/tflite"
)

// DiagnosticKind classifies why an operator could not be converted.
type DiagnosticKind int

const (
	// InvalidOpcode means the operator's opcode index is outside the
	// model's operator-code table.
	InvalidOpcode DiagnosticKind = iota + 1
	// Unsupported means no parser is registered for the operator code.
	Unsupported
	// ParseFailed means the parser rejected the operator or could not
	// build its primitive.
	ParseFailed
)

var diagnosticKindNames = map[DiagnosticKind]string{
	InvalidOpcode: "invalid opcode",
	Unsupported:   "unsupported",
	ParseFailed:   "parse failed",
}

func (k DiagnosticKind) String() string {
	if s, ok := diagnosticKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic describes one operator that failed to convert.
type Diagnostic struct {
	Subgraph int
	Index    int
	Code     tflite.BuiltinOperator
	Custom   string
	Kind     DiagnosticKind
	Err      error
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("subgraph %d operator %d (%s): %s: %v", d.Subgraph, d.Index, d.Code, d.Kind, d.Err)
}

func (d *Diagnostic) Unwrap() error { return d.Err }

// ConversionError lists every failed operator of a conversion, in
// operator order.
type ConversionError struct {
	Operators   int
	Diagnostics []*Diagnostic
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d operators failed to convert", len(e.Diagnostics), e.Operators)
	for _, d := range e.Diagnostics {
		b.WriteString("\n\t")
		b.WriteString(d.Error())
	}
	return b.String()
}

// Unwrap exposes the diagnostics to errors.Is and errors.As.
func (e *ConversionError) Unwrap() []error {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d
	}
	return errs
}

// Count returns how many diagnostics are of kind k.
func (e *ConversionError) Count(k DiagnosticKind) int {
	n := 0
	for _, d := range e.Diagnostics {
		if d.Kind == k {
			n++
		}
	}
	return n
}
