// Package inspector prints summaries of TFLite and ZMF model files.
package inspector

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/importer"
	"github.com/zerfoo/ztflite/pkg/registry"
	"github.com/zerfoo/ztflite/pkg/zmf_inspector"
)

// InspectTFLite prints the header of a TFLite model and a table of the
// operators of its main subgraph, marking those reg has a parser for.
func InspectTFLite(w io.Writer, inputFile string, reg *registry.Registry) error {
	fmt.Fprintf(w, "Inspecting TFLite model from: %s\n", inputFile)

	model, err := importer.LoadTFLiteModel(inputFile)
	if err != nil {
		return errors.Wrap(err, "failed to load TFLite model")
	}

	fmt.Fprintf(w, "Schema version: %d\n", model.Version)
	if model.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", model.Description)
	}
	fmt.Fprintf(w, "Model has %d subgraphs, %d operator codes and %d buffers.\n",
		len(model.Subgraphs), len(model.OperatorCodes), len(model.Buffers))

	g, err := model.Subgraph(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Main subgraph %q has %d tensors and %d operators.\n", g.Name, len(g.Tensors), len(g.Operators))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Operator", "Inputs", "Outputs", "Options", "Supported"})
	supported := 0
	for i, op := range g.Operators {
		name, ok := operatorName(model, op, reg)
		if ok {
			supported++
		}
		table.Append([]string{
			fmt.Sprint(i),
			name,
			fmt.Sprint(op.Inputs),
			fmt.Sprint(op.Outputs),
			op.BuiltinOptionsType.String(),
			yesNo(ok),
		})
	}
	table.Render()
	fmt.Fprintf(w, "%d of %d operators supported.\n", supported, len(g.Operators))
	return nil
}

func operatorName(model *tflite.Model, op *tflite.Operator, reg *registry.Registry) (string, bool) {
	code, err := model.OperatorCode(op)
	if err != nil {
		return fmt.Sprintf("<opcode %d>", op.OpcodeIndex), false
	}
	name := code.String()
	if custom := model.CustomCode(op); custom != "" {
		name = fmt.Sprintf("%s(%s)", name, custom)
	}
	_, ok := reg.Lookup(code)
	return name, ok
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// InspectZMF inspects a ZMF model and prints its summary.
func InspectZMF(w io.Writer, inputFile string) error {
	fmt.Fprintf(w, "Inspecting ZMF model from: %s\n", inputFile)

	model, err := zmf_inspector.Load(inputFile)
	if err != nil {
		return errors.Wrap(err, "failed to load ZMF model")
	}

	zmf_inspector.Inspect(w, model)

	return nil
}

// ListOperators prints every operator code reg has a parser for.
func ListOperators(w io.Writer, reg *registry.Registry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Operator"})
	for _, code := range reg.Codes() {
		table.Append([]string{fmt.Sprint(int(code)), code.String()})
	}
	table.Render()
	fmt.Fprintf(w, "%d operators supported.\n", reg.Len())
}
