package zmf_inspector

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"
)

// Load reads and deserializes a ZMF model from a file.
func Load(file string) (*zmf.Model, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	model := &zmf.Model{}
	if err := proto.Unmarshal(data, model); err != nil {
		return nil, err
	}

	return model, nil
}

// Inspect writes a human-readable summary of a ZMF model to w.
func Inspect(w io.Writer, model *zmf.Model) {
	fmt.Fprintf(w, "Producer: %s %s\n", model.GetMetadata().GetProducerName(), model.GetMetadata().GetProducerVersion())
	fmt.Fprintf(w, "Opset version: %d\n", model.GetMetadata().GetOpsetVersion())
	fmt.Fprintf(w, "Graph has %d nodes.\n", len(model.GetGraph().GetNodes()))
	fmt.Fprintf(w, "Graph has %d parameters.\n", len(model.GetGraph().GetParameters()))

	fmt.Fprintln(w, "\nNodes:")
	for _, node := range model.GetGraph().GetNodes() {
		fmt.Fprintf(w, "- Node: %s, OpType: %s\n", node.GetName(), node.GetOpType())
		fmt.Fprintf(w, "  Inputs: %v\n", node.GetInputs())
		fmt.Fprintf(w, "  Outputs: %v\n", node.GetOutputs())
		if attrs := node.GetAttributes(); len(attrs) > 0 {
			names := make([]string, 0, len(attrs))
			for name := range attrs {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(w, "  Attributes:")
			for _, name := range names {
				fmt.Fprintf(w, "    - %s: %s\n", name, attributeString(attrs[name]))
			}
		}
	}

	params := model.GetGraph().GetParameters()
	if len(params) == 0 {
		return
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "\nParameters:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "DType", "Shape", "Bytes"})
	for _, name := range names {
		p := params[name]
		table.Append([]string{name, p.GetDtype().String(), fmt.Sprint(p.GetShape()), fmt.Sprint(len(p.GetData()))})
	}
	table.Render()
}

func attributeString(a *zmf.Attribute) string {
	switch v := a.GetValue().(type) {
	case *zmf.Attribute_I:
		return fmt.Sprint(v.I)
	case *zmf.Attribute_F:
		return fmt.Sprint(v.F)
	case *zmf.Attribute_S:
		return fmt.Sprintf("%q", v.S)
	case *zmf.Attribute_Ints:
		return fmt.Sprint(v.Ints.GetVal())
	case *zmf.Attribute_Floats:
		return fmt.Sprint(v.Floats.GetVal())
	case *zmf.Attribute_Strings:
		return fmt.Sprintf("%q", v.Strings.GetVal())
	default:
		return fmt.Sprint(a.GetValue())
	}
}
