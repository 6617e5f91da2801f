package zmf_inspector

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"
)

func TestLoadAndInspect(t *testing.T) {
	model := &zmf.Model{
		Metadata: &zmf.Metadata{ProducerName: "ztflite", ProducerVersion: "0.1.0", OpsetVersion: 3},
		Graph: &zmf.Graph{
			Nodes: []*zmf.Node{{
				Name:    "flat",
				OpType:  "Reshape",
				Inputs:  []string{"conv/out"},
				Outputs: []string{"flat"},
				Attributes: map[string]*zmf.Attribute{
					"shape": {Value: &zmf.Attribute_Ints{Ints: &zmf.Ints{Val: []int64{1, 32}}}},
					"mode":  {Value: &zmf.Attribute_S{S: "same"}},
				},
			}},
			Parameters: map[string]*zmf.Tensor{
				"conv/weights": {Dtype: zmf.Tensor_FLOAT32, Shape: []int64{2, 3}, Data: make([]byte, 24)},
			},
		},
	}
	data, err := proto.Marshal(model)
	if err != nil {
		t.Fatalf("Failed to marshal model: %v", err)
	}
	path := filepath.Join(t.TempDir(), "model.zmf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write model: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	var buf bytes.Buffer
	Inspect(&buf, loaded)
	output := buf.String()

	for _, want := range []string{
		"Producer: ztflite 0.1.0",
		"Opset version: 3",
		"Graph has 1 nodes.",
		"Graph has 1 parameters.",
		"- Node: flat, OpType: Reshape",
		"    - mode: \"same\"\n    - shape: [1 32]",
		"conv/weights",
		"FLOAT32",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.zmf")); err == nil {
		t.Error("expected an error for a missing file")
	}
	bad := filepath.Join(dir, "bad.zmf")
	if err := os.WriteFile(bad, []byte{0xff, 0xff, 0xff}, 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected an error for an undecodable file")
	}
}
