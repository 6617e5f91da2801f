package inspector

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zerfoo/zmf"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/internal/tflite/tflitetest"
	"github.com/zerfoo/ztflite/pkg/importer"
	"github.com/zerfoo/ztflite/pkg/importer/layers"
	"github.com/zerfoo/ztflite/pkg/registry"
	"google.golang.org/protobuf/proto"
)

// Helper function to create a dummy ZMF model file
func createDummyZmfModel(t *testing.T, dir, filename string) string {
	zmfModel := &zmf.Model{
		Metadata: &zmf.Metadata{
			ProducerName:    "test-producer",
			ProducerVersion: "1.0",
			OpsetVersion:    1,
		},
		Graph: &zmf.Graph{
			Nodes: []*zmf.Node{
				{Name: "zmf_node1", OpType: "Add"},
			},
			Parameters: make(map[string]*zmf.Tensor),
		},
	}
	data, err := proto.Marshal(zmfModel)
	if err != nil {
		t.Fatalf("Failed to marshal dummy ZMF model: %v", err)
	}
	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		t.Fatalf("Failed to write dummy ZMF model: %v", err)
	}
	return filePath
}

func TestInspectTFLite(t *testing.T) {
	model := tflitetest.Chain()
	model.OperatorCodes[2].BuiltinCode = tflite.BuiltinOperatorCUSTOM
	model.OperatorCodes[2].CustomCode = "Densify"
	tfliteFile := tflitetest.WriteFile(t, t.TempDir(), "test.tflite", model)

	var buf bytes.Buffer
	if err := InspectTFLite(&buf, tfliteFile, importer.Registry()); err != nil {
		t.Fatalf("InspectTFLite returned an error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Inspecting TFLite model from:",
		"Schema version: 3",
		"Description: tflitetest",
		"Model has 1 subgraphs, 3 operator codes and 4 buffers.",
		"Main subgraph \"main\" has 10 tensors and 3 operators.",
		"CONV_2D",
		"Conv2DOptions",
		"CUSTOM(Densify)",
		"2 of 3 operators supported.",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestInspectTFLiteErrors(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := InspectTFLite(&buf, filepath.Join(dir, "missing.tflite"), registry.New()); err == nil {
		t.Error("expected an error for a missing file")
	}

	empty := tflitetest.WriteFile(t, dir, "empty.tflite", &tflite.Model{Version: tflite.SchemaVersion})
	if err := InspectTFLite(&buf, empty, registry.New()); err == nil {
		t.Error("expected an error for a model without subgraphs")
	}
}

func TestInspectZMF(t *testing.T) {
	zmfFile := createDummyZmfModel(t, t.TempDir(), "test.zmf")

	var buf bytes.Buffer
	if err := InspectZMF(&buf, zmfFile); err != nil {
		t.Errorf("InspectZMF returned an error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Inspecting ZMF model from:") {
		t.Errorf("Output missing expected string: %s", output)
	}
	if !strings.Contains(output, "Producer: test-producer 1.0") {
		t.Errorf("Output missing expected producer info: %s", output)
	}
	if !strings.Contains(output, "Graph has 1 nodes.") {
		t.Errorf("Output missing expected node count: %s", output)
	}
	if !strings.Contains(output, "- Node: zmf_node1, OpType: Add") {
		t.Errorf("Output missing expected node details: %s", output)
	}
}

func TestListOperators(t *testing.T) {
	reg := registry.New()
	layers.RegisterAll(reg)

	var buf bytes.Buffer
	ListOperators(&buf, reg)
	output := buf.String()
	if !strings.Contains(output, "SPARSE_TO_DENSE") {
		t.Errorf("Output missing SPARSE_TO_DENSE:\n%s", output)
	}
	if strings.Index(output, "ADD") > strings.Index(output, "CONV_2D") {
		t.Errorf("Operators not listed in code order:\n%s", output)
	}
	if !strings.Contains(output, "operators supported.") {
		t.Errorf("Output missing summary:\n%s", output)
	}
}
