package importer

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/internal/tflite/tflitetest"
	"github.com/zerfoo/ztflite/pkg/converter"
	"github.com/zerfoo/ztflite/pkg/importer/layers"
	"google.golang.org/protobuf/proto"
)

func TestLoadTFLiteModel(t *testing.T) {
	dir := t.TempDir()
	path := tflitetest.WriteFile(t, dir, "chain.tflite", tflitetest.Chain())

	m, err := LoadTFLiteModel(path)
	require.NoError(t, err)
	require.Len(t, m.Subgraphs, 1)
	assert.Len(t, m.Subgraphs[0].Operators, 3)

	_, err = LoadTFLiteModel(filepath.Join(dir, "missing.tflite"))
	assert.Error(t, err)

	corrupt := filepath.Join(dir, "corrupt.tflite")
	require.NoError(t, os.WriteFile(corrupt, []byte("not a flatbuffer"), 0o644))
	_, err = LoadTFLiteModel(corrupt)
	assert.True(t, errors.Is(err, tflite.ErrMalformedModel))
}

func TestRegistryIsPopulatedOnce(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Registry()
		}()
	}
	wg.Wait()

	r := Registry()
	assert.True(t, r.Populated())
	assert.Equal(t, len(layers.Parsers()), r.Len())
	_, ok := r.Lookup(tflite.BuiltinOperatorSPARSE_TO_DENSE)
	assert.True(t, ok)
	_, ok = r.Lookup(tflite.BuiltinOperatorCUSTOM)
	assert.False(t, ok)
}

func TestConvertTFLiteToZmf(t *testing.T) {
	dir := t.TempDir()
	path := tflitetest.WriteFile(t, dir, "chain.tflite", tflitetest.Chain())

	m, err := ConvertTFLiteToZmf(context.Background(), path, converter.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, m.GetGraph().GetNodes(), 3)
	assert.Equal(t, "SparseToDense", m.GetGraph().GetNodes()[2].GetOpType())
	assert.Equal(t, ProducerVersion, m.GetMetadata().GetProducerVersion())

	out := filepath.Join(dir, "chain.zmf")
	require.NoError(t, WriteZMF(out, m))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	back := &zmf.Model{}
	require.NoError(t, proto.Unmarshal(data, back))
	assert.True(t, proto.Equal(m, back))
}

func TestConvertTFLiteToZmfReportsFailures(t *testing.T) {
	dir := t.TempDir()
	model := tflitetest.Chain()
	model.OperatorCodes[2].BuiltinCode = tflite.BuiltinOperatorCUSTOM
	model.OperatorCodes[2].CustomCode = "MyOp"
	path := tflitetest.WriteFile(t, dir, "custom.tflite", model)

	_, err := ConvertTFLiteToZmf(context.Background(), path)
	var cerr *converter.ConversionError
	require.True(t, errors.As(err, &cerr), "got %v", err)
	assert.Equal(t, 1, cerr.Count(converter.Unsupported))
	assert.Contains(t, err.Error(), "MyOp")

	m, err := ConvertTFLiteToZmf(context.Background(), path, converter.WithSkipUnsupported(true))
	require.NoError(t, err)
	assert.Len(t, m.GetGraph().GetNodes(), 2)
}
