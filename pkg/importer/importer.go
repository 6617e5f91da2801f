// Package importer loads TFLite model files and converts them to ZMF.
package importer

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/zerfoo/zmf"
	"github.com/zerfoo/ztflite/internal/tflite"
	"github.com/zerfoo/ztflite/pkg/converter"
	"google.golang.org/protobuf/proto"
)

// ProducerVersion is written into the metadata of converted models.
var ProducerVersion = "0.1.0"

// LoadTFLiteModel reads a TFLite model file and returns the decoded model.
func LoadTFLiteModel(path string) (*tflite.Model, error) {
	return tflite.ParseFile(path)
}

// ConvertTFLiteToZmf loads a TFLite model from a file, converts its main
// subgraph with the parsers of Registry and exports the result as ZMF.
func ConvertTFLiteToZmf(ctx context.Context, path string, opts ...converter.Option) (*zmf.Model, error) {
	model, err := LoadTFLiteModel(path)
	if err != nil {
		return nil, err
	}
	g, err := converter.New(Registry(), opts...).Convert(ctx, model)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert %s", path)
	}
	return converter.ToZMF(g, ProducerVersion)
}

// WriteZMF serializes model to path.
func WriteZMF(path string, model *zmf.Model) error {
	data, err := proto.Marshal(model)
	if err != nil {
		return errors.Wrap(err, "failed to marshal ZMF model")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write ZMF model to %s", path)
	}
	return nil
}
