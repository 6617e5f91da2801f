package importer

import (
	"sync"

	"github.com/zerfoo/ztflite/pkg/importer/layers"
	"github.com/zerfoo/ztflite/pkg/registry"
)

var registerOnce sync.Once

// Registry returns the process-wide parser registry, installing every
// parser of package layers the first time it is called.
func Registry() *registry.Registry {
	registerOnce.Do(func() {
		layers.RegisterAll(registry.Default())
	})
	return registry.Default()
}
