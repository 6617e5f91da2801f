package schema

// Graph is the IR of one converted subgraph. Node and tensor references
// are indices into Tensors; -1 marks an omitted optional input.
type Graph struct {
	Name        string
	Description string
	Version     uint32
	Tensors     []*Tensor
	Nodes       []*Node
	Inputs      []int
	Outputs     []int
}

// Node is one operator of the graph.
type Node struct {
	Name      string
	Primitive *Primitive
	Inputs    []int
	Outputs   []int
}

// Tensor is a value flowing between nodes. Data is set for constants and
// is owned by the graph.
type Tensor struct {
	Name         string
	DataType     DataType
	Shape        []int64
	Data         []byte
	Quantization *Quantization
	Variable     bool
}

// Quantization holds affine quantisation parameters, per tensor or along
// Axis.
type Quantization struct {
	Scale     []float32
	ZeroPoint []int64
	Min       []float32
	Max       []float32
	Axis      int64
}

// IsConstant reports whether the tensor carries constant data.
func (t *Tensor) IsConstant() bool { return len(t.Data) > 0 }

// Tensor returns the tensor at index i, or nil for -1 and out-of-range
// indices.
func (g *Graph) Tensor(i int) *Tensor {
	if i < 0 || i >= len(g.Tensors) {
		return nil
	}
	return g.Tensors[i]
}

// CountByType returns how many nodes of each operator kind the graph holds.
func (g *Graph) CountByType() map[PrimitiveType]int {
	counts := make(map[PrimitiveType]int)
	for _, n := range g.Nodes {
		if n.Primitive != nil {
			counts[n.Primitive.Type()]++
		}
	}
	return counts
}
