package converter

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/zerfoo/zmf"
	"github.com/zerfoo/ztflite/pkg/schema"
)

// ProducerName is recorded in the metadata of exported ZMF models.
const ProducerName = "ztflite"

// ToZMF exports g as a ZMF model. Node attributes are taken from the
// `attr` tags of each primitive's record. Constant tensors whose element
// type ZMF can hold become graph parameters; other constants are only
// reachable through the attributes parsers copied out of them.
func ToZMF(g *schema.Graph, version string) (*zmf.Model, error) {
	if g == nil {
		return nil, errors.New("model graph is nil")
	}
	out := &zmf.Model{
		Graph: &zmf.Graph{
			Nodes:      make([]*zmf.Node, 0, len(g.Nodes)),
			Parameters: make(map[string]*zmf.Tensor),
			Inputs:     valueInfos(g, g.Inputs),
			Outputs:    valueInfos(g, g.Outputs),
		},
		Metadata: &zmf.Metadata{
			ProducerName:    ProducerName,
			ProducerVersion: version,
			OpsetVersion:    int64(g.Version),
		},
	}

	for i, n := range g.Nodes {
		if n == nil || n.Primitive == nil {
			return nil, errors.Errorf("node %d has no primitive", i)
		}
		attrs, err := attributes(n.Primitive.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to convert attributes of node '%s'", n.Name)
		}
		out.Graph.Nodes = append(out.Graph.Nodes, &zmf.Node{
			Name:       n.Name,
			OpType:     n.Primitive.Type().String(),
			Inputs:     tensorNames(g, n.Inputs),
			Outputs:    tensorNames(g, n.Outputs),
			Attributes: attrs,
		})
	}

	for i, t := range g.Tensors {
		if t == nil || !t.IsConstant() {
			continue
		}
		param := &zmf.Tensor{
			Shape: append([]int64(nil), t.Shape...),
			Data:  t.Data,
		}
		if !setDType(param, t.DataType) {
			continue
		}
		out.Graph.Parameters[tensorName(g, i)] = param
	}
	return out, nil
}

// setDType sets the ZMF element type of p, reporting false for types ZMF
// cannot hold.
func setDType(p *zmf.Tensor, t schema.DataType) bool {
	switch t {
	case schema.DataTypeFloat32:
		p.Dtype = zmf.Tensor_FLOAT32
	case schema.DataTypeFloat16:
		p.Dtype = zmf.Tensor_FLOAT16
	case schema.DataTypeFloat64:
		p.Dtype = zmf.Tensor_FLOAT64
	case schema.DataTypeInt32:
		p.Dtype = zmf.Tensor_INT32
	case schema.DataTypeInt64:
		p.Dtype = zmf.Tensor_INT64
	default:
		return false
	}
	return true
}

// attributes reflects the tagged fields of a record into ZMF attributes.
// Nil slices are omitted.
func attributes(attr schema.Attr) (map[string]*zmf.Attribute, error) {
	out := make(map[string]*zmf.Attribute)
	v := reflect.ValueOf(attr)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, errors.New("nil record")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("record %T is not a struct", attr)
	}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := f.Tag.Get("attr")
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		a, err := attribute(v.Field(i))
		if err != nil {
			return nil, errors.Wrapf(err, "attribute '%s'", name)
		}
		if a != nil {
			out[name] = a
		}
	}
	return out, nil
}

func attribute(v reflect.Value) (*zmf.Attribute, error) {
	if v.Kind() != reflect.Slice {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return &zmf.Attribute{Value: &zmf.Attribute_S{S: s.String()}}, nil
		}
	}
	switch v.Kind() {
	case reflect.Bool:
		var i int64
		if v.Bool() {
			i = 1
		}
		return &zmf.Attribute{Value: &zmf.Attribute_I{I: i}}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &zmf.Attribute{Value: &zmf.Attribute_I{I: v.Int()}}, nil
	case reflect.Float32, reflect.Float64:
		return &zmf.Attribute{Value: &zmf.Attribute_F{F: float32(v.Float())}}, nil
	case reflect.String:
		return &zmf.Attribute{Value: &zmf.Attribute_S{S: v.String()}}, nil
	case reflect.Slice:
		if v.IsNil() {
			return nil, nil
		}
		switch v.Type().Elem().Kind() {
		case reflect.Int64:
			ints := make([]int64, v.Len())
			for i := range ints {
				ints[i] = v.Index(i).Int()
			}
			return &zmf.Attribute{Value: &zmf.Attribute_Ints{Ints: &zmf.Ints{Val: ints}}}, nil
		case reflect.Float32:
			floats := make([]float32, v.Len())
			for i := range floats {
				floats[i] = float32(v.Index(i).Float())
			}
			return &zmf.Attribute{Value: &zmf.Attribute_Floats{Floats: &zmf.Floats{Val: floats}}}, nil
		case reflect.String:
			strs := make([]string, v.Len())
			for i := range strs {
				strs[i] = v.Index(i).String()
			}
			return &zmf.Attribute{Value: &zmf.Attribute_Strings{Strings: &zmf.Strings{Val: strs}}}, nil
		}
	}
	return nil, errors.Errorf("unsupported field type %s", v.Type())
}

// tensorName returns the ZMF name of tensor i. Unnamed tensors get a
// positional name.
func tensorName(g *schema.Graph, i int) string {
	if t := g.Tensor(i); t != nil && t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("tensor_%d", i)
}

// tensorNames drops omitted optional operands (-1).
func tensorNames(g *schema.Graph, idx []int) []string {
	names := make([]string, 0, len(idx))
	for _, i := range idx {
		if i < 0 {
			continue
		}
		names = append(names, tensorName(g, i))
	}
	return names
}

func valueInfos(g *schema.Graph, idx []int) []*zmf.ValueInfo {
	infos := make([]*zmf.ValueInfo, 0, len(idx))
	for _, i := range idx {
		info := &zmf.ValueInfo{Name: tensorName(g, i)}
		if t := g.Tensor(i); t != nil {
			info.Shape = append([]int64(nil), t.Shape...)
		}
		infos = append(infos, info)
	}
	return infos
}
