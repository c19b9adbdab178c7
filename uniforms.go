package hypview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ValueKind tags the payload of a uniform Value.
type ValueKind int

const (
	FloatValue ValueKind = iota
	IntValue
	BoolValue
	FloatListValue
	Vec2ListValue
)

// Value is one entry of a UniformDict: a scalar, a vector of scalars, or a
// list of 2-vectors, handed to the render engine as a shader uniform.
type Value struct {
	Kind      ValueKind
	Float     float64
	Int       int
	Bool      bool
	FloatList []float64
	Vec2List  []mgl64.Vec2
}

func Float(v float64) Value { return Value{Kind: FloatValue, Float: v} }

func Int(v int) Value { return Value{Kind: IntValue, Int: v} }

func Bool(v bool) Value { return Value{Kind: BoolValue, Bool: v} }

func FloatList(v []float64) Value { return Value{Kind: FloatListValue, FloatList: v} }

func Vec2List(v []mgl64.Vec2) Value { return Value{Kind: Vec2ListValue, Vec2List: v} }

// UniformDict maps uniform names to values. It is shared between
// controllers, but each controller owns only the path(s) it was bound to;
// with the single-threaded frame loop there is never more than one writer
// in flight.
type UniformDict map[string]Value

// Path addresses a numeric slot inside a UniformDict: a scalar key, an
// element of a list-valued key, or one component of a 2-vector element.
// Index and Component use -1 for "absent".
type Path struct {
	Key       string
	Index     int
	Component int
}

func Key(key string) Path {
	return Path{Key: key, Index: -1, Component: -1}
}

func KeyIndex(key string, index int) Path {
	return Path{Key: key, Index: index, Component: -1}
}

func KeyIndexComponent(key string, index, component int) Path {
	return Path{Key: key, Index: index, Component: component}
}

// Get resolves the path to its current numeric value. Bool scalars read as
// 0/1. The path must match the shape of the stored value.
func (p Path) Get(dict UniformDict) (float64, error) {
	v, ok := dict[p.Key]
	if !ok {
		return 0, fmt.Errorf("uniform %q not present", p.Key)
	}

	if p.Index < 0 {
		switch v.Kind {
		case FloatValue:
			return v.Float, nil
		case IntValue:
			return float64(v.Int), nil
		case BoolValue:
			if v.Bool {
				return 1, nil
			}
			return 0, nil
		}
		return 0, fmt.Errorf("uniform %q is not a scalar", p.Key)
	}

	switch v.Kind {
	case FloatListValue:
		if p.Index >= len(v.FloatList) {
			return 0, fmt.Errorf("uniform %q index %d out of range", p.Key, p.Index)
		}
		if p.Component >= 0 {
			return 0, fmt.Errorf("uniform %q holds scalars, not vectors", p.Key)
		}
		return v.FloatList[p.Index], nil
	case Vec2ListValue:
		if p.Index >= len(v.Vec2List) {
			return 0, fmt.Errorf("uniform %q index %d out of range", p.Key, p.Index)
		}
		if p.Component < 0 || p.Component > 1 {
			return 0, fmt.Errorf("uniform %q needs a component in 0..1", p.Key)
		}
		return v.Vec2List[p.Index][p.Component], nil
	}
	return 0, fmt.Errorf("uniform %q is not indexable", p.Key)
}

// Set writes a numeric value through the path, preserving the stored kind.
func (p Path) Set(dict UniformDict, value float64) error {
	v, ok := dict[p.Key]
	if !ok {
		return fmt.Errorf("uniform %q not present", p.Key)
	}

	if p.Index < 0 {
		switch v.Kind {
		case FloatValue:
			v.Float = value
		case IntValue:
			v.Int = int(value)
		case BoolValue:
			v.Bool = value != 0
		default:
			return fmt.Errorf("uniform %q is not a scalar", p.Key)
		}
		dict[p.Key] = v
		return nil
	}

	switch v.Kind {
	case FloatListValue:
		if p.Index >= len(v.FloatList) {
			return fmt.Errorf("uniform %q index %d out of range", p.Key, p.Index)
		}
		if p.Component >= 0 {
			return fmt.Errorf("uniform %q holds scalars, not vectors", p.Key)
		}
		v.FloatList[p.Index] = value
	case Vec2ListValue:
		if p.Index >= len(v.Vec2List) {
			return fmt.Errorf("uniform %q index %d out of range", p.Key, p.Index)
		}
		if p.Component < 0 || p.Component > 1 {
			return fmt.Errorf("uniform %q needs a component in 0..1", p.Key)
		}
		v.Vec2List[p.Index][p.Component] = value
	default:
		return fmt.Errorf("uniform %q is not indexable", p.Key)
	}
	return nil
}
