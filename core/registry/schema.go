package registry

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Node is implemented by every materialized variant. Table names the
// relational table the variant's rows are written to.
type Node interface {
	Table() string
}

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

// FieldKind classifies how a declared field is materialized and persisted.
type FieldKind int

const (
	// KindBool is a boolean column.
	KindBool FieldKind = iota
	// KindInt is an integer column.
	KindInt
	// KindFloat is a floating point column.
	KindFloat
	// KindString is a text column.
	KindString
	// KindScalarList is a sequence of primitives stored as one JSON text column.
	KindScalarList
	// KindNode is a single nested node flattened into its own row.
	KindNode
	// KindNodeList is a collection of nested nodes, one row each.
	KindNodeList
)

// Field describes one declared field of a variant.
type Field struct {
	// Key is the archive field name, also used as the column name.
	Key string
	// Kind classifies the field.
	Kind FieldKind
	// Index is the reflect field index chain into the variant struct.
	Index []int
	// Elem is the element type for list fields and the declared node type
	// for child fields.
	Elem reflect.Type
}

// Schema is the compiled field layout of one variant.
type Schema struct {
	// Tag is the stable archive type tag.
	Tag uint32
	// Table is the destination table name.
	Table string
	// Type is the variant struct type.
	Type reflect.Type
	// Fields are the scalar and scalar-list fields, in declaration order.
	Fields []Field
	// Children are the nested node fields, in declaration order. The
	// flattening engine recurses into exactly these.
	Children []Field
}

// New returns a fresh zero-valued instance of the variant. Every field is
// at its declared default, so a node can always be built from a record
// that carries nothing but its tag.
func (s *Schema) New() Node {
	return reflect.New(s.Type).Interface().(Node)
}

// Columns extracts the scalar column values of a node, keyed by archive
// field name. Scalar lists are JSON-encoded into a single text value.
func (s *Schema) Columns(n Node) map[string]any {
	rv := reflect.ValueOf(n)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	cols := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		fv := rv.FieldByIndex(f.Index)
		switch f.Kind {
		case KindBool:
			cols[f.Key] = fv.Bool()
		case KindInt:
			cols[f.Key] = fv.Int()
		case KindFloat:
			cols[f.Key] = fv.Float()
		case KindString:
			cols[f.Key] = fv.String()
		case KindScalarList:
			if fv.IsNil() {
				cols[f.Key] = "[]"
				continue
			}
			// Encoding a typed slice of primitives cannot fail.
			encoded, _ := json.Marshal(fv.Interface())
			cols[f.Key] = string(encoded)
		}
	}
	return cols
}

// compile builds the Schema for a variant struct type by walking its
// record-tagged fields, including those promoted from embedded structs.
func compile(tag uint32, table string, t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("variant for tag %d must be a struct, got %s", tag, t)
	}
	s := &Schema{Tag: tag, Table: table, Type: t}
	if err := compileStruct(s, t, nil); err != nil {
		return nil, fmt.Errorf("variant %s (tag %d): %w", t, tag, err)
	}
	return s, nil
}

func compileStruct(s *Schema, t reflect.Type, prefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		// Embedded structs contribute their promoted fields.
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := compileStruct(s, field.Type, index); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("record")
		if key == "" || key == "-" {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("field %s: record tag on unexported field", field.Name)
		}

		f, err := classify(key, index, field.Type)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
		if f.Kind == KindNode || f.Kind == KindNodeList {
			s.Children = append(s.Children, f)
		} else {
			s.Fields = append(s.Fields, f)
		}
	}
	return nil
}

func classify(key string, index []int, t reflect.Type) (Field, error) {
	f := Field{Key: key, Index: index}

	switch t.Kind() {
	case reflect.Bool:
		f.Kind = KindBool
		return f, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f.Kind = KindInt
		return f, nil
	case reflect.Float32, reflect.Float64:
		f.Kind = KindFloat
		return f, nil
	case reflect.String:
		f.Kind = KindString
		return f, nil
	case reflect.Interface, reflect.Ptr:
		if !t.Implements(nodeType) {
			return f, fmt.Errorf("type %s does not implement registry.Node", t)
		}
		f.Kind = KindNode
		f.Elem = t
		return f, nil
	case reflect.Slice:
		elem := t.Elem()
		switch elem.Kind() {
		case reflect.Bool, reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Float32, reflect.Float64:
			f.Kind = KindScalarList
			f.Elem = elem
			return f, nil
		case reflect.Interface, reflect.Ptr:
			if !elem.Implements(nodeType) {
				return f, fmt.Errorf("slice element %s does not implement registry.Node", elem)
			}
			f.Kind = KindNodeList
			f.Elem = elem
			return f, nil
		default:
			return f, fmt.Errorf("unsupported slice element type %s", elem)
		}
	default:
		return f, fmt.Errorf("unsupported field type %s", t)
	}
}
