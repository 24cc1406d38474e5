package materialize

import (
	"fmt"
	"reflect"

	"spell-miner/core/record"
	"spell-miner/core/registry"
)

// Materializer builds typed nodes from generic records using the schemas
// compiled into the registry. It holds no per-record state and is safe to
// share across workers.
type Materializer struct {
	reg *registry.Registry
}

// New creates a materializer bound to a registry.
func New(reg *registry.Registry) *Materializer {
	return &Materializer{reg: reg}
}

// Materialize resolves the record's type tag and recursively constructs
// the fully typed node tree.
func (m *Materializer) Materialize(rec record.Object) (registry.Node, error) {
	return m.materialize(rec, "")
}

func (m *Materializer) materialize(rec record.Object, path string) (registry.Node, error) {
	tag, ok := rec.TypeTag()
	if !ok {
		return nil, &MaterializationError{Path: path, Err: fmt.Errorf("record carries no type tag")}
	}
	schema, ok := m.reg.Resolve(tag)
	if !ok {
		return nil, &UnresolvedTagError{Tag: tag, Path: path}
	}

	node := schema.New()
	rv := reflect.ValueOf(node).Elem()

	for _, f := range schema.Fields {
		raw, present := rec[f.Key]
		if !present || raw == nil {
			continue // declared default
		}
		if err := setScalar(rv.FieldByIndex(f.Index), f, raw); err != nil {
			return nil, &MaterializationError{Tag: tag, Path: childPath(path, f.Key), Err: err}
		}
	}

	for _, f := range schema.Children {
		raw, present := rec[f.Key]
		if !present || raw == nil {
			continue
		}
		fieldPath := childPath(path, f.Key)
		fv := rv.FieldByIndex(f.Index)

		switch f.Kind {
		case registry.KindNode:
			child, err := m.materializeChild(raw, f, fieldPath, tag)
			if err != nil {
				return nil, err
			}
			fv.Set(child)
		case registry.KindNodeList:
			seq, ok := raw.([]any)
			if !ok {
				return nil, &MaterializationError{Tag: tag, Path: fieldPath,
					Err: fmt.Errorf("expected a sequence of tagged records, got %T", raw)}
			}
			list := reflect.MakeSlice(fv.Type(), 0, len(seq))
			for i, item := range seq {
				if item == nil {
					continue
				}
				child, err := m.materializeChild(item, f, fmt.Sprintf("%s.%d", fieldPath, i), tag)
				if err != nil {
					return nil, err
				}
				list = reflect.Append(list, child)
			}
			fv.Set(list)
		}
	}

	return node, nil
}

// materializeChild resolves one nested tagged value and checks that the
// resolved variant satisfies the declared field type. A child of the wrong
// family (an effect where a requirement is declared, for example) is a
// materialization failure, not a silent coercion.
func (m *Materializer) materializeChild(raw any, f registry.Field, path string, parentTag uint32) (reflect.Value, error) {
	obj, ok := record.AsObject(raw)
	if !ok {
		return reflect.Value{}, &MaterializationError{Tag: parentTag, Path: path,
			Err: fmt.Errorf("expected a tagged record, got %T", raw)}
	}
	child, err := m.materialize(obj, path)
	if err != nil {
		return reflect.Value{}, err
	}
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(f.Elem) {
		return reflect.Value{}, &MaterializationError{Tag: parentTag, Path: path,
			Err: fmt.Errorf("variant %T is not assignable to declared field type %s", child, f.Elem)}
	}
	return cv, nil
}

// setScalar coerces a raw record value into a declared scalar field. JSON
// decoding yields float64 for every number, so numeric fields accept any
// numeric shape.
func setScalar(fv reflect.Value, f registry.Field, raw any) error {
	switch f.Kind {
	case registry.KindBool:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", raw)
		}
		fv.SetBool(b)
	case registry.KindInt:
		n, ok := asInt64(raw)
		if !ok {
			return fmt.Errorf("expected integer, got %T", raw)
		}
		fv.SetInt(n)
	case registry.KindFloat:
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("expected number, got %T", raw)
		}
		fv.SetFloat(n)
	case registry.KindString:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", raw)
		}
		fv.SetString(s)
	case registry.KindScalarList:
		seq, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("expected sequence, got %T", raw)
		}
		list := reflect.MakeSlice(fv.Type(), 0, len(seq))
		for i, item := range seq {
			ev := reflect.New(f.Elem).Elem()
			if err := setScalarElem(ev, item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			list = reflect.Append(list, ev)
		}
		fv.Set(list)
	}
	return nil
}

func setScalarElem(ev reflect.Value, raw any) error {
	switch ev.Kind() {
	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", raw)
		}
		ev.SetBool(b)
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", raw)
		}
		ev.SetString(s)
	case reflect.Float32, reflect.Float64:
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("expected number, got %T", raw)
		}
		ev.SetFloat(n)
	default:
		n, ok := asInt64(raw)
		if !ok {
			return fmt.Errorf("expected integer, got %T", raw)
		}
		ev.SetInt(n)
	}
	return nil
}

func asInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

func asFloat64(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func childPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
