package registry

import (
	"fmt"
	"reflect"
	"sort"
)

// Registry maps stable archive type tags to compiled variant schemas.
// It is populated once at startup and read-only afterwards, so it is safe
// to share across ingestion workers.
type Registry struct {
	byTag   map[uint32]*Schema
	byType  map[reflect.Type]*Schema
	byTable map[string]*Schema
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byTag:   make(map[uint32]*Schema),
		byType:  make(map[reflect.Type]*Schema),
		byTable: make(map[string]*Schema),
	}
}

// Register compiles the prototype's field schema and binds it to the tag.
// Duplicate tags, duplicate tables, and uncompilable variants are errors;
// registration happens at construction time so these are treated as
// configuration defects, not data errors.
func (r *Registry) Register(tag uint32, proto Node) error {
	t := reflect.TypeOf(proto)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if existing, ok := r.byTag[tag]; ok {
		return fmt.Errorf("tag %d already registered to %s", tag, existing.Type)
	}
	table := proto.Table()
	if table == "" {
		return fmt.Errorf("variant %s declares an empty table name", t)
	}
	if existing, ok := r.byTable[table]; ok {
		return fmt.Errorf("table %q already registered to %s", table, existing.Type)
	}
	schema, err := compile(tag, table, t)
	if err != nil {
		return err
	}
	r.byTag[tag] = schema
	r.byType[t] = schema
	r.byTable[table] = schema
	return nil
}

// MustRegister is Register for static catalogs assembled at startup.
func (r *Registry) MustRegister(tag uint32, proto Node) {
	if err := r.Register(tag, proto); err != nil {
		panic(err)
	}
}

// Resolve returns the schema registered for a tag. Unknown tags are a
// distinct condition reported to the caller; they are never coerced to a
// default variant.
func (r *Registry) Resolve(tag uint32) (*Schema, bool) {
	s, ok := r.byTag[tag]
	return s, ok
}

// SchemaOf returns the schema for a materialized node by its concrete type.
func (r *Registry) SchemaOf(n Node) (*Schema, bool) {
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s, ok := r.byType[t]
	return s, ok
}

// SchemaForTable returns the schema that writes to the named table.
func (r *Registry) SchemaForTable(name string) (*Schema, bool) {
	s, ok := r.byTable[name]
	return s, ok
}

// Tables returns all destination table names in sorted order.
func (r *Registry) Tables() []string {
	names := make([]string, 0, len(r.byTable))
	for name := range r.byTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tags returns all registered tags in sorted order.
func (r *Registry) Tags() []uint32 {
	tags := make([]uint32, 0, len(r.byTag))
	for tag := range r.byTag {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
