package gen

import (
	"reflect"

	"github.com/syssam/crudgen/compiler/naming"
)

// Model is the metadata of one entity supplied by the model layer.
type Model interface {
	// Table returns the storage table of the model, e.g. "blog_posts".
	Table() string
	// QualifiedName returns the fully qualified type name, e.g. "App/Models/BlogPost".
	QualifiedName() string
}

// FillableModel is implemented by models that know which of their
// attributes may be mass assigned.
type FillableModel interface {
	Model
	Fillable() []string
}

// Introspector wraps a model and memoizes the names derived from it.
type Introspector struct {
	model     Model
	shortName string
	cached    bool
}

// Introspect returns an Introspector for m. It fails with a ReflectionError
// when m is nil or reports no qualified type name.
func Introspect(m Model) (*Introspector, error) {
	if isNil(m) {
		return nil, NewReflectionError("", "model is nil", nil)
	}
	if m.QualifiedName() == "" {
		return nil, NewReflectionError(reflect.TypeOf(m).String(), "model has no qualified type name", nil)
	}
	return &Introspector{model: m}, nil
}

// Model returns the wrapped model.
func (i *Introspector) Model() Model { return i.model }

// Table returns the model table.
func (i *Introspector) Table() string { return i.model.Table() }

// QualifiedName returns the fully qualified type name of the model.
func (i *Introspector) QualifiedName() string { return i.model.QualifiedName() }

// ShortName returns the unqualified type name with its first letter
// lower-cased. It is computed once and cached.
func (i *Introspector) ShortName() string {
	if !i.cached {
		i.shortName = naming.ShortName(i.model.QualifiedName())
		i.cached = true
	}
	return i.shortName
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
