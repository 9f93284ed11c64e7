// Package load provides the model metadata the generator works on. Models
// are read from YAML schema files or discovered in a live database.
package load

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/syssam/crudgen/compiler/naming"
)

// ErrInvalidSchema indicates a schema definition error.
var ErrInvalidSchema = errors.New("crudgen: invalid schema")

// RelationType is the kind of an Eloquent relation.
type RelationType string

// Relation types.
const (
	BelongsTo     RelationType = "belongsTo"
	HasOne        RelationType = "hasOne"
	HasMany       RelationType = "hasMany"
	BelongsToMany RelationType = "belongsToMany"
)

// guarded columns are never mass assigned unless a field says otherwise.
var guarded = []string{"id", "created_at", "updated_at", "deleted_at", "remember_token"}

type (
	// Schema describes one model: its table, fields and relations.
	Schema struct {
		Name      string      `yaml:"name" validate:"required"`
		TableName string      `yaml:"table,omitempty"`
		Namespace string      `yaml:"namespace,omitempty"`
		Fields    []*Field    `yaml:"fields,omitempty" validate:"dive"`
		Relations []*Relation `yaml:"relations,omitempty" validate:"dive"`
	}

	// Field is a model attribute backed by a table column.
	Field struct {
		Name     string `yaml:"name" validate:"required"`
		Type     string `yaml:"type,omitempty"`
		Nullable bool   `yaml:"nullable,omitempty"`
		// Fillable overrides the default mass assignment rule.
		Fillable *bool `yaml:"fillable,omitempty"`
		Hidden   bool  `yaml:"hidden,omitempty"`
	}

	// Relation links a model to another one.
	Relation struct {
		Name  string       `yaml:"name" validate:"required"`
		Type  RelationType `yaml:"type" validate:"required,oneof=belongsTo hasOne hasMany belongsToMany"`
		Model string       `yaml:"model" validate:"required"`
	}
)

// Table returns the table of the model. It defaults to the snake cased
// plural of the model name.
func (s *Schema) Table() string {
	if s.TableName != "" {
		return s.TableName
	}
	return naming.Snake(naming.Plural(s.Name))
}

// QualifiedName returns the fully qualified model type name.
func (s *Schema) QualifiedName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return strings.TrimRight(s.Namespace, `/\`) + separatorOf(s.Namespace) + s.Name
}

func separatorOf(ns string) string {
	if strings.Contains(ns, `\`) && !strings.Contains(ns, "/") {
		return `\`
	}
	return "/"
}

// Fillable returns the names of the mass assignable fields.
func (s *Schema) Fillable() []string {
	var names []string
	for _, f := range s.Fields {
		if f.IsFillable() {
			names = append(names, f.Name)
		}
	}
	return names
}

// Parents returns the belongsTo relations of the model.
func (s *Schema) Parents() []*Relation {
	var rels []*Relation
	for _, r := range s.Relations {
		if r.Type == BelongsTo {
			rels = append(rels, r)
		}
	}
	return rels
}

// Relation returns the relation with the given name.
func (s *Schema) Relation(name string) (*Relation, bool) {
	for _, r := range s.Relations {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// IsFillable reports whether the field may be mass assigned.
func (f *Field) IsFillable() bool {
	if f.Fillable != nil {
		return *f.Fillable
	}
	return !slices.Contains(guarded, f.Name)
}

// SchemaError represents a schema definition error.
type SchemaError struct {
	Model   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("crudgen: schema error")
	if e.Model != "" {
		b.WriteString(" on model ")
		b.WriteString(e.Model)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error { return e.Cause }

// Is reports whether the target matches ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// Options controls how models are loaded.
type Options struct {
	// Namespace is assigned to models that do not declare one.
	Namespace string
}

// Catalog is an ordered set of loaded models.
type Catalog struct {
	Schemas []*Schema
}

// file is the YAML document layout of a schema file.
type file struct {
	Namespace string    `yaml:"namespace,omitempty"`
	Models    []*Schema `yaml:"models" validate:"dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// File loads the schema file at path.
func File(path string, opts Options) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("crudgen: read schema: %w", err)
	}
	return Parse(data, opts)
}

// Parse decodes a YAML schema document.
func Parse(data []byte, opts Options) (*Catalog, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SchemaError{Message: "decode schema", Cause: err}
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, &SchemaError{Message: "invalid definition", Cause: err}
	}
	ns := opts.Namespace
	if doc.Namespace != "" {
		ns = doc.Namespace
	}
	return NewCatalog(ns, doc.Models...)
}

// NewCatalog builds a catalog, assigns the default namespace and checks
// that names are unique and relations point to known models.
func NewCatalog(namespace string, schemas ...*Schema) (*Catalog, error) {
	c := &Catalog{Schemas: schemas}
	seen := make(map[string]struct{}, len(schemas))
	for _, s := range schemas {
		if s.Name == "" {
			return nil, &SchemaError{Message: "model name is required"}
		}
		if _, ok := seen[s.Name]; ok {
			return nil, &SchemaError{Model: s.Name, Message: "duplicate model"}
		}
		seen[s.Name] = struct{}{}
		if s.Namespace == "" {
			s.Namespace = namespace
		}
	}
	for _, s := range schemas {
		for _, r := range s.Relations {
			if _, ok := seen[r.Model]; !ok {
				return nil, &SchemaError{Model: s.Name, Message: fmt.Sprintf("relation %q references unknown model %q", r.Name, r.Model)}
			}
		}
	}
	return c, nil
}

// Lookup finds a model by name (case-insensitive) or by table.
func (c *Catalog) Lookup(name string) (*Schema, bool) {
	for _, s := range c.Schemas {
		if strings.EqualFold(s.Name, name) || s.Table() == name {
			return s, true
		}
	}
	return nil, false
}

// Names returns the model names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Schemas))
	for i, s := range c.Schemas {
		names[i] = s.Name
	}
	return names
}
