package laravel

import (
	"strings"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/naming"
)

// IlluminateRequest is the generic request class type-hinted when a method
// has no custom request.
const IlluminateRequest = "Illuminate/Http/Request"

// Scope holds the names a method template is rendered with.
type Scope struct {
	// Method is the controller method name.
	Method string
	// Model is the model class name, e.g. "BlogPost".
	Model string
	// Var is the model variable name, e.g. "blogPost".
	Var string
	// PluralVar is the collection variable name, e.g. "blogPosts".
	PluralVar string
	// Label is the human model name, e.g. "Blog post".
	Label string
	// PluralLabel is the human collection name, e.g. "blog posts".
	PluralLabel string
	// Parent and ParentVar are set for nested controllers.
	Parent    string
	ParentVar string
	// Relation is the relation of the parent holding the models.
	Relation string
	// Route is the route name prefix, e.g. "blog_posts" or "blog_posts.comments".
	Route string
	// View is the view rendered by the method, e.g. "blog_posts.index".
	View string
	// Request is the request class, Input the expression reading its data.
	Request string
	Input   string
	// Resource is the API resource class.
	Resource string
}

// NewScope resolves the names of m. It fails when a parent is expected but
// cannot be introspected.
func NewScope(m *gen.Method) (*Scope, error) {
	model := naming.Ucfirst(m.ModelShortName())
	table := m.Model().Table()
	s := &Scope{
		Method:      m.MethodName(),
		Model:       model,
		Var:         m.ModelShortName(),
		PluralVar:   naming.Plural(m.ModelShortName()),
		Label:       naming.Sentence(model),
		PluralLabel: naming.Words(naming.Plural(model)),
		Route:       table,
		View:        table + "." + m.MethodName(),
		Relation:    naming.Camel(table),
	}
	if m.HasParent() {
		parentVar, err := m.ParentShortName()
		if err != nil {
			return nil, err
		}
		s.ParentVar = parentVar
		s.Parent = naming.Ucfirst(parentVar)
		s.Route = m.Parent().Table() + "." + table
	}
	return s, nil
}

// WithRequest resolves the request class of m and the expression reading
// the validated input. Custom requests yield $request->validated(); the
// generic request falls back to the fillable attributes of the model.
func (s *Scope) WithRequest(m *gen.Method) *Scope {
	s.Request = m.RequestClass()
	if s.Request != "Request" {
		s.Input = "$request->validated()"
		return s
	}
	m.AddNamespace(IlluminateRequest)
	s.Input = "$request->all()"
	if fm, ok := m.Model().(gen.FillableModel); ok {
		if fields := fm.Fillable(); len(fields) > 0 {
			s.Input = "$request->only(" + array(fields) + ")"
		}
	}
	return s
}

// WithResource registers the API resource of the model.
func (s *Scope) WithResource(m *gen.Method) *Scope {
	s.Resource = s.Model + "Resource"
	r := m.Resolver()
	m.AddNamespace(r.Join(r.FullNamespace(m.Config().Resource.Namespace), s.Resource))
	return s
}

// Query returns the expression starting a query over the models, scoped
// to the parent relation for nested controllers.
func (s *Scope) Query() string {
	if s.Parent != "" {
		return "$" + s.ParentVar + "->" + s.Relation + "()"
	}
	return s.Model + "::query()"
}

// Params renders a method parameter list. Entries are "request", "parent"
// and "model"; the parent is skipped for non-nested controllers.
func (s *Scope) Params(entries ...string) string {
	var params []string
	for _, e := range entries {
		switch e {
		case "request":
			params = append(params, s.Request+" $request")
		case "parent":
			if s.Parent != "" {
				params = append(params, s.Parent+" $"+s.ParentVar)
			}
		case "model":
			params = append(params, s.Model+" $"+s.Var)
		}
	}
	return strings.Join(params, ", ")
}

// RouteArgs renders the route parameters pointing at the model itself,
// or at its collection when model is false.
func (s *Scope) RouteArgs(model bool) string {
	switch {
	case s.Parent != "" && model:
		return ", [$" + s.ParentVar + ", $" + s.Var + "]"
	case s.Parent != "":
		return ", $" + s.ParentVar
	case model:
		return ", $" + s.Var
	default:
		return ""
	}
}
