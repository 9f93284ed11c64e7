package gen

import (
	"reflect"
	"slices"

	"github.com/syssam/crudgen/compiler/naming"
)

// Capabilities a method kind may implement.
type (
	// ViewGenerator generates the body of a method that renders a view
	// (or, for API kinds, a response payload).
	ViewGenerator interface {
		GenerateViewCode(m *Method) (string, error)
	}

	// RedirectGenerator generates the body of a method that performs
	// a redirect after handling input.
	RedirectGenerator interface {
		GenerateRedirectCode(m *Method) (string, error)
	}

	// APIResponder marks kinds that produce API responses. Their custom
	// requests are looked up under the API request namespace.
	APIResponder interface {
		APIResponse()
	}

	// BeforeGenerator is an optional hook called right before a
	// generation strategy runs.
	BeforeGenerator interface {
		BeforeGenerate(m *Method) error
	}
)

// Strategy identifies the generation strategy a method was bound to.
type Strategy uint8

// Generation strategies.
const (
	StrategyNone Strategy = iota
	StrategyView
	StrategyRedirect
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyView:
		return "view"
	case StrategyRedirect:
		return "redirect"
	default:
		return "none"
	}
}

// Method describes one controller method to generate for a model.
//
// A Method is built for a single generation task and is not safe for
// concurrent use.
type Method struct {
	cfg      *Config
	resolver *NamespaceResolver
	oracle   ClassOracle

	kind     any
	kindName string
	strategy Strategy
	view     ViewGenerator
	redirect RedirectGenerator
	isAPI    bool

	model     *Introspector
	parent    *Introspector
	parentErr error

	methodName    string
	nameResolved  bool
	requestFolder string
	namespaces    []string
}

// NewMethod binds kind to model. The generation strategy, the API flag and
// the request folder are resolved once here and never change afterwards.
// A view capability takes precedence over a redirect capability.
//
// It fails with a ReflectionError when the kind has no named type or the
// model cannot be introspected. A nil cfg uses DefaultConfig and a nil
// oracle reports every class as missing.
func NewMethod(cfg *Config, oracle ClassOracle, kind any, model Model) (*Method, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	name, err := kindName(kind)
	if err != nil {
		return nil, err
	}
	mi, err := Introspect(model)
	if err != nil {
		return nil, err
	}
	m := &Method{
		cfg:      cfg,
		resolver: NewNamespaceResolver(cfg),
		oracle:   oracle,
		kind:     kind,
		kindName: name,
		model:    mi,
	}
	switch k := kind.(type) {
	case ViewGenerator:
		m.strategy, m.view = StrategyView, k
	case RedirectGenerator:
		m.strategy, m.redirect = StrategyRedirect, k
	}
	_, m.isAPI = kind.(APIResponder)
	m.requestFolder = m.resolver.RequestFolder(m.resolver.RequestRoot(m.isAPI), mi.Table())
	return m, nil
}

// kindName returns the unqualified Go type name of kind.
func kindName(kind any) (string, error) {
	if kind == nil {
		return "", NewReflectionError("", "method kind is nil", nil)
	}
	t := reflect.TypeOf(kind)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", NewReflectionError(t.String(), "method kind has no type name", nil)
	}
	return t.Name(), nil
}

// Kind returns the concrete method kind.
func (m *Method) Kind() any { return m.kind }

// Strategy returns the bound generation strategy.
func (m *Method) Strategy() Strategy { return m.strategy }

// IsAPI reports whether the kind produces API responses.
func (m *Method) IsAPI() bool { return m.isAPI }

// Config returns the generation config.
func (m *Method) Config() *Config { return m.cfg }

// Resolver returns the namespace resolver of the method.
func (m *Method) Resolver() *NamespaceResolver { return m.resolver }

// RequestFolder returns the namespace custom requests are looked up in.
func (m *Method) RequestFolder() string { return m.requestFolder }

// MethodName returns the method name. Unless overridden with SetMethodName,
// it is the kind type name with its first letter lower-cased.
func (m *Method) MethodName() string {
	if !m.nameResolved {
		m.methodName = naming.Lcfirst(m.kindName)
		m.nameResolved = true
	}
	return m.methodName
}

// SetMethodName overrides the method name.
func (m *Method) SetMethodName(name string) *Method {
	m.methodName = name
	m.nameResolved = true
	return m
}

// SetParent attaches the parent model of a nested controller. The parent
// type is appended to the imports on every call, without deduplication.
// A nil parent is ignored. A parent that cannot be introspected (no
// qualified name) detaches any earlier parent and appends nothing; its
// error is reported by ParentShortName.
func (m *Method) SetParent(parent Model) *Method {
	if isNil(parent) {
		return m
	}
	pi, err := Introspect(parent)
	if err != nil {
		m.parent, m.parentErr = nil, err
		return m
	}
	m.parent, m.parentErr = pi, nil
	m.namespaces = append(m.namespaces, pi.QualifiedName())
	return m
}

// Model returns the main model.
func (m *Method) Model() Model { return m.model.Model() }

// Parent returns the parent model, or nil.
func (m *Method) Parent() Model {
	if m.parent == nil {
		return nil
	}
	return m.parent.Model()
}

// HasParent reports whether a parent model was attached.
func (m *Method) HasParent() bool { return m.parent != nil }

// ModelShortName returns the model type name without namespace, first letter lower-cased.
func (m *Method) ModelShortName() string { return m.model.ShortName() }

// ParentShortName returns the parent type name without namespace, first
// letter lower-cased. It fails with a ReflectionError if no parent was
// attached, or with the introspection error of the last rejected parent.
func (m *Method) ParentShortName() (string, error) {
	if m.parentErr != nil {
		return "", m.parentErr
	}
	if m.parent == nil {
		return "", NewReflectionError(m.kindName, "no parent model attached", nil)
	}
	return m.parent.ShortName(), nil
}

// RequestClass returns the class name to type-hint the request parameter
// with. A custom request found by the oracle is imported as a side effect.
func (m *Method) RequestClass() string {
	class, use := m.resolver.ResolveRequestClass(m.MethodName(), m.requestFolder, m.resolver.RequestSuffix(), m.oracle)
	if use != "" {
		m.namespaces = append(m.namespaces, use)
	}
	return class
}

// AddNamespace registers imports required by the generated code.
func (m *Method) AddNamespace(ns ...string) {
	m.namespaces = append(m.namespaces, ns...)
}

// Namespaces returns the accumulated imports in registration order.
// Duplicates are kept.
func (m *Method) Namespaces() []string {
	return slices.Clone(m.namespaces)
}

// Code generates the method source using the bound strategy. A kind
// without a generation capability yields an empty string and no error.
func (m *Method) Code() (string, error) {
	switch m.strategy {
	case StrategyView:
		if err := m.beforeGenerate(); err != nil {
			return "", err
		}
		return m.view.GenerateViewCode(m)
	case StrategyRedirect:
		if err := m.beforeGenerate(); err != nil {
			return "", err
		}
		return m.redirect.GenerateRedirectCode(m)
	default:
		return "", nil
	}
}

func (m *Method) beforeGenerate() error {
	if h, ok := m.kind.(BeforeGenerator); ok {
		return h.BeforeGenerate(m)
	}
	return nil
}
