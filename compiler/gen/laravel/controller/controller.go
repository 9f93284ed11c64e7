// Package controller assembles the generated methods of one model into a
// Laravel controller class.
package controller

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/laravel"
	"github.com/syssam/crudgen/compiler/gen/laravel/api"
	"github.com/syssam/crudgen/compiler/gen/laravel/web"
	"github.com/syssam/crudgen/compiler/naming"
)

type (
	// Generator builds controllers for models.
	Generator struct {
		cfg    *gen.Config
		oracle gen.ClassOracle
		api    bool
		only   []string
		log    *slog.Logger
	}

	// Option configures a Generator.
	Option func(*Generator)

	// Job is one controller to generate.
	Job struct {
		Model  gen.Model
		Parent gen.Model
	}

	// Controller is a generated controller class.
	Controller struct {
		Name      string
		Namespace string
		// Path is the file path relative to the project root.
		Path    string
		Imports []string
		Methods []Method
		Source  string
	}

	// Method is a generated controller method.
	Method struct {
		Name string
		Code string
	}
)

// API makes the generator emit API controllers.
func API() Option {
	return func(g *Generator) { g.api = true }
}

// Only restricts the generated methods to the given names.
func Only(methods ...string) Option {
	return func(g *Generator) { g.only = append(g.only, methods...) }
}

// WithLogger sets the logger used to report generated controllers.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// New returns a Generator. A nil cfg uses gen.DefaultConfig.
func New(cfg *gen.Config, oracle gen.ClassOracle, opts ...Option) *Generator {
	if cfg == nil {
		cfg = gen.DefaultConfig()
	}
	g := &Generator{cfg: cfg, oracle: oracle, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Kinds returns the method kinds the generator emits.
func (g *Generator) Kinds() []any {
	if g.api {
		return api.Kinds()
	}
	return web.Kinds()
}

// Generate builds the controller of model, nested under parent when it is
// not nil. Every method gets its own descriptor.
func (g *Generator) Generate(model, parent gen.Model) (*Controller, error) {
	var (
		methods []Method
		imports []string
	)
	for _, kind := range g.Kinds() {
		m, err := gen.NewMethod(g.cfg, g.oracle, kind, model)
		if err != nil {
			return nil, err
		}
		if len(g.only) > 0 && !slices.Contains(g.only, m.MethodName()) {
			continue
		}
		if parent != nil {
			m.SetParent(parent)
		}
		code, err := m.Code()
		if err != nil {
			return nil, err
		}
		if code == "" {
			continue
		}
		methods = append(methods, Method{Name: m.MethodName(), Code: code})
		imports = append(imports, m.Namespaces()...)
	}
	c, err := g.newController(model, parent)
	if err != nil {
		return nil, err
	}
	c.Methods = methods
	c.Imports = g.imports(c, model, imports)
	if c.Source, err = laravel.Render("controller", c); err != nil {
		return nil, err
	}
	g.log.Debug("controller generated", "controller", c.Name, "methods", len(methods), "imports", len(c.Imports))
	return c, nil
}

// GenerateAll generates the controllers of all jobs in parallel and returns
// them as files ready for a gen.Writer, in job order.
func (g *Generator) GenerateAll(ctx context.Context, jobs []Job) ([]gen.File, error) {
	files := make([]gen.File, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := g.Generate(job.Model, job.Parent)
			if err != nil {
				return err
			}
			files[i] = gen.File{Path: c.Path, Content: []byte(c.Source)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func (g *Generator) newController(model, parent gen.Model) (*Controller, error) {
	mi, err := gen.Introspect(model)
	if err != nil {
		return nil, err
	}
	name := naming.Ucfirst(mi.ShortName())
	if parent != nil {
		pi, err := gen.Introspect(parent)
		if err != nil {
			return nil, err
		}
		name = naming.Ucfirst(pi.ShortName()) + name
	}
	name += "Controller"
	r := gen.NewNamespaceResolver(g.cfg)
	ns := r.FullNamespace(g.cfg.Controller.Namespace)
	if g.api {
		ns = r.FullNamespace(g.cfg.Controller.APINamespace)
	}
	return &Controller{
		Name:      name,
		Namespace: ns,
		Path:      g.path(r, ns, name),
	}, nil
}

// path maps the controller namespace to its file the way the default
// composer autoloading does: the root namespace lives in a lower-cased
// directory of the same name (App -> app).
func (g *Generator) path(r *gen.NamespaceResolver, ns, name string) string {
	sep := r.Separator()
	root := r.Normalize(g.cfg.RootNamespace)
	rest, ok := strings.CutPrefix(ns, root)
	if !ok {
		rest = sep + ns
	}
	segs := []string{strings.ToLower(root)}
	segs = append(segs, strings.Split(strings.Trim(rest, sep), sep)...)
	segs = append(segs, name+".php")
	return strings.Join(slices.DeleteFunc(segs, func(s string) bool { return s == "" }), "/")
}

// imports returns the de-duplicated, sorted imports of the controller.
// The model and the base controller are always included.
func (g *Generator) imports(c *Controller, model gen.Model, used []string) []string {
	r := gen.NewNamespaceResolver(g.cfg)
	all := append([]string{model.QualifiedName()}, used...)
	if base := r.FullNamespace(g.cfg.Controller.Namespace); base != c.Namespace {
		all = append(all, r.Join(base, "Controller"))
	}
	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, len(all))
	for _, ns := range all {
		key := laravel.PHPNamespace(ns)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ns)
	}
	slices.SortFunc(out, func(a, b string) int {
		return strings.Compare(laravel.PHPNamespace(a), laravel.PHPNamespace(b))
	})
	return out
}
