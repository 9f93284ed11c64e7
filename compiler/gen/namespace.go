package gen

import (
	"strings"

	"github.com/syssam/crudgen/compiler/naming"
)

// NamespaceResolver computes fully qualified namespaces from the configured
// roots and locates the optional custom request class of a method.
type NamespaceResolver struct {
	cfg *Config
}

// NewNamespaceResolver returns a resolver for the given configuration.
// A nil config resolves against DefaultConfig.
func NewNamespaceResolver(cfg *Config) *NamespaceResolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &NamespaceResolver{cfg: cfg}
}

// Separator returns the namespace segment separator.
func (r *NamespaceResolver) Separator() string {
	if r.cfg.Separator == "" {
		return "/"
	}
	return r.cfg.Separator
}

// Normalize rewrites both `/` and `\` separators of ns to the configured
// separator and trims leading and trailing separators.
func (r *NamespaceResolver) Normalize(ns string) string {
	sep := r.Separator()
	ns = strings.NewReplacer("/", sep, `\`, sep).Replace(ns)
	return strings.Trim(ns, sep)
}

// Join joins the non-empty namespace segments with the separator.
func (r *NamespaceResolver) Join(parts ...string) string {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = r.Normalize(p); p != "" {
			segs = append(segs, p)
		}
	}
	return strings.Join(segs, r.Separator())
}

// FullNamespace resolves ns against the root namespace. Namespaces already
// starting with the root are returned normalized but otherwise untouched.
func (r *NamespaceResolver) FullNamespace(ns string) string {
	ns = r.Normalize(ns)
	root := r.Normalize(r.cfg.RootNamespace)
	if root == "" || ns == root || strings.HasPrefix(ns, root+r.Separator()) {
		return ns
	}
	return r.Join(root, ns)
}

// RequestRoot returns the configured request namespace root: the API root
// when isAPI is set, the standard one otherwise.
func (r *NamespaceResolver) RequestRoot(isAPI bool) string {
	if isAPI {
		return r.FullNamespace(r.cfg.Request.APINamespace)
	}
	return r.FullNamespace(r.cfg.Request.Namespace)
}

// RequestFolder returns the namespace the custom requests of the model
// stored in table are expected in: root + sep + Studly(Camel(table)).
func (r *NamespaceResolver) RequestFolder(root, table string) string {
	name := naming.Studly(naming.Camel(table))
	if r.cfg.Request.SingularFolder {
		name = naming.Singular(name)
	}
	return r.Join(root, name)
}

// RequestSuffix returns the configured request class suffix.
func (r *NamespaceResolver) RequestSuffix() string {
	return r.cfg.String(KeyRequestClassSuffix, DefaultRequestSuffix)
}

// ResolveRequestClass looks up the custom request class of method inside
// folder. The candidate is Ucfirst(method)+suffix; when the oracle knows its
// fully qualified name, the candidate and that name (to be imported) are
// returned. Otherwise the generic "Request" and an empty import are returned.
func (r *NamespaceResolver) ResolveRequestClass(method, folder, suffix string, oracle ClassOracle) (class, use string) {
	if suffix == "" {
		suffix = DefaultRequestSuffix
	}
	candidate := naming.Ucfirst(method) + suffix
	fqn := r.Join(folder, candidate)
	if oracle != nil && oracle.Exists(fqn) {
		return candidate, fqn
	}
	return "Request", ""
}
