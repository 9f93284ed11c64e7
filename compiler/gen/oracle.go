package gen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ClassOracle reports whether a class with the given fully
// qualified name exists in the target application.
type ClassOracle interface {
	Exists(fqn string) bool
}

// OracleFunc adapts a function to the ClassOracle interface.
type OracleFunc func(fqn string) bool

// Exists implements ClassOracle.
func (f OracleFunc) Exists(fqn string) bool { return f(fqn) }

// ClassSet is a static ClassOracle. Names are compared with
// `\` and `/` treated as the same separator.
type ClassSet map[string]struct{}

// NewClassSet returns a set holding the given class names.
func NewClassSet(names ...string) ClassSet {
	s := make(ClassSet, len(names))
	s.Add(names...)
	return s
}

// Add adds class names to the set.
func (s ClassSet) Add(names ...string) {
	for _, n := range names {
		s[classKey(n)] = struct{}{}
	}
}

// Exists implements ClassOracle.
func (s ClassSet) Exists(fqn string) bool {
	_, ok := s[classKey(fqn)]
	return ok
}

func classKey(name string) string {
	return strings.Trim(strings.ReplaceAll(name, `\`, "/"), "/")
}

// FileOracle resolves classes to source files the way PSR-4 autoloading
// does: the longest matching namespace prefix selects a base directory and
// the rest of the name becomes the relative path of a ".php" file.
type FileOracle struct {
	// Roots maps namespace prefixes (e.g. "App") to directories (e.g. "./app").
	Roots map[string]string
	// Ext is the source file extension. Defaults to ".php".
	Ext string
}

// NewFileOracle returns a FileOracle with a single root.
func NewFileOracle(prefix, dir string) *FileOracle {
	return &FileOracle{Roots: map[string]string{prefix: dir}}
}

// Path returns the file a class is expected in, or false when no root matches.
func (o *FileOracle) Path(fqn string) (string, bool) {
	name := classKey(fqn)
	prefixes := make([]string, 0, len(o.Roots))
	for p := range o.Roots {
		prefixes = append(prefixes, p)
	}
	// Longest prefix wins.
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	for _, p := range prefixes {
		key := classKey(p)
		rest, ok := strings.CutPrefix(name, key+"/")
		if !ok || rest == "" {
			continue
		}
		ext := o.Ext
		if ext == "" {
			ext = ".php"
		}
		return filepath.Join(o.Roots[p], filepath.FromSlash(rest)+ext), true
	}
	return "", false
}

// Exists implements ClassOracle.
func (o *FileOracle) Exists(fqn string) bool {
	path, ok := o.Path(fqn)
	if !ok {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
