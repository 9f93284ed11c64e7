package laravel

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/syssam/crudgen/compiler/gen"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Funcs are the template helpers available to all templates.
var Funcs = template.FuncMap{
	"compact": compact,
	"quote":   quote,
	"array":   array,
	"lower":   strings.ToLower,
	"php":     PHPNamespace,
}

var templates = template.Must(template.New("laravel").Funcs(Funcs).ParseFS(templateFS, "templates/*.tmpl"))

// Render executes the named template with data. Template bodies start on
// the line after their define action; that first newline is dropped.
func Render(name string, data any) (string, error) {
	var b bytes.Buffer
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", gen.NewGenerationError("template", name, "", err)
	}
	return strings.TrimPrefix(b.String(), "\n"), nil
}

// PHPNamespace converts a namespace using `/` separators to PHP notation.
func PHPNamespace(ns string) string {
	return strings.Trim(strings.ReplaceAll(ns, "/", `\`), `\`)
}

// compact renders the arguments of a PHP compact() call, skipping empty names.
func compact(vars ...string) string {
	return strings.Join(quoteAll(vars), ", ")
}

// array renders a PHP array literal of quoted strings.
func array(items []string) string {
	return "[" + strings.Join(quoteAll(items), ", ") + "]"
}

func quote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s) + "'"
}

func quoteAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			out = append(out, quote(it))
		}
	}
	return out
}
