// Package naming holds the pure string transforms used across the generator:
// pluralization, case conversion and short-name extraction.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules  = ruleset()
	titler = cases.Title(language.English)
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{"API", "CSS", "HTML", "HTTP", "ID", "JSON", "SQL", "URL", "UUID", "XML"} {
		rules.AddAcronym(w)
	}
	return rules
}

// separators that split a qualified type name into path segments.
const separators = `/\.`

// ShortName strips all namespace segments from a qualified type name and
// returns the trailing identifier with its first letter lower-cased.
//
//	ShortName("App/Models/BlogPost") == "blogPost"
//	ShortName(`App\Models\User`)      == "user"
func ShortName(qualified string) string {
	if i := strings.LastIndexAny(qualified, separators); i >= 0 {
		qualified = qualified[i+1:]
	}
	return Lcfirst(qualified)
}

// BaseName is like ShortName but keeps the identifier casing.
func BaseName(qualified string) string {
	if i := strings.LastIndexAny(qualified, separators); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// Studly splits the input on underscores, dashes and spaces and upper-cases
// the first letter of each word. The rest of every word is kept as is, so
// inner capitals survive ("blogPosts" -> "BlogPosts", "user_IDs" -> "UserIDs").
func Studly(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(Ucfirst(w))
	}
	return b.String()
}

// Camel is Studly with the first letter lower-cased ("blog_posts" -> "blogPosts").
func Camel(s string) string {
	return Lcfirst(Studly(s))
}

// Snake converts the input to snake_case ("BlogPost" -> "blog_post").
func Snake(s string) string {
	if s == "" {
		return s
	}
	return strcase.ToSnake(s)
}

// Kebab converts the input to kebab-case ("BlogPost" -> "blog-post").
func Kebab(s string) string {
	if s == "" {
		return s
	}
	return strcase.ToKebab(s)
}

// Words returns the lower-cased words of an identifier separated by spaces.
func Words(s string) string {
	if s == "" {
		return s
	}
	return strcase.ToDelimited(s, ' ')
}

// Title returns the identifier as title cased words ("blog_posts" -> "Blog Posts").
func Title(s string) string {
	return titler.String(Words(s))
}

// Sentence returns the identifier as words with only the first one
// capitalized ("blog_posts" -> "Blog posts").
func Sentence(s string) string {
	return Ucfirst(Words(s))
}

// Plural returns the plural form of the word.
func Plural(s string) string {
	if s == "" {
		return s
	}
	return rules.Pluralize(s)
}

// Singular returns the singular form of the word.
func Singular(s string) string {
	if s == "" {
		return s
	}
	return rules.Singularize(s)
}

// Ucfirst upper-cases the first rune of s.
func Ucfirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// Lcfirst lower-cases the first rune of s.
func Lcfirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
