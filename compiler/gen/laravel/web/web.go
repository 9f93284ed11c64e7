// Package web holds the method kinds of resource controllers that render
// views and redirect after handling input.
package web

import (
	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/laravel"
)

type (
	// Index lists the models.
	Index struct{}
	// Create shows the creation form.
	Create struct{}
	// Show displays one model.
	Show struct{}
	// Edit shows the edit form.
	Edit struct{}
	// Store persists a new model and redirects to it.
	Store struct{}
	// Update modifies a model and redirects to it.
	Update struct{}
	// Destroy deletes a model and redirects to the listing.
	Destroy struct{}
)

// Kinds returns the resource controller methods in route order.
func Kinds() []any {
	return []any{Index{}, Create{}, Store{}, Show{}, Edit{}, Update{}, Destroy{}}
}

// GenerateViewCode implements gen.ViewGenerator.
func (Index) GenerateViewCode(m *gen.Method) (string, error) { return render(m, "web/index") }

// GenerateViewCode implements gen.ViewGenerator.
func (Create) GenerateViewCode(m *gen.Method) (string, error) { return render(m, "web/create") }

// GenerateViewCode implements gen.ViewGenerator.
func (Show) GenerateViewCode(m *gen.Method) (string, error) { return render(m, "web/show") }

// GenerateViewCode implements gen.ViewGenerator.
func (Edit) GenerateViewCode(m *gen.Method) (string, error) { return render(m, "web/edit") }

// GenerateRedirectCode implements gen.RedirectGenerator.
func (Store) GenerateRedirectCode(m *gen.Method) (string, error) { return redirect(m, "web/store") }

// GenerateRedirectCode implements gen.RedirectGenerator.
func (Update) GenerateRedirectCode(m *gen.Method) (string, error) { return redirect(m, "web/update") }

// GenerateRedirectCode implements gen.RedirectGenerator.
// Destroy accepts no input, so no request class is resolved.
func (Destroy) GenerateRedirectCode(m *gen.Method) (string, error) { return render(m, "web/destroy") }

func render(m *gen.Method, name string) (string, error) {
	s, err := laravel.NewScope(m)
	if err != nil {
		return "", err
	}
	return laravel.Render(name, s)
}

// redirect renders methods handling input, which need the request class.
func redirect(m *gen.Method, name string) (string, error) {
	s, err := laravel.NewScope(m)
	if err != nil {
		return "", err
	}
	return laravel.Render(name, s.WithRequest(m))
}
