// Package api holds the method kinds of API resource controllers. They
// answer with JSON resources and look up their custom requests under the
// API request namespace.
package api

import (
	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/laravel"
)

type (
	// Index lists the models as a resource collection.
	Index struct{}
	// Show returns one model resource.
	Show struct{}
	// Store persists a new model and answers 201.
	Store struct{}
	// Update modifies a model.
	Update struct{}
	// Destroy deletes a model and answers 204.
	Destroy struct{}
)

// Kinds returns the API controller methods in route order.
func Kinds() []any {
	return []any{Index{}, Store{}, Show{}, Update{}, Destroy{}}
}

// APIResponse implements gen.APIResponder.
func (Index) APIResponse() {}

// APIResponse implements gen.APIResponder.
func (Show) APIResponse() {}

// APIResponse implements gen.APIResponder.
func (Store) APIResponse() {}

// APIResponse implements gen.APIResponder.
func (Update) APIResponse() {}

// APIResponse implements gen.APIResponder.
func (Destroy) APIResponse() {}

// GenerateViewCode implements gen.ViewGenerator.
func (Index) GenerateViewCode(m *gen.Method) (string, error) { return respond(m, "api/index", false) }

// GenerateViewCode implements gen.ViewGenerator.
func (Show) GenerateViewCode(m *gen.Method) (string, error) { return respond(m, "api/show", false) }

// GenerateViewCode implements gen.ViewGenerator.
func (Store) GenerateViewCode(m *gen.Method) (string, error) { return respond(m, "api/store", true) }

// GenerateViewCode implements gen.ViewGenerator.
func (Update) GenerateViewCode(m *gen.Method) (string, error) { return respond(m, "api/update", true) }

// GenerateViewCode implements gen.ViewGenerator.
func (Destroy) GenerateViewCode(m *gen.Method) (string, error) {
	s, err := laravel.NewScope(m)
	if err != nil {
		return "", err
	}
	return laravel.Render("api/destroy", s)
}

func respond(m *gen.Method, name string, input bool) (string, error) {
	s, err := laravel.NewScope(m)
	if err != nil {
		return "", err
	}
	if input {
		s.WithRequest(m)
	}
	return laravel.Render(name, s.WithResource(m))
}
