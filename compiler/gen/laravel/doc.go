// Package laravel renders controller method bodies for Laravel applications.
//
// The concrete method kinds live in the web and api sub-packages; each kind
// builds a Scope from its gen.Method and executes one of the embedded
// templates. The controller sub-package assembles the methods of one model
// into a controller class.
//
//	m, err := gen.NewMethod(cfg, oracle, web.Store{}, model)
//	if err != nil {
//		return err
//	}
//	code, err := m.Code()
package laravel
