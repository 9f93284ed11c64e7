// Package gen provides the building blocks of controller method generation.
//
// A Method binds a method kind to a model. Kinds are plain Go types whose
// capabilities decide how code is produced:
//
//   - ViewGenerator: the method renders a view or resource (View strategy)
//   - RedirectGenerator: the method handles input and redirects (Redirect strategy)
//   - APIResponder: requests are looked up under the API request namespace
//   - BeforeGenerator: a hook run before code generation
//
// The strategy is resolved once when the Method is constructed. A kind
// implementing both generators uses the View strategy; a kind implementing
// neither produces no code.
//
// # Naming
//
// The method name is the kind type name with its first letter lower-cased,
// so a kind named Store yields the method "store". Custom request classes
// are looked up through a ClassOracle under
//
//	<request namespace>/<Studly(Camel(table))>/<Ucfirst(method)><suffix>
//
// and the generic "Request" is used when the oracle does not know them.
//
// # Namespaces
//
// Namespaces use the configured separator ("/" by default). Imports needed
// by generated code accumulate on the Method in registration order and are
// de-duplicated by the controller that assembles the methods.
//
// # Example
//
//	cfg := gen.DefaultConfig()
//	oracle := gen.NewFileOracle("App", "./app")
//	m, err := gen.NewMethod(cfg, oracle, web.Store{}, model)
//	if err != nil {
//		return err
//	}
//	code, err := m.Code()
package gen
