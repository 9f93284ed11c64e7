package gen

import "errors"

// Option configures code generation.
type Option func(*Config) error

// nonEmpty builds an option that stores a required string setting.
func nonEmpty(option, value string, set func(*Config, string)) Option {
	return func(c *Config) error {
		if value == "" {
			return NewConfigError(option, nil, "cannot be empty")
		}
		set(c, value)
		return nil
	}
}

// WithRootNamespace sets the application root namespace, e.g. "App".
func WithRootNamespace(ns string) Option {
	return nonEmpty("RootNamespace", ns, func(c *Config, v string) { c.RootNamespace = v })
}

// WithSeparator sets the namespace segment separator, "/" or `\`.
func WithSeparator(sep string) Option {
	return func(c *Config) error {
		if sep != "/" && sep != `\` {
			return NewConfigError("Separator", sep, `must be "/" or "\"`)
		}
		c.Separator = sep
		return nil
	}
}

// WithModelNamespace sets the namespace models live in.
func WithModelNamespace(ns string) Option {
	return nonEmpty("Model.Namespace", ns, func(c *Config, v string) { c.Model.Namespace = v })
}

// WithControllerNamespace sets the namespace of web controllers.
func WithControllerNamespace(ns string) Option {
	return nonEmpty("Controller.Namespace", ns, func(c *Config, v string) { c.Controller.Namespace = v })
}

// WithAPIControllerNamespace sets the namespace of API controllers.
func WithAPIControllerNamespace(ns string) Option {
	return nonEmpty("Controller.APINamespace", ns, func(c *Config, v string) { c.Controller.APINamespace = v })
}

// WithRequestNamespace sets the root namespace of custom web requests.
func WithRequestNamespace(ns string) Option {
	return nonEmpty("Request.Namespace", ns, func(c *Config, v string) { c.Request.Namespace = v })
}

// WithAPIRequestNamespace sets the root namespace of custom API requests.
func WithAPIRequestNamespace(ns string) Option {
	return nonEmpty("Request.APINamespace", ns, func(c *Config, v string) { c.Request.APINamespace = v })
}

// WithRequestClassSuffix sets the suffix of custom request class names.
func WithRequestClassSuffix(suffix string) Option {
	return nonEmpty("Request.ClassSuffix", suffix, func(c *Config, v string) { c.Request.ClassSuffix = v })
}

// WithSingularRequestFolder makes request folders use singular model names.
func WithSingularRequestFolder(enabled bool) Option {
	return func(c *Config) error {
		c.Request.SingularFolder = enabled
		return nil
	}
}

// WithResourceNamespace sets the namespace of API resources.
func WithResourceNamespace(ns string) Option {
	return nonEmpty("Resource.Namespace", ns, func(c *Config, v string) { c.Resource.Namespace = v })
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return nonEmpty("Target", dir, func(c *Config, v string) { c.Target = v })
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
