package gen

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Configuration keys understood by Config.Lookup.
const (
	KeyRootNamespace          = "rootNamespace"
	KeySeparator              = "separator"
	KeyModelNamespace         = "model.namespace"
	KeyControllerNamespace    = "controller.namespace"
	KeyControllerAPINamespace = "controller.apiNamespace"
	KeyRequestNamespace       = "request.namespace"
	KeyRequestAPINamespace    = "request.apiNamespace"
	KeyRequestClassSuffix     = "request.classSuffix"
	KeyRequestSingularFolder  = "request.singularFolder"
	KeyResourceNamespace      = "resource.namespace"
	KeyTarget                 = "target"
)

// DefaultRequestSuffix is appended to a method name to build the candidate
// custom request class name when no suffix is configured.
const DefaultRequestSuffix = "Request"

type (
	// Config holds the naming conventions and namespace roots
	// used to generate controller code.
	Config struct {
		// RootNamespace is the application root namespace. Namespaces that
		// do not start with it are resolved relative to it.
		RootNamespace string `yaml:"rootNamespace" validate:"required"`
		// Separator joins namespace segments: "/" or `\`. PHP output
		// always uses `\`.
		Separator string `yaml:"separator" validate:"oneof=/ \\"`
		// Model holds the model namespace settings.
		Model ModelConfig `yaml:"model"`
		// Controller holds the controller namespace settings.
		Controller ControllerConfig `yaml:"controller"`
		// Request holds the custom request (validation class) settings.
		Request RequestConfig `yaml:"request"`
		// Resource holds the API resource settings.
		Resource ResourceConfig `yaml:"resource"`
		// Target is the directory generated files are written to.
		Target string `yaml:"target,omitempty"`
	}

	// ModelConfig holds model settings.
	ModelConfig struct {
		Namespace string `yaml:"namespace" validate:"required"`
	}

	// ControllerConfig holds controller settings.
	ControllerConfig struct {
		Namespace    string `yaml:"namespace" validate:"required"`
		APINamespace string `yaml:"apiNamespace" validate:"required"`
	}

	// RequestConfig holds custom request settings.
	RequestConfig struct {
		Namespace    string `yaml:"namespace" validate:"required"`
		APINamespace string `yaml:"apiNamespace" validate:"required"`
		ClassSuffix  string `yaml:"classSuffix"`
		// SingularFolder makes the request folder use the singular studly
		// table name (blog_posts -> BlogPost) instead of the plural one.
		SingularFolder bool `yaml:"singularFolder"`
	}

	// ResourceConfig holds API resource settings.
	ResourceConfig struct {
		Namespace string `yaml:"namespace" validate:"required"`
	}
)

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		RootNamespace: "App",
		Separator:     "/",
		Model: ModelConfig{
			Namespace: "App/Models",
		},
		Controller: ControllerConfig{
			Namespace:    "App/Http/Controllers",
			APINamespace: "App/Http/Controllers/Api",
		},
		Request: RequestConfig{
			Namespace:    "App/Http/Requests",
			APINamespace: "App/Http/Requests/Api",
			ClassSuffix:  DefaultRequestSuffix,
		},
		Resource: ResourceConfig{
			Namespace: "App/Http/Resources",
		},
	}
}

// Lookup returns the value of a configuration key.
// Unknown keys report false.
func (c *Config) Lookup(key string) (string, bool) {
	switch key {
	case KeyRootNamespace:
		return c.RootNamespace, true
	case KeySeparator:
		return c.Separator, true
	case KeyModelNamespace:
		return c.Model.Namespace, true
	case KeyControllerNamespace:
		return c.Controller.Namespace, true
	case KeyControllerAPINamespace:
		return c.Controller.APINamespace, true
	case KeyRequestNamespace:
		return c.Request.Namespace, true
	case KeyRequestAPINamespace:
		return c.Request.APINamespace, true
	case KeyRequestClassSuffix:
		return c.Request.ClassSuffix, true
	case KeyRequestSingularFolder:
		return strconv.FormatBool(c.Request.SingularFolder), true
	case KeyResourceNamespace:
		return c.Resource.Namespace, true
	case KeyTarget:
		return c.Target, true
	default:
		return "", false
	}
}

// String returns the value of key, or fallback if the key is unknown or empty.
func (c *Config) String(key, fallback string) string {
	if v, ok := c.Lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		var value any
		if s, ok := fe.Value().(string); ok && s != "" {
			value = s
		}
		errs = append(errs, NewConfigError(fe.Namespace(), value, fmt.Sprintf("failed %q validation", fe.Tag())))
	}
	return errors.Join(errs...)
}

// ParseConfig decodes a YAML configuration document on top of the defaults.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("crudgen: decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadConfig reads and decodes the YAML configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("crudgen: read config: %w", err)
	}
	return ParseConfig(data)
}
