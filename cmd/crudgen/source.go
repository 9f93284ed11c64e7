package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/load"
)

// source selects where models and configuration come from.
type source struct {
	schema string
	driver string
	dsn    string
	config string
}

func (s *source) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.schema, "schema", "s", "", "model schema file (YAML)")
	cmd.Flags().StringVar(&s.driver, "driver", "", "discover models from a database: mysql, postgres or sqlite")
	cmd.Flags().StringVar(&s.dsn, "dsn", "", "database connection string")
	cmd.Flags().StringVarP(&s.config, "config", "c", "", "generator configuration file (YAML)")
	cmd.MarkFlagsMutuallyExclusive("schema", "driver")
	cmd.MarkFlagsRequiredTogether("driver", "dsn")
}

// loadConfig reads the configuration file, or returns the defaults.
func (s *source) loadConfig() (*gen.Config, error) {
	if s.config == "" {
		return gen.DefaultConfig(), nil
	}
	return gen.LoadConfig(s.config)
}

// loadCatalog loads the models. Models without a namespace are placed in
// the configured model namespace.
func (s *source) loadCatalog(ctx context.Context, cfg *gen.Config) (*load.Catalog, error) {
	opts := load.Options{Namespace: gen.NewNamespaceResolver(cfg).FullNamespace(cfg.Model.Namespace)}
	switch {
	case s.schema != "":
		return load.File(s.schema, opts)
	case s.driver != "":
		db, err := load.Open(ctx, s.driver, s.dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return load.FromDatabase(ctx, db, s.driver, opts)
	default:
		return nil, gen.NewConfigError("schema", nil, "one of --schema or --driver is required")
	}
}

// files returns the files the loaded state depends on.
func (s *source) files() []string {
	var files []string
	for _, f := range []string{s.schema, s.config} {
		if f != "" {
			files = append(files, f)
		}
	}
	return files
}
