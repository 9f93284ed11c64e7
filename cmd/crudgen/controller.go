package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/crudgen/compiler/gen"
	"github.com/syssam/crudgen/compiler/gen/laravel/controller"
	"github.com/syssam/crudgen/compiler/load"
)

type controllerOptions struct {
	source source
	parent string
	api    bool
	only   []string
	out    string
	dryRun bool
}

func newControllerCmd(log *slog.Logger) *cobra.Command {
	o := &controllerOptions{}
	cmd := &cobra.Command{
		Use:   "controller [model...]",
		Short: "Generate resource controllers",
		Long: `Generate a resource controller for each model, or for every model of the
catalog when none is named. Custom form requests found in the project are
type-hinted; other methods fall back to Illuminate\Http\Request.`,
		Example: `  crudgen controller BlogPost --schema models.yaml
  crudgen controller Comment --schema models.yaml --parent BlogPost
  crudgen controller --driver sqlite --dsn blog.db --api --only index,show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context(), cmd.OutOrStdout(), log, args)
		},
	}
	o.bind(cmd)
	return cmd
}

func (o *controllerOptions) bind(cmd *cobra.Command) {
	o.source.bind(cmd)
	cmd.Flags().StringVarP(&o.parent, "parent", "p", "", "parent model of nested controllers")
	cmd.Flags().BoolVar(&o.api, "api", false, "generate API controllers")
	cmd.Flags().StringSliceVar(&o.only, "only", nil, "generate only the named methods")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "project directory (default: config target or .)")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "print controllers instead of writing them")
}

func (o *controllerOptions) run(ctx context.Context, w io.Writer, log *slog.Logger, models []string) error {
	cfg, err := o.source.loadConfig()
	if err != nil {
		return err
	}
	catalog, err := o.source.loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	jobs, err := o.jobs(catalog, models)
	if err != nil {
		return err
	}
	dir := o.projectDir(cfg)
	root := gen.NewNamespaceResolver(cfg).Normalize(cfg.RootNamespace)
	oracle := gen.NewFileOracle(root, filepath.Join(dir, strings.ToLower(root)))

	opts := []controller.Option{controller.WithLogger(log), controller.Only(o.only...)}
	if o.api {
		opts = append(opts, controller.API())
	}
	files, err := controller.New(cfg, oracle, opts...).GenerateAll(ctx, jobs)
	if err != nil {
		return err
	}
	if o.dryRun {
		for _, f := range files {
			if _, err := fmt.Fprintf(w, "// %s\n%s\n", f.Path, f.Content); err != nil {
				return err
			}
		}
		return nil
	}
	writer := gen.NewWriter(dir)
	if err := writer.Write(ctx, files); err != nil {
		return err
	}
	m := writer.Metrics()
	log.Info("controllers written", "dir", dir, "files", m.FilesWritten, "bytes", m.TotalBytes)
	return nil
}

// jobs resolves the named models, or all models when none is named.
func (o *controllerOptions) jobs(catalog *load.Catalog, models []string) ([]controller.Job, error) {
	if len(models) == 0 {
		models = catalog.Names()
	}
	var parent gen.Model
	if o.parent != "" {
		p, err := lookup(catalog, o.parent)
		if err != nil {
			return nil, err
		}
		parent = p
	}
	jobs := make([]controller.Job, 0, len(models))
	for _, name := range models {
		s, err := lookup(catalog, name)
		if err != nil {
			return nil, err
		}
		if parent != nil && s.QualifiedName() == parent.QualifiedName() {
			continue
		}
		jobs = append(jobs, controller.Job{Model: s, Parent: parent})
	}
	return jobs, nil
}

func (o *controllerOptions) projectDir(cfg *gen.Config) string {
	switch {
	case o.out != "":
		return o.out
	case cfg.Target != "":
		return cfg.Target
	default:
		return "."
	}
}

func lookup(catalog *load.Catalog, name string) (*load.Schema, error) {
	s, ok := catalog.Lookup(name)
	if !ok {
		return nil, &load.SchemaError{Model: name, Message: "model not found"}
	}
	return s, nil
}
