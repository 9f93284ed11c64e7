package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/crudgen/compiler/gen"
)

// debounce groups the bursts of events editors emit on save.
const debounce = 200 * time.Millisecond

func newWatchCmd(log *slog.Logger) *cobra.Command {
	o := &controllerOptions{}
	cmd := &cobra.Command{
		Use:   "watch [model...]",
		Short: "Regenerate controllers when the schema or configuration changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			files := o.source.files()
			if len(files) == 0 {
				return gen.NewConfigError("schema", nil, "watch requires --schema or --config")
			}
			fw, err := newFileWatcher(log, files...)
			if err != nil {
				return err
			}
			defer fw.Close()
			regenerate := func() {
				if err := o.run(ctx, cmd.OutOrStdout(), log, args); err != nil {
					log.Error("generation failed", "error", err)
				}
			}
			regenerate()
			log.Info("watching for changes", "files", files)
			return fw.Run(ctx, regenerate)
		},
	}
	o.bind(cmd)
	return cmd
}

// fileWatcher reports changes of a set of files. Parent directories are
// watched so that files replaced by a rename are still seen.
type fileWatcher struct {
	log     *slog.Logger
	watcher *fsnotify.Watcher
	files   map[string]struct{}
}

func newFileWatcher(log *slog.Logger, paths ...string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, gen.NewGenerationError("watch", "", "create watcher", err)
	}
	fw := &fileWatcher{log: log, watcher: w, files: make(map[string]struct{})}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, gen.NewGenerationError("watch", p, "resolve path", err)
		}
		fw.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		dirs[dir] = struct{}{}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, gen.NewGenerationError("watch", dir, "watch directory", err)
		}
	}
	return fw, nil
}

// Run calls onChange after a watched file was written or created, until
// ctx is done.
func (fw *fileWatcher) Run(ctx context.Context, onChange func()) error {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if _, watched := fw.files[filepath.Clean(ev.Name)]; !watched {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fw.log.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
			pending = time.After(debounce)
		case <-pending:
			pending = nil
			onChange()
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watch error", "error", err)
		}
	}
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	return fw.watcher.Close()
}
