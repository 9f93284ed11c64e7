// crudgen generates Laravel resource controllers from model schemas.
//
// Usage:
//
//	crudgen controller BlogPost --schema models.yaml
//	crudgen controller Comment --schema models.yaml --parent BlogPost --api
//	crudgen tables --driver mysql --dsn 'user:pass@/blog'
//	crudgen watch --schema models.yaml
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	level := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(log, level).ExecuteContext(ctx); err != nil {
		log.Error("crudgen failed", "error", err)
		os.Exit(1)
	}
}

// newRootCmd returns the crudgen command tree. --verbose lowers level to debug.
func newRootCmd(log *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "crudgen",
		Short:         "Generate Laravel resource controllers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
	root.AddCommand(
		newControllerCmd(log),
		newTablesCmd(log),
		newWatchCmd(log),
		newVersionCmd(),
	)
	return root
}
