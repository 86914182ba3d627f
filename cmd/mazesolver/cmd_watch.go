package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <maze.txt>",
	Short: "Re-solve a maze file every time it changes",
	Long: `Watch solves the maze once, then keeps watching the file and re-runs the
full budget ladder after every save. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchFile(cmd.Context(), args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchFile re-runs the budget ladder whenever the maze file is written.
// Solve failures are reported and watching continues: the file may be
// mid-edit and the next save can fix it.
func watchFile(ctx context.Context, path string, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors often replace the
	// file on save, which would orphan a watch on the path itself.
	dir := filepath.Dir(path)
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	slog.Info("watching for changes", "run_id", runID, "path", path)

	// First pass before any edit arrives.
	if err = solveFile(ctx, path, out); err != nil {
		slog.Warn("solve failed", "run_id", runID, "error", err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			slog.Debug("maze file changed", "run_id", runID, "op", event.Op.String())
			if err = solveFile(ctx, path, out); err != nil {
				slog.Warn("solve failed", "run_id", runID, "error", err)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "run_id", runID, "error", werr)

		case <-ctx.Done():
			slog.Info("watch stopped", "run_id", runID)
			return nil
		}
	}
}
