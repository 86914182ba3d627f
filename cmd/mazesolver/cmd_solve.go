package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saaninko/maze-solver/maze"
	"github.com/saaninko/maze-solver/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze.txt>",
	Short: "Solve one maze file, retrying over the move-budget ladder",
	Long: `Solve reads the maze, pairs every entry with every exit, and hunts for the
shortest route within each configured move budget. The first tier that
yields a route wins and the maze is printed with the route drawn in '█'
glyphs; a tier without a route reports the miss and the next tier runs.
When every tier misses the command exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveFile(cmd.Context(), args[0], cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

// solveFile runs the budget ladder over one maze file, printing either the
// first solved rendering or a miss line per exhausted tier.
func solveFile(ctx context.Context, path string, out io.Writer) error {
	m, err := maze.ReadFile(path)
	if err != nil {
		return err
	}
	slog.Info("maze loaded",
		"run_id", runID,
		"path", path,
		"height", m.Height(),
		"width", m.Width())

	for _, budget := range cfg.Tiers {
		best, rendered, err := solver.Solve(m, budget,
			solver.WithContext(ctx),
			solver.WithWorkers(cfg.Workers))
		if err != nil {
			return err
		}

		if len(best) > 0 {
			moves := countVisited(rendered) - 2
			fmt.Fprintln(out, paint(styles.Solved,
				fmt.Sprintf("Found solution with <= %d (%d moves):", budget, moves)))
			fmt.Fprintln(out, strings.Join(rendered, "\n"))
			slog.Info("maze solved",
				"run_id", runID,
				"budget", budget,
				"route_cells", len(best))
			return nil
		}

		fmt.Fprintln(out, paint(styles.Missed,
			fmt.Sprintf("No solution found with <= %d moves.", budget)))
		slog.Debug("budget tier exhausted", "run_id", runID, "budget", budget)
	}

	return fmt.Errorf("no solution within any budget tier %v", cfg.Tiers)
}

// countVisited totals the route glyphs across the rendered rows. The move
// count reported next to a solution is that total minus two, leaving the
// entry and exit cells out.
func countVisited(rows []string) int {
	total := 0
	for _, row := range rows {
		total += strings.Count(row, string(maze.Visited))
	}
	return total
}
