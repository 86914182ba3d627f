package main

import (
	"log/slog"
	"os"
)

// main is the entrypoint for the mazesolver CLI.
func main() {
	// Use a minimal logger until the configured one takes over.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Cobra handles argument parsing and prints the failure; the process
	// just carries the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
