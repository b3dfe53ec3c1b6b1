// Command argskema parses, documents and generates command-line schemas from
// YAML or JSON descriptions.
package main

import (
	"context"
	"log/slog"
	"os"
)

func main() {
	err := Run(context.Background(), os.Exit, os.Stdout, os.Stderr, os.Args[1:]...)
	if err != nil {
		slog.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}
