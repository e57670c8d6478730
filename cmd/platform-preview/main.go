// Package main provides the platform-preview command, which extracts
// platform_info preview data from a platform YAML or Kubernetes ConfigMap
// YAML and writes it as JSON for consumption by the test harness.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/txn2/platform-preview/pkg/preview"
)

const usage = "Usage: platform-preview <config-path> <output-path>"

func main() {
	os.Exit(execute(os.Args[1:], os.Stderr))
}

// execute validates the arguments, runs the extraction, and returns the
// process exit code.
func execute(args []string, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	if err := run(args[0], args[1]); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(configPath, outputPath string) error {
	doc, err := preview.Load(configPath)
	if err != nil {
		return err
	}
	if err := preview.Write(outputPath, preview.Extract(doc)); err != nil {
		return err
	}
	slog.Info("preview data written", "path", outputPath)
	return nil
}
