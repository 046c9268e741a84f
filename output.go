package restyle

import (
	"io"

	"github.com/yacobolo/restyle/internal/report"
)

// OutputFormat represents the result output format
type OutputFormat string

const (
	// OutputText prints the single "Text was modified" line (default)
	OutputText OutputFormat = "text"
	// OutputJSON prints one JSON object describing the run (tooling integration)
	OutputJSON OutputFormat = "json"
)

// OutputOptions controls how a result is written
type OutputOptions struct {
	ShowDiff  bool // Print a unified diff before the status line (text only)
	UseColors bool
}

// DetermineOutputFormat selects the output format from the requested name.
// Unknown names fall back to text.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteOutput writes the rewrite result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts OutputOptions) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)

	default:
		reporter := report.NewReporter(w, opts.UseColors)
		if opts.ShowDiff {
			if err := reporter.PrintDiff(result.Path, result.Original, result.Final); err != nil {
				return err
			}
		}
		reporter.PrintStatus(result.Modified, result.DryRun)
		return nil
	}
}
