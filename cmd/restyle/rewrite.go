package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yacobolo/restyle"
	"github.com/yacobolo/restyle/internal/report"
)

var rewriteCmd = &cobra.Command{
	Use:     "rewrite",
	Aliases: []string{"run"},
	Short:   "Rewrite utility classes in the target file",
	Long: `Load the target file, apply the built-in rules in order, collapse runs
of spaces, and overwrite the file. Prints whether the text changed.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runRewrite,
}

func init() {
	f := rewriteCmd.Flags()
	f.Bool("dry-run", false, "Compute the result without writing the file")
	f.Bool("diff", false, "Print a unified diff of the changes")
	f.String("output-format", "text", "Output format: text|json")
}

func runRewrite(cmd *cobra.Command, _ []string) error {
	settings := buildRewriteSettings()
	if settings.Config.Path == "" {
		return fmt.Errorf("no target file: set --path, RESTYLE_PATH, or path in %s", configFileName(cmd))
	}

	ctx := withLogger(cmd.Context(), settings)

	result, err := restyle.Rewrite(ctx, settings.Config)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("path", result.Path).
		Bool("modified", result.Modified).
		Bool("written", result.Written).
		Msg("rewrite complete")

	if settings.Quiet {
		return nil
	}

	return restyle.WriteOutput(cmd.OutOrStdout(), result, settings.OutputFormat, restyle.OutputOptions{
		ShowDiff:  settings.ShowDiff,
		UseColors: report.ShouldUseColors(cmd.OutOrStdout(), settings.Color),
	})
}

func configFileName(cmd *cobra.Command) string {
	if name, _ := cmd.Flags().GetString("config"); name != "" {
		return name
	}
	return ".restyle.yaml"
}
