package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "restyle",
	Short: "Rewrite utility-class strings in a source file to a simpler style",
	Long: `Apply an ordered set of literal and pattern rules to one file,
collapse runs of spaces, and write the result back to the same path.`,
	// Default behavior: run rewrite when no subcommand is given.
	// We must call loadConfig here because PreRunE of rewriteCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runRewrite(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".restyle.yaml", "Config file path")
	rootCmd.PersistentFlags().String("path", "", "File to rewrite")
	rootCmd.PersistentFlags().Bool("glob", false, "Treat --path as a doublestar pattern matching exactly one file")
	rootCmd.PersistentFlags().String("encoding", "utf-8", "Text encoding of the file")

	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
