package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .restyle.yaml config file",
	Long:  `Create a .restyle.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".restyle.yaml"); err == nil && !force {
			return fmt.Errorf(".restyle.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".restyle.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .restyle.yaml")
		return nil
	},
}

const defaultConfig = `# restyle configuration
# Docs: https://github.com/yacobolo/restyle

# File to rewrite. Brackets are part of the name unless glob is true.
path: "src/app/dashboard/pacientes/[id]/PatientDetailClient.tsx"
# Expand path as a doublestar pattern that must match exactly one file.
glob: false
encoding: utf-8
verbose: false

rewrite:
  dry-run: false
  diff: false
  output-format: text   # text | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
