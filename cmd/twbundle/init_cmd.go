package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twbundle.yaml config file",
	Long:  `Create a .twbundle.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twbundle.yaml"); err == nil && !force {
			return fmt.Errorf(".twbundle.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twbundle.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twbundle.yaml")
		return nil
	},
}

const defaultConfig = `# twbundle configuration
# Shared settings
verbose: false

# Bundle settings
bundle:
  naming: hash              # hash | readable | camel
  color-mode: oklch         # oklch | hex | hsl | var
  color-mix: false
  output: pretty            # pretty | compact
  css-variables: reference  # reference | inline
  unknown-classes: warn     # warn | error | ignore

# Scan settings
scan:
  paths:
    - "**/*.templ"
    - "**/*.tsx"
    - "**/*.html"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
