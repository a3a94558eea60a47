package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twbundle",
	Short: "Deterministic Tailwind-style utility-class-to-CSS compiler",
	Long: `Compile a set of utility classes into a single synthesized class
name plus the CSS rules that implement them. Same input always
produces the same output class name and CSS.`,
	// Default behavior: run bundle when no subcommand is given, taking
	// class tokens from the positional arguments.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBundle(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except the result")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".twbundle.yaml", "Config file path")

	rootCmd.AddCommand(bundleCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
