package cmd

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "weld",
	Short: "Script-engine glue code generator",
	Long:  "weld generates engine callback wrappers, direct-call fast paths, and native scaffolding from a YAML bindings definition.",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}

func Execute() error {
	return rootCmd.Execute()
}
