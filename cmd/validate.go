package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weldgen/weld/loader"
	"github.com/weldgen/weld/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [bindings.yaml]",
	Short: "Check a bindings definition without generating",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	if !quiet {
		fmt.Printf("Validating %s\n", defPath)
	}

	def, err := loader.LoadBindingsDefinition(defPath)
	if err != nil {
		return fmt.Errorf("loading bindings definition: %w", err)
	}

	if verbose {
		fmt.Printf("  Bindings: %s v%s (package %s)\n", def.Bindings.Name, def.Bindings.Version, def.Bindings.Package)
		fmt.Printf("  Functions: %d\n", len(def.Functions))
	}

	result := validate.Validate(def)
	if !result.IsValid() {
		return fmt.Errorf("semantic validation failed:\n%s", result.Error())
	}

	if !quiet {
		fmt.Println("Validation passed.")
	}
	return nil
}
