package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weldgen/weld/gen"
	"github.com/weldgen/weld/loader"
	"github.com/weldgen/weld/validate"
)

var planCmd = &cobra.Command{
	Use:   "plan [bindings.yaml]",
	Short: "Show per-function path verdicts without generating",
	Long:  "Classifies every function and prints its verdict (slow-only or dual-path) along with the recorded reason whenever a requested fast path was refused.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	def, err := loader.LoadBindingsDefinition(defPath)
	if err != nil {
		return fmt.Errorf("loading bindings definition: %w", err)
	}

	result := validate.Validate(def)
	if !result.IsValid() {
		return fmt.Errorf("validation failed:\n%s", result.Error())
	}

	plans, err := gen.BuildPlans(def)
	if err != nil {
		return fmt.Errorf("planning: %w", err)
	}

	fmt.Printf("%s v%s: %d function(s)\n", def.Bindings.Name, def.Bindings.Version, len(plans))
	for _, p := range plans {
		fmt.Printf("  %-24s %s\n", p.Fn.EngineName(), p.Verdict)
		if p.Reason != "" {
			fmt.Printf("    fast path skipped: %s\n", p.Reason)
		}
		if verbose {
			for _, param := range p.Params {
				fmt.Printf("    param %-16s %s\n", param.Name, param.Class)
			}
			fmt.Printf("    return %s\n", p.Return)
			if p.State != nil {
				fmt.Printf("    state %s (%s)\n", p.State.Type.Name, p.State.Mode)
			}
		}
	}
	return nil
}
