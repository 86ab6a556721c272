package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/weldgen/weld/gen"
	"github.com/weldgen/weld/loader"
	"github.com/weldgen/weld/validate"
)

var (
	genOutput string
	genDryRun bool
	genStubs  bool
	genClean  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [bindings.yaml]",
	Short: "Generate callback wrappers, fast-call pairs, and templates",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "./generated", "Output directory")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	generateCmd.Flags().BoolVar(&genStubs, "stubs", false, "Also scaffold native function stubs (never overwrites)")
	generateCmd.Flags().BoolVar(&genClean, "clean", false, "Remove previously generated files first")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	if !quiet {
		fmt.Printf("Generating from %s\n", defPath)
	}

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

	if genClean {
		if !quiet {
			fmt.Printf("Cleaning %s\n", genOutput)
		}
		if !genDryRun {
			os.RemoveAll(genOutput)
		}
	}

	ctx := gen.NewContext(def, plans, genOutput, defPath)
	ctx.DryRun = genDryRun
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()
		ctx.Logger = logger
	}

	var allFiles []*gen.OutputFile
	for _, name := range gen.DefaultGenerators(genStubs) {
		g, ok := gen.Get(name)
		if !ok {
			return fmt.Errorf("generator %s is not registered", name)
		}

		if verbose {
			fmt.Printf("  Running generator: %s\n", g.Name())
		}

		files, err := g.Generate(ctx)
		if err != nil {
			return fmt.Errorf("generator %s failed: %w", name, err)
		}
		allFiles = append(allFiles, files...)
	}

	var written, skipped int
	for _, f := range allFiles {
		outPath := filepath.Join(genOutput, f.Path)

		// Scaffold files are only written when they don't already exist.
		if f.Scaffold {
			if _, err := os.Stat(outPath); err == nil {
				skipped++
				if verbose {
					fmt.Printf("  Scaffold exists, skipped: %s\n", outPath)
				}
				continue
			}
		}

		if genDryRun {
			fmt.Printf("  Would write: %s\n", outPath)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, f.Content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		written++
		if verbose {
			fmt.Printf("  Wrote: %s\n", outPath)
		}
	}

	if !quiet {
		skippedMsg := ""
		if skipped > 0 {
			skippedMsg = fmt.Sprintf(", %d scaffold file(s) preserved", skipped)
		}
		fmt.Printf("Generated %d files in %s%s\n", written, genOutput, skippedMsg)
	}
	return nil
}
