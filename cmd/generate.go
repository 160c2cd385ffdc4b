package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZSeanYves/tmplpack/internal/generator"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the template lookup source file from tmplpack.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the configuration and executes one full packing pass.
// A missing template directory aborts the run before anything is written.
//
// Returns:
//   - error: An error if generation fails at any step.
func runGenerate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := generator.Generate(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %s with %d templates.\n", res.OutputPath, res.Count)
	return nil
}
