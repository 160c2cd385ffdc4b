package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZSeanYves/tmplpack/internal/generator"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates the current configuration would pack",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList prints the name of every template that matches the configured
// directory and extension filter, then a count.
//
// Returns:
//   - error: An error if the configuration or the directory cannot be read.
func runList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := generator.Collect(cfg)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Println(e.Name)
	}
	fmt.Printf("%d templates in %s\n", len(entries), cfg.Templates.Dir)
	return nil
}
