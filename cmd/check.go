package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZSeanYves/tmplpack/internal/generator"
	"github.com/ZSeanYves/tmplpack/internal/ui"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the generated file is up to date",
	Long: `check re-renders the output in memory and compares it against the file
on disk. It exits non-zero when the file is missing or stale, which makes it
suitable as a CI gate.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck renders the expected output and compares it byte-for-byte with the
// generated file on disk. Generation is deterministic for unchanged input, so
// any difference means the sources and the output have diverged.
//
// Returns:
//   - error: An error if the output is missing, stale, or rendering fails.
func runCheck() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	want, entries, err := generator.Render(cfg)
	if err != nil {
		return err
	}

	got, err := os.ReadFile(cfg.Output.Path)
	if os.IsNotExist(err) {
		ui.PrintError("check", fmt.Sprintf("%s does not exist", cfg.Output.Path))
		return fmt.Errorf("output %s has not been generated (run 'tmplpack generate')", cfg.Output.Path)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cfg.Output.Path, err)
	}

	if !bytes.Equal(got, want) {
		ui.PrintError("check", fmt.Sprintf("%s is stale", cfg.Output.Path))
		return fmt.Errorf("output %s is out of date (run 'tmplpack generate')", cfg.Output.Path)
	}

	ui.PrintSuccess("check", fmt.Sprintf("%s is up to date (%d templates, %s)", cfg.Output.Path, len(entries), generator.Fingerprint(entries)))
	return nil
}
