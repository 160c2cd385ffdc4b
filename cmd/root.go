package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ZSeanYves/tmplpack/internal/config"
	"github.com/ZSeanYves/tmplpack/pkg/log"
)

// cfgFile is the configuration file path, settable via the --config flag.
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tmplpack",
	Short: "A tool to pack template files into generated Go source",
	Long: `tmplpack is a build-time CLI that reads a directory of template files,
escapes their contents, and generates a Go source file containing a single
lookup function mapping template names to their contents.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "tmplpack.yaml", "Path to the configuration file")
}

// loadConfig reads the configuration file named by --config and initializes
// logging from its logging section.
//
// Returns:
//   - *config.Config: The loaded configuration.
//   - error: An error if loading, validation, or logger setup fails.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return nil, err
	}
	return cfg, nil
}
