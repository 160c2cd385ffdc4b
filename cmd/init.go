package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/ZSeanYves/tmplpack/internal/assets"
	"github.com/ZSeanYves/tmplpack/internal/templates"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Initialize a new tmplpack project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		projectName := args[0]
		if err := runInit(projectName); err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit scaffolds a new project directory with the specified name.
// It creates the configuration file, a templates directory seeded with
// starter templates, and a .gitignore.
//
// Parameters:
//   - projectName: The name of the project (and directory) to create.
//
// Returns:
//   - error: An error if the directory already exists or file creation fails.
func runInit(projectName string) error {
	fmt.Printf("Initializing project %s...\n", projectName)

	if _, err := os.Stat(projectName); !os.IsNotExist(err) {
		return fmt.Errorf("directory %s already exists", projectName)
	}

	if err := os.Mkdir(projectName, 0755); err != nil {
		return err
	}

	// 1. Create tmplpack.yaml
	if err := generateFileFromTemplate("tmplpack.yaml.tmpl", filepath.Join(projectName, "tmplpack.yaml"), struct{ ProjectName string }{projectName}); err != nil {
		return err
	}

	// 2. Create .gitignore
	if err := generateFileFromTemplate("gitignore.tmpl", filepath.Join(projectName, ".gitignore"), nil); err != nil {
		return err
	}

	// 3. Seed the templates directory with the starter templates.
	templatesDir := filepath.Join(projectName, "templates")
	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		return err
	}
	for name, content := range assets.AssetsMap {
		if err := os.WriteFile(filepath.Join(templatesDir, name), []byte(content), 0644); err != nil {
			return err
		}
	}

	fmt.Printf("Project %s initialized successfully!\n", projectName)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", projectName)
	fmt.Println("  tmplpack generate  # (Run this to pack the templates)")
	fmt.Println("  tmplpack check     # (Run this in CI to catch stale output)")

	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
//
// Parameters:
//   - tmplName: The name of the template file to use.
//   - destPath: The path where the generated file should be written.
//   - data: The data object to pass to the template.
//
// Returns:
//   - error: An error if the template cannot be read or executed.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	content, err := templates.Get(tmplName)
	if err != nil {
		return err
	}

	t, err := template.New(tmplName).Parse(content)
	if err != nil {
		return err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return t.Execute(f, data)
}
