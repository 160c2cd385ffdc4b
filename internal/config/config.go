package config

import (
	"fmt"
	"go/token"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure parsed from tmplpack.yaml.
// It defines the project metadata, the template source directory, the generated
// output settings, and logging behavior.
type Config struct {
	// Project contains metadata about the project (name).
	Project ProjectConfig `yaml:"project"`
	// Templates describes the source directory to pack.
	Templates TemplatesConfig `yaml:"templates"`
	// Output describes the generated Go source file.
	Output OutputConfig `yaml:"output"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// ProjectConfig contains basic project metadata.
type ProjectConfig struct {
	// Name is the name of the project.
	Name string `yaml:"name"`
}

// TemplatesConfig describes where template files are read from.
type TemplatesConfig struct {
	// Dir is the directory scanned for template files.
	Dir string `yaml:"dir"`
	// Ext is the filename suffix that selects which files are packed (e.g. ".html").
	Ext string `yaml:"ext"`
}

// OutputConfig describes the generated source file.
type OutputConfig struct {
	// Path is the file the generator writes, overwritten on every run.
	Path string `yaml:"path"`
	// Package is the package clause of the generated file.
	Package string `yaml:"package"`
	// Func is the name of the generated lookup function. Must be exported.
	Func string `yaml:"func"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// Load reads and parses the configuration file at path, applies defaults,
// and validates the result.
//
// Returns:
//   - *Config: The loaded configuration.
//   - error: An error if the file cannot be read, parsed, or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - cfg: The Config object to modify.
func ApplyDefaults(cfg *Config) {
	if cfg.Templates.Dir == "" {
		cfg.Templates.Dir = "templates"
	}
	if cfg.Templates.Ext == "" {
		cfg.Templates.Ext = ".html"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "templates/templates_gen.go"
	}
	if cfg.Output.Package == "" {
		cfg.Output.Package = "templates"
	}
	if cfg.Output.Func == "" {
		cfg.Output.Func = "LoadTemplate"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors, such as a malformed extension
// filter or an invalid identifier for the generated function.
//
// Parameters:
//   - cfg: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(cfg *Config) error {
	if !strings.HasPrefix(cfg.Templates.Ext, ".") {
		return fmt.Errorf("templates.ext %q must start with a dot (e.g. \".html\")", cfg.Templates.Ext)
	}

	if !token.IsIdentifier(cfg.Output.Package) {
		return fmt.Errorf("output.package %q is not a valid Go package name", cfg.Output.Package)
	}

	if !token.IsIdentifier(cfg.Output.Func) {
		return fmt.Errorf("output.func %q is not a valid Go identifier", cfg.Output.Func)
	}
	if r, _ := utf8.DecodeRuneInString(cfg.Output.Func); !unicode.IsUpper(r) {
		return fmt.Errorf("output.func %q must be exported (start with an upper-case letter)", cfg.Output.Func)
	}

	if cfg.Logging.Level != "" {
		switch strings.ToLower(cfg.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", cfg.Logging.Level)
		}
	}

	return nil
}
