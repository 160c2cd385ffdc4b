package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:      "defaults are valid",
			mutate:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "extension without dot",
			mutate:    func(c *Config) { c.Templates.Ext = "html" },
			wantError: "must start with a dot",
		},
		{
			name:      "invalid package name",
			mutate:    func(c *Config) { c.Output.Package = "9templates" },
			wantError: "not a valid Go package name",
		},
		{
			name:      "unexported func",
			mutate:    func(c *Config) { c.Output.Func = "loadTemplate" },
			wantError: "must be exported",
		},
		{
			name:      "func with space",
			mutate:    func(c *Config) { c.Output.Func = "Load Template" },
			wantError: "not a valid Go identifier",
		},
		{
			name:      "keyword as func",
			mutate:    func(c *Config) { c.Output.Func = "return" },
			wantError: "not a valid Go identifier",
		},
		{
			name:      "invalid logging level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantError: "invalid logging level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			ApplyDefaults(cfg)
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Errorf("Validate() = nil, want error containing %q", tt.wantError)
			} else if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantError)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Templates.Dir != "templates" {
		t.Errorf("Templates.Dir = %q, want %q", cfg.Templates.Dir, "templates")
	}
	if cfg.Templates.Ext != ".html" {
		t.Errorf("Templates.Ext = %q, want %q", cfg.Templates.Ext, ".html")
	}
	if cfg.Output.Path != "templates/templates_gen.go" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "templates/templates_gen.go")
	}
	if cfg.Output.Package != "templates" {
		t.Errorf("Output.Package = %q, want %q", cfg.Output.Package, "templates")
	}
	if cfg.Output.Func != "LoadTemplate" {
		t.Errorf("Output.Func = %q, want %q", cfg.Output.Func, "LoadTemplate")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Templates.Dir = "web/views"
	cfg.Templates.Ext = ".tpl"
	cfg.Output.Func = "View"
	ApplyDefaults(cfg)

	if cfg.Templates.Dir != "web/views" {
		t.Errorf("Templates.Dir = %q, want explicit value kept", cfg.Templates.Dir)
	}
	if cfg.Templates.Ext != ".tpl" {
		t.Errorf("Templates.Ext = %q, want explicit value kept", cfg.Templates.Ext)
	}
	if cfg.Output.Func != "View" {
		t.Errorf("Output.Func = %q, want explicit value kept", cfg.Output.Func)
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "tmplpack.yaml")
	content := `
project:
  name: mysite
templates:
  dir: web/views
  ext: .tpl
output:
  path: web/views/views_gen.go
  package: views
  func: View
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Project.Name != "mysite" {
		t.Errorf("Project.Name = %q, want %q", cfg.Project.Name, "mysite")
	}
	if cfg.Templates.Dir != "web/views" {
		t.Errorf("Templates.Dir = %q, want %q", cfg.Templates.Dir, "web/views")
	}
	if cfg.Output.Func != "View" {
		t.Errorf("Output.Func = %q, want %q", cfg.Output.Func, "View")
	}
	// Defaults still fill the sections the file omits.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want defaulted %q", cfg.Logging.Level, "info")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Load() = nil, want error for missing file")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "tmplpack.yaml")
	content := `
templates:
  ext: html
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "must start with a dot") {
		t.Errorf("Load() = %v, want extension validation error", err)
	}
}
