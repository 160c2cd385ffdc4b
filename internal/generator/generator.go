package generator

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/ZSeanYves/tmplpack/internal/config"
	"github.com/ZSeanYves/tmplpack/internal/templates"
)

// ErrTemplateDirMissing is returned when the configured template directory
// does not exist. The caller reports it and no output is written.
var ErrTemplateDirMissing = errors.New("template directory not found")

// Entry is one packed template: the file's base name and its content escaped
// for embedding in a double-quoted string literal.
type Entry struct {
	Name    string
	Escaped string
}

// Result summarizes a completed generation run.
type Result struct {
	// Count is the number of templates packed into the output.
	Count int
	// OutputPath is the file that was written.
	OutputPath string
	// Fingerprint identifies the packed content (stable across runs on
	// unchanged input).
	Fingerprint string
}

// Collect scans the configured template directory and returns one Entry per
// file matching the extension filter, in directory order (os.ReadDir sorts by
// filename, so the result is deterministic).
//
// Any unreadable file aborts the run: generation is all-or-nothing, a partial
// pack would silently drop templates from the generated lookup.
//
// Parameters:
//   - cfg: The loaded project configuration.
//
// Returns:
//   - []Entry: The escaped entries, one per matched file.
//   - error: ErrTemplateDirMissing (wrapped with the path) if the directory
//     is absent, or a wrapped read error.
func Collect(cfg *config.Config) ([]Entry, error) {
	dir := cfg.Templates.Dir
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateDirMissing, dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), cfg.Templates.Ext) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", de.Name(), err)
		}
		slog.Debug("packing template", "name", de.Name(), "bytes", len(raw))
		entries = append(entries, Entry{
			Name:    Escape(de.Name()),
			Escaped: Escape(string(raw)),
		})
	}
	return entries, nil
}

// Render produces the full generated source file in memory.
//
// Parameters:
//   - cfg: The loaded project configuration.
//
// Returns:
//   - []byte: The rendered file content.
//   - []Entry: The entries it was rendered from.
//   - error: An error if collection or template execution fails.
func Render(cfg *config.Config) ([]byte, []Entry, error) {
	entries, err := Collect(cfg)
	if err != nil {
		return nil, nil, err
	}

	tmplContent, err := templates.Get("lookup.go.tmpl")
	if err != nil {
		return nil, nil, err
	}
	t, err := template.New("lookup.go.tmpl").Parse(tmplContent)
	if err != nil {
		return nil, nil, err
	}

	data := struct {
		Dir         string
		Ext         string
		Package     string
		Func        string
		Fingerprint string
		Entries     []Entry
	}{
		Dir:         cfg.Templates.Dir,
		Ext:         cfg.Templates.Ext,
		Package:     cfg.Output.Package,
		Func:        cfg.Output.Func,
		Fingerprint: Fingerprint(entries),
		Entries:     entries,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), entries, nil
}

// Generate runs the whole packing pass: collect, render, and overwrite the
// configured output file.
//
// Parameters:
//   - cfg: The loaded project configuration.
//
// Returns:
//   - *Result: A summary of the run.
//   - error: An error if any step fails. On error no output is written.
func Generate(cfg *config.Config) (*Result, error) {
	out, entries, err := Render(cfg)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(cfg.Output.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(cfg.Output.Path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.Output.Path, err)
	}

	return &Result{
		Count:       len(entries),
		OutputPath:  cfg.Output.Path,
		Fingerprint: Fingerprint(entries),
	}, nil
}

// Fingerprint derives a deterministic UUID from the packed entries. Two runs
// over identical input produce the same fingerprint, so the generated file
// header stays byte-stable.
func Fingerprint(entries []Entry) string {
	var payload bytes.Buffer
	for _, e := range entries {
		payload.WriteString(e.Name)
		payload.WriteByte(0)
		payload.WriteString(e.Escaped)
		payload.WriteByte(0)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, payload.Bytes()).String()
}
