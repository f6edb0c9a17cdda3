package template

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/fsutil"
	"github.com/AiYo-Studio/emod-cli/internal/output"
)

// MissingVariableError reports a required variable with no binding.
type MissingVariableError struct {
	Name        string
	Description string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("missing required variable %s (%s)", e.Name, e.Description)
}

// Is makes MissingVariableError match ErrMissingVariable.
func (e *MissingVariableError) Is(target error) bool {
	return target == oerrors.ErrMissingVariable
}

// Engine holds a loaded descriptor and the caller's variable bindings.
type Engine struct {
	config *Config
	vars   map[string]string
}

// Load reads the descriptor from templateDir.
func Load(templateDir string) (*Engine, error) {
	cfg, err := LoadConfig(templateDir)
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// New creates an Engine for an already parsed descriptor.
func New(cfg *Config) *Engine {
	return &Engine{
		config: cfg,
		vars:   make(map[string]string),
	}
}

// Config returns the descriptor the engine was loaded with.
func (e *Engine) Config() *Config {
	return e.config
}

// SetVariable binds name to value, replacing any previous binding.
func (e *Engine) SetVariable(name, value string) {
	e.vars[name] = value
}

// Variable returns the value bound to name.
func (e *Engine) Variable(name string) (string, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// ValidateVariables fails with a *MissingVariableError for the first
// required variable (in name order) that has no binding.
func (e *Engine) ValidateVariables() error {
	for _, name := range e.config.RequiredVariables() {
		if _, ok := e.vars[name]; !ok {
			return &MissingVariableError{
				Name:        name,
				Description: e.config.Variables[name].Description,
			}
		}
	}
	return nil
}

// Rename records one applied rename rule.
type Rename struct {
	From string
	To   string
}

// Placeholder is a token left unresolved after processing.
type Placeholder struct {
	Path string // relative to the processed directory
	Name string
}

func (p Placeholder) String() string {
	return p.Path + ":" + p.Name
}

// Result summarizes a ProcessDirectory run.
type Result struct {
	// Substituted lists files rewritten by the substitution phase.
	Substituted []string
	// Renamed lists the rules that applied, in application order.
	Renamed []Rename
	// Unresolved lists placeholders still present after processing.
	Unresolved []Placeholder
}

// ProcessDirectory materializes dir in place: variables are validated
// before anything is touched, then placeholders are substituted, renames
// applied and the result scanned for leftovers. Leftover placeholders are
// logged and returned in the Result; they do not fail the call.
func (e *Engine) ProcessDirectory(dir string) (*Result, error) {
	if err := e.ValidateVariables(); err != nil {
		return nil, err
	}

	result := &Result{}

	substituted, err := e.replaceInFiles(dir)
	if err != nil {
		return result, err
	}
	result.Substituted = substituted

	renamed, err := e.applyRenames(dir)
	result.Renamed = renamed
	if err != nil {
		return result, err
	}

	unresolved, err := e.findUnresolved(dir)
	if err != nil {
		output.Warn("could not verify placeholders", "dir", dir, "error", err)
		return result, nil
	}
	result.Unresolved = unresolved
	for _, p := range unresolved {
		output.Warn("unresolved placeholder", "file", p.Path, "name", p.Name)
	}

	return result, nil
}

// replaceInFiles rewrites every eligible file whose content changes.
func (e *Engine) replaceInFiles(dir string) ([]string, error) {
	files, err := fsutil.FindFilesByExtension(dir, e.config.Process.FileExtensions)
	if err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("scanning %s", dir))
	}

	var changed []string
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return changed, oerrors.WrapIO(err, fmt.Sprintf("reading %s", path))
		}

		updated := substitute(content, e.vars)
		if bytes.Equal(updated, content) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return changed, oerrors.WrapIO(err, fmt.Sprintf("reading %s", path))
		}
		if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
			return changed, oerrors.WrapIO(err, fmt.Sprintf("writing %s", path))
		}

		rel := relPath(dir, path)
		changed = append(changed, rel)
		output.Debug("processed file", "file", rel)
	}
	return changed, nil
}

// applyRenames applies rename rules last-declared first. Rules whose
// source does not exist are skipped.
func (e *Engine) applyRenames(dir string) ([]Rename, error) {
	var applied []Rename
	for i := len(e.config.Renames) - 1; i >= 0; i-- {
		rule := e.config.Renames[i]
		from := filepath.Join(dir, filepath.FromSlash(rule.From))

		if _, err := os.Lstat(from); err != nil {
			if os.IsNotExist(err) {
				output.Debug("rename source absent, skipping", "from", rule.From)
				continue
			}
			return applied, oerrors.WrapIO(err, fmt.Sprintf("checking %s", from))
		}

		target := substituteString(rule.To, e.vars)
		to := filepath.Join(dir, filepath.FromSlash(target))
		if !within(dir, to) {
			return applied, oerrors.NewConfigError(
				fmt.Sprintf("rename target %q escapes the project directory", target), DescriptorFile, nil)
		}

		if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
			return applied, oerrors.WrapIO(err, fmt.Sprintf("creating parent of %s", to))
		}
		if err := os.Rename(from, to); err != nil {
			return applied, oerrors.WrapIO(err, fmt.Sprintf("renaming %s to %s", rule.From, target))
		}

		applied = append(applied, Rename{From: rule.From, To: target})
		output.Info("renamed", "from", rule.From, "to", target)
	}
	return applied, nil
}

// findUnresolved scans eligible files for remaining placeholders.
func (e *Engine) findUnresolved(dir string) ([]Placeholder, error) {
	files, err := fsutil.FindFilesByExtension(dir, e.config.Process.FileExtensions)
	if err != nil {
		return nil, err
	}

	var found []Placeholder
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return found, err
		}
		for _, name := range findPlaceholders(content) {
			found = append(found, Placeholder{Path: relPath(dir, path), Name: name})
		}
	}
	return found, nil
}

func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// within reports whether path is base or lies beneath it.
func within(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
