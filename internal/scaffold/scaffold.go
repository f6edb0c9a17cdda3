package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/fsutil"
	"github.com/AiYo-Studio/emod-cli/internal/manifest"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/project"
	"github.com/AiYo-Studio/emod-cli/internal/template"
)

// Options describes a project to create.
type Options struct {
	// Name is the mod name and the project directory name.
	Name string
	// ParentDir receives the project directory. Defaults to ".".
	ParentDir string
	// TemplateDir is the template tree to materialize.
	TemplateDir string
}

// Result holds the outcome of project creation.
type Result struct {
	ProjectDir string
	Info       *project.Info
	Template   *template.Result
	Warnings   []string
}

// Create materializes a new project from opts.TemplateDir. If anything
// fails before materialization starts, the project directory is removed.
// Once materialization has started nothing is rolled back.
func Create(opts Options) (*Result, error) {
	if err := validateName(opts.Name); err != nil {
		return nil, err
	}
	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	projectDir := filepath.Join(parent, opts.Name)

	if _, err := os.Lstat(projectDir); err == nil {
		return nil, oerrors.NewInvalidDataError("project directory already exists", projectDir)
	}

	engine, err := template.Load(opts.TemplateDir)
	if err != nil {
		return nil, err
	}

	info := project.NewInfo(opts.Name)
	output.Info("creating project", "name", info.Name, "identifier", info.LowerName)
	for name, value := range info.Bindings() {
		engine.SetVariable(name, value)
	}
	if err := engine.ValidateVariables(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(parent, 0755); err != nil {
		return nil, oerrors.WrapIO(err, fmt.Sprintf("creating %s", parent))
	}
	if err := copyTemplate(opts.TemplateDir, projectDir); err != nil {
		_ = os.RemoveAll(projectDir)
		return nil, err
	}

	tmplResult, err := engine.ProcessDirectory(projectDir)
	if err != nil {
		return nil, fmt.Errorf("materializing %s: %w", projectDir, err)
	}

	result := &Result{
		ProjectDir: projectDir,
		Info:       info,
		Template:   tmplResult,
	}
	for _, p := range tmplResult.Unresolved {
		result.Warnings = append(result.Warnings, "unresolved placeholder "+p.String())
	}
	result.Warnings = append(result.Warnings, validateProject(projectDir)...)

	return result, nil
}

// validateName rejects names that cannot be a single directory name.
func validateName(name string) error {
	switch {
	case name == "":
		return oerrors.NewInvalidDataError("project name is required", "")
	case name == "." || name == ".." || strings.ContainsAny(name, `/\`):
		return oerrors.NewInvalidDataError(fmt.Sprintf("invalid project name %q", name), "")
	}
	return nil
}

// copyTemplate copies the template tree into projectDir without the
// template descriptor.
func copyTemplate(templateDir, projectDir string) error {
	if err := fsutil.CopyDir(templateDir, projectDir); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("copying template into %s", projectDir))
	}
	err := os.Remove(filepath.Join(projectDir, template.DescriptorFile))
	if err != nil && !os.IsNotExist(err) {
		return oerrors.WrapIO(err, "removing template descriptor")
	}
	return nil
}

// validateProject checks the generated manifests and returns warnings.
func validateProject(dir string) []string {
	var warnings []string

	check := func(schema manifest.Schema, path string) {
		res, err := manifest.ValidateFile(schema, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not validate %s: %v", rel(dir, path), err))
			return
		}
		for _, issue := range res.Issues {
			warnings = append(warnings, rel(dir, path)+": "+issue.String())
		}
	}

	check(manifest.SchemaPackReferences, filepath.Join(dir, project.WorldBehaviorPacksFile))
	check(manifest.SchemaPackReferences, filepath.Join(dir, project.WorldResourcePacksFile))

	info, err := project.ReadReleaseInfo(dir)
	if err != nil {
		return warnings
	}
	for _, packDir := range []string{info.BehaviorPackPath(dir), info.ResourcePackPath(dir)} {
		if !fsutil.Exists(packDir) {
			warnings = append(warnings,
				fmt.Sprintf("pack directory %s not found; release will fail", rel(dir, packDir)))
			continue
		}
		check(manifest.SchemaPackManifest, filepath.Join(packDir, project.PackManifestFile))
	}
	return warnings
}

func rel(base, path string) string {
	r, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(r)
}
