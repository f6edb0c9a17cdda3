// Package component adds ready-made content to an existing mod project.
package component

import (
	"fmt"
	"sort"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/project"
)

// Options are the inputs shared by all components.
type Options struct {
	// ProjectDir is the project root.
	ProjectDir string
	// Geometry is the path of a .geo.json model.
	Geometry string
	// Texture is the path of a .png texture.
	Texture string
	// Identifier is the namespaced item identifier, e.g. "demo:ruby_helmet".
	Identifier string
}

// Generator writes one component into a project.
type Generator func(info *project.ReleaseInfo, opts Options) ([]string, error)

var registry = map[string]Generator{
	Item3D: generate3DItem,
}

// Names returns the registered component names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Add writes the component called name into the project and returns the
// created files relative to the project root.
func Add(name string, opts Options) ([]string, error) {
	gen, ok := registry[name]
	if !ok {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("component %q does not exist", name), "",
			fmt.Sprintf("available components: %v", Names()))
	}

	info, err := project.ReadReleaseInfo(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	files, err := gen(info, opts)
	if err != nil {
		return nil, fmt.Errorf("creating %s component %s: %w", name, opts.Identifier, err)
	}
	output.Info("component created", "component", name, "identifier", opts.Identifier, "files", len(files))
	return files, nil
}
