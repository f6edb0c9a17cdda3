package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
)

//go:embed all:scaffolds
var scaffoldFS embed.FS

// BuiltinTemplates returns the names of the embedded templates.
func BuiltinTemplates() []string {
	entries, err := fs.ReadDir(scaffoldFS, "scaffolds")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// ExtractBuiltin writes the embedded template name into dst, which must
// not exist yet.
func ExtractBuiltin(name, dst string) error {
	root := path.Join("scaffolds", name)
	if _, err := fs.Stat(scaffoldFS, root); err != nil || name == "" || name != path.Base(name) {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("built-in template %q does not exist", name), "",
			fmt.Sprintf("built-in templates: %v", BuiltinTemplates()))
	}

	sub, err := fs.Sub(scaffoldFS, root)
	if err != nil {
		return fmt.Errorf("opening built-in template %s: %w", name, err)
	}
	if err := os.CopyFS(dst, sub); err != nil {
		return oerrors.WrapIO(err, fmt.Sprintf("extracting built-in template %s", name))
	}
	return nil
}
