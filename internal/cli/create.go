package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/AiYo-Studio/emod-cli/internal/catalog"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/scaffold"
)

var (
	createName        string
	createTarget      string
	createDir         string
	createTemplateDir string
	createBuiltin     bool
)

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "Mod name, also the project directory name (required)")
	createCmd.Flags().StringVarP(&createTarget, "target", "t", catalog.DefaultTemplate, "Template to create the project from")
	createCmd.Flags().StringVar(&createDir, "dir", ".", "Directory to create the project in")
	createCmd.Flags().StringVar(&createTemplateDir, "template-dir", "", "Use a local template directory instead of the template repository")
	createCmd.Flags().BoolVar(&createBuiltin, "builtin", false, "Use the template embedded in the binary")
	_ = createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagsMutuallyExclusive("template-dir", "builtin")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new mod project from a template",
	Long: `Create a new mod project from a template.

The template is taken from the template repository (cloned into the cache
directory and refreshed when older than template_max_age), from a local
directory with --template-dir, or from the binary with --builtin.

Examples:
  emod create --name DemoMod
  emod create --name DemoMod --target default --dir ./mods
  emod create --name DemoMod --builtin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templateDir, cleanup, err := resolveTemplate(createTarget)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := scaffold.Create(scaffold.Options{
			Name:        createName,
			ParentDir:   createDir,
			TemplateDir: templateDir,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.FormatCheckmark("Created project "+output.StyleNoun.Render(result.ProjectDir)))
		fmt.Fprint(out, output.FormatList("Identity:", []string{
			"mod name:      " + result.Info.Name,
			"identifier:    " + result.Info.LowerName,
			"behavior pack: " + result.Info.BehaviorPackUUID,
			"resource pack: " + result.Info.ResourcePackUUID,
		}))
		fmt.Fprint(out, output.FormatWarnings(result.Warnings))
		return nil
	},
}

// resolveTemplate returns the directory of the template to create from and
// a function releasing any temporary files.
func resolveTemplate(target string) (string, func(), error) {
	noop := func() {}

	if createTemplateDir != "" {
		return createTemplateDir, noop, nil
	}

	if createBuiltin {
		tmp, err := os.MkdirTemp("", "emod-template-")
		if err != nil {
			return "", noop, fmt.Errorf("creating temporary directory: %w", err)
		}
		cleanup := func() { _ = os.RemoveAll(tmp) }
		dir := filepath.Join(tmp, target)
		if err := scaffold.ExtractBuiltin(target, dir); err != nil {
			cleanup()
			return "", noop, err
		}
		return dir, cleanup, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return "", noop, err
	}
	cat := catalog.New(cfg)
	if err := cat.Ensure(); err != nil {
		return "", noop, err
	}
	dir, err := cat.TemplateDir(target)
	if err != nil {
		return "", noop, err
	}
	return dir, noop, nil
}
