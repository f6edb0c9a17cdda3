package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/release"
)

var (
	releasePath    string
	releaseVersion string
)

func init() {
	releaseCmd.Flags().StringVarP(&releasePath, "path", "p", ".", "Project directory")
	releaseCmd.Flags().StringVar(&releaseVersion, "ver", "", "Version to release, e.g. 1.2.0 (default: behavior pack patch + 1)")
	rootCmd.AddCommand(releaseCmd)
}

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Bump the project version and package both packs",
	Long: `Write the release version into every manifest of the project and package
the behavior and resource packs into release_<version>.zip at the project root.

Without --ver the behavior pack version is used with its patch number
incremented. Files ending in .gitkeep are not packaged.

Examples:
  emod release
  emod release --path ./DemoMod --ver 1.0.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := release.Run(release.Options{
			Dir:     releasePath,
			Version: releaseVersion,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Released %s to %s",
			output.StyleNoun.Render(result.Version.String()),
			output.StyleNoun.Render(result.Archive))))
		if verbose {
			fmt.Fprint(out, output.FormatList("Entries:", result.Entries))
		}
		fmt.Fprint(out, output.FormatWarnings(result.Warnings))
		return nil
	},
}
