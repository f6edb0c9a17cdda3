package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AiYo-Studio/emod-cli/internal/component"
	"github.com/AiYo-Studio/emod-cli/internal/output"
)

var (
	componentName       string
	componentPath       string
	componentGeometry   string
	componentTexture    string
	componentIdentifier string
)

func init() {
	componentsCmd.Flags().StringVarP(&componentName, "component", "c", "",
		"Component to add: "+strings.Join(component.Names(), ", ")+" (required)")
	componentsCmd.Flags().StringVarP(&componentPath, "path", "p", ".", "Project directory")
	componentsCmd.Flags().StringVar(&componentGeometry, "geo", "./model.geo.json", "Geometry file")
	componentsCmd.Flags().StringVar(&componentTexture, "texture", "./texture.png", "Texture file")
	componentsCmd.Flags().StringVar(&componentIdentifier, "identifier", component.DefaultIdentifier, "Item identifier, e.g. demo:ruby_helmet")
	_ = componentsCmd.MarkFlagRequired("component")
	rootCmd.AddCommand(componentsCmd)
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Add a ready-made component to a project",
	Long: `Add a ready-made component to an existing project.

Components:
  3ditem   wearable item with a custom model: item definitions for both packs,
           the geometry, the texture and an attachable

Example:
  emod components --component 3ditem --geo ./helmet.geo.json --texture ./helmet.png --identifier demo:ruby_helmet`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := component.Add(componentName, component.Options{
			ProjectDir: componentPath,
			Geometry:   componentGeometry,
			Texture:    componentTexture,
			Identifier: componentIdentifier,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.FormatCheckmark("Added "+componentName+" "+output.StyleNoun.Render(componentIdentifier)))
		fmt.Fprint(out, output.FormatList("Files:", files))
		return nil
	},
}
