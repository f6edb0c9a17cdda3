package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AiYo-Studio/emod-cli/internal/catalog"
	"github.com/AiYo-Studio/emod-cli/internal/output"
	"github.com/AiYo-Studio/emod-cli/internal/scaffold"
)

func init() {
	templatesCmd.AddCommand(templatesUpdateCmd)
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	Long: `List the templates in the local clone of the template repository, and the
templates built into the binary. The clone lives under cache_dir and is
created by 'emod create' or 'emod templates update'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat := catalog.New(cfg)
		out := cmd.OutOrStdout()

		entries, err := cat.List()
		if err != nil {
			output.Debug("no template clone", "error", err)
			fmt.Fprintf(out, "No templates fetched yet from %s. Run 'emod templates update'.\n", cat.RepoURL)
		} else {
			items := make([]string, len(entries))
			for i, e := range entries {
				items[i] = fmt.Sprintf("%-16s %s", output.StyleNoun.Render(e.Name), e.Description)
			}
			fmt.Fprint(out, output.FormatList("Templates ("+cat.RepoURL+"):", items))
		}

		fmt.Fprintf(out, "Built-in: %s\n", strings.Join(scaffold.BuiltinTemplates(), ", "))
		return nil
	},
}

var templatesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch the latest templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat := catalog.New(cfg)

		fmt.Fprintf(cmd.OutOrStdout(), "Updating templates at %s...\n", cat.Dir)
		if err := cat.Update(); err != nil {
			return fmt.Errorf("updating templates: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Templates updated"))
		return nil
	},
}
