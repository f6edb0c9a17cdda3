package cli

import (
	"github.com/spf13/cobra"

	"github.com/AiYo-Studio/emod-cli/internal/branding"
	"github.com/AiYo-Studio/emod-cli/internal/config"
	oerrors "github.com/AiYo-Studio/emod-cli/internal/errors"
	"github.com/AiYo-Studio/emod-cli/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose    bool
	configPath string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default ~/"+branding.HomeDir()+"/config.yaml, or $"+branding.EnvVar("config")+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates NetEase Minecraft mod projects from templates, adds
ready-made components to them, and packages behavior and resource packs for release.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLoggingTo(cmd.ErrOrStderr(), verbose)
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
	}
	return nil
}

// loadConfig reads user settings from --config or the default location.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
