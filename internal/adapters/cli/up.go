package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/melih/devlaunch/internal/core/launcher"
	"github.com/melih/devlaunch/internal/logger"
)

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Build the image and (re)start the dev container",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUp(cmd)
	},
}

func runUp(cmd *cobra.Command) error {
	l, cfg, cleanup, err := newLauncher(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	workdir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	ctx := logger.NewRun(cmd.Context())
	return l.Up(ctx, launcher.Options{
		Workdir:     workdir,
		AppName:     cfg.AppName,
		Port:        cfg.Port,
		AppFile:     cfg.AppFile,
		Stylesheet:  cfg.Stylesheet,
		ConfigFile:  cfg.ConfigFile,
		SettleDelay: cfg.SettleDelay,
		WaitReady:   cfg.WaitReady,
		RepoURL:     cfg.RepoURL,
		OpenBrowser: cfg.OpenBrowser,
	})
}

func init() {
	upCmd.Flags().Bool("wait-ready", false, "poll the service URL instead of the fixed settle delay")
	viper.BindPFlag("wait_ready", upCmd.Flags().Lookup("wait-ready"))

	upCmd.Flags().String("repo", "", "build from a git repository instead of the working directory")
	viper.BindPFlag("repo_url", upCmd.Flags().Lookup("repo"))

	upCmd.Flags().Bool("open", true, "open the browser once the service is up")
	viper.BindPFlag("open_browser", upCmd.Flags().Lookup("open"))

	rootCmd.AddCommand(upCmd)
}
