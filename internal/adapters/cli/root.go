// Package cli wires the launcher to its cobra command surface. It sits in the
// interface-adapter slot: commands parse input, build the adapters, and hand
// off to the core launcher.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/melih/devlaunch/internal/adapters/browser"
	"github.com/melih/devlaunch/internal/adapters/builder"
	"github.com/melih/devlaunch/internal/adapters/docker"
	"github.com/melih/devlaunch/internal/config"
	"github.com/melih/devlaunch/internal/core/domain"
	"github.com/melih/devlaunch/internal/core/launcher"
	"github.com/melih/devlaunch/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "devlaunch",
	Short: "Build and run the app's dev container with live-reload mounts",
	Long: `devlaunch builds the application image, replaces any previous container of
the same name, and starts a fresh one with the source files bind-mounted for
edit-and-save reload. Once the service has had time to come up, the default
browser is opened at the local URL.

Invoked bare it behaves exactly like "devlaunch up" with defaults: build
from the current directory, run on port 8501, open the browser.

Configuration can come from flags, DEVLAUNCH_* environment variables, or a
.devlaunch.yaml in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUp(cmd)
	},
}

// Execute runs the root command. Cobra surfaces any step failure as a
// non-zero process exit via main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentFlags().String("name", domain.DefaultAppName, "application and container name")
	viper.BindPFlag("app_name", rootCmd.PersistentFlags().Lookup("name"))

	rootCmd.PersistentFlags().Int("port", domain.DefaultPort, "host port mapped to the service port")
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
}

// newLauncher builds the launcher with its real adapters. The returned cleanup
// closes the docker client connections.
func newLauncher(cmd *cobra.Command) (*launcher.Launcher, *config.Config, func(), error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, nil, err
	}

	rt, err := docker.NewAdapter()
	if err != nil {
		return nil, nil, nil, err
	}
	bld, err := builder.NewAdapter()
	if err != nil {
		rt.Close()
		return nil, nil, nil, err
	}

	log := logger.New(cmd.ErrOrStderr(), verbose)
	l := launcher.New(rt, bld, browser.NewOpener(), log, cmd.OutOrStdout())
	cleanup := func() { rt.Close() }
	return l, cfg, cleanup, nil
}
