package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the dev container is running",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cfg, cleanup, err := newLauncher(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return l.Status(cmd.Context(), cfg.AppName)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
