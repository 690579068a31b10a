package cli

import (
	"github.com/spf13/cobra"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop and remove the dev container",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, cfg, cleanup, err := newLauncher(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return l.Down(cmd.Context(), cfg.AppName)
	},
}

func init() {
	rootCmd.AddCommand(downCmd)
}
